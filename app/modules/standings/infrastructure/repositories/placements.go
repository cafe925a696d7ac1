package standingsdb

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/uptrace/bun"

	"github.com/olinsesp/olinsesp-backend/pkg/scope"
)

// ErrNotFound is returned when a placement is not found.
var ErrNotFound = errors.New("placement not found")

// Impl implements the Repository interface using Bun ORM.
type Impl struct {
	db bun.IDB
}

// NewRepository creates a new placements repository.
func NewRepository(db bun.IDB) Repository {
	return &Impl{db: db}
}

func (r *Impl) resolveDB(db bun.IDB) bun.IDB {
	if db == nil {
		return r.db
	}
	return db
}

// GetByID retrieves a placement by its id.
func (r *Impl) GetByID(ctx context.Context, db bun.IDB, id uuid.UUID) (*Placement, error) {
	db = r.resolveDB(db)
	placement := new(Placement)
	err := db.NewSelect().
		Model(placement).
		Where("p.id = ?", id).
		Scan(ctx)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get placement: %w", err)
	}
	return placement, nil
}

// List retrieves every placement visible under the scope, ordered by
// position. A restricted scope matches the placement's own organization
// label or, for individual results, the registrant's organization.
func (r *Impl) List(ctx context.Context, db bun.IDB, sc scope.Scope) ([]Placement, error) {
	db = r.resolveDB(db)
	var placements []Placement

	q := db.NewSelect().Model(&placements)
	if sc.Restricted() {
		q = q.Join("LEFT JOIN registrations AS r ON r.id = p.registration_id").
			Where("p.organization = ? OR r.organization = ?", sc.Organization, sc.Organization)
	}

	if err := q.Order("position ASC").Scan(ctx); err != nil {
		return nil, fmt.Errorf("failed to list placements: %w", err)
	}
	return placements, nil
}

// Insert creates a placement.
func (r *Impl) Insert(ctx context.Context, db bun.IDB, placement *Placement) error {
	db = r.resolveDB(db)
	if _, err := db.NewInsert().Model(placement).Exec(ctx); err != nil {
		return fmt.Errorf("failed to insert placement: %w", err)
	}
	return nil
}

// Update rewrites a placement row atomically.
func (r *Impl) Update(ctx context.Context, db bun.IDB, placement *Placement) error {
	db = r.resolveDB(db)
	placement.UpdatedAt = time.Now()
	result, err := db.NewUpdate().
		Model(placement).
		WherePK().
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("failed to update placement: %w", err)
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rows == 0 {
		return ErrNotFound
	}
	return nil
}

// Delete removes a placement.
func (r *Impl) Delete(ctx context.Context, db bun.IDB, id uuid.UUID) error {
	db = r.resolveDB(db)
	result, err := db.NewDelete().
		Model((*Placement)(nil)).
		Where("id = ?", id).
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("failed to delete placement: %w", err)
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rows == 0 {
		return ErrNotFound
	}
	return nil
}
