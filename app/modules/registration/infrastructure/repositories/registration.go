package registrationdb

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

// ErrNotFound is returned when a registration is not found.
var ErrNotFound = errors.New("registration not found")

// Impl implements the Repository interface using Bun ORM.
type Impl struct {
	db bun.IDB
}

// NewRepository creates a new registration repository.
func NewRepository(db bun.IDB) Repository {
	return &Impl{db: db}
}

func (r *Impl) resolveDB(db bun.IDB) bun.IDB {
	if db == nil {
		return r.db
	}
	return db
}

// GetByID retrieves a registration by its id.
func (r *Impl) GetByID(ctx context.Context, db bun.IDB, id uuid.UUID) (*Registrant, error) {
	db = r.resolveDB(db)
	registrant := new(Registrant)
	err := db.NewSelect().
		Model(registrant).
		Where("id = ?", id).
		Scan(ctx)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get registration: %w", err)
	}
	return registrant, nil
}

// List retrieves registrations visible under the scope, optionally narrowed
// to one modality.
func (r *Impl) List(ctx context.Context, db bun.IDB, sc scope.Scope, filter ListFilter) ([]Registrant, error) {
	db = r.resolveDB(db)
	var registrants []Registrant

	q := db.NewSelect().Model(&registrants)
	if sc.Restricted() {
		q = q.Where("organization = ?", sc.Organization)
	}
	if filter.ModalityID != uuid.Nil {
		q = q.Where("modality_id = ?", filter.ModalityID)
	}

	if err := q.Order("name ASC").Scan(ctx); err != nil {
		return nil, fmt.Errorf("failed to list registrations: %w", err)
	}
	return registrants, nil
}

// Insert creates a registration.
func (r *Impl) Insert(ctx context.Context, db bun.IDB, registrant *Registrant) error {
	db = r.resolveDB(db)
	if _, err := db.NewInsert().Model(registrant).Exec(ctx); err != nil {
		return fmt.Errorf("failed to insert registration: %w", err)
	}
	return nil
}

// SetAttendance flips the attendance confirmation flag.
func (r *Impl) SetAttendance(ctx context.Context, db bun.IDB, id uuid.UUID, confirmed bool) error {
	db = r.resolveDB(db)
	result, err := db.NewUpdate().
		Model((*Registrant)(nil)).
		Set("attendance_confirmed = ?", confirmed).
		Set("updated_at = ?", time.Now()).
		Where("id = ?", id).
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("failed to set attendance: %w", err)
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

// Delete removes a registration.
func (r *Impl) Delete(ctx context.Context, db bun.IDB, id uuid.UUID) error {
	db = r.resolveDB(db)
	result, err := db.NewDelete().
		Model((*Registrant)(nil)).
		Where("id = ?", id).
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("failed to delete registration: %w", err)
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
