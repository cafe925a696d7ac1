package modalitydb

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/uptrace/bun"
)

// ErrNotFound is returned when a modality is not found.
var ErrNotFound = errors.New("modality not found")

// Impl implements the Repository interface using Bun ORM.
type Impl struct {
	db bun.IDB
}

// NewRepository creates a new modality repository.
func NewRepository(db bun.IDB) Repository {
	return &Impl{db: db}
}

// resolveDB returns the provided db handle, falling back to the repository's
// default connection if db is nil.
func (r *Impl) resolveDB(db bun.IDB) bun.IDB {
	if db == nil {
		return r.db
	}
	return db
}

// GetByID retrieves a modality by its id.
func (r *Impl) GetByID(ctx context.Context, db bun.IDB, id uuid.UUID) (*Modality, error) {
	db = r.resolveDB(db)
	modality := new(Modality)
	err := db.NewSelect().
		Model(modality).
		Where("id = ?", id).
		Scan(ctx)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get modality: %w", err)
	}
	return modality, nil
}

// List retrieves all modalities ordered by name.
func (r *Impl) List(ctx context.Context, db bun.IDB) ([]Modality, error) {
	db = r.resolveDB(db)
	var modalities []Modality
	err := db.NewSelect().
		Model(&modalities).
		Order("name ASC").
		Scan(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list modalities: %w", err)
	}
	return modalities, nil
}

// Insert creates a modality.
func (r *Impl) Insert(ctx context.Context, db bun.IDB, modality *Modality) error {
	db = r.resolveDB(db)
	if _, err := db.NewInsert().Model(modality).Exec(ctx); err != nil {
		return fmt.Errorf("failed to insert modality: %w", err)
	}
	return nil
}

// Update rewrites a modality.
func (r *Impl) Update(ctx context.Context, db bun.IDB, modality *Modality) error {
	db = r.resolveDB(db)
	modality.UpdatedAt = time.Now()
	result, err := db.NewUpdate().
		Model(modality).
		WherePK().
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("failed to update modality: %w", err)
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

// Delete removes a modality.
func (r *Impl) Delete(ctx context.Context, db bun.IDB, id uuid.UUID) error {
	db = r.resolveDB(db)
	result, err := db.NewDelete().
		Model((*Modality)(nil)).
		Where("id = ?", id).
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("failed to delete modality: %w", err)
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
