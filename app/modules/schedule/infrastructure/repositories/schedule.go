package scheduledb

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/uptrace/bun"
)

// ErrNotFound is returned when an event is not found.
var ErrNotFound = errors.New("event not found")

// Repository is the persistence surface of the schedule module.
type Repository interface {
	GetByID(ctx context.Context, db bun.IDB, id uuid.UUID) (*Event, error)
	List(ctx context.Context, db bun.IDB, modalityID uuid.UUID) ([]Event, error)
	Insert(ctx context.Context, db bun.IDB, event *Event) error
	Update(ctx context.Context, db bun.IDB, event *Event) error
	Delete(ctx context.Context, db bun.IDB, id uuid.UUID) error
}

// Impl implements the Repository interface using Bun ORM.
type Impl struct {
	db bun.IDB
}

// NewRepository creates a new schedule repository.
func NewRepository(db bun.IDB) Repository {
	return &Impl{db: db}
}

func (r *Impl) resolveDB(db bun.IDB) bun.IDB {
	if db == nil {
		return r.db
	}
	return db
}

// GetByID retrieves an event by its id.
func (r *Impl) GetByID(ctx context.Context, db bun.IDB, id uuid.UUID) (*Event, error) {
	db = r.resolveDB(db)
	event := new(Event)
	err := db.NewSelect().
		Model(event).
		Where("id = ?", id).
		Scan(ctx)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get event: %w", err)
	}
	return event, nil
}

// List retrieves events ordered by start time, optionally narrowed to one
// modality.
func (r *Impl) List(ctx context.Context, db bun.IDB, modalityID uuid.UUID) ([]Event, error) {
	db = r.resolveDB(db)
	var events []Event

	q := db.NewSelect().Model(&events)
	if modalityID != uuid.Nil {
		q = q.Where("modality_id = ?", modalityID)
	}

	if err := q.Order("starts_at ASC").Scan(ctx); err != nil {
		return nil, fmt.Errorf("failed to list events: %w", err)
	}
	return events, nil
}

// Insert creates an event.
func (r *Impl) Insert(ctx context.Context, db bun.IDB, event *Event) error {
	db = r.resolveDB(db)
	if _, err := db.NewInsert().Model(event).Exec(ctx); err != nil {
		return fmt.Errorf("failed to insert event: %w", err)
	}
	return nil
}

// Update rewrites an event.
func (r *Impl) Update(ctx context.Context, db bun.IDB, event *Event) error {
	db = r.resolveDB(db)
	event.UpdatedAt = time.Now()
	result, err := db.NewUpdate().
		Model(event).
		WherePK().
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("failed to update event: %w", err)
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

// Delete removes an event.
func (r *Impl) Delete(ctx context.Context, db bun.IDB, id uuid.UUID) error {
	db = r.resolveDB(db)
	result, err := db.NewDelete().
		Model((*Event)(nil)).
		Where("id = ?", id).
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("failed to delete event: %w", err)
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
