package modalitydb

import (
	"context"

	"github.com/google/uuid"
	"github.com/uptrace/bun"
)

// Repository is the persistence surface of the modality module.
type Repository interface {
	GetByID(ctx context.Context, db bun.IDB, id uuid.UUID) (*Modality, error)
	List(ctx context.Context, db bun.IDB) ([]Modality, error)
	Insert(ctx context.Context, db bun.IDB, modality *Modality) error
	Update(ctx context.Context, db bun.IDB, modality *Modality) error
	Delete(ctx context.Context, db bun.IDB, id uuid.UUID) error
}
