package standingsdb

import (
	"context"

	"github.com/google/uuid"
	"github.com/uptrace/bun"

	"github.com/olinsesp/olinsesp-backend/pkg/scope"
)

// Repository is the persistence surface of the standings module. List takes
// the caller's scope explicitly; for individual results the organization is
// resolved through the registration, so the scope filter joins against
// registrations.
type Repository interface {
	GetByID(ctx context.Context, db bun.IDB, id uuid.UUID) (*Placement, error)
	List(ctx context.Context, db bun.IDB, sc scope.Scope) ([]Placement, error)
	Insert(ctx context.Context, db bun.IDB, placement *Placement) error
	Update(ctx context.Context, db bun.IDB, placement *Placement) error
	Delete(ctx context.Context, db bun.IDB, id uuid.UUID) error
}
