package registrationdb

import (
	"context"

	"github.com/google/uuid"
	"github.com/uptrace/bun"

	"github.com/olinsesp/olinsesp-backend/pkg/scope"
)

// ListFilter narrows List results. Zero value lists everything visible
// under the scope.
type ListFilter struct {
	ModalityID uuid.UUID
}

// Repository is the persistence surface of the registration module. Every
// read takes the caller's scope explicitly; the repository applies it before
// any row leaves the data layer.
type Repository interface {
	GetByID(ctx context.Context, db bun.IDB, id uuid.UUID) (*Registrant, error)
	List(ctx context.Context, db bun.IDB, sc scope.Scope, filter ListFilter) ([]Registrant, error)
	Insert(ctx context.Context, db bun.IDB, registrant *Registrant) error
	SetAttendance(ctx context.Context, db bun.IDB, id uuid.UUID, confirmed bool) error
	Delete(ctx context.Context, db bun.IDB, id uuid.UUID) error
}
