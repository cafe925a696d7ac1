package standingsservice

import (
	"context"

	"github.com/google/uuid"
	"github.com/uptrace/bun"

	standingsdomain "github.com/olinsesp/olinsesp-backend/app/modules/standings/domain"
	standingsdb "github.com/olinsesp/olinsesp-backend/app/modules/standings/infrastructure/repositories"
	"github.com/olinsesp/olinsesp-backend/pkg/scope"
)

// ------------------------
// Fake Placement Repo
// ------------------------

type FakePlacementRepo struct {
	trace []string

	GetByIDFunc func(ctx context.Context, db bun.IDB, id uuid.UUID) (*standingsdb.Placement, error)
	ListFunc    func(ctx context.Context, db bun.IDB, sc scope.Scope) ([]standingsdb.Placement, error)
	InsertFunc  func(ctx context.Context, db bun.IDB, placement *standingsdb.Placement) error
	UpdateFunc  func(ctx context.Context, db bun.IDB, placement *standingsdb.Placement) error
	DeleteFunc  func(ctx context.Context, db bun.IDB, id uuid.UUID) error
}

func NewFakePlacementRepo() *FakePlacementRepo {
	return &FakePlacementRepo{
		trace: []string{},
	}
}

func (f *FakePlacementRepo) record(step string) {
	f.trace = append(f.trace, step)
}

// --- Repository Interface Implementation ---

func (f *FakePlacementRepo) GetByID(ctx context.Context, db bun.IDB, id uuid.UUID) (*standingsdb.Placement, error) {
	f.record("GetByID")
	if f.GetByIDFunc != nil {
		return f.GetByIDFunc(ctx, db, id)
	}
	return nil, standingsdb.ErrNotFound
}

func (f *FakePlacementRepo) List(ctx context.Context, db bun.IDB, sc scope.Scope) ([]standingsdb.Placement, error) {
	f.record("List")
	if f.ListFunc != nil {
		return f.ListFunc(ctx, db, sc)
	}
	return nil, nil
}

func (f *FakePlacementRepo) Insert(ctx context.Context, db bun.IDB, placement *standingsdb.Placement) error {
	f.record("Insert")
	if f.InsertFunc != nil {
		return f.InsertFunc(ctx, db, placement)
	}
	return nil
}

func (f *FakePlacementRepo) Update(ctx context.Context, db bun.IDB, placement *standingsdb.Placement) error {
	f.record("Update")
	if f.UpdateFunc != nil {
		return f.UpdateFunc(ctx, db, placement)
	}
	return nil
}

func (f *FakePlacementRepo) Delete(ctx context.Context, db bun.IDB, id uuid.UUID) error {
	f.record("Delete")
	if f.DeleteFunc != nil {
		return f.DeleteFunc(ctx, db, id)
	}
	return nil
}

// --- Accessors for assertions ---

func (f *FakePlacementRepo) Trace() []string {
	out := make([]string, len(f.trace))
	copy(out, f.trace)
	return out
}

// Ensure the fake actually satisfies the interface
var _ standingsdb.Repository = (*FakePlacementRepo)(nil)

// ------------------------
// Fake Catalogs
// ------------------------

type FakeModalityCatalog struct {
	Index standingsdomain.ModalityIndex
	Err   error
}

func (f *FakeModalityCatalog) ModalityIndex(ctx context.Context) (standingsdomain.ModalityIndex, error) {
	if f.Err != nil {
		return nil, f.Err
	}
	return f.Index, nil
}

type FakeRegistrantCatalog struct {
	Index standingsdomain.RegistrantIndex
	Err   error
}

func (f *FakeRegistrantCatalog) RegistrantIndex(ctx context.Context) (standingsdomain.RegistrantIndex, error) {
	if f.Err != nil {
		return nil, f.Err
	}
	return f.Index, nil
}

var (
	_ ModalityCatalog   = (*FakeModalityCatalog)(nil)
	_ RegistrantCatalog = (*FakeRegistrantCatalog)(nil)
)
