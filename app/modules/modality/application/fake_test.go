package modalityservice

import (
	"context"

	"github.com/google/uuid"
	"github.com/uptrace/bun"

	modalitydb "github.com/olinsesp/olinsesp-backend/app/modules/modality/infrastructure/repositories"
)

// ------------------------
// Fake Modality Repo
// ------------------------

type FakeModalityRepo struct {
	trace []string

	GetByIDFunc func(ctx context.Context, db bun.IDB, id uuid.UUID) (*modalitydb.Modality, error)
	ListFunc    func(ctx context.Context, db bun.IDB) ([]modalitydb.Modality, error)
	InsertFunc  func(ctx context.Context, db bun.IDB, modality *modalitydb.Modality) error
	UpdateFunc  func(ctx context.Context, db bun.IDB, modality *modalitydb.Modality) error
	DeleteFunc  func(ctx context.Context, db bun.IDB, id uuid.UUID) error
}

func NewFakeModalityRepo() *FakeModalityRepo {
	return &FakeModalityRepo{
		trace: []string{},
	}
}

func (f *FakeModalityRepo) record(step string) {
	f.trace = append(f.trace, step)
}

func (f *FakeModalityRepo) GetByID(ctx context.Context, db bun.IDB, id uuid.UUID) (*modalitydb.Modality, error) {
	f.record("GetByID")
	if f.GetByIDFunc != nil {
		return f.GetByIDFunc(ctx, db, id)
	}
	return nil, modalitydb.ErrNotFound
}

func (f *FakeModalityRepo) List(ctx context.Context, db bun.IDB) ([]modalitydb.Modality, error) {
	f.record("List")
	if f.ListFunc != nil {
		return f.ListFunc(ctx, db)
	}
	return nil, nil
}

func (f *FakeModalityRepo) Insert(ctx context.Context, db bun.IDB, modality *modalitydb.Modality) error {
	f.record("Insert")
	if f.InsertFunc != nil {
		return f.InsertFunc(ctx, db, modality)
	}
	return nil
}

func (f *FakeModalityRepo) Update(ctx context.Context, db bun.IDB, modality *modalitydb.Modality) error {
	f.record("Update")
	if f.UpdateFunc != nil {
		return f.UpdateFunc(ctx, db, modality)
	}
	return nil
}

func (f *FakeModalityRepo) Delete(ctx context.Context, db bun.IDB, id uuid.UUID) error {
	f.record("Delete")
	if f.DeleteFunc != nil {
		return f.DeleteFunc(ctx, db, id)
	}
	return nil
}

func (f *FakeModalityRepo) Trace() []string {
	out := make([]string, len(f.trace))
	copy(out, f.trace)
	return out
}

var _ modalitydb.Repository = (*FakeModalityRepo)(nil)
