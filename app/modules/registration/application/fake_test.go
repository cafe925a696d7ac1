package registrationservice

import (
	"context"

	"github.com/google/uuid"
	"github.com/uptrace/bun"

	modalitydb "github.com/olinsesp/olinsesp-backend/app/modules/modality/infrastructure/repositories"
	registrationdb "github.com/olinsesp/olinsesp-backend/app/modules/registration/infrastructure/repositories"
	"github.com/olinsesp/olinsesp-backend/pkg/scope"
)

// ------------------------
// Fake Registration Repo
// ------------------------

type FakeRegistrationRepo struct {
	trace []string

	GetByIDFunc       func(ctx context.Context, db bun.IDB, id uuid.UUID) (*registrationdb.Registrant, error)
	ListFunc          func(ctx context.Context, db bun.IDB, sc scope.Scope, filter registrationdb.ListFilter) ([]registrationdb.Registrant, error)
	InsertFunc        func(ctx context.Context, db bun.IDB, registrant *registrationdb.Registrant) error
	SetAttendanceFunc func(ctx context.Context, db bun.IDB, id uuid.UUID, confirmed bool) error
	DeleteFunc        func(ctx context.Context, db bun.IDB, id uuid.UUID) error
}

func NewFakeRegistrationRepo() *FakeRegistrationRepo {
	return &FakeRegistrationRepo{
		trace: []string{},
	}
}

func (f *FakeRegistrationRepo) record(step string) {
	f.trace = append(f.trace, step)
}

func (f *FakeRegistrationRepo) GetByID(ctx context.Context, db bun.IDB, id uuid.UUID) (*registrationdb.Registrant, error) {
	f.record("GetByID")
	if f.GetByIDFunc != nil {
		return f.GetByIDFunc(ctx, db, id)
	}
	return nil, registrationdb.ErrNotFound
}

func (f *FakeRegistrationRepo) List(ctx context.Context, db bun.IDB, sc scope.Scope, filter registrationdb.ListFilter) ([]registrationdb.Registrant, error) {
	f.record("List")
	if f.ListFunc != nil {
		return f.ListFunc(ctx, db, sc, filter)
	}
	return nil, nil
}

func (f *FakeRegistrationRepo) Insert(ctx context.Context, db bun.IDB, registrant *registrationdb.Registrant) error {
	f.record("Insert")
	if f.InsertFunc != nil {
		return f.InsertFunc(ctx, db, registrant)
	}
	return nil
}

func (f *FakeRegistrationRepo) SetAttendance(ctx context.Context, db bun.IDB, id uuid.UUID, confirmed bool) error {
	f.record("SetAttendance")
	if f.SetAttendanceFunc != nil {
		return f.SetAttendanceFunc(ctx, db, id, confirmed)
	}
	return nil
}

func (f *FakeRegistrationRepo) Delete(ctx context.Context, db bun.IDB, id uuid.UUID) error {
	f.record("Delete")
	if f.DeleteFunc != nil {
		return f.DeleteFunc(ctx, db, id)
	}
	return nil
}

func (f *FakeRegistrationRepo) Trace() []string {
	out := make([]string, len(f.trace))
	copy(out, f.trace)
	return out
}

var _ registrationdb.Repository = (*FakeRegistrationRepo)(nil)

// ------------------------
// Fake Modality Repo (lookup side only)
// ------------------------

type FakeModalityLookup struct {
	GetByIDFunc func(ctx context.Context, db bun.IDB, id uuid.UUID) (*modalitydb.Modality, error)
}

func (f *FakeModalityLookup) GetByID(ctx context.Context, db bun.IDB, id uuid.UUID) (*modalitydb.Modality, error) {
	if f.GetByIDFunc != nil {
		return f.GetByIDFunc(ctx, db, id)
	}
	return nil, modalitydb.ErrNotFound
}

func (f *FakeModalityLookup) List(ctx context.Context, db bun.IDB) ([]modalitydb.Modality, error) {
	return nil, nil
}

func (f *FakeModalityLookup) Insert(ctx context.Context, db bun.IDB, modality *modalitydb.Modality) error {
	return nil
}

func (f *FakeModalityLookup) Update(ctx context.Context, db bun.IDB, modality *modalitydb.Modality) error {
	return nil
}

func (f *FakeModalityLookup) Delete(ctx context.Context, db bun.IDB, id uuid.UUID) error {
	return nil
}

var _ modalitydb.Repository = (*FakeModalityLookup)(nil)
