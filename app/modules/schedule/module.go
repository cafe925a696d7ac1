// Package schedule wires the event schedule module.
package schedule

import (
	"github.com/go-chi/chi/v5"
	"github.com/uptrace/bun"

	scheduleservice "github.com/olinsesp/olinsesp-backend/app/modules/schedule/application"
	schedulehandlers "github.com/olinsesp/olinsesp-backend/app/modules/schedule/infrastructure/handlers"
	scheduledb "github.com/olinsesp/olinsesp-backend/app/modules/schedule/infrastructure/repositories"
	"github.com/olinsesp/olinsesp-backend/internal/observability"
)

// Module bundles the schedule service, repository, and HTTP routes.
type Module struct {
	Service scheduleservice.Service
	Repo    scheduledb.Repository
	routes  chi.Router
}

// NewModule wires the schedule module.
func NewModule(obs *observability.Observability, db *bun.DB) *Module {
	repo := scheduledb.NewRepository(db)
	service := scheduleservice.NewScheduleService(repo, obs.Logger, obs.Tracer)
	handlers := schedulehandlers.NewHandlers(service, obs.Logger)

	return &Module{
		Service: service,
		Repo:    repo,
		routes:  handlers.Routes(),
	}
}

// Routes returns the module's HTTP routes, mounted under /api/eventos.
func (m *Module) Routes() chi.Router {
	return m.routes
}
