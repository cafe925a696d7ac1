// Package modality wires the sports catalog module.
package modality

import (
	"github.com/go-chi/chi/v5"
	"github.com/uptrace/bun"

	modalityservice "github.com/olinsesp/olinsesp-backend/app/modules/modality/application"
	modalityhandlers "github.com/olinsesp/olinsesp-backend/app/modules/modality/infrastructure/handlers"
	modalitydb "github.com/olinsesp/olinsesp-backend/app/modules/modality/infrastructure/repositories"
	"github.com/olinsesp/olinsesp-backend/internal/observability"
)

// Module bundles the modality service, repository, and HTTP routes.
type Module struct {
	Service modalityservice.Service
	Repo    modalitydb.Repository
	routes  chi.Router
}

// NewModule wires the modality module.
func NewModule(obs *observability.Observability, db *bun.DB) *Module {
	repo := modalitydb.NewRepository(db)
	service := modalityservice.NewModalityService(repo, obs.Logger, obs.Tracer)
	handlers := modalityhandlers.NewHandlers(service, obs.Logger)

	return &Module{
		Service: service,
		Repo:    repo,
		routes:  handlers.Routes(),
	}
}

// Routes returns the module's HTTP routes, mounted under /api/modalidades.
func (m *Module) Routes() chi.Router {
	return m.routes
}
