// Package registration wires the inscription module.
package registration

import (
	"github.com/go-chi/chi/v5"
	"github.com/uptrace/bun"

	modalitydb "github.com/olinsesp/olinsesp-backend/app/modules/modality/infrastructure/repositories"
	registrationservice "github.com/olinsesp/olinsesp-backend/app/modules/registration/application"
	registrationhandlers "github.com/olinsesp/olinsesp-backend/app/modules/registration/infrastructure/handlers"
	registrationdb "github.com/olinsesp/olinsesp-backend/app/modules/registration/infrastructure/repositories"
	"github.com/olinsesp/olinsesp-backend/internal/observability"
)

// Module bundles the registration service, repository, and HTTP routes.
type Module struct {
	Service registrationservice.Service
	Repo    registrationdb.Repository
	routes  chi.Router
}

// NewModule wires the registration module. Selections are validated against
// the modality catalog, hence the modality repository dependency.
func NewModule(obs *observability.Observability, db *bun.DB, modalities modalitydb.Repository) *Module {
	repo := registrationdb.NewRepository(db)
	service := registrationservice.NewRegistrationService(repo, modalities, obs.Logger, obs.Tracer)
	handlers := registrationhandlers.NewHandlers(service, obs.Logger)

	return &Module{
		Service: service,
		Repo:    repo,
		routes:  handlers.Routes(),
	}
}

// Routes returns the module's HTTP routes, mounted under /api/inscricoes.
func (m *Module) Routes() chi.Router {
	return m.routes
}
