// Package standings wires the results aggregation module: placements
// storage, the enrichment/aggregation core, and its HTTP surface.
package standings

import (
	"github.com/go-chi/chi/v5"
	"github.com/uptrace/bun"

	modalitydb "github.com/olinsesp/olinsesp-backend/app/modules/modality/infrastructure/repositories"
	registrationdb "github.com/olinsesp/olinsesp-backend/app/modules/registration/infrastructure/repositories"
	standingsservice "github.com/olinsesp/olinsesp-backend/app/modules/standings/application"
	"github.com/olinsesp/olinsesp-backend/app/modules/standings/infrastructure/adapters"
	standingshandlers "github.com/olinsesp/olinsesp-backend/app/modules/standings/infrastructure/handlers"
	standingsdb "github.com/olinsesp/olinsesp-backend/app/modules/standings/infrastructure/repositories"
	"github.com/olinsesp/olinsesp-backend/internal/observability"
)

// Module bundles the standings service and its HTTP routes.
type Module struct {
	Service standingsservice.Service
	routes  chi.Router
}

// NewModule wires the standings module against the shared database handle
// and the repositories of the modules it reads from.
func NewModule(
	obs *observability.Observability,
	db *bun.DB,
	modalityRepo modalitydb.Repository,
	registrationRepo registrationdb.Repository,
) *Module {
	repo := standingsdb.NewRepository(db)

	service := standingsservice.NewStandingsService(
		repo,
		adapters.NewModalityCatalog(modalityRepo),
		adapters.NewRegistrantCatalog(registrationRepo),
		obs.Logger,
		obs.Metrics,
		obs.Tracer,
		db,
	)

	handlers := standingshandlers.NewHandlers(service, obs.Logger)

	return &Module{
		Service: service,
		routes:  handlers.Routes(),
	}
}

// Routes returns the module's HTTP routes, mounted under /api/resultados.
func (m *Module) Routes() chi.Router {
	return m.routes
}
