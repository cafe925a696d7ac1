// Package server assembles the HTTP surface of the backend: the root chi
// router, the shared middleware chain, and the module mounts.
package server

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"golang.org/x/time/rate"

	"github.com/olinsesp/olinsesp-backend/config"
	"github.com/olinsesp/olinsesp-backend/internal/observability"
	"github.com/olinsesp/olinsesp-backend/pkg/jwt"
)

// Modules are the mounted API surfaces, one router per bounded context.
type Modules struct {
	Modalities    chi.Router
	Registrations chi.Router
	Standings     chi.Router
	Schedule      chi.Router
}

// NewRouter builds the root router: public health and metrics endpoints,
// then the authenticated /api subtree.
func NewRouter(cfg *config.Config, obs *observability.Observability, tokens jwt.Service, modules Modules) chi.Router {
	r := chi.NewRouter()
	r.Use(RequestLogger(obs.Logger))
	r.Use(RateLimitMiddleware(NewIPRateLimiter(rate.Limit(cfg.HTTP.RateLimitPerSec), cfg.HTTP.RateLimitBurst)))
	r.Use(CORSMiddleware(cfg.HTTP.AllowedOrigins))

	r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})
	r.Method(http.MethodGet, "/metrics", promhttp.HandlerFor(obs.Registry, promhttp.HandlerOpts{}))

	r.Route("/api", func(api chi.Router) {
		api.Use(AuthMiddleware(tokens, cfg.JWT.CookieName))
		api.Mount("/modalidades", modules.Modalities)
		api.Mount("/inscricoes", modules.Registrations)
		api.Mount("/resultados", modules.Standings)
		api.Mount("/eventos", modules.Schedule)
	})

	return r
}
