package standingshandlers

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	standingsservice "github.com/olinsesp/olinsesp-backend/app/modules/standings/application"
	standingsdomain "github.com/olinsesp/olinsesp-backend/app/modules/standings/domain"
	standingsdb "github.com/olinsesp/olinsesp-backend/app/modules/standings/infrastructure/repositories"
	"github.com/olinsesp/olinsesp-backend/internal/authctx"
	"github.com/olinsesp/olinsesp-backend/internal/httpx"
	"github.com/olinsesp/olinsesp-backend/pkg/jwt"
)

// Handlers exposes the standings module over HTTP.
type Handlers struct {
	service standingsservice.Service
	logger  *slog.Logger
}

// NewHandlers creates the standings HTTP handlers.
func NewHandlers(service standingsservice.Service, logger *slog.Logger) *Handlers {
	if logger == nil {
		logger = slog.Default()
	}
	return &Handlers{service: service, logger: logger}
}

// Routes mounts the results endpoints. Reads are open to any authenticated
// role (the scope narrows what focal points see); writes are admin only.
func (h *Handlers) Routes() chi.Router {
	r := chi.NewRouter()
	r.Get("/", h.GetResults)
	r.Get("/export", h.Export)
	r.Get("/quadro-medalhas/chart", h.MedalChart)

	r.Group(func(r chi.Router) {
		r.Use(authctx.RequireRole(jwt.RoleAdmin))
		r.Post("/", h.CreatePlacement)
		r.Put("/{id}", h.UpdatePlacement)
		r.Delete("/{id}", h.DeletePlacement)
	})
	return r
}

// GetResults serves the results envelope. Unknown query parameters are
// ignored; filters are advisory, never schema-checked.
func (h *Handlers) GetResults(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	query := standingsservice.ResultsQuery{
		Filters: standingsdomain.Filters{
			Modality:     q.Get("modalidade"),
			Category:     q.Get("categoria"),
			Organization: q.Get("lotacao"),
		},
		Tipo:           q.Get("tipo"),
		IncludeMedals:  httpx.Bool(q.Get("medalhas")),
		IncludeStats:   httpx.Bool(q.Get("estatisticas")),
		IncludeFilters: httpx.Bool(q.Get("filtros")),
	}

	envelope, err := h.service.GetResults(r.Context(), authctx.ScopeFrom(r.Context()), query)
	if err != nil {
		h.logger.ErrorContext(r.Context(), "Failed to fetch results", slog.Any("error", err))
		httpx.Error(w, http.StatusInternalServerError, "não foi possível carregar os resultados")
		return
	}

	httpx.JSON(w, http.StatusOK, envelope)
}

// CreatePlacement records a new result.
func (h *Handlers) CreatePlacement(w http.ResponseWriter, r *http.Request) {
	var input standingsservice.UpsertPlacementInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		httpx.Error(w, http.StatusBadRequest, "corpo da requisição inválido")
		return
	}

	view, err := h.service.CreatePlacement(r.Context(), input)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	httpx.JSON(w, http.StatusCreated, view)
}

// UpdatePlacement rewrites a result, recomputing its points.
func (h *Handlers) UpdatePlacement(w http.ResponseWriter, r *http.Request) {
	var input standingsservice.UpsertPlacementInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		httpx.Error(w, http.StatusBadRequest, "corpo da requisição inválido")
		return
	}

	view, err := h.service.UpdatePlacement(r.Context(), chi.URLParam(r, "id"), input)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	httpx.JSON(w, http.StatusOK, view)
}

// DeletePlacement removes a result.
func (h *Handlers) DeletePlacement(w http.ResponseWriter, r *http.Request) {
	if err := h.service.DeletePlacement(r.Context(), chi.URLParam(r, "id")); err != nil {
		h.writeError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// Export streams the standings workbook.
func (h *Handlers) Export(w http.ResponseWriter, r *http.Request) {
	data, err := h.service.ExportWorkbook(r.Context(), authctx.ScopeFrom(r.Context()))
	if err != nil {
		h.logger.ErrorContext(r.Context(), "Failed to export workbook", slog.Any("error", err))
		httpx.Error(w, http.StatusInternalServerError, "não foi possível gerar a planilha")
		return
	}

	w.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	w.Header().Set("Content-Disposition", `attachment; filename="resultados-olinsesp.xlsx"`)
	_, _ = w.Write(data)
}

// MedalChart serves the medal table as a PNG bar chart.
func (h *Handlers) MedalChart(w http.ResponseWriter, r *http.Request) {
	data, err := h.service.MedalChartPNG(r.Context(), authctx.ScopeFrom(r.Context()))
	if err != nil {
		h.logger.ErrorContext(r.Context(), "Failed to render medal chart", slog.Any("error", err))
		httpx.Error(w, http.StatusInternalServerError, "não foi possível gerar o gráfico")
		return
	}

	w.Header().Set("Content-Type", "image/png")
	_, _ = w.Write(data)
}

// writeError maps service errors to HTTP statuses.
func (h *Handlers) writeError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, standingsservice.ErrInvalidPosition),
		errors.Is(err, standingsservice.ErrMissingModality),
		errors.Is(err, standingsservice.ErrInvalidID):
		httpx.Error(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, standingsdb.ErrNotFound):
		httpx.Error(w, http.StatusNotFound, "resultado não encontrado")
	default:
		h.logger.ErrorContext(r.Context(), "Placement write failed", slog.Any("error", err))
		httpx.Error(w, http.StatusInternalServerError, "erro interno")
	}
}
