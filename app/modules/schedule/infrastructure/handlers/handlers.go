package schedulehandlers

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	scheduleservice "github.com/olinsesp/olinsesp-backend/app/modules/schedule/application"
	scheduledb "github.com/olinsesp/olinsesp-backend/app/modules/schedule/infrastructure/repositories"
	"github.com/olinsesp/olinsesp-backend/internal/authctx"
	"github.com/olinsesp/olinsesp-backend/internal/httpx"
	"github.com/olinsesp/olinsesp-backend/pkg/jwt"
)

// Handlers exposes the schedule module over HTTP.
type Handlers struct {
	service scheduleservice.Service
	logger  *slog.Logger
}

// NewHandlers creates the schedule HTTP handlers.
func NewHandlers(service scheduleservice.Service, logger *slog.Logger) *Handlers {
	if logger == nil {
		logger = slog.Default()
	}
	return &Handlers{service: service, logger: logger}
}

// Routes mounts the event endpoints. Reads are open to any authenticated
// role; writes are admin only.
func (h *Handlers) Routes() chi.Router {
	r := chi.NewRouter()
	r.Get("/", h.List)
	r.Get("/{id}", h.Get)

	r.Group(func(r chi.Router) {
		r.Use(authctx.RequireRole(jwt.RoleAdmin))
		r.Post("/", h.Create)
		r.Put("/{id}", h.Update)
		r.Delete("/{id}", h.Delete)
	})
	return r
}

// List serves the event schedule.
func (h *Handlers) List(w http.ResponseWriter, r *http.Request) {
	views, err := h.service.List(r.Context(), r.URL.Query().Get("modalidade"))
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	httpx.JSON(w, http.StatusOK, views)
}

// Get serves a single event.
func (h *Handlers) Get(w http.ResponseWriter, r *http.Request) {
	view, err := h.service.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	httpx.JSON(w, http.StatusOK, view)
}

// Create schedules a new event.
func (h *Handlers) Create(w http.ResponseWriter, r *http.Request) {
	var input scheduleservice.EventInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		httpx.Error(w, http.StatusBadRequest, "corpo da requisição inválido")
		return
	}

	view, err := h.service.Create(r.Context(), input)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	httpx.JSON(w, http.StatusCreated, view)
}

// Update rewrites an event.
func (h *Handlers) Update(w http.ResponseWriter, r *http.Request) {
	var input scheduleservice.EventInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		httpx.Error(w, http.StatusBadRequest, "corpo da requisição inválido")
		return
	}

	view, err := h.service.Update(r.Context(), chi.URLParam(r, "id"), input)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	httpx.JSON(w, http.StatusOK, view)
}

// Delete removes an event.
func (h *Handlers) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.service.Delete(r.Context(), chi.URLParam(r, "id")); err != nil {
		h.writeError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// writeError maps service errors to HTTP statuses.
func (h *Handlers) writeError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, scheduleservice.ErrInvalidID),
		errors.Is(err, scheduleservice.ErrEmptyVenue),
		errors.Is(err, scheduleservice.ErrMissingStart),
		errors.Is(err, scheduleservice.ErrInvalidTimeRange):
		httpx.Error(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, scheduledb.ErrNotFound):
		httpx.Error(w, http.StatusNotFound, "evento não encontrado")
	default:
		h.logger.ErrorContext(r.Context(), "Schedule request failed", slog.Any("error", err))
		httpx.Error(w, http.StatusInternalServerError, "erro interno")
	}
}
