package registrationhandlers

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	modalitydomain "github.com/olinsesp/olinsesp-backend/app/modules/modality/domain"
	modalitydb "github.com/olinsesp/olinsesp-backend/app/modules/modality/infrastructure/repositories"
	registrationservice "github.com/olinsesp/olinsesp-backend/app/modules/registration/application"
	registrationdb "github.com/olinsesp/olinsesp-backend/app/modules/registration/infrastructure/repositories"
	"github.com/olinsesp/olinsesp-backend/internal/authctx"
	"github.com/olinsesp/olinsesp-backend/internal/httpx"
)

// Handlers exposes the registration module over HTTP.
type Handlers struct {
	service registrationservice.Service
	logger  *slog.Logger
}

// NewHandlers creates the registration HTTP handlers.
func NewHandlers(service registrationservice.Service, logger *slog.Logger) *Handlers {
	if logger == nil {
		logger = slog.Default()
	}
	return &Handlers{service: service, logger: logger}
}

// Routes mounts the inscription endpoints. Every route is scoped through the
// caller's principal, so focal points and admins share the same surface.
func (h *Handlers) Routes() chi.Router {
	r := chi.NewRouter()
	r.Get("/", h.List)
	r.Post("/", h.Create)
	r.Get("/{id}", h.Get)
	r.Post("/{id}/confirmar", h.ConfirmAttendance)
	r.Delete("/{id}", h.Delete)
	return r
}

// List serves the registrations visible to the caller.
func (h *Handlers) List(w http.ResponseWriter, r *http.Request) {
	query := registrationservice.ListQuery{
		ModalidadeID: r.URL.Query().Get("modalidade"),
	}

	views, err := h.service.List(r.Context(), authctx.ScopeFrom(r.Context()), query)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	httpx.JSON(w, http.StatusOK, views)
}

// Get serves a single registration.
func (h *Handlers) Get(w http.ResponseWriter, r *http.Request) {
	view, err := h.service.Get(r.Context(), authctx.ScopeFrom(r.Context()), chi.URLParam(r, "id"))
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	httpx.JSON(w, http.StatusOK, view)
}

// Create records a new registration.
func (h *Handlers) Create(w http.ResponseWriter, r *http.Request) {
	var input registrationservice.RegistrationInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		httpx.Error(w, http.StatusBadRequest, "corpo da requisição inválido")
		return
	}

	view, err := h.service.Create(r.Context(), authctx.ScopeFrom(r.Context()), input)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	httpx.JSON(w, http.StatusCreated, view)
}

// ConfirmAttendance marks the registration as present.
func (h *Handlers) ConfirmAttendance(w http.ResponseWriter, r *http.Request) {
	view, err := h.service.ConfirmAttendance(r.Context(), authctx.ScopeFrom(r.Context()), chi.URLParam(r, "id"))
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	httpx.JSON(w, http.StatusOK, view)
}

// Delete removes a registration.
func (h *Handlers) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.service.Delete(r.Context(), authctx.ScopeFrom(r.Context()), chi.URLParam(r, "id")); err != nil {
		h.writeError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

var validationErrs = []error{
	registrationservice.ErrInvalidID,
	registrationservice.ErrEmptyName,
	registrationservice.ErrEmptyOrganization,
	modalitydomain.ErrMissingSelection,
	modalitydomain.ErrUnknownSelection,
	modalitydomain.ErrInvalidOption,
}

func isValidationError(err error) bool {
	for _, target := range validationErrs {
		if errors.Is(err, target) {
			return true
		}
	}
	return false
}

// writeError maps service errors to HTTP statuses.
func (h *Handlers) writeError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case isValidationError(err):
		httpx.Error(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, registrationservice.ErrOrganizationDenied):
		httpx.Error(w, http.StatusForbidden, "lotação fora do escopo do usuário")
	case errors.Is(err, registrationdb.ErrNotFound):
		httpx.Error(w, http.StatusNotFound, "inscrição não encontrada")
	case errors.Is(err, modalitydb.ErrNotFound):
		httpx.Error(w, http.StatusBadRequest, "modalidade não encontrada")
	default:
		h.logger.ErrorContext(r.Context(), "Registration request failed", slog.Any("error", err))
		httpx.Error(w, http.StatusInternalServerError, "erro interno")
	}
}
