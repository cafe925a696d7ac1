package modalityhandlers

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	modalityservice "github.com/olinsesp/olinsesp-backend/app/modules/modality/application"
	modalitydomain "github.com/olinsesp/olinsesp-backend/app/modules/modality/domain"
	modalitydb "github.com/olinsesp/olinsesp-backend/app/modules/modality/infrastructure/repositories"
	"github.com/olinsesp/olinsesp-backend/internal/authctx"
	"github.com/olinsesp/olinsesp-backend/internal/httpx"
	"github.com/olinsesp/olinsesp-backend/pkg/jwt"
)

// Handlers exposes the modality module over HTTP.
type Handlers struct {
	service modalityservice.Service
	logger  *slog.Logger
}

// NewHandlers creates the modality HTTP handlers.
func NewHandlers(service modalityservice.Service, logger *slog.Logger) *Handlers {
	if logger == nil {
		logger = slog.Default()
	}
	return &Handlers{service: service, logger: logger}
}

// Routes mounts the modality endpoints. Writes are admin only.
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

func (h *Handlers) List(w http.ResponseWriter, r *http.Request) {
	views, err := h.service.List(r.Context())
	if err != nil {
		h.logger.ErrorContext(r.Context(), "Failed to list modalities", slog.Any("error", err))
		httpx.Error(w, http.StatusInternalServerError, "não foi possível carregar as modalidades")
		return
	}
	httpx.JSON(w, http.StatusOK, views)
}

func (h *Handlers) Get(w http.ResponseWriter, r *http.Request) {
	view, err := h.service.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	httpx.JSON(w, http.StatusOK, view)
}

func (h *Handlers) Create(w http.ResponseWriter, r *http.Request) {
	var input modalityservice.ModalityInput
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

func (h *Handlers) Update(w http.ResponseWriter, r *http.Request) {
	var input modalityservice.ModalityInput
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

func (h *Handlers) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.service.Delete(r.Context(), chi.URLParam(r, "id")); err != nil {
		h.writeError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handlers) writeError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, modalitydb.ErrNotFound):
		httpx.Error(w, http.StatusNotFound, "modalidade não encontrada")
	case errors.Is(err, modalityservice.ErrInvalidID):
		httpx.Error(w, http.StatusBadRequest, err.Error())
	case isValidationError(err):
		httpx.Error(w, http.StatusBadRequest, err.Error())
	default:
		h.logger.ErrorContext(r.Context(), "Modality operation failed", slog.Any("error", err))
		httpx.Error(w, http.StatusInternalServerError, "erro interno")
	}
}

var validationErrs = []error{
	modalitydomain.ErrEmptyModalityName,
	modalitydomain.ErrInvalidKind,
	modalitydomain.ErrUnknownFacetKind,
	modalitydomain.ErrDuplicateFacet,
	modalitydomain.ErrEmptyFacetOptions,
}

func isValidationError(err error) bool {
	for _, target := range validationErrs {
		if errors.Is(err, target) {
			return true
		}
	}
	return false
}
