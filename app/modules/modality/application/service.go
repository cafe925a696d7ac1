package modalityservice

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel/trace"

	modalitydomain "github.com/olinsesp/olinsesp-backend/app/modules/modality/domain"
	modalitydb "github.com/olinsesp/olinsesp-backend/app/modules/modality/infrastructure/repositories"
)

// ErrInvalidID rejects malformed modality ids.
var ErrInvalidID = errors.New("invalid modality id")

// ModalityView is the JSON shape of a modality.
type ModalityView struct {
	ID             string                 `json:"id"`
	Nome           string                 `json:"nome"`
	Tipo           string                 `json:"tipo"`
	CategoriasSexo []string               `json:"categoriasSexo"`
	Facetas        []modalitydomain.Facet `json:"facetas"`
}

// ModalityInput is the write shape of a modality.
type ModalityInput struct {
	Nome           string                 `json:"nome"`
	Tipo           string                 `json:"tipo"`
	CategoriasSexo []string               `json:"categoriasSexo"`
	Facetas        []modalitydomain.Facet `json:"facetas"`
}

// Service is the modality module's application surface.
type Service interface {
	List(ctx context.Context) ([]ModalityView, error)
	Get(ctx context.Context, id string) (*ModalityView, error)
	Create(ctx context.Context, input ModalityInput) (*ModalityView, error)
	Update(ctx context.Context, id string, input ModalityInput) (*ModalityView, error)
	Delete(ctx context.Context, id string) error
}

// ModalityService implements Service over the modality repository.
type ModalityService struct {
	repo   modalitydb.Repository
	logger *slog.Logger
	tracer trace.Tracer
}

// NewModalityService creates a new ModalityService.
func NewModalityService(repo modalitydb.Repository, logger *slog.Logger, tracer trace.Tracer) *ModalityService {
	if logger == nil {
		logger = slog.Default()
	}
	return &ModalityService{repo: repo, logger: logger, tracer: tracer}
}

// List retrieves every modality.
func (s *ModalityService) List(ctx context.Context) ([]ModalityView, error) {
	ctx, span := s.tracer.Start(ctx, "ListModalities")
	defer span.End()

	modalities, err := s.repo.List(ctx, nil)
	if err != nil {
		s.logger.ErrorContext(ctx, "Failed to list modalities", slog.Any("error", err))
		return nil, fmt.Errorf("failed to list modalities: %w", err)
	}

	views := make([]ModalityView, len(modalities))
	for i := range modalities {
		views[i] = toView(&modalities[i])
	}
	return views, nil
}

// Get retrieves one modality.
func (s *ModalityService) Get(ctx context.Context, id string) (*ModalityView, error) {
	ctx, span := s.tracer.Start(ctx, "GetModality")
	defer span.End()

	modalityID, err := uuid.Parse(id)
	if err != nil {
		return nil, fmt.Errorf("%w: %q", ErrInvalidID, id)
	}

	modality, err := s.repo.GetByID(ctx, nil, modalityID)
	if err != nil {
		return nil, err
	}

	view := toView(modality)
	return &view, nil
}

// Create validates and stores a new modality.
func (s *ModalityService) Create(ctx context.Context, input ModalityInput) (*ModalityView, error) {
	ctx, span := s.tracer.Start(ctx, "CreateModality")
	defer span.End()

	if err := validateInput(input); err != nil {
		return nil, err
	}

	modality := &modalitydb.Modality{
		ID:            uuid.New(),
		Name:          input.Nome,
		Kind:          modalitydomain.Kind(input.Tipo),
		SexCategories: input.CategoriasSexo,
		Facets:        input.Facetas,
	}
	if err := s.repo.Insert(ctx, nil, modality); err != nil {
		s.logger.ErrorContext(ctx, "Failed to create modality", slog.Any("error", err))
		return nil, err
	}

	s.logger.InfoContext(ctx, "Modality created",
		slog.String("modality_id", modality.ID.String()),
		slog.String("name", modality.Name),
	)

	view := toView(modality)
	return &view, nil
}

// Update validates and rewrites a modality.
func (s *ModalityService) Update(ctx context.Context, id string, input ModalityInput) (*ModalityView, error) {
	ctx, span := s.tracer.Start(ctx, "UpdateModality")
	defer span.End()

	modalityID, err := uuid.Parse(id)
	if err != nil {
		return nil, fmt.Errorf("%w: %q", ErrInvalidID, id)
	}
	if err := validateInput(input); err != nil {
		return nil, err
	}

	modality, err := s.repo.GetByID(ctx, nil, modalityID)
	if err != nil {
		return nil, err
	}

	modality.Name = input.Nome
	modality.Kind = modalitydomain.Kind(input.Tipo)
	modality.SexCategories = input.CategoriasSexo
	modality.Facets = input.Facetas

	if err := s.repo.Update(ctx, nil, modality); err != nil {
		return nil, err
	}

	view := toView(modality)
	return &view, nil
}

// Delete removes a modality.
func (s *ModalityService) Delete(ctx context.Context, id string) error {
	ctx, span := s.tracer.Start(ctx, "DeleteModality")
	defer span.End()

	modalityID, err := uuid.Parse(id)
	if err != nil {
		return fmt.Errorf("%w: %q", ErrInvalidID, id)
	}
	return s.repo.Delete(ctx, nil, modalityID)
}

func validateInput(input ModalityInput) error {
	if input.Nome == "" {
		return modalitydomain.ErrEmptyModalityName
	}
	if err := modalitydomain.ValidateKind(modalitydomain.Kind(input.Tipo)); err != nil {
		return err
	}
	return modalitydomain.ValidateFacets(input.Facetas)
}

func toView(m *modalitydb.Modality) ModalityView {
	return ModalityView{
		ID:             m.ID.String(),
		Nome:           m.Name,
		Tipo:           string(m.Kind),
		CategoriasSexo: m.SexCategories,
		Facetas:        m.Facets,
	}
}
