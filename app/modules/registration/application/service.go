package registrationservice

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel/trace"

	modalitydomain "github.com/olinsesp/olinsesp-backend/app/modules/modality/domain"
	modalitydb "github.com/olinsesp/olinsesp-backend/app/modules/modality/infrastructure/repositories"
	registrationdb "github.com/olinsesp/olinsesp-backend/app/modules/registration/infrastructure/repositories"
	"github.com/olinsesp/olinsesp-backend/pkg/scope"
)

var (
	// ErrInvalidID rejects malformed registration ids.
	ErrInvalidID = errors.New("invalid registration id")
	// ErrEmptyName rejects registrations without an athlete/team name.
	ErrEmptyName = errors.New("registration name must not be empty")
	// ErrEmptyOrganization rejects registrations without a lotação.
	ErrEmptyOrganization = errors.New("registration organization must not be empty")
	// ErrOrganizationDenied rejects writes outside the caller's lotação.
	ErrOrganizationDenied = errors.New("organization outside caller scope")
)

// RegistrationView is the JSON shape of an inscrição.
type RegistrationView struct {
	ID                 string                              `json:"id"`
	Nome               string                              `json:"nome"`
	Lotacao            string                              `json:"lotacao"`
	ModalidadeID       string                              `json:"modalidadeId"`
	Selecoes           map[modalitydomain.FacetKind]string `json:"selecoes,omitempty"`
	PresencaConfirmada bool                                `json:"presencaConfirmada"`
}

// RegistrationInput is the write shape of an inscrição.
type RegistrationInput struct {
	Nome         string                              `json:"nome"`
	Lotacao      string                              `json:"lotacao"`
	ModalidadeID string                              `json:"modalidadeId"`
	Selecoes     map[modalitydomain.FacetKind]string `json:"selecoes"`
}

// ListQuery narrows List results.
type ListQuery struct {
	ModalidadeID string
}

// Service is the registration module's application surface.
type Service interface {
	List(ctx context.Context, sc scope.Scope, query ListQuery) ([]RegistrationView, error)
	Get(ctx context.Context, sc scope.Scope, id string) (*RegistrationView, error)
	Create(ctx context.Context, sc scope.Scope, input RegistrationInput) (*RegistrationView, error)
	ConfirmAttendance(ctx context.Context, sc scope.Scope, id string) (*RegistrationView, error)
	Delete(ctx context.Context, sc scope.Scope, id string) error
}

// RegistrationService implements Service over the registration repository.
// Selections are validated against the target modality's declared facets, so
// the modality repository rides along.
type RegistrationService struct {
	repo       registrationdb.Repository
	modalities modalitydb.Repository
	logger     *slog.Logger
	tracer     trace.Tracer
}

// NewRegistrationService creates a new RegistrationService.
func NewRegistrationService(repo registrationdb.Repository, modalities modalitydb.Repository, logger *slog.Logger, tracer trace.Tracer) *RegistrationService {
	if logger == nil {
		logger = slog.Default()
	}
	return &RegistrationService{repo: repo, modalities: modalities, logger: logger, tracer: tracer}
}

// List retrieves the registrations visible under the caller's scope.
func (s *RegistrationService) List(ctx context.Context, sc scope.Scope, query ListQuery) ([]RegistrationView, error) {
	ctx, span := s.tracer.Start(ctx, "ListRegistrations")
	defer span.End()

	filter := registrationdb.ListFilter{}
	if query.ModalidadeID != "" {
		modalityID, err := uuid.Parse(query.ModalidadeID)
		if err != nil {
			return nil, fmt.Errorf("%w: %q", ErrInvalidID, query.ModalidadeID)
		}
		filter.ModalityID = modalityID
	}

	registrants, err := s.repo.List(ctx, nil, sc, filter)
	if err != nil {
		s.logger.ErrorContext(ctx, "Failed to list registrations", slog.Any("error", err))
		return nil, fmt.Errorf("failed to list registrations: %w", err)
	}

	views := make([]RegistrationView, len(registrants))
	for i := range registrants {
		views[i] = toView(&registrants[i])
	}
	return views, nil
}

// Get retrieves one registration, still bounded by the caller's scope.
func (s *RegistrationService) Get(ctx context.Context, sc scope.Scope, id string) (*RegistrationView, error) {
	ctx, span := s.tracer.Start(ctx, "GetRegistration")
	defer span.End()

	registrant, err := s.fetchScoped(ctx, sc, id)
	if err != nil {
		return nil, err
	}

	view := toView(registrant)
	return &view, nil
}

// Create validates and stores a new registration. Focal points may only
// register athletes into their own lotação.
func (s *RegistrationService) Create(ctx context.Context, sc scope.Scope, input RegistrationInput) (*RegistrationView, error) {
	ctx, span := s.tracer.Start(ctx, "CreateRegistration")
	defer span.End()

	if input.Nome == "" {
		return nil, ErrEmptyName
	}
	if input.Lotacao == "" {
		return nil, ErrEmptyOrganization
	}
	if !sc.Allows(input.Lotacao) {
		return nil, ErrOrganizationDenied
	}

	modalityID, err := uuid.Parse(input.ModalidadeID)
	if err != nil {
		return nil, fmt.Errorf("%w: %q", ErrInvalidID, input.ModalidadeID)
	}

	modality, err := s.modalities.GetByID(ctx, nil, modalityID)
	if err != nil {
		return nil, err
	}
	if err := modalitydomain.ValidateSelections(modality.Facets, input.Selecoes); err != nil {
		return nil, err
	}

	registrant := &registrationdb.Registrant{
		ID:           uuid.New(),
		Name:         input.Nome,
		Organization: input.Lotacao,
		ModalityID:   modalityID,
		Selections:   input.Selecoes,
	}
	if err := s.repo.Insert(ctx, nil, registrant); err != nil {
		s.logger.ErrorContext(ctx, "Failed to create registration", slog.Any("error", err))
		return nil, err
	}

	s.logger.InfoContext(ctx, "Registration created",
		slog.String("registration_id", registrant.ID.String()),
		slog.String("modality_id", modalityID.String()),
		slog.String("organization", registrant.Organization),
	)

	view := toView(registrant)
	return &view, nil
}

// ConfirmAttendance marks a registration as present on game day.
func (s *RegistrationService) ConfirmAttendance(ctx context.Context, sc scope.Scope, id string) (*RegistrationView, error) {
	ctx, span := s.tracer.Start(ctx, "ConfirmAttendance")
	defer span.End()

	registrant, err := s.fetchScoped(ctx, sc, id)
	if err != nil {
		return nil, err
	}

	if err := s.repo.SetAttendance(ctx, nil, registrant.ID, true); err != nil {
		return nil, err
	}
	registrant.AttendanceConfirmed = true

	view := toView(registrant)
	return &view, nil
}

// Delete removes a registration within the caller's scope.
func (s *RegistrationService) Delete(ctx context.Context, sc scope.Scope, id string) error {
	ctx, span := s.tracer.Start(ctx, "DeleteRegistration")
	defer span.End()

	registrant, err := s.fetchScoped(ctx, sc, id)
	if err != nil {
		return err
	}
	return s.repo.Delete(ctx, nil, registrant.ID)
}

// fetchScoped loads a registration and hides rows outside the caller's
// lotação behind ErrNotFound, so a focal point cannot probe other
// organizations' ids.
func (s *RegistrationService) fetchScoped(ctx context.Context, sc scope.Scope, id string) (*registrationdb.Registrant, error) {
	registrationID, err := uuid.Parse(id)
	if err != nil {
		return nil, fmt.Errorf("%w: %q", ErrInvalidID, id)
	}

	registrant, err := s.repo.GetByID(ctx, nil, registrationID)
	if err != nil {
		return nil, err
	}
	if !sc.Allows(registrant.Organization) {
		return nil, registrationdb.ErrNotFound
	}
	return registrant, nil
}

func toView(r *registrationdb.Registrant) RegistrationView {
	return RegistrationView{
		ID:                 r.ID.String(),
		Nome:               r.Name,
		Lotacao:            r.Organization,
		ModalidadeID:       r.ModalityID.String(),
		Selecoes:           r.Selections,
		PresencaConfirmada: r.AttendanceConfirmed,
	}
}
