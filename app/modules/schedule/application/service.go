package scheduleservice

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel/trace"

	scheduledb "github.com/olinsesp/olinsesp-backend/app/modules/schedule/infrastructure/repositories"
)

var (
	// ErrInvalidID rejects malformed event ids.
	ErrInvalidID = errors.New("invalid event id")
	// ErrEmptyVenue rejects events without a venue.
	ErrEmptyVenue = errors.New("event venue must not be empty")
	// ErrInvalidTimeRange rejects events ending before they start.
	ErrInvalidTimeRange = errors.New("event must end after it starts")
	// ErrMissingStart rejects events without a start time.
	ErrMissingStart = errors.New("event start time is required")
)

// EventView is the JSON shape of an evento.
type EventView struct {
	ID           string     `json:"id"`
	ModalidadeID string     `json:"modalidadeId"`
	Local        string     `json:"local"`
	IniciaEm     time.Time  `json:"iniciaEm"`
	EncerraEm    *time.Time `json:"encerraEm,omitempty"`
	Observacoes  string     `json:"observacoes,omitempty"`
}

// EventInput is the write shape of an evento.
type EventInput struct {
	ModalidadeID string     `json:"modalidadeId"`
	Local        string     `json:"local"`
	IniciaEm     time.Time  `json:"iniciaEm"`
	EncerraEm    *time.Time `json:"encerraEm"`
	Observacoes  string     `json:"observacoes"`
}

// Service is the schedule module's application surface.
type Service interface {
	List(ctx context.Context, modalidadeID string) ([]EventView, error)
	Get(ctx context.Context, id string) (*EventView, error)
	Create(ctx context.Context, input EventInput) (*EventView, error)
	Update(ctx context.Context, id string, input EventInput) (*EventView, error)
	Delete(ctx context.Context, id string) error
}

// ScheduleService implements Service over the schedule repository.
type ScheduleService struct {
	repo   scheduledb.Repository
	logger *slog.Logger
	tracer trace.Tracer
}

// NewScheduleService creates a new ScheduleService.
func NewScheduleService(repo scheduledb.Repository, logger *slog.Logger, tracer trace.Tracer) *ScheduleService {
	if logger == nil {
		logger = slog.Default()
	}
	return &ScheduleService{repo: repo, logger: logger, tracer: tracer}
}

// List retrieves events in chronological order, optionally narrowed to one
// modality.
func (s *ScheduleService) List(ctx context.Context, modalidadeID string) ([]EventView, error) {
	ctx, span := s.tracer.Start(ctx, "ListEvents")
	defer span.End()

	filter := uuid.Nil
	if modalidadeID != "" {
		parsed, err := uuid.Parse(modalidadeID)
		if err != nil {
			return nil, fmt.Errorf("%w: %q", ErrInvalidID, modalidadeID)
		}
		filter = parsed
	}

	events, err := s.repo.List(ctx, nil, filter)
	if err != nil {
		s.logger.ErrorContext(ctx, "Failed to list events", slog.Any("error", err))
		return nil, fmt.Errorf("failed to list events: %w", err)
	}

	views := make([]EventView, len(events))
	for i := range events {
		views[i] = toView(&events[i])
	}
	return views, nil
}

// Get retrieves one event.
func (s *ScheduleService) Get(ctx context.Context, id string) (*EventView, error) {
	ctx, span := s.tracer.Start(ctx, "GetEvent")
	defer span.End()

	eventID, err := uuid.Parse(id)
	if err != nil {
		return nil, fmt.Errorf("%w: %q", ErrInvalidID, id)
	}

	event, err := s.repo.GetByID(ctx, nil, eventID)
	if err != nil {
		return nil, err
	}

	view := toView(event)
	return &view, nil
}

// Create validates and stores a new event.
func (s *ScheduleService) Create(ctx context.Context, input EventInput) (*EventView, error) {
	ctx, span := s.tracer.Start(ctx, "CreateEvent")
	defer span.End()

	modalityID, err := validateInput(input)
	if err != nil {
		return nil, err
	}

	event := &scheduledb.Event{
		ID:         uuid.New(),
		ModalityID: modalityID,
		Venue:      input.Local,
		StartsAt:   input.IniciaEm,
		EndsAt:     input.EncerraEm,
		Notes:      input.Observacoes,
	}
	if err := s.repo.Insert(ctx, nil, event); err != nil {
		s.logger.ErrorContext(ctx, "Failed to create event", slog.Any("error", err))
		return nil, err
	}

	s.logger.InfoContext(ctx, "Event scheduled",
		slog.String("event_id", event.ID.String()),
		slog.String("modality_id", event.ModalityID.String()),
		slog.Time("starts_at", event.StartsAt),
	)

	view := toView(event)
	return &view, nil
}

// Update validates and rewrites an event.
func (s *ScheduleService) Update(ctx context.Context, id string, input EventInput) (*EventView, error) {
	ctx, span := s.tracer.Start(ctx, "UpdateEvent")
	defer span.End()

	eventID, err := uuid.Parse(id)
	if err != nil {
		return nil, fmt.Errorf("%w: %q", ErrInvalidID, id)
	}
	modalityID, err := validateInput(input)
	if err != nil {
		return nil, err
	}

	event, err := s.repo.GetByID(ctx, nil, eventID)
	if err != nil {
		return nil, err
	}

	event.ModalityID = modalityID
	event.Venue = input.Local
	event.StartsAt = input.IniciaEm
	event.EndsAt = input.EncerraEm
	event.Notes = input.Observacoes

	if err := s.repo.Update(ctx, nil, event); err != nil {
		return nil, err
	}

	view := toView(event)
	return &view, nil
}

// Delete removes an event.
func (s *ScheduleService) Delete(ctx context.Context, id string) error {
	ctx, span := s.tracer.Start(ctx, "DeleteEvent")
	defer span.End()

	eventID, err := uuid.Parse(id)
	if err != nil {
		return fmt.Errorf("%w: %q", ErrInvalidID, id)
	}
	return s.repo.Delete(ctx, nil, eventID)
}

func validateInput(input EventInput) (uuid.UUID, error) {
	modalityID, err := uuid.Parse(input.ModalidadeID)
	if err != nil {
		return uuid.Nil, fmt.Errorf("%w: %q", ErrInvalidID, input.ModalidadeID)
	}
	if input.Local == "" {
		return uuid.Nil, ErrEmptyVenue
	}
	if input.IniciaEm.IsZero() {
		return uuid.Nil, ErrMissingStart
	}
	if input.EncerraEm != nil && !input.EncerraEm.After(input.IniciaEm) {
		return uuid.Nil, ErrInvalidTimeRange
	}
	return modalityID, nil
}

func toView(e *scheduledb.Event) EventView {
	return EventView{
		ID:           e.ID.String(),
		ModalidadeID: e.ModalityID.String(),
		Local:        e.Venue,
		IniciaEm:     e.StartsAt,
		EncerraEm:    e.EndsAt,
		Observacoes:  e.Notes,
	}
}
