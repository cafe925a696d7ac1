package standingsservice

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/uptrace/bun"

	standingsdomain "github.com/olinsesp/olinsesp-backend/app/modules/standings/domain"
	standingsdb "github.com/olinsesp/olinsesp-backend/app/modules/standings/infrastructure/repositories"
	"github.com/olinsesp/olinsesp-backend/pkg/results"
)

// CreatePlacement records a new result. Points are derived from the position
// here, at the write boundary, and stored with the row.
func (s *StandingsService) CreatePlacement(ctx context.Context, input UpsertPlacementInput) (*ResultView, error) {
	createTx := func(ctx context.Context, db bun.IDB) (results.OperationResult[*ResultView, error], error) {
		return s.createPlacementLogic(ctx, db, input)
	}

	result, err := withTelemetry(s, ctx, "CreatePlacement", input.ModalidadeID, func(ctx context.Context) (results.OperationResult[*ResultView, error], error) {
		return runInTx(s, ctx, createTx)
	})
	if err != nil {
		return nil, err
	}
	if result.IsFailure() {
		return nil, *result.Failure
	}
	return *result.Success, nil
}

func (s *StandingsService) createPlacementLogic(ctx context.Context, db bun.IDB, input UpsertPlacementInput) (results.OperationResult[*ResultView, error], error) {
	placement := &standingsdb.Placement{ID: uuid.New()}
	if failure := applyInput(placement, input); failure != nil {
		return results.FailureResult[*ResultView, error](failure), nil
	}

	if err := s.repo.Insert(ctx, db, placement); err != nil {
		return results.OperationResult[*ResultView, error]{}, fmt.Errorf("failed to create placement: %w", err)
	}

	view, err := s.enrichOne(ctx, placement)
	if err != nil {
		return results.OperationResult[*ResultView, error]{}, err
	}
	return results.SuccessResult[*ResultView, error](view), nil
}

// UpdatePlacement rewrites a result. A changed position always recomputes
// the stored points, regardless of the previous value.
func (s *StandingsService) UpdatePlacement(ctx context.Context, id string, input UpsertPlacementInput) (*ResultView, error) {
	updateTx := func(ctx context.Context, db bun.IDB) (results.OperationResult[*ResultView, error], error) {
		return s.updatePlacementLogic(ctx, db, id, input)
	}

	result, err := withTelemetry(s, ctx, "UpdatePlacement", id, func(ctx context.Context) (results.OperationResult[*ResultView, error], error) {
		return runInTx(s, ctx, updateTx)
	})
	if err != nil {
		return nil, err
	}
	if result.IsFailure() {
		return nil, *result.Failure
	}
	return *result.Success, nil
}

func (s *StandingsService) updatePlacementLogic(ctx context.Context, db bun.IDB, id string, input UpsertPlacementInput) (results.OperationResult[*ResultView, error], error) {
	placementID, err := uuid.Parse(id)
	if err != nil {
		return results.FailureResult[*ResultView, error](fmt.Errorf("%w: %q", ErrInvalidID, id)), nil
	}

	placement, err := s.repo.GetByID(ctx, db, placementID)
	if err != nil {
		if errors.Is(err, standingsdb.ErrNotFound) {
			return results.FailureResult[*ResultView, error](err), nil
		}
		return results.OperationResult[*ResultView, error]{}, fmt.Errorf("failed to load placement: %w", err)
	}

	if failure := applyInput(placement, input); failure != nil {
		return results.FailureResult[*ResultView, error](failure), nil
	}

	if err := s.repo.Update(ctx, db, placement); err != nil {
		return results.OperationResult[*ResultView, error]{}, fmt.Errorf("failed to update placement: %w", err)
	}

	view, err := s.enrichOne(ctx, placement)
	if err != nil {
		return results.OperationResult[*ResultView, error]{}, err
	}
	return results.SuccessResult[*ResultView, error](view), nil
}

// DeletePlacement removes a result.
func (s *StandingsService) DeletePlacement(ctx context.Context, id string) error {
	deleteTx := func(ctx context.Context, db bun.IDB) (results.OperationResult[bool, error], error) {
		return s.deletePlacementLogic(ctx, db, id)
	}

	result, err := withTelemetry(s, ctx, "DeletePlacement", id, func(ctx context.Context) (results.OperationResult[bool, error], error) {
		return runInTx(s, ctx, deleteTx)
	})
	if err != nil {
		return err
	}
	if result.IsFailure() {
		return *result.Failure
	}
	return nil
}

func (s *StandingsService) deletePlacementLogic(ctx context.Context, db bun.IDB, id string) (results.OperationResult[bool, error], error) {
	placementID, err := uuid.Parse(id)
	if err != nil {
		return results.FailureResult[bool, error](fmt.Errorf("%w: %q", ErrInvalidID, id)), nil
	}

	if err := s.repo.Delete(ctx, db, placementID); err != nil {
		if errors.Is(err, standingsdb.ErrNotFound) {
			return results.FailureResult[bool, error](err), nil
		}
		return results.OperationResult[bool, error]{}, fmt.Errorf("failed to delete placement: %w", err)
	}
	return results.SuccessResult[bool, error](true), nil
}

// applyInput validates the write shape and copies it onto the row. It
// returns a domain failure, or nil when the input is valid.
func applyInput(placement *standingsdb.Placement, input UpsertPlacementInput) error {
	if input.ModalidadeID == "" {
		return ErrMissingModality
	}
	modalityID, err := uuid.Parse(input.ModalidadeID)
	if err != nil {
		return fmt.Errorf("%w: modalidadeId %q", ErrInvalidID, input.ModalidadeID)
	}
	if input.Posicao < 1 {
		return fmt.Errorf("%w: got %d", ErrInvalidPosition, input.Posicao)
	}

	var registrationID *uuid.UUID
	if input.InscricaoID != "" {
		parsed, err := uuid.Parse(input.InscricaoID)
		if err != nil {
			return fmt.Errorf("%w: inscricaoId %q", ErrInvalidID, input.InscricaoID)
		}
		registrationID = &parsed
	}

	placement.ModalityID = modalityID
	placement.Position = input.Posicao
	placement.RegistrationID = registrationID
	placement.Organization = input.Lotacao
	placement.OverrideName = input.Atleta
	placement.Points = int(standingsdomain.PointsFor(input.Posicao))
	placement.Time = input.Tempo
	placement.Distance = input.Distancia
	placement.Notes = input.Observacoes
	return nil
}

// enrichOne resolves the display fields of a single stored row.
func (s *StandingsService) enrichOne(ctx context.Context, placement *standingsdb.Placement) (*ResultView, error) {
	modalities, err := s.modalities.ModalityIndex(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load modality index: %w", err)
	}
	registrants, err := s.registrants.RegistrantIndex(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load registrant index: %w", err)
	}

	view := toResultView(standingsdomain.Enrich(placement.ToDomain(), modalities, registrants))
	return &view, nil
}
