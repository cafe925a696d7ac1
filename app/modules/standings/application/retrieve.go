package standingsservice

import (
	"context"
	"fmt"
	"log/slog"

	standingsdomain "github.com/olinsesp/olinsesp-backend/app/modules/standings/domain"
	"github.com/olinsesp/olinsesp-backend/pkg/scope"
)

// GetResults reads every placement visible under the scope, enriches it, and
// assembles the requested projections. Standings honor the query filters;
// the medal table and stats always reflect the full scoped set.
func (s *StandingsService) GetResults(ctx context.Context, sc scope.Scope, query ResultsQuery) (*Envelope, error) {
	ctx, span := s.tracer.Start(ctx, "GetResults")
	defer span.End()

	enriched, err := s.loadEnriched(ctx, sc)
	if err != nil {
		s.logger.ErrorContext(ctx, "Failed to load results",
			slog.String("scope", sc.Organization),
			slog.Any("error", err),
		)
		return nil, err
	}

	standings := standingsdomain.ComputeStandings(enriched, query.Filters)

	envelope := &Envelope{}
	switch query.Tipo {
	case TipoAtletas:
		envelope.Dados = toResultViews(standings.Athletes)
	case TipoEquipes:
		envelope.Dados = toResultViews(standings.Teams)
	default:
		envelope.Dados = StandingsView{
			Atletas: toResultViews(standings.Athletes),
			Equipes: toResultViews(standings.Teams),
		}
	}

	if query.IncludeMedals {
		envelope.QuadroMedalhas = toMedalRowViews(standingsdomain.BuildMedalTable(enriched))
	}
	if query.IncludeStats || query.IncludeFilters {
		summary := standingsdomain.Summarize(enriched)
		if query.IncludeStats {
			stats := toStatsView(summary)
			envelope.Estatisticas = &stats
		}
		if query.IncludeFilters {
			envelope.Filtros = &FiltersView{
				Modalidades: summary.Modalities,
				Lotacoes:    summary.Organizations,
			}
		}
	}

	s.logger.InfoContext(ctx, "Computed results projections",
		slog.Int("placements", len(enriched)),
		slog.Int("athletes", len(standings.Athletes)),
		slog.Int("teams", len(standings.Teams)),
	)

	return envelope, nil
}

// loadEnriched reads the scoped placement rows and resolves their display
// fields against the modality and registration catalogs.
func (s *StandingsService) loadEnriched(ctx context.Context, sc scope.Scope) ([]standingsdomain.EnrichedPlacement, error) {
	rows, err := s.repo.List(ctx, nil, sc)
	if err != nil {
		return nil, fmt.Errorf("failed to list placements: %w", err)
	}

	modalities, err := s.modalities.ModalityIndex(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load modality index: %w", err)
	}
	registrants, err := s.registrants.RegistrantIndex(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load registrant index: %w", err)
	}

	placements := make([]standingsdomain.Placement, len(rows))
	for i := range rows {
		placements[i] = rows[i].ToDomain()
	}

	return standingsdomain.EnrichAll(placements, modalities, registrants), nil
}
