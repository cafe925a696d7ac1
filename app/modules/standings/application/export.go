package standingsservice

import (
	"context"
	"fmt"

	"github.com/xuri/excelize/v2"

	standingsdomain "github.com/olinsesp/olinsesp-backend/app/modules/standings/domain"
	"github.com/olinsesp/olinsesp-backend/pkg/scope"
)

// ExportWorkbook builds an XLSX workbook with one sheet of standings and one
// sheet of the medal table, over the full scoped result set.
func (s *StandingsService) ExportWorkbook(ctx context.Context, sc scope.Scope) ([]byte, error) {
	ctx, span := s.tracer.Start(ctx, "ExportWorkbook")
	defer span.End()

	enriched, err := s.loadEnriched(ctx, sc)
	if err != nil {
		return nil, err
	}

	standings := standingsdomain.ComputeStandings(enriched, standingsdomain.Filters{})
	medals := standingsdomain.BuildMedalTable(enriched)

	f := excelize.NewFile()
	defer f.Close()

	const resultsSheet = "Resultados"
	if err := f.SetSheetName("Sheet1", resultsSheet); err != nil {
		return nil, fmt.Errorf("failed to rename results sheet: %w", err)
	}

	header := []any{"Modalidade", "Posição", "Atleta/Equipe", "Lotação", "Sexo", "Pontos", "Tempo", "Distância"}
	if err := f.SetSheetRow(resultsSheet, "A1", &header); err != nil {
		return nil, fmt.Errorf("failed to write results header: %w", err)
	}

	row := 2
	for _, view := range toResultViews(append(standings.Athletes, standings.Teams...)) {
		cell, _ := excelize.CoordinatesToCellName(1, row)
		values := []any{view.Modalidade, view.Posicao, view.Atleta, view.Lotacao, view.Sexo, view.Pontos, view.Tempo, view.Distancia}
		if err := f.SetSheetRow(resultsSheet, cell, &values); err != nil {
			return nil, fmt.Errorf("failed to write results row: %w", err)
		}
		row++
	}

	const medalsSheet = "Quadro de Medalhas"
	if _, err := f.NewSheet(medalsSheet); err != nil {
		return nil, fmt.Errorf("failed to create medals sheet: %w", err)
	}

	medalHeader := []any{"Lotação", "Ouro", "Prata", "Bronze", "Total"}
	if err := f.SetSheetRow(medalsSheet, "A1", &medalHeader); err != nil {
		return nil, fmt.Errorf("failed to write medals header: %w", err)
	}
	for i, m := range medals {
		cell, _ := excelize.CoordinatesToCellName(1, i+2)
		values := []any{m.Organization, m.Gold, m.Silver, m.Bronze, m.Total}
		if err := f.SetSheetRow(medalsSheet, cell, &values); err != nil {
			return nil, fmt.Errorf("failed to write medals row: %w", err)
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("failed to serialize workbook: %w", err)
	}
	return buf.Bytes(), nil
}
