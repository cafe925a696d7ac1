package standingsservice

import (
	"bytes"
	"context"
	"fmt"

	"github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"

	standingsdomain "github.com/olinsesp/olinsesp-backend/app/modules/standings/domain"
	"github.com/olinsesp/olinsesp-backend/pkg/scope"
)

// medalChartMaxRows caps the chart at the leading organizations so labels
// stay readable.
const medalChartMaxRows = 10

// MedalChartPNG renders the medal table as a PNG bar chart of total medals,
// ranked best first.
func (s *StandingsService) MedalChartPNG(ctx context.Context, sc scope.Scope) ([]byte, error) {
	ctx, span := s.tracer.Start(ctx, "MedalChartPNG")
	defer span.End()

	enriched, err := s.loadEnriched(ctx, sc)
	if err != nil {
		return nil, err
	}

	rows := standingsdomain.BuildMedalTable(enriched)
	if len(rows) == 0 {
		return renderNoDataPlaceholder()
	}
	if len(rows) > medalChartMaxRows {
		rows = rows[:medalChartMaxRows]
	}

	bars := make([]chart.Value, len(rows))
	for i, row := range rows {
		bars[i] = chart.Value{
			Label: row.Organization,
			Value: float64(row.Total),
		}
	}

	graph := chart.BarChart{
		Title:    "Quadro de Medalhas",
		Width:    800,
		Height:   400,
		BarWidth: 48,
		Bars:     bars,
		Background: chart.Style{
			FillColor: drawing.ColorWhite,
		},
	}

	buffer := bytes.NewBuffer([]byte{})
	if err := graph.Render(chart.PNG, buffer); err != nil {
		return nil, fmt.Errorf("failed to render medal chart: %w", err)
	}
	return buffer.Bytes(), nil
}

func renderNoDataPlaceholder() ([]byte, error) {
	graph := chart.Chart{
		Title:  "Sem resultados registrados",
		Width:  400,
		Height: 200,
		Series: []chart.Series{
			chart.ContinuousSeries{XValues: []float64{0, 1}, YValues: []float64{0, 1}},
		},
	}

	buffer := bytes.NewBuffer([]byte{})
	if err := graph.Render(chart.PNG, buffer); err != nil {
		return nil, fmt.Errorf("failed to render placeholder chart: %w", err)
	}
	return buffer.Bytes(), nil
}
