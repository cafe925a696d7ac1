package standingsservice

import (
	"context"

	"github.com/olinsesp/olinsesp-backend/pkg/scope"
)

// Service is the standings module's application surface.
type Service interface {
	GetResults(ctx context.Context, sc scope.Scope, query ResultsQuery) (*Envelope, error)
	CreatePlacement(ctx context.Context, input UpsertPlacementInput) (*ResultView, error)
	UpdatePlacement(ctx context.Context, id string, input UpsertPlacementInput) (*ResultView, error)
	DeletePlacement(ctx context.Context, id string) error
	ExportWorkbook(ctx context.Context, sc scope.Scope) ([]byte, error)
	MedalChartPNG(ctx context.Context, sc scope.Scope) ([]byte, error)
}
