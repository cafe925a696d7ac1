package standingshandlers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	standingsservice "github.com/olinsesp/olinsesp-backend/app/modules/standings/application"
	standingsdb "github.com/olinsesp/olinsesp-backend/app/modules/standings/infrastructure/repositories"
	"github.com/olinsesp/olinsesp-backend/internal/authctx"
	"github.com/olinsesp/olinsesp-backend/pkg/jwt"
	"github.com/olinsesp/olinsesp-backend/pkg/scope"
)

type fakeService struct {
	GetResultsFunc      func(ctx context.Context, sc scope.Scope, query standingsservice.ResultsQuery) (*standingsservice.Envelope, error)
	CreatePlacementFunc func(ctx context.Context, input standingsservice.UpsertPlacementInput) (*standingsservice.ResultView, error)
	UpdatePlacementFunc func(ctx context.Context, id string, input standingsservice.UpsertPlacementInput) (*standingsservice.ResultView, error)
	DeletePlacementFunc func(ctx context.Context, id string) error
}

func (f *fakeService) GetResults(ctx context.Context, sc scope.Scope, query standingsservice.ResultsQuery) (*standingsservice.Envelope, error) {
	if f.GetResultsFunc != nil {
		return f.GetResultsFunc(ctx, sc, query)
	}
	return &standingsservice.Envelope{Dados: standingsservice.StandingsView{}}, nil
}

func (f *fakeService) CreatePlacement(ctx context.Context, input standingsservice.UpsertPlacementInput) (*standingsservice.ResultView, error) {
	if f.CreatePlacementFunc != nil {
		return f.CreatePlacementFunc(ctx, input)
	}
	return &standingsservice.ResultView{}, nil
}

func (f *fakeService) UpdatePlacement(ctx context.Context, id string, input standingsservice.UpsertPlacementInput) (*standingsservice.ResultView, error) {
	if f.UpdatePlacementFunc != nil {
		return f.UpdatePlacementFunc(ctx, id, input)
	}
	return &standingsservice.ResultView{}, nil
}

func (f *fakeService) DeletePlacement(ctx context.Context, id string) error {
	if f.DeletePlacementFunc != nil {
		return f.DeletePlacementFunc(ctx, id)
	}
	return nil
}

func (f *fakeService) ExportWorkbook(ctx context.Context, sc scope.Scope) ([]byte, error) {
	return []byte("xlsx"), nil
}

func (f *fakeService) MedalChartPNG(ctx context.Context, sc scope.Scope) ([]byte, error) {
	return []byte("png"), nil
}

var _ standingsservice.Service = (*fakeService)(nil)

func asRole(r *http.Request, role jwt.Role, lotacao string) *http.Request {
	principal := authctx.Principal{UserID: "u1", Role: role, Lotacao: lotacao}
	return r.WithContext(authctx.WithPrincipal(r.Context(), principal))
}

func TestGetResultsQueryParsing(t *testing.T) {
	var gotQuery standingsservice.ResultsQuery
	var gotScope scope.Scope

	svc := &fakeService{
		GetResultsFunc: func(ctx context.Context, sc scope.Scope, query standingsservice.ResultsQuery) (*standingsservice.Envelope, error) {
			gotScope = sc
			gotQuery = query
			return &standingsservice.Envelope{Dados: []standingsservice.ResultView{}}, nil
		},
	}
	router := NewHandlers(svc, nil).Routes()

	req := httptest.NewRequest(http.MethodGet, "/?modalidade=Xadrez&categoria=Masculino&lotacao=Obras&tipo=atletas&medalhas=true&estatisticas=1&filtros=sim", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, asRole(req, jwt.RoleFocal, "Obras"))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Xadrez", gotQuery.Filters.Modality)
	assert.Equal(t, "Masculino", gotQuery.Filters.Category)
	assert.Equal(t, "Obras", gotQuery.Filters.Organization)
	assert.Equal(t, standingsservice.TipoAtletas, gotQuery.Tipo)
	assert.True(t, gotQuery.IncludeMedals)
	assert.True(t, gotQuery.IncludeStats)
	assert.True(t, gotQuery.IncludeFilters)
	assert.Equal(t, "Obras", gotScope.Organization)
}

func TestCreatePlacementAuthorization(t *testing.T) {
	router := NewHandlers(&fakeService{}, nil).Routes()
	body := `{"modalidadeId":"x","posicao":1}`

	t.Run("focal forbidden", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(body))
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, asRole(req, jwt.RoleFocal, "Obras"))
		assert.Equal(t, http.StatusForbidden, rec.Code)
	})

	t.Run("admin allowed", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(body))
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, asRole(req, jwt.RoleAdmin, ""))
		assert.Equal(t, http.StatusCreated, rec.Code)
	})

	t.Run("malformed body", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader("{nope"))
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, asRole(req, jwt.RoleAdmin, ""))
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestWriteErrorMapping(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
	}{
		{"invalid position", standingsservice.ErrInvalidPosition, http.StatusBadRequest},
		{"missing modality", standingsservice.ErrMissingModality, http.StatusBadRequest},
		{"invalid id", standingsservice.ErrInvalidID, http.StatusBadRequest},
		{"not found", standingsdb.ErrNotFound, http.StatusNotFound},
		{"internal", assert.AnError, http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := &fakeService{
				CreatePlacementFunc: func(ctx context.Context, input standingsservice.UpsertPlacementInput) (*standingsservice.ResultView, error) {
					return nil, tt.err
				},
			}
			router := NewHandlers(svc, nil).Routes()

			req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{}`))
			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, asRole(req, jwt.RoleAdmin, ""))

			assert.Equal(t, tt.wantStatus, rec.Code)

			var payload map[string]string
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &payload))
			assert.NotEmpty(t, payload["erro"])
		})
	}
}

func TestDeletePlacement(t *testing.T) {
	var gotID string
	svc := &fakeService{
		DeletePlacementFunc: func(ctx context.Context, id string) error {
			gotID = id
			return nil
		},
	}
	router := NewHandlers(svc, nil).Routes()

	req := httptest.NewRequest(http.MethodDelete, "/abc-123", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, asRole(req, jwt.RoleAdmin, ""))

	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Equal(t, "abc-123", gotID)
}

func TestExportHeaders(t *testing.T) {
	router := NewHandlers(&fakeService{}, nil).Routes()

	req := httptest.NewRequest(http.MethodGet, "/export", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, asRole(req, jwt.RoleAdmin, ""))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Header().Get("Content-Type"), "spreadsheetml")
	assert.Contains(t, rec.Header().Get("Content-Disposition"), "attachment")
}
