package standingsservice

import (
	standingsdomain "github.com/olinsesp/olinsesp-backend/app/modules/standings/domain"
)

// ResultView is the JSON shape of one enriched result.
type ResultView struct {
	ID           string `json:"id"`
	ModalidadeID string `json:"modalidadeId"`
	Modalidade   string `json:"modalidade"`
	Posicao      int    `json:"posicao"`
	Pontos       int    `json:"pontos"`
	Atleta       string `json:"atleta"`
	Lotacao      string `json:"lotacao"`
	Sexo         string `json:"sexo"`
	InscricaoID  string `json:"inscricaoId,omitempty"`
	Tempo        string `json:"tempo,omitempty"`
	Distancia    string `json:"distancia,omitempty"`
	Observacoes  string `json:"observacoes,omitempty"`
}

// StandingsView partitions results into athlete and team lists.
type StandingsView struct {
	Atletas []ResultView `json:"atletas"`
	Equipes []ResultView `json:"equipes"`
}

// MedalRowView is one row of the medal table.
type MedalRowView struct {
	Lotacao string `json:"lotacao"`
	Ouro    int    `json:"ouro"`
	Prata   int    `json:"prata"`
	Bronze  int    `json:"bronze"`
	Total   int    `json:"total"`
}

// StatsView is the aggregate summary payload.
type StatsView struct {
	TotalResultados  int `json:"totalResultados"`
	TotalCampeoes    int `json:"totalCampeoes"`
	TotalModalidades int `json:"totalModalidades"`
	TotalLotacoes    int `json:"totalLotacoes"`
}

// FiltersView lists the distinct values available for filtering.
type FiltersView struct {
	Modalidades []string `json:"modalidades"`
	Lotacoes    []string `json:"lotacoes"`
}

// Envelope is the response shape of the results query endpoint. Dados holds
// a StandingsView, or a bare []ResultView when the caller restricts the tipo.
type Envelope struct {
	Dados          any            `json:"dados"`
	Estatisticas   *StatsView     `json:"estatisticas,omitempty"`
	QuadroMedalhas []MedalRowView `json:"quadroMedalhas,omitempty"`
	Filtros        *FiltersView   `json:"filtros,omitempty"`
}

// Result type selector values for ResultsQuery.Tipo.
const (
	TipoAtletas = "atletas"
	TipoEquipes = "equipes"
)

// ResultsQuery selects which derived payloads a results read includes.
type ResultsQuery struct {
	Filters        standingsdomain.Filters
	Tipo           string
	IncludeMedals  bool
	IncludeStats   bool
	IncludeFilters bool
}

// UpsertPlacementInput is the write shape of a placement. Points are always
// recomputed server-side from Posicao; any client-supplied points value is
// ignored.
type UpsertPlacementInput struct {
	ModalidadeID string `json:"modalidadeId"`
	Posicao      int    `json:"posicao"`
	InscricaoID  string `json:"inscricaoId,omitempty"`
	Lotacao      string `json:"lotacao,omitempty"`
	Atleta       string `json:"atleta,omitempty"`
	Tempo        string `json:"tempo,omitempty"`
	Distancia    string `json:"distancia,omitempty"`
	Observacoes  string `json:"observacoes,omitempty"`
}

// toResultView flattens an enriched placement into its JSON shape.
func toResultView(e standingsdomain.EnrichedPlacement) ResultView {
	return ResultView{
		ID:           e.Placement.ID,
		ModalidadeID: e.Placement.ModalityID,
		Modalidade:   e.ModalityName,
		Posicao:      e.Placement.Position,
		Pontos:       int(e.Placement.Points),
		Atleta:       e.AthleteName,
		Lotacao:      e.Organization,
		Sexo:         e.Sex,
		InscricaoID:  e.Placement.RegistrationID,
		Tempo:        e.Placement.Time,
		Distancia:    e.Placement.Distance,
		Observacoes:  e.Placement.Notes,
	}
}

func toResultViews(enriched []standingsdomain.EnrichedPlacement) []ResultView {
	views := make([]ResultView, len(enriched))
	for i, e := range enriched {
		views[i] = toResultView(e)
	}
	return views
}

func toMedalRowViews(rows []standingsdomain.MedalTableRow) []MedalRowView {
	views := make([]MedalRowView, len(rows))
	for i, row := range rows {
		views[i] = MedalRowView{
			Lotacao: row.Organization,
			Ouro:    row.Gold,
			Prata:   row.Silver,
			Bronze:  row.Bronze,
			Total:   row.Total,
		}
	}
	return views
}

func toStatsView(summary standingsdomain.StatsSummary) StatsView {
	return StatsView{
		TotalResultados:  summary.TotalPlacements,
		TotalCampeoes:    summary.TotalChampions,
		TotalModalidades: summary.TotalModalities,
		TotalLotacoes:    summary.TotalOrganizations,
	}
}
