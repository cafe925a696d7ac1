package standingsdomain

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func testModalities() ModalityIndex {
	return ModalityIndex{
		"judo-m": {Name: "Judô Masculino", SexCategories: []string{"Masculino"}},
		"nat-f":  {Name: "Natação Feminina", SexCategories: []string{"Feminino"}},
		"volei":  {Name: "Vôlei Misto", SexCategories: []string{"Misto"}},
	}
}

func testRegistrants() RegistrantIndex {
	return RegistrantIndex{
		"r1": {Name: "Ana", Organization: "PMDF"},
		"r2": {Name: "Bruno", Organization: "CBMDF"},
	}
}

func TestEnrich(t *testing.T) {
	tests := []struct {
		name      string
		placement Placement
		want      EnrichedPlacement
	}{
		{
			name:      "individual result resolves registrant name and organization",
			placement: Placement{ID: "p1", ModalityID: "judo-m", Position: 1, RegistrationID: "r1", Points: 20},
			want: EnrichedPlacement{
				Placement:    Placement{ID: "p1", ModalityID: "judo-m", Position: 1, RegistrationID: "r1", Points: 20},
				AthleteName:  "Ana",
				Organization: "PMDF",
				ModalityName: "Judô Masculino",
				Sex:          "Masculino",
			},
		},
		{
			name:      "team result uses organization label as identity",
			placement: Placement{ID: "p2", ModalityID: "volei", Position: 2, Organization: "PMDF", Points: 15},
			want: EnrichedPlacement{
				Placement:    Placement{ID: "p2", ModalityID: "volei", Position: 2, Organization: "PMDF", Points: 15},
				AthleteName:  "PMDF",
				Organization: "PMDF",
				ModalityName: "Vôlei Misto",
				Sex:          "N/A",
			},
		},
		{
			name:      "explicit override name wins over registrant lookup",
			placement: Placement{ID: "p3", ModalityID: "nat-f", Position: 3, RegistrationID: "r2", OverrideName: "Carla", Points: 12},
			want: EnrichedPlacement{
				Placement:    Placement{ID: "p3", ModalityID: "nat-f", Position: 3, RegistrationID: "r2", OverrideName: "Carla", Points: 12},
				AthleteName:  "Carla",
				Organization: "CBMDF",
				ModalityName: "Natação Feminina",
				Sex:          "Feminino",
			},
		},
		{
			name:      "unknown modality degrades to fallback name",
			placement: Placement{ID: "p4", ModalityID: "missing", Position: 1, RegistrationID: "r1", Points: 20},
			want: EnrichedPlacement{
				Placement:    Placement{ID: "p4", ModalityID: "missing", Position: 1, RegistrationID: "r1", Points: 20},
				AthleteName:  "Ana",
				Organization: "PMDF",
				ModalityName: "Modalidade Desconhecida",
				Sex:          "N/A",
			},
		},
		{
			name:      "unknown registrant degrades to fallback identity",
			placement: Placement{ID: "p5", ModalityID: "judo-m", Position: 2, RegistrationID: "missing", Points: 15},
			want: EnrichedPlacement{
				Placement:    Placement{ID: "p5", ModalityID: "judo-m", Position: 2, RegistrationID: "missing", Points: 15},
				AthleteName:  "Atleta/Equipe Desconhecido",
				Organization: "",
				ModalityName: "Judô Masculino",
				Sex:          "Masculino",
			},
		},
		{
			name:      "nothing resolvable degrades everywhere",
			placement: Placement{ID: "p6", ModalityID: "missing", Position: 4, Points: 9},
			want: EnrichedPlacement{
				Placement:    Placement{ID: "p6", ModalityID: "missing", Position: 4, Points: 9},
				AthleteName:  "Atleta/Equipe Desconhecido",
				Organization: "",
				ModalityName: "Modalidade Desconhecida",
				Sex:          "N/A",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Enrich(tt.placement, testModalities(), testRegistrants())
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("Enrich() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestResolveSex(t *testing.T) {
	tests := []struct {
		name       string
		categories []string
		want       string
	}{
		{"masculino only", []string{"Masculino"}, "Masculino"},
		{"feminino only", []string{"Feminino"}, "Feminino"},
		{"both declared resolves masculino", []string{"Feminino", "Masculino"}, "Masculino"},
		{"misto resolves to N/A", []string{"Misto"}, "N/A"},
		{"empty resolves to N/A", nil, "N/A"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ResolveSex(tt.categories); got != tt.want {
				t.Errorf("ResolveSex(%v) = %q, want %q", tt.categories, got, tt.want)
			}
		})
	}
}

func TestEnrichAll_PreservesOrderAndLength(t *testing.T) {
	placements := []Placement{
		{ID: "p1", ModalityID: "judo-m", Position: 1, RegistrationID: "r1"},
		{ID: "p2", ModalityID: "volei", Position: 2, Organization: "PMDF"},
	}

	got := EnrichAll(placements, testModalities(), testRegistrants())
	if len(got) != len(placements) {
		t.Fatalf("EnrichAll() returned %d entries, want %d", len(got), len(placements))
	}
	for i := range placements {
		if got[i].Placement.ID != placements[i].ID {
			t.Errorf("EnrichAll()[%d].Placement.ID = %q, want %q", i, got[i].Placement.ID, placements[i].ID)
		}
	}
}
