package standingsdomain

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func placementAt(org string, position int) EnrichedPlacement {
	return EnrichedPlacement{
		Placement:    Placement{Position: position, Points: PointsFor(position)},
		Organization: org,
	}
}

func TestBuildMedalTable(t *testing.T) {
	tests := []struct {
		name  string
		input []EnrichedPlacement
		want  []MedalTableRow
	}{
		{
			name:  "empty input yields empty table",
			input: nil,
			want:  []MedalTableRow{},
		},
		{
			name: "podium positions are tallied per organization",
			input: []EnrichedPlacement{
				placementAt("PMDF", 1),
				placementAt("PMDF", 2),
				placementAt("CBMDF", 1),
				placementAt("CBMDF", 3),
				placementAt("CBMDF", 3),
			},
			want: []MedalTableRow{
				{Organization: "CBMDF", Gold: 1, Bronze: 2, Total: 3},
				{Organization: "PMDF", Gold: 1, Silver: 1, Total: 2},
			},
		},
		{
			name: "positions beyond third are skipped, not zero rows",
			input: []EnrichedPlacement{
				placementAt("PMDF", 1),
				placementAt("PCDF", 4),
				placementAt("PCDF", 10),
			},
			want: []MedalTableRow{
				{Organization: "PMDF", Gold: 1, Total: 1},
			},
		},
		{
			name: "placements without organization are skipped",
			input: []EnrichedPlacement{
				placementAt("", 1),
				placementAt("PMDF", 2),
			},
			want: []MedalTableRow{
				{Organization: "PMDF", Silver: 1, Total: 1},
			},
		},
		{
			name: "gold outranks any amount of silver and bronze",
			input: []EnrichedPlacement{
				placementAt("CBMDF", 2), placementAt("CBMDF", 2),
				placementAt("CBMDF", 3), placementAt("CBMDF", 3),
				placementAt("PMDF", 1),
			},
			want: []MedalTableRow{
				{Organization: "PMDF", Gold: 1, Total: 1},
				{Organization: "CBMDF", Silver: 2, Bronze: 2, Total: 4},
			},
		},
		{
			name: "ties cascade gold then silver then bronze",
			input: []EnrichedPlacement{
				placementAt("A", 1), placementAt("A", 3),
				placementAt("B", 1), placementAt("B", 2),
			},
			want: []MedalTableRow{
				{Organization: "B", Gold: 1, Silver: 1, Total: 2},
				{Organization: "A", Gold: 1, Bronze: 1, Total: 2},
			},
		},
		{
			name: "full tie falls back to alphabetical order",
			input: []EnrichedPlacement{
				placementAt("Zeta", 1),
				placementAt("Alfa", 1),
			},
			want: []MedalTableRow{
				{Organization: "Alfa", Gold: 1, Total: 1},
				{Organization: "Zeta", Gold: 1, Total: 1},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := BuildMedalTable(tt.input)
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("BuildMedalTable() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestBuildMedalTable_PointsNeverInfluenceRanking(t *testing.T) {
	// Two organizations tied on medals; one also has a 4th place entry that
	// earns points but no medal. Order is decided by medals alone.
	input := []EnrichedPlacement{
		placementAt("Alfa", 1),
		placementAt("Beta", 1),
		placementAt("Beta", 4),
	}

	got := BuildMedalTable(input)
	want := []MedalTableRow{
		{Organization: "Alfa", Gold: 1, Total: 1},
		{Organization: "Beta", Gold: 1, Total: 1},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("BuildMedalTable() mismatch (-want +got):\n%s", diff)
	}
}
