package standingsdomain

import (
	"cmp"
	"slices"
)

// MedalTableRow accumulates an organization's podium finishes.
type MedalTableRow struct {
	Organization string
	Gold         int
	Silver       int
	Bronze       int
	Total        int
}

// BuildMedalTable tallies gold/silver/bronze per organization from positions
// 1..3 and returns the rows ranked best first. Placements beyond position 3,
// or without a resolvable organization, are skipped entirely; organizations
// with no podium finishes never appear as zero rows.
//
// Ranking cascades gold, silver, bronze, then total. Rows still tied after
// all four keys are ordered alphabetically by organization so the table is
// deterministic.
func BuildMedalTable(placements []EnrichedPlacement) []MedalTableRow {
	byOrg := make(map[string]*MedalTableRow)

	for _, e := range placements {
		if e.Organization == "" {
			continue
		}
		if e.Placement.Position < 1 || e.Placement.Position > 3 {
			continue
		}

		row, ok := byOrg[e.Organization]
		if !ok {
			row = &MedalTableRow{Organization: e.Organization}
			byOrg[e.Organization] = row
		}

		switch e.Placement.Position {
		case 1:
			row.Gold++
		case 2:
			row.Silver++
		case 3:
			row.Bronze++
		}
		row.Total++
	}

	rows := make([]MedalTableRow, 0, len(byOrg))
	for _, row := range byOrg {
		rows = append(rows, *row)
	}

	slices.SortFunc(rows, func(a, b MedalTableRow) int {
		if c := cmp.Compare(b.Gold, a.Gold); c != 0 {
			return c
		}
		if c := cmp.Compare(b.Silver, a.Silver); c != 0 {
			return c
		}
		if c := cmp.Compare(b.Bronze, a.Bronze); c != 0 {
			return c
		}
		if c := cmp.Compare(b.Total, a.Total); c != 0 {
			return c
		}
		return cmp.Compare(a.Organization, b.Organization)
	})

	return rows
}
