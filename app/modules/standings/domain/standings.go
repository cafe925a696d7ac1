package standingsdomain

import (
	"cmp"
	"slices"
)

// Filters restrict standings to exact matches on the enriched display
// fields. An empty field matches everything; the three filters are
// AND-combined.
type Filters struct {
	Modality     string
	Category     string
	Organization string
}

// Matches reports whether an enriched placement passes every set filter.
func (f Filters) Matches(e EnrichedPlacement) bool {
	if f.Modality != "" && e.ModalityName != f.Modality {
		return false
	}
	if f.Category != "" && e.Sex != f.Category {
		return false
	}
	if f.Organization != "" && e.Organization != f.Organization {
		return false
	}
	return true
}

// Standings partitions results into athlete and team subsets.
type Standings struct {
	Athletes []EnrichedPlacement
	Teams    []EnrichedPlacement
}

// ComputeStandings filters the input and partitions it on the presence of a
// registration reference. Each subset is ordered by ascending position, then
// descending points; points break ties when sub-divisions of a modality
// share a position space.
func ComputeStandings(placements []EnrichedPlacement, filters Filters) Standings {
	s := Standings{
		Athletes: []EnrichedPlacement{},
		Teams:    []EnrichedPlacement{},
	}

	for _, e := range placements {
		if !filters.Matches(e) {
			continue
		}
		if e.Placement.Individual() {
			s.Athletes = append(s.Athletes, e)
		} else {
			s.Teams = append(s.Teams, e)
		}
	}

	sortByPosition(s.Athletes)
	sortByPosition(s.Teams)
	return s
}

func sortByPosition(placements []EnrichedPlacement) {
	slices.SortStableFunc(placements, func(a, b EnrichedPlacement) int {
		if c := cmp.Compare(a.Placement.Position, b.Placement.Position); c != 0 {
			return c
		}
		return cmp.Compare(b.Placement.Points, a.Placement.Points)
	})
}
