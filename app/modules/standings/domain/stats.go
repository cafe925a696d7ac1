package standingsdomain

import "slices"

// StatsSummary carries the aggregate counts shown on dashboard cards and
// returned by the summary payload.
type StatsSummary struct {
	TotalPlacements    int
	TotalChampions     int
	TotalModalities    int
	TotalOrganizations int
	Modalities         []string
	Organizations      []string
}

// Summarize derives aggregate counts from an enriched set. Empty input
// yields zeros and empty slices, never an error. The distinct name lists are
// sorted for stable output.
func Summarize(placements []EnrichedPlacement) StatsSummary {
	modalities := make(map[string]struct{})
	organizations := make(map[string]struct{})

	summary := StatsSummary{
		Modalities:    []string{},
		Organizations: []string{},
	}

	for _, e := range placements {
		summary.TotalPlacements++
		if e.Placement.Position == 1 {
			summary.TotalChampions++
		}
		if _, seen := modalities[e.ModalityName]; !seen {
			modalities[e.ModalityName] = struct{}{}
			summary.Modalities = append(summary.Modalities, e.ModalityName)
		}
		if e.Organization != "" {
			if _, seen := organizations[e.Organization]; !seen {
				organizations[e.Organization] = struct{}{}
				summary.Organizations = append(summary.Organizations, e.Organization)
			}
		}
	}

	slices.Sort(summary.Modalities)
	slices.Sort(summary.Organizations)
	summary.TotalModalities = len(summary.Modalities)
	summary.TotalOrganizations = len(summary.Organizations)

	return summary
}
