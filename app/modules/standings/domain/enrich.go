package standingsdomain

// Display fallbacks for unresolved references. Enrichment never fails; every
// missing lookup degrades to one of these strings.
const (
	UnknownModality = "Modalidade Desconhecida"
	UnknownEntrant  = "Atleta/Equipe Desconhecido"
)

// Sex tags derived from a modality's declared sex categories.
const (
	SexMale   = "Masculino"
	SexFemale = "Feminino"
	SexNone   = "N/A"
)

// Placement is a raw result record as read from storage. RegistrationID is
// empty for team results; its presence alone classifies the record as an
// athlete result.
type Placement struct {
	ID             string
	ModalityID     string
	Position       int
	RegistrationID string
	Organization   string
	OverrideName   string
	Points         Points
	Time           string
	Distance       string
	Notes          string
}

// Individual reports whether the placement is an athlete result.
func (p Placement) Individual() bool {
	return p.RegistrationID != ""
}

// ModalityInfo is the slice of a modality the enricher needs.
type ModalityInfo struct {
	Name          string
	SexCategories []string
}

// RegistrantInfo is the slice of a registration the enricher needs.
type RegistrantInfo struct {
	Name         string
	Organization string
}

// ModalityDirectory resolves modality ids to display info.
type ModalityDirectory interface {
	ModalityByID(id string) (ModalityInfo, bool)
}

// RegistrantDirectory resolves registration ids to display info.
type RegistrantDirectory interface {
	RegistrantByID(id string) (RegistrantInfo, bool)
}

// ModalityIndex is a map-backed ModalityDirectory.
type ModalityIndex map[string]ModalityInfo

func (m ModalityIndex) ModalityByID(id string) (ModalityInfo, bool) {
	info, ok := m[id]
	return info, ok
}

// RegistrantIndex is a map-backed RegistrantDirectory.
type RegistrantIndex map[string]RegistrantInfo

func (m RegistrantIndex) RegistrantByID(id string) (RegistrantInfo, bool) {
	info, ok := m[id]
	return info, ok
}

// EnrichedPlacement is a placement with its display fields resolved. It is
// recomputed on every read and never persisted.
type EnrichedPlacement struct {
	Placement    Placement
	AthleteName  string
	Organization string
	ModalityName string
	Sex          string
}

// Enrich resolves the display fields of a single placement. Unresolved
// references degrade to the documented fallbacks; no input can make this
// fail.
func Enrich(p Placement, modalities ModalityDirectory, registrants RegistrantDirectory) EnrichedPlacement {
	e := EnrichedPlacement{
		Placement:    p,
		AthleteName:  UnknownEntrant,
		Organization: p.Organization,
		ModalityName: UnknownModality,
		Sex:          SexNone,
	}

	if info, ok := modalities.ModalityByID(p.ModalityID); ok {
		e.ModalityName = info.Name
		e.Sex = ResolveSex(info.SexCategories)
	}

	switch {
	case p.OverrideName != "":
		e.AthleteName = p.OverrideName
		if p.RegistrationID != "" {
			if reg, ok := registrants.RegistrantByID(p.RegistrationID); ok {
				e.Organization = reg.Organization
			}
		}
	case p.RegistrationID != "":
		if reg, ok := registrants.RegistrantByID(p.RegistrationID); ok {
			e.AthleteName = reg.Name
			e.Organization = reg.Organization
		}
	case p.Organization != "":
		e.AthleteName = p.Organization
	}

	return e
}

// EnrichAll resolves every placement in order.
func EnrichAll(placements []Placement, modalities ModalityDirectory, registrants RegistrantDirectory) []EnrichedPlacement {
	enriched := make([]EnrichedPlacement, len(placements))
	for i, p := range placements {
		enriched[i] = Enrich(p, modalities, registrants)
	}
	return enriched
}

// ResolveSex derives the sex tag from a modality's declared categories.
// Masculino wins over Feminino when both are declared; anything else,
// including mixed ("Misto") modalities, resolves to N/A.
func ResolveSex(categories []string) string {
	for _, c := range categories {
		if c == SexMale {
			return SexMale
		}
	}
	for _, c := range categories {
		if c == SexFemale {
			return SexFemale
		}
	}
	return SexNone
}
