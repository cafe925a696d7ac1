// Package modalitydomain models a sport ("modalidade") and the schema-driven
// facets a registration for it must fill in.
package modalitydomain

import (
	"errors"
	"fmt"
	"slices"
)

// Kind classifies how a modality is contested.
type Kind string

const (
	KindIndividual Kind = "individual"
	KindTeam       Kind = "equipe"
	KindMixed      Kind = "misto"
)

// FacetKind tags the variant of a registration facet.
type FacetKind string

const (
	FacetSex     FacetKind = "sex"
	FacetAgeBand FacetKind = "ageband"
	FacetWeight  FacetKind = "weight"
	FacetHeat    FacetKind = "heat"
)

var facetKinds = []FacetKind{FacetSex, FacetAgeBand, FacetWeight, FacetHeat}

// Facet declares one dimension a registration must choose an option for.
// Which facets apply varies per modality; the registration form and
// validation adapt to this declaration.
type Facet struct {
	Kind    FacetKind `json:"kind"`
	Options []string  `json:"options"`
}

var (
	ErrUnknownFacetKind   = errors.New("unknown facet kind")
	ErrDuplicateFacet     = errors.New("duplicate facet kind")
	ErrEmptyFacetOptions  = errors.New("facet declares no options")
	ErrMissingSelection   = errors.New("missing selection for declared facet")
	ErrUnknownSelection   = errors.New("selection for undeclared facet")
	ErrInvalidOption      = errors.New("selection is not a declared option")
	ErrInvalidKind        = errors.New("invalid modality kind")
	ErrEmptyModalityName  = errors.New("modality name is required")
)

// ValidateKind checks the modality contest kind.
func ValidateKind(kind Kind) error {
	switch kind {
	case KindIndividual, KindTeam, KindMixed:
		return nil
	}
	return fmt.Errorf("%w: %q", ErrInvalidKind, kind)
}

// ValidateFacets checks a modality's facet declaration: every kind known and
// unique, every facet with at least one option.
func ValidateFacets(facets []Facet) error {
	seen := make(map[FacetKind]struct{}, len(facets))
	for _, f := range facets {
		if !slices.Contains(facetKinds, f.Kind) {
			return fmt.Errorf("%w: %q", ErrUnknownFacetKind, f.Kind)
		}
		if _, dup := seen[f.Kind]; dup {
			return fmt.Errorf("%w: %q", ErrDuplicateFacet, f.Kind)
		}
		seen[f.Kind] = struct{}{}
		if len(f.Options) == 0 {
			return fmt.Errorf("%w: %q", ErrEmptyFacetOptions, f.Kind)
		}
	}
	return nil
}

// ValidateSelections checks a registration's facet selections against the
// modality's declaration: exactly one declared option per declared facet,
// nothing extra.
func ValidateSelections(facets []Facet, selections map[FacetKind]string) error {
	declared := make(map[FacetKind]Facet, len(facets))
	for _, f := range facets {
		declared[f.Kind] = f
	}

	for kind := range selections {
		if _, ok := declared[kind]; !ok {
			return fmt.Errorf("%w: %q", ErrUnknownSelection, kind)
		}
	}

	for _, f := range facets {
		choice, ok := selections[f.Kind]
		if !ok || choice == "" {
			return fmt.Errorf("%w: %q", ErrMissingSelection, f.Kind)
		}
		if !slices.Contains(f.Options, choice) {
			return fmt.Errorf("%w: %q is not an option of %q", ErrInvalidOption, choice, f.Kind)
		}
	}
	return nil
}
