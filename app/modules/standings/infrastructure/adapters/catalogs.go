// Package adapters bridges the standings module to the lookup data owned by
// the modality and registration modules.
package adapters

import (
	"context"
	"fmt"

	modalitydb "github.com/olinsesp/olinsesp-backend/app/modules/modality/infrastructure/repositories"
	registrationdb "github.com/olinsesp/olinsesp-backend/app/modules/registration/infrastructure/repositories"
	standingsdomain "github.com/olinsesp/olinsesp-backend/app/modules/standings/domain"
	"github.com/olinsesp/olinsesp-backend/pkg/scope"
)

// ModalityCatalogAdapter loads the modality lookup from the modality
// repository.
type ModalityCatalogAdapter struct {
	repo modalitydb.Repository
}

// NewModalityCatalog creates a catalog over the modality repository.
func NewModalityCatalog(repo modalitydb.Repository) *ModalityCatalogAdapter {
	return &ModalityCatalogAdapter{repo: repo}
}

// ModalityIndex reads every modality into a map keyed by id.
func (a *ModalityCatalogAdapter) ModalityIndex(ctx context.Context) (standingsdomain.ModalityIndex, error) {
	modalities, err := a.repo.List(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to load modalities: %w", err)
	}

	index := make(standingsdomain.ModalityIndex, len(modalities))
	for _, m := range modalities {
		index[m.ID.String()] = standingsdomain.ModalityInfo{
			Name:          m.Name,
			SexCategories: m.SexCategories,
		}
	}
	return index, nil
}

// RegistrantCatalogAdapter loads the registration lookup from the
// registration repository. Lookups are always unrestricted: enrichment may
// resolve the name behind any visible placement, while visibility itself is
// decided by the placement scope filter.
type RegistrantCatalogAdapter struct {
	repo registrationdb.Repository
}

// NewRegistrantCatalog creates a catalog over the registration repository.
func NewRegistrantCatalog(repo registrationdb.Repository) *RegistrantCatalogAdapter {
	return &RegistrantCatalogAdapter{repo: repo}
}

// RegistrantIndex reads every registration into a map keyed by id.
func (a *RegistrantCatalogAdapter) RegistrantIndex(ctx context.Context) (standingsdomain.RegistrantIndex, error) {
	registrants, err := a.repo.List(ctx, nil, scope.Admin(), registrationdb.ListFilter{})
	if err != nil {
		return nil, fmt.Errorf("failed to load registrations: %w", err)
	}

	index := make(standingsdomain.RegistrantIndex, len(registrants))
	for _, r := range registrants {
		index[r.ID.String()] = standingsdomain.RegistrantInfo{
			Name:         r.Name,
			Organization: r.Organization,
		}
	}
	return index, nil
}
