package standingsservice

import (
	"context"

	standingsdomain "github.com/olinsesp/olinsesp-backend/app/modules/standings/domain"
)

// ModalityCatalog supplies the modality lookup the enricher joins against.
type ModalityCatalog interface {
	ModalityIndex(ctx context.Context) (standingsdomain.ModalityIndex, error)
}

// RegistrantCatalog supplies the registration lookup the enricher joins
// against.
type RegistrantCatalog interface {
	RegistrantIndex(ctx context.Context) (standingsdomain.RegistrantIndex, error)
}
