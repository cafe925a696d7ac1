package modalitydb

import (
	"time"

	"github.com/google/uuid"
	"github.com/uptrace/bun"

	modalitydomain "github.com/olinsesp/olinsesp-backend/app/modules/modality/domain"
)

// Modality is the persisted form of a sport.
type Modality struct {
	bun.BaseModel `bun:"table:modalities,alias:m"`

	ID            uuid.UUID               `bun:"id,pk,type:uuid,default:gen_random_uuid()"`
	Name          string                  `bun:"name,notnull"`
	Kind          modalitydomain.Kind     `bun:"kind,notnull"`
	SexCategories []string                `bun:"sex_categories,type:jsonb"`
	Facets        []modalitydomain.Facet  `bun:"facets,type:jsonb"`
	CreatedAt     time.Time               `bun:"created_at,nullzero,notnull,default:current_timestamp"`
	UpdatedAt     time.Time               `bun:"updated_at,nullzero,notnull,default:current_timestamp"`
}
