package registrationdb

import (
	"time"

	"github.com/google/uuid"
	"github.com/uptrace/bun"

	modalitydomain "github.com/olinsesp/olinsesp-backend/app/modules/modality/domain"
)

// Registrant is a persisted athlete/team registration ("inscrição").
type Registrant struct {
	bun.BaseModel `bun:"table:registrations,alias:r"`

	ID                  uuid.UUID                           `bun:"id,pk,type:uuid,default:gen_random_uuid()"`
	Name                string                              `bun:"name,notnull"`
	Organization        string                              `bun:"organization,notnull"`
	ModalityID          uuid.UUID                           `bun:"modality_id,type:uuid,notnull"`
	Selections          map[modalitydomain.FacetKind]string `bun:"selections,type:jsonb"`
	AttendanceConfirmed bool                                `bun:"attendance_confirmed,notnull,default:false"`
	CreatedAt           time.Time                           `bun:"created_at,nullzero,notnull,default:current_timestamp"`
	UpdatedAt           time.Time                           `bun:"updated_at,nullzero,notnull,default:current_timestamp"`
}
