package scheduledb

import (
	"time"

	"github.com/google/uuid"
	"github.com/uptrace/bun"
)

// Event is a scheduled competition slot ("evento").
type Event struct {
	bun.BaseModel `bun:"table:events,alias:e"`

	ID         uuid.UUID  `bun:"id,pk,type:uuid,default:gen_random_uuid()"`
	ModalityID uuid.UUID  `bun:"modality_id,type:uuid,notnull"`
	Venue      string     `bun:"venue,notnull"`
	StartsAt   time.Time  `bun:"starts_at,notnull"`
	EndsAt     *time.Time `bun:"ends_at"`
	Notes      string     `bun:"notes"`
	CreatedAt  time.Time  `bun:"created_at,nullzero,notnull,default:current_timestamp"`
	UpdatedAt  time.Time  `bun:"updated_at,nullzero,notnull,default:current_timestamp"`
}
