package standingsdb

import (
	"time"

	"github.com/google/uuid"
	"github.com/uptrace/bun"

	standingsdomain "github.com/olinsesp/olinsesp-backend/app/modules/standings/domain"
)

// Placement is a persisted result record. Points are computed from the
// position at write time; a nil RegistrationID marks a team result.
type Placement struct {
	bun.BaseModel `bun:"table:placements,alias:p"`

	ID             uuid.UUID  `bun:"id,pk,type:uuid,default:gen_random_uuid()"`
	ModalityID     uuid.UUID  `bun:"modality_id,type:uuid,notnull"`
	Position       int        `bun:"position,notnull"`
	RegistrationID *uuid.UUID `bun:"registration_id,type:uuid"`
	Organization   string     `bun:"organization"`
	OverrideName   string     `bun:"override_name"`
	Points         int        `bun:"points,notnull"`
	Time           string     `bun:"result_time"`
	Distance       string     `bun:"result_distance"`
	Notes          string     `bun:"notes"`
	CreatedAt      time.Time  `bun:"created_at,nullzero,notnull,default:current_timestamp"`
	UpdatedAt      time.Time  `bun:"updated_at,nullzero,notnull,default:current_timestamp"`
}

// ToDomain converts the stored row to the aggregation core's value type.
func (p *Placement) ToDomain() standingsdomain.Placement {
	registrationID := ""
	if p.RegistrationID != nil {
		registrationID = p.RegistrationID.String()
	}
	return standingsdomain.Placement{
		ID:             p.ID.String(),
		ModalityID:     p.ModalityID.String(),
		Position:       p.Position,
		RegistrationID: registrationID,
		Organization:   p.Organization,
		OverrideName:   p.OverrideName,
		Points:         standingsdomain.Points(p.Points),
		Time:           p.Time,
		Distance:       p.Distance,
		Notes:          p.Notes,
	}
}
