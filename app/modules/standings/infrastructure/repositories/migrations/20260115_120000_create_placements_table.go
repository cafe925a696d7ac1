package migrations

import (
	"context"
	"fmt"

	"github.com/uptrace/bun"
)

func init() {
	Migrations.MustRegister(func(ctx context.Context, db *bun.DB) error {
		fmt.Println("Creating placements table...")

		if _, err := db.ExecContext(ctx, `
			CREATE TABLE IF NOT EXISTS placements (
				id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
				modality_id UUID NOT NULL REFERENCES modalities(id),
				position INTEGER NOT NULL CHECK (position >= 1),
				registration_id UUID REFERENCES registrations(id),
				organization VARCHAR(120),
				override_name VARCHAR(160),
				points INTEGER NOT NULL DEFAULT 0,
				result_time VARCHAR(40),
				result_distance VARCHAR(40),
				notes TEXT,
				created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
				updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
			);
			CREATE INDEX IF NOT EXISTS idx_placements_modality_id ON placements(modality_id);
			CREATE INDEX IF NOT EXISTS idx_placements_registration_id ON placements(registration_id);
			CREATE INDEX IF NOT EXISTS idx_placements_organization ON placements(organization);
		`); err != nil {
			return fmt.Errorf("failed to create placements table: %w", err)
		}

		return nil
	}, func(ctx context.Context, db *bun.DB) error {
		if _, err := db.ExecContext(ctx, `DROP TABLE IF EXISTS placements;`); err != nil {
			return fmt.Errorf("failed to drop placements table: %w", err)
		}
		return nil
	})
}
