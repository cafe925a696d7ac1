package migrations

import (
	"context"
	"fmt"

	"github.com/uptrace/bun"
)

func init() {
	Migrations.MustRegister(func(ctx context.Context, db *bun.DB) error {
		fmt.Println("Creating registrations table...")

		if _, err := db.ExecContext(ctx, `
			CREATE TABLE IF NOT EXISTS registrations (
				id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
				name VARCHAR(160) NOT NULL,
				organization VARCHAR(120) NOT NULL,
				modality_id UUID NOT NULL REFERENCES modalities(id),
				selections JSONB NOT NULL DEFAULT '{}',
				attendance_confirmed BOOLEAN NOT NULL DEFAULT FALSE,
				created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
				updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
			);
			CREATE INDEX IF NOT EXISTS idx_registrations_organization ON registrations(organization);
			CREATE INDEX IF NOT EXISTS idx_registrations_modality_id ON registrations(modality_id);
		`); err != nil {
			return fmt.Errorf("failed to create registrations table: %w", err)
		}

		return nil
	}, func(ctx context.Context, db *bun.DB) error {
		if _, err := db.ExecContext(ctx, `DROP TABLE IF EXISTS registrations;`); err != nil {
			return fmt.Errorf("failed to drop registrations table: %w", err)
		}
		return nil
	})
}
