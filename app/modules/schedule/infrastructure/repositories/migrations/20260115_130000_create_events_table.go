package migrations

import (
	"context"
	"fmt"

	"github.com/uptrace/bun"
)

func init() {
	Migrations.MustRegister(func(ctx context.Context, db *bun.DB) error {
		fmt.Println("Creating events table...")

		if _, err := db.ExecContext(ctx, `
			CREATE TABLE IF NOT EXISTS events (
				id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
				modality_id UUID NOT NULL REFERENCES modalities(id),
				venue VARCHAR(160) NOT NULL,
				starts_at TIMESTAMPTZ NOT NULL,
				ends_at TIMESTAMPTZ,
				notes TEXT,
				created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
				updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
			);
			CREATE INDEX IF NOT EXISTS idx_events_modality_id ON events(modality_id);
			CREATE INDEX IF NOT EXISTS idx_events_starts_at ON events(starts_at);
		`); err != nil {
			return fmt.Errorf("failed to create events table: %w", err)
		}

		return nil
	}, func(ctx context.Context, db *bun.DB) error {
		if _, err := db.ExecContext(ctx, `DROP TABLE IF EXISTS events;`); err != nil {
			return fmt.Errorf("failed to drop events table: %w", err)
		}
		return nil
	})
}
