package migrations

import (
	"context"
	"fmt"

	"github.com/uptrace/bun"
)

func init() {
	Migrations.MustRegister(func(ctx context.Context, db *bun.DB) error {
		fmt.Println("Creating modalities table...")

		if _, err := db.ExecContext(ctx, `
			CREATE TABLE IF NOT EXISTS modalities (
				id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
				name VARCHAR(120) NOT NULL,
				kind VARCHAR(20) NOT NULL,
				sex_categories JSONB NOT NULL DEFAULT '[]',
				facets JSONB NOT NULL DEFAULT '[]',
				created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
				updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
			);
			CREATE INDEX IF NOT EXISTS idx_modalities_name ON modalities(name);
		`); err != nil {
			return fmt.Errorf("failed to create modalities table: %w", err)
		}

		return nil
	}, func(ctx context.Context, db *bun.DB) error {
		if _, err := db.ExecContext(ctx, `DROP TABLE IF EXISTS modalities;`); err != nil {
			return fmt.Errorf("failed to drop modalities table: %w", err)
		}
		return nil
	})
}
