package standingsdb_test

import (
	"context"
	"database/sql"
	"os"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/uptrace/bun"
	"github.com/uptrace/bun/dialect/pgdialect"
	"github.com/uptrace/bun/driver/pgdriver"
	"github.com/uptrace/bun/migrate"

	modalitydb "github.com/olinsesp/olinsesp-backend/app/modules/modality/infrastructure/repositories"
	modalitymigrations "github.com/olinsesp/olinsesp-backend/app/modules/modality/infrastructure/repositories/migrations"
	registrationdb "github.com/olinsesp/olinsesp-backend/app/modules/registration/infrastructure/repositories"
	registrationmigrations "github.com/olinsesp/olinsesp-backend/app/modules/registration/infrastructure/repositories/migrations"
	standingsdb "github.com/olinsesp/olinsesp-backend/app/modules/standings/infrastructure/repositories"
	standingsmigrations "github.com/olinsesp/olinsesp-backend/app/modules/standings/infrastructure/repositories/migrations"
	"github.com/olinsesp/olinsesp-backend/pkg/scope"
)

// setupDB starts a throwaway Postgres container and applies the migrations
// the placements table depends on.
func setupDB(t *testing.T) *bun.DB {
	t.Helper()

	if os.Getenv("OLINSESP_INTEGRATION") == "" {
		t.Skip("set OLINSESP_INTEGRATION=1 to run integration tests")
	}

	ctx := context.Background()

	pgContainer, err := postgres.Run(ctx,
		"postgres:16-alpine",
		postgres.WithDatabase("testdb"),
		postgres.WithUsername("testuser"),
		postgres.WithPassword("testpass"),
		postgres.BasicWaitStrategies(),
	)
	require.NoError(t, err)
	t.Cleanup(func() {
		_ = pgContainer.Terminate(context.Background())
	})

	dsn, err := pgContainer.ConnectionString(ctx, "sslmode=disable")
	require.NoError(t, err)

	sqldb := sql.OpenDB(pgdriver.NewConnector(pgdriver.WithDSN(dsn)))
	db := bun.NewDB(sqldb, pgdialect.New())
	t.Cleanup(func() { _ = db.Close() })

	for _, migrations := range []*migrate.Migrations{
		modalitymigrations.Migrations,
		registrationmigrations.Migrations,
		standingsmigrations.Migrations,
	} {
		migrator := migrate.NewMigrator(db, migrations)
		require.NoError(t, migrator.Init(ctx))
		_, err := migrator.Migrate(ctx)
		require.NoError(t, err)
	}

	return db
}

func TestPlacementRepositoryScopedList(t *testing.T) {
	db := setupDB(t)
	ctx := context.Background()

	modality := &modalitydb.Modality{ID: uuid.New(), Name: "Natação 50m", Kind: "individual"}
	_, err := db.NewInsert().Model(modality).Exec(ctx)
	require.NoError(t, err)

	registrant := &registrationdb.Registrant{
		ID:           uuid.New(),
		Name:         "João Silva",
		Organization: "Secretaria de Obras",
		ModalityID:   modality.ID,
	}
	_, err = db.NewInsert().Model(registrant).Exec(ctx)
	require.NoError(t, err)

	repo := standingsdb.NewRepository(db)

	individual := &standingsdb.Placement{
		ID:             uuid.New(),
		ModalityID:     modality.ID,
		Position:       1,
		RegistrationID: &registrant.ID,
		Points:         20,
	}
	team := &standingsdb.Placement{
		ID:           uuid.New(),
		ModalityID:   modality.ID,
		Position:     2,
		Organization: "Guarda Municipal",
		Points:       15,
	}
	require.NoError(t, repo.Insert(ctx, nil, individual))
	require.NoError(t, repo.Insert(ctx, nil, team))

	t.Run("admin sees everything ordered by position", func(t *testing.T) {
		rows, err := repo.List(ctx, nil, scope.Admin())
		require.NoError(t, err)
		require.Len(t, rows, 2)
		assert.Equal(t, individual.ID, rows[0].ID)
		assert.Equal(t, team.ID, rows[1].ID)
	})

	t.Run("focal sees own registrant's individual result", func(t *testing.T) {
		rows, err := repo.List(ctx, nil, scope.ForOrganization("Secretaria de Obras"))
		require.NoError(t, err)
		require.Len(t, rows, 1)
		assert.Equal(t, individual.ID, rows[0].ID)
	})

	t.Run("focal sees own team result by organization label", func(t *testing.T) {
		rows, err := repo.List(ctx, nil, scope.ForOrganization("Guarda Municipal"))
		require.NoError(t, err)
		require.Len(t, rows, 1)
		assert.Equal(t, team.ID, rows[0].ID)
	})

	t.Run("unrelated organization sees nothing", func(t *testing.T) {
		rows, err := repo.List(ctx, nil, scope.ForOrganization("Secretaria de Saúde"))
		require.NoError(t, err)
		assert.Empty(t, rows)
	})
}

func TestPlacementRepositoryCRUD(t *testing.T) {
	db := setupDB(t)
	ctx := context.Background()

	modality := &modalitydb.Modality{ID: uuid.New(), Name: "Xadrez", Kind: "individual"}
	_, err := db.NewInsert().Model(modality).Exec(ctx)
	require.NoError(t, err)

	repo := standingsdb.NewRepository(db)

	placement := &standingsdb.Placement{
		ID:           uuid.New(),
		ModalityID:   modality.ID,
		Position:     3,
		Organization: "Secretaria de Educação",
		Points:       12,
	}
	require.NoError(t, repo.Insert(ctx, nil, placement))

	loaded, err := repo.GetByID(ctx, nil, placement.ID)
	require.NoError(t, err)
	assert.Equal(t, 3, loaded.Position)
	assert.Equal(t, 12, loaded.Points)
	assert.WithinDuration(t, time.Now(), loaded.CreatedAt, time.Minute)

	loaded.Position = 1
	loaded.Points = 20
	require.NoError(t, repo.Update(ctx, nil, loaded))

	reloaded, err := repo.GetByID(ctx, nil, placement.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, reloaded.Position)
	assert.Equal(t, 20, reloaded.Points)

	require.NoError(t, repo.Delete(ctx, nil, placement.ID))
	_, err = repo.GetByID(ctx, nil, placement.ID)
	assert.ErrorIs(t, err, standingsdb.ErrNotFound)

	assert.ErrorIs(t, repo.Delete(ctx, nil, placement.ID), standingsdb.ErrNotFound)
	assert.ErrorIs(t, repo.Update(ctx, nil, reloaded), standingsdb.ErrNotFound)
}
