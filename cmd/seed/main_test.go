package main

import (
	"context"
	"path/filepath"
	"testing"

	"ctf/config"
	"ctf/internal/domain/service"
	"ctf/internal/errors"
	"ctf/internal/infra/auth"
	"ctf/internal/infra/persistence/sqlite"
	mocksvc "ctf/internal/mocks/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/fx"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// withDatabase points the app at path and exposes its connection.
func withDatabase(path string, db **gorm.DB) fx.Option {
	return fx.Options(
		fx.Decorate(func(cfg *config.Config) *config.Config {
			cfg.SQLite.Path = path
			cfg.Env.Log.Level = "error"

			return cfg
		}),
		fx.Populate(db),
	)
}

func withHasher(hasher service.SecretHasher) fx.Option {
	return fx.Decorate(func(service.SecretHasher) service.SecretHasher {
		return hasher
	})
}

func countTable(t *testing.T, path, table string) int64 {
	t.Helper()

	cfg := config.Default()
	cfg.SQLite.Path = path

	db, err := sqlite.Open(cfg, nil)
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	defer sqlDB.Close()

	var count int64
	require.NoError(t, db.Table(table).Count(&count).Error)

	return count
}

func TestExecute_SeedsAndClosesDatabase(t *testing.T) {
	path := filepath.Join(t.TempDir(), "ctf.db")

	for i := 0; i < 2; i++ {
		var db *gorm.DB
		code := execute(
			withDatabase(path, &db),
			withHasher(auth.NewBcryptHasherWithCost(bcrypt.MinCost)),
		)
		require.Equal(t, 0, code, "run %d", i)

		sqlDB, err := db.DB()
		require.NoError(t, err)
		assert.Error(t, sqlDB.PingContext(context.Background()), "connection is closed after the run")
	}

	assert.Equal(t, int64(2), countTable(t, path, "users"))
	assert.Equal(t, int64(4), countTable(t, path, "questions"))
}

func TestExecute_SeedFailureExitsNonZeroAndCloses(t *testing.T) {
	path := filepath.Join(t.TempDir(), "ctf.db")

	hasher := mocksvc.NewMockSecretHasher(t)
	hasher.On("Hash", mock.Anything).Return("", errors.New("hash unavailable"))

	var db *gorm.DB
	code := execute(withDatabase(path, &db), withHasher(hasher))
	assert.Equal(t, 1, code)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	assert.Error(t, sqlDB.PingContext(context.Background()))

	assert.Equal(t, int64(0), countTable(t, path, "users"))
}

func TestExecute_BuildFailureExitsNonZero(t *testing.T) {
	dir := t.TempDir()

	code := execute(fx.Decorate(func(cfg *config.Config) *config.Config {
		cfg.SQLite.Path = filepath.Join(dir, "ctf.db")
		cfg.Seed.FixturesPath = filepath.Join(dir, "missing.yaml")

		return cfg
	}))
	assert.Equal(t, 1, code)
}
