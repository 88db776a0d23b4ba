package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSQLiteConfig_DSN(t *testing.T) {
	tests := []struct {
		name string
		cfg  SQLiteConfig
		want string
	}{
		{
			name: "plain path",
			cfg:  SQLiteConfig{Path: "ctf.db"},
			want: "ctf.db",
		},
		{
			name: "foreign keys only",
			cfg:  SQLiteConfig{Path: "ctf.db", ForeignKeys: true},
			want: "ctf.db?_foreign_keys=on",
		},
		{
			name: "foreign keys and busy timeout",
			cfg:  SQLiteConfig{Path: "/tmp/x.db", ForeignKeys: true, BusyTimeout: 2 * time.Second},
			want: "/tmp/x.db?_busy_timeout=2000&_foreign_keys=on",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.cfg.DSN())
		})
	}
}

func TestLoadWithEnv_MissingFileKeepsDefaults(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)

	cfg, err := LoadWithEnv(Default(), "config")
	require.NoError(t, err)

	assert.Equal(t, "ctf.db", cfg.SQLite.Path)
	assert.Equal(t, 5*time.Second, cfg.SQLite.BusyTimeout)
	assert.True(t, cfg.SQLite.ForeignKeys)
	assert.Equal(t, 12, cfg.Auth.BcryptCost)
	assert.Equal(t, "info", cfg.Env.Log.Level)
}

func TestLoadWithEnv_FileAndEnvOverrides(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)

	content := []byte(`
env:
  log:
    level: debug
sqlite:
  path: seeded.db
  busyTimeout: 1s
auth:
  bcryptCost: 10
`)
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"), content, 0o600))

	t.Setenv("AUTH_BCRYPTCOST", "4")
	t.Setenv("SEED_FIXTURESPATH", "fixtures.yaml")

	cfg, err := LoadWithEnv(Default(), "config")
	require.NoError(t, err)

	assert.Equal(t, "seeded.db", cfg.SQLite.Path)
	assert.Equal(t, time.Second, cfg.SQLite.BusyTimeout)
	assert.True(t, cfg.SQLite.ForeignKeys, "unset keys keep their defaults")
	assert.Equal(t, 4, cfg.Auth.BcryptCost)
	assert.Equal(t, "fixtures.yaml", cfg.Seed.FixturesPath)
	assert.Equal(t, "debug", cfg.Env.Log.Level)
}
