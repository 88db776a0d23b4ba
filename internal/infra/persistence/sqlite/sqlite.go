// Package sqlite contains the persistence layer for the CTF database, built on GORM and SQLite.
package sqlite

import (
	"context"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"ctf/config"
	"ctf/internal/errors"

	"go.uber.org/fx"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

const pingTimeout = 5 * time.Second

// Params defines the required parameters
type Params struct {
	fx.In
	fx.Lifecycle

	Config *config.Config
	Logger *slog.Logger
}

// New opens the SQLite file and ties the connection to the fx lifecycle:
// pinged on start, closed once on stop.
func New(params Params) (*gorm.DB, error) {
	db, err := Open(params.Config, params.Logger)
	if err != nil {
		return nil, err
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, errors.Wrap(err, "failed to get SQLite sql.DB")
	}

	params.Append(fx.Hook{
		OnStart: func(startCtx context.Context) error {
			ctx, cancel := context.WithTimeout(startCtx, pingTimeout)
			defer cancel()

			if err := sqlDB.PingContext(ctx); err != nil {
				return errors.Wrap(err, "failed to ping SQLite")
			}

			return nil
		},
		OnStop: func(_ context.Context) error {
			return sqlDB.Close()
		},
	})

	return db, nil
}

// Open creates the database file if needed and returns a GORM handle on it.
// The caller owns the handle and must close it through db.DB().
func Open(cfg *config.Config, logger *slog.Logger) (*gorm.DB, error) {
	if err := ensureDir(filepath.Dir(cfg.SQLite.Path)); err != nil {
		return nil, errors.Wrap(err, "failed to create SQLite directory")
	}

	db, err := gorm.Open(sqlite.Open(cfg.SQLite.DSN()), &gorm.Config{
		// Explicit transactions go through txManager.Execute.
		SkipDefaultTransaction: true,
		TranslateError:         true,
		Logger:                 newGormSlogLogger(logger, cfg),
	})
	if err != nil {
		return nil, errors.Wrapf(err, "failed to open SQLite database %s", cfg.SQLite.Path)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, errors.Wrap(err, "failed to get SQLite sql.DB")
	}
	// One writer at a time; a single connection keeps PRAGMAs and locks predictable.
	sqlDB.SetMaxOpenConns(1)

	if logger != nil {
		logger.Debug("SQLite database opened", slog.String("path", cfg.SQLite.Path))
	}

	return db, nil
}

func ensureDir(dir string) error {
	if dir == "" || dir == "." {
		return nil
	}

	return os.MkdirAll(dir, 0o755)
}
