package main

import (
	"context"
	"log/slog"
	"os"
	"time"

	"ctf/config"
	"ctf/internal/domain/entity"
	"ctf/internal/infra/auth"
	"ctf/internal/infra/fixture"
	logs "ctf/internal/infra/log"
	"ctf/internal/infra/persistence/sqlite"
	"ctf/internal/usecase"
	"ctf/internal/usecase/impl"
	"ctf/internal/util"

	"go.uber.org/fx"
	"go.uber.org/fx/fxevent"
)

const lifecycleTimeout = 15 * time.Second

type seedParams struct {
	Seeder   usecase.SeedUsecase
	Fixtures *entity.Fixtures
	Logger   *slog.Logger
	Config   *config.Config
}

func main() {
	os.Exit(execute())
}

// execute builds the app, seeds, and returns the process exit code.
// Extra options let callers replace providers.
func execute(opts ...fx.Option) int {
	var params seedParams

	app := fx.New(
		injectInfra(),
		injectRepo(),
		injectService(),
		injectUsecase(),
		fx.WithLogger(func(logger *slog.Logger) fxevent.Logger {
			l := &fxevent.SlogLogger{Logger: logger}
			l.UseLogLevel(slog.LevelDebug)

			return l
		}),
		fx.Populate(&params.Seeder, &params.Fixtures, &params.Logger, &params.Config),
		fx.Options(opts...),
	)
	if err := app.Err(); err != nil {
		slog.Error("Failed to build seeder", slog.Any("error", err))

		return 1
	}

	if err := run(app, params); err != nil {
		params.Logger.Error("Database initialization failed", slog.Any("error", err))

		return 1
	}

	return 0
}

func injectInfra() fx.Option {
	return fx.Provide(
		config.New,
		logs.New,
		sqlite.New,
		fixture.New,
	)
}

func injectRepo() fx.Option {
	return fx.Options(
		fx.Provide(
			sqlite.NewSchemaRepository,
			sqlite.NewTransactionManager,
		),
	)
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			auth.NewBcryptHasher,
		),
	)
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewSeedService,
		),
	)
}

// run opens the database through the fx lifecycle, seeds it, and always
// releases the connection before returning.
func run(app *fx.App, params seedParams) (err error) {
	startCtx, cancel := context.WithTimeout(context.Background(), lifecycleTimeout)
	defer cancel()

	if err := app.Start(startCtx); err != nil {
		return err
	}

	defer func() {
		stopCtx, cancel := context.WithTimeout(context.Background(), lifecycleTimeout)
		defer cancel()

		if stopErr := app.Stop(stopCtx); stopErr != nil && err == nil {
			err = stopErr
		}
	}()

	if _, err := params.Seeder.Seed(context.Background(), params.Fixtures); err != nil {
		return err
	}

	summary, err := util.SummarizeFile(params.Config.SQLite.Path)
	if err != nil {
		return err
	}
	params.Logger.Info("Database file",
		slog.String("path", summary.Path),
		slog.String("size", summary.HumanSize()),
		slog.String("sha256", summary.Checksum),
	)

	return nil
}
