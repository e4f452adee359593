package repositories

import (
	"context"
	"database/sql"
	"embed"

	"github.com/cockroachdb/errors"
	"github.com/jackc/pgx/v5/pgxpool"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"
	"github.com/riverqueue/river/riverdriver/riverpgxv5"
	"github.com/riverqueue/river/rivermigrate"

	"github.com/docflow/docflow-backend/infra"
	"github.com/docflow/docflow-backend/utils"
)

// embed migrations sql folder
//
//go:embed migrations/*.sql
var embedMigrations embed.FS

func RunMigrations(ctx context.Context, pgConfig infra.PgConfig) error {
	db, err := sql.Open("pgx", pgConfig.GetConnectionString())
	if err != nil {
		return errors.Wrap(err, "unable to connect to database")
	}
	defer db.Close()

	if err := db.PingContext(ctx); err != nil {
		return errors.Wrap(err, "unable to ping database")
	}

	goose.SetBaseFS(embedMigrations)
	goose.SetLogger(gooseLogger{ctx: ctx})
	if err := goose.SetDialect("postgres"); err != nil {
		return errors.Wrap(err, "failed to set goose dialect")
	}

	if err := goose.UpContext(ctx, db, "migrations"); err != nil {
		return errors.Wrap(err, "failed to run migrations")
	}

	return runTaskQueueMigrations(ctx, pgConfig)
}

// The task queue keeps its own schema, versioned by river itself.
func runTaskQueueMigrations(ctx context.Context, pgConfig infra.PgConfig) error {
	pool, err := pgxpool.New(ctx, pgConfig.GetConnectionString())
	if err != nil {
		return errors.Wrap(err, "unable to connect to database")
	}
	defer pool.Close()

	migrator, err := rivermigrate.New(riverpgxv5.New(pool), nil)
	if err != nil {
		return errors.Wrap(err, "failed to create river migrator")
	}

	_, err = migrator.Migrate(ctx, rivermigrate.DirectionUp, nil)
	return errors.Wrap(err, "failed to run task queue migrations")
}

type gooseLogger struct {
	ctx context.Context
}

func (l gooseLogger) Fatalf(format string, v ...interface{}) {
	utils.LoggerFromContext(l.ctx).Error(errors.Newf(format, v...).Error())
}

func (l gooseLogger) Printf(format string, v ...interface{}) {
	utils.LoggerFromContext(l.ctx).Info(errors.Newf(format, v...).Error())
}
