// Package migrations embeds the SQL schema and applies it with goose.
package migrations

import (
	"context"
	"database/sql"
	"embed"
	"log/slog"

	"fitlog/config"
	"fitlog/internal/domain/lifecycle"
	"fitlog/internal/errors"

	"github.com/pressly/goose/v3"
	"go.uber.org/fx"
	"gorm.io/gorm"
)

const dialect = "postgres"

//go:embed sql/*.sql
var files embed.FS

// gooseUpContext is replaced in tests.
var gooseUpContext = func(ctx context.Context, db *sql.DB, dir string, opts ...goose.OptionsFunc) error {
	return goose.UpContext(ctx, db, dir, opts...)
}

// Up applies every pending migration to db.
func Up(ctx context.Context, db *sql.DB) error {
	goose.SetBaseFS(files)
	if err := goose.SetDialect(dialect); err != nil {
		return errors.Wrap(err, "failed to set goose dialect")
	}

	if err := gooseUpContext(ctx, db, "sql"); err != nil {
		return errors.Wrap(err, "failed to apply migrations")
	}

	return nil
}

// Params defines the parameters required to apply migrations at startup
type Params struct {
	fx.In
	fx.Lifecycle

	Config *config.Config
	Logger *slog.Logger
	DB     *gorm.DB
}

// Register applies migrations during application start when migrations.autoApply is set.
// It must be invoked after the database module so the ping hook runs first.
func Register(params Params) error {
	if params.Config.Migrations == nil || !params.Config.Migrations.AutoApply {
		params.Logger.Info("Schema migrations skipped", slog.String("reason", "autoApply disabled"))

		return nil
	}

	sqlDB, err := params.DB.DB()
	if err != nil {
		return errors.Wrap(err, "failed to get PostgreSQL sql.DB")
	}

	params.Append(fx.Hook{
		OnStart: func(startCtx context.Context) error {
			ctx, cancel := context.WithTimeout(startCtx, lifecycle.DefaultTimeout)
			defer cancel()

			if err := Up(ctx, sqlDB); err != nil {
				return err
			}
			params.Logger.Info("Schema migrations applied")

			return nil
		},
	})

	return nil
}
