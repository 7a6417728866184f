// Package migrations embeds the SQL schema and applies it with goose.
package migrations

import (
	"context"
	"database/sql"
	"embed"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/pkg/errors"
	"github.com/pressly/goose/v3"
	"github.com/sirupsen/logrus"
)

//go:embed *.sql
var embedMigrations embed.FS

// Run applies all pending migrations over a short-lived database/sql
// connection. connString should be the direct (non-pooled) DSN when one
// is configured.
func Run(ctx context.Context, connString string, logger *logrus.Logger) error {
	db, err := sql.Open("pgx", connString)
	if err != nil {
		return errors.Wrap(err, "failed to open migration connection")
	}
	defer func() {
		if err := db.Close(); err != nil {
			logger.WithError(err).Warn("failed to close migration connection")
		}
	}()

	goose.SetBaseFS(embedMigrations)
	if err := goose.SetDialect("postgres"); err != nil {
		return err
	}
	if err := goose.UpContext(ctx, db, "."); err != nil {
		return errors.Wrap(err, "failed to apply migrations")
	}
	logger.Info("migrations applied")
	return nil
}
