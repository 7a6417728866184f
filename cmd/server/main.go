package main

import (
	"context"
	"os"
	"runtime/debug"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/sirupsen/logrus"

	"github.com/ringdesk/ringdesk/internal/server"
	"github.com/ringdesk/ringdesk/migrations"
	"github.com/ringdesk/ringdesk/modules"
	"github.com/ringdesk/ringdesk/pkg/application"
	"github.com/ringdesk/ringdesk/pkg/configuration"
	"github.com/ringdesk/ringdesk/pkg/eventbus"
	"github.com/ringdesk/ringdesk/pkg/logging"
)

func main() {
	conf := configuration.Use()
	defer conf.Unload()
	logger := conf.Logger()

	defer func() {
		if r := recover(); r != nil {
			logger.WithFields(logrus.Fields{
				"panic": r,
				"stack": string(debug.Stack()),
			}).Error("server panicked")
			os.Exit(1)
		}
	}()

	ctx := context.Background()
	if conf.OpenTelemetry.Enabled {
		shutdown := logging.SetupTracing(ctx, conf.OpenTelemetry.ServiceName, conf.OpenTelemetry.TempoURL)
		defer shutdown()
	}

	if conf.MigrationsEnabled {
		if err := migrations.Run(ctx, conf.Database.MigrationConnectionString(), logger); err != nil {
			logger.WithError(err).Fatal("failed to run migrations")
		}
	}

	pool, err := pgxpool.New(ctx, conf.Database.Opts)
	if err != nil {
		logger.WithError(err).Fatal("failed to connect to database")
	}
	defer pool.Close()
	if err := pool.Ping(ctx); err != nil {
		logger.WithError(err).Fatal("database is unreachable")
	}

	app := application.New(&application.ApplicationOptions{
		Pool:     pool,
		EventBus: eventbus.NewEventPublisher(logger),
		Logger:   logger,
	})
	if err := modules.Load(app); err != nil {
		logger.WithError(err).Fatal("failed to load modules")
	}

	srv, err := server.Default(&server.DefaultOptions{
		Logger:        logger,
		Configuration: conf,
		Application:   app,
	})
	if err != nil {
		logger.WithError(err).Fatal("failed to assemble server")
	}

	logger.WithField("address", conf.SocketAddress).Info("listening")
	if err := srv.Start(conf.SocketAddress); err != nil {
		logger.WithError(err).Fatal("server stopped")
	}
}
