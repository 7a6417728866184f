package server

import (
	"fmt"
	"net/http"

	"github.com/sirupsen/logrus"

	"github.com/ringdesk/ringdesk/modules/core/services"
	"github.com/ringdesk/ringdesk/pkg/application"
	"github.com/ringdesk/ringdesk/pkg/configuration"
	"github.com/ringdesk/ringdesk/pkg/constants"
	"github.com/ringdesk/ringdesk/pkg/httpapi"
	"github.com/ringdesk/ringdesk/pkg/metrics"
	"github.com/ringdesk/ringdesk/pkg/middleware"
	"github.com/ringdesk/ringdesk/pkg/server"
)

type DefaultOptions struct {
	Logger        *logrus.Logger
	Configuration *configuration.Configuration
	Application   application.Application
}

// Default assembles the HTTP server: the global middleware chain in front
// of every registered controller, plus JSON handlers for unmatched routes.
func Default(options *DefaultOptions) (*server.HTTPServer, error) {
	app := options.Application
	conf := options.Configuration

	if conf.GoAppEnvironment != configuration.Production {
		app.EventPublisher().Subscribe(debugEventLogger(options.Logger))
	}

	app.RegisterMiddleware(
		middleware.WithLogger(options.Logger),
		middleware.Provide(constants.AppKey, app),
		middleware.Provide(constants.PoolKey, app.DB()),
		middleware.Cors("http://localhost:3000", "ws://localhost:3000"),
	)
	if conf.RateLimit.Enabled {
		app.RegisterMiddleware(middleware.RateLimit(middleware.RateLimitConfig{
			RequestsPerPeriod: conf.RateLimit.GlobalRPS,
		}))
	}
	resolver := app.Service(services.TenantResolver{}).(*services.TenantResolver)
	app.RegisterMiddleware(middleware.WithTenant(resolver))

	if conf.Prometheus.Enabled {
		app.RegisterControllers(metrics.NewPrometheusController(conf.Prometheus.Path))
	}

	notFound := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_ = httpapi.WriteError(w, http.StatusNotFound, "NOT_FOUND", "route not found", nil)
	})
	notAllowed := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_ = httpapi.WriteError(w, http.StatusMethodNotAllowed, "METHOD_NOT_ALLOWED", "method not allowed", nil)
	})
	return server.NewHTTPServer(app, notFound, notAllowed), nil
}

// debugEventLogger observes every published event in development so local
// runs show the mutation stream without a dedicated subscriber.
func debugEventLogger(logger *logrus.Logger) func(event interface{}) {
	return func(event interface{}) {
		logger.WithField("event", fmt.Sprintf("%T", event)).Debug("event published")
	}
}
