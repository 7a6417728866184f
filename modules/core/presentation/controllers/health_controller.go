package controllers

import (
	"net/http"

	"github.com/gorilla/mux"

	"github.com/ringdesk/ringdesk/modules/core/services"
	"github.com/ringdesk/ringdesk/pkg/application"
	"github.com/ringdesk/ringdesk/pkg/httpapi"
)

// HealthController reports point-in-time liveness of the external
// dependencies for uptime monitoring.
type HealthController struct {
	app           application.Application
	healthService *services.HealthService
	basePath      string
}

func NewHealthController(app application.Application) application.Controller {
	return &HealthController{
		app:           app,
		healthService: app.Service(services.HealthService{}).(*services.HealthService),
		basePath:      "/api/healthz",
	}
}

func (c *HealthController) Key() string {
	return c.basePath
}

func (c *HealthController) Register(r *mux.Router) {
	r.HandleFunc(c.basePath, c.Check).Methods(http.MethodGet)
}

func (c *HealthController) Check(w http.ResponseWriter, r *http.Request) {
	status := c.healthService.Check(r.Context())
	_ = httpapi.WriteJSON(w, http.StatusOK, status)
}
