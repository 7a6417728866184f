package controllers

import (
	"encoding/csv"
	"net/http"
	"time"

	"github.com/gorilla/mux"

	"github.com/ringdesk/ringdesk/modules/crm/services"
	"github.com/ringdesk/ringdesk/pkg/application"
)

// AnalyticsController exports recent call activity as a CSV attachment.
type AnalyticsController struct {
	app            application.Application
	callLogService *services.CallLogService
	basePath       string
}

func NewAnalyticsController(app application.Application) application.Controller {
	return &AnalyticsController{
		app:            app,
		callLogService: app.Service(services.CallLogService{}).(*services.CallLogService),
		basePath:       "/api/analytics",
	}
}

func (c *AnalyticsController) Key() string {
	return c.basePath
}

func (c *AnalyticsController) Register(r *mux.Router) {
	router := r.PathPrefix(c.basePath).Subrouter()
	router.HandleFunc("/report", c.Report).Methods(http.MethodGet)
}

var reportHeader = []string{"callSid", "from", "to", "status", "direction", "createdAt"}

func (c *AnalyticsController) Report(w http.ResponseWriter, r *http.Request) {
	if _, ok := requireTenant(w, r); !ok {
		return
	}
	logs, err := c.callLogService.ListForExport(r.Context())
	if err != nil {
		writeInternalError(w, r, "analytics.report", err)
		return
	}

	w.Header().Set("Content-Type", "text/csv")
	w.Header().Set("Content-Disposition", `attachment; filename="call-report.csv"`)
	w.WriteHeader(http.StatusOK)

	writer := csv.NewWriter(w)
	if err := writer.Write(reportHeader); err != nil {
		return
	}
	for _, log := range logs {
		record := []string{
			log.CallSid,
			log.From,
			log.To,
			log.Status,
			log.Direction,
			log.CreatedAt.UTC().Format(time.RFC3339),
		}
		if err := writer.Write(record); err != nil {
			return
		}
	}
	writer.Flush()
}
