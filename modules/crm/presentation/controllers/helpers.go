package controllers

import (
	"net/http"

	"github.com/go-playground/validator/v10"

	"github.com/ringdesk/ringdesk/pkg/composables"
	"github.com/ringdesk/ringdesk/pkg/httpapi"
)

var validate = validator.New()

// requireTenant writes the fixed 404 envelope when no tenant resolved.
func requireTenant(w http.ResponseWriter, r *http.Request) (*composables.Tenant, bool) {
	tenant, ok := composables.UseTenant(r.Context())
	if !ok {
		_ = httpapi.WriteError(w, http.StatusNotFound, "BUSINESS_NOT_FOUND", "business not found", nil)
		return nil, false
	}
	return tenant, true
}

func writeInternalError(w http.ResponseWriter, r *http.Request, handler string, err error) {
	composables.UseLogger(r.Context()).WithField("handler", handler).WithError(err).Error("request failed")
	_ = httpapi.WriteError(w, http.StatusInternalServerError, "INTERNAL_SERVER_ERROR", "internal server error", nil)
}

func writeInvalidPayload(w http.ResponseWriter, message string) {
	_ = httpapi.WriteError(w, http.StatusBadRequest, "INVALID_PAYLOAD", message, nil)
}

func writeNotFound(w http.ResponseWriter, message string) {
	_ = httpapi.WriteError(w, http.StatusNotFound, "NOT_FOUND", message, nil)
}
