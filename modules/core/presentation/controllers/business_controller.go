package controllers

import (
	"encoding/json"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/gorilla/mux"

	"github.com/ringdesk/ringdesk/modules/core/services"
	"github.com/ringdesk/ringdesk/pkg/application"
	"github.com/ringdesk/ringdesk/pkg/httpapi"
)

var validate = validator.New()

// BusinessController serves tenant-level settings.
type BusinessController struct {
	app             application.Application
	businessService *services.BusinessService
	basePath        string
}

func NewBusinessController(app application.Application) application.Controller {
	return &BusinessController{
		app:             app,
		businessService: app.Service(services.BusinessService{}).(*services.BusinessService),
		basePath:        "/api/business",
	}
}

func (c *BusinessController) Key() string {
	return c.basePath
}

func (c *BusinessController) Register(r *mux.Router) {
	router := r.PathPrefix(c.basePath).Subrouter()
	router.HandleFunc("/notification-phone", c.GetNotificationPhone).Methods(http.MethodGet)
	router.HandleFunc("/notification-phone", c.SetNotificationPhone).Methods(http.MethodPut, http.MethodPost)
}

type notificationPhoneResponse struct {
	PhoneNumber string `json:"phoneNumber"`
}

type setNotificationPhoneRequest struct {
	PhoneNumber *string `json:"phoneNumber" validate:"required"`
}

func (c *BusinessController) GetNotificationPhone(w http.ResponseWriter, r *http.Request) {
	if _, ok := requireTenant(w, r); !ok {
		return
	}
	phone, err := c.businessService.NotificationPhone(r.Context())
	if err != nil {
		writeInternalError(w, r, "business.notification-phone.get", err)
		return
	}
	_ = httpapi.WriteJSON(w, http.StatusOK, &notificationPhoneResponse{PhoneNumber: phone})
}

func (c *BusinessController) SetNotificationPhone(w http.ResponseWriter, r *http.Request) {
	if _, ok := requireTenant(w, r); !ok {
		return
	}
	var payload setNotificationPhoneRequest
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		_ = httpapi.WriteError(w, http.StatusBadRequest, "INVALID_PAYLOAD", "malformed JSON body", nil)
		return
	}
	if err := validate.Struct(&payload); err != nil {
		_ = httpapi.WriteError(w, http.StatusBadRequest, "INVALID_PAYLOAD", "phoneNumber is required", nil)
		return
	}
	if err := c.businessService.SetNotificationPhone(r.Context(), *payload.PhoneNumber); err != nil {
		writeInternalError(w, r, "business.notification-phone.set", err)
		return
	}
	_ = httpapi.WriteJSON(w, http.StatusOK, &notificationPhoneResponse{PhoneNumber: *payload.PhoneNumber})
}
