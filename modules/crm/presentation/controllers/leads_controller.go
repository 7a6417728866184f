package controllers

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"github.com/pkg/errors"

	"github.com/ringdesk/ringdesk/modules/crm/domain/entities/lead"
	"github.com/ringdesk/ringdesk/modules/crm/services"
	"github.com/ringdesk/ringdesk/pkg/application"
	"github.com/ringdesk/ringdesk/pkg/httpapi"
)

type LeadsController struct {
	app         application.Application
	leadService *services.LeadService
	basePath    string
}

func NewLeadsController(app application.Application) application.Controller {
	return &LeadsController{
		app:         app,
		leadService: app.Service(services.LeadService{}).(*services.LeadService),
		basePath:    "/api/leads",
	}
}

func (c *LeadsController) Key() string {
	return c.basePath
}

func (c *LeadsController) Register(r *mux.Router) {
	router := r.PathPrefix(c.basePath).Subrouter()
	router.HandleFunc("", c.List).Methods(http.MethodGet)
	router.HandleFunc("", c.Create).Methods(http.MethodPost)
	router.HandleFunc("/{id}", c.Update).Methods(http.MethodPut)
	router.HandleFunc("/{id}", c.Delete).Methods(http.MethodDelete)
}

type leadResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Phone     string    `json:"phone,omitempty"`
	Status    string    `json:"status"`
	Priority  string    `json:"priority"`
	Notes     string    `json:"notes,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

type createLeadRequest struct {
	Name     *string `json:"name" validate:"required"`
	Phone    string  `json:"phone"`
	Status   string  `json:"status"`
	Priority string  `json:"priority"`
	Notes    string  `json:"notes"`
}

type updateLeadRequest struct {
	Name     *string `json:"name"`
	Phone    *string `json:"phone"`
	Status   *string `json:"status"`
	Priority *string `json:"priority"`
	Notes    *string `json:"notes"`
}

func toLeadResponse(l *lead.Lead) leadResponse {
	return leadResponse{
		ID:        l.ID.String(),
		Name:      l.Name,
		Phone:     l.Phone,
		Status:    string(l.Status),
		Priority:  string(l.Priority),
		Notes:     l.Notes,
		CreatedAt: l.CreatedAt,
		UpdatedAt: l.UpdatedAt,
	}
}

func (c *LeadsController) List(w http.ResponseWriter, r *http.Request) {
	if _, ok := requireTenant(w, r); !ok {
		return
	}
	params := &lead.FindParams{
		Status:   lead.Status(r.URL.Query().Get("status")),
		Priority: lead.Priority(r.URL.Query().Get("priority")),
	}
	if params.Status != "" && !params.Status.Valid() {
		writeInvalidPayload(w, "unknown lead status")
		return
	}
	if params.Priority != "" && !params.Priority.Valid() {
		writeInvalidPayload(w, "unknown lead priority")
		return
	}
	leads, err := c.leadService.List(r.Context(), params)
	if err != nil {
		writeInternalError(w, r, "leads.list", err)
		return
	}
	resp := make([]leadResponse, 0, len(leads))
	for _, l := range leads {
		resp = append(resp, toLeadResponse(l))
	}
	_ = httpapi.WriteJSON(w, http.StatusOK, resp)
}

func (c *LeadsController) Create(w http.ResponseWriter, r *http.Request) {
	if _, ok := requireTenant(w, r); !ok {
		return
	}
	var payload createLeadRequest
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		writeInvalidPayload(w, "malformed JSON body")
		return
	}
	if err := validate.Struct(&payload); err != nil {
		writeInvalidPayload(w, "name is required")
		return
	}
	entity := &lead.Lead{
		Name:     *payload.Name,
		Phone:    payload.Phone,
		Status:   lead.Status(payload.Status),
		Priority: lead.Priority(payload.Priority),
		Notes:    payload.Notes,
	}
	if entity.Status != "" && !entity.Status.Valid() {
		writeInvalidPayload(w, "unknown lead status")
		return
	}
	if entity.Priority != "" && !entity.Priority.Valid() {
		writeInvalidPayload(w, "unknown lead priority")
		return
	}
	if err := c.leadService.Create(r.Context(), entity); err != nil {
		writeInternalError(w, r, "leads.create", err)
		return
	}
	resp := toLeadResponse(entity)
	_ = httpapi.WriteJSON(w, http.StatusCreated, &resp)
}

func (c *LeadsController) Update(w http.ResponseWriter, r *http.Request) {
	if _, ok := requireTenant(w, r); !ok {
		return
	}
	id, err := uuid.Parse(mux.Vars(r)["id"])
	if err != nil {
		writeInvalidPayload(w, "invalid lead id")
		return
	}
	var payload updateLeadRequest
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		writeInvalidPayload(w, "malformed JSON body")
		return
	}
	params := &lead.UpdateParams{
		Name:  payload.Name,
		Phone: payload.Phone,
		Notes: payload.Notes,
	}
	if payload.Status != nil {
		status := lead.Status(*payload.Status)
		if !status.Valid() {
			writeInvalidPayload(w, "unknown lead status")
			return
		}
		params.Status = &status
	}
	if payload.Priority != nil {
		priority := lead.Priority(*payload.Priority)
		if !priority.Valid() {
			writeInvalidPayload(w, "unknown lead priority")
			return
		}
		params.Priority = &priority
	}
	updated, err := c.leadService.Update(r.Context(), id, params)
	if err != nil {
		if errors.Is(err, lead.ErrNotFound) {
			writeNotFound(w, "lead not found")
			return
		}
		writeInternalError(w, r, "leads.update", err)
		return
	}
	resp := toLeadResponse(updated)
	_ = httpapi.WriteJSON(w, http.StatusOK, &resp)
}

func (c *LeadsController) Delete(w http.ResponseWriter, r *http.Request) {
	if _, ok := requireTenant(w, r); !ok {
		return
	}
	id, err := uuid.Parse(mux.Vars(r)["id"])
	if err != nil {
		writeInvalidPayload(w, "invalid lead id")
		return
	}
	if err := c.leadService.Delete(r.Context(), id); err != nil {
		if errors.Is(err, lead.ErrNotFound) {
			writeNotFound(w, "lead not found")
			return
		}
		writeInternalError(w, r, "leads.delete", err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
