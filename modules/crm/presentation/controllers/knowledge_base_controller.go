package controllers

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"github.com/pkg/errors"

	"github.com/ringdesk/ringdesk/modules/crm/domain/entities/knowledge"
	"github.com/ringdesk/ringdesk/modules/crm/services"
	"github.com/ringdesk/ringdesk/pkg/application"
	"github.com/ringdesk/ringdesk/pkg/httpapi"
)

type KnowledgeBaseController struct {
	app              application.Application
	knowledgeService *services.KnowledgeService
	basePath         string
}

func NewKnowledgeBaseController(app application.Application) application.Controller {
	return &KnowledgeBaseController{
		app:              app,
		knowledgeService: app.Service(services.KnowledgeService{}).(*services.KnowledgeService),
		basePath:         "/api/knowledge-base",
	}
}

func (c *KnowledgeBaseController) Key() string {
	return c.basePath
}

func (c *KnowledgeBaseController) Register(r *mux.Router) {
	router := r.PathPrefix(c.basePath).Subrouter()
	router.HandleFunc("", c.List).Methods(http.MethodGet)
	router.HandleFunc("", c.Create).Methods(http.MethodPost)
	router.HandleFunc("/{id}", c.Update).Methods(http.MethodPut)
	router.HandleFunc("/{id}", c.Delete).Methods(http.MethodDelete)
}

type knowledgeEntryResponse struct {
	ID        string    `json:"id"`
	Title     string    `json:"title,omitempty"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

type createKnowledgeEntryRequest struct {
	Title   string  `json:"title"`
	Content *string `json:"content" validate:"required"`
}

type updateKnowledgeEntryRequest struct {
	Title   *string `json:"title"`
	Content *string `json:"content"`
}

func toKnowledgeEntryResponse(e *knowledge.Entry) knowledgeEntryResponse {
	return knowledgeEntryResponse{
		ID:        e.ID.String(),
		Title:     e.Title,
		Content:   e.Content,
		CreatedAt: e.CreatedAt,
		UpdatedAt: e.UpdatedAt,
	}
}

func (c *KnowledgeBaseController) List(w http.ResponseWriter, r *http.Request) {
	if _, ok := requireTenant(w, r); !ok {
		return
	}
	entries, err := c.knowledgeService.List(r.Context())
	if err != nil {
		writeInternalError(w, r, "knowledge-base.list", err)
		return
	}
	resp := make([]knowledgeEntryResponse, 0, len(entries))
	for _, e := range entries {
		resp = append(resp, toKnowledgeEntryResponse(e))
	}
	_ = httpapi.WriteJSON(w, http.StatusOK, resp)
}

func (c *KnowledgeBaseController) Create(w http.ResponseWriter, r *http.Request) {
	if _, ok := requireTenant(w, r); !ok {
		return
	}
	var payload createKnowledgeEntryRequest
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		writeInvalidPayload(w, "malformed JSON body")
		return
	}
	if err := validate.Struct(&payload); err != nil {
		writeInvalidPayload(w, "content is required")
		return
	}
	entity := &knowledge.Entry{
		Title:   payload.Title,
		Content: *payload.Content,
	}
	if err := c.knowledgeService.Create(r.Context(), entity); err != nil {
		writeInternalError(w, r, "knowledge-base.create", err)
		return
	}
	resp := toKnowledgeEntryResponse(entity)
	_ = httpapi.WriteJSON(w, http.StatusCreated, &resp)
}

func (c *KnowledgeBaseController) Update(w http.ResponseWriter, r *http.Request) {
	if _, ok := requireTenant(w, r); !ok {
		return
	}
	id, err := uuid.Parse(mux.Vars(r)["id"])
	if err != nil {
		writeInvalidPayload(w, "invalid entry id")
		return
	}
	var payload updateKnowledgeEntryRequest
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		writeInvalidPayload(w, "malformed JSON body")
		return
	}
	updated, err := c.knowledgeService.Update(r.Context(), id, &knowledge.UpdateParams{
		Title:   payload.Title,
		Content: payload.Content,
	})
	if err != nil {
		if errors.Is(err, knowledge.ErrNotFound) {
			writeNotFound(w, "knowledge entry not found")
			return
		}
		writeInternalError(w, r, "knowledge-base.update", err)
		return
	}
	resp := toKnowledgeEntryResponse(updated)
	_ = httpapi.WriteJSON(w, http.StatusOK, &resp)
}

func (c *KnowledgeBaseController) Delete(w http.ResponseWriter, r *http.Request) {
	if _, ok := requireTenant(w, r); !ok {
		return
	}
	id, err := uuid.Parse(mux.Vars(r)["id"])
	if err != nil {
		writeInvalidPayload(w, "invalid entry id")
		return
	}
	if err := c.knowledgeService.Delete(r.Context(), id); err != nil {
		if errors.Is(err, knowledge.ErrNotFound) {
			writeNotFound(w, "knowledge entry not found")
			return
		}
		writeInternalError(w, r, "knowledge-base.delete", err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
