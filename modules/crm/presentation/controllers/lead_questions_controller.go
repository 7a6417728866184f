package controllers

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/mux"

	"github.com/ringdesk/ringdesk/modules/crm/domain/entities/leadquestion"
	"github.com/ringdesk/ringdesk/modules/crm/services"
	"github.com/ringdesk/ringdesk/pkg/application"
	"github.com/ringdesk/ringdesk/pkg/httpapi"
)

// LeadQuestionsController manages the ordered lead-capture prompt list.
// Update and delete forward persistence errors as 500s without an
// existence pre-check.
type LeadQuestionsController struct {
	app             application.Application
	questionService *services.LeadQuestionService
	basePath        string
}

func NewLeadQuestionsController(app application.Application) application.Controller {
	return &LeadQuestionsController{
		app:             app,
		questionService: app.Service(services.LeadQuestionService{}).(*services.LeadQuestionService),
		basePath:        "/api/lead-questions",
	}
}

func (c *LeadQuestionsController) Key() string {
	return c.basePath
}

func (c *LeadQuestionsController) Register(r *mux.Router) {
	router := r.PathPrefix(c.basePath).Subrouter()
	router.HandleFunc("", c.List).Methods(http.MethodGet)
	router.HandleFunc("", c.Create).Methods(http.MethodPost)
	router.HandleFunc("/{id}", c.Update).Methods(http.MethodPut)
	router.HandleFunc("/{id}", c.Delete).Methods(http.MethodDelete)
}

type leadQuestionResponse struct {
	ID         string    `json:"id"`
	Question   string    `json:"question"`
	OrderIndex int       `json:"orderIndex"`
	Required   bool      `json:"required"`
	Choices    []string  `json:"choices"`
	CreatedAt  time.Time `json:"createdAt"`
	UpdatedAt  time.Time `json:"updatedAt"`
}

type createLeadQuestionRequest struct {
	Question   *string  `json:"question" validate:"required"`
	OrderIndex int      `json:"orderIndex"`
	Required   bool     `json:"required"`
	Choices    []string `json:"choices"`
}

type updateLeadQuestionRequest struct {
	Question   *string   `json:"question"`
	OrderIndex *int      `json:"orderIndex"`
	Required   *bool     `json:"required"`
	Choices    *[]string `json:"choices"`
}

func toLeadQuestionResponse(q *leadquestion.Question) leadQuestionResponse {
	choices := q.Choices
	if choices == nil {
		choices = []string{}
	}
	return leadQuestionResponse{
		ID:         q.ID.String(),
		Question:   q.Question,
		OrderIndex: q.OrderIndex,
		Required:   q.Required,
		Choices:    choices,
		CreatedAt:  q.CreatedAt,
		UpdatedAt:  q.UpdatedAt,
	}
}

func (c *LeadQuestionsController) List(w http.ResponseWriter, r *http.Request) {
	if _, ok := requireTenant(w, r); !ok {
		return
	}
	questions, err := c.questionService.List(r.Context())
	if err != nil {
		writeInternalError(w, r, "lead-questions.list", err)
		return
	}
	resp := make([]leadQuestionResponse, 0, len(questions))
	for _, q := range questions {
		resp = append(resp, toLeadQuestionResponse(q))
	}
	_ = httpapi.WriteJSON(w, http.StatusOK, resp)
}

func (c *LeadQuestionsController) Create(w http.ResponseWriter, r *http.Request) {
	if _, ok := requireTenant(w, r); !ok {
		return
	}
	var payload createLeadQuestionRequest
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		writeInvalidPayload(w, "malformed JSON body")
		return
	}
	if err := validate.Struct(&payload); err != nil {
		writeInvalidPayload(w, "question is required")
		return
	}
	entity := &leadquestion.Question{
		Question:   *payload.Question,
		OrderIndex: payload.OrderIndex,
		Required:   payload.Required,
		Choices:    payload.Choices,
	}
	if err := c.questionService.Create(r.Context(), entity); err != nil {
		writeInternalError(w, r, "lead-questions.create", err)
		return
	}
	resp := toLeadQuestionResponse(entity)
	_ = httpapi.WriteJSON(w, http.StatusCreated, &resp)
}

func (c *LeadQuestionsController) Update(w http.ResponseWriter, r *http.Request) {
	if _, ok := requireTenant(w, r); !ok {
		return
	}
	id, err := uuid.Parse(mux.Vars(r)["id"])
	if err != nil {
		writeInvalidPayload(w, "invalid question id")
		return
	}
	var payload updateLeadQuestionRequest
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		writeInvalidPayload(w, "malformed JSON body")
		return
	}
	updated, err := c.questionService.Update(r.Context(), id, &leadquestion.UpdateParams{
		Question:   payload.Question,
		OrderIndex: payload.OrderIndex,
		Required:   payload.Required,
		Choices:    payload.Choices,
	})
	if err != nil {
		writeInternalError(w, r, "lead-questions.update", err)
		return
	}
	resp := toLeadQuestionResponse(updated)
	_ = httpapi.WriteJSON(w, http.StatusOK, &resp)
}

func (c *LeadQuestionsController) Delete(w http.ResponseWriter, r *http.Request) {
	if _, ok := requireTenant(w, r); !ok {
		return
	}
	id, err := uuid.Parse(mux.Vars(r)["id"])
	if err != nil {
		writeInvalidPayload(w, "invalid question id")
		return
	}
	if err := c.questionService.Delete(r.Context(), id); err != nil {
		writeInternalError(w, r, "lead-questions.delete", err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
