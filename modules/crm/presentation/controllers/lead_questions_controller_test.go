package controllers_test

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ringdesk/ringdesk/modules/crm/domain/entities/leadquestion"
)

func TestLeadQuestionsController_List(t *testing.T) {
	r := newRepos()
	r.questions.questions = []*leadquestion.Question{
		{ID: uuid.New(), Question: "What service do you need?", OrderIndex: 0, Required: true, Choices: []string{"Repair", "Install"}},
		{ID: uuid.New(), Question: "Preferred time?", OrderIndex: 1},
	}
	handler := newHandler(r, testTenant())

	w := httptest.NewRecorder()
	handler.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/lead-questions", nil))

	require.Equal(t, http.StatusOK, w.Code)
	var resp []struct {
		Question string   `json:"question"`
		Choices  []string `json:"choices"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp, 2)
	assert.Equal(t, []string{"Repair", "Install"}, resp[0].Choices)
	assert.NotNil(t, resp[1].Choices, "choices serializes as an empty array, not null")
}

func TestLeadQuestionsController_CreateRequiresQuestion(t *testing.T) {
	r := newRepos()
	handler := newHandler(r, testTenant())

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/lead-questions", strings.NewReader(`{"orderIndex":2}`))
	handler.ServeHTTP(w, req)

	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.Empty(t, r.questions.questions)
}

func TestLeadQuestionsController_UpdateFailureIs500(t *testing.T) {
	r := newRepos()
	r.questions.failWith = errors.New("connection reset")
	handler := newHandler(r, testTenant())

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPut, "/api/lead-questions/"+uuid.NewString(),
		strings.NewReader(`{"required":true}`))
	handler.ServeHTTP(w, req)

	require.Equal(t, http.StatusInternalServerError, w.Code)
	var envelope struct {
		Code string `json:"code"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &envelope))
	assert.Equal(t, "INTERNAL_SERVER_ERROR", envelope.Code)
}

func TestLeadQuestionsController_DeleteFailureIs500(t *testing.T) {
	r := newRepos()
	r.questions.failWith = errors.New("connection reset")
	handler := newHandler(r, testTenant())

	w := httptest.NewRecorder()
	handler.ServeHTTP(w, httptest.NewRequest(http.MethodDelete, "/api/lead-questions/"+uuid.NewString(), nil))

	require.Equal(t, http.StatusInternalServerError, w.Code)
}
