package controllers_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ringdesk/ringdesk/modules/crm/domain/entities/lead"
)

func TestLeadsController_CreateDefaults(t *testing.T) {
	r := newRepos()
	handler := newHandler(r, testTenant())

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/leads", strings.NewReader(`{"name":"Jamie"}`))
	handler.ServeHTTP(w, req)

	require.Equal(t, http.StatusCreated, w.Code)
	var resp struct {
		Status   string `json:"status"`
		Priority string `json:"priority"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "NEW", resp.Status)
	assert.Equal(t, "NORMAL", resp.Priority)
}

func TestLeadsController_CreateRejectsUnknownStatus(t *testing.T) {
	r := newRepos()
	handler := newHandler(r, testTenant())

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/leads",
		strings.NewReader(`{"name":"Jamie","status":"WON"}`))
	handler.ServeHTTP(w, req)

	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.Empty(t, r.leads.leads)
}

func TestLeadsController_UpdateStatus(t *testing.T) {
	r := newRepos()
	existing := &lead.Lead{ID: uuid.New(), Name: "Jamie", Status: lead.StatusNew, Priority: lead.PriorityNormal}
	r.leads.leads = []*lead.Lead{existing}
	handler := newHandler(r, testTenant())

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPut, "/api/leads/"+existing.ID.String(),
		strings.NewReader(`{"status":"QUALIFIED"}`))
	handler.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, lead.StatusQualified, existing.Status)
	assert.Equal(t, lead.PriorityNormal, existing.Priority, "untouched fields keep their value")
}

func TestLeadsController_UpdateUnknownIdIs404(t *testing.T) {
	handler := newHandler(newRepos(), testTenant())

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPut, "/api/leads/"+uuid.NewString(),
		strings.NewReader(`{"status":"QUALIFIED"}`))
	handler.ServeHTTP(w, req)

	require.Equal(t, http.StatusNotFound, w.Code)
	var envelope struct {
		Code string `json:"code"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &envelope))
	assert.Equal(t, "NOT_FOUND", envelope.Code)
}

func TestLeadsController_Delete(t *testing.T) {
	r := newRepos()
	existing := &lead.Lead{ID: uuid.New(), Name: "Jamie", Status: lead.StatusNew}
	r.leads.leads = []*lead.Lead{existing}
	handler := newHandler(r, testTenant())

	w := httptest.NewRecorder()
	handler.ServeHTTP(w, httptest.NewRequest(http.MethodDelete, "/api/leads/"+existing.ID.String(), nil))

	require.Equal(t, http.StatusNoContent, w.Code)
	assert.Empty(t, r.leads.leads)
}
