package controllers_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ringdesk/ringdesk/modules/crm/domain/entities/client"
	"github.com/ringdesk/ringdesk/modules/crm/domain/entities/lead"
)

func TestClientsController_ListWithStats(t *testing.T) {
	r := newRepos()
	now := time.Now()
	for i := 0; i < 3; i++ {
		r.clients.clients = append(r.clients.clients, &client.Client{
			ID:        uuid.New(),
			Name:      "old client",
			CreatedAt: now.AddDate(0, 0, -30),
		})
	}
	for i := 0; i < 2; i++ {
		r.clients.clients = append(r.clients.clients, &client.Client{
			ID:        uuid.New(),
			Name:      "fresh client",
			CreatedAt: now.AddDate(0, 0, -2),
			Projects: []*client.Project{
				{ID: uuid.New(), Name: "Website", Status: "ACTIVE", CreatedAt: now},
			},
		})
	}
	r.leads.leads = []*lead.Lead{
		{ID: uuid.New(), Name: "a", Status: lead.StatusQualified},
		{ID: uuid.New(), Name: "b", Status: lead.StatusQualified},
		{ID: uuid.New(), Name: "c", Status: lead.StatusNew},
	}
	handler := newHandler(r, testTenant())

	w := httptest.NewRecorder()
	handler.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/clients", nil))

	require.Equal(t, http.StatusOK, w.Code)
	var resp struct {
		Clients []struct {
			Name     string `json:"name"`
			Projects []struct {
				Name string `json:"name"`
			} `json:"projects"`
		} `json:"clients"`
		Stats struct {
			ClientsTotal   int64 `json:"clientsTotal"`
			ClientsNewWeek int64 `json:"clientsNewWeek"`
			LeadsQualified int64 `json:"leadsQualified"`
		} `json:"stats"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Len(t, resp.Clients, 5)
	assert.EqualValues(t, 5, resp.Stats.ClientsTotal)
	assert.EqualValues(t, 2, resp.Stats.ClientsNewWeek)
	assert.EqualValues(t, 2, resp.Stats.LeadsQualified)
	assert.Len(t, resp.Clients[3].Projects, 1)
}

func TestClientsController_CreateRequiresName(t *testing.T) {
	r := newRepos()
	handler := newHandler(r, testTenant())

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/clients", strings.NewReader(`{"email":"x@y.z"}`))
	handler.ServeHTTP(w, req)

	require.Equal(t, http.StatusBadRequest, w.Code)
	var envelope struct {
		Code string `json:"code"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &envelope))
	assert.Equal(t, "INVALID_PAYLOAD", envelope.Code)
	assert.Empty(t, r.clients.clients)
}

func TestClientsController_Create(t *testing.T) {
	r := newRepos()
	handler := newHandler(r, testTenant())

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/clients",
		strings.NewReader(`{"name":"New Co","phone":"+15550001111"}`))
	handler.ServeHTTP(w, req)

	require.Equal(t, http.StatusCreated, w.Code)
	require.Len(t, r.clients.clients, 1)
	assert.Equal(t, "New Co", r.clients.clients[0].Name)
}

func TestClientsController_NoTenantIs404(t *testing.T) {
	handler := newHandler(newRepos(), nil)

	w := httptest.NewRecorder()
	handler.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/clients", nil))

	require.Equal(t, http.StatusNotFound, w.Code)
	var envelope struct {
		Code string `json:"code"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &envelope))
	assert.Equal(t, "BUSINESS_NOT_FOUND", envelope.Code)
}
