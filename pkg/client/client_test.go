package client

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClient_SendsBusinessIDHeader(t *testing.T) {
	var gotHeader string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotHeader = r.Header.Get("x-business-id")
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"clients":[],"stats":{"clientsTotal":0,"clientsNewWeek":0,"leadsQualified":0}}`))
	}))
	defer srv.Close()

	c := New(srv.URL, WithBusinessID("8a0f9a57-5f95-4ee1-a8e9-2c4f7e1bfb01"))
	_, err := c.ListClients(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "8a0f9a57-5f95-4ee1-a8e9-2c4f7e1bfb01", gotHeader)
}

func TestClient_DecodesErrorEnvelope(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusNotFound)
		_, _ = w.Write([]byte(`{"code":"BUSINESS_NOT_FOUND","message":"business not found"}`))
	}))
	defer srv.Close()

	c := New(srv.URL)
	_, err := c.ListClients(context.Background())
	require.Error(t, err)

	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusNotFound, apiErr.Status)
	assert.Equal(t, "BUSINESS_NOT_FOUND", apiErr.Code)
	assert.Equal(t, "business not found", apiErr.Message)
}

func TestClient_ListLeads(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/leads", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`[{"id":"1","name":"Jamie","status":"NEW","priority":"NORMAL"}]`))
	}))
	defer srv.Close()

	leads, err := New(srv.URL).ListLeads(context.Background())
	require.NoError(t, err)
	require.Len(t, leads, 1)
	assert.Equal(t, "Jamie", leads[0].Name)
	assert.Equal(t, "NEW", leads[0].Status)
}

func TestClient_AnalyticsReport(t *testing.T) {
	csvBody := "callSid,from,to,status,direction,createdAt\n"
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/analytics/report", r.URL.Path)
		w.Header().Set("Content-Type", "text/csv")
		_, _ = w.Write([]byte(csvBody))
	}))
	defer srv.Close()

	body, err := New(srv.URL).AnalyticsReport(context.Background())
	require.NoError(t, err)
	assert.Equal(t, csvBody, string(body))
}
