package controllers_test

import (
	"encoding/csv"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ringdesk/ringdesk/modules/crm/domain/entities/calllog"
)

func TestAnalyticsController_Report(t *testing.T) {
	r := newRepos()
	for i := 0; i < 3; i++ {
		r.callLogs.logs = append(r.callLogs.logs, &calllog.CallLog{
			ID:        uuid.New(),
			CallSid:   fmt.Sprintf("CA%02d", i),
			From:      "+15550001111",
			To:        "+15552223333",
			Status:    "completed",
			Direction: "inbound",
			CreatedAt: time.Date(2026, 8, 20, 12, i, 0, 0, time.UTC),
		})
	}
	handler := newHandler(r, testTenant())

	w := httptest.NewRecorder()
	handler.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/analytics/report", nil))

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "text/csv", w.Header().Get("Content-Type"))
	assert.Contains(t, w.Header().Get("Content-Disposition"), "attachment")

	lines := strings.Split(strings.TrimRight(w.Body.String(), "\n"), "\n")
	require.Len(t, lines, 4, "header plus one line per call log")

	records, err := csv.NewReader(strings.NewReader(w.Body.String())).ReadAll()
	require.NoError(t, err)
	assert.Equal(t, []string{"callSid", "from", "to", "status", "direction", "createdAt"}, records[0])
	for _, record := range records[1:] {
		require.Len(t, record, 6)
		_, err := time.Parse(time.RFC3339, record[5])
		assert.NoError(t, err)
	}
}

func TestAnalyticsController_EmptyReportIsHeaderOnly(t *testing.T) {
	handler := newHandler(newRepos(), testTenant())

	w := httptest.NewRecorder()
	handler.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/analytics/report", nil))

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "callSid,from,to,status,direction,createdAt\n", w.Body.String())
}
