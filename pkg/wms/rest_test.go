package wms

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestRestService_Report tests the query encoding and response decoding
func TestRestService_Report(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/runs", r.URL.Path)
		assert.Equal(t, "101.0", r.URL.Query().Get("id"))
		assert.Equal(t, "jdoe", r.URL.Query().Get("user"))
		assert.Equal(t, "2", r.URL.Query().Get("hist"))
		assert.Equal(t, "-forcex", r.URL.Query().Get("pass_thru"))
		assert.Equal(t, "Bearer sekrit", r.Header.Get("Authorization"))

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{
			"runs": [{
				"wms_id": "101.0",
				"operator": "jdoe",
				"project": "dev",
				"campaign": "quick",
				"payload": "pcheck",
				"run": "shared/pipecheck/20260101T000000Z",
				"state": "RUNNING",
				"total_jobs": 4,
				"job_state_counts": {"SUCCEEDED": 3, "RUNNING": 1},
				"jobs": [{"name": "isr_1", "label": "isr", "state": "SUCCEEDED"}],
				"run_summary": "pipetaskInit:1;isr:3"
			}],
			"message": "1 run found"
		}`))
	}))
	defer server.Close()

	svc, err := newRestService(Options{Endpoint: server.URL + "/", APIKey: "sekrit"})
	require.NoError(t, err)

	runs, message, err := svc.Report(context.Background(), "101.0", "jdoe", 2, "-forcex")
	require.NoError(t, err)
	assert.Equal(t, "1 run found", message)
	require.Len(t, runs, 1)

	run := runs[0]
	assert.Equal(t, "101.0", run.WmsID)
	assert.Equal(t, StateRunning, run.State)
	assert.Equal(t, 4, run.TotalJobs)
	assert.Equal(t, 3, run.StateCount(StateSucceeded))
	assert.Equal(t, 0, run.StateCount(StateFailed))
	assert.Equal(t, "pipetaskInit:1;isr:3", run.RunSummary)
	require.Len(t, run.Jobs, 1)
	assert.Equal(t, StateSucceeded, run.Jobs[0].State)
}

// TestRestService_APIError tests that non-200 responses surface as errors
func TestRestService_APIError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "backend unavailable", http.StatusBadGateway)
	}))
	defer server.Close()

	svc, err := newRestService(Options{Endpoint: server.URL})
	require.NoError(t, err)

	_, _, err = svc.Report(context.Background(), "", "", 1, "")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "status 502")
}

// TestRestService_RequiresEndpoint tests rejection of missing connection config
func TestRestService_RequiresEndpoint(t *testing.T) {
	_, err := newRestService(Options{})
	assert.Error(t, err)
}
