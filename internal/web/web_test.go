package web

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vahagnvardanyan1/falcore-backend-test/internal/history"
	"github.com/vahagnvardanyan1/falcore-backend-test/internal/logging"
	"github.com/vahagnvardanyan1/falcore-backend-test/internal/runner"
)

type stubRunner struct {
	report runner.Report
	err    error
	calls  []string
}

func (s *stubRunner) Run(ctx context.Context, suite string) (runner.Report, error) {
	s.calls = append(s.calls, suite)
	return s.report, s.err
}

type stubStore struct {
	inserted  []history.Record
	insertErr error
	records   []history.Record
	byID      map[string]history.Record
}

func (s *stubStore) Insert(ctx context.Context, rec history.Record) (history.Record, error) {
	if s.insertErr != nil {
		return history.Record{}, s.insertErr
	}
	s.inserted = append(s.inserted, rec)
	return rec, nil
}

func (s *stubStore) ListRecent(ctx context.Context, limit int) ([]history.Record, error) {
	return s.records, nil
}

func (s *stubStore) GetByID(ctx context.Context, id string) (history.Record, error) {
	rec, ok := s.byID[id]
	if !ok {
		return history.Record{}, history.ErrNotFound
	}
	return rec, nil
}

func newTestHandler(r *stubRunner, store *stubStore) http.Handler {
	h := New(r, store, []string{"tenants", "vehicles"}, logging.NewDefault("error"))
	return h.Router()
}

func TestRunSuite_Success(t *testing.T) {
	run := &stubRunner{report: runner.Report{
		Suite: "tenants", Passed: true, Summary: "9 passed (tenants)", Output: "ok\n9 passed (tenants)\n",
	}}
	store := &stubStore{}
	srv := httptest.NewServer(newTestHandler(run, store))
	defer srv.Close()

	resp, err := http.Get(srv.URL + "/api/tests/run?suite=tenants")
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var body struct {
		Passed  bool   `json:"passed"`
		Summary string `json:"summary"`
		Output  string `json:"output"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.True(t, body.Passed)
	assert.Equal(t, "9 passed (tenants)", body.Summary)
	assert.Contains(t, body.Output, "9 passed")

	assert.Equal(t, []string{"tenants"}, run.calls)
	require.Len(t, store.inserted, 1)
	assert.Equal(t, "tenants", store.inserted[0].Suite)
	assert.True(t, store.inserted[0].Passed)
}

func TestRunSuite_UnknownSuiteRejectedBeforeExecution(t *testing.T) {
	run := &stubRunner{}
	srv := httptest.NewServer(newTestHandler(run, &stubStore{}))
	defer srv.Close()

	resp, err := http.Get(srv.URL + "/api/tests/run?suite=nope")
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)

	var body struct {
		Error  string   `json:"error"`
		Suites []string `json:"suites"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, "unknown suite", body.Error)
	assert.Contains(t, body.Suites, "tenants")
	assert.Empty(t, run.calls, "unknown suite must not execute anything")
}

func TestRunSuite_MissingSuiteParamRunsEverything(t *testing.T) {
	run := &stubRunner{report: runner.Report{
		Suite: "all", Passed: true, Summary: "42 passed", Output: "42 passed\n",
	}}
	store := &stubStore{}
	srv := httptest.NewServer(newTestHandler(run, store))
	defer srv.Close()

	resp, err := http.Get(srv.URL + "/api/tests/run")
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var body struct {
		Passed  bool   `json:"passed"`
		Summary string `json:"summary"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.True(t, body.Passed)
	assert.Equal(t, "42 passed", body.Summary)

	assert.Equal(t, []string{"all"}, run.calls)
	require.Len(t, store.inserted, 1)
	assert.Equal(t, "all", store.inserted[0].Suite)
}

func TestRunSuite_EmptySuiteValueRunsEverything(t *testing.T) {
	run := &stubRunner{report: runner.Report{Suite: "all", Passed: true}}
	srv := httptest.NewServer(newTestHandler(run, &stubStore{}))
	defer srv.Close()

	resp, err := http.Get(srv.URL + "/api/tests/run?suite=")
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, []string{"all"}, run.calls)
}

func TestRunSuite_HistoryFailureDoesNotHideVerdict(t *testing.T) {
	run := &stubRunner{report: runner.Report{Suite: "tenants", Passed: false, Summary: "Failed"}}
	store := &stubStore{insertErr: errors.New("disk full")}
	srv := httptest.NewServer(newTestHandler(run, store))
	defer srv.Close()

	resp, err := http.Get(srv.URL + "/api/tests/run?suite=tenants")
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var body struct {
		Passed  bool   `json:"passed"`
		Summary string `json:"summary"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.False(t, body.Passed)
	assert.Equal(t, "Failed", body.Summary)
}

func TestListRuns_EmptyIsJSONArray(t *testing.T) {
	srv := httptest.NewServer(newTestHandler(&stubRunner{}, &stubStore{}))
	defer srv.Close()

	resp, err := http.Get(srv.URL + "/api/runs")
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var runs []history.Record
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&runs))
	assert.Empty(t, runs)
}

func TestGetRun(t *testing.T) {
	store := &stubStore{byID: map[string]history.Record{
		"abc": {ID: "abc", Suite: "vehicles", Passed: true, Summary: "11 passed (vehicles)"},
	}}
	srv := httptest.NewServer(newTestHandler(&stubRunner{}, store))
	defer srv.Close()

	resp, err := http.Get(srv.URL + "/api/runs/abc")
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var rec history.Record
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&rec))
	assert.Equal(t, "vehicles", rec.Suite)

	resp2, err := http.Get(srv.URL + "/api/runs/missing")
	require.NoError(t, err)
	defer resp2.Body.Close()
	assert.Equal(t, http.StatusNotFound, resp2.StatusCode)
}

func TestHealthz(t *testing.T) {
	srv := httptest.NewServer(newTestHandler(&stubRunner{}, &stubStore{}))
	defer srv.Close()

	resp, err := http.Get(srv.URL + "/healthz")
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}
