// Package web exposes the test harness over HTTP.
//
// # Overview
//
// The service offers one action endpoint, GET /api/tests/run?suite=<name>,
// which executes the named suite through a bounded runner, records the
// outcome in the run history, and returns the verdict. The suite parameter
// is optional; without it every suite runs. Non-empty suite names are
// validated against a fixed allow-list before anything is executed.
package web

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"slices"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/vahagnvardanyan1/falcore-backend-test/internal/history"
	"github.com/vahagnvardanyan1/falcore-backend-test/internal/logging"
	"github.com/vahagnvardanyan1/falcore-backend-test/internal/runner"
)

// SuiteRunner executes one named suite and reports the outcome.
type SuiteRunner interface {
	Run(ctx context.Context, suite string) (runner.Report, error)
}

// HistoryStore persists and serves run records.
type HistoryStore interface {
	Insert(ctx context.Context, rec history.Record) (history.Record, error)
	ListRecent(ctx context.Context, limit int) ([]history.Record, error)
	GetByID(ctx context.Context, id string) (history.Record, error)
}

// Handler wires the runner and history store behind a chi router.
type Handler struct {
	runner SuiteRunner
	store  HistoryStore
	suites []string
	log    logging.Logger
}

// New builds the HTTP handler. suites is the allow-list of runnable suite
// names.
func New(r SuiteRunner, store HistoryStore, suites []string, log logging.Logger) *Handler {
	return &Handler{runner: r, store: store, suites: suites, log: log}
}

// Router returns the mounted routes.
func (h *Handler) Router() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)

	r.Get("/healthz", h.health)
	r.Route("/api", func(r chi.Router) {
		r.Get("/tests/run", h.runSuite)
		r.Get("/runs", h.listRuns)
		r.Get("/runs/{id}", h.getRun)
	})
	return r
}

func (h *Handler) health(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

type runResponse struct {
	Passed  bool   `json:"passed"`
	Summary string `json:"summary"`
	Output  string `json:"output"`
}

func (h *Handler) runSuite(w http.ResponseWriter, r *http.Request) {
	// The suite parameter is optional: absent means run everything. Only a
	// non-empty name is checked against the allow-list.
	suite := r.URL.Query().Get("suite")
	if suite == "" {
		suite = "all"
	} else if !slices.Contains(h.suites, suite) {
		writeJSON(w, http.StatusBadRequest, map[string]any{
			"error":  "unknown suite",
			"suite":  suite,
			"suites": h.suites,
		})
		return
	}

	started := time.Now().UTC()
	report, err := h.runner.Run(r.Context(), suite)
	if err != nil {
		h.log.Error(r.Context(), "runner failed", "suite", suite, "error", err)
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "runner failed"})
		return
	}

	// History is best effort; a storage failure does not hide the verdict.
	if _, err := h.store.Insert(r.Context(), history.Record{
		Suite:      suite,
		Passed:     report.Passed,
		Summary:    report.Summary,
		Output:     report.Output,
		StartedAt:  started,
		FinishedAt: time.Now().UTC(),
	}); err != nil {
		h.log.Warn(r.Context(), "failed to record run", "suite", suite, "error", err)
	}

	writeJSON(w, http.StatusOK, runResponse{
		Passed:  report.Passed,
		Summary: report.Summary,
		Output:  report.Output,
	})
}

func (h *Handler) listRuns(w http.ResponseWriter, r *http.Request) {
	runs, err := h.store.ListRecent(r.Context(), 50)
	if err != nil {
		h.log.Error(r.Context(), "failed to list runs", "error", err)
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "failed to list runs"})
		return
	}
	if runs == nil {
		runs = []history.Record{}
	}
	writeJSON(w, http.StatusOK, runs)
}

func (h *Handler) getRun(w http.ResponseWriter, r *http.Request) {
	rec, err := h.store.GetByID(r.Context(), chi.URLParam(r, "id"))
	if errors.Is(err, history.ErrNotFound) {
		writeJSON(w, http.StatusNotFound, map[string]string{"error": "run not found"})
		return
	}
	if err != nil {
		h.log.Error(r.Context(), "failed to load run", "error", err)
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "failed to load run"})
		return
	}
	writeJSON(w, http.StatusOK, rec)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
