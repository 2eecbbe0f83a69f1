package server

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"go.uber.org/zap"

	"course-dashboard/internal/clock"
	"course-dashboard/internal/dashboard"
	"course-dashboard/internal/domain"
	"course-dashboard/internal/export"
)

// SnapshotLoader is satisfied by *loader.Loader.
type SnapshotLoader interface {
	Load(ctx context.Context) (domain.Snapshot, error)
}

// Handler is the shared dependency container for the dashboard API.
type Handler struct {
	Loader   SnapshotLoader
	Clock    clock.Clock
	Location *time.Location
	Log      *zap.Logger
}

func NewHandler(l SnapshotLoader, c clock.Clock, loc *time.Location, log *zap.Logger) *Handler {
	if c == nil {
		c = clock.NewRealClock()
	}
	if loc == nil {
		loc = time.UTC
	}
	if log == nil {
		log = zap.NewNop()
	}
	return &Handler{Loader: l, Clock: c, Location: loc, Log: log}
}

type notLoaded struct {
	Loaded bool   `json:"loaded"`
	Error  string `json:"error,omitempty"`
}

func (h *Handler) ServeHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// ServeDashboard answers with the view model, or 503 and {"loaded":false}
// when the collections could not be loaded.
func (h *Handler) ServeDashboard(w http.ResponseWriter, r *http.Request) {
	opts, err := dashboard.OptionsForVariant(r.URL.Query().Get("variant"))
	if err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
		return
	}

	snap, ok := h.load(w, r)
	if !ok {
		return
	}

	vm := dashboard.Build(snap, h.Clock.Now().In(h.Location), opts)
	writeJSON(w, http.StatusOK, vm)
}

// ServeCourseCSV streams the per-course export. The rows do not depend on
// the variant, but an unknown one is rejected like on ServeDashboard.
func (h *Handler) ServeCourseCSV(w http.ResponseWriter, r *http.Request) {
	if _, err := dashboard.OptionsForVariant(r.URL.Query().Get("variant")); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
		return
	}

	snap, ok := h.load(w, r)
	if !ok {
		return
	}

	w.Header().Set("Content-Type", "text/csv; charset=utf-8")
	w.Header().Set("Content-Disposition", `attachment; filename="courses.csv"`)
	if err := export.WriteCourseCSV(w, dashboard.CourseSummaries(snap)); err != nil {
		h.Log.Warn("write csv failed", zap.Error(err))
	}
}

func (h *Handler) load(w http.ResponseWriter, r *http.Request) (domain.Snapshot, bool) {
	snap, err := h.Loader.Load(r.Context())
	if err != nil {
		h.Log.Error("dashboard unavailable", zap.String("path", r.URL.Path), zap.Error(err))
		writeJSON(w, http.StatusServiceUnavailable, notLoaded{Loaded: false})
		return domain.Snapshot{}, false
	}
	return snap, true
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
