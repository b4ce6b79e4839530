// Package web implements the HTTP surface of polymove.
//
// It delegates all business logic to the aggregator and student packages and
// handles only transport concerns: request parsing, validation, error
// mapping and JSON encoding.
package web

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/google/uuid"

	"github.com/axelfrache/polymove/internal/aggregator"
	"github.com/axelfrache/polymove/internal/model"
	"github.com/axelfrache/polymove/internal/student"
)

// ValidationError wraps a user-facing input validation message.
type ValidationError struct{ Msg string }

func (e *ValidationError) Error() string { return e.Msg }

const (
	defaultOffersLimit      = 10
	defaultRecommendedLimit = 5
	defaultNewsLimit        = 10
)

// Students is the slice of the student repository the handlers need.
type Students interface {
	Create(ctx context.Context, firstname, name, domain string) (model.Student, error)
	Get(ctx context.Context, id uuid.UUID) (model.Student, error)
	ListByDomain(ctx context.Context, domain string) ([]model.Student, error)
	Update(ctx context.Context, id uuid.UUID, firstname, name, domain *string) (model.Student, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

// Readiness reports the last known status of the upstream probes.
type Readiness interface {
	Snapshot() map[string]bool
}

// Handler holds the dependencies of all HTTP handlers.
type Handler struct {
	agg      *aggregator.Service
	students Students
	city     aggregator.CityIntel
	ready    Readiness
}

// NewHandler constructs a Handler. ready may be nil when no prober runs.
func NewHandler(agg *aggregator.Service, students Students, city aggregator.CityIntel, ready Readiness) *Handler {
	return &Handler{agg: agg, students: students, city: city, ready: ready}
}

// RegisterRoutes attaches all routes to mux.
func (h *Handler) RegisterRoutes(mux *http.ServeMux) {
	mux.HandleFunc("GET /health", h.health)
	mux.HandleFunc("GET /offers", h.getOffers)
	mux.HandleFunc("GET /news/latest-in-city", h.getLatestNewsInCity)
	mux.HandleFunc("POST /students", h.createStudent)
	mux.HandleFunc("GET /students", h.listStudents)
	mux.HandleFunc("GET /students/{id}", h.getStudent)
	mux.HandleFunc("PATCH /students/{id}", h.updateStudent)
	mux.HandleFunc("DELETE /students/{id}", h.deleteStudent)
	mux.HandleFunc("GET /students/{id}/recommended-offers", h.getRecommendedOffers)
}

// ─── Aggregation routes ──────────────────────────────────────────────────────

type offersResponse struct {
	Offers []model.EnrichedOffer `json:"offers"`
}

func (h *Handler) getOffers(w http.ResponseWriter, r *http.Request) {
	limit, err := limitParam(r, "limit", defaultOffersLimit)
	if err != nil {
		badRequest(w, err)
		return
	}

	offers, err := h.agg.GetEnrichedOffers(r.Context(), r.URL.Query().Get("city"), r.URL.Query().Get("domain"), limit)
	if err != nil {
		slog.Error("aggregate offers failed", "err", err)
		writeError(w, http.StatusServiceUnavailable, "offer catalog unavailable")
		return
	}

	writeJSON(w, http.StatusOK, offersResponse{Offers: offers})
}

type recommendedOffersResponse struct {
	Student model.Student         `json:"student"`
	Offers  []model.EnrichedOffer `json:"offers"`
}

func (h *Handler) getRecommendedOffers(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid student UUID")
		return
	}

	limit, err := limitParam(r, "limit", defaultRecommendedLimit)
	if err != nil {
		badRequest(w, err)
		return
	}

	st, offers, err := h.agg.GetRecommendedOffers(r.Context(), id, limit, r.URL.Query().Get("sort_by"))
	switch {
	case errors.Is(err, student.ErrNotFound):
		writeError(w, http.StatusNotFound, "student not found")
		return
	case err != nil:
		slog.Error("recommended offers failed", "studentId", id, "err", err)
		writeError(w, http.StatusServiceUnavailable, "failed to fetch recommended offers")
		return
	}

	writeJSON(w, http.StatusOK, recommendedOffersResponse{Student: st, Offers: offers})
}

func (h *Handler) getLatestNewsInCity(w http.ResponseWriter, r *http.Request) {
	city := r.URL.Query().Get("city")
	if city == "" {
		writeError(w, http.StatusBadRequest, "city is required")
		return
	}

	limit, err := limitParam(r, "limit", defaultNewsLimit)
	if err != nil {
		badRequest(w, err)
		return
	}

	news, err := h.city.LatestNewsInCity(r.Context(), city, limit)
	if err != nil {
		slog.Error("latest news failed", "city", city, "err", err)
		writeError(w, http.StatusServiceUnavailable, "city-intel unavailable")
		return
	}

	writeJSON(w, http.StatusOK, map[string][]model.EnrichedNews{"news": model.TrimNews(news)})
}

// ─── Student CRUD routes ─────────────────────────────────────────────────────

type createStudentRequest struct {
	Firstname string `json:"firstname"`
	Name      string `json:"name"`
	Domain    string `json:"domain"`
}

func (h *Handler) createStudent(w http.ResponseWriter, r *http.Request) {
	var req createStudentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}
	if req.Firstname == "" || req.Name == "" || req.Domain == "" {
		writeError(w, http.StatusBadRequest, "firstname, name and domain are required")
		return
	}

	st, err := h.students.Create(r.Context(), req.Firstname, req.Name, req.Domain)
	if err != nil {
		slog.Error("create student failed", "err", err)
		writeError(w, http.StatusInternalServerError, "internal server error")
		return
	}

	writeJSON(w, http.StatusCreated, st)
}

func (h *Handler) getStudent(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid student UUID")
		return
	}

	st, err := h.students.Get(r.Context(), id)
	if err != nil {
		h.studentError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, st)
}

func (h *Handler) listStudents(w http.ResponseWriter, r *http.Request) {
	domain := r.URL.Query().Get("domain")
	if domain == "" {
		writeError(w, http.StatusBadRequest, "domain is required")
		return
	}

	students, err := h.students.ListByDomain(r.Context(), domain)
	if err != nil {
		slog.Error("list students failed", "err", err)
		writeError(w, http.StatusInternalServerError, "internal server error")
		return
	}

	writeJSON(w, http.StatusOK, students)
}

type updateStudentRequest struct {
	Firstname *string `json:"firstname"`
	Name      *string `json:"name"`
	Domain    *string `json:"domain"`
}

func (h *Handler) updateStudent(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid student UUID")
		return
	}

	var req updateStudentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}

	st, err := h.students.Update(r.Context(), id, req.Firstname, req.Name, req.Domain)
	if err != nil {
		h.studentError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, st)
}

func (h *Handler) deleteStudent(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid student UUID")
		return
	}

	if err := h.students.Delete(r.Context(), id); err != nil {
		h.studentError(w, err)
		return
	}

	w.WriteHeader(http.StatusOK)
}

// ─── Health ──────────────────────────────────────────────────────────────────

// health always answers 200: degraded upstreams never make the service
// itself unhealthy. The body carries the last probe snapshot.
func (h *Handler) health(w http.ResponseWriter, r *http.Request) {
	body := map[string]any{"status": "ok"}
	if h.ready != nil {
		body["upstreams"] = h.ready.Snapshot()
	}
	writeJSON(w, http.StatusOK, body)
}

// ─── Helpers ─────────────────────────────────────────────────────────────────

func (h *Handler) studentError(w http.ResponseWriter, err error) {
	if errors.Is(err, student.ErrNotFound) {
		writeError(w, http.StatusNotFound, "student not found")
		return
	}
	slog.Error("student repository error", "err", err)
	writeError(w, http.StatusInternalServerError, "internal server error")
}

// limitParam parses an optional positive-integer query parameter. Malformed
// values are rejected before any upstream call is made.
func limitParam(r *http.Request, name string, def int) (int, error) {
	s := r.URL.Query().Get(name)
	if s == "" {
		return def, nil
	}
	v, err := strconv.Atoi(s)
	if err != nil || v < 1 {
		return 0, &ValidationError{Msg: name + " must be a positive integer"}
	}
	return v, nil
}

func badRequest(w http.ResponseWriter, err error) {
	writeError(w, http.StatusBadRequest, err.Error())
}

func writeError(w http.ResponseWriter, code int, msg string) {
	writeJSON(w, code, map[string]string{"error": msg})
}

func writeJSON(w http.ResponseWriter, code int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		slog.Error("encode response failed", "err", err)
	}
}
