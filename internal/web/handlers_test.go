package web_test

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"

	"github.com/axelfrache/polymove/internal/aggregator"
	"github.com/axelfrache/polymove/internal/model"
	"github.com/axelfrache/polymove/internal/student"
	"github.com/axelfrache/polymove/internal/upstream"
	"github.com/axelfrache/polymove/internal/web"
)

// ── Fakes ──────────────────────────────────────────────────────────────────

type fakeOfferSource struct {
	offers []model.Offer
	err    error
	calls  int
}

func (f *fakeOfferSource) FetchOffers(context.Context, string, string) ([]model.Offer, error) {
	f.calls++
	return f.offers, f.err
}

type fakeCityIntel struct {
	score model.CityScore
	news  []model.NewsItem
}

func (f *fakeCityIntel) CityScore(context.Context, string) (model.CityScore, error) {
	return f.score, nil
}

func (f *fakeCityIntel) LatestNewsInCity(context.Context, string, int) ([]model.NewsItem, error) {
	return f.news, nil
}

// fakeStudentStore implements both web.Students and aggregator.StudentDirectory.
type fakeStudentStore struct {
	students map[uuid.UUID]model.Student
}

func (f *fakeStudentStore) Get(_ context.Context, id uuid.UUID) (model.Student, error) {
	st, ok := f.students[id]
	if !ok {
		return model.Student{}, student.ErrNotFound
	}
	return st, nil
}

func (f *fakeStudentStore) Create(_ context.Context, firstname, name, domain string) (model.Student, error) {
	st := model.Student{ID: uuid.New(), Firstname: firstname, Name: name, Domain: domain}
	f.students[st.ID] = st
	return st, nil
}

func (f *fakeStudentStore) ListByDomain(_ context.Context, domain string) ([]model.Student, error) {
	out := make([]model.Student, 0)
	for _, st := range f.students {
		if st.Domain == domain {
			out = append(out, st)
		}
	}
	return out, nil
}

func (f *fakeStudentStore) Update(_ context.Context, id uuid.UUID, firstname, name, domain *string) (model.Student, error) {
	st, ok := f.students[id]
	if !ok {
		return model.Student{}, student.ErrNotFound
	}
	if firstname != nil {
		st.Firstname = *firstname
	}
	if name != nil {
		st.Name = *name
	}
	if domain != nil {
		st.Domain = *domain
	}
	f.students[id] = st
	return st, nil
}

func (f *fakeStudentStore) Delete(_ context.Context, id uuid.UUID) error {
	if _, ok := f.students[id]; !ok {
		return student.ErrNotFound
	}
	delete(f.students, id)
	return nil
}

func newTestServer(offers *fakeOfferSource, students *fakeStudentStore) *httptest.Server {
	city := &fakeCityIntel{score: model.CityScore{Safety: 12}}
	agg := aggregator.NewService(offers, city, students, nil, 3, 100)
	mux := http.NewServeMux()
	web.NewHandler(agg, students, city, nil).RegisterRoutes(mux)
	return httptest.NewServer(mux)
}

// ── Offers routes ──────────────────────────────────────────────────────────

func TestGetOffers_OK(t *testing.T) {
	offers := &fakeOfferSource{offers: []model.Offer{
		{ID: "1", Title: "Backend intern", City: "Paris", Domain: "tech"},
	}}
	srv := newTestServer(offers, &fakeStudentStore{students: map[uuid.UUID]model.Student{}})
	defer srv.Close()

	resp, err := http.Get(srv.URL + "/offers")
	if err != nil {
		t.Fatalf("GET /offers: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d, want 200", resp.StatusCode)
	}

	var body struct {
		Offers []model.EnrichedOffer `json:"offers"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		t.Fatalf("decode body: %v", err)
	}
	if len(body.Offers) != 1 || body.Offers[0].Scores.Safety != 12 {
		t.Errorf("unexpected body: %+v", body)
	}
}

func TestGetOffers_InvalidLimit(t *testing.T) {
	offers := &fakeOfferSource{}
	srv := newTestServer(offers, &fakeStudentStore{students: map[uuid.UUID]model.Student{}})
	defer srv.Close()

	resp, err := http.Get(srv.URL + "/offers?limit=lots")
	if err != nil {
		t.Fatalf("GET /offers: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", resp.StatusCode)
	}
	if offers.calls != 0 {
		t.Error("malformed input must be rejected before any upstream call")
	}
}

func TestGetOffers_CatalogDown(t *testing.T) {
	offers := &fakeOfferSource{err: upstream.ErrUnavailable}
	srv := newTestServer(offers, &fakeStudentStore{students: map[uuid.UUID]model.Student{}})
	defer srv.Close()

	resp, err := http.Get(srv.URL + "/offers")
	if err != nil {
		t.Fatalf("GET /offers: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusServiceUnavailable {
		t.Errorf("status = %d, want 503", resp.StatusCode)
	}
}

// ── Recommended offers ─────────────────────────────────────────────────────

func TestGetRecommendedOffers_OK(t *testing.T) {
	id := uuid.New()
	students := &fakeStudentStore{students: map[uuid.UUID]model.Student{
		id: {ID: id, Firstname: "Ada", Name: "Lovelace", Domain: "tech"},
	}}
	offers := &fakeOfferSource{offers: []model.Offer{
		{ID: "1", Title: "Backend intern", City: "Paris", Domain: "tech"},
	}}
	srv := newTestServer(offers, students)
	defer srv.Close()

	resp, err := http.Get(srv.URL + "/students/" + id.String() + "/recommended-offers?sort_by=safety")
	if err != nil {
		t.Fatalf("GET recommended: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d, want 200", resp.StatusCode)
	}

	var body struct {
		Student model.Student         `json:"student"`
		Offers  []model.EnrichedOffer `json:"offers"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		t.Fatalf("decode body: %v", err)
	}
	if body.Student.ID != id || len(body.Offers) != 1 {
		t.Errorf("unexpected body: %+v", body)
	}
}

func TestGetRecommendedOffers_UnknownStudent(t *testing.T) {
	offers := &fakeOfferSource{}
	srv := newTestServer(offers, &fakeStudentStore{students: map[uuid.UUID]model.Student{}})
	defer srv.Close()

	resp, err := http.Get(srv.URL + "/students/" + uuid.NewString() + "/recommended-offers")
	if err != nil {
		t.Fatalf("GET recommended: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusNotFound {
		t.Errorf("status = %d, want 404", resp.StatusCode)
	}
	if offers.calls != 0 {
		t.Error("an unknown student must fail before any catalog call")
	}
}

func TestGetRecommendedOffers_InvalidUUID(t *testing.T) {
	offers := &fakeOfferSource{}
	srv := newTestServer(offers, &fakeStudentStore{students: map[uuid.UUID]model.Student{}})
	defer srv.Close()

	resp, err := http.Get(srv.URL + "/students/not-a-uuid/recommended-offers")
	if err != nil {
		t.Fatalf("GET recommended: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", resp.StatusCode)
	}
}

// ── Students CRUD ──────────────────────────────────────────────────────────

func TestCreateStudent_MissingFields(t *testing.T) {
	srv := newTestServer(&fakeOfferSource{}, &fakeStudentStore{students: map[uuid.UUID]model.Student{}})
	defer srv.Close()

	resp, err := http.Post(srv.URL+"/students", "application/json",
		jsonBody(t, map[string]string{"firstname": "Ada"}))
	if err != nil {
		t.Fatalf("POST /students: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", resp.StatusCode)
	}
}

func TestStudentLifecycle(t *testing.T) {
	srv := newTestServer(&fakeOfferSource{}, &fakeStudentStore{students: map[uuid.UUID]model.Student{}})
	defer srv.Close()

	resp, err := http.Post(srv.URL+"/students", "application/json",
		jsonBody(t, map[string]string{"firstname": "Ada", "name": "Lovelace", "domain": "tech"}))
	if err != nil {
		t.Fatalf("POST /students: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusCreated {
		t.Fatalf("create status = %d, want 201", resp.StatusCode)
	}

	var created model.Student
	if err := json.NewDecoder(resp.Body).Decode(&created); err != nil {
		t.Fatalf("decode created student: %v", err)
	}

	getResp, err := http.Get(srv.URL + "/students/" + created.ID.String())
	if err != nil {
		t.Fatalf("GET /students/{id}: %v", err)
	}
	defer getResp.Body.Close()

	if getResp.StatusCode != http.StatusOK {
		t.Errorf("get status = %d, want 200", getResp.StatusCode)
	}
}

func jsonBody(t *testing.T, v any) io.Reader {
	t.Helper()
	b, err := json.Marshal(v)
	if err != nil {
		t.Fatalf("marshal body: %v", err)
	}
	return bytes.NewReader(b)
}

// ── Health ─────────────────────────────────────────────────────────────────

func TestHealth(t *testing.T) {
	srv := newTestServer(&fakeOfferSource{}, &fakeStudentStore{students: map[uuid.UUID]model.Student{}})
	defer srv.Close()

	resp, err := http.Get(srv.URL + "/health")
	if err != nil {
		t.Fatalf("GET /health: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		t.Errorf("status = %d, want 200", resp.StatusCode)
	}
}
