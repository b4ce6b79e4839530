package aggregator_test

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/google/uuid"

	"github.com/axelfrache/polymove/internal/aggregator"
	"github.com/axelfrache/polymove/internal/model"
	"github.com/axelfrache/polymove/internal/student"
	"github.com/axelfrache/polymove/internal/upstream"
)

// ── Fakes ──────────────────────────────────────────────────────────────────

type fakeOfferSource struct {
	offers []model.Offer
	err    error

	calls      int
	lastCity   string
	lastDomain string
}

func (f *fakeOfferSource) FetchOffers(_ context.Context, city, domain string) ([]model.Offer, error) {
	f.calls++
	f.lastCity = city
	f.lastDomain = domain
	if f.err != nil {
		return nil, f.err
	}
	return f.offers, nil
}

type fakeCityIntel struct {
	mu         sync.Mutex
	scores     map[string]model.CityScore
	news       map[string][]model.NewsItem
	scoreErr   map[string]error
	newsErr    map[string]error
	scoreCalls map[string]int
	newsCalls  map[string]int
}

func newFakeCityIntel() *fakeCityIntel {
	return &fakeCityIntel{
		scores:     make(map[string]model.CityScore),
		news:       make(map[string][]model.NewsItem),
		scoreErr:   make(map[string]error),
		newsErr:    make(map[string]error),
		scoreCalls: make(map[string]int),
		newsCalls:  make(map[string]int),
	}
}

func (f *fakeCityIntel) CityScore(_ context.Context, city string) (model.CityScore, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.scoreCalls[city]++
	if err := f.scoreErr[city]; err != nil {
		return model.CityScore{}, err
	}
	return f.scores[city], nil
}

func (f *fakeCityIntel) LatestNewsInCity(_ context.Context, city string, _ int) ([]model.NewsItem, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.newsCalls[city]++
	if err := f.newsErr[city]; err != nil {
		return nil, err
	}
	return f.news[city], nil
}

func (f *fakeCityIntel) totalCalls() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	total := 0
	for _, n := range f.scoreCalls {
		total += n
	}
	for _, n := range f.newsCalls {
		total += n
	}
	return total
}

type fakeStudents struct {
	students map[uuid.UUID]model.Student
}

func (f *fakeStudents) Get(_ context.Context, id uuid.UUID) (model.Student, error) {
	st, ok := f.students[id]
	if !ok {
		return model.Student{}, student.ErrNotFound
	}
	return st, nil
}

func offer(id, city, domain string) model.Offer {
	return model.Offer{ID: id, Title: "Offer " + id, City: city, Domain: domain}
}

// ── GetEnrichedOffers ──────────────────────────────────────────────────────

func TestGetEnrichedOffers_DedupFanOut(t *testing.T) {
	offers := &fakeOfferSource{offers: []model.Offer{
		offer("1", "Paris", "tech"),
		offer("2", "Paris", "finance"),
		offer("3", "Nice", "tech"),
	}}
	city := newFakeCityIntel()
	city.scores["Paris"] = model.CityScore{City: "Paris", Safety: 42}
	city.scores["Nice"] = model.CityScore{City: "Nice", Safety: 17}

	svc := aggregator.NewService(offers, city, &fakeStudents{}, nil, 3, 100)

	got, err := svc.GetEnrichedOffers(context.Background(), "", "", 10)
	if err != nil {
		t.Fatalf("GetEnrichedOffers returned unexpected error: %v", err)
	}

	if len(got) != 3 {
		t.Fatalf("expected 3 enriched offers, got %d", len(got))
	}
	for i, want := range []string{"1", "2", "3"} {
		if got[i].ID != want {
			t.Errorf("offer %d: got ID %q, want %q (input order must be preserved)", i, got[i].ID, want)
		}
	}

	// One score call and one news call per distinct city, never per offer.
	for _, c := range []string{"Paris", "Nice"} {
		if city.scoreCalls[c] != 1 {
			t.Errorf("score calls for %s = %d, want 1", c, city.scoreCalls[c])
		}
		if city.newsCalls[c] != 1 {
			t.Errorf("news calls for %s = %d, want 1", c, city.newsCalls[c])
		}
	}
	if total := city.totalCalls(); total != 4 {
		t.Errorf("total enrichment calls = %d, want 4", total)
	}

	if got[0].Scores.Safety != 42 || got[1].Scores.Safety != 42 {
		t.Error("both Paris offers should carry the Paris score")
	}
	if got[2].Scores.Safety != 17 {
		t.Error("Nice offer should carry the Nice score")
	}
}

func TestGetEnrichedOffers_TruncatesBeforeEnrichment(t *testing.T) {
	offers := &fakeOfferSource{offers: []model.Offer{
		offer("1", "Paris", "tech"),
		offer("2", "Lyon", "tech"),
		offer("3", "Nice", "tech"),
	}}
	city := newFakeCityIntel()

	svc := aggregator.NewService(offers, city, &fakeStudents{}, nil, 3, 100)

	got, err := svc.GetEnrichedOffers(context.Background(), "", "", 2)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(got) != 2 {
		t.Fatalf("expected 2 offers, got %d", len(got))
	}
	// Nice was truncated away, so it must not be enriched.
	if city.scoreCalls["Nice"] != 0 || city.newsCalls["Nice"] != 0 {
		t.Error("truncated city Nice must not trigger enrichment calls")
	}
}

func TestGetEnrichedOffers_ScoreFailureDegrades(t *testing.T) {
	offers := &fakeOfferSource{offers: []model.Offer{
		offer("1", "Paris", "tech"),
		offer("2", "Paris", "finance"),
	}}
	city := newFakeCityIntel()
	city.scoreErr["Paris"] = upstream.ErrUnavailable
	city.news["Paris"] = []model.NewsItem{{Name: "Metro strike", Source: "wire", City: "Paris"}}

	svc := aggregator.NewService(offers, city, &fakeStudents{}, nil, 3, 100)

	got, err := svc.GetEnrichedOffers(context.Background(), "", "", 10)
	if err != nil {
		t.Fatalf("per-city failure must not fail the request, got: %v", err)
	}

	for i, o := range got {
		if o.Scores != (model.Scores{}) {
			t.Errorf("offer %d: expected all-zero scores after score failure, got %+v", i, o.Scores)
		}
		if len(o.LatestNews) != 1 || o.LatestNews[0].Title != "Metro strike" {
			t.Errorf("offer %d: news must still be attached when only the score fails", i)
		}
	}
}

func TestGetEnrichedOffers_NewsFailureDegrades(t *testing.T) {
	offers := &fakeOfferSource{offers: []model.Offer{offer("1", "Nice", "tech")}}
	city := newFakeCityIntel()
	city.scores["Nice"] = model.CityScore{City: "Nice", Economy: 7}
	city.newsErr["Nice"] = upstream.ErrUnavailable

	svc := aggregator.NewService(offers, city, &fakeStudents{}, nil, 3, 100)

	got, err := svc.GetEnrichedOffers(context.Background(), "", "", 10)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if got[0].Scores.Economy != 7 {
		t.Error("score must still be attached when only the news call fails")
	}
	if len(got[0].LatestNews) != 0 {
		t.Errorf("expected empty news after news failure, got %d items", len(got[0].LatestNews))
	}
}

func TestGetEnrichedOffers_CatalogUnavailable(t *testing.T) {
	offers := &fakeOfferSource{err: upstream.ErrUnavailable}
	city := newFakeCityIntel()

	svc := aggregator.NewService(offers, city, &fakeStudents{}, nil, 3, 100)

	got, err := svc.GetEnrichedOffers(context.Background(), "", "", 10)
	if !errors.Is(err, upstream.ErrUnavailable) {
		t.Fatalf("expected ErrUnavailable, got %v", err)
	}
	if got != nil {
		t.Error("no partial data must be returned when the catalog is unreachable")
	}
	if city.totalCalls() != 0 {
		t.Error("no enrichment calls must be made when the catalog is unreachable")
	}
}

func TestGetEnrichedOffers_EmptyCatalog(t *testing.T) {
	offers := &fakeOfferSource{}
	city := newFakeCityIntel()

	svc := aggregator.NewService(offers, city, &fakeStudents{}, nil, 3, 100)

	got, err := svc.GetEnrichedOffers(context.Background(), "", "", 10)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != 0 {
		t.Fatalf("expected no offers, got %d", len(got))
	}
	if city.totalCalls() != 0 {
		t.Error("an empty batch must skip the fan-out entirely")
	}
}

// ── GetRecommendedOffers ───────────────────────────────────────────────────

func recommendFixture(t *testing.T, sortBy string) []model.EnrichedOffer {
	t.Helper()

	id := uuid.New()
	students := &fakeStudents{students: map[uuid.UUID]model.Student{
		id: {ID: id, Firstname: "Ada", Name: "Lovelace", Domain: "tech"},
	}}
	offers := &fakeOfferSource{offers: []model.Offer{
		offer("1", "Paris", "tech"),
		offer("2", "Lyon", "tech"),
		offer("3", "Nice", "tech"),
	}}
	city := newFakeCityIntel()
	city.scores["Paris"] = model.CityScore{Safety: 10}
	city.scores["Lyon"] = model.CityScore{Safety: 50}
	city.scores["Nice"] = model.CityScore{Safety: 30}

	svc := aggregator.NewService(offers, city, students, nil, 3, 100)

	_, got, err := svc.GetRecommendedOffers(context.Background(), id, 10, sortBy)
	if err != nil {
		t.Fatalf("GetRecommendedOffers returned unexpected error: %v", err)
	}

	if offers.lastCity != "" || offers.lastDomain != "tech" {
		t.Errorf("catalog filter = (city=%q, domain=%q), want (city=\"\", domain=\"tech\")",
			offers.lastCity, offers.lastDomain)
	}
	return got
}

func TestGetRecommendedOffers_SortBySafety(t *testing.T) {
	got := recommendFixture(t, "safety")

	want := []int32{50, 30, 10}
	for i, w := range want {
		if got[i].Scores.Safety != w {
			t.Errorf("position %d: safety = %d, want %d", i, got[i].Scores.Safety, w)
		}
	}
}

func TestGetRecommendedOffers_UnknownSortKeyKeepsOrder(t *testing.T) {
	got := recommendFixture(t, "shoe_size")

	for i, want := range []string{"1", "2", "3"} {
		if got[i].ID != want {
			t.Errorf("position %d: got ID %q, want %q (unknown sort key must be a no-op)", i, got[i].ID, want)
		}
	}
}

func TestGetRecommendedOffers_TruncatesAfterRanking(t *testing.T) {
	id := uuid.New()
	students := &fakeStudents{students: map[uuid.UUID]model.Student{
		id: {ID: id, Domain: "tech"},
	}}
	offers := &fakeOfferSource{offers: []model.Offer{
		offer("1", "Paris", "tech"),
		offer("2", "Lyon", "tech"),
		offer("3", "Nice", "tech"),
	}}
	city := newFakeCityIntel()
	city.scores["Paris"] = model.CityScore{Economy: 1}
	city.scores["Lyon"] = model.CityScore{Economy: 3}
	city.scores["Nice"] = model.CityScore{Economy: 2}

	svc := aggregator.NewService(offers, city, students, nil, 3, 100)

	_, got, err := svc.GetRecommendedOffers(context.Background(), id, 1, "economy")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// Ranking runs over the full pool, then the caller limit applies.
	if len(got) != 1 {
		t.Fatalf("expected 1 offer, got %d", len(got))
	}
	if got[0].ID != "2" {
		t.Errorf("got ID %q, want %q (best economy must survive truncation)", got[0].ID, "2")
	}
}

func TestGetRecommendedOffers_UnknownStudentFailsFast(t *testing.T) {
	offers := &fakeOfferSource{offers: []model.Offer{offer("1", "Paris", "tech")}}
	city := newFakeCityIntel()

	svc := aggregator.NewService(offers, city, &fakeStudents{}, nil, 3, 100)

	_, _, err := svc.GetRecommendedOffers(context.Background(), uuid.New(), 5, "")
	if !errors.Is(err, student.ErrNotFound) {
		t.Fatalf("expected student.ErrNotFound, got %v", err)
	}

	if offers.calls != 0 {
		t.Error("no catalog call must be made for an unknown student")
	}
	if city.totalCalls() != 0 {
		t.Error("no enrichment call must be made for an unknown student")
	}
}

func TestGetRecommendedOffers_StableSortKeepsInputOrderOnTies(t *testing.T) {
	id := uuid.New()
	students := &fakeStudents{students: map[uuid.UUID]model.Student{
		id: {ID: id, Domain: "tech"},
	}}
	offers := &fakeOfferSource{offers: []model.Offer{
		offer("1", "Paris", "tech"),
		offer("2", "Paris", "tech"),
		offer("3", "Lyon", "tech"),
	}}
	city := newFakeCityIntel()
	city.scores["Paris"] = model.CityScore{Culture: 5}
	city.scores["Lyon"] = model.CityScore{Culture: 5}

	svc := aggregator.NewService(offers, city, students, nil, 3, 100)

	_, got, err := svc.GetRecommendedOffers(context.Background(), id, 10, "culture")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	for i, want := range []string{"1", "2", "3"} {
		if got[i].ID != want {
			t.Errorf("position %d: got ID %q, want %q (ties must keep input order)", i, got[i].ID, want)
		}
	}
}
