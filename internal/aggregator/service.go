// Package aggregator contains the offer aggregation engine: it composes the
// offer catalog and city-intel upstreams into enriched offers and ranks them
// per student.
//
// It is transport-agnostic: used by the HTTP layer (web package).
package aggregator

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"sync"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"github.com/axelfrache/polymove/internal/model"
)

// ─── Upstream capabilities ───────────────────────────────────────────────────

// OfferSource fetches the raw offer catalog under optional filters.
// At most one of city/domain is applied; city wins when both are set.
type OfferSource interface {
	FetchOffers(ctx context.Context, city, domain string) ([]model.Offer, error)
}

// CityIntel retrieves the per-city scoring snapshot and news timeline.
// The two operations are independently callable and independently failable.
type CityIntel interface {
	CityScore(ctx context.Context, city string) (model.CityScore, error)
	LatestNewsInCity(ctx context.Context, city string, limit int) ([]model.NewsItem, error)
}

// StudentDirectory resolves a student identifier to a student record.
type StudentDirectory interface {
	Get(ctx context.Context, id uuid.UUID) (model.Student, error)
}

// ─── Service ─────────────────────────────────────────────────────────────────

// Service is the aggregation engine. Stateless between calls: the only
// per-call state is the city enrichment map built during one aggregation.
type Service struct {
	offers   OfferSource
	city     CityIntel
	students StudentDirectory
	rdb      *redis.Client // degradation events; optional

	newsPerCity   int
	recommendPool int
}

// NewService returns a configured Service. rdb may be nil, in which case
// degradation events are only logged.
func NewService(offers OfferSource, city CityIntel, students StudentDirectory, rdb *redis.Client, newsPerCity, recommendPool int) *Service {
	return &Service{
		offers:        offers,
		city:          city,
		students:      students,
		rdb:           rdb,
		newsPerCity:   newsPerCity,
		recommendPool: recommendPool,
	}
}

// cityEnrichment is the value cached per distinct city for one call.
type cityEnrichment struct {
	scores model.Scores
	news   []model.EnrichedNews
}

// GetEnrichedOffers fetches offers under the given filters, truncates to
// limit, then enriches every offer with its city's score snapshot and recent
// news. Output order matches the catalog's order.
//
// Failure to reach the catalog fails the whole operation: offers are the
// backbone. Per-city enrichment failures degrade to zero scores / empty news
// and never fail the request.
func (s *Service) GetEnrichedOffers(ctx context.Context, city, domain string, limit int) ([]model.EnrichedOffer, error) {
	offers, err := s.offers.FetchOffers(ctx, city, domain)
	if err != nil {
		return nil, fmt.Errorf("fetch offers: %w", err)
	}

	// Truncate before enrichment so enrichment cost is bounded by limit.
	if limit < len(offers) {
		offers = offers[:limit]
	}

	cities := make(map[string]struct{}, len(offers))
	for _, o := range offers {
		cities[o.City] = struct{}{}
	}

	var enrichments map[string]cityEnrichment
	if len(cities) > 0 {
		enrichments = s.enrichCities(ctx, cities)
	}

	enriched := make([]model.EnrichedOffer, 0, len(offers))
	for _, o := range offers {
		// Every offer city is in the map by construction; fall back to the
		// zero enrichment anyway.
		e := enrichments[o.City]
		enriched = append(enriched, model.EnrichedOffer{
			Offer:      o,
			Scores:     e.scores,
			LatestNews: e.news,
		})
	}

	return enriched, nil
}

// enrichCities fans out one enrichment goroutine per distinct city and
// gathers all results before building the map, so the map is never written
// concurrently. The barrier is full: no early return on first failure.
func (s *Service) enrichCities(ctx context.Context, cities map[string]struct{}) map[string]cityEnrichment {
	type result struct {
		city string
		enr  cityEnrichment
	}

	results := make(chan result, len(cities))
	var wg sync.WaitGroup

	for city := range cities {
		wg.Add(1)
		go func() {
			defer wg.Done()
			results <- result{city: city, enr: s.enrichCity(ctx, city)}
		}()
	}

	wg.Wait()
	close(results)

	enrichments := make(map[string]cityEnrichment, len(cities))
	for r := range results {
		enrichments[r.city] = r.enr
	}
	return enrichments
}

// enrichCity runs the two city-intel calls for one city. Each failure
// degrades independently: zero scores, or empty news.
func (s *Service) enrichCity(ctx context.Context, city string) cityEnrichment {
	var enr cityEnrichment

	score, err := s.city.CityScore(ctx, city)
	if err != nil {
		s.reportDegraded(ctx, city, "score", err)
	} else {
		enr.scores = model.Scores{
			QualityOfLife: score.QualityOfLife,
			Economy:       score.Economy,
			Culture:       score.Culture,
			Safety:        score.Safety,
		}
	}

	items, err := s.city.LatestNewsInCity(ctx, city, s.newsPerCity)
	if err != nil {
		s.reportDegraded(ctx, city, "news", err)
	} else {
		enr.news = model.TrimNews(items)
	}

	return enr
}

// reportDegraded records a per-city enrichment failure: warn log plus an
// EVENT_ENRICHMENT_DEGRADED publish for downstream monitoring (non-fatal).
func (s *Service) reportDegraded(ctx context.Context, city, kind string, cause error) {
	slog.Warn("city enrichment degraded", "city", city, "kind", kind, "err", cause)

	if s.rdb == nil {
		return
	}
	event, _ := json.Marshal(map[string]string{
		"type":   "EVENT_ENRICHMENT_DEGRADED",
		"city":   city,
		"kind":   kind,
		"reason": cause.Error(),
	})
	if err := s.rdb.Publish(ctx, "EVENT_ENRICHMENT_DEGRADED", event).Err(); err != nil {
		slog.Warn("publish EVENT_ENRICHMENT_DEGRADED failed", "err", err)
	}
}

// GetRecommendedOffers resolves the student, gathers a broad enriched
// candidate pool filtered by the student's domain, optionally ranks it by a
// score dimension, and truncates to limit.
//
// An unknown student fails fast, before any catalog or enrichment call.
func (s *Service) GetRecommendedOffers(ctx context.Context, studentID uuid.UUID, limit int, sortBy string) (model.Student, []model.EnrichedOffer, error) {
	st, err := s.students.Get(ctx, studentID)
	if err != nil {
		return model.Student{}, nil, fmt.Errorf("resolve student: %w", err)
	}

	// The pool is deliberately larger than the caller's limit: ranking a
	// pre-truncated set would bias the result.
	pool, err := s.GetEnrichedOffers(ctx, "", st.Domain, s.recommendPool)
	if err != nil {
		return model.Student{}, nil, err
	}

	sortByDimension(pool, sortBy)

	if limit < len(pool) {
		pool = pool[:limit]
	}
	return st, pool, nil
}
