// Package model defines the shared data structures of the polymove service.
package model

import "github.com/google/uuid"

// Offer is a mobility offer as returned by the catalog upstream.
// Offers are read-only from this service's point of view: they are fetched,
// enriched and returned, never written back.
type Offer struct {
	ID        string  `json:"id"`
	Title     string  `json:"title"`
	Link      string  `json:"link"`
	City      string  `json:"city"`
	Domain    string  `json:"domain"`
	Salary    float64 `json:"salary"`
	StartDate string  `json:"start_date"`
	EndDate   string  `json:"end_date"`
}

// CityScore is the scoring snapshot the city-intel upstream keeps per city.
// All four dimensions are non-negative by upstream invariant.
type CityScore struct {
	City          string `json:"city"`
	Country       string `json:"country"`
	QualityOfLife int32  `json:"quality_of_life"`
	Safety        int32  `json:"safety"`
	Economy       int32  `json:"economy"`
	Culture       int32  `json:"culture"`
	LastUpdated   string `json:"last_updated"`
}

// NewsItem is a city news record from the city-intel upstream.
type NewsItem struct {
	ID      string   `json:"id"`
	Name    string   `json:"name"`
	Source  string   `json:"source"`
	Date    string   `json:"date"`
	Tags    []string `json:"tags"`
	City    string   `json:"city"`
	Country string   `json:"country"`
}

// Scores is the four-dimension snapshot attached to an enriched offer.
// The zero value is the documented default when the score lookup fails.
type Scores struct {
	QualityOfLife int32 `json:"quality_of_life"`
	Economy       int32 `json:"economy"`
	Culture       int32 `json:"culture"`
	Safety        int32 `json:"safety"`
}

// EnrichedNews is the trimmed news projection returned to callers.
type EnrichedNews struct {
	Title  string   `json:"title"`
	Source string   `json:"source"`
	Date   string   `json:"date"`
	Tags   []string `json:"tags"`
}

// EnrichedOffer is an Offer with the score snapshot and recent news for its
// city attached. Built fresh on every aggregation call.
type EnrichedOffer struct {
	Offer
	Scores     Scores         `json:"scores"`
	LatestNews []EnrichedNews `json:"latest_news"`
}

// Student mirrors a row of the students table.
type Student struct {
	ID        uuid.UUID `json:"id"`
	Firstname string    `json:"firstname"`
	Name      string    `json:"name"`
	Domain    string    `json:"domain"`
}

// TrimNews projects upstream news records to the caller-facing shape.
func TrimNews(items []NewsItem) []EnrichedNews {
	out := make([]EnrichedNews, 0, len(items))
	for _, n := range items {
		out = append(out, EnrichedNews{
			Title:  n.Name,
			Source: n.Source,
			Date:   n.Date,
			Tags:   n.Tags,
		})
	}
	return out
}
