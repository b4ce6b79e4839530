package aggregator

import (
	"sort"

	"github.com/axelfrache/polymove/internal/model"
)

// Recognized ranking dimensions for recommended offers.
const (
	SortBySafety        = "safety"
	SortByEconomy       = "economy"
	SortByQualityOfLife = "quality_of_life"
	SortByCulture       = "culture"
)

// sortByDimension stable-sorts offers descending by the named score
// dimension. An empty or unrecognized key leaves the order untouched:
// existing callers rely on the lenient behaviour.
func sortByDimension(offers []model.EnrichedOffer, sortBy string) {
	key := dimension(sortBy)
	if key == nil {
		return
	}
	sort.SliceStable(offers, func(i, j int) bool {
		return key(offers[i]) > key(offers[j])
	})
}

func dimension(sortBy string) func(model.EnrichedOffer) int32 {
	switch sortBy {
	case SortBySafety:
		return func(o model.EnrichedOffer) int32 { return o.Scores.Safety }
	case SortByEconomy:
		return func(o model.EnrichedOffer) int32 { return o.Scores.Economy }
	case SortByQualityOfLife:
		return func(o model.EnrichedOffer) int32 { return o.Scores.QualityOfLife }
	case SortByCulture:
		return func(o model.EnrichedOffer) int32 { return o.Scores.Culture }
	}
	return nil
}
