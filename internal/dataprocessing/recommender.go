package dataprocessing

import (
	"bidscli/pkg/contracts/domain"
)

// Recommend compares carriers on one route: the cheapest bid becomes the
// recommendation, the most expensive the baseline, and the gap between them
// the potential savings. The second return value is false when no carrier
// serves the route; that is an empty result, not a failure.
func Recommend(records []domain.BidRecord, origin, destination string) (domain.Recommendation, bool) {
	bids := RouteBids(records, origin, destination)
	if len(bids) == 0 {
		return domain.Recommendation{}, false
	}

	// RouteBids sorts ascending by price
	recommended := bids[0]
	baseline := bids[len(bids)-1]

	savings := baseline.Price() - recommended.Price()
	savingsPct := 0.0
	if baseline.Price() != 0 {
		savingsPct = 100 * savings / baseline.Price()
	}

	return domain.Recommendation{
		Recommended: recommended,
		Baseline:    baseline,
		Savings:     savings,
		SavingsPct:  savingsPct,
	}, true
}
