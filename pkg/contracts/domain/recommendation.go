package domain

// Recommendation compares the cheapest and most expensive bid on one route.
// When the route has a single bid, Recommended and Baseline are the same
// record and both savings figures are zero.
type Recommendation struct {
	Recommended BidRecord `json:"recommended"`
	Baseline    BidRecord `json:"baseline"`
	Savings     float64   `json:"savings"`
	SavingsPct  float64   `json:"savings_pct"`
}
