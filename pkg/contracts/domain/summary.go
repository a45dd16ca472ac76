package domain

// RouteSummary holds descriptive statistics for every bid on one route.
type RouteSummary struct {
	Route        string  `json:"route"`
	CarrierCount int     `json:"carrier_count"`
	MinPrice     float64 `json:"min_price"`
	MeanPrice    float64 `json:"mean_price"`
	MaxPrice     float64 `json:"max_price"`
	// PriceSpread is MaxPrice - MinPrice; 0 for a single-bid route.
	PriceSpread float64 `json:"price_spread"`
	TotalBids   int     `json:"total_bids"`
}

// CarrierSummary holds per-airline statistics over the validated bid set.
type CarrierSummary struct {
	Airline      string  `json:"airline"`
	AvgPrice     float64 `json:"avg_price"`
	MinPrice     float64 `json:"min_price"`
	MaxPrice     float64 `json:"max_price"`
	TotalBids    int     `json:"total_bids"`
	RoutesServed int     `json:"routes_served"`
	// CompetitivenessScore is the percentage of the carrier's bids rated
	// TierBest. 0 when the carrier has no bids.
	CompetitivenessScore float64 `json:"competitiveness_score"`
}

// OverviewStats is the executive overview strip: headline numbers over the
// whole validated bid set.
type OverviewStats struct {
	TotalRoutes   int     `json:"total_routes"`
	TotalCarriers int     `json:"total_carriers"`
	AveragePrice  float64 `json:"average_price"`
	// BestRatePct is the share of bids carrying the top tier, in percent.
	BestRatePct float64 `json:"best_rate_pct"`
	TotalBids   int     `json:"total_bids"`
}
