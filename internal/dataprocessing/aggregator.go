package dataprocessing

import (
	"sort"

	"bidscli/pkg/contracts/domain"
)

// SummarizeByRoute groups validated records by route and computes the
// per-route pricing statistics. Results are sorted by route name for
// deterministic output.
func SummarizeByRoute(records []domain.BidRecord) []domain.RouteSummary {
	groups := groupBy(records, func(r *domain.BidRecord) string { return r.Route })

	summaries := make([]domain.RouteSummary, 0, len(groups))
	for route, group := range groups {
		carriers := make(map[string]struct{}, len(group))
		min, max, sum := group[0].Price(), group[0].Price(), 0.0
		for i := range group {
			price := group[i].Price()
			sum += price
			if price < min {
				min = price
			}
			if price > max {
				max = price
			}
			carriers[group[i].Airline] = struct{}{}
		}

		summaries = append(summaries, domain.RouteSummary{
			Route:        route,
			CarrierCount: len(carriers),
			MinPrice:     min,
			MeanPrice:    sum / float64(len(group)),
			MaxPrice:     max,
			PriceSpread:  max - min,
			TotalBids:    len(group),
		})
	}

	sort.Slice(summaries, func(i, j int) bool {
		return summaries[i].Route < summaries[j].Route
	})
	return summaries
}

// SummarizeByCarrier groups validated records by airline and computes the
// per-carrier statistics, including the competitiveness score: the
// percentage of the carrier's bids rated TierBest. Results are sorted by
// airline name.
func SummarizeByCarrier(records []domain.BidRecord) []domain.CarrierSummary {
	groups := groupBy(records, func(r *domain.BidRecord) string { return r.Airline })

	summaries := make([]domain.CarrierSummary, 0, len(groups))
	for airline, group := range groups {
		routes := make(map[string]struct{}, len(group))
		min, max, sum := group[0].Price(), group[0].Price(), 0.0
		best := 0
		for i := range group {
			price := group[i].Price()
			sum += price
			if price < min {
				min = price
			}
			if price > max {
				max = price
			}
			routes[group[i].Route] = struct{}{}
			if group[i].RatingTier == domain.TierBest {
				best++
			}
		}

		score := 0.0
		if len(group) > 0 {
			score = 100 * float64(best) / float64(len(group))
		}

		summaries = append(summaries, domain.CarrierSummary{
			Airline:              airline,
			AvgPrice:             sum / float64(len(group)),
			MinPrice:             min,
			MaxPrice:             max,
			TotalBids:            len(group),
			RoutesServed:         len(routes),
			CompetitivenessScore: score,
		})
	}

	sort.Slice(summaries, func(i, j int) bool {
		return summaries[i].Airline < summaries[j].Airline
	})
	return summaries
}

// TopCarriersByBids ranks carrier summaries by bid volume, descending, with
// ties broken by ascending airline name, and returns at most n entries.
func TopCarriersByBids(summaries []domain.CarrierSummary, n int) []domain.CarrierSummary {
	ranked := make([]domain.CarrierSummary, len(summaries))
	copy(ranked, summaries)

	sort.Slice(ranked, func(i, j int) bool {
		if ranked[i].TotalBids != ranked[j].TotalBids {
			return ranked[i].TotalBids > ranked[j].TotalBids
		}
		return ranked[i].Airline < ranked[j].Airline
	})

	if n >= 0 && n < len(ranked) {
		ranked = ranked[:n]
	}
	return ranked
}

// Overview computes the headline numbers across the whole validated set.
func Overview(records []domain.BidRecord) domain.OverviewStats {
	if len(records) == 0 {
		return domain.OverviewStats{}
	}

	routes := make(map[string]struct{})
	carriers := make(map[string]struct{})
	sum := 0.0
	best := 0
	for i := range records {
		routes[records[i].Route] = struct{}{}
		carriers[records[i].Airline] = struct{}{}
		sum += records[i].Price()
		if records[i].RatingTier == domain.TierBest {
			best++
		}
	}

	return domain.OverviewStats{
		TotalRoutes:   len(routes),
		TotalCarriers: len(carriers),
		AveragePrice:  sum / float64(len(records)),
		BestRatePct:   100 * float64(best) / float64(len(records)),
		TotalBids:     len(records),
	}
}

// Origins returns the sorted distinct origin airports in the record set.
func Origins(records []domain.BidRecord) []string {
	return distinct(records, func(r *domain.BidRecord) string { return r.OriginAirport })
}

// DestinationsFrom returns the sorted distinct destinations reachable from
// an origin. An unknown origin yields an empty slice: a legitimate empty
// answer, not an error.
func DestinationsFrom(records []domain.BidRecord, origin string) []string {
	seen := make(map[string]struct{})
	var out []string
	for i := range records {
		if records[i].OriginAirport != origin {
			continue
		}
		dest := records[i].DestinationAirport
		if _, ok := seen[dest]; ok {
			continue
		}
		seen[dest] = struct{}{}
		out = append(out, dest)
	}
	sort.Strings(out)
	if out == nil {
		out = []string{}
	}
	return out
}

// RouteBids returns the bids for one origin/destination pair sorted by
// ascending price, ties broken by airline name. Empty when no carrier
// serves the route.
func RouteBids(records []domain.BidRecord, origin, destination string) []domain.BidRecord {
	var out []domain.BidRecord
	for i := range records {
		if records[i].OriginAirport == origin && records[i].DestinationAirport == destination {
			out = append(out, records[i])
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Price() != out[j].Price() {
			return out[i].Price() < out[j].Price()
		}
		return out[i].Airline < out[j].Airline
	})
	if out == nil {
		out = []domain.BidRecord{}
	}
	return out
}

// groupBy builds the key → member-records mapping that every aggregate is
// reduced from.
func groupBy(records []domain.BidRecord, key func(*domain.BidRecord) string) map[string][]domain.BidRecord {
	groups := make(map[string][]domain.BidRecord)
	for i := range records {
		k := key(&records[i])
		groups[k] = append(groups[k], records[i])
	}
	return groups
}

func distinct(records []domain.BidRecord, key func(*domain.BidRecord) string) []string {
	seen := make(map[string]struct{}, len(records))
	var out []string
	for i := range records {
		k := key(&records[i])
		if _, ok := seen[k]; ok {
			continue
		}
		seen[k] = struct{}{}
		out = append(out, k)
	}
	sort.Strings(out)
	if out == nil {
		out = []string{}
	}
	return out
}
