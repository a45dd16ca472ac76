package dataprocessing

import (
	"strings"

	"bidscli/pkg/contracts/domain"
)

// Classify resolves a raw rating into its canonical tier. It is total:
// every input, including an absent rating, maps to exactly one tier.
// Numeric ratings 1/2/3 and the case-insensitive labels green/orange/red
// land on the same tiers, so callers never need to know which encoding the
// source sheet used.
func Classify(raw domain.RatingRaw) domain.RatingTier {
	switch raw.Kind {
	case domain.RatingNumeric:
		switch raw.Number {
		case 1:
			return domain.TierBest
		case 2:
			return domain.TierFair
		case 3:
			return domain.TierPremium
		}
		return domain.TierUnknown
	case domain.RatingCategory:
		switch strings.ToLower(strings.TrimSpace(raw.Label)) {
		case "green":
			return domain.TierBest
		case "orange":
			return domain.TierFair
		case "red":
			return domain.TierPremium
		}
		return domain.TierUnknown
	default:
		return domain.TierUnknown
	}
}

// ClassifyRecords assigns RatingTier and DisplayColor on every record and
// returns the slice for chaining. The color is derived from the tier alone;
// the raw encoding never leaks into presentation.
func ClassifyRecords(records []domain.BidRecord) []domain.BidRecord {
	for i := range records {
		tier := Classify(records[i].RatingRaw)
		records[i].RatingTier = tier
		records[i].DisplayColor = tier.Color()
	}
	return records
}
