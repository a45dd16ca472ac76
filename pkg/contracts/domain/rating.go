package domain

// RatingTier is the canonical competitiveness classification of a bid.
type RatingTier string

const (
	TierBest    RatingTier = "Best"
	TierFair    RatingTier = "Fair"
	TierPremium RatingTier = "Premium"
	TierUnknown RatingTier = "Unknown"
)

// Display colors, one per tier. The palette is fixed: the same tier always
// gets the same color no matter which raw encoding produced it.
const (
	ColorBest    = "#22c55e"
	ColorFair    = "#f97316"
	ColorPremium = "#ef4444"
	ColorUnknown = "#6b7280"
)

// Color returns the display color for the tier.
func (t RatingTier) Color() string {
	switch t {
	case TierBest:
		return ColorBest
	case TierFair:
		return ColorFair
	case TierPremium:
		return ColorPremium
	default:
		return ColorUnknown
	}
}

// RatingKind discriminates the raw rating encodings found across source
// sheet variants.
type RatingKind string

const (
	RatingAbsent   RatingKind = "absent"
	RatingNumeric  RatingKind = "numeric"
	RatingCategory RatingKind = "category"
)

// RatingRaw is the source-provided rating value, either a small numeric
// rating (1-3) or a categorical label (green/orange/red). It is opaque until
// classified; downstream code never branches on which encoding a sheet used.
type RatingRaw struct {
	Kind   RatingKind `json:"kind"`
	Number float64    `json:"number,omitempty"`
	Label  string     `json:"label,omitempty"`
}

// NumericRating wraps a numeric source rating.
func NumericRating(v float64) RatingRaw {
	return RatingRaw{Kind: RatingNumeric, Number: v}
}

// CategoryRating wraps a categorical source rating label.
func CategoryRating(label string) RatingRaw {
	return RatingRaw{Kind: RatingCategory, Label: label}
}

// AbsentRating marks a record whose source carried no usable rating.
func AbsentRating() RatingRaw {
	return RatingRaw{Kind: RatingAbsent}
}
