package domain

// RouteSeparator joins the two endpoints of a route key. It matches the
// arrow used in the source workbook's derived route column, so route keys
// produced here line up with what analysts see in the sheet.
const RouteSeparator = " → "

// RouteKey derives the canonical route identifier for an origin/destination
// pair. It returns the empty string when either endpoint is missing; a route
// is never derivable from half a pair.
func RouteKey(origin, destination string) string {
	if origin == "" || destination == "" {
		return ""
	}
	return origin + RouteSeparator + destination
}

// BidRecord is one carrier's price quote for one origin-destination pair,
// normalized from the bid sheet into the canonical schema. Records are
// immutable after construction; Route and the rating-derived fields are
// always recomputed from their inputs, never edited independently.
type BidRecord struct {
	OriginAirport      string `json:"origin_airport"`
	DestinationAirport string `json:"destination_airport"`
	Airline            string `json:"airline"`

	// Route is derived as OriginAirport + RouteSeparator + DestinationAirport.
	// Empty when either endpoint is missing.
	Route string `json:"route"`

	// MinCharge2 is the canonical price used for every comparison.
	// MinCharge is carried for reference only. Nil means the source cell
	// was absent or unparseable.
	MinCharge  *float64 `json:"min_charge,omitempty"`
	MinCharge2 *float64 `json:"min_charge2,omitempty"`

	Currency           string `json:"currency"`
	DirectIndirect     string `json:"direct_indirect"`
	Via                string `json:"via"`
	CommodityGroup     string `json:"commodity_group"`
	TempControlled     string `json:"temp_controlled"`
	AirMode            string `json:"air_mode"`
	OriginCountry      string `json:"origin_country"`
	DestinationCountry string `json:"destination_country"`
	OriginRegion       string `json:"origin_region"`
	DestinationRegion  string `json:"destination_region"`
	IntentionToBid     string `json:"intention_to_bid"`

	RatingRaw    RatingRaw  `json:"rating_raw"`
	RatingTier   RatingTier `json:"rating_tier"`
	DisplayColor string     `json:"display_color"`
}

// Valid reports whether the record is eligible for aggregation: origin,
// destination, airline and the canonical price must all be present.
func (b *BidRecord) Valid() bool {
	return b.OriginAirport != "" &&
		b.DestinationAirport != "" &&
		b.Airline != "" &&
		b.MinCharge2 != nil
}

// Price returns the canonical comparison price. Only meaningful for valid
// records; returns 0 when the price is absent.
func (b *BidRecord) Price() float64 {
	if b.MinCharge2 == nil {
		return 0
	}
	return *b.MinCharge2
}

// BidSet is the result of one ingestion run: the validated, classified
// records plus the content hash of the source bytes they were derived from.
type BidSet struct {
	Records    []BidRecord `json:"records"`
	SourceHash string      `json:"source_hash"`
}
