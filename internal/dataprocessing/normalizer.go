package dataprocessing

import (
	"log/slog"
	"strconv"
	"strings"

	"bidscli/pkg/contracts/domain"
)

// columnMapping translates known source header labels to canonical field
// names. Labels absent from this table are dropped during normalization.
// "Destinatin Country" reproduces a long-standing typo in the workbook
// template; fixing it here would orphan the column.
var columnMapping = map[string]string{
	"Commodity Group":           "commodity_group",
	"TempControlled":            "temp_controlled",
	"Air Mode":                  "air_mode",
	"Origin Airport":            "origin_airport",
	"Destination Airport":       "destination_airport",
	"Origin Country":            "origin_country",
	"Destinatin Country":        "destination_country",
	"Origin Region":             "origin_region",
	"Destination Region":        "destination_region",
	"Airline":                   "airline",
	"Intention to Bid (Yes/No)": "intention_to_bid",
	"Direct / Indirect":         "direct_indirect",
	"Via":                       "via",
	"Currency":                  "currency",
	"Min Charge":                "min_charge",
	"Min Charge2":               "min_charge2",
	"Numerical Rating":          "rating",
	"Column1":                   "rating_category",
}

// defaultAttr is the placeholder carried by optional descriptive attributes
// whose source column is absent or blank.
const defaultAttr = "unknown"

// Normalize maps raw grid rows onto canonical BidRecords. Numeric coercion
// is total: an unparseable price yields a nil field, never an error, and the
// row is still emitted for the validator to judge.
func Normalize(grid *Grid, logger *slog.Logger) []domain.BidRecord {
	if logger == nil {
		logger = slog.Default()
	}
	if grid == nil || len(grid.Rows) == 0 {
		return []domain.BidRecord{}
	}

	// Resolve header positions once; every later probe is by canonical name
	fieldIndex := make(map[string]int, len(grid.Headers))
	for i, label := range grid.Headers {
		if canonical, ok := columnMapping[strings.TrimSpace(label)]; ok {
			fieldIndex[canonical] = i
		}
	}

	records := make([]domain.BidRecord, 0, len(grid.Rows))
	for _, row := range grid.Rows {
		field := func(name string) string {
			idx, ok := fieldIndex[name]
			if !ok || idx >= len(row) {
				return ""
			}
			return strings.TrimSpace(row[idx])
		}

		rec := domain.BidRecord{
			OriginAirport:      field("origin_airport"),
			DestinationAirport: field("destination_airport"),
			Airline:            field("airline"),
			MinCharge:          parsePrice(field("min_charge")),
			MinCharge2:         parsePrice(field("min_charge2")),
			Currency:           attrOrDefault(field("currency")),
			DirectIndirect:     attrOrDefault(field("direct_indirect")),
			Via:                attrOrDefault(field("via")),
			CommodityGroup:     attrOrDefault(field("commodity_group")),
			TempControlled:     attrOrDefault(field("temp_controlled")),
			AirMode:            attrOrDefault(field("air_mode")),
			OriginCountry:      attrOrDefault(field("origin_country")),
			DestinationCountry: attrOrDefault(field("destination_country")),
			OriginRegion:       attrOrDefault(field("origin_region")),
			DestinationRegion:  attrOrDefault(field("destination_region")),
			IntentionToBid:     attrOrDefault(field("intention_to_bid")),
			RatingRaw:          resolveRating(field("rating_category"), field("rating")),
		}
		rec.Route = domain.RouteKey(rec.OriginAirport, rec.DestinationAirport)

		records = append(records, rec)
	}

	logger.Debug("normalized bid rows",
		slog.Int("rows", len(grid.Rows)),
		slog.Int("records", len(records)))

	return records
}

// parsePrice coerces a raw cell to a price. Thousands separators and a
// leading currency sign are tolerated. Returns nil when the cell does not
// hold a number.
func parsePrice(raw string) *float64 {
	cleaned := strings.TrimSpace(strings.TrimPrefix(raw, "$"))
	cleaned = strings.ReplaceAll(cleaned, ",", "")
	if cleaned == "" {
		return nil
	}
	v, err := strconv.ParseFloat(cleaned, 64)
	if err != nil {
		return nil
	}
	return &v
}

// resolveRating folds the two source rating encodings into one tagged value.
// The categorical column wins when it carries a real label; otherwise the
// numerical rating is used; otherwise the rating is absent. Matches the
// precedence of the source dashboard.
func resolveRating(category, numeric string) domain.RatingRaw {
	if label := cleanCategory(category); label != "" {
		return domain.CategoryRating(label)
	}
	if cleaned := strings.TrimSpace(numeric); cleaned != "" {
		if v, err := strconv.ParseFloat(cleaned, 64); err == nil {
			return domain.NumericRating(v)
		}
	}
	return domain.AbsentRating()
}

// cleanCategory strips the null spellings ("nan", "None") that leak into
// the categorical rating column from upstream exports.
func cleanCategory(raw string) string {
	label := strings.TrimSpace(raw)
	switch strings.ToLower(label) {
	case "", "nan", "none":
		return ""
	}
	return label
}

func attrOrDefault(v string) string {
	if v == "" {
		return defaultAttr
	}
	return v
}
