package dataprocessing

import (
	"bidscli/pkg/contracts/domain"
)

// FilterValid drops records that are structurally incomplete: missing
// origin, destination, airline, or the canonical price. The drop is silent;
// no partial record ever reaches aggregation. Filtering an already-filtered
// set is a no-op.
func FilterValid(records []domain.BidRecord) []domain.BidRecord {
	valid := make([]domain.BidRecord, 0, len(records))
	for _, rec := range records {
		if rec.Valid() {
			valid = append(valid, rec)
		}
	}
	return valid
}
