package services

import (
	"context"
	"log/slog"
	"sync"

	"bidscli/internal/dataprocessing"
	apperrors "bidscli/internal/errors"
	"bidscli/pkg/contracts/domain"
)

// BidService is the boundary the presentation layer talks to. It owns the
// loader and the most recently ingested bid set, and exposes the analytics
// operations over it. Analytics never mutate the set; concurrent readers
// share it freely.
type BidService struct {
	loader *dataprocessing.Loader
	logger *slog.Logger

	mu      sync.RWMutex
	current *domain.BidSet
}

// NewBidService creates a bid analysis service around a loader.
func NewBidService(loader *dataprocessing.Loader, logger *slog.Logger) *BidService {
	if logger == nil {
		logger = slog.Default()
	}
	return &BidService{
		loader: loader,
		logger: logger.With(slog.String("component", "bid_service")),
	}
}

// LoadWorkbook ingests workbook bytes and makes the resulting bid set the
// current one. A fatal ingestion error leaves the previous set in place.
func (s *BidService) LoadWorkbook(ctx context.Context, source []byte) (*domain.BidSet, error) {
	set, err := s.loader.Load(ctx, source)
	if err != nil {
		s.logger.ErrorContext(ctx, "workbook ingestion failed",
			slog.String("error", err.Error()))
		return nil, apperrors.NewParsingError("failed to ingest bid workbook", err)
	}

	s.mu.Lock()
	s.current = set
	s.mu.Unlock()

	return set, nil
}

// Current returns the active bid set, or false when nothing has been loaded.
func (s *BidService) Current() (*domain.BidSet, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.current == nil {
		return nil, false
	}
	return s.current, true
}

// records returns the validated records of the current set.
func (s *BidService) records() ([]domain.BidRecord, error) {
	set, ok := s.Current()
	if !ok {
		return nil, apperrors.NewNotFoundError("no bid sheet loaded", nil)
	}
	return set.Records, nil
}

// Overview returns the headline statistics over the current set.
func (s *BidService) Overview(ctx context.Context) (domain.OverviewStats, error) {
	records, err := s.records()
	if err != nil {
		return domain.OverviewStats{}, err
	}
	return dataprocessing.Overview(records), nil
}

// RouteSummaries returns per-route statistics over the current set.
func (s *BidService) RouteSummaries(ctx context.Context) ([]domain.RouteSummary, error) {
	records, err := s.records()
	if err != nil {
		return nil, err
	}
	return dataprocessing.SummarizeByRoute(records), nil
}

// CarrierSummaries returns per-carrier statistics over the current set.
func (s *BidService) CarrierSummaries(ctx context.Context) ([]domain.CarrierSummary, error) {
	records, err := s.records()
	if err != nil {
		return nil, err
	}
	return dataprocessing.SummarizeByCarrier(records), nil
}

// TopCarriers returns the n busiest carriers by bid count.
func (s *BidService) TopCarriers(ctx context.Context, n int) ([]domain.CarrierSummary, error) {
	summaries, err := s.CarrierSummaries(ctx)
	if err != nil {
		return nil, err
	}
	return dataprocessing.TopCarriersByBids(summaries, n), nil
}

// Origins returns the distinct origin airports of the current set.
func (s *BidService) Origins(ctx context.Context) ([]string, error) {
	records, err := s.records()
	if err != nil {
		return nil, err
	}
	return dataprocessing.Origins(records), nil
}

// Destinations returns the destinations reachable from origin. An empty
// slice is a valid answer for an origin with no bids.
func (s *BidService) Destinations(ctx context.Context, origin string) ([]string, error) {
	records, err := s.records()
	if err != nil {
		return nil, err
	}
	return dataprocessing.DestinationsFrom(records, origin), nil
}

// RouteDetail returns the bids on one route sorted by ascending price.
func (s *BidService) RouteDetail(ctx context.Context, origin, destination string) ([]domain.BidRecord, error) {
	records, err := s.records()
	if err != nil {
		return nil, err
	}
	return dataprocessing.RouteBids(records, origin, destination), nil
}

// Recommend returns the best-versus-worst carrier comparison for a route.
// ok is false when no carrier serves the route.
func (s *BidService) Recommend(ctx context.Context, origin, destination string) (domain.Recommendation, bool, error) {
	records, err := s.records()
	if err != nil {
		return domain.Recommendation{}, false, err
	}
	rec, ok := dataprocessing.Recommend(records, origin, destination)
	return rec, ok, nil
}
