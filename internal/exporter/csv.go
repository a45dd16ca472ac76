// Package exporter writes analytics results to CSV and JSON files for the
// one-shot CLI. Values are written raw, without currency or percentage
// formatting; presentation formatting belongs to whoever renders the files.
package exporter

import (
	"context"
	"encoding/csv"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	apperrors "bidscli/internal/errors"
	"bidscli/pkg/contracts/domain"
)

// Exporter writes bid analytics to files.
type Exporter struct {
	logger *slog.Logger
}

// New creates an exporter.
func New(logger *slog.Logger) *Exporter {
	if logger == nil {
		logger = slog.Default()
	}
	return &Exporter{logger: logger.With(slog.String("component", "exporter"))}
}

// WriteRouteSummariesCSV writes per-route statistics to path.
func (e *Exporter) WriteRouteSummariesCSV(ctx context.Context, path string, summaries []domain.RouteSummary) error {
	return e.writeCSV(ctx, path,
		[]string{"Route", "CarrierCount", "MinPrice", "MeanPrice", "MaxPrice", "PriceSpread", "TotalBids"},
		len(summaries),
		func(i int) []string {
			s := summaries[i]
			return []string{
				s.Route,
				fmt.Sprintf("%d", s.CarrierCount),
				fmt.Sprintf("%.2f", s.MinPrice),
				fmt.Sprintf("%.2f", s.MeanPrice),
				fmt.Sprintf("%.2f", s.MaxPrice),
				fmt.Sprintf("%.2f", s.PriceSpread),
				fmt.Sprintf("%d", s.TotalBids),
			}
		})
}

// WriteCarrierSummariesCSV writes per-carrier statistics to path.
func (e *Exporter) WriteCarrierSummariesCSV(ctx context.Context, path string, summaries []domain.CarrierSummary) error {
	return e.writeCSV(ctx, path,
		[]string{"Airline", "AvgPrice", "MinPrice", "MaxPrice", "TotalBids", "RoutesServed", "CompetitivenessScore"},
		len(summaries),
		func(i int) []string {
			s := summaries[i]
			return []string{
				s.Airline,
				fmt.Sprintf("%.2f", s.AvgPrice),
				fmt.Sprintf("%.2f", s.MinPrice),
				fmt.Sprintf("%.2f", s.MaxPrice),
				fmt.Sprintf("%d", s.TotalBids),
				fmt.Sprintf("%d", s.RoutesServed),
				fmt.Sprintf("%.1f", s.CompetitivenessScore),
			}
		})
}

// WriteRouteBidsCSV writes the bids of one route, cheapest first.
func (e *Exporter) WriteRouteBidsCSV(ctx context.Context, path string, bids []domain.BidRecord) error {
	return e.writeCSV(ctx, path,
		[]string{"Airline", "Route", "MinCharge2", "Currency", "RatingTier", "DirectIndirect", "Via"},
		len(bids),
		func(i int) []string {
			b := bids[i]
			return []string{
				b.Airline,
				b.Route,
				fmt.Sprintf("%.2f", b.Price()),
				b.Currency,
				string(b.RatingTier),
				b.DirectIndirect,
				b.Via,
			}
		})
}

// WriteSummariesJSON writes the full analytics bundle to a JSON file.
func (e *Exporter) WriteSummariesJSON(ctx context.Context, path string, overview domain.OverviewStats, routes []domain.RouteSummary, carriers []domain.CarrierSummary) error {
	e.logger.InfoContext(ctx, "writing analytics JSON",
		slog.String("path", path),
		slog.Int("routes", len(routes)),
		slog.Int("carriers", len(carriers)))

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return apperrors.NewStorageError("failed to create directory for JSON output", err)
	}

	payload := map[string]interface{}{
		"overview":     overview,
		"routes":       routes,
		"carriers":     carriers,
		"generated_at": time.Now().Format(time.RFC3339),
		"format":       "bid_analytics_v1",
	}

	file, err := os.Create(path)
	if err != nil {
		return apperrors.NewStorageError("failed to create JSON output file", err)
	}
	defer file.Close()

	encoder := json.NewEncoder(file)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(payload); err != nil {
		return apperrors.NewStorageError("failed to encode analytics JSON", err)
	}
	return nil
}

func (e *Exporter) writeCSV(ctx context.Context, path string, header []string, n int, row func(int) []string) error {
	e.logger.InfoContext(ctx, "writing CSV",
		slog.String("path", path),
		slog.Int("rows", n))

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return apperrors.NewStorageError("failed to create directory for CSV output", err)
	}

	file, err := os.Create(path)
	if err != nil {
		return apperrors.NewStorageError("failed to create CSV output file", err)
	}
	defer file.Close()

	writer := csv.NewWriter(file)
	defer writer.Flush()

	if err := writer.Write(header); err != nil {
		return apperrors.NewStorageError("failed to write CSV header row", err)
	}
	for i := 0; i < n; i++ {
		if err := writer.Write(row(i)); err != nil {
			return apperrors.NewStorageError("failed to write CSV data row", err)
		}
	}
	return nil
}
