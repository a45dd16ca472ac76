package exporter

import (
	"context"
	"encoding/csv"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "bidscli/internal/errors"
	"bidscli/pkg/contracts/domain"
)

func readCSV(t *testing.T, path string) [][]string {
	t.Helper()
	file, err := os.Open(path)
	require.NoError(t, err)
	defer file.Close()
	rows, err := csv.NewReader(file).ReadAll()
	require.NoError(t, err)
	return rows
}

func TestExporter_WriteRouteSummariesCSV(t *testing.T) {
	exporter := New(nil)
	path := filepath.Join(t.TempDir(), "routes.csv")

	summaries := []domain.RouteSummary{
		{Route: "JFK → LHR", CarrierCount: 3, MinPrice: 100, MeanPrice: 150, MaxPrice: 200, PriceSpread: 100, TotalBids: 3},
		{Route: "SIN → FRA", CarrierCount: 1, MinPrice: 80.5, MeanPrice: 80.5, MaxPrice: 80.5, PriceSpread: 0, TotalBids: 1},
	}

	require.NoError(t, exporter.WriteRouteSummariesCSV(context.Background(), path, summaries))

	rows := readCSV(t, path)
	require.Len(t, rows, 3)
	assert.Equal(t, []string{"Route", "CarrierCount", "MinPrice", "MeanPrice", "MaxPrice", "PriceSpread", "TotalBids"}, rows[0])
	assert.Equal(t, []string{"JFK → LHR", "3", "100.00", "150.00", "200.00", "100.00", "3"}, rows[1])
	assert.Equal(t, []string{"SIN → FRA", "1", "80.50", "80.50", "80.50", "0.00", "1"}, rows[2])
}

func TestExporter_WriteCarrierSummariesCSV(t *testing.T) {
	exporter := New(nil)
	path := filepath.Join(t.TempDir(), "carriers.csv")

	summaries := []domain.CarrierSummary{
		{Airline: "Alpha Air", AvgPrice: 120.25, MinPrice: 100, MaxPrice: 140.5, TotalBids: 2, RoutesServed: 2, CompetitivenessScore: 50},
	}

	require.NoError(t, exporter.WriteCarrierSummariesCSV(context.Background(), path, summaries))

	rows := readCSV(t, path)
	require.Len(t, rows, 2)
	assert.Equal(t, []string{"Alpha Air", "120.25", "100.00", "140.50", "2", "2", "50.0"}, rows[1])
}

func TestExporter_WriteRouteBidsCSV(t *testing.T) {
	exporter := New(nil)
	path := filepath.Join(t.TempDir(), "route_bids.csv")

	price := 100.0
	bids := []domain.BidRecord{
		{
			Airline:        "Alpha Air",
			Route:          "JFK → LHR",
			MinCharge2:     &price,
			Currency:       "USD",
			RatingTier:     domain.TierBest,
			DirectIndirect: "Direct",
			Via:            "unknown",
		},
	}

	require.NoError(t, exporter.WriteRouteBidsCSV(context.Background(), path, bids))

	rows := readCSV(t, path)
	require.Len(t, rows, 2)
	assert.Equal(t, []string{"Alpha Air", "JFK → LHR", "100.00", "USD", "Best", "Direct", "unknown"}, rows[1])
}

func TestExporter_WriteSummariesJSON(t *testing.T) {
	exporter := New(nil)
	path := filepath.Join(t.TempDir(), "out", "analytics.json")

	overview := domain.OverviewStats{TotalRoutes: 1, TotalCarriers: 2, AveragePrice: 150, BestRatePct: 50, TotalBids: 2}

	err := exporter.WriteSummariesJSON(context.Background(), path, overview, nil, nil)
	require.NoError(t, err)

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	var payload map[string]interface{}
	require.NoError(t, json.Unmarshal(data, &payload))
	assert.Equal(t, "bid_analytics_v1", payload["format"])
	assert.NotEmpty(t, payload["generated_at"])

	got, ok := payload["overview"].(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, float64(2), got["total_carriers"])
}

func TestExporter_WriteCSVBadPath(t *testing.T) {
	exporter := New(nil)
	// Parent is a file, so MkdirAll fails
	parent := filepath.Join(t.TempDir(), "blocker")
	require.NoError(t, os.WriteFile(parent, []byte("x"), 0644))

	err := exporter.WriteRouteSummariesCSV(context.Background(), filepath.Join(parent, "routes.csv"), nil)
	require.Error(t, err)
	assert.True(t, apperrors.IsType(err, apperrors.ErrTypeStorage))
}
