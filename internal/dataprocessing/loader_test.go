package dataprocessing

import (
	"context"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bidscli/internal/metrics"
	"bidscli/pkg/contracts/domain"
)

func TestLoader_Load(t *testing.T) {
	ctx := context.Background()
	layout := DefaultSheetLayout()

	source := buildWorkbook(t, layout.SheetName, layout, bidHeaders, [][]interface{}{
		bidRow("JFK", "LHR", "Alpha Air", 100.0, 1, ""),
		bidRow("JFK", "LHR", "Beta Air", 150.0, nil, "Orange"),
		bidRow("JFK", "LHR", "Gamma Air", 200.0, 3, ""),
		// Missing price: normalized but dropped by the validator
		bidRow("JFK", "CDG", "Delta Air", nil, 1, ""),
	})

	loader := NewLoader(layout, nil, nil)
	set, err := loader.Load(ctx, source)
	require.NoError(t, err)
	require.NotNil(t, set)
	require.Len(t, set.Records, 3)
	assert.NotEmpty(t, set.SourceHash)

	for _, rec := range set.Records {
		assert.True(t, rec.Valid())
	}

	// Both encodings land on classified tiers
	assert.Equal(t, domain.TierBest, set.Records[0].RatingTier)
	assert.Equal(t, domain.TierFair, set.Records[1].RatingTier)
	assert.Equal(t, domain.ColorFair, set.Records[1].DisplayColor)
	assert.Equal(t, domain.TierPremium, set.Records[2].RatingTier)
}

func TestLoader_MemoizesByContentHash(t *testing.T) {
	ctx := context.Background()
	layout := DefaultSheetLayout()
	registry := prometheus.NewRegistry()
	m := metrics.New(registry)

	source := buildWorkbook(t, layout.SheetName, layout, bidHeaders, [][]interface{}{
		bidRow("JFK", "LHR", "Alpha Air", 100.0, 1, ""),
	})

	loader := NewLoader(layout, nil, m)

	first, err := loader.Load(ctx, source)
	require.NoError(t, err)
	second, err := loader.Load(ctx, source)
	require.NoError(t, err)

	// Identical bytes share the memoized set by reference
	assert.Same(t, first, second)
	assert.Equal(t, 1.0, testutil.ToFloat64(m.MemoHits))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.MemoMisses))

	// A different workbook invalidates the memo
	changed := buildWorkbook(t, layout.SheetName, layout, bidHeaders, [][]interface{}{
		bidRow("JFK", "LHR", "Alpha Air", 175.0, 2, ""),
	})
	third, err := loader.Load(ctx, changed)
	require.NoError(t, err)
	assert.NotEqual(t, first.SourceHash, third.SourceHash)
	require.Len(t, third.Records, 1)
	assert.Equal(t, 175.0, third.Records[0].Price())
	assert.Equal(t, 2.0, testutil.ToFloat64(m.MemoMisses))
}

func TestLoader_SheetNotFoundIsFatal(t *testing.T) {
	ctx := context.Background()
	layout := DefaultSheetLayout()

	source := buildWorkbook(t, "Sheet1", layout, bidHeaders, [][]interface{}{
		bidRow("JFK", "LHR", "Alpha Air", 100.0, 1, ""),
	})

	loader := NewLoader(layout, nil, nil)
	set, err := loader.Load(ctx, source)

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrSheetNotFound)
	assert.Nil(t, set)
}

func TestLoader_EndToEndScenario(t *testing.T) {
	// Full pipeline over the canonical three-carrier JFK→LHR workbook
	ctx := context.Background()
	layout := DefaultSheetLayout()

	source := buildWorkbook(t, layout.SheetName, layout, bidHeaders, [][]interface{}{
		bidRow("JFK", "LHR", "A", 100.0, 1, ""),
		bidRow("JFK", "LHR", "B", 150.0, 2, ""),
		bidRow("JFK", "LHR", "C", 200.0, 3, ""),
	})

	loader := NewLoader(layout, nil, nil)
	set, err := loader.Load(ctx, source)
	require.NoError(t, err)

	rec, ok := Recommend(set.Records, "JFK", "LHR")
	require.True(t, ok)
	assert.Equal(t, "A", rec.Recommended.Airline)
	assert.Equal(t, "C", rec.Baseline.Airline)
	assert.Equal(t, 100.0, rec.Savings)
	assert.Equal(t, 50.0, rec.SavingsPct)

	summaries := SummarizeByRoute(set.Records)
	require.Len(t, summaries, 1)
	assert.Equal(t, 3, summaries[0].CarrierCount)
	assert.Equal(t, 100.0, summaries[0].MinPrice)
	assert.Equal(t, 150.0, summaries[0].MeanPrice)
	assert.Equal(t, 200.0, summaries[0].MaxPrice)
	assert.Equal(t, 100.0, summaries[0].PriceSpread)
}
