package timeframe

import (
	"testing"

	"chartlab-go/src/generator"
	"chartlab-go/src/models"
	"chartlab-go/src/rng"
	"chartlab-go/src/viewport"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testBars(n int, seed int64) []models.Bar {
	return generator.Generate(n, generator.Params{
		StartPrice: 100,
		Drift:      0.0005,
		Volatility: 0.01,
		Substeps:   4,
	}, rng.NewSeeded(seed))
}

func TestAggregateIdentity(t *testing.T) {
	base := testBars(37, 1)
	got := Aggregate(base, 1)
	require.Equal(t, base, got)

	// The identity is still a copy.
	got[0].Close = -1
	assert.NotEqual(t, base[0].Close, got[0].Close)
}

func TestAggregateFiveBars(t *testing.T) {
	base := testBars(5, 2)
	got := Aggregate(base, 5)
	require.Len(t, got, 1)

	wantHigh, wantLow := base[0].High, base[0].Low
	for _, b := range base {
		if b.High > wantHigh {
			wantHigh = b.High
		}
		if b.Low < wantLow {
			wantLow = b.Low
		}
	}
	agg := got[0]
	assert.Equal(t, 0, agg.Index)
	assert.Equal(t, base[0].Open, agg.Open)
	assert.Equal(t, base[4].Close, agg.Close)
	assert.Equal(t, wantHigh, agg.High)
	assert.Equal(t, wantLow, agg.Low)
	assert.True(t, agg.Valid())
}

func TestAggregateDropsTrailingPartialGroup(t *testing.T) {
	base := testBars(17, 3)
	got := Aggregate(base, 5)
	require.Len(t, got, 3) // 17/5 = 3, two bars dropped
	for i, b := range got {
		assert.Equal(t, i, b.Index)
		assert.True(t, b.Valid())
	}
}

func TestAggregateInvalidGranularity(t *testing.T) {
	base := testBars(10, 4)
	assert.Equal(t, base, Aggregate(base, 0))
	assert.Equal(t, base, Aggregate(base, -2))
}

func TestBaseRange(t *testing.T) {
	start, end := BaseRange(2, 5, 100)
	assert.Equal(t, 10, start)
	assert.Equal(t, 14, end)

	// Clipped to the sequence length.
	start, end = BaseRange(2, 5, 12)
	assert.Equal(t, 10, start)
	assert.Equal(t, 11, end)
}

func TestCoarseIndex(t *testing.T) {
	assert.Equal(t, 0, CoarseIndex(4, 5))
	assert.Equal(t, 1, CoarseIndex(5, 5))
	assert.Equal(t, 3, CoarseIndex(19, 5))
	assert.Equal(t, 7, CoarseIndex(7, 0)) // granularity clamped to 1
}

func TestRescalePreservesSpan(t *testing.T) {
	vp := viewport.Viewport{Start: 50, Count: 100}
	got := Rescale(vp, 1, 5, 60)
	assert.Equal(t, 10.0, got.Start)
	assert.Equal(t, 20, got.Count)

	// And back up again.
	back := Rescale(got, 5, 1, 300)
	assert.Equal(t, 50.0, back.Start)
	assert.Equal(t, 100, back.Count)
}

func TestRescaleClampsNeverErrors(t *testing.T) {
	vp := viewport.Viewport{Start: 290, Count: 10}
	got := Rescale(vp, 1, 15, 4) // tiny new sequence
	assert.GreaterOrEqual(t, got.Count, viewport.MinCount)
	assert.GreaterOrEqual(t, got.Start, 0.0)

	got = Rescale(viewport.Viewport{Start: -3, Count: 2}, 0, -1, 50)
	assert.GreaterOrEqual(t, got.Count, viewport.MinCount)
	assert.GreaterOrEqual(t, got.Start, 0.0)
}
