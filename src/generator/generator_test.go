package generator

import (
	"math"
	"testing"

	"chartlab-go/src/rng"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testParams = Params{
	StartPrice: 100,
	Drift:      0.0005,
	Volatility: 0.01,
	Substeps:   8,
}

func TestGenerateDeterministic(t *testing.T) {
	a := Generate(200, testParams, rng.NewSeeded(42))
	b := Generate(200, testParams, rng.NewSeeded(42))
	require.Equal(t, a, b)
}

func TestGenerateDifferentSeedsDiffer(t *testing.T) {
	a := Generate(50, testParams, rng.NewSeeded(1))
	b := Generate(50, testParams, rng.NewSeeded(2))
	assert.NotEqual(t, a, b)
}

func TestGenerateInvariant(t *testing.T) {
	bars := Generate(500, testParams, rng.NewSeeded(7))
	require.Len(t, bars, 500)
	for _, b := range bars {
		require.True(t, b.Valid(), "bar %d violates OHLC ordering: %+v", b.Index, b)
	}
}

func TestGenerateContinuity(t *testing.T) {
	bars := Generate(300, testParams, rng.NewSeeded(9))
	for i := 1; i < len(bars); i++ {
		require.Equal(t, bars[i-1].Close, bars[i].Open, "continuity broken at bar %d", i)
	}
}

func TestGenerateRounding(t *testing.T) {
	bars := Generate(100, testParams, rng.NewSeeded(3))
	for _, b := range bars {
		for _, v := range []float64{b.Open, b.High, b.Low, b.Close} {
			cents := v * 100
			require.InDelta(t, math.Round(cents), cents, 1e-9, "price %v of bar %d not on a cent", v, b.Index)
		}
	}
}

func TestGenerateIndexes(t *testing.T) {
	bars := Generate(20, testParams, rng.NewSeeded(5))
	for i, b := range bars {
		require.Equal(t, i, b.Index)
	}
}

func TestGenerateNonPositiveCount(t *testing.T) {
	assert.Empty(t, Generate(0, testParams, rng.NewSeeded(1)))
	assert.Empty(t, Generate(-3, testParams, rng.NewSeeded(1)))
}

func TestGenerateSubstepsClamped(t *testing.T) {
	p := testParams
	p.Substeps = 0
	bars := Generate(10, p, rng.NewSeeded(1))
	require.Len(t, bars, 10)
	for _, b := range bars {
		require.True(t, b.Valid())
	}
}

func TestAppendContinuesSequence(t *testing.T) {
	base := Generate(50, testParams, rng.NewSeeded(11))
	out := Append(base, 30, testParams, rng.NewSeeded(12))
	require.Len(t, out, 80)
	// Seam stays continuous and the prefix is untouched.
	assert.Equal(t, base, out[:50])
	assert.Equal(t, out[49].Close, out[50].Open)
	for i, b := range out {
		require.Equal(t, i, b.Index)
		require.True(t, b.Valid())
	}
}

func TestAppendToEmpty(t *testing.T) {
	out := Append(nil, 10, testParams, rng.NewSeeded(1))
	require.Len(t, out, 10)
	assert.Equal(t, 100.0, out[0].Open)
}

func TestAppendZeroCopies(t *testing.T) {
	base := Generate(5, testParams, rng.NewSeeded(1))
	out := Append(base, 0, testParams, rng.NewSeeded(2))
	require.Equal(t, base, out)
	out[0].Close = 1
	assert.NotEqual(t, base[0].Close, out[0].Close)
}
