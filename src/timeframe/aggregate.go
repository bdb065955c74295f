package timeframe

import (
	"math"

	"chartlab-go/src/models"
)

// Aggregate collapses a base sequence into fixed-size groups of g bars.
// Each aggregate bar opens at its group's first open, closes at the last
// close, and spans the group's extreme high/low. A trailing group with
// fewer than g bars is dropped. g <= 1 is the identity.
func Aggregate(base []models.Bar, g int) []models.Bar {
	if g <= 1 {
		out := models.CloneBars(base)
		for i := range out {
			out[i].Index = i
		}
		return out
	}
	groups := len(base) / g
	out := make([]models.Bar, 0, groups)
	for gi := 0; gi < groups; gi++ {
		start, end := BaseRange(gi, g, len(base))
		agg := models.Bar{
			Index: gi,
			Open:  base[start].Open,
			High:  base[start].High,
			Low:   base[start].Low,
			Close: base[end].Close,
		}
		for i := start + 1; i <= end; i++ {
			agg.High = math.Max(agg.High, base[i].High)
			agg.Low = math.Min(agg.Low, base[i].Low)
		}
		out = append(out, agg)
	}
	return out
}

// BaseRange maps a coarse index to the inclusive base-index range it
// covers, clipped to the sequence length n.
func BaseRange(gi, g, n int) (start, end int) {
	if g < 1 {
		g = 1
	}
	start = gi * g
	end = start + g - 1
	if end > n-1 {
		end = n - 1
	}
	return start, end
}

// CoarseIndex maps a base index to its containing coarse index.
func CoarseIndex(baseIndex, g int) int {
	if g < 1 {
		g = 1
	}
	return baseIndex / g
}
