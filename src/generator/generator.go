package generator

import (
	"math"

	"chartlab-go/src/models"
	"chartlab-go/src/rng"
)

// Params configures the synthetic bar generator.
type Params struct {
	StartPrice float64 // open of the first bar
	Drift      float64 // annualized-style drift mu, per bar
	Volatility float64 // sigma, per bar
	Substeps   int     // intra-bar random-walk steps, >= 1
}

// Generate produces n bars of a geometric log-price random walk.
// Each bar opens at the previous bar's close, so the sequence is
// continuous by construction. Prices are rounded to 2 decimals.
func Generate(n int, p Params, src rng.Source) []models.Bar {
	if n <= 0 {
		return []models.Bar{}
	}
	bars := make([]models.Bar, 0, n)
	open := models.RoundPrice(p.StartPrice)
	for i := 0; i < n; i++ {
		bar := synthesize(i, open, p, src)
		bars = append(bars, bar)
		open = bar.Close
	}
	return bars
}

// Append continues an existing sequence with n fresh bars, opening at
// the last close. The input slice is not modified.
func Append(base []models.Bar, n int, p Params, src rng.Source) []models.Bar {
	if n <= 0 {
		return models.CloneBars(base)
	}
	if len(base) == 0 {
		return Generate(n, p, src)
	}
	out := models.CloneBars(base)
	open := out[len(out)-1].Close
	for i := 0; i < n; i++ {
		bar := synthesize(len(out), open, p, src)
		out = append(out, bar)
		open = bar.Close
	}
	return out
}

// synthesize walks one bar: substeps equal sub-intervals of the log-price
// walk, tracking the path extrema so high/low tighten as substeps grows.
func synthesize(index int, open float64, p Params, src rng.Source) models.Bar {
	k := p.Substeps
	if k < 1 {
		k = 1
	}
	dt := 1.0 / float64(k)
	price := open
	high := open
	low := open
	for s := 0; s < k; s++ {
		z := normal(src)
		price *= math.Exp((p.Drift-p.Volatility*p.Volatility/2)*dt + p.Volatility*math.Sqrt(dt)*z)
		high = math.Max(high, price)
		low = math.Min(low, price)
	}
	bar := models.Bar{
		Index: index,
		Open:  open,
		High:  models.RoundPrice(high),
		Low:   models.RoundPrice(low),
		Close: models.RoundPrice(price),
	}
	bar.Widen()
	return bar
}

// normal draws one standard-normal deviate from two uniforms
// via the Box-Muller transform.
func normal(src rng.Source) float64 {
	// 1-u keeps the argument of Log strictly positive.
	u1 := 1 - src.Float64()
	u2 := src.Float64()
	return math.Sqrt(-2*math.Log(u1)) * math.Cos(2*math.Pi*u2)
}
