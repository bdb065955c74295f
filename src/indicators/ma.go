package indicators

import (
	"chartlab-go/src/models"
)

// Sma computes the simple moving average of period p.
// Output has the same length as prices; positions before index p-1 are
// undefined, and a non-positive period yields an entirely undefined series.
func Sma(prices []float64, p int) []float64 {
	out := undefinedSeries(len(prices))
	if p <= 0 || len(prices) < p {
		return out
	}
	sum := 0.0
	for i, v := range prices {
		sum += v
		if i >= p {
			sum -= prices[i-p]
		}
		if i >= p-1 {
			out[i] = sum / float64(p)
		}
	}
	return out
}

// Ema computes the exponential moving average of period p with smoothing
// constant k = 2/(p+1). The series is seeded at index p-1 with the simple
// average of the first p values rather than the raw first price.
func Ema(prices []float64, p int) []float64 {
	out := undefinedSeries(len(prices))
	if p <= 0 || len(prices) < p {
		return out
	}
	sum := 0.0
	for i := 0; i < p; i++ {
		sum += prices[i]
	}
	k := 2.0 / float64(p+1)
	prev := sum / float64(p)
	out[p-1] = prev
	for i := p; i < len(prices); i++ {
		prev = prices[i]*k + prev*(1-k)
		out[i] = prev
	}
	return out
}

func undefinedSeries(n int) []float64 {
	out := make([]float64, n)
	for i := range out {
		out[i] = models.Undefined()
	}
	return out
}
