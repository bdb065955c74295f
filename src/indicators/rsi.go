package indicators

import (
	"math"
)

// Rsi computes the relative strength index of period p using Wilder
// smoothing. The seed averages are the simple means of the first p
// gains/losses, making index p the first defined position. A zero average
// loss maps to an index value of exactly 100.
func Rsi(prices []float64, p int) []float64 {
	out := undefinedSeries(len(prices))
	if p <= 0 || len(prices) < p+1 {
		return out
	}
	avgGain, avgLoss := 0.0, 0.0
	for i := 1; i <= p; i++ {
		d := prices[i] - prices[i-1]
		avgGain += math.Max(0, d)
		avgLoss += math.Max(0, -d)
	}
	avgGain /= float64(p)
	avgLoss /= float64(p)
	out[p] = rsiValue(avgGain, avgLoss)
	for i := p + 1; i < len(prices); i++ {
		d := prices[i] - prices[i-1]
		avgGain = (avgGain*float64(p-1) + math.Max(0, d)) / float64(p)
		avgLoss = (avgLoss*float64(p-1) + math.Max(0, -d)) / float64(p)
		out[i] = rsiValue(avgGain, avgLoss)
	}
	return out
}

func rsiValue(avgGain, avgLoss float64) float64 {
	if avgLoss == 0 {
		return 100
	}
	rs := avgGain / avgLoss
	return 100 - 100/(1+rs)
}
