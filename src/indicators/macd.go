package indicators

import (
	"chartlab-go/src/models"
)

// Macd computes the trend/signal/histogram triple from two exponential
// averages (fast, slow) and a signal period.
//
// The signal line is the EMA of the trend line with undefined trend
// positions substituted by zero before smoothing, then re-masked to
// undefined wherever the trend itself is undefined. The zero substitution
// primes the smoothing state through the warm-up region; it is preserved
// deliberately for parity with the reference behavior.
func Macd(prices []float64, fast, slow, signalPeriod int) (macd, signal, histogram []float64) {
	n := len(prices)
	emaFast := Ema(prices, fast)
	emaSlow := Ema(prices, slow)

	macd = undefinedSeries(n)
	for i := 0; i < n; i++ {
		if models.Defined(emaFast[i]) && models.Defined(emaSlow[i]) {
			macd[i] = emaFast[i] - emaSlow[i]
		}
	}

	zeroFilled := make([]float64, n)
	for i, v := range macd {
		if models.Defined(v) {
			zeroFilled[i] = v
		}
	}
	signal = Ema(zeroFilled, signalPeriod)
	for i := range signal {
		if !models.Defined(macd[i]) {
			signal[i] = models.Undefined()
		}
	}

	histogram = undefinedSeries(n)
	for i := 0; i < n; i++ {
		if models.Defined(macd[i]) && models.Defined(signal[i]) {
			histogram[i] = macd[i] - signal[i]
		}
	}
	return macd, signal, histogram
}
