package indicators

import (
	"chartlab-go/src/models"
)

// Snapshot holds the indicator values attached to one display bar.
// Undefined positions carry NaN, same as the underlying series.
type Snapshot struct {
	SMA           float64
	EMA           float64
	RSI           float64
	MACD          float64
	MACDSignal    float64
	MACDHistogram float64
}

// Calculator bundles the indicator configuration used by the chart and
// computes per-bar snapshots from a display-resolution sequence.
type Calculator struct {
	SMAPeriod  int
	EMAPeriod  int
	RSIPeriod  int
	MACDFast   int
	MACDSlow   int
	MACDSignal int
}

// NewCalculator creates a calculator with the conventional default periods.
func NewCalculator() *Calculator {
	return &Calculator{
		SMAPeriod:  10,
		EMAPeriod:  20,
		RSIPeriod:  14,
		MACDFast:   12,
		MACDSlow:   26,
		MACDSignal: 9,
	}
}

// CalculateAll computes every configured indicator over the closes of the
// given bars and returns one snapshot per bar.
func (c *Calculator) CalculateAll(bars []models.Bar) []Snapshot {
	closes := models.Closes(bars)
	sma := Sma(closes, c.SMAPeriod)
	ema := Ema(closes, c.EMAPeriod)
	rsi := Rsi(closes, c.RSIPeriod)
	macd, signal, histogram := Macd(closes, c.MACDFast, c.MACDSlow, c.MACDSignal)

	out := make([]Snapshot, len(bars))
	for i := range bars {
		out[i] = Snapshot{
			SMA:           sma[i],
			EMA:           ema[i],
			RSI:           rsi[i],
			MACD:          macd[i],
			MACDSignal:    signal[i],
			MACDHistogram: histogram[i],
		}
	}
	return out
}

// TrendDirection classifies a bar's snapshot as bullish, bearish or
// neutral from the close/EMA relation and the histogram sign.
func TrendDirection(bar models.Bar, s Snapshot) models.TrendDirection {
	if !models.Defined(s.EMA) || !models.Defined(s.MACDHistogram) {
		return models.TrendNeutral
	}
	if bar.Close > s.EMA && s.MACDHistogram > 0 {
		return models.TrendBullish
	}
	if bar.Close < s.EMA && s.MACDHistogram < 0 {
		return models.TrendBearish
	}
	return models.TrendNeutral
}
