package indicators

// Kind identifies an indicator family.
type Kind int

const (
	KindSMA Kind = iota
	KindEMA
	KindRSI
	KindMACD
)

// Params carries the configuration for a single indicator series.
// Period drives SMA/EMA/RSI; the MACD triple uses Fast/Slow/Signal.
type Params struct {
	Period int
	Fast   int
	Slow   int
	Signal int
}

// Compute dispatches to the indicator implementation for kind.
// For KindMACD it returns the trend line; use Macd directly when the
// signal line and histogram are needed as well.
func Compute(kind Kind, params Params, prices []float64) []float64 {
	switch kind {
	case KindSMA:
		return Sma(prices, params.Period)
	case KindEMA:
		return Ema(prices, params.Period)
	case KindRSI:
		return Rsi(prices, params.Period)
	case KindMACD:
		macd, _, _ := Macd(prices, params.Fast, params.Slow, params.Signal)
		return macd
	default:
		return undefinedSeries(len(prices))
	}
}
