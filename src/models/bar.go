package models

import (
	"math"
)

// Bar represents a single OHLC bar at some resolution.
// Invariant: Low <= min(Open, Close) <= max(Open, Close) <= High.
type Bar struct {
	Index int     // position in its sequence, 0-based
	Open  float64 // opening price
	High  float64 // highest traded price
	Low   float64 // lowest traded price
	Close float64 // closing price
}

// BodyMax returns the higher of open and close.
func (b Bar) BodyMax() float64 {
	return math.Max(b.Open, b.Close)
}

// BodyMin returns the lower of open and close.
func (b Bar) BodyMin() float64 {
	return math.Min(b.Open, b.Close)
}

// Valid reports whether the bar satisfies the OHLC ordering invariant.
func (b Bar) Valid() bool {
	return b.Low <= b.BodyMin() && b.BodyMax() <= b.High
}

// Widen stretches High and Low just enough to cover the body,
// restoring the ordering invariant after an open or close write.
func (b *Bar) Widen() {
	if hi := b.BodyMax(); b.High < hi {
		b.High = hi
	}
	if lo := b.BodyMin(); b.Low > lo {
		b.Low = lo
	}
}

// CloneBars returns a deep copy of a bar sequence.
// Edits and undo snapshots always work on copies, never in place.
func CloneBars(bars []Bar) []Bar {
	out := make([]Bar, len(bars))
	copy(out, bars)
	return out
}

// Closes extracts the close prices of a sequence.
func Closes(bars []Bar) []float64 {
	out := make([]float64, len(bars))
	for i, b := range bars {
		out[i] = b.Close
	}
	return out
}

// Undefined marks positions of a derived series that have no value yet
// (the indicator warm-up region).
func Undefined() float64 {
	return math.NaN()
}

// Defined reports whether a series value carries an actual number.
func Defined(v float64) bool {
	return !math.IsNaN(v)
}

// RoundPrice rounds a price to the fixed display precision (2 decimals).
func RoundPrice(v float64) float64 {
	return math.Round(v*100) / 100
}

// TrendDirection represents the market trend direction.
type TrendDirection int

const (
	TrendNeutral TrendDirection = iota
	TrendBullish
	TrendBearish
)

// String returns a short label for status displays.
func (d TrendDirection) String() string {
	switch d {
	case TrendBullish:
		return "bullish"
	case TrendBearish:
		return "bearish"
	default:
		return "neutral"
	}
}
