package editor

import (
	"chartlab-go/src/indicators"
	"chartlab-go/src/models"
	"chartlab-go/src/timeframe"
)

// EditSmaPoint drags the simple-average point at displayIndex (period p,
// display granularity g) to target. The change is solved algebraically
// and applied entirely to the close of the last base bar in the display
// group that defines the point; that bar's high/low are widened and the
// successor's open is repaired. Warm-up or out-of-range points are no-ops.
func (e *Engine) EditSmaPoint(base []models.Bar, g, p, displayIndex int, target float64) []models.Bar {
	if g < 1 {
		g = 1
	}
	if p < 1 {
		return base
	}
	display := timeframe.Aggregate(base, g)
	if displayIndex < p-1 || displayIndex >= len(display) {
		return base
	}
	windowSum := 0.0
	for i := displayIndex - p + 1; i <= displayIndex; i++ {
		windowSum += display[i].Close
	}
	delta := float64(p)*target - windowSum
	return e.applyCloseDelta(base, g, displayIndex, delta)
}

// EditEmaPoint drags the exponential-average point at displayIndex to
// target by inverting one smoothing step: with k=2/(p+1) and the previous
// EMA value, newClose = (target - (1-k)*prevEma)/k. The previous EMA must
// be defined; otherwise the edit is a no-op.
func (e *Engine) EditEmaPoint(base []models.Bar, g, p, displayIndex int, target float64) []models.Bar {
	if g < 1 {
		g = 1
	}
	if p < 1 {
		return base
	}
	display := timeframe.Aggregate(base, g)
	if displayIndex < 1 || displayIndex >= len(display) {
		return base
	}
	ema := indicators.Ema(models.Closes(display), p)
	prev := ema[displayIndex-1]
	if !models.Defined(prev) {
		return base
	}
	k := 2.0 / float64(p+1)
	newClose := (target - (1-k)*prev) / k
	delta := newClose - display[displayIndex].Close
	return e.applyCloseDelta(base, g, displayIndex, delta)
}

// applyCloseDelta shifts the close of the last base bar of a display
// group, restores its ordering invariant, and repairs continuity with the
// immediately following bar.
func (e *Engine) applyCloseDelta(base []models.Bar, g, displayIndex int, delta float64) []models.Bar {
	out := models.CloneBars(base)
	_, end := timeframe.BaseRange(displayIndex, g, len(out))
	out[end].Close += delta
	out[end].Widen()
	if end+1 < len(out) {
		out[end+1].Open = out[end].Close
		out[end+1].Widen()
	}
	return out
}
