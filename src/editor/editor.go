package editor

import (
	"math"

	"chartlab-go/src/models"
	"chartlab-go/src/rng"
	"chartlab-go/src/timeframe"
)

// Field names the editable component of an aggregate bar.
type Field int

const (
	FieldOpen Field = iota
	FieldHigh
	FieldLow
	FieldClose
)

// Engine propagates edits of aggregate bars and indicator points back
// onto the base sequence. The picker resolves randomized tie-breaks in
// the high/low solver; tests inject a fixed picker to pin outcomes.
type Engine struct {
	picker rng.Picker
}

// NewEngine creates an engine that breaks ties through the given picker.
func NewEngine(picker rng.Picker) *Engine {
	return &Engine{picker: picker}
}

// EditAggregateField rewrites the base sequence so that the aggregate bar
// at groupIndex (granularity g) carries target in the given field, as far
// as the per-bar ordering invariant allows. Open and close edits land
// exactly; high and low land exactly whenever target is feasible and are
// clamped to the group's body floor/ceiling otherwise. An out-of-range
// group returns the input unchanged.
func (e *Engine) EditAggregateField(base []models.Bar, g, groupIndex int, field Field, target float64) []models.Bar {
	if g < 1 {
		g = 1
	}
	groups := len(base) / g
	if groupIndex < 0 || groupIndex >= groups {
		return base
	}
	out := models.CloneBars(base)
	start, end := timeframe.BaseRange(groupIndex, g, len(out))

	switch field {
	case FieldOpen:
		out[start].Open = target
		out[start].Widen()
		if start > 0 {
			out[start-1].Close = out[start].Open
			out[start-1].Widen()
		}
	case FieldClose:
		out[end].Close = target
		out[end].Widen()
		if end+1 < len(out) {
			out[end+1].Open = out[end].Close
			out[end+1].Widen()
		}
	case FieldHigh:
		e.editHigh(out, start, end, target)
	case FieldLow:
		e.editLow(out, start, end, target)
	}
	return out
}

// editHigh moves the group's aggregate high toward target. No bar's high
// may drop below its own body, so target is first clamped to the group's
// body ceiling.
func (e *Engine) editHigh(bars []models.Bar, start, end int, target float64) {
	floor := math.Inf(-1)
	aggHigh := math.Inf(-1)
	for i := start; i <= end; i++ {
		floor = math.Max(floor, bars[i].BodyMax())
		aggHigh = math.Max(aggHigh, bars[i].High)
	}
	if target < floor {
		target = floor
	}

	if target >= aggHigh {
		// Raising: stretch one of the bars currently at the maximum.
		cands := make([]int, 0, end-start+1)
		for i := start; i <= end; i++ {
			if bars[i].High == aggHigh {
				cands = append(cands, i)
			}
		}
		if len(cands) == 0 {
			for i := start; i <= end; i++ {
				cands = append(cands, i)
			}
		}
		pick := cands[e.picker(len(cands))]
		bars[pick].High = math.Max(target, bars[pick].BodyMax())
		return
	}

	// Lowering: clamp every high down to target, bounded by each body,
	// then force one eligible bar to land exactly on target.
	cands := make([]int, 0, end-start+1)
	for i := start; i <= end; i++ {
		bars[i].High = math.Max(bars[i].BodyMax(), math.Min(bars[i].High, target))
		if bars[i].BodyMax() <= target {
			cands = append(cands, i)
		}
	}
	if len(cands) > 0 {
		pick := cands[e.picker(len(cands))]
		bars[pick].High = target
	}
}

// editLow mirrors editHigh with the min/ceiling logic inverted.
func (e *Engine) editLow(bars []models.Bar, start, end int, target float64) {
	ceiling := math.Inf(1)
	aggLow := math.Inf(1)
	for i := start; i <= end; i++ {
		ceiling = math.Min(ceiling, bars[i].BodyMin())
		aggLow = math.Min(aggLow, bars[i].Low)
	}
	if target > ceiling {
		target = ceiling
	}

	if target <= aggLow {
		cands := make([]int, 0, end-start+1)
		for i := start; i <= end; i++ {
			if bars[i].Low == aggLow {
				cands = append(cands, i)
			}
		}
		if len(cands) == 0 {
			for i := start; i <= end; i++ {
				cands = append(cands, i)
			}
		}
		pick := cands[e.picker(len(cands))]
		bars[pick].Low = math.Min(target, bars[pick].BodyMin())
		return
	}

	cands := make([]int, 0, end-start+1)
	for i := start; i <= end; i++ {
		bars[i].Low = math.Min(bars[i].BodyMin(), math.Max(bars[i].Low, target))
		if bars[i].BodyMin() >= target {
			cands = append(cands, i)
		}
	}
	if len(cands) > 0 {
		pick := cands[e.picker(len(cands))]
		bars[pick].Low = target
	}
}
