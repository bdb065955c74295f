package timeframe

import (
	"chartlab-go/src/viewport"
)

// Rescale recomputes a viewport after a granularity change so the visible
// time span stays as close as integer bar counts allow. oldG and newG are
// the bars-per-group of the old and new granularity; newLen is the length
// of the new display sequence. Out-of-range results are clamped, never an
// error.
func Rescale(vp viewport.Viewport, oldG, newG, newLen int) viewport.Viewport {
	if oldG < 1 {
		oldG = 1
	}
	if newG < 1 {
		newG = 1
	}
	ratio := float64(oldG) / float64(newG)
	vp.Start *= ratio
	count := int(float64(vp.Count)*ratio + 0.5)
	if count < viewport.MinCount {
		count = viewport.MinCount
	}
	vp.Count = count
	return vp.Clamp(newLen)
}
