package viewport

// MinCount is the smallest number of bars a viewport may show.
const MinCount = 5

// Zoom factors are kept inside a bounded range so repeated zooming can
// never collapse or explode the window.
const (
	MinZoom = 0.2
	MaxZoom = 5.0
)

// Viewport windows a display-resolution sequence. Start is a fractional
// bar offset so horizontal pans can be smooth; Count is the number of
// visible bars.
type Viewport struct {
	Start float64
	Count int
}

// Clamp constrains the viewport to a sequence of seqLen bars: Count is
// at least MinCount, Start is non-negative, and Start+Count fits inside
// the sequence whenever the sequence is long enough.
func (v Viewport) Clamp(seqLen int) Viewport {
	if v.Count < MinCount {
		v.Count = MinCount
	}
	if v.Count > seqLen && seqLen >= MinCount {
		v.Count = seqLen
	}
	maxStart := float64(seqLen - v.Count)
	if v.Start > maxStart {
		v.Start = maxStart
	}
	if v.Start < 0 {
		v.Start = 0
	}
	return v
}

// Zoom scales the visible bar count by factor (bounded), keeping the
// window's center fixed, then re-clamps against the sequence.
func (v Viewport) Zoom(factor float64, seqLen int) Viewport {
	if factor < MinZoom {
		factor = MinZoom
	}
	if factor > MaxZoom {
		factor = MaxZoom
	}
	center := v.Start + float64(v.Count)/2
	count := int(float64(v.Count)*factor + 0.5)
	if count < MinCount {
		count = MinCount
	}
	v.Count = count
	v.Start = center - float64(count)/2
	return v.Clamp(seqLen)
}

// Pan shifts the window by delta bars and re-clamps.
func (v Viewport) Pan(delta float64, seqLen int) Viewport {
	v.Start += delta
	return v.Clamp(seqLen)
}
