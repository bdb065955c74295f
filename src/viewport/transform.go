package viewport

// Transform converts between data coordinates (bar index, price) and
// pixel coordinates for a drawable area. It is consumed by the rendering
// layer in both directions and holds no state of its own.
type Transform struct {
	View     Viewport
	Width    float64 // drawable width in pixels (or cells)
	Height   float64 // drawable height in pixels (or cells)
	PriceMin float64
	PriceMax float64
}

// BarWidth returns the horizontal space of one bar.
func (t Transform) BarWidth() float64 {
	if t.View.Count <= 0 {
		return 0
	}
	return t.Width / float64(t.View.Count)
}

// IndexToX maps a bar index to the x coordinate of the bar's center.
func (t Transform) IndexToX(index int) float64 {
	bw := t.BarWidth()
	return (float64(index)-t.View.Start)*bw + bw/2
}

// XToIndex maps an x coordinate back to a bar index. The result may be
// outside the sequence; callers bound-check against their data.
func (t Transform) XToIndex(x float64) int {
	bw := t.BarWidth()
	if bw <= 0 {
		return int(t.View.Start)
	}
	idx := t.View.Start + x/bw
	if idx < 0 {
		idx -= 1 // floor toward negative infinity
	}
	return int(idx)
}

// PriceToY maps a price to a y coordinate, y growing downward.
// A degenerate price range maps everything to the vertical middle.
func (t Transform) PriceToY(price float64) float64 {
	span := t.PriceMax - t.PriceMin
	if span <= 0 {
		return t.Height / 2
	}
	return t.Height * (t.PriceMax - price) / span
}

// YToPrice maps a y coordinate back to a price.
func (t Transform) YToPrice(y float64) float64 {
	span := t.PriceMax - t.PriceMin
	if span <= 0 || t.Height <= 0 {
		return t.PriceMin
	}
	return t.PriceMax - y*span/t.Height
}
