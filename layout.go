package captcha

import "sort"

// Coordinate is the pixel position of one challenge glyph. The ordered
// coordinate sequence doubles as the trace line polyline, so the stroke
// always threads through the text.
type Coordinate struct {
	X, Y float64
}

// yMargin keeps glyph baselines away from the canvas edges.
const yMargin = 30

// layoutCoordinates places n glyphs on a w×h canvas: evenly sized horizontal
// slots with the glyph set 20% into its slot, and a random y per glyph in
// [yMargin, h-yMargin). Canvases of height 2*yMargin or less leave no room to
// jitter, so y is pinned to the vertical center there.
//
// The result is sorted by x. Slot placement already produces ascending x, but
// the sort guarantees a left-to-right trace path even if x randomization is
// introduced later.
func layoutCoordinates(src Source, n, w, h int) []Coordinate {
	if n <= 0 {
		return nil
	}
	slot := float64(w / n)
	coords := make([]Coordinate, n)
	for i := range coords {
		coords[i].X = slot * (float64(i) + 0.2)
		if h > 2*yMargin {
			coords[i].Y = float64(src.IntN(h-2*yMargin) + yMargin)
		} else {
			coords[i].Y = float64(h) / 2
		}
	}
	sort.Slice(coords, func(i, j int) bool { return coords[i].X < coords[j].X })
	return coords
}
