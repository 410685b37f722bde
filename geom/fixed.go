package geom

import (
	"math"

	"golang.org/x/image/math/fixed"
)

// Conversions to and from the golang.org/x/image/math/fixed 26.6 types used
// by font rasterizers. Coordinates are rounded to the nearest 1/64 with
// ties away from zero; values beyond the Int26_6 range overflow silently.

// Fixed returns the point in 26.6 fixed-point form.
func (p Point) Fixed() fixed.Point26_6 {
	return fixed.Point26_6{
		X: fixed.Int26_6(math.Round(p.X * 64)),
		Y: fixed.Int26_6(math.Round(p.Y * 64)),
	}
}

// PointFromFixed converts a 26.6 fixed-point point.
func PointFromFixed(fp fixed.Point26_6) Point {
	return Point{
		X: float64(fp.X) / 64,
		Y: float64(fp.Y) / 64,
	}
}

// Fixed returns the rectangle in 26.6 fixed-point form.
func (r Rect) Fixed() fixed.Rectangle26_6 {
	return fixed.Rectangle26_6{
		Min: r.Min.Fixed(),
		Max: r.Max.Fixed(),
	}
}

// RectFromFixed converts a 26.6 fixed-point rectangle.
func RectFromFixed(fr fixed.Rectangle26_6) Rect {
	return Rect{
		Min: PointFromFixed(fr.Min),
		Max: PointFromFixed(fr.Max),
	}
}
