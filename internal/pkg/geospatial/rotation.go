package geospatial

import "math"

// Rotation is a 2D rotation stored as its sine and cosine.
type Rotation struct {
	Sin float64
	Cos float64
}

// Identity leaves points unchanged.
var Identity = Rotation{Sin: 0, Cos: 1}

// AlignVertical returns the rotation that maps the edge vector (dx, dy) onto
// the vertical axis. dy is measured downwards (top.y - bottom.y).
// A zero-length edge yields NaN components.
func AlignVertical(dx, dy float64) Rotation {
	length := math.Sqrt(dx*dx + dy*dy)
	return Rotation{Sin: -dx / length, Cos: dy / length}
}

// Apply rotates (x, y).
func (r Rotation) Apply(x, y float64) (float64, float64) {
	return x*r.Cos - y*r.Sin, x*r.Sin + y*r.Cos
}

// Invert undoes Apply.
func (r Rotation) Invert(x, y float64) (float64, float64) {
	return x*r.Cos + y*r.Sin, -x*r.Sin + y*r.Cos
}

// Finite reports whether both components are usable numbers.
func (r Rotation) Finite() bool {
	return isFinite(r.Sin) && isFinite(r.Cos)
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
