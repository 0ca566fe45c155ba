package domain

import "math"

// GeoPoint represents a geographic coordinate (WGS 84).
type GeoPoint struct {
	Longitude float64 `json:"longitude"`
	Latitude  float64 `json:"latitude"`
}

// FlatPoint represents a coordinate in the planar projected system.
type FlatPoint struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// RelativePoint is a position inside the bounding frame, in percent.
// Values outside [0,100] mean the point lies outside the frame; they are never clamped.
type RelativePoint struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Corners holds the reference corners of a bounding frame:
// top-left, bottom-left and bottom-right.
type Corners[T any] struct {
	LT T `json:"lt"`
	LB T `json:"lb"`
	RB T `json:"rb"`
}

// Borders configures an axis-aligned frame. Only Flat.LT and Flat.RB
// are used for normalization; WGS is kept for reference.
type Borders struct {
	WGS  Corners[GeoPoint]  `json:"wgs"`
	Flat Corners[FlatPoint] `json:"flat"`
}

// FrameMode selects how the bounding frame normalizes planar points.
type FrameMode string

const (
	// FrameRotated aligns the lt→lb edge to the vertical axis before normalizing.
	FrameRotated FrameMode = "rotated"
	// FrameAxisAligned treats the planar rectangle as already axis-aligned.
	FrameAxisAligned FrameMode = "axis_aligned"
)

// Valid reports whether m is a known frame mode.
func (m FrameMode) Valid() bool {
	return m == FrameRotated || m == FrameAxisAligned
}

// FrameSnapshot describes the active bounding frame.
type FrameSnapshot struct {
	Mode             FrameMode           `json:"mode"`
	SupportsRotation bool                `json:"supports_rotation"`
	WGS              *Corners[GeoPoint]  `json:"wgs,omitempty"`
	Flat             Corners[FlatPoint]  `json:"flat"`
	Rotated          *Corners[FlatPoint] `json:"rotated,omitempty"`
	Sin              float64             `json:"sin"`
	Cos              float64             `json:"cos"`
	Delta            FlatPoint           `json:"delta"`
}

// Degenerate reports whether the frame cannot produce finite relative coordinates,
// e.g. when lt and lb coincide.
func (s FrameSnapshot) Degenerate() bool {
	return !nonZeroFinite(s.Delta.X) || !nonZeroFinite(s.Delta.Y) || math.IsNaN(s.Sin) || math.IsNaN(s.Cos)
}

// Finite reports whether both components are finite numbers.
func (p RelativePoint) Finite() bool {
	return finite(p.X) && finite(p.Y)
}

// Finite reports whether both components are finite numbers.
func (p FlatPoint) Finite() bool {
	return finite(p.X) && finite(p.Y)
}

// Finite reports whether both components are finite numbers.
func (p GeoPoint) Finite() bool {
	return finite(p.Longitude) && finite(p.Latitude)
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

func nonZeroFinite(v float64) bool {
	return finite(v) && v != 0
}

// DefaultCorners is the built-in geographic rectangle used when no borders are configured.
var DefaultCorners = Corners[GeoPoint]{
	LT: GeoPoint{Longitude: 73.119817, Latitude: 55.098425},
	LB: GeoPoint{Longitude: 73.171238, Latitude: 55.033588},
	RB: GeoPoint{Longitude: 73.294963, Latitude: 55.065022},
}
