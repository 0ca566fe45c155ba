package ports

import "github.com/paulmach/orb"

// Well-known coordinate system names.
const (
	SystemWGS84  = "WGS84"
	SystemGoogle = "GOOGLE"
)

// Projector converts points between named coordinate systems.
// Geographic points are passed as [longitude, latitude].
type Projector interface {
	Project(from, to string, p orb.Point) (orb.Point, error)
}
