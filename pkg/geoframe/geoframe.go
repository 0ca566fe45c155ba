// Package geoframe converts WGS84 coordinates to Web Mercator and back, and
// maps them into the 0–100 relative space of a bounding rectangle.
package geoframe

import (
	"github.com/samirrijal/geoframe/internal/adapters/projection"
	"github.com/samirrijal/geoframe/internal/core/domain"
	"github.com/samirrijal/geoframe/internal/core/ports"
	"github.com/samirrijal/geoframe/internal/core/usecases"
)

type (
	GeoPoint      = domain.GeoPoint
	FlatPoint     = domain.FlatPoint
	RelativePoint = domain.RelativePoint
	Borders       = domain.Borders
	FrameMode     = domain.FrameMode
	FrameSnapshot = domain.FrameSnapshot
	ArgumentError = domain.ArgumentError

	GeoCorners  = domain.Corners[domain.GeoPoint]
	FlatCorners = domain.Corners[domain.FlatPoint]

	Converter = usecases.ProjectionService
	Mapper    = usecases.Mapper
)

const (
	Rotated     = domain.FrameRotated
	AxisAligned = domain.FrameAxisAligned
)

var (
	ErrInvalidArgument = domain.ErrInvalidArgument
	ErrUnsupported     = domain.ErrUnsupported
)

// DefaultCorners returns the rectangle NewMapper starts with.
func DefaultCorners() GeoCorners {
	return domain.DefaultCorners
}

// NewConverter returns a converter between WGS84 and spherical Web Mercator.
func NewConverter() *Converter {
	return usecases.NewProjectionService(projection.New(), ports.SystemGoogle)
}

// NewMapper returns a mapper in the given mode framed by DefaultCorners().
func NewMapper(mode FrameMode) (*Mapper, error) {
	return usecases.NewMapper(NewConverter(), mode)
}
