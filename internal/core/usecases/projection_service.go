package usecases

import (
	"fmt"
	"math"

	"github.com/paulmach/orb"

	"github.com/samirrijal/geoframe/internal/core/domain"
	"github.com/samirrijal/geoframe/internal/core/ports"
)

// Planar coordinates accepted by ToWGS lie in [0, flatUpperBound).
const flatUpperBound = 1e7

// ProjectionService validates points and converts them between WGS84 and
// the configured planar system.
type ProjectionService struct {
	projector ports.Projector
	planar    string
}

// NewProjectionService creates a new ProjectionService projecting to planarSystem.
func NewProjectionService(projector ports.Projector, planarSystem string) *ProjectionService {
	if planarSystem == "" {
		planarSystem = ports.SystemGoogle
	}
	return &ProjectionService{projector: projector, planar: planarSystem}
}

// PlanarSystem returns the name of the planar reference system.
func (s *ProjectionService) PlanarSystem() string {
	return s.planar
}

// ToWGS converts a planar point to geographic coordinates.
func (s *ProjectionService) ToWGS(p domain.FlatPoint) (domain.GeoPoint, error) {
	// Infinities are numbers; the bound checks reject them per field.
	if math.IsNaN(p.X) || math.IsNaN(p.Y) {
		return domain.GeoPoint{}, domain.ErrMalformedCoordinates()
	}
	if p.X < 0 || p.X >= flatUpperBound {
		return domain.GeoPoint{}, domain.ErrOutOfBounds("x")
	}
	if p.Y < 0 || p.Y >= flatUpperBound {
		return domain.GeoPoint{}, domain.ErrOutOfBounds("y")
	}

	out, err := s.projector.Project(s.planar, ports.SystemWGS84, orb.Point{p.X, p.Y})
	if err != nil {
		return domain.GeoPoint{}, fmt.Errorf("project %s to %s: %w", s.planar, ports.SystemWGS84, err)
	}
	return domain.GeoPoint{Longitude: out[0], Latitude: out[1]}, nil
}

// ToFlat converts a geographic point to planar coordinates.
// Latitude is accepted in [-360, 360].
func (s *ProjectionService) ToFlat(p domain.GeoPoint) (domain.FlatPoint, error) {
	if math.IsNaN(p.Longitude) || math.IsNaN(p.Latitude) {
		return domain.FlatPoint{}, domain.ErrMalformedCoordinates()
	}
	if p.Longitude < -180 || p.Longitude > 180 {
		return domain.FlatPoint{}, domain.ErrOutOfBounds("longitude")
	}
	if p.Latitude < -360 || p.Latitude > 360 {
		return domain.FlatPoint{}, domain.ErrOutOfBounds("latitude")
	}

	out, err := s.projector.Project(ports.SystemWGS84, s.planar, orb.Point{p.Longitude, p.Latitude})
	if err != nil {
		return domain.FlatPoint{}, fmt.Errorf("project %s to %s: %w", ports.SystemWGS84, s.planar, err)
	}
	return domain.FlatPoint{X: out[0], Y: out[1]}, nil
}
