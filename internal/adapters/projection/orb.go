// Package projection implements ports.Projector on top of paulmach/orb.
package projection

import (
	"fmt"
	"strings"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/project"

	"github.com/samirrijal/geoframe/internal/core/domain"
	"github.com/samirrijal/geoframe/internal/core/ports"
)

type system int

const (
	geographic system = iota + 1
	webMercator
)

// aliases maps accepted system names to the system they denote.
var aliases = map[string]system{
	ports.SystemWGS84:  geographic,
	"EPSG:4326":        geographic,
	ports.SystemGoogle: webMercator,
	"EPSG:3857":        webMercator,
	"EPSG:900913":      webMercator,
	"EPSG:102113":      webMercator,
}

// Orb projects between WGS84 and spherical Web Mercator.
type Orb struct{}

// New returns an orb-backed projector.
func New() *Orb {
	return &Orb{}
}

// Known reports whether name is a supported system.
func Known(name string) bool {
	_, ok := aliases[strings.ToUpper(name)]
	return ok
}

// Project converts p from one named system to another.
func (o *Orb) Project(from, to string, p orb.Point) (orb.Point, error) {
	src, err := lookup(from)
	if err != nil {
		return orb.Point{}, err
	}
	dst, err := lookup(to)
	if err != nil {
		return orb.Point{}, err
	}

	switch {
	case src == dst:
		return p, nil
	case src == geographic && dst == webMercator:
		return project.Point(p, project.WGS84.ToMercator), nil
	default:
		return project.Point(p, project.Mercator.ToWGS84), nil
	}
}

func lookup(name string) (system, error) {
	s, ok := aliases[strings.ToUpper(name)]
	if !ok {
		return 0, &domain.ArgumentError{
			Field:  "system",
			Reason: fmt.Sprintf("unknown coordinate system %q", name),
		}
	}
	return s, nil
}
