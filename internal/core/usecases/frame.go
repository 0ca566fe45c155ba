package usecases

import (
	"fmt"

	"github.com/samirrijal/geoframe/internal/core/domain"
	"github.com/samirrijal/geoframe/internal/pkg/geospatial"
)

// Frame normalizes planar points into the 0–100 relative space of a bounding rectangle.
// Implementations are immutable once built.
type Frame interface {
	Mode() domain.FrameMode
	SupportsRotation() bool
	Relative(p domain.FlatPoint) domain.RelativePoint
	Absolute(r domain.RelativePoint) domain.FlatPoint
	Snapshot() domain.FrameSnapshot
}

// rotatedFrame aligns the lt→lb edge with the vertical axis before normalizing.
type rotatedFrame struct {
	wgs     domain.Corners[domain.GeoPoint]
	flat    domain.Corners[domain.FlatPoint]
	rotated domain.Corners[domain.FlatPoint]
	rot     geospatial.Rotation
	delta   domain.FlatPoint
}

func newRotatedFrame(proj *ProjectionService, wgs domain.Corners[domain.GeoPoint]) (*rotatedFrame, error) {
	lt, err := proj.ToFlat(wgs.LT)
	if err != nil {
		return nil, fmt.Errorf("corner lt: %w", err)
	}
	lb, err := proj.ToFlat(wgs.LB)
	if err != nil {
		return nil, fmt.Errorf("corner lb: %w", err)
	}
	rb, err := proj.ToFlat(wgs.RB)
	if err != nil {
		return nil, fmt.Errorf("corner rb: %w", err)
	}

	f := &rotatedFrame{
		wgs:  wgs,
		flat: domain.Corners[domain.FlatPoint]{LT: lt, LB: lb, RB: rb},
		rot:  geospatial.AlignVertical(lb.X-lt.X, lt.Y-lb.Y),
	}
	f.rotated = domain.Corners[domain.FlatPoint]{
		LT: f.rotate(lt),
		LB: f.rotate(lb),
		RB: f.rotate(rb),
	}
	f.delta = domain.FlatPoint{
		X: f.rotated.RB.X - f.rotated.LT.X,
		Y: f.rotated.LT.Y - f.rotated.RB.Y,
	}
	return f, nil
}

func (f *rotatedFrame) rotate(p domain.FlatPoint) domain.FlatPoint {
	x, y := f.rot.Apply(p.X, p.Y)
	return domain.FlatPoint{X: x, Y: y}
}

func (f *rotatedFrame) Mode() domain.FrameMode { return domain.FrameRotated }
func (f *rotatedFrame) SupportsRotation() bool { return true }

func (f *rotatedFrame) Relative(p domain.FlatPoint) domain.RelativePoint {
	r := f.rotate(p)
	return domain.RelativePoint{
		X: (r.X - f.rotated.LT.X) / f.delta.X * 100,
		Y: (r.Y - f.rotated.RB.Y) / f.delta.Y * 100,
	}
}

func (f *rotatedFrame) Absolute(r domain.RelativePoint) domain.FlatPoint {
	xr := r.X/100*f.delta.X + f.rotated.LT.X
	yr := r.Y/100*f.delta.Y + f.rotated.RB.Y
	x, y := f.rot.Invert(xr, yr)
	return domain.FlatPoint{X: x, Y: y}
}

func (f *rotatedFrame) Snapshot() domain.FrameSnapshot {
	wgs := f.wgs
	rotated := f.rotated
	return domain.FrameSnapshot{
		Mode:             domain.FrameRotated,
		SupportsRotation: true,
		WGS:              &wgs,
		Flat:             f.flat,
		Rotated:          &rotated,
		Sin:              f.rot.Sin,
		Cos:              f.rot.Cos,
		Delta:            f.delta,
	}
}

// axisFrame assumes the planar rectangle is already axis-aligned.
type axisFrame struct {
	lt domain.FlatPoint
	rb domain.FlatPoint
}

func newAxisFrame(lt, rb domain.FlatPoint) *axisFrame {
	return &axisFrame{lt: lt, rb: rb}
}

func (f *axisFrame) delta() domain.FlatPoint {
	return domain.FlatPoint{X: f.rb.X - f.lt.X, Y: f.lt.Y - f.rb.Y}
}

func (f *axisFrame) Mode() domain.FrameMode { return domain.FrameAxisAligned }
func (f *axisFrame) SupportsRotation() bool { return false }

func (f *axisFrame) Relative(p domain.FlatPoint) domain.RelativePoint {
	d := f.delta()
	return domain.RelativePoint{
		X: (p.X - f.lt.X) / d.X * 100,
		Y: (p.Y - f.rb.Y) / d.Y * 100,
	}
}

func (f *axisFrame) Absolute(r domain.RelativePoint) domain.FlatPoint {
	d := f.delta()
	return domain.FlatPoint{
		X: f.lt.X + r.X/100*d.X,
		Y: f.rb.Y + r.Y/100*d.Y,
	}
}

// Snapshot reports lb as the implied bottom-left corner (lt.x, rb.y).
func (f *axisFrame) Snapshot() domain.FrameSnapshot {
	return domain.FrameSnapshot{
		Mode: domain.FrameAxisAligned,
		Flat: domain.Corners[domain.FlatPoint]{
			LT: f.lt,
			LB: domain.FlatPoint{X: f.lt.X, Y: f.rb.Y},
			RB: f.rb,
		},
		Sin:   geospatial.Identity.Sin,
		Cos:   geospatial.Identity.Cos,
		Delta: f.delta(),
	}
}
