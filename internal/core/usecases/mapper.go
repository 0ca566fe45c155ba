package usecases

import (
	"fmt"
	"log/slog"
	"sync/atomic"

	"github.com/samirrijal/geoframe/internal/core/domain"
)

// frameRef boxes a Frame so it can live behind an atomic.Pointer.
type frameRef struct {
	Frame
}

// Mapper maps geographic and planar points into the relative space of its
// bounding frame. The frame is replaced as a whole on SetBorders, so readers
// may run concurrently with reconfiguration.
type Mapper struct {
	proj   *ProjectionService
	mode   domain.FrameMode
	logger *slog.Logger
	frame  atomic.Pointer[frameRef]
}

// MapperOption customises a Mapper.
type MapperOption func(*Mapper)

// WithLogger sets the logger used for frame reconfiguration events.
func WithLogger(l *slog.Logger) MapperOption {
	return func(m *Mapper) {
		if l != nil {
			m.logger = l
		}
	}
}

// NewMapper creates a Mapper in the given mode, framed by domain.DefaultCorners.
// An axis-aligned mapper uses the projected lt and rb default corners.
func NewMapper(proj *ProjectionService, mode domain.FrameMode, opts ...MapperOption) (*Mapper, error) {
	if !mode.Valid() {
		return nil, fmt.Errorf("frame mode %q: %w", mode, domain.ErrInvalidArgument)
	}

	m := &Mapper{proj: proj, mode: mode, logger: slog.Default()}
	for _, o := range opts {
		o(m)
	}

	if err := m.SetGeoBorders(domain.DefaultCorners); err != nil {
		return nil, fmt.Errorf("default frame: %w", err)
	}
	return m, nil
}

// Mode returns the frame mode chosen at construction.
func (m *Mapper) Mode() domain.FrameMode {
	return m.mode
}

// SupportsRotation reports whether the frame applies rotation correction.
func (m *Mapper) SupportsRotation() bool {
	return m.mode == domain.FrameRotated
}

// SetBorders reconfigures the frame. A rotated frame is built from b.WGS;
// an axis-aligned frame takes b.Flat.LT and b.Flat.RB as-is and ignores b.WGS.
// On error the previous frame stays active.
func (m *Mapper) SetBorders(b domain.Borders) error {
	if m.mode == domain.FrameAxisAligned {
		m.swap(newAxisFrame(b.Flat.LT, b.Flat.RB))
		return nil
	}
	return m.SetGeoBorders(b.WGS)
}

// SetGeoBorders reconfigures the frame from geographic corners. An
// axis-aligned frame projects lt and rb and ignores lb.
func (m *Mapper) SetGeoBorders(wgs domain.Corners[domain.GeoPoint]) error {
	if m.mode == domain.FrameAxisAligned {
		lt, err := m.proj.ToFlat(wgs.LT)
		if err != nil {
			return fmt.Errorf("corner lt: %w", err)
		}
		rb, err := m.proj.ToFlat(wgs.RB)
		if err != nil {
			return fmt.Errorf("corner rb: %w", err)
		}
		m.swap(newAxisFrame(lt, rb))
		return nil
	}

	f, err := newRotatedFrame(m.proj, wgs)
	if err != nil {
		return err
	}
	m.swap(f)
	return nil
}

func (m *Mapper) swap(f Frame) {
	m.frame.Store(&frameRef{Frame: f})

	snap := f.Snapshot()
	if snap.Degenerate() {
		m.logger.Warn("degenerate bounding frame, relative coordinates will not be finite",
			"mode", string(snap.Mode),
			"delta_x", snap.Delta.X,
			"delta_y", snap.Delta.Y,
		)
		return
	}
	m.logger.Debug("bounding frame configured",
		"mode", string(snap.Mode),
		"delta_x", snap.Delta.X,
		"delta_y", snap.Delta.Y,
	)
}

func (m *Mapper) current() Frame {
	return m.frame.Load().Frame
}

// Frame returns a description of the active frame.
func (m *Mapper) Frame() domain.FrameSnapshot {
	return m.current().Snapshot()
}

// RelativeByWgs projects p to the planar system and normalizes it.
func (m *Mapper) RelativeByWgs(p domain.GeoPoint) (domain.RelativePoint, error) {
	f := m.current()
	flat, err := m.proj.ToFlat(p)
	if err != nil {
		return domain.RelativePoint{}, err
	}
	return f.Relative(flat), nil
}

// RelativeByFlat normalizes an already projected point. Only rotated frames support it.
func (m *Mapper) RelativeByFlat(p domain.FlatPoint) (domain.RelativePoint, error) {
	f := m.current()
	if !f.SupportsRotation() {
		return domain.RelativePoint{}, fmt.Errorf("relative by flat in %s frame: %w", f.Mode(), domain.ErrUnsupported)
	}
	return f.Relative(p), nil
}

// FlatByRelative maps a relative position back to planar coordinates.
func (m *Mapper) FlatByRelative(r domain.RelativePoint) domain.FlatPoint {
	return m.current().Absolute(r)
}

// WgsByRelative maps a relative position back to geographic coordinates.
func (m *Mapper) WgsByRelative(r domain.RelativePoint) (domain.GeoPoint, error) {
	return m.proj.ToWGS(m.current().Absolute(r))
}
