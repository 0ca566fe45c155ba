package usecases

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/samirrijal/geoframe/internal/core/domain"
	"github.com/samirrijal/geoframe/internal/core/ports"
)

// FrameSync applies frame changes locally and keeps other instances in step.
type FrameSync struct {
	mapper    *Mapper
	publisher ports.FramePublisher
	origin    string
	logger    *slog.Logger
}

// NewFrameSync creates a FrameSync. publisher may be nil when running standalone.
func NewFrameSync(mapper *Mapper, publisher ports.FramePublisher, origin string, logger *slog.Logger) *FrameSync {
	if logger == nil {
		logger = slog.Default()
	}
	return &FrameSync{mapper: mapper, publisher: publisher, origin: origin, logger: logger}
}

// Origin identifies this instance in published changes.
func (s *FrameSync) Origin() string {
	return s.origin
}

// Apply replaces the local frame and announces the change. A failed
// announcement is logged; the local frame stays replaced.
func (s *FrameSync) Apply(ctx context.Context, b domain.Borders) error {
	if err := s.mapper.SetBorders(b); err != nil {
		return err
	}
	if s.publisher == nil {
		return nil
	}

	change := &domain.FrameChange{
		Origin:    s.origin,
		Mode:      s.mapper.Mode(),
		Borders:   b,
		ChangedAt: time.Now().UTC(),
	}
	if err := s.publisher.PublishFrameChange(ctx, change); err != nil {
		s.logger.WarnContext(ctx, "frame change not published", "error", err)
	}
	return nil
}

// HandleRemote applies a change published by another instance. Changes from
// this instance and changes for a different frame mode are ignored.
func (s *FrameSync) HandleRemote(ctx context.Context, change *domain.FrameChange) error {
	if change.Origin == s.origin {
		return nil
	}
	if change.Mode != s.mapper.Mode() {
		s.logger.WarnContext(ctx, "ignoring frame change for other mode",
			"origin", change.Origin,
			"mode", string(change.Mode),
		)
		return nil
	}
	if err := s.mapper.SetBorders(change.Borders); err != nil {
		return fmt.Errorf("apply frame change from %s: %w", change.Origin, err)
	}

	s.logger.InfoContext(ctx, "frame change applied",
		"origin", change.Origin,
		"changed_at", change.ChangedAt,
	)
	return nil
}
