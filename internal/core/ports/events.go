package ports

import (
	"context"

	"github.com/samirrijal/geoframe/internal/core/domain"
)

// FramePublisher announces frame changes to a message broker.
type FramePublisher interface {
	PublishFrameChange(ctx context.Context, change *domain.FrameChange) error
}

// FrameSubscriber receives frame changes from a message broker.
type FrameSubscriber interface {
	SubscribeFrameChanges(ctx context.Context, handler func(ctx context.Context, change *domain.FrameChange) error) error
}
