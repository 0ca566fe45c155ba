package http

import (
	"github.com/nats-io/nats.go"

	"github.com/samirrijal/geoframe/internal/core/usecases"
)

// Dependencies holds all services needed by HTTP handlers.
type Dependencies struct {
	Projection *usecases.ProjectionService
	Mapper     *usecases.Mapper
	Frames     *usecases.FrameSync
	NATS       *nats.Conn // optional; enables the /ws frame feed
}
