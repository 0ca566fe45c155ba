package natsadapter

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/nats-io/nats.go"

	"github.com/samirrijal/geoframe/internal/core/domain"
)

// Subscriber implements ports.FrameSubscriber using NATS JetStream.
type Subscriber struct {
	conn *nats.Conn
	js   nats.JetStreamContext
	mode domain.FrameMode
	subs []*nats.Subscription
}

// NewSubscriber creates a subscriber for changes to frames of the given mode,
// sharing conn with the publisher.
func NewSubscriber(conn *nats.Conn, mode domain.FrameMode) (*Subscriber, error) {
	js, err := conn.JetStream()
	if err != nil {
		return nil, fmt.Errorf("jetstream: %w", err)
	}
	return &Subscriber{conn: conn, js: js, mode: mode}, nil
}

// SubscribeFrameChanges delivers the latest stored change first, then every
// new one. Each instance gets its own ephemeral consumer.
func (s *Subscriber) SubscribeFrameChanges(ctx context.Context, handler func(ctx context.Context, change *domain.FrameChange) error) error {
	sub, err := s.js.Subscribe(FrameSubject(s.mode), func(msg *nats.Msg) {
		var change domain.FrameChange
		if err := json.Unmarshal(msg.Data, &change); err != nil {
			// Redelivery cannot fix a malformed payload
			_ = msg.Term()
			return
		}
		if err := handler(ctx, &change); err != nil {
			_ = msg.Nak()
			return
		}
		_ = msg.Ack()
	},
		nats.DeliverLast(),
		nats.ManualAck(),
		nats.MaxDeliver(3),
	)
	if err != nil {
		return err
	}
	s.subs = append(s.subs, sub)
	return nil
}

// Close unsubscribes. The shared connection is closed by its owner.
func (s *Subscriber) Close() {
	for _, sub := range s.subs {
		_ = sub.Unsubscribe()
	}
}
