package natsadapter

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/nats-io/nats.go"

	"github.com/samirrijal/geoframe/internal/core/domain"
)

const (
	// FrameStream keeps the latest change per frame mode.
	FrameStream = "GEOFRAME_FRAMES"
	// FrameSubjects matches every frame change subject.
	FrameSubjects = "geoframe.frame.>"
)

// FrameSubject returns the subject a change for mode is published on.
func FrameSubject(mode domain.FrameMode) string {
	return "geoframe.frame." + string(mode)
}

// Publisher implements ports.FramePublisher using NATS JetStream.
type Publisher struct {
	conn *nats.Conn
	js   nats.JetStreamContext
}

// NewPublisher connects to NATS and enables JetStream.
func NewPublisher(url string) (*Publisher, error) {
	conn, err := RawConn(url)
	if err != nil {
		return nil, fmt.Errorf("nats connect: %w", err)
	}

	js, err := conn.JetStream()
	if err != nil {
		conn.Close()
		return nil, fmt.Errorf("jetstream: %w", err)
	}

	if err := ensureStream(js); err != nil {
		conn.Close()
		return nil, err
	}

	return &Publisher{conn: conn, js: js}, nil
}

func ensureStream(js nats.JetStreamContext) error {
	cfg := nats.StreamConfig{
		Name:              FrameStream,
		Subjects:          []string{FrameSubjects},
		Retention:         nats.LimitsPolicy,
		MaxMsgsPerSubject: 1,
		MaxAge:            30 * 24 * time.Hour,
		Storage:           nats.FileStorage,
	}
	if _, err := js.AddStream(&cfg); err != nil {
		// Stream may already exist; try update
		if _, err := js.UpdateStream(&cfg); err != nil {
			return fmt.Errorf("ensure stream %s: %w", cfg.Name, err)
		}
	}
	return nil
}

// PublishFrameChange publishes change on the subject of its mode.
func (p *Publisher) PublishFrameChange(ctx context.Context, change *domain.FrameChange) error {
	data, err := json.Marshal(change)
	if err != nil {
		return err
	}
	_, err = p.js.Publish(FrameSubject(change.Mode), data, nats.Context(ctx))
	return err
}

// Conn exposes the underlying connection for relays.
func (p *Publisher) Conn() *nats.Conn {
	return p.conn
}

// Close drains and closes the connection.
func (p *Publisher) Close() {
	_ = p.conn.Drain()
}

// RawConn creates a plain NATS connection.
func RawConn(url string) (*nats.Conn, error) {
	return nats.Connect(url,
		nats.Name("geoframe"),
		nats.RetryOnFailedConnect(true),
		nats.MaxReconnects(-1),
		nats.ReconnectWait(2*time.Second),
	)
}
