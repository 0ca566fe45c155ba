package http

import (
	"encoding/json"
	"log/slog"
	"sync"
	"time"

	"github.com/gofiber/websocket/v2"
	"github.com/nats-io/nats.go"

	natsadapter "github.com/samirrijal/geoframe/internal/adapters/nats"
)

// FrameWebSocketHandler returns a handler that sends the active frame on
// connect, then relays every published frame change to the client.
// Canvas clients use it to know when their overlay must be re-laid out.
func FrameWebSocketHandler(deps *Dependencies) func(*websocket.Conn) {
	return func(c *websocket.Conn) {
		defer c.Close()

		remoteAddr := c.RemoteAddr().String()
		slog.Info("ws client connected", "remote", remoteAddr)

		var mu sync.Mutex

		// Helper: thread-safe write
		writeJSON := func(v interface{}) error {
			data, err := json.Marshal(v)
			if err != nil {
				return err
			}
			mu.Lock()
			defer mu.Unlock()
			return c.WriteMessage(websocket.TextMessage, data)
		}

		if snap := deps.Mapper.Frame(); !snap.Degenerate() {
			if err := writeJSON(newFrameMessage("frame", snap)); err != nil {
				return
			}
		}

		sub, err := deps.NATS.Subscribe(natsadapter.FrameSubjects, func(msg *nats.Msg) {
			_ = writeJSON(newFrameMessage("frame_change", json.RawMessage(msg.Data)))
		})
		if err != nil {
			slog.Error("ws subscribe failed", "remote", remoteAddr, "error", err)
			return
		}
		defer func() { _ = sub.Unsubscribe() }()

		// Keep-alive ping
		done := make(chan struct{})
		defer close(done)
		go func() {
			ticker := time.NewTicker(30 * time.Second)
			defer ticker.Stop()
			for {
				select {
				case <-ticker.C:
					mu.Lock()
					err := c.WriteMessage(websocket.PingMessage, nil)
					mu.Unlock()
					if err != nil {
						return
					}
				case <-done:
					return
				}
			}
		}()

		// Clients only listen; reading detects the close.
		for {
			if _, _, err := c.ReadMessage(); err != nil {
				break
			}
		}
		slog.Info("ws client disconnected", "remote", remoteAddr)
	}
}

type frameMessage struct {
	Type string      `json:"type"`
	Data interface{} `json:"data"`
}

func newFrameMessage(kind string, data interface{}) frameMessage {
	return frameMessage{Type: kind, Data: data}
}
