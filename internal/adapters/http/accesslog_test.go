package http_test

import (
	"bytes"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"

	handler "github.com/samirrijal/geoframe/internal/adapters/http"
	"github.com/samirrijal/geoframe/internal/pkg/logging"
)

func TestAccessLog_StatusFromHandlerError(t *testing.T) {
	var buf bytes.Buffer
	prev := slog.Default()
	slog.SetDefault(logging.New(&buf, "debug", "json"))
	t.Cleanup(func() { slog.SetDefault(prev) })

	app := fiber.New(fiber.Config{DisableStartupMessage: true})
	app.Use(handler.AccessLogMiddleware())
	app.Get("/ok", func(c *fiber.Ctx) error { return c.SendStatus(fiber.StatusNoContent) })
	app.Get("/teapot", func(c *fiber.Ctx) error { return fiber.NewError(fiber.StatusTeapot, "short and stout") })
	app.Get("/broken", func(c *fiber.Ctx) error { return errors.New("json: unsupported value: NaN") })

	tests := []struct {
		path     string
		status   int
		level    string
		hasError bool
	}{
		{"/ok", 204, "INFO", false},
		{"/teapot", 418, "WARN", true},
		{"/broken", 500, "ERROR", true},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			buf.Reset()
			resp, err := app.Test(httptest.NewRequest("GET", tt.path, nil), -1)
			if err != nil {
				t.Fatal(err)
			}
			resp.Body.Close()
			if resp.StatusCode != tt.status {
				t.Fatalf("expected response %d, got %d", tt.status, resp.StatusCode)
			}

			var entry struct {
				Level  string `json:"level"`
				Status int    `json:"status"`
				Error  string `json:"error"`
			}
			if err := json.Unmarshal(buf.Bytes(), &entry); err != nil {
				t.Fatalf("decode log line %q: %v", buf.String(), err)
			}
			if entry.Status != tt.status {
				t.Errorf("logged status %d, response was %d", entry.Status, tt.status)
			}
			if entry.Level != tt.level {
				t.Errorf("expected level %s, got %s", tt.level, entry.Level)
			}
			if (entry.Error != "") != tt.hasError {
				t.Errorf("unexpected error attribute %q", entry.Error)
			}
		})
	}
}
