package metrics

import (
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/valyala/fasthttp/fasthttpadaptor"
)

var (
	// HTTP metrics
	httpRequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "geoframe",
		Subsystem: "http",
		Name:      "requests_total",
		Help:      "Total HTTP requests processed",
	}, []string{"method", "path", "status"})

	httpRequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "geoframe",
		Subsystem: "http",
		Name:      "request_duration_seconds",
		Help:      "HTTP request latency in seconds",
		Buckets:   []float64{0.0005, 0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25},
	}, []string{"method", "path"})

	// Conversion metrics
	Conversions = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "geoframe",
		Subsystem: "projection",
		Name:      "conversions_total",
		Help:      "Total successful coordinate conversions",
	}, []string{"operation"})

	InvalidArguments = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "geoframe",
		Subsystem: "projection",
		Name:      "invalid_arguments_total",
		Help:      "Total conversions rejected by input validation",
	}, []string{"operation", "field"})

	FrameReconfigurations = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "geoframe",
		Subsystem: "frame",
		Name:      "reconfigurations_total",
		Help:      "Total bounding frame reconfigurations",
	}, []string{"mode"})
)

// Middleware records request metrics.
func Middleware() fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()

		err := c.Next()

		duration := time.Since(start).Seconds()
		status := strconv.Itoa(c.Response().StatusCode())
		path := c.Route().Path
		if path == "" {
			path = c.Path()
		}
		method := c.Method()

		httpRequestsTotal.WithLabelValues(method, path, status).Inc()
		httpRequestDuration.WithLabelValues(method, path).Observe(duration)

		return err
	}
}

// Handler returns a Fiber handler serving Prometheus /metrics endpoint.
func Handler() fiber.Handler {
	handler := promhttp.Handler()
	return func(c *fiber.Ctx) error {
		fasthttpadaptor.NewFastHTTPHandler(handler)(c.Context())
		return nil
	}
}
