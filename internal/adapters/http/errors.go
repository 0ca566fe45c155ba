package http

import (
	"errors"
	"fmt"
	"math"

	"github.com/gofiber/fiber/v2"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/samirrijal/geoframe/internal/core/domain"
	"github.com/samirrijal/geoframe/internal/pkg/metrics"
	"github.com/samirrijal/geoframe/internal/pkg/telemetry"
)

// APIError is a structured error response.
type APIError struct {
	Status    int    `json:"status"`
	Code      string `json:"code"`            // Error code: bad_request, unsupported, internal_error, etc.
	Message   string `json:"message"`         // Human-readable message
	Field     string `json:"field,omitempty"` // Offending input field, for bad_request
	RequestID string `json:"request_id,omitempty"`
}

// newError builds a JSON error response with a request ID.
func newError(c *fiber.Ctx, status int, code, message, field string) error {
	reqID, _ := c.Locals("requestid").(string)
	return c.Status(status).JSON(APIError{
		Status:    status,
		Code:      code,
		Message:   message,
		Field:     field,
		RequestID: reqID,
	})
}

// errBadRequest returns a 400 error.
func errBadRequest(c *fiber.Ctx, msg, field string) error {
	return newError(c, 400, "bad_request", msg, field)
}

// errUnprocessable returns a 422 error.
func errUnprocessable(c *fiber.Ctx, code, msg string) error {
	return newError(c, 422, code, msg, "")
}

// notProjectableError reports a valid input whose projection is not a finite point.
type notProjectableError struct {
	field string
}

func (e *notProjectableError) Error() string {
	return fmt.Sprintf("`coordinates.%s` cannot be projected", e.field)
}

// projectedFlat checks the result of projecting a geographic point; the
// planar x depends on longitude and y on latitude.
func projectedFlat(p domain.FlatPoint) error {
	switch {
	case p.Finite():
		return nil
	case !finite(p.X):
		return &notProjectableError{field: "longitude"}
	default:
		return &notProjectableError{field: "latitude"}
	}
}

// projectedGeo checks the result of projecting a planar point.
func projectedGeo(p domain.GeoPoint) error {
	switch {
	case p.Finite():
		return nil
	case !finite(p.Longitude):
		return &notProjectableError{field: "x"}
	default:
		return &notProjectableError{field: "y"}
	}
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

// errInternal returns a 500 error.
func errInternal(c *fiber.Ctx, msg string) error {
	return newError(c, 500, "internal_error", msg, "")
}

// respondError maps a domain error to an HTTP response and records it on the span.
func respondError(c *fiber.Ctx, span trace.Span, operation string, err error) error {
	span.RecordError(err)
	span.SetStatus(codes.Error, err.Error())

	var argErr *domain.ArgumentError
	var projErr *notProjectableError
	switch {
	case errors.As(err, &projErr):
		return newError(c, 422, "not_projectable", err.Error(), projErr.field)
	case errors.As(err, &argErr):
		metrics.InvalidArguments.WithLabelValues(operation, argErr.Field).Inc()
		span.SetAttributes(attribute.String(telemetry.AttrInvalidField, argErr.Field))
		return errBadRequest(c, err.Error(), argErr.Field)
	case errors.Is(err, domain.ErrInvalidArgument):
		metrics.InvalidArguments.WithLabelValues(operation, "").Inc()
		return errBadRequest(c, err.Error(), "")
	case errors.Is(err, domain.ErrUnsupported):
		return errUnprocessable(c, "unsupported", err.Error())
	default:
		return errInternal(c, err.Error())
	}
}

// errDegenerate reports results that cannot be expressed because the frame is degenerate.
func errDegenerate(c *fiber.Ctx) error {
	return errUnprocessable(c, "degenerate_frame", "bounding frame is degenerate, relative coordinates are not finite")
}
