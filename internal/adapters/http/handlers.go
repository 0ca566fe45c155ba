package http

import (
	"github.com/gofiber/fiber/v2"
	"go.opentelemetry.io/otel/attribute"

	"github.com/samirrijal/geoframe/internal/core/domain"
	"github.com/samirrijal/geoframe/internal/pkg/metrics"
	"github.com/samirrijal/geoframe/internal/pkg/telemetry"
)

// AbsoluteResult is the planar and geographic position of a relative point.
type AbsoluteResult struct {
	Flat domain.FlatPoint `json:"flat"`
	WGS  domain.GeoPoint  `json:"wgs"`
}

// ToFlatHandler projects a geographic point to the planar system.
func ToFlatHandler(deps *Dependencies) fiber.Handler {
	return func(c *fiber.Ctx) error {
		_, span := telemetry.Tracer().Start(c.UserContext(), telemetry.SpanToFlat)
		defer span.End()
		span.SetAttributes(attribute.String(telemetry.AttrPlanarSystem, deps.Projection.PlanarSystem()))

		p, err := decodeGeoPoint(c.Body())
		if err != nil {
			return respondError(c, span, "to_flat", err)
		}
		flat, err := deps.Projection.ToFlat(p)
		if err == nil {
			err = projectedFlat(flat)
		}
		if err != nil {
			return respondError(c, span, "to_flat", err)
		}

		metrics.Conversions.WithLabelValues("to_flat").Inc()
		return c.JSON(flat)
	}
}

// ToWGSHandler projects a planar point back to geographic coordinates.
func ToWGSHandler(deps *Dependencies) fiber.Handler {
	return func(c *fiber.Ctx) error {
		_, span := telemetry.Tracer().Start(c.UserContext(), telemetry.SpanToWGS)
		defer span.End()
		span.SetAttributes(attribute.String(telemetry.AttrPlanarSystem, deps.Projection.PlanarSystem()))

		p, err := decodeFlatPoint(c.Body())
		if err != nil {
			return respondError(c, span, "to_wgs", err)
		}
		wgs, err := deps.Projection.ToWGS(p)
		if err == nil {
			err = projectedGeo(wgs)
		}
		if err != nil {
			return respondError(c, span, "to_wgs", err)
		}

		metrics.Conversions.WithLabelValues("to_wgs").Inc()
		return c.JSON(wgs)
	}
}

// RelativeByWgsHandler maps a geographic point into the frame's relative space.
func RelativeByWgsHandler(deps *Dependencies) fiber.Handler {
	return func(c *fiber.Ctx) error {
		_, span := telemetry.Tracer().Start(c.UserContext(), telemetry.SpanRelativeByWgs)
		defer span.End()
		span.SetAttributes(attribute.String(telemetry.AttrFrameMode, string(deps.Mapper.Mode())))

		p, err := decodeGeoPoint(c.Body())
		if err != nil {
			return respondError(c, span, "relative_by_wgs", err)
		}
		rel, err := deps.Mapper.RelativeByWgs(p)
		if err != nil {
			return respondError(c, span, "relative_by_wgs", err)
		}
		if !rel.Finite() {
			if err := unprojectable(deps, p); err != nil {
				return respondError(c, span, "relative_by_wgs", err)
			}
			return errDegenerate(c)
		}

		metrics.Conversions.WithLabelValues("relative_by_wgs").Inc()
		return c.JSON(rel)
	}
}

// RelativeByFlatHandler maps a planar point into the frame's relative space.
func RelativeByFlatHandler(deps *Dependencies) fiber.Handler {
	return func(c *fiber.Ctx) error {
		_, span := telemetry.Tracer().Start(c.UserContext(), telemetry.SpanRelativeByFlat)
		defer span.End()
		span.SetAttributes(attribute.String(telemetry.AttrFrameMode, string(deps.Mapper.Mode())))

		p, err := decodeFlatPoint(c.Body())
		if err != nil {
			return respondError(c, span, "relative_by_flat", err)
		}
		rel, err := deps.Mapper.RelativeByFlat(p)
		if err != nil {
			return respondError(c, span, "relative_by_flat", err)
		}
		if !rel.Finite() {
			return errDegenerate(c)
		}

		metrics.Conversions.WithLabelValues("relative_by_flat").Inc()
		return c.JSON(rel)
	}
}

// AbsoluteHandler maps a relative point back to planar and geographic coordinates.
func AbsoluteHandler(deps *Dependencies) fiber.Handler {
	return func(c *fiber.Ctx) error {
		_, span := telemetry.Tracer().Start(c.UserContext(), telemetry.SpanAbsolute)
		defer span.End()
		span.SetAttributes(attribute.String(telemetry.AttrFrameMode, string(deps.Mapper.Mode())))

		if deps.Mapper.Frame().Degenerate() {
			return errDegenerate(c)
		}
		r, err := decodeRelativePoint(c.Body())
		if err != nil {
			return respondError(c, span, "absolute", err)
		}
		flat := deps.Mapper.FlatByRelative(r)
		wgs, err := deps.Projection.ToWGS(flat)
		if err == nil {
			err = projectedGeo(wgs)
		}
		if err != nil {
			return respondError(c, span, "absolute", err)
		}

		metrics.Conversions.WithLabelValues("absolute").Inc()
		return c.JSON(AbsoluteResult{Flat: flat, WGS: wgs})
	}
}

// unprojectable reports an error when p has no finite planar position, so a
// non-finite relative point is not blamed on the frame.
func unprojectable(deps *Dependencies, p domain.GeoPoint) error {
	flat, err := deps.Projection.ToFlat(p)
	if err != nil {
		return err
	}
	return projectedFlat(flat)
}

// GetFrameHandler returns the active bounding frame.
func GetFrameHandler(deps *Dependencies) fiber.Handler {
	return func(c *fiber.Ctx) error {
		return frameResponse(c, deps.Mapper.Frame())
	}
}

// SetFrameHandler replaces the bounding frame.
func SetFrameHandler(deps *Dependencies) fiber.Handler {
	return func(c *fiber.Ctx) error {
		mode := deps.Mapper.Mode()
		ctx, span := telemetry.Tracer().Start(c.UserContext(), telemetry.SpanSetBorders)
		defer span.End()
		span.SetAttributes(attribute.String(telemetry.AttrFrameMode, string(mode)))

		b, err := decodeBorders(c.Body(), mode)
		if err != nil {
			return respondError(c, span, "set_borders", err)
		}
		if err := deps.Frames.Apply(ctx, b); err != nil {
			return respondError(c, span, "set_borders", err)
		}

		metrics.FrameReconfigurations.WithLabelValues(string(mode)).Inc()
		snap := deps.Mapper.Frame()
		LoggerFromCtx(ctx).Info("bounding frame replaced",
			"mode", string(mode),
			"degenerate", snap.Degenerate(),
		)
		return frameResponse(c, snap)
	}
}

// frameResponse writes a snapshot; degenerate frames carry NaN values that
// JSON cannot encode, so only their mode is reported.
func frameResponse(c *fiber.Ctx, snap domain.FrameSnapshot) error {
	if snap.Degenerate() {
		return c.JSON(fiber.Map{
			"mode":       snap.Mode,
			"degenerate": true,
		})
	}
	return c.JSON(snap)
}
