package telemetry

// Span and attribute names used for instrumentation.
const (
	SpanToFlat         = "projection.to_flat"
	SpanToWGS          = "projection.to_wgs"
	SpanRelativeByWgs  = "frame.relative_by_wgs"
	SpanRelativeByFlat = "frame.relative_by_flat"
	SpanAbsolute       = "frame.absolute"
	SpanSetBorders     = "frame.set_borders"

	AttrFrameMode    = "geoframe.frame.mode"
	AttrPlanarSystem = "geoframe.projection.system"
	AttrInvalidField = "geoframe.invalid_field"
)
