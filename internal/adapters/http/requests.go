package http

import (
	"encoding/json"

	"github.com/go-playground/validator/v10"

	"github.com/samirrijal/geoframe/internal/core/domain"
)

var validate = validator.New()

type geoPointRequest struct {
	Longitude *float64 `json:"longitude" validate:"required"`
	Latitude  *float64 `json:"latitude" validate:"required"`
}

func (r *geoPointRequest) point() domain.GeoPoint {
	return domain.GeoPoint{Longitude: *r.Longitude, Latitude: *r.Latitude}
}

type flatPointRequest struct {
	X *float64 `json:"x" validate:"required"`
	Y *float64 `json:"y" validate:"required"`
}

func (r *flatPointRequest) point() domain.FlatPoint {
	return domain.FlatPoint{X: *r.X, Y: *r.Y}
}

type geoCornersRequest struct {
	LT *geoPointRequest `json:"lt" validate:"required"`
	LB *geoPointRequest `json:"lb" validate:"required"`
	RB *geoPointRequest `json:"rb" validate:"required"`
}

func (r *geoCornersRequest) corners() domain.Corners[domain.GeoPoint] {
	return domain.Corners[domain.GeoPoint]{LT: r.LT.point(), LB: r.LB.point(), RB: r.RB.point()}
}

type flatPairRequest struct {
	LT *flatPointRequest `json:"lt" validate:"required"`
	RB *flatPointRequest `json:"rb" validate:"required"`
}

type axisBordersRequest struct {
	WGS  *geoCornersRequest `json:"wgs" validate:"omitempty"`
	Flat *flatPairRequest   `json:"flat" validate:"required"`
}

func (r *axisBordersRequest) borders() domain.Borders {
	var b domain.Borders
	if r.WGS != nil {
		b.WGS = r.WGS.corners()
	}
	lt, rb := r.Flat.LT.point(), r.Flat.RB.point()
	b.Flat = domain.Corners[domain.FlatPoint]{LT: lt, LB: domain.FlatPoint{X: lt.X, Y: rb.Y}, RB: rb}
	return b
}

// decodeInto unmarshals body into req and validates it. null, non-object
// bodies, non-numeric and missing fields are all reported as malformed.
func decodeInto(body []byte, req any, malformed error) error {
	if err := json.Unmarshal(body, req); err != nil {
		return malformed
	}
	if err := validate.Struct(req); err != nil {
		return malformed
	}
	return nil
}

func decodeGeoPoint(body []byte) (domain.GeoPoint, error) {
	var req geoPointRequest
	if err := decodeInto(body, &req, domain.ErrMalformedCoordinates()); err != nil {
		return domain.GeoPoint{}, err
	}
	return req.point(), nil
}

func decodeFlatPoint(body []byte) (domain.FlatPoint, error) {
	var req flatPointRequest
	if err := decodeInto(body, &req, domain.ErrMalformedCoordinates()); err != nil {
		return domain.FlatPoint{}, err
	}
	return req.point(), nil
}

func decodeRelativePoint(body []byte) (domain.RelativePoint, error) {
	var req flatPointRequest
	if err := decodeInto(body, &req, domain.ErrMalformedCoordinates()); err != nil {
		return domain.RelativePoint{}, err
	}
	return domain.RelativePoint{X: *req.X, Y: *req.Y}, nil
}

func malformedBorders() error {
	return &domain.ArgumentError{Field: "borders", Reason: "missing or invalid parameter `borders`"}
}

// decodeBorders reads a frame body in the shape expected by mode:
// {lt, lb, rb} geographic corners for rotated frames, {wgs, flat: {lt, rb}} otherwise.
func decodeBorders(body []byte, mode domain.FrameMode) (domain.Borders, error) {
	if mode == domain.FrameAxisAligned {
		var req axisBordersRequest
		if err := decodeInto(body, &req, malformedBorders()); err != nil {
			return domain.Borders{}, err
		}
		return req.borders(), nil
	}

	var req geoCornersRequest
	if err := decodeInto(body, &req, malformedBorders()); err != nil {
		return domain.Borders{}, err
	}
	return domain.Borders{WGS: req.corners()}, nil
}
