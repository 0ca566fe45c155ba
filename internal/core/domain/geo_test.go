package domain

import (
	"errors"
	"math"
	"testing"
)

func TestFrameSnapshotDegenerate(t *testing.T) {
	tests := []struct {
		name string
		snap FrameSnapshot
		want bool
	}{
		{"usable", FrameSnapshot{Cos: 1, Delta: FlatPoint{X: 10, Y: 5}}, false},
		{"zero width", FrameSnapshot{Cos: 1, Delta: FlatPoint{X: 0, Y: 5}}, true},
		{"zero height", FrameSnapshot{Cos: 1, Delta: FlatPoint{X: 10, Y: 0}}, true},
		{"nan delta", FrameSnapshot{Cos: 1, Delta: FlatPoint{X: math.NaN(), Y: 5}}, true},
		{"infinite delta", FrameSnapshot{Cos: 1, Delta: FlatPoint{X: 10, Y: math.Inf(1)}}, true},
		{"nan rotation", FrameSnapshot{Sin: math.NaN(), Cos: math.NaN(), Delta: FlatPoint{X: 10, Y: 5}}, true},
		{"negative delta", FrameSnapshot{Cos: 1, Delta: FlatPoint{X: -10, Y: -5}}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.snap.Degenerate(); got != tt.want {
				t.Errorf("Degenerate() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestRelativePointFinite(t *testing.T) {
	if !(RelativePoint{X: -20, Y: 150}).Finite() {
		t.Error("points outside 0-100 are still finite")
	}
	if (RelativePoint{X: math.NaN(), Y: 0}).Finite() {
		t.Error("NaN x must not be finite")
	}
	if (RelativePoint{X: 0, Y: math.Inf(-1)}).Finite() {
		t.Error("infinite y must not be finite")
	}
}

func TestPointFinite(t *testing.T) {
	if !(FlatPoint{X: 1, Y: 2}).Finite() || !(GeoPoint{Longitude: 1, Latitude: 2}).Finite() {
		t.Error("finite points reported as non-finite")
	}
	if (FlatPoint{X: 0, Y: math.NaN()}).Finite() {
		t.Error("NaN y must not be finite")
	}
	if (GeoPoint{Longitude: math.Inf(1), Latitude: 0}).Finite() {
		t.Error("infinite longitude must not be finite")
	}
}

func TestFrameModeValid(t *testing.T) {
	if !FrameRotated.Valid() || !FrameAxisAligned.Valid() {
		t.Error("built-in modes must be valid")
	}
	if FrameMode("skewed").Valid() {
		t.Error("unknown mode must be invalid")
	}
}

func TestArgumentErrors(t *testing.T) {
	err := ErrOutOfBounds("latitude")
	if err.Error() != "`coordinates.latitude` out of bounds" {
		t.Errorf("unexpected message %q", err.Error())
	}
	if !errors.Is(err, ErrInvalidArgument) {
		t.Error("out of bounds must unwrap to ErrInvalidArgument")
	}

	var argErr *ArgumentError
	if !errors.As(ErrMalformedCoordinates(), &argErr) || argErr.Field != "coordinates" {
		t.Errorf("expected coordinates field, got %+v", argErr)
	}
	if ErrMalformedCoordinates().Error() != "missing or invalid parameter `coordinates`" {
		t.Errorf("unexpected message %q", ErrMalformedCoordinates().Error())
	}
}
