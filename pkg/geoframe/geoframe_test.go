package geoframe_test

import (
	"errors"
	"fmt"
	"math"
	"testing"

	"github.com/samirrijal/geoframe/pkg/geoframe"
)

func TestConverterRoundTrip(t *testing.T) {
	c := geoframe.NewConverter()

	flat, err := c.ToFlat(geoframe.GeoPoint{Longitude: 73.2, Latitude: 55.07})
	if err != nil {
		t.Fatalf("to flat: %v", err)
	}
	geo, err := c.ToWGS(flat)
	if err != nil {
		t.Fatalf("to wgs: %v", err)
	}
	if math.Abs(geo.Longitude-73.2) > 1e-9 || math.Abs(geo.Latitude-55.07) > 1e-9 {
		t.Errorf("round trip drifted: %+v", geo)
	}
}

func TestMapperRejectsFlatInAxisMode(t *testing.T) {
	m, err := geoframe.NewMapper(geoframe.AxisAligned)
	if err != nil {
		t.Fatal(err)
	}
	if _, err := m.RelativeByFlat(geoframe.FlatPoint{X: 1, Y: 1}); !errors.Is(err, geoframe.ErrUnsupported) {
		t.Errorf("expected ErrUnsupported, got %v", err)
	}
}

func TestMapperStartsAtDefaultCorners(t *testing.T) {
	m, err := geoframe.NewMapper(geoframe.Rotated)
	if err != nil {
		t.Fatal(err)
	}
	if got := m.Frame().WGS; got == nil || *got != geoframe.DefaultCorners() {
		t.Errorf("expected default corners, got %+v", got)
	}
}

func ExampleNewMapper() {
	m, err := geoframe.NewMapper(geoframe.Rotated)
	if err != nil {
		panic(err)
	}
	rel, err := m.RelativeByWgs(geoframe.DefaultCorners().LT)
	if err != nil {
		panic(err)
	}
	fmt.Printf("%.1f %.1f\n", rel.X, rel.Y)
	// Output: 0.0 100.0
}
