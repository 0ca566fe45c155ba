package usecases_test

import (
	"errors"
	"math"
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
	"github.com/paulmach/orb"

	"github.com/samirrijal/geoframe/internal/adapters/projection"
	"github.com/samirrijal/geoframe/internal/core/domain"
	"github.com/samirrijal/geoframe/internal/core/ports"
	"github.com/samirrijal/geoframe/internal/core/usecases"
)

// --- Mock Projector ---

type mockProjector struct {
	projectFn func(from, to string, p orb.Point) (orb.Point, error)
	calls     int
}

func (m *mockProjector) Project(from, to string, p orb.Point) (orb.Point, error) {
	m.calls++
	if m.projectFn != nil {
		return m.projectFn(from, to, p)
	}
	return p, nil
}

func newRealService() *usecases.ProjectionService {
	return usecases.NewProjectionService(projection.New(), ports.SystemGoogle)
}

func assertArgumentError(t *testing.T, err error, field, msg string) {
	t.Helper()
	if err == nil {
		t.Fatalf("expected error for field %q, got nil", field)
	}
	if !errors.Is(err, domain.ErrInvalidArgument) {
		t.Fatalf("expected ErrInvalidArgument, got %v", err)
	}
	var argErr *domain.ArgumentError
	if !errors.As(err, &argErr) {
		t.Fatalf("expected *domain.ArgumentError, got %T", err)
	}
	if argErr.Field != field {
		t.Errorf("expected field %q, got %q", field, argErr.Field)
	}
	if err.Error() != msg {
		t.Errorf("expected message %q, got %q", msg, err.Error())
	}
}

// --- Tests ---

func TestToWGS_Bounds(t *testing.T) {
	svc := newRealService()

	tests := []struct {
		name  string
		in    domain.FlatPoint
		field string
		msg   string
	}{
		{"x below zero", domain.FlatPoint{X: -1, Y: 0}, "x", "`coordinates.x` out of bounds"},
		{"x at upper bound", domain.FlatPoint{X: 1e7, Y: 0}, "x", "`coordinates.x` out of bounds"},
		{"y below zero", domain.FlatPoint{X: 0, Y: -0.5}, "y", "`coordinates.y` out of bounds"},
		{"y at upper bound", domain.FlatPoint{X: 0, Y: 1e7}, "y", "`coordinates.y` out of bounds"},
		{"x checked before y", domain.FlatPoint{X: -1, Y: -1}, "x", "`coordinates.x` out of bounds"},
		{"nan", domain.FlatPoint{X: math.NaN(), Y: 1}, "coordinates", "missing or invalid parameter `coordinates`"},
		{"shape checked before bounds", domain.FlatPoint{X: -5, Y: math.NaN()}, "coordinates", "missing or invalid parameter `coordinates`"},
		{"infinite x", domain.FlatPoint{X: math.Inf(1), Y: 0}, "x", "`coordinates.x` out of bounds"},
		{"negative infinite y", domain.FlatPoint{X: 0, Y: math.Inf(-1)}, "y", "`coordinates.y` out of bounds"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.ToWGS(tt.in)
			assertArgumentError(t, err, tt.field, tt.msg)
		})
	}
}

func TestToWGS_AcceptsLowerBound(t *testing.T) {
	svc := newRealService()

	got, err := svc.ToWGS(domain.FlatPoint{X: 0, Y: 0})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if math.Abs(got.Longitude) > 1e-12 || math.Abs(got.Latitude) > 1e-12 {
		t.Errorf("expected origin, got %+v", got)
	}
}

func TestToFlat_Bounds(t *testing.T) {
	svc := newRealService()

	tests := []struct {
		name  string
		in    domain.GeoPoint
		field string
		msg   string
	}{
		{"longitude above", domain.GeoPoint{Longitude: 181, Latitude: 0}, "longitude", "`coordinates.longitude` out of bounds"},
		{"longitude below", domain.GeoPoint{Longitude: -180.5, Latitude: 0}, "longitude", "`coordinates.longitude` out of bounds"},
		{"latitude below", domain.GeoPoint{Longitude: 0, Latitude: -361}, "latitude", "`coordinates.latitude` out of bounds"},
		{"latitude above", domain.GeoPoint{Longitude: 0, Latitude: 360.01}, "latitude", "`coordinates.latitude` out of bounds"},
		{"infinite latitude", domain.GeoPoint{Longitude: 0, Latitude: math.Inf(-1)}, "latitude", "`coordinates.latitude` out of bounds"},
		{"infinite longitude", domain.GeoPoint{Longitude: math.Inf(1), Latitude: 0}, "longitude", "`coordinates.longitude` out of bounds"},
		{"nan latitude", domain.GeoPoint{Longitude: 0, Latitude: math.NaN()}, "coordinates", "missing or invalid parameter `coordinates`"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.ToFlat(tt.in)
			assertArgumentError(t, err, tt.field, tt.msg)
		})
	}
}

func TestToFlat_WideLatitudeAccepted(t *testing.T) {
	mock := &mockProjector{}
	svc := usecases.NewProjectionService(mock, ports.SystemGoogle)

	if _, err := svc.ToFlat(domain.GeoPoint{Longitude: 180, Latitude: -360}); err != nil {
		t.Fatalf("expected latitude -360 to be accepted, got %v", err)
	}
	if mock.calls != 1 {
		t.Errorf("expected projector to be called once, got %d", mock.calls)
	}
}

func TestToFlat_RejectsWithoutCallingProjector(t *testing.T) {
	mock := &mockProjector{}
	svc := usecases.NewProjectionService(mock, ports.SystemGoogle)

	_, _ = svc.ToFlat(domain.GeoPoint{Longitude: 500})
	_, _ = svc.ToWGS(domain.FlatPoint{X: -1})
	if mock.calls != 0 {
		t.Errorf("expected no projector calls, got %d", mock.calls)
	}
}

func TestToFlat_SystemNames(t *testing.T) {
	var gotFrom, gotTo string
	mock := &mockProjector{
		projectFn: func(from, to string, p orb.Point) (orb.Point, error) {
			gotFrom, gotTo = from, to
			return p, nil
		},
	}
	svc := usecases.NewProjectionService(mock, "EPSG:3857")

	if _, err := svc.ToFlat(domain.GeoPoint{Longitude: 1, Latitude: 2}); err != nil {
		t.Fatal(err)
	}
	if gotFrom != ports.SystemWGS84 || gotTo != "EPSG:3857" {
		t.Errorf("expected WGS84 -> EPSG:3857, got %s -> %s", gotFrom, gotTo)
	}

	if _, err := svc.ToWGS(domain.FlatPoint{X: 1, Y: 2}); err != nil {
		t.Fatal(err)
	}
	if gotFrom != "EPSG:3857" || gotTo != ports.SystemWGS84 {
		t.Errorf("expected EPSG:3857 -> WGS84, got %s -> %s", gotFrom, gotTo)
	}
}

func TestNewProjectionService_DefaultSystem(t *testing.T) {
	svc := usecases.NewProjectionService(&mockProjector{}, "")
	if svc.PlanarSystem() != ports.SystemGoogle {
		t.Errorf("expected %s, got %s", ports.SystemGoogle, svc.PlanarSystem())
	}
}

func TestToFlat_ProjectorErrorPropagates(t *testing.T) {
	boom := errors.New("projection failed")
	svc := usecases.NewProjectionService(&mockProjector{
		projectFn: func(from, to string, p orb.Point) (orb.Point, error) {
			return orb.Point{}, boom
		},
	}, ports.SystemGoogle)

	_, err := svc.ToFlat(domain.GeoPoint{Longitude: 10, Latitude: 10})
	if !errors.Is(err, boom) {
		t.Fatalf("expected wrapped projector error, got %v", err)
	}
}

func TestToFlat_UnknownPlanarSystem(t *testing.T) {
	svc := usecases.NewProjectionService(projection.New(), "LV95")

	_, err := svc.ToFlat(domain.GeoPoint{Longitude: 8, Latitude: 47})
	if !errors.Is(err, domain.ErrInvalidArgument) {
		t.Fatalf("expected ErrInvalidArgument, got %v", err)
	}
}

// Both validators accept lon ∈ [0, ~89.8] and lat ∈ [0, ~66.5] for Web Mercator.
func TestProjectionRoundTrip(t *testing.T) {
	svc := newRealService()

	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 200
	properties := gopter.NewProperties(parameters)

	properties.Property("ToWGS(ToFlat(p)) == p", prop.ForAll(
		func(lon, lat float64) bool {
			flat, err := svc.ToFlat(domain.GeoPoint{Longitude: lon, Latitude: lat})
			if err != nil {
				return false
			}
			back, err := svc.ToWGS(flat)
			if err != nil {
				return false
			}
			return math.Abs(back.Longitude-lon) < 1e-6 && math.Abs(back.Latitude-lat) < 1e-6
		},
		gen.Float64Range(0, 89),
		gen.Float64Range(0, 66),
	))

	properties.TestingRun(t)
}
