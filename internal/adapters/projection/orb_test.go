package projection

import (
	"errors"
	"testing"

	"github.com/paulmach/orb"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/samirrijal/geoframe/internal/core/domain"
	"github.com/samirrijal/geoframe/internal/core/ports"
)

func TestProjectForward(t *testing.T) {
	p := New()

	merc, err := p.Project(ports.SystemWGS84, ports.SystemGoogle, orb.Point{10, 20})
	require.NoError(t, err)

	assert.InDelta(t, 1.1131949077777779e+06, merc[0], 1e-6)
	assert.InDelta(t, 2.2730309266712805e+06, merc[1], 1e-6)
}

func TestProjectInverse(t *testing.T) {
	p := New()

	wgs, err := p.Project(ports.SystemGoogle, ports.SystemWGS84, orb.Point{1.1131949077777779e+06, 2.2730309266712805e+06})
	require.NoError(t, err)

	assert.InDelta(t, 10.0, wgs[0], 1e-7)
	assert.InDelta(t, 20.0, wgs[1], 1e-7)
}

func TestProjectAliases(t *testing.T) {
	p := New()
	in := orb.Point{73.119817, 55.098425}

	want, err := p.Project("WGS84", "GOOGLE", in)
	require.NoError(t, err)

	for _, name := range []string{"EPSG:3857", "epsg:900913", "EPSG:102113"} {
		got, err := p.Project("EPSG:4326", name, in)
		require.NoError(t, err, name)
		assert.Equal(t, want, got, name)
	}
}

func TestProjectSameSystem(t *testing.T) {
	p := New()
	in := orb.Point{12.5, -4}

	got, err := p.Project("GOOGLE", "EPSG:3857", in)
	require.NoError(t, err)
	assert.Equal(t, in, got)
}

func TestProjectUnknownSystem(t *testing.T) {
	p := New()

	_, err := p.Project("WGS84", "EPSG:2056", orb.Point{8, 47})
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrInvalidArgument))

	var argErr *domain.ArgumentError
	require.True(t, errors.As(err, &argErr))
	assert.Equal(t, "system", argErr.Field)
}

func TestKnown(t *testing.T) {
	assert.True(t, Known("google"))
	assert.True(t, Known("WGS84"))
	assert.False(t, Known("LV95"))
}
