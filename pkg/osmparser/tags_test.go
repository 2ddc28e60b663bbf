package osmparser

import (
	"math"
	"testing"

	"github.com/lintang-b-s/osmrouter/pkg"
	"github.com/paulmach/osm"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseMaxSpeedMph(t *testing.T) {
	testCases := []struct {
		value  string
		want   float64
		wantOk bool
	}{
		{value: "30 mph", want: 30, wantOk: true},
		{value: "30mph", want: 30, wantOk: true},
		{value: "80 km/h", want: 80 / pkg.KM_PER_MILE, wantOk: true},
		{value: "80", want: 80 / pkg.KM_PER_MILE, wantOk: true},
		{value: "10 knots", want: 10 * pkg.KM_PER_KNOT / pkg.KM_PER_MILE, wantOk: true},
		{value: "50;30", want: 50 / pkg.KM_PER_MILE, wantOk: true},
		{value: "signals", wantOk: false},
		{value: "none", wantOk: false},
		{value: "", wantOk: false},
	}

	for _, tt := range testCases {
		t.Run(tt.value, func(t *testing.T) {
			got, ok := parseMaxSpeedMph(tt.value)
			assert.Equal(t, tt.wantOk, ok)
			if tt.wantOk {
				assert.InDelta(t, tt.want, got, 1e-9)
			}
		})
	}
}

func TestParseOsmWayTags(t *testing.T) {
	testCases := []struct {
		name string
		tags osm.Tags
		want WayTags
	}{
		{
			name: "primary with mph maxspeed",
			tags: osm.Tags{{Key: "highway", Value: "primary"}, {Key: "maxspeed", Value: "40 mph"}},
			want: NewWayTags(pkg.PRIMARY, 40, false),
		},
		{
			name: "literal oneway rule",
			tags: osm.Tags{{Key: "highway", Value: "motorway"}, {Key: "oneway", Value: "yes"}},
			want: NewWayTags(pkg.MOTORWAY, 0, true),
		},
		{
			name: "oneway=1 is not one-way",
			tags: osm.Tags{{Key: "highway", Value: "trunk"}, {Key: "oneway", Value: "1"}},
			want: NewWayTags(pkg.TRUNK, 0, false),
		},
		{
			name: "unparseable maxspeed falls back to the default",
			tags: osm.Tags{{Key: "highway", Value: "residential"}, {Key: "maxspeed", Value: "walk"}},
			want: NewWayTags(pkg.RESIDENTIAL, 0, false),
		},
		{
			name: "zero maxspeed falls back to the default",
			tags: osm.Tags{{Key: "highway", Value: "residential"}, {Key: "maxspeed", Value: "0"}},
			want: NewWayTags(pkg.RESIDENTIAL, 0, false),
		},
		{
			name: "infinite maxspeed falls back to the default",
			tags: osm.Tags{{Key: "highway", Value: "residential"}, {Key: "maxspeed", Value: "Inf mph"}},
			want: NewWayTags(pkg.RESIDENTIAL, 0, false),
		},
		{
			name: "NaN maxspeed falls back to the default",
			tags: osm.Tags{{Key: "highway", Value: "residential"}, {Key: "maxspeed", Value: "NaN"}},
			want: NewWayTags(pkg.RESIDENTIAL, 0, false),
		},
		{
			name: "footway is not routable",
			tags: osm.Tags{{Key: "highway", Value: "footway"}},
			want: NewWayTags(pkg.UNKNOWN, 0, false),
		},
		{
			name: "no highway tag",
			tags: osm.Tags{{Key: "building", Value: "yes"}},
			want: NewWayTags(pkg.UNKNOWN, 0, false),
		},
	}

	for _, tt := range testCases {
		t.Run(tt.name, func(t *testing.T) {
			got := ParseOsmWayTags(tt.tags)
			assert.Equal(t, tt.want.Highway, got.Highway)
			assert.Equal(t, tt.want.OneWay, got.OneWay)
			assert.InDelta(t, tt.want.MaxSpeedMph, got.MaxSpeedMph, 1e-9)
		})
	}
}

func TestParseRecordTags(t *testing.T) {
	wt, err := parseRecordTags(map[string]any{"highway": "secondary", "maxspeed_mph": 42.0, "oneway": "yes"})
	require.NoError(t, err)
	assert.Equal(t, NewWayTags(pkg.SECONDARY, 42, true), wt)
	assert.Equal(t, 42.0, wt.SpeedMph())

	wt, err = parseRecordTags(map[string]any{"highway": "secondary", "maxspeed_mph": "17"})
	require.NoError(t, err)
	assert.Equal(t, 17.0, wt.MaxSpeedMph)

	wt, err = parseRecordTags(map[string]any{"highway": "living_street"})
	require.NoError(t, err)
	assert.Equal(t, 10.0, wt.SpeedMph())

	_, err = parseRecordTags(map[string]any{"highway": "primary", "maxspeed_mph": 0.0})
	assert.ErrorIs(t, err, ErrInvalidSpeed)

	for _, bad := range []any{"fast", "NaN", "Inf", "-Inf", "-3", math.Inf(1), math.NaN()} {
		_, err = parseRecordTags(map[string]any{"highway": "primary", "maxspeed_mph": bad})
		assert.ErrorIs(t, err, ErrInvalidSpeed, "maxspeed_mph %v", bad)
	}
}
