package osmparser

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/lintang-b-s/osmrouter/pkg"
	"github.com/paulmach/osm"
)

const (
	ONEWAY_YES = "yes"
)

// ParseOsmWayTags resolves the routing tags of a raw osm way.
// the oneway rule is literal: only "yes" makes a way one-way.
// a maxspeed that can not be read as a positive speed is treated as absent.
func ParseOsmWayTags(tags osm.Tags) WayTags {
	wt := WayTags{
		Highway: pkg.GetHighwayType(tags.Find("highway")),
		OneWay:  tags.Find("oneway") == ONEWAY_YES,
	}
	if speed, ok := parseMaxSpeedMph(tags.Find("maxspeed")); ok && isValidSpeed(speed) {
		wt.MaxSpeedMph = speed
	}
	return wt
}

// isValidSpeed. a usable edge speed is positive and finite.
func isValidSpeed(speed float64) bool {
	return speed > 0 && !math.IsInf(speed, 0)
}

// parseMaxSpeedMph. https://wiki.openstreetmap.org/wiki/Key:maxspeed
// "30 mph", "50 km/h", "50 kmh", "10 knots" or a bare number (km/h). multiple values ("50;30") use the first one.
func parseMaxSpeedMph(value string) (float64, bool) {
	value = strings.TrimSpace(value)
	if value == "" {
		return 0, false
	}
	if i := strings.IndexByte(value, ';'); i >= 0 {
		value = strings.TrimSpace(value[:i])
	}

	factor := 1 / pkg.KM_PER_MILE
	switch {
	case strings.HasSuffix(value, "mph"):
		value = strings.TrimSuffix(value, "mph")
		factor = 1
	case strings.HasSuffix(value, "km/h"):
		value = strings.TrimSuffix(value, "km/h")
	case strings.HasSuffix(value, "kmh"):
		value = strings.TrimSuffix(value, "kmh")
	case strings.HasSuffix(value, "knots"):
		value = strings.TrimSuffix(value, "knots")
		factor = pkg.KM_PER_KNOT / pkg.KM_PER_MILE
	}

	speed, err := strconv.ParseFloat(strings.TrimSpace(value), 64)
	if err != nil {
		return 0, false
	}
	return speed * factor, true
}

// parseRecordTags resolves the tags of a flat way record: string or numeric values,
// maxspeed already in mph under "maxspeed_mph".
func parseRecordTags(tags map[string]any) (WayTags, error) {
	wt := WayTags{}

	if hw, ok := tags["highway"].(string); ok {
		wt.Highway = pkg.GetHighwayType(hw)
	} else {
		wt.Highway = pkg.UNKNOWN
	}

	if ow, ok := tags["oneway"].(string); ok {
		wt.OneWay = ow == ONEWAY_YES
	}

	raw, ok := tags["maxspeed_mph"]
	if !ok || raw == nil {
		return wt, nil
	}

	var speed float64
	switch v := raw.(type) {
	case float64:
		speed = v
	case string:
		parsed, err := strconv.ParseFloat(strings.TrimSpace(v), 64)
		if err != nil {
			return wt, fmt.Errorf("maxspeed_mph %q: %w", v, ErrInvalidSpeed)
		}
		speed = parsed
	default:
		return wt, fmt.Errorf("maxspeed_mph %v: %w", v, ErrInvalidSpeed)
	}
	if !isValidSpeed(speed) {
		return wt, fmt.Errorf("maxspeed_mph %v: %w", speed, ErrInvalidSpeed)
	}
	wt.MaxSpeedMph = speed
	return wt, nil
}
