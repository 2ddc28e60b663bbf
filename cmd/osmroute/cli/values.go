package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/lintang-b-s/osmrouter/pkg"
	"github.com/lintang-b-s/osmrouter/pkg/geo"
	"github.com/spf13/pflag"
)

// -- pkg.CostModel Value
type costModelValue struct {
	value *pkg.CostModel
}

func NewCostModelValue(def pkg.CostModel, p *pkg.CostModel) pflag.Value {
	*p = def
	return &costModelValue{value: p}
}

func (c *costModelValue) Set(val string) error {
	model, ok := pkg.ParseCostModel(strings.ToLower(val))
	if !ok {
		return fmt.Errorf("unknown cost model %q, want distance or time", val)
	}
	*c.value = model
	return nil
}

func (c *costModelValue) Type() string {
	return "mode"
}

func (c *costModelValue) String() string {
	return c.value.String()
}

// -- geo.Coordinate Value, "lat,lon"
type coordinateValue struct {
	value *geo.Coordinate
	set   bool
}

func NewCoordinateValue(p *geo.Coordinate) pflag.Value {
	return &coordinateValue{value: p}
}

func ParseCoordinate(val string) (geo.Coordinate, error) {
	latStr, lonStr, ok := strings.Cut(val, ",")
	if !ok {
		return geo.Coordinate{}, fmt.Errorf("coordinate %q must be lat,lon", val)
	}
	lat, err := strconv.ParseFloat(strings.TrimSpace(latStr), 64)
	if err != nil {
		return geo.Coordinate{}, fmt.Errorf("invalid latitude %q: %w", latStr, err)
	}
	lon, err := strconv.ParseFloat(strings.TrimSpace(lonStr), 64)
	if err != nil {
		return geo.Coordinate{}, fmt.Errorf("invalid longitude %q: %w", lonStr, err)
	}
	if !(lat >= -90 && lat <= 90 && lon >= -180 && lon <= 180) {
		return geo.Coordinate{}, fmt.Errorf("coordinate %q out of range", val)
	}
	return geo.NewCoordinate(lat, lon), nil
}

func (c *coordinateValue) Set(val string) error {
	coord, err := ParseCoordinate(val)
	if err != nil {
		return err
	}
	*c.value = coord
	c.set = true
	return nil
}

func (c *coordinateValue) Type() string {
	return "lat,lon"
}

func (c *coordinateValue) String() string {
	if !c.set {
		return ""
	}
	return strconv.FormatFloat(c.value.Lat, 'f', -1, 64) + "," + strconv.FormatFloat(c.value.Lon, 'f', -1, 64)
}
