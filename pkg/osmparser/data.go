package osmparser

import (
	"errors"

	"github.com/lintang-b-s/osmrouter/pkg"
)

var (
	ErrUnknownNode       = errors.New("way references a node without a node record")
	ErrInvalidSpeed      = errors.New("maxspeed must be positive")
	ErrUnsupportedFormat = errors.New("unsupported map file format")
)

type NodeRecord struct {
	ID  int64   `json:"id"`
	Lat float64 `json:"lat"`
	Lon float64 `json:"lon"`
}

func NewNodeRecord(id int64, lat, lon float64) NodeRecord {
	return NodeRecord{ID: id, Lat: lat, Lon: lon}
}

// WayTags. the only way tags the graph builder consults, resolved when the way is read.
type WayTags struct {
	Highway     pkg.OsmHighwayType
	MaxSpeedMph float64 // 0 = no explicit maxspeed
	OneWay      bool
}

func NewWayTags(highway pkg.OsmHighwayType, maxSpeedMph float64, oneWay bool) WayTags {
	return WayTags{Highway: highway, MaxSpeedMph: maxSpeedMph, OneWay: oneWay}
}

// SpeedMph. explicit maxspeed if present, else the default for the highway type.
func (t WayTags) SpeedMph() float64 {
	if t.MaxSpeedMph != 0 {
		return t.MaxSpeedMph
	}
	return t.Highway.DefaultSpeedMph()
}

type WayRecord struct {
	ID    int64
	Nodes []int64
	Tags  WayTags
}

func NewWayRecord(id int64, nodes []int64, tags WayTags) WayRecord {
	return WayRecord{ID: id, Nodes: nodes, Tags: tags}
}

// BuildStats. counters collected while building, logged once the graph is built.
type BuildStats struct {
	AcceptedWays int
	IgnoredWays  int
	ScannedNodes int
	KeptNodes    int
}
