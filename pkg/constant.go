package pkg

const (
	INF_WEIGHT float64 = 1e15

	// KM_PER_MILE converts the speed units found in raw osm maxspeed tags.
	KM_PER_MILE   = 1.609344
	KM_PER_KNOT   = 1.852
	MINUTES_PER_H = 60.0
)

type CostModel uint8

const (
	DISTANCE CostModel = iota
	TIME
)

func (c CostModel) String() string {
	switch c {
	case DISTANCE:
		return "distance"
	case TIME:
		return "time"
	default:
		return "unknown"
	}
}

// ParseCostModel. "" defaults to distance.
func ParseCostModel(s string) (CostModel, bool) {
	switch s {
	case "", "distance", "short", "shortest":
		return DISTANCE, true
	case "time", "fast", "fastest":
		return TIME, true
	default:
		return DISTANCE, false
	}
}

type OsmHighwayType uint8

// enum of routable osm highway types: https://wiki.openstreetmap.org/wiki/Key:highway
const (
	MOTORWAY       OsmHighwayType = 0
	TRUNK          OsmHighwayType = 1
	PRIMARY        OsmHighwayType = 2
	SECONDARY      OsmHighwayType = 3
	TERTIARY       OsmHighwayType = 4
	RESIDENTIAL    OsmHighwayType = 5
	UNCLASSIFIED   OsmHighwayType = 6
	MOTORWAY_LINK  OsmHighwayType = 7
	TRUNK_LINK     OsmHighwayType = 8
	PRIMARY_LINK   OsmHighwayType = 9
	SECONDARY_LINK OsmHighwayType = 10
	TERTIARY_LINK  OsmHighwayType = 11
	LIVING_STREET  OsmHighwayType = 12
	UNKNOWN        OsmHighwayType = 13
)

// DefaultSpeedLimitMph. speed used for a way without an explicit maxspeed. only allowed highway types have an entry.
var DefaultSpeedLimitMph = [...]float64{
	MOTORWAY:       60,
	TRUNK:          45,
	PRIMARY:        35,
	SECONDARY:      30,
	TERTIARY:       25,
	RESIDENTIAL:    25,
	UNCLASSIFIED:   25,
	MOTORWAY_LINK:  30,
	TRUNK_LINK:     30,
	PRIMARY_LINK:   30,
	SECONDARY_LINK: 30,
	TERTIARY_LINK:  25,
	LIVING_STREET:  10,
	UNKNOWN:        0,
}

func GetHighwayType(roadType string) OsmHighwayType {
	switch roadType {
	case "motorway":
		return MOTORWAY
	case "trunk":
		return TRUNK
	case "primary":
		return PRIMARY
	case "secondary":
		return SECONDARY
	case "tertiary":
		return TERTIARY
	case "unclassified":
		return UNCLASSIFIED
	case "residential":
		return RESIDENTIAL
	case "motorway_link":
		return MOTORWAY_LINK
	case "trunk_link":
		return TRUNK_LINK
	case "primary_link":
		return PRIMARY_LINK
	case "secondary_link":
		return SECONDARY_LINK
	case "tertiary_link":
		return TERTIARY_LINK
	case "living_street":
		return LIVING_STREET
	default:
		return UNKNOWN
	}
}

func (h OsmHighwayType) String() string {
	switch h {
	case MOTORWAY:
		return "motorway"
	case TRUNK:
		return "trunk"
	case PRIMARY:
		return "primary"
	case SECONDARY:
		return "secondary"
	case TERTIARY:
		return "tertiary"
	case UNCLASSIFIED:
		return "unclassified"
	case RESIDENTIAL:
		return "residential"
	case MOTORWAY_LINK:
		return "motorway_link"
	case TRUNK_LINK:
		return "trunk_link"
	case PRIMARY_LINK:
		return "primary_link"
	case SECONDARY_LINK:
		return "secondary_link"
	case TERTIARY_LINK:
		return "tertiary_link"
	case LIVING_STREET:
		return "living_street"
	default:
		return "unknown"
	}
}

// IsRoutable. true for highway types on the allow-list.
func (h OsmHighwayType) IsRoutable() bool {
	return h < UNKNOWN
}

func (h OsmHighwayType) DefaultSpeedMph() float64 {
	return DefaultSpeedLimitMph[h]
}
