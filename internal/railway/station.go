package railway

import (
	"github.com/C1200/community-server-railway/internal/geom"
	"github.com/C1200/community-server-railway/internal/trackmap"
)

// Station is one or more raw network stops merged under a logical name.
// Name is the natural key for route membership; ID is derived from it.
type Station struct {
	ID       string     `json:"id"`
	Name     string     `json:"name"`
	Location geom.Point `json:"location"`
}

// NewStation builds a Station whose location is the centroid of the given
// world points.
func NewStation(name string, points []geom.Point) Station {
	return Station{
		ID:       Slug(name),
		Name:     name,
		Location: geom.Centroid(points),
	}
}

// ungroupedKeyPrefix namespaces synthesized singleton groups so a raw
// station name can never collide with a configured group of the same name
// in the accumulation map. The prefix never appears in output.
const ungroupedKeyPrefix = "ungrouped:"

// ResolveStations turns raw network station records into logical Stations.
//
// Records outside the tracked dimension are discarded. Each remaining record
// is assigned to the first configured group whose Includes list contains its
// name; overlapping groups are a configuration hazard resolved by that
// first-match rule, not detected at runtime. Records matched by no group
// become singleton stations named after themselves, unless dropUngrouped is
// set, in which case they are silently discarded. Output order is the
// first-encounter order of groups.
func ResolveStations(records []trackmap.Station, groups []StationGroupConfig, dimension string, dropUngrouped bool) []Station {
	type accumulator struct {
		name   string
		points []geom.Point
	}

	var order []string
	byKey := make(map[string]*accumulator)

	appendPoint := func(key, name string, point geom.Point) {
		acc, ok := byKey[key]
		if !ok {
			acc = &accumulator{name: name}
			byKey[key] = acc
			order = append(order, key)
		}
		acc.points = append(acc.points, point)
	}

	for _, record := range records {
		if record.Dimension != dimension {
			continue
		}

		point := geom.MapXZ(record.Location.X, record.Location.Z)

		if group, ok := findGroup(groups, record.Name); ok {
			appendPoint(group.Name, group.Name, point)
			continue
		}

		if dropUngrouped {
			continue
		}
		appendPoint(ungroupedKeyPrefix+record.Name, record.Name, point)
	}

	stations := make([]Station, 0, len(order))
	for _, key := range order {
		acc := byKey[key]
		stations = append(stations, NewStation(acc.name, acc.points))
	}
	return stations
}

// findGroup returns the first group whose Includes list contains name.
func findGroup(groups []StationGroupConfig, name string) (StationGroupConfig, bool) {
	for _, group := range groups {
		for _, include := range group.Includes {
			if include == name {
				return group, true
			}
		}
	}
	return StationGroupConfig{}, false
}
