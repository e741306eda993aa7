package railway

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/C1200/community-server-railway/internal/geom"
	"github.com/C1200/community-server-railway/internal/trackmap"
)

func rawStation(name, dimension string, x, z float64) trackmap.Station {
	return trackmap.Station{
		Name:      name,
		Dimension: dimension,
		Location:  trackmap.WorldCoord{X: x, Y: 64, Z: z},
	}
}

func TestResolveStationsGroupsByIncludeList(t *testing.T) {
	groups := []StationGroupConfig{
		{Name: "Central", Includes: []string{"Central North", "Central South"}},
	}
	records := []trackmap.Station{
		rawStation("Central North", DefaultTrackedDimension, 100, -40),
		rawStation("Central South", DefaultTrackedDimension, 200, -80),
	}

	stations := ResolveStations(records, groups, DefaultTrackedDimension, false)

	require.Len(t, stations, 1)
	assert.Equal(t, "Central", stations[0].Name)
	assert.Equal(t, "central", stations[0].ID)
	// Centroid of the two raw points, in map-space (z, x) order.
	assert.InDelta(t, -60, stations[0].Location[0], 1e-9)
	assert.InDelta(t, 150, stations[0].Location[1], 1e-9)
}

func TestResolveStationsCentroidOfManyPoints(t *testing.T) {
	groups := []StationGroupConfig{
		{Name: "Harbor", Includes: []string{"Harbor 1", "Harbor 2", "Harbor 3"}},
	}
	records := []trackmap.Station{
		rawStation("Harbor 1", DefaultTrackedDimension, 0, 0),
		rawStation("Harbor 2", DefaultTrackedDimension, 30, 60),
		rawStation("Harbor 3", DefaultTrackedDimension, -30, 30),
	}

	stations := ResolveStations(records, groups, DefaultTrackedDimension, false)

	require.Len(t, stations, 1)
	assert.InDelta(t, 30, stations[0].Location[0], 1e-9)
	assert.InDelta(t, 0, stations[0].Location[1], 1e-9)
}

func TestResolveStationsFiltersOtherDimensions(t *testing.T) {
	records := []trackmap.Station{
		rawStation("Overworld Stop", DefaultTrackedDimension, 1, 2),
		rawStation("Nether Stop", "minecraft:the_nether", 3, 4),
	}

	stations := ResolveStations(records, nil, DefaultTrackedDimension, false)

	require.Len(t, stations, 1)
	assert.Equal(t, "Overworld Stop", stations[0].Name)
}

func TestResolveStationsUngroupedFlag(t *testing.T) {
	groups := []StationGroupConfig{
		{Name: "Central", Includes: []string{"Central North"}},
	}
	records := []trackmap.Station{
		rawStation("Central North", DefaultTrackedDimension, 0, 0),
		rawStation("Lonely Halt", DefaultTrackedDimension, 10, 10),
	}

	t.Run("KeptAsSingletons", func(t *testing.T) {
		stations := ResolveStations(records, groups, DefaultTrackedDimension, false)

		require.Len(t, stations, 2)
		assert.Equal(t, "Central", stations[0].Name)
		assert.Equal(t, "Lonely Halt", stations[1].Name)
		assert.Equal(t, "lonely-halt", stations[1].ID)
		assert.Equal(t, geom.MapXZ(10, 10), stations[1].Location)
	})

	t.Run("Dropped", func(t *testing.T) {
		stations := ResolveStations(records, groups, DefaultTrackedDimension, true)

		require.Len(t, stations, 1)
		assert.Equal(t, "Central", stations[0].Name)
	})
}

func TestResolveStationsFirstMatchWinsOnOverlappingGroups(t *testing.T) {
	groups := []StationGroupConfig{
		{Name: "First", Includes: []string{"Shared"}},
		{Name: "Second", Includes: []string{"Shared"}},
	}
	records := []trackmap.Station{
		rawStation("Shared", DefaultTrackedDimension, 5, 5),
	}

	stations := ResolveStations(records, groups, DefaultTrackedDimension, false)

	require.Len(t, stations, 1)
	assert.Equal(t, "First", stations[0].Name)
}

func TestResolveStationsOutputFollowsFirstEncounterOrder(t *testing.T) {
	groups := []StationGroupConfig{
		{Name: "Alpha", Includes: []string{"A1", "A2"}},
		{Name: "Beta", Includes: []string{"B1"}},
	}
	records := []trackmap.Station{
		rawStation("B1", DefaultTrackedDimension, 0, 0),
		rawStation("A1", DefaultTrackedDimension, 1, 1),
		rawStation("A2", DefaultTrackedDimension, 2, 2),
	}

	stations := ResolveStations(records, groups, DefaultTrackedDimension, false)

	require.Len(t, stations, 2)
	assert.Equal(t, "Beta", stations[0].Name)
	assert.Equal(t, "Alpha", stations[1].Name)
}

func TestResolveStationsEmptyInput(t *testing.T) {
	stations := ResolveStations(nil, nil, DefaultTrackedDimension, false)
	assert.Empty(t, stations)
}

func TestStationIDIsPureFunctionOfName(t *testing.T) {
	a := NewStation("Central North", []geom.Point{{0, 0}})
	b := NewStation("Central North", []geom.Point{{100, 100}})

	assert.Equal(t, a.ID, b.ID)
}
