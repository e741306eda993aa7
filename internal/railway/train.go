package railway

import (
	"github.com/C1200/community-server-railway/internal/clock"
	"github.com/C1200/community-server-railway/internal/geom"
	"github.com/C1200/community-server-railway/internal/trackmap"
)

// Train is a live vehicle observation merged with cached state and static
// metadata. Location, Angle, and Route are nil when unknown.
type Train struct {
	ID        string
	Name      string
	Carriages int
	Stopped   bool
	// LastUpdate is the Unix-millisecond timestamp of the last poll that
	// derived a fresh location. It does not advance when position data is
	// carried over from the cache.
	LastUpdate int64
	Livery     *int
	Location   *geom.Point
	Angle      *float64
	Route      *Route
}

// TrainResolver turns raw train snapshots into Trains, merging each with the
// cached result of the previous poll.
type TrainResolver struct {
	dimension string
	liveries  []LiveryEntry
	registry  *Registry
	cache     *TrainCache
	clock     clock.Clock
}

// NewTrainResolver creates a resolver over the given registry and cache.
func NewTrainResolver(dimension string, liveries []LiveryEntry, registry *Registry, cache *TrainCache, clk clock.Clock) *TrainResolver {
	return &TrainResolver{
		dimension: dimension,
		liveries:  liveries,
		registry:  registry,
		cache:     cache,
		clock:     clk,
	}
}

// ResolveAll resolves a snapshot batch in input order, updating the cache as
// a side effect. A malformed record degrades that one train to cache
// fallback; it never fails the batch.
//
// Resolution reads then overwrites the cache entry per train id. Calls for
// the same id must not run concurrently: the poll loop is the only caller
// and polls never overlap (the manager skips a tick while one is in flight).
func (res *TrainResolver) ResolveAll(rawTrains []trackmap.Train) []Train {
	trains := make([]Train, 0, len(rawTrains))
	for _, raw := range rawTrains {
		trains = append(trains, res.resolve(raw))
	}
	return trains
}

func (res *TrainResolver) resolve(raw trackmap.Train) Train {
	cached, hasCached := res.cache.Get(raw.ID)

	train := Train{
		ID:         raw.ID,
		Name:       raw.Name,
		Carriages:  len(raw.Cars),
		Stopped:    raw.Stopped,
		LastUpdate: res.clock.NowUnixMilli(),
	}

	if entry, ok := findLiveryEntry(res.liveries, raw.ID); ok {
		train.Carriages -= entry.CarriageOffset
		key := entry.Key
		train.Livery = &key
	}

	if head, tail, ok := res.leadBogies(raw); ok {
		location := geom.MapXZ(head.Location.X, head.Location.Z)
		train.Location = &location

		// Recomputing a stopped train's heading from near-zero displacement
		// jitters, so a cached angle wins while the train is stopped.
		if raw.Stopped && hasCached && cached.Angle != nil {
			train.Angle = cached.Angle
		} else {
			angle := geom.Heading(
				geom.MapXZ(head.Location.X, head.Location.Z),
				geom.MapXZ(tail.Location.X, tail.Location.Z),
			)
			train.Angle = &angle
		}
	} else if hasCached && cached.Location != nil {
		// Coast on the previous poll's position rather than disappearing.
		train.Location = cached.Location
		train.Angle = cached.Angle
		train.LastUpdate = cached.LastUpdate
	}

	if route, ok := res.registry.GetByTrain(raw.ID); ok {
		train.Route = &route
	}

	res.cache.Set(train.ID, train)
	return train
}

// leadBogies returns the head and tail coupling points of the lead car, in
// travel order, when a position is derivable this poll: the lead car must
// carry both bogies and sit in the tracked dimension.
func (res *TrainResolver) leadBogies(raw trackmap.Train) (head, tail *trackmap.Bogie, ok bool) {
	if len(raw.Cars) == 0 {
		return nil, nil, false
	}

	car := raw.Cars[0]
	if raw.Backwards {
		car = raw.Cars[len(raw.Cars)-1]
	}

	if car.Leading == nil || car.Trailing == nil || car.Leading.Dimension != res.dimension {
		return nil, nil, false
	}

	if raw.Backwards {
		return car.Trailing, car.Leading, true
	}
	return car.Leading, car.Trailing, true
}
