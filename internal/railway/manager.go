package railway

import (
	"context"
	"fmt"
	"log/slog"
	"math"
	"sync"
	"sync/atomic"
	"time"

	"github.com/tidwall/rtree"

	"github.com/C1200/community-server-railway/internal/clock"
	"github.com/C1200/community-server-railway/internal/logging"
	"github.com/C1200/community-server-railway/internal/metrics"
	"github.com/C1200/community-server-railway/internal/trackmap"
)

// pollTimeout bounds a single feed fetch. Kept at the trackmap client's own
// request timeout so a hung poll resolves well before the next tick.
const pollTimeout = 10 * time.Second

// Manager owns the resolved entity graph: the station set, the route
// registry, the train resolver with its cache, and the latest live train
// snapshot. It refreshes the static side on a slow cadence and polls the
// live train feed on a fast one.
type Manager struct {
	config  Config
	client  *trackmap.Client
	clock   clock.Clock
	metrics *metrics.Metrics
	cache   *TrainCache

	// staticMutex guards the station set, registry, resolver, and spatial
	// index, which are swapped together on refresh.
	staticMutex  sync.RWMutex
	stations     []Station
	stationsByID map[string]int
	stationIndex *rtree.RTreeG[Station]
	registry     *Registry
	resolver     *TrainResolver

	// realTimeMutex guards the latest resolved train snapshot.
	realTimeMutex sync.RWMutex
	trains        []Train
	lastPoll      time.Time

	// pollInFlight rejects overlapping polls so a slow fetch can never
	// finish after a newer one and clobber the cache with stale data.
	pollInFlight atomic.Bool

	isHealthy    atomic.Bool
	shutdownChan chan struct{}
	shutdownOnce sync.Once
	wg           sync.WaitGroup
}

// InitManager builds a Manager, performs the initial network snapshot fetch
// and registry construction (fatal on failure), and starts the background
// poll and refresh loops. Call Shutdown to stop them.
func InitManager(config Config, clk clock.Clock, m *metrics.Metrics) (*Manager, error) {
	config.ApplyDefaults()

	manager := &Manager{
		config:       config,
		client:       trackmap.NewClient(config.TrackmapURL),
		clock:        clk,
		metrics:      m,
		cache:        NewTrainCache(),
		shutdownChan: make(chan struct{}),
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	if err := manager.RefreshStatic(ctx); err != nil {
		return nil, fmt.Errorf("initial network snapshot load failed: %w", err)
	}

	manager.wg.Add(2)
	go manager.pollTrainsPeriodically()
	go manager.refreshStaticPeriodically()

	return manager, nil
}

// Shutdown stops the background loops and waits for them to exit.
// Safe to call multiple times.
func (manager *Manager) Shutdown() {
	manager.shutdownOnce.Do(func() {
		close(manager.shutdownChan)
	})
	manager.wg.Wait()
}

// IsHealthy reports whether the static entity graph has been built.
func (manager *Manager) IsHealthy() bool {
	return manager.isHealthy.Load()
}

// RefreshStatic fetches the network snapshot, resolves stations, rebuilds
// the route registry, resolver, and spatial index, and swaps them in
// atomically. On any failure the previous graph stays in service.
func (manager *Manager) RefreshStatic(ctx context.Context) error {
	logger := logging.FromContext(ctx).With(slog.String("component", "railway_static"))

	network, err := manager.client.Network(ctx)
	if err != nil {
		return err
	}

	stations := ResolveStations(network.Stations, manager.config.Groups,
		manager.config.TrackedDimension, manager.config.DropUngrouped)

	registry, err := NewRegistry(manager.config.Routes, stations)
	if err != nil {
		return err
	}

	byID := make(map[string]int, len(stations))
	index := &rtree.RTreeG[Station]{}
	for i, station := range stations {
		if _, exists := byID[station.ID]; !exists {
			byID[station.ID] = i
		}
		point := [2]float64(station.Location)
		index.Insert(point, point, station)
	}

	resolver := NewTrainResolver(manager.config.TrackedDimension,
		manager.config.Liveries, registry, manager.cache, manager.clock)

	manager.staticMutex.Lock()
	manager.stations = stations
	manager.stationsByID = byID
	manager.stationIndex = index
	manager.registry = registry
	manager.resolver = resolver
	manager.staticMutex.Unlock()

	manager.isHealthy.Store(true)
	if manager.metrics != nil {
		manager.metrics.StationsResolved.Set(float64(len(stations)))
	}

	if manager.config.Verbose {
		logging.LogOperation(logger, "network_snapshot_resolved",
			slog.Int("raw_stations", len(network.Stations)),
			slog.Int("stations", len(stations)),
			slog.Int("routes", len(registry.GetAll())))
	}
	return nil
}

// PollTrains fetches the live train snapshot, resolves it through the cache,
// and publishes the result. A poll already in flight causes this one to be
// skipped; a fetch failure leaves the previous snapshot in place.
func (manager *Manager) PollTrains(ctx context.Context) error {
	logger := logging.FromContext(ctx).With(slog.String("component", "train_poller"))

	if !manager.pollInFlight.CompareAndSwap(false, true) {
		if manager.metrics != nil {
			manager.metrics.TrainPollsTotal.WithLabelValues(metrics.PollSkipped).Inc()
		}
		logging.LogOperation(logger, "train_poll_skipped_previous_in_flight")
		return nil
	}
	defer manager.pollInFlight.Store(false)

	start := time.Now()
	snapshot, err := manager.client.Trains(ctx)
	if err != nil {
		if manager.metrics != nil {
			manager.metrics.TrainPollsTotal.WithLabelValues(metrics.PollError).Inc()
		}
		return err
	}

	manager.staticMutex.RLock()
	resolver := manager.resolver
	manager.staticMutex.RUnlock()

	trains := resolver.ResolveAll(snapshot.Trains)

	manager.realTimeMutex.Lock()
	manager.trains = trains
	manager.lastPoll = manager.clock.Now()
	manager.realTimeMutex.Unlock()

	if manager.metrics != nil {
		manager.metrics.TrainPollsTotal.WithLabelValues(metrics.PollSuccess).Inc()
		manager.metrics.TrainPollDuration.Observe(time.Since(start).Seconds())
		manager.metrics.TrainsTracked.Set(float64(len(trains)))
		manager.metrics.TrainsCached.Set(float64(manager.cache.Len()))
	}
	return nil
}

func (manager *Manager) pollTrainsPeriodically() {
	defer manager.wg.Done()

	logger := slog.Default().With(slog.String("component", "train_poller"))

	ticker := time.NewTicker(manager.config.PollInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			ctx, cancel := context.WithTimeout(context.Background(), pollTimeout)
			ctx = logging.WithLogger(ctx, logger)
			if err := manager.PollTrains(ctx); err != nil {
				logging.LogError(logger, "Error polling live train feed", err,
					slog.String("url", manager.config.TrackmapURL))
			}
			cancel()
		case <-manager.shutdownChan:
			logging.LogOperation(logger, "shutting_down_train_polling")
			return
		}
	}
}

func (manager *Manager) refreshStaticPeriodically() {
	defer manager.wg.Done()

	logger := slog.Default().With(slog.String("component", "railway_static"))

	ticker := time.NewTicker(manager.config.StationRefreshInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
			ctx = logging.WithLogger(ctx, logger)
			if err := manager.RefreshStatic(ctx); err != nil {
				logging.LogError(logger, "Error refreshing network snapshot", err,
					slog.String("url", manager.config.TrackmapURL))
			}
			cancel()
		case <-manager.shutdownChan:
			logging.LogOperation(logger, "shutting_down_static_refresh")
			return
		}
	}
}

// GetStations returns the resolved station set in first-encounter order.
func (manager *Manager) GetStations() []Station {
	manager.staticMutex.RLock()
	defer manager.staticMutex.RUnlock()
	return manager.stations
}

// GetStationByID returns the station with the given slug id.
func (manager *Manager) GetStationByID(id string) (Station, bool) {
	manager.staticMutex.RLock()
	defer manager.staticMutex.RUnlock()
	i, ok := manager.stationsByID[id]
	if !ok {
		return Station{}, false
	}
	return manager.stations[i], true
}

// GetStationsForLocation returns the stations within radius blocks of the
// given world x/z position, searched through the spatial index.
func (manager *Manager) GetStationsForLocation(x, z, radius float64) []Station {
	manager.staticMutex.RLock()
	defer manager.staticMutex.RUnlock()

	if manager.stationIndex == nil || radius < 0 {
		return nil
	}

	min := [2]float64{z - radius, x - radius}
	max := [2]float64{z + radius, x + radius}

	var matches []Station
	manager.stationIndex.Search(min, max, func(_, _ [2]float64, station Station) bool {
		dx := station.Location.WorldX() - x
		dz := station.Location.WorldZ() - z
		if math.Sqrt(dx*dx+dz*dz) <= radius {
			matches = append(matches, station)
		}
		return true
	})
	return matches
}

// Registry returns the current route registry.
func (manager *Manager) Registry() *Registry {
	manager.staticMutex.RLock()
	defer manager.staticMutex.RUnlock()
	return manager.registry
}

// GetTrains returns the latest resolved train snapshot in feed order.
func (manager *Manager) GetTrains() []Train {
	manager.realTimeMutex.RLock()
	defer manager.realTimeMutex.RUnlock()
	return manager.trains
}

// LastPoll returns the time of the last successful train poll, or the zero
// time if none has completed yet.
func (manager *Manager) LastPoll() time.Time {
	manager.realTimeMutex.RLock()
	defer manager.realTimeMutex.RUnlock()
	return manager.lastPoll
}

// GetTrainByIDPrefix returns the unique cached train whose id starts with
// the given prefix. Ambiguous prefixes report not found.
func (manager *Manager) GetTrainByIDPrefix(prefix string) (Train, bool) {
	return manager.cache.FindByIDPrefix(prefix)
}

// LiveryCSS returns the stylesheet generated from the livery table.
func (manager *Manager) LiveryCSS() string {
	return LiveryCSS(manager.config.Liveries)
}
