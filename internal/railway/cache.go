package railway

import (
	"strings"
	"sync"
)

// TrainCache holds the most recently resolved Train per train id. It gives
// resolution hysteresis across polls: a train briefly missing position data
// coasts on its cached state instead of disappearing.
//
// Entries are never evicted. The fleet is small and bounded, so unbounded
// growth is an accepted tradeoff.
type TrainCache struct {
	mu      sync.RWMutex
	entries map[string]Train
}

// NewTrainCache creates an empty cache.
func NewTrainCache() *TrainCache {
	return &TrainCache{entries: make(map[string]Train)}
}

// Get returns the cached train for the exact id.
func (c *TrainCache) Get(id string) (Train, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	train, ok := c.entries[id]
	return train, ok
}

// Set replaces the cache entry for id. Last write wins.
func (c *TrainCache) Set(id string, train Train) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries[id] = train
}

// FindByIDPrefix returns the unique cached train whose id starts with the
// given prefix. Zero or multiple matches both report not found; an ambiguous
// prefix never yields an arbitrary pick.
func (c *TrainCache) FindByIDPrefix(prefix string) (Train, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	var match Train
	found := false
	for id, train := range c.entries {
		if !strings.HasPrefix(id, prefix) {
			continue
		}
		if found {
			return Train{}, false
		}
		match = train
		found = true
	}
	return match, found
}

// Len returns the number of cached trains.
func (c *TrainCache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.entries)
}
