package railway

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"time"
)

// StationGroupConfig declares one logical station and the raw upstream
// station names it subsumes. Groups are matched in configuration order;
// the first group whose Includes list contains a raw name wins.
type StationGroupConfig struct {
	Name     string   `json:"name"`
	Includes []string `json:"includes"`
}

// RouteConfig declares one rail line. Stations are raw display names that
// must resolve against the station set; Trains lists the upstream train ids
// the route claims.
type RouteConfig struct {
	Name     string   `json:"name"`
	Operator string   `json:"operator"`
	Short    string   `json:"short"`
	Suffix   string   `json:"suffix,omitempty"`
	Color    string   `json:"color"`
	Stations []string `json:"stations"`
	Trains   []string `json:"trains"`
}

// LiveryStyle is the visual part of a livery entry.
type LiveryStyle struct {
	Color  string `json:"color"`
	Text   string `json:"text,omitempty"`
	Stroke string `json:"stroke,omitempty"`
}

// LiveryEntry maps a livery key to styling, a carriage-count offset for
// non-visible utility cars, and the train ids it applies to.
type LiveryEntry struct {
	Key            int          `json:"-"`
	Livery         *LiveryStyle `json:"livery,omitempty"`
	CarriageOffset int          `json:"carriageOffset"`
	Trains         []string     `json:"trains"`
}

// Config holds the domain configuration for the railway manager.
type Config struct {
	// TrackmapURL is the base URL of the Track Map server.
	TrackmapURL string
	// TrackedDimension is the only dimension with meaningful 2D positions.
	TrackedDimension string
	// PollInterval is the live train poll cadence.
	PollInterval time.Duration
	// StationRefreshInterval is the cadence of network snapshot refreshes.
	StationRefreshInterval time.Duration
	// DropUngrouped discards raw stations matched by no configured group
	// instead of synthesizing singleton stations for them.
	DropUngrouped bool
	Verbose       bool

	Groups   []StationGroupConfig
	Routes   []RouteConfig
	Liveries []LiveryEntry
}

// DefaultTrackedDimension is the dimension the map renders.
const DefaultTrackedDimension = "minecraft:overworld"

// ApplyDefaults fills the zero values of cadence and dimension settings.
func (config *Config) ApplyDefaults() {
	if config.TrackedDimension == "" {
		config.TrackedDimension = DefaultTrackedDimension
	}
	if config.PollInterval <= 0 {
		config.PollInterval = 15 * time.Second
	}
	if config.StationRefreshInterval <= 0 {
		config.StationRefreshInterval = time.Hour
	}
}

// LoadConfigTables reads the three configuration tables from dir:
// stations.json (station groups), routes.json, and trains.json (liveries).
// A missing trains.json is allowed; stations and routes are required.
func (config *Config) LoadConfigTables(dir string) error {
	if err := readJSONFile(filepath.Join(dir, "stations.json"), &config.Groups); err != nil {
		return fmt.Errorf("failed to load station groups: %w", err)
	}

	if err := readJSONFile(filepath.Join(dir, "routes.json"), &config.Routes); err != nil {
		return fmt.Errorf("failed to load routes: %w", err)
	}

	liveries, err := loadLiveryTable(filepath.Join(dir, "trains.json"))
	if err != nil {
		if os.IsNotExist(err) {
			config.Liveries = nil
			return nil
		}
		return fmt.Errorf("failed to load liveries: %w", err)
	}
	config.Liveries = liveries
	return nil
}

// loadLiveryTable reads the livery override table. On the wire it is a JSON
// object keyed by integer-as-string; the decoded entries are ordered by
// ascending numeric key so first-match-wins lookups stay deterministic.
func loadLiveryTable(path string) ([]LiveryEntry, error) {
	var raw map[string]LiveryEntry
	if err := readJSONFile(path, &raw); err != nil {
		return nil, err
	}

	entries := make([]LiveryEntry, 0, len(raw))
	for key, entry := range raw {
		n, err := strconv.Atoi(key)
		if err != nil {
			return nil, fmt.Errorf("livery key %q is not an integer", key)
		}
		entry.Key = n
		entries = append(entries, entry)
	}

	sort.Slice(entries, func(i, j int) bool { return entries[i].Key < entries[j].Key })
	return entries, nil
}

func readJSONFile(path string, out any) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	if err := json.Unmarshal(data, out); err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}
	return nil
}
