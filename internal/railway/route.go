package railway

import "fmt"

// Route is a named rail line with an ordered stop sequence. The sequence may
// revisit a station. Trains lists the upstream train ids the route claims;
// ownership is declared by the route, not the train.
type Route struct {
	ID       string
	Name     string
	Operator string
	Short    string
	Suffix   string
	Color    string
	Stations []Station
	Trains   []string
}

// FirstStop returns the first station of the stop sequence.
func (r Route) FirstStop() Station {
	return r.Stations[0]
}

// LastStop returns the last station of the stop sequence.
func (r Route) LastStop() Station {
	return r.Stations[len(r.Stations)-1]
}

// RouteID derives a route's id from its operator, name, and optional
// disambiguating suffix.
func RouteID(operator, name, suffix string) string {
	id := Slug(operator) + "/" + Slug(name)
	if suffix != "" {
		id += "-" + Slug(suffix)
	}
	return id
}

// UnknownStationError reports a route configuration referencing a station
// name absent from the resolved station set.
type UnknownStationError struct {
	Route   string
	Station string
}

func (e *UnknownStationError) Error() string {
	return fmt.Sprintf("route %q references unknown station %q", e.Route, e.Station)
}

// Registry resolves and indexes the configured routes. It is built eagerly;
// any configuration problem fails construction rather than silently
// producing a partial registry.
type Registry struct {
	routes []Route
	byID   map[string]int
}

// NewRegistry builds a Registry from route configuration, resolving every
// listed station name against the given station set. A name with no matching
// Station is fatal (UnknownStationError), as is an empty stop sequence.
func NewRegistry(configs []RouteConfig, stations []Station) (*Registry, error) {
	byName := make(map[string]Station, len(stations))
	for _, station := range stations {
		byName[station.Name] = station
	}

	registry := &Registry{
		routes: make([]Route, 0, len(configs)),
		byID:   make(map[string]int, len(configs)),
	}

	for _, config := range configs {
		if len(config.Stations) == 0 {
			return nil, fmt.Errorf("route %q has an empty station list", config.Name)
		}

		stops := make([]Station, 0, len(config.Stations))
		for _, name := range config.Stations {
			station, ok := byName[name]
			if !ok {
				return nil, &UnknownStationError{Route: config.Name, Station: name}
			}
			stops = append(stops, station)
		}

		route := Route{
			ID:       RouteID(config.Operator, config.Name, config.Suffix),
			Name:     config.Name,
			Operator: config.Operator,
			Short:    config.Short,
			Suffix:   config.Suffix,
			Color:    config.Color,
			Stations: stops,
			Trains:   config.Trains,
		}

		if _, exists := registry.byID[route.ID]; !exists {
			registry.byID[route.ID] = len(registry.routes)
		}
		registry.routes = append(registry.routes, route)
	}

	return registry, nil
}

// GetAll returns every route in configuration order.
func (reg *Registry) GetAll() []Route {
	return reg.routes
}

// GetByID returns the route with the given derived id.
func (reg *Registry) GetByID(id string) (Route, bool) {
	i, ok := reg.byID[id]
	if !ok {
		return Route{}, false
	}
	return reg.routes[i], true
}

// GetByStation returns every route whose stop sequence contains the station,
// each route at most once regardless of how often it revisits the station.
func (reg *Registry) GetByStation(station Station) []Route {
	var matches []Route
	for _, route := range reg.routes {
		for _, stop := range route.Stations {
			if stop.Name == station.Name {
				matches = append(matches, route)
				break
			}
		}
	}
	return matches
}

// GetByOperator returns every route run by the operator. The operator may be
// given as its display name or its slug.
func (reg *Registry) GetByOperator(operator string) []Route {
	want := Slug(operator)
	var matches []Route
	for _, route := range reg.routes {
		if Slug(route.Operator) == want {
			matches = append(matches, route)
		}
	}
	return matches
}

// GetByTrain returns the route claiming the given train id, if any. When
// configuration lists a train under several routes, the first route in
// configuration order wins.
func (reg *Registry) GetByTrain(trainID string) (Route, bool) {
	for _, route := range reg.routes {
		for _, id := range route.Trains {
			if id == trainID {
				return route, true
			}
		}
	}
	return Route{}, false
}
