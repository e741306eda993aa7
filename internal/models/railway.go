package models

import (
	"github.com/twpayne/go-polyline"

	"github.com/C1200/community-server-railway/internal/geom"
	"github.com/C1200/community-server-railway/internal/railway"
)

// Station is the wire form of a resolved station.
type Station struct {
	ID       string     `json:"id"`
	Name     string     `json:"name"`
	Location geom.Point `json:"location"`
}

// NewStation converts a resolved station to its wire form.
func NewStation(station railway.Station) Station {
	return Station{
		ID:       station.ID,
		Name:     station.Name,
		Location: station.Location,
	}
}

// NewStationList converts a station slice to wire form, always yielding a
// non-nil slice so empty lists encode as [] rather than null.
func NewStationList(stations []railway.Station) []Station {
	list := make([]Station, 0, len(stations))
	for _, station := range stations {
		list = append(list, NewStation(station))
	}
	return list
}

// Route is the wire form of a resolved route. Polyline carries the stop
// sequence geometry encoded for the map's route-line layer.
type Route struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Operator  string    `json:"operator"`
	Short     string    `json:"short,omitempty"`
	Suffix    string    `json:"suffix,omitempty"`
	Color     string    `json:"color"`
	Stations  []Station `json:"stations"`
	FirstStop Station   `json:"firstStop"`
	LastStop  Station   `json:"lastStop"`
	Polyline  string    `json:"polyline"`
}

// NewRoute converts a resolved route to its wire form.
func NewRoute(route railway.Route) Route {
	coords := make([][]float64, 0, len(route.Stations))
	for _, stop := range route.Stations {
		coords = append(coords, []float64{stop.Location[0], stop.Location[1]})
	}

	return Route{
		ID:        route.ID,
		Name:      route.Name,
		Operator:  route.Operator,
		Short:     route.Short,
		Suffix:    route.Suffix,
		Color:     route.Color,
		Stations:  NewStationList(route.Stations),
		FirstStop: NewStation(route.FirstStop()),
		LastStop:  NewStation(route.LastStop()),
		Polyline:  string(polyline.EncodeCoords(coords)),
	}
}

// NewRouteList converts a route slice to wire form.
func NewRouteList(routes []railway.Route) []Route {
	list := make([]Route, 0, len(routes))
	for _, route := range routes {
		list = append(list, NewRoute(route))
	}
	return list
}

// Train is the wire form of a resolved train. Location, angle, and route
// are omitted when unknown.
type Train struct {
	ID         string      `json:"id"`
	Name       string      `json:"name"`
	Carriages  int         `json:"carriages"`
	Stopped    bool        `json:"stopped"`
	LastUpdate int64       `json:"lastUpdate"`
	Livery     *int        `json:"livery,omitempty"`
	Location   *geom.Point `json:"location,omitempty"`
	Angle      *float64    `json:"angle,omitempty"`
	Route      *Route      `json:"route,omitempty"`
}

// NewTrain converts a resolved train to its wire form.
func NewTrain(train railway.Train) Train {
	model := Train{
		ID:         train.ID,
		Name:       train.Name,
		Carriages:  train.Carriages,
		Stopped:    train.Stopped,
		LastUpdate: train.LastUpdate,
		Livery:     train.Livery,
		Location:   train.Location,
		Angle:      train.Angle,
	}
	if train.Route != nil {
		route := NewRoute(*train.Route)
		model.Route = &route
	}
	return model
}

// NewTrainList converts a train slice to wire form.
func NewTrainList(trains []railway.Train) []Train {
	list := make([]Train, 0, len(trains))
	for _, train := range trains {
		list = append(list, NewTrain(train))
	}
	return list
}
