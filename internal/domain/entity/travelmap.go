package entity

import (
	"errors"

	"travelmap-service/pkg/geo"
)

// ErrNoFlights distinguishes an empty flight table from a backend failure.
// Callers surface it as its own message instead of an empty dashboard.
var ErrNoFlights = errors.New("no flights found")

// RouteType tags the direction a rendered route represents.
type RouteType string

const (
	RouteDeparture RouteType = "departure"
	RouteArrival   RouteType = "arrival"
)

// AirportAggregate is a visited airport with its visit count, keyed by
// IATA code and joined with the reference table for coordinates.
type AirportAggregate struct {
	Code    string  `json:"code"`
	Name    string  `json:"name,omitempty"`
	City    string  `json:"city,omitempty"`
	Country string  `json:"country,omitempty"`
	Lat     float64 `json:"lat"`
	Lng     float64 `json:"lng"`
	Count   int     `json:"count"`
}

// RouteAggregate is a directed route between two airports with its flight
// count, direction tag and rendered curve path.
type RouteAggregate struct {
	From  string      `json:"from"`
	To    string      `json:"to"`
	Count int         `json:"count"`
	Type  RouteType   `json:"type"`
	Path  []geo.Point `json:"path,omitempty"`
}

// TravelMap is everything the map view needs in one response.
type TravelMap struct {
	Airports     []AirportAggregate `json:"airports"`
	Routes       []RouteAggregate   `json:"routes"`
	HomeAirport  string             `json:"homeAirport"`
	MissingCodes []string           `json:"missingCodes,omitempty"`
}
