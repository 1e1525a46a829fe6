package usecase

import (
	"context"
	"fmt"
	"strings"

	"travelmap-service/internal/domain/entity"
	"travelmap-service/internal/domain/repository"
	"travelmap-service/pkg/geo"
	"travelmap-service/pkg/logger"
	"travelmap-service/pkg/metrics"
	"travelmap-service/pkg/utils"

	"github.com/prometheus/client_golang/prometheus"
)

// MapBuilder derives the travel map aggregate from the flight list and the
// airport reference table. Each build is a full, stateless re-derivation.
type MapBuilder struct {
	flightRepo  repository.FlightRepository
	airportRepo repository.AirportRepository
	logger      logger.Logger
	metrics     *metrics.Metrics
}

// NewMapBuilder creates a new map builder
func NewMapBuilder(
	flightRepo repository.FlightRepository,
	airportRepo repository.AirportRepository,
	logger logger.Logger,
	metrics *metrics.Metrics,
) *MapBuilder {
	return &MapBuilder{
		flightRepo:  flightRepo,
		airportRepo: airportRepo,
		logger:      logger,
		metrics:     metrics,
	}
}

type routeKey struct {
	from string
	to   string
}

// Build produces the airports, routes and home airport for the map view.
// Returns entity.ErrNoFlights when the flight table is empty.
func (b *MapBuilder) Build(ctx context.Context) (*entity.TravelMap, error) {
	timer := prometheus.NewTimer(b.metrics.AggregationTime)
	defer timer.ObserveDuration()
	b.metrics.MapBuilds.Inc()

	flights, err := b.flightRepo.FindAllByDepartureDate(ctx, true)
	if err != nil {
		b.metrics.ErrorsCount.WithLabelValues("map_build").Inc()
		return nil, fmt.Errorf("fetch flights: %w", err)
	}
	if len(flights) == 0 {
		return nil, entity.ErrNoFlights
	}

	references, err := b.airportRepo.FindAll(ctx)
	if err != nil {
		b.metrics.ErrorsCount.WithLabelValues("map_build").Inc()
		return nil, fmt.Errorf("fetch airport reference: %w", err)
	}

	// Distinct codes appearing in any flight, in first-seen order.
	usedCodes := make(map[string]bool)
	var codeOrder []string
	for _, flight := range flights {
		for _, label := range []string{flight.DepartureAirport, flight.ArrivalAirport} {
			code := utils.ExtractIATACode(label)
			if !usedCodes[code] {
				usedCodes[code] = true
				codeOrder = append(codeOrder, code)
			}
		}
	}

	// Intersect with the reference table. Insertion order follows the
	// reference table so the home-airport tie-break is stable.
	lookup := make(map[string]*entity.AirportAggregate)
	var airportOrder []string
	for _, ref := range references {
		code := strings.ToUpper(ref.IATA)
		if !usedCodes[code] {
			continue
		}
		lookup[code] = &entity.AirportAggregate{
			Code:    code,
			Name:    ref.Name,
			City:    ref.City,
			Country: ref.Country,
			Lat:     ref.Lat,
			Lng:     ref.Lon,
		}
		airportOrder = append(airportOrder, code)
	}

	var missing []string
	for _, code := range codeOrder {
		if _, ok := lookup[code]; !ok {
			missing = append(missing, code)
		}
	}
	if len(missing) > 0 {
		b.logger.Warn("Airport codes missing from reference table", "codes", missing)
	}

	routes := make(map[routeKey]*entity.RouteAggregate)
	var routeOrder []routeKey

	for _, flight := range flights {
		depCode := utils.ExtractIATACode(flight.DepartureAirport)
		arrCode := utils.ExtractIATACode(flight.ArrivalAirport)

		depAirport, depOK := lookup[depCode]
		arrAirport, arrOK := lookup[arrCode]
		if !depOK || !arrOK {
			b.logger.Info("Skipping flight due to missing airport data", "from", depCode, "to", arrCode)
			b.metrics.FlightsSkipped.Inc()
			continue
		}

		depAirport.Count++
		arrAirport.Count++

		// Forward leg: create as "departure" or bump whatever entry the
		// key already holds.
		depKey := routeKey{from: depCode, to: arrCode}
		if route, ok := routes[depKey]; ok {
			route.Count++
		} else {
			routes[depKey] = &entity.RouteAggregate{
				From:  depCode,
				To:    arrCode,
				Count: 1,
				Type:  entity.RouteDeparture,
			}
			routeOrder = append(routeOrder, depKey)
		}

		// Reverse leg: a fresh entry is tagged "arrival"; an existing one
		// keeps its tag and accumulates. The accumulation happens whether
		// or not the counterpart departure entry exists yet.
		arrKey := routeKey{from: arrCode, to: depCode}
		if route, ok := routes[arrKey]; ok {
			route.Count++
		} else {
			routes[arrKey] = &entity.RouteAggregate{
				From:  arrCode,
				To:    depCode,
				Count: 1,
				Type:  entity.RouteArrival,
			}
			routeOrder = append(routeOrder, arrKey)
		}
	}

	travelMap := &entity.TravelMap{
		MissingCodes: missing,
	}
	for _, code := range airportOrder {
		travelMap.Airports = append(travelMap.Airports, *lookup[code])
	}
	for _, key := range routeOrder {
		route := routes[key]
		from := lookup[key.from]
		to := lookup[key.to]
		route.Path = geo.CurvedPath(
			geo.Point{Lat: from.Lat, Lng: from.Lng},
			geo.Point{Lat: to.Lat, Lng: to.Lng},
		)
		travelMap.Routes = append(travelMap.Routes, *route)
	}

	// Home airport: maximum visit count, first seen wins on ties.
	for _, airport := range travelMap.Airports {
		if travelMap.HomeAirport == "" {
			travelMap.HomeAirport = airport.Code
			continue
		}
		if airport.Count > lookup[travelMap.HomeAirport].Count {
			travelMap.HomeAirport = airport.Code
		}
	}

	b.logger.Info("Travel map built",
		"airports", len(travelMap.Airports),
		"routes", len(travelMap.Routes),
		"missing", len(missing),
		"home", travelMap.HomeAirport)

	return travelMap, nil
}
