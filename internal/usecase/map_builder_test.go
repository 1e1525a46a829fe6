package usecase

import (
	"context"
	"errors"
	"testing"

	"travelmap-service/internal/domain/entity"
	"travelmap-service/pkg/logger"
	"travelmap-service/pkg/metrics"
)

// Shared across every test in this package; promauto registers globally.
var testMetrics = metrics.NewMetrics("travelmap_test")

var testLogger = logger.NewLogger()

type fakeFlightRepo struct {
	flights []entity.FlightRecord
	err     error
}

func (f *fakeFlightRepo) FindAllByDepartureDate(ctx context.Context, ascending bool) ([]entity.FlightRecord, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.flights, nil
}

type fakeAirportRepo struct {
	airports []entity.Airport
}

func (f *fakeAirportRepo) FindAll(ctx context.Context) ([]entity.Airport, error) {
	return f.airports, nil
}

func (f *fakeAirportRepo) GetByIATA(ctx context.Context, code string) (*entity.Airport, error) {
	for i := range f.airports {
		if f.airports[i].IATA == code {
			return &f.airports[i], nil
		}
	}
	return nil, errors.New("airport not found")
}

func (f *fakeAirportRepo) Insert(ctx context.Context, airport *entity.Airport) error {
	f.airports = append(f.airports, *airport)
	return nil
}

func referenceAirports() []entity.Airport {
	return []entity.Airport{
		{IATA: "LHR", Name: "London Heathrow", City: "London", Country: "United Kingdom", Lat: 51.47, Lon: -0.45},
		{IATA: "JFK", Name: "John F. Kennedy International", City: "New York", Country: "United States", Lat: 40.64, Lon: -73.78},
		{IATA: "VNO", Name: "Vilnius International Airport", City: "Vilnius", Country: "Lithuania", Lat: 54.63, Lon: 25.29},
	}
}

func newMapBuilder(flights []entity.FlightRecord) *MapBuilder {
	return NewMapBuilder(
		&fakeFlightRepo{flights: flights},
		&fakeAirportRepo{airports: referenceAirports()},
		testLogger,
		testMetrics,
	)
}

func TestMapBuilderRoundTrip(t *testing.T) {
	flights := []entity.FlightRecord{
		{DepartureAirport: "London (LHR)", ArrivalAirport: "New York (JFK)"},
		{DepartureAirport: "New York (JFK)", ArrivalAirport: "London (LHR)"},
	}

	travelMap, err := newMapBuilder(flights).Build(context.Background())
	if err != nil {
		t.Fatalf("Build: %v", err)
	}

	if len(travelMap.Airports) != 2 {
		t.Fatalf("airports: got %d, want 2", len(travelMap.Airports))
	}
	for _, airport := range travelMap.Airports {
		if airport.Count != 2 {
			t.Errorf("airport %s count: got %d, want 2", airport.Code, airport.Count)
		}
	}

	// Both the forward and the reverse key are touched by each flight, so
	// the two entries end at count 2: LHR→JFK from its own departure plus
	// the second flight's reverse registration, JFK→LHR from the first
	// flight's reverse registration plus its own departure.
	if len(travelMap.Routes) != 2 {
		t.Fatalf("routes: got %d, want 2", len(travelMap.Routes))
	}

	first := travelMap.Routes[0]
	if first.From != "LHR" || first.To != "JFK" || first.Type != entity.RouteDeparture || first.Count != 2 {
		t.Errorf("route 0: got %s→%s type=%s count=%d, want LHR→JFK type=departure count=2",
			first.From, first.To, first.Type, first.Count)
	}

	second := travelMap.Routes[1]
	if second.From != "JFK" || second.To != "LHR" || second.Type != entity.RouteArrival || second.Count != 2 {
		t.Errorf("route 1: got %s→%s type=%s count=%d, want JFK→LHR type=arrival count=2",
			second.From, second.To, second.Type, second.Count)
	}

	// Visit counts tie at 2; the first airport seen in reference order wins.
	if travelMap.HomeAirport != "LHR" {
		t.Errorf("home airport: got %q, want %q", travelMap.HomeAirport, "LHR")
	}
}

func TestMapBuilderSingleFlight(t *testing.T) {
	flights := []entity.FlightRecord{
		{DepartureAirport: "London (LHR)", ArrivalAirport: "New York (JFK)"},
	}

	travelMap, err := newMapBuilder(flights).Build(context.Background())
	if err != nil {
		t.Fatalf("Build: %v", err)
	}

	if len(travelMap.Routes) != 2 {
		t.Fatalf("routes: got %d, want 2", len(travelMap.Routes))
	}
	if travelMap.Routes[0].Type != entity.RouteDeparture || travelMap.Routes[0].Count != 1 {
		t.Errorf("forward route: got type=%s count=%d, want departure/1",
			travelMap.Routes[0].Type, travelMap.Routes[0].Count)
	}
	// The reverse leg is synthesized even without a return flight.
	if travelMap.Routes[1].Type != entity.RouteArrival || travelMap.Routes[1].Count != 1 {
		t.Errorf("reverse route: got type=%s count=%d, want arrival/1",
			travelMap.Routes[1].Type, travelMap.Routes[1].Count)
	}
}

func TestMapBuilderRoutePaths(t *testing.T) {
	flights := []entity.FlightRecord{
		{DepartureAirport: "London (LHR)", ArrivalAirport: "Vilnius (VNO)"},
	}

	travelMap, err := newMapBuilder(flights).Build(context.Background())
	if err != nil {
		t.Fatalf("Build: %v", err)
	}

	path := travelMap.Routes[0].Path
	if len(path) < 21 {
		t.Fatalf("route path length: got %d, want at least 21", len(path))
	}
	if path[0].Lat != 51.47 || path[0].Lng != -0.45 {
		t.Errorf("route path start: got %v, want LHR coordinates", path[0])
	}
}

func TestMapBuilderMissingReference(t *testing.T) {
	flights := []entity.FlightRecord{
		{DepartureAirport: "London (LHR)", ArrivalAirport: "Nowhere (XXX)"},
	}

	travelMap, err := newMapBuilder(flights).Build(context.Background())
	if err != nil {
		t.Fatalf("Build: %v", err)
	}

	if len(travelMap.MissingCodes) != 1 || travelMap.MissingCodes[0] != "XXX" {
		t.Errorf("missing codes: got %v, want [XXX]", travelMap.MissingCodes)
	}
	// The whole flight is skipped, so LHR stays at zero visits.
	if len(travelMap.Routes) != 0 {
		t.Errorf("routes: got %d, want 0", len(travelMap.Routes))
	}
	if len(travelMap.Airports) != 1 || travelMap.Airports[0].Count != 0 {
		t.Errorf("airports: got %+v, want LHR with count 0", travelMap.Airports)
	}
}

func TestMapBuilderVerbatimLabels(t *testing.T) {
	flights := []entity.FlightRecord{
		{DepartureAirport: "LHR", ArrivalAirport: "VNO"},
	}

	travelMap, err := newMapBuilder(flights).Build(context.Background())
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	if len(travelMap.Airports) != 2 {
		t.Errorf("airports: got %d, want 2", len(travelMap.Airports))
	}
}

func TestMapBuilderNoFlights(t *testing.T) {
	_, err := newMapBuilder(nil).Build(context.Background())
	if !errors.Is(err, entity.ErrNoFlights) {
		t.Errorf("Build on empty table: got %v, want ErrNoFlights", err)
	}
}

func TestMapBuilderBackendError(t *testing.T) {
	builder := NewMapBuilder(
		&fakeFlightRepo{err: errors.New("connection refused")},
		&fakeAirportRepo{airports: referenceAirports()},
		testLogger,
		testMetrics,
	)

	_, err := builder.Build(context.Background())
	if err == nil {
		t.Fatal("Build: expected error, got nil")
	}
	if errors.Is(err, entity.ErrNoFlights) {
		t.Error("backend failure must not be reported as the no-data condition")
	}
}
