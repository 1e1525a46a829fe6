package usecase

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"travelmap-service/internal/domain/entity"
)

// nineFlights returns a list already ordered newest departure first, the
// ordering the repository provides.
func nineFlights() []entity.FlightRecord {
	var flights []entity.FlightRecord
	for i := 0; i < 9; i++ {
		flights = append(flights, entity.FlightRecord{
			FlightNumber:     fmt.Sprintf("FR%03d", 9-i),
			DepartureAirport: "Vilnius (VNO)",
			ArrivalAirport:   "London (LHR)",
			DepartureDate:    fmt.Sprintf("%02d/03/2024", 9-i),
			TotalReceipt:     "€123.45",
		})
	}
	return flights
}

func newLister(flights []entity.FlightRecord) *FlightLister {
	return NewFlightLister(&fakeFlightRepo{flights: flights}, testLogger, testMetrics, 4)
}

func TestFlightListerFirstPage(t *testing.T) {
	page, err := newLister(nineFlights()).List(context.Background(), 1)
	if err != nil {
		t.Fatalf("List: %v", err)
	}

	if page.TotalFlights != 9 || page.TotalPages != 3 || page.Page != 1 {
		t.Errorf("page meta: got total=%d pages=%d page=%d, want 9/3/1",
			page.TotalFlights, page.TotalPages, page.Page)
	}
	if len(page.Flights) != 4 {
		t.Fatalf("page size: got %d, want 4", len(page.Flights))
	}
	if page.Flights[0].FlightNumber != "FR009" {
		t.Errorf("first flight: got %s, want FR009", page.Flights[0].FlightNumber)
	}
}

func TestFlightListerLastPage(t *testing.T) {
	page, err := newLister(nineFlights()).List(context.Background(), 3)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(page.Flights) != 1 {
		t.Errorf("last page size: got %d, want 1", len(page.Flights))
	}
	if page.Flights[0].FlightNumber != "FR001" {
		t.Errorf("last flight: got %s, want FR001", page.Flights[0].FlightNumber)
	}
}

func TestFlightListerClampsPage(t *testing.T) {
	lister := newLister(nineFlights())

	page, err := lister.List(context.Background(), 0)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if page.Page != 1 {
		t.Errorf("underflow clamp: got page %d, want 1", page.Page)
	}

	page, err = lister.List(context.Background(), 99)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if page.Page != 3 {
		t.Errorf("overflow clamp: got page %d, want 3", page.Page)
	}
}

func TestFlightListerDisplayFields(t *testing.T) {
	flights := []entity.FlightRecord{
		{DepartureDate: "15/03/2024", TotalReceipt: "€123.45"},
		{DepartureDate: "2024-03-14", TotalReceipt: "n/a"},
	}

	page, err := newLister(flights).List(context.Background(), 1)
	if err != nil {
		t.Fatalf("List: %v", err)
	}

	if got := page.Flights[0].DepartureDateDisplay; got != "15 Mar 2024" {
		t.Errorf("date display: got %q, want %q", got, "15 Mar 2024")
	}
	if got := page.Flights[0].ReceiptDisplay; got != "€123.45 EUR" {
		t.Errorf("receipt display: got %q, want %q", got, "€123.45 EUR")
	}
	// Unparsable receipts render as the raw string.
	if got := page.Flights[1].ReceiptDisplay; got != "n/a" {
		t.Errorf("raw receipt fallback: got %q, want %q", got, "n/a")
	}
}

func TestFlightListerNoFlights(t *testing.T) {
	_, err := newLister(nil).List(context.Background(), 1)
	if !errors.Is(err, entity.ErrNoFlights) {
		t.Errorf("List on empty table: got %v, want ErrNoFlights", err)
	}
}
