// internal/domain/entity/flight.go
package entity

import (
	"time"
)

// FlightRecord is one purchased ticket leg as stored by the flight backend.
// Dates and receipts are kept as raw strings: the backend accepts both
// "DD/MM/YYYY" and "YYYY-MM-DD" dates, and receipts embed a currency symbol
// or ISO code ("€123.45", "123.45 USD"). Normalization happens at read time.
type FlightRecord struct {
	ID                string    `bson:"_id,omitempty" json:"id"`
	PassengerName     string    `bson:"passengerName" json:"passengerName"`
	ReservationNumber string    `bson:"reservationNumber" json:"reservationNumber"`
	FlightNumber      string    `bson:"flightNumber" json:"flightNumber"`
	DepartureAirport  string    `bson:"departureAirport" json:"departureAirport"`
	ArrivalAirport    string    `bson:"arrivalAirport" json:"arrivalAirport"`
	DepartureDate     string    `bson:"departureDate" json:"departureDate"`
	DepartureTime     string    `bson:"departureTime" json:"departureTime"`
	ArrivalTime       string    `bson:"arrivalTime" json:"arrivalTime"`
	TotalReceipt      string    `bson:"totalReceipt" json:"totalReceipt"`
	PurchasedDate     string    `bson:"purchasedDate" json:"purchasedDate"`
	PurchaseTime      string    `bson:"purchaseTime" json:"purchaseTime"`
	DepartureCountry  string    `bson:"departureCountry,omitempty" json:"departureCountry,omitempty"`
	ArrivalCountry    string    `bson:"arrivalCountry,omitempty" json:"arrivalCountry,omitempty"`
	CreatedAt         time.Time `bson:"createdAt" json:"-"`
	UpdatedAt         time.Time `bson:"updatedAt" json:"-"`
}

// FlightView is a FlightRecord with display-ready fields attached.
type FlightView struct {
	FlightRecord
	DepartureDateDisplay string `json:"departureDateDisplay"`
	ReceiptDisplay       string `json:"receiptDisplay"`
}

// FlightPage is one page of the flight history list.
type FlightPage struct {
	Flights      []FlightView `json:"flights"`
	Page         int          `json:"page"`
	TotalPages   int          `json:"totalPages"`
	TotalFlights int          `json:"totalFlights"`
}
