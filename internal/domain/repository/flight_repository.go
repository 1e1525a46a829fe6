package repository

import (
	"context"

	"travelmap-service/internal/domain/entity"
)

// FlightRepository defines read access to the flight record store. Records
// are created and mutated only by the external backend; the service treats
// each fetch as an immutable snapshot.
type FlightRepository interface {
	// FindAllByDepartureDate returns every flight ordered by the raw
	// departure date field, ascending or descending.
	FindAllByDepartureDate(ctx context.Context, ascending bool) ([]entity.FlightRecord, error)
}
