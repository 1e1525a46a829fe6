package usecase

import (
	"context"
	"fmt"

	"travelmap-service/internal/domain/entity"
	"travelmap-service/internal/domain/repository"
	"travelmap-service/pkg/logger"
	"travelmap-service/pkg/metrics"
	"travelmap-service/pkg/utils"
)

// FlightLister serves the paginated flight history, newest departures first.
type FlightLister struct {
	flightRepo repository.FlightRepository
	logger     logger.Logger
	metrics    *metrics.Metrics
	pageSize   int
}

// NewFlightLister creates a new flight lister
func NewFlightLister(
	flightRepo repository.FlightRepository,
	logger logger.Logger,
	metrics *metrics.Metrics,
	pageSize int,
) *FlightLister {
	return &FlightLister{
		flightRepo: flightRepo,
		logger:     logger,
		metrics:    metrics,
		pageSize:   pageSize,
	}
}

// List returns one page of flights with display-ready date and receipt
// fields. Out-of-range pages are clamped, never an error. Returns
// entity.ErrNoFlights when the flight table is empty.
func (l *FlightLister) List(ctx context.Context, page int) (*entity.FlightPage, error) {
	l.metrics.ListPages.Inc()

	flights, err := l.flightRepo.FindAllByDepartureDate(ctx, false)
	if err != nil {
		l.metrics.ErrorsCount.WithLabelValues("list_flights").Inc()
		return nil, fmt.Errorf("fetch flights: %w", err)
	}
	if len(flights) == 0 {
		return nil, entity.ErrNoFlights
	}

	totalPages := (len(flights) + l.pageSize - 1) / l.pageSize
	if page < 1 {
		page = 1
	}
	if page > totalPages {
		page = totalPages
	}

	start := (page - 1) * l.pageSize
	end := start + l.pageSize
	if end > len(flights) {
		end = len(flights)
	}

	views := make([]entity.FlightView, 0, end-start)
	for _, flight := range flights[start:end] {
		views = append(views, entity.FlightView{
			FlightRecord:         flight,
			DepartureDateDisplay: utils.FormatDisplayDate(flight.DepartureDate),
			ReceiptDisplay:       utils.ParseAmount(flight.TotalReceipt).Display(),
		})
	}

	return &entity.FlightPage{
		Flights:      views,
		Page:         page,
		TotalPages:   totalPages,
		TotalFlights: len(flights),
	}, nil
}
