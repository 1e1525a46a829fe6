package usecase

import (
	"context"
	"fmt"
	"sort"
	"time"

	"travelmap-service/internal/domain/entity"
	"travelmap-service/internal/domain/repository"
	"travelmap-service/pkg/logger"
	"travelmap-service/pkg/metrics"
	"travelmap-service/pkg/utils"

	"github.com/prometheus/client_golang/prometheus"
)

// Placeholder headline figures not yet derived from data.
const (
	placeholderYearOverYearGrowth = 66
	placeholderBudgetProgress     = 55
	placeholderDestinationsCount  = 18
	placeholderExploredPercentage = 42
)

// StatsAggregator derives the statistics view from the flight list.
type StatsAggregator struct {
	flightRepo repository.FlightRepository
	logger     logger.Logger
	metrics    *metrics.Metrics
}

// NewStatsAggregator creates a new statistics aggregator
func NewStatsAggregator(
	flightRepo repository.FlightRepository,
	logger logger.Logger,
	metrics *metrics.Metrics,
) *StatsAggregator {
	return &StatsAggregator{
		flightRepo: flightRepo,
		logger:     logger,
		metrics:    metrics,
	}
}

// Build computes currency totals, monthly spending, unique airport and
// country counts and the popular routes. Returns entity.ErrNoFlights when
// the flight table is empty.
func (s *StatsAggregator) Build(ctx context.Context) (*entity.TravelStats, error) {
	timer := prometheus.NewTimer(s.metrics.AggregationTime)
	defer timer.ObserveDuration()
	s.metrics.StatsBuilds.Inc()

	flights, err := s.flightRepo.FindAllByDepartureDate(ctx, true)
	if err != nil {
		s.metrics.ErrorsCount.WithLabelValues("stats_build").Inc()
		return nil, fmt.Errorf("fetch flights: %w", err)
	}
	if len(flights) == 0 {
		return nil, entity.ErrNoFlights
	}

	stats := &entity.TravelStats{
		TotalFlights:       len(flights),
		YearOverYearGrowth: placeholderYearOverYearGrowth,
		BudgetProgress:     placeholderBudgetProgress,
		DestinationsCount:  placeholderDestinationsCount,
		ExploredPercentage: placeholderExploredPercentage,
	}

	stats.CurrencyTotals = s.currencyTotals(flights)

	// Headline spend is the EUR total only. Other currencies are shown in
	// the breakdown but never folded into this figure.
	for _, total := range stats.CurrencyTotals {
		if total.Currency == "EUR" {
			stats.TotalSpent = total.Amount
			break
		}
	}

	// Distinct raw labels, not normalized through the reference table: two
	// labels for the same physical airport count as two.
	airports := make(map[string]bool)
	countries := make(map[string]bool)
	for _, flight := range flights {
		airports[flight.DepartureAirport] = true
		airports[flight.ArrivalAirport] = true
		countries[flight.DepartureCountry] = true
		countries[flight.ArrivalCountry] = true
	}
	stats.UniqueAirports = len(airports)
	stats.UniqueCountries = len(countries)

	stats.MonthlySpending = s.monthlySpending(flights)
	stats.PopularRoutes = s.popularRoutes(flights)

	s.logger.Info("Travel stats built",
		"flights", stats.TotalFlights,
		"currencies", len(stats.CurrencyTotals),
		"months", len(stats.MonthlySpending))

	return stats, nil
}

func (s *StatsAggregator) currencyTotals(flights []entity.FlightRecord) []entity.CurrencyTotal {
	totals := make(map[string]float64)
	var order []string

	for _, flight := range flights {
		amount := utils.ParseAmount(flight.TotalReceipt)
		if !amount.Valid {
			s.logger.Debug("Unparsable receipt treated as zero", "receipt", flight.TotalReceipt)
		}
		if _, ok := totals[amount.Currency]; !ok {
			order = append(order, amount.Currency)
		}
		totals[amount.Currency] += amount.Value
	}

	currencyTotals := make([]entity.CurrencyTotal, 0, len(order))
	for _, currency := range order {
		currencyTotals = append(currencyTotals, entity.CurrencyTotal{
			Currency: currency,
			Amount:   totals[currency],
		})
	}
	sort.SliceStable(currencyTotals, func(i, j int) bool {
		return currencyTotals[i].Amount > currencyTotals[j].Amount
	})
	return currencyTotals
}

type monthlyBucket struct {
	start   time.Time
	amount  float64
	flights int
}

func (s *StatsAggregator) monthlySpending(flights []entity.FlightRecord) []entity.MonthlySpending {
	buckets := make(map[string]*monthlyBucket)

	for _, flight := range flights {
		purchased := utils.NormalizeDate(flight.PurchasedDate)
		month := purchased.Format("Jan 2006")

		bucket, ok := buckets[month]
		if !ok {
			bucket = &monthlyBucket{
				start: time.Date(purchased.Year(), purchased.Month(), 1, 0, 0, 0, 0, time.UTC),
			}
			buckets[month] = bucket
		}

		// Direct numeric parse, deliberately without the symbol stripping
		// of ParseAmount. "€123.45" contributes zero here.
		bucket.amount += utils.ParseLeadingFloat(flight.TotalReceipt)
		bucket.flights++
	}

	monthly := make([]entity.MonthlySpending, 0, len(buckets))
	for month, bucket := range buckets {
		monthly = append(monthly, entity.MonthlySpending{
			Month:   month,
			Amount:  bucket.amount,
			Flights: bucket.flights,
		})
	}
	sort.Slice(monthly, func(i, j int) bool {
		return buckets[monthly[i].Month].start.Before(buckets[monthly[j].Month].start)
	})
	return monthly
}

func (s *StatsAggregator) popularRoutes(flights []entity.FlightRecord) []entity.PopularRoute {
	counts := make(map[string]int)
	var order []string
	routes := make(map[string]entity.PopularRoute)

	for _, flight := range flights {
		key := flight.DepartureAirport + " → " + flight.ArrivalAirport
		if _, ok := counts[key]; !ok {
			order = append(order, key)
			routes[key] = entity.PopularRoute{
				From: flight.DepartureAirport,
				To:   flight.ArrivalAirport,
			}
		}
		counts[key]++
	}

	popular := make([]entity.PopularRoute, 0, len(order))
	for _, key := range order {
		route := routes[key]
		route.Count = counts[key]
		popular = append(popular, route)
	}
	sort.SliceStable(popular, func(i, j int) bool {
		return popular[i].Count > popular[j].Count
	})

	if len(popular) > 5 {
		popular = popular[:5]
	}
	return popular
}
