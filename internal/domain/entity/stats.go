package entity

// MonthlySpending is the spend and flight count for one calendar month.
type MonthlySpending struct {
	Month   string  `json:"month"`
	Amount  float64 `json:"amount"`
	Flights int     `json:"flights"`
}

// CurrencyTotal is the summed receipts for one ISO currency code.
type CurrencyTotal struct {
	Currency string  `json:"currency"`
	Amount   float64 `json:"amount"`
}

// PopularRoute is a frequently flown route keyed by the raw airport labels.
type PopularRoute struct {
	From  string `json:"from"`
	To    string `json:"to"`
	Count int    `json:"count"`
}

// TravelStats is the aggregate statistics view of the flight history.
//
// TotalSpent covers the EUR total only; other currencies appear in
// CurrencyTotals but are excluded from the headline figure. The growth,
// budget, destination and explored numbers are fixed placeholders pending
// real derivations.
type TravelStats struct {
	TotalFlights       int               `json:"totalFlights"`
	TotalSpent         float64           `json:"totalSpent"`
	UniqueAirports     int               `json:"uniqueAirports"`
	UniqueCountries    int               `json:"uniqueCountries"`
	MonthlySpending    []MonthlySpending `json:"monthlySpending"`
	PopularRoutes      []PopularRoute    `json:"popularRoutes"`
	YearOverYearGrowth int               `json:"yearOverYearGrowth"`
	BudgetProgress     int               `json:"budgetProgress"`
	DestinationsCount  int               `json:"destinationsCount"`
	ExploredPercentage int               `json:"exploredPercentage"`
	CurrencyTotals     []CurrencyTotal   `json:"currencyTotals"`
}
