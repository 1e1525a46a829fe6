package entity

// Airport is one row of the airport reference table: geographic and
// descriptive metadata keyed by 3-letter IATA code.
type Airport struct {
	IATA    string  `json:"iata"`
	Name    string  `json:"name"`
	City    string  `json:"city"`
	Country string  `json:"country"`
	Lat     float64 `json:"lat"`
	Lon     float64 `json:"lon"`
}
