package main

import (
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"
	"time"

	"travelmap-service/internal/domain/entity"
	"travelmap-service/internal/infrastructure/config"
	"travelmap-service/internal/interface/repository"
	"travelmap-service/pkg/logger"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// Starter reference set, enough to render the map for a typical European
// flight history before a full dataset is loaded.
var starterAirports = []entity.Airport{
	{IATA: "BRS", Name: "Bristol Airport", City: "Bristol", Country: "United Kingdom", Lat: 51.3827, Lon: -2.7192},
	{IATA: "KUN", Name: "Kaunas International Airport", City: "Kaunas", Country: "Lithuania", Lat: 54.9639, Lon: 24.0848},
	{IATA: "VNO", Name: "Vilnius International Airport", City: "Vilnius", Country: "Lithuania", Lat: 54.6341, Lon: 25.2858},
	{IATA: "LGW", Name: "London Gatwick Airport", City: "London", Country: "United Kingdom", Lat: 51.1537, Lon: -0.1821},
	{IATA: "STN", Name: "London Stansted Airport", City: "London", Country: "United Kingdom", Lat: 51.8860, Lon: 0.2389},
	{IATA: "BHX", Name: "Birmingham Airport", City: "Birmingham", Country: "United Kingdom", Lat: 52.4537, Lon: -1.7487},
	{IATA: "RIX", Name: "Riga International Airport", City: "Riga", Country: "Latvia", Lat: 56.9236, Lon: 23.9711},
	{IATA: "TFS", Name: "Tenerife South Airport", City: "Tenerife", Country: "Spain", Lat: 28.0445, Lon: -16.5725},
	{IATA: "GRO", Name: "Girona-Costa Brava Airport", City: "Girona", Country: "Spain", Lat: 41.9007, Lon: 2.7606},
	{IATA: "LBA", Name: "Leeds Bradford Airport", City: "Leeds", Country: "United Kingdom", Lat: 53.8659, Lon: -1.6606},
	{IATA: "PMI", Name: "Palma de Mallorca Airport", City: "Palma de Mallorca", Country: "Spain", Lat: 39.5517, Lon: 2.7388},
	{IATA: "ALC", Name: "Alicante Airport", City: "Alicante", Country: "Spain", Lat: 38.2822, Lon: -0.5582},
	{IATA: "LTN", Name: "London Luton Airport", City: "London", Country: "United Kingdom", Lat: 51.8747, Lon: -0.3683},
	{IATA: "PFO", Name: "Paphos International Airport", City: "Paphos", Country: "Cyprus", Lat: 34.7178, Lon: 32.4857},
	{IATA: "SEN", Name: "London Southend Airport", City: "London", Country: "United Kingdom", Lat: 51.5714, Lon: 0.6956},
	{IATA: "NAP", Name: "Naples International Airport", City: "Naples", Country: "Italy", Lat: 40.8860, Lon: 14.2908},
	{IATA: "GVA", Name: "Geneva Airport", City: "Geneva", Country: "Switzerland", Lat: 46.2380, Lon: 6.1089},
	{IATA: "DUB", Name: "Dublin Airport", City: "Dublin", Country: "Ireland", Lat: 53.4213, Lon: -6.2700},
}

// datasetEntry is one record of the mwgg/Airports JSON dataset, keyed by
// ICAO code in the source file.
type datasetEntry struct {
	ICAO    string  `json:"icao"`
	IATA    string  `json:"iata"`
	Name    string  `json:"name"`
	City    string  `json:"city"`
	Country string  `json:"country"`
	Lat     float64 `json:"lat"`
	Lon     float64 `json:"lon"`
}

func main() {
	source := flag.String("source", "", "path or URL of an airports.json dataset (mwgg/Airports format); seeds the curated starter set when empty")
	flag.Parse()

	log := logger.NewLogger()
	defer log.Sync()

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatal("Failed to load config", "error", err)
	}

	gormDB, err := gorm.Open(postgres.Open(cfg.PostgresURI), &gorm.Config{})
	if err != nil {
		log.Fatal("Failed to connect to PostgreSQL", "error", err)
	}
	airportRepo := repository.NewGormAirportRepository(gormDB)

	airports := starterAirports
	if *source != "" {
		airports, err = loadDataset(*source)
		if err != nil {
			log.Fatal("Failed to load airport dataset", "source", *source, "error", err)
		}
	}
	log.Info("Seeding airport reference table", "airports", len(airports))

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Minute)
	defer cancel()

	inserted, skipped := 0, 0
	for i := range airports {
		airport := airports[i]

		_, err := airportRepo.GetByIATA(ctx, airport.IATA)
		if err == nil {
			skipped++
			continue
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			log.Fatal("Failed to check existing airport", "iata", airport.IATA, "error", err)
		}

		if err := airportRepo.Insert(ctx, &airport); err != nil {
			log.Error("Failed to insert airport", "iata", airport.IATA, "error", err)
			continue
		}
		inserted++
	}

	log.Info("Seeding finished", "inserted", inserted, "skipped", skipped)
}

// loadDataset reads the mwgg/Airports JSON file from a URL or local path and
// keeps every entry that carries an IATA code.
func loadDataset(source string) ([]entity.Airport, error) {
	var raw []byte
	var err error

	if strings.HasPrefix(source, "http://") || strings.HasPrefix(source, "https://") {
		resp, httpErr := http.Get(source)
		if httpErr != nil {
			return nil, httpErr
		}
		defer resp.Body.Close()
		if resp.StatusCode != http.StatusOK {
			return nil, fmt.Errorf("dataset fetch returned %s", resp.Status)
		}
		raw, err = io.ReadAll(resp.Body)
	} else {
		raw, err = os.ReadFile(source)
	}
	if err != nil {
		return nil, err
	}

	var entries map[string]datasetEntry
	if err := json.Unmarshal(raw, &entries); err != nil {
		return nil, err
	}

	var airports []entity.Airport
	for _, entry := range entries {
		if entry.IATA == "" {
			continue
		}
		airports = append(airports, entity.Airport{
			IATA:    strings.ToUpper(entry.IATA),
			Name:    entry.Name,
			City:    entry.City,
			Country: entry.Country,
			Lat:     entry.Lat,
			Lon:     entry.Lon,
		})
	}
	return airports, nil
}
