package repository

import (
	"context"
	"strings"
	"time"

	"travelmap-service/internal/domain/entity"
	"travelmap-service/internal/domain/repository"

	"gorm.io/gorm"
)

// GormAirportRepository implements the AirportRepository interface
type GormAirportRepository struct {
	db *gorm.DB
}

// NewGormAirportRepository creates a new GORM airport repository
func NewGormAirportRepository(db *gorm.DB) repository.AirportRepository {
	return &GormAirportRepository{
		db: db,
	}
}

// AllAirportGPS GORM model for database mapping
type AllAirportGPS struct {
	ID        uint    `gorm:"primaryKey"`
	IATA      string  `gorm:"column:iata;unique"`
	Name      string  `gorm:"column:name"`
	City      string  `gorm:"column:city"`
	Country   string  `gorm:"column:country"`
	Lat       float64 `gorm:"column:lat"`
	Lon       float64 `gorm:"column:lon"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

// TableName overrides the default table name
func (AllAirportGPS) TableName() string {
	return "all_airport_gps"
}

func toEntity(row AllAirportGPS) entity.Airport {
	return entity.Airport{
		IATA:    strings.ToUpper(row.IATA),
		Name:    row.Name,
		City:    row.City,
		Country: row.Country,
		Lat:     row.Lat,
		Lon:     row.Lon,
	}
}

// FindAll returns the full reference table in insertion order.
func (r *GormAirportRepository) FindAll(ctx context.Context) ([]entity.Airport, error) {
	var rows []AllAirportGPS
	result := r.db.WithContext(ctx).Order("id").Find(&rows)
	if result.Error != nil {
		return nil, result.Error
	}

	airports := make([]entity.Airport, 0, len(rows))
	for _, row := range rows {
		airports = append(airports, toEntity(row))
	}
	return airports, nil
}

// GetByIATA finds an airport by its 3-letter code
func (r *GormAirportRepository) GetByIATA(ctx context.Context, code string) (*entity.Airport, error) {
	var row AllAirportGPS
	result := r.db.WithContext(ctx).Where("iata = ?", strings.ToUpper(code)).First(&row)
	if result.Error != nil {
		return nil, result.Error
	}

	airport := toEntity(row)
	return &airport, nil
}

// Insert adds a reference row. Used by the seeding utility only.
func (r *GormAirportRepository) Insert(ctx context.Context, airport *entity.Airport) error {
	row := AllAirportGPS{
		IATA:    strings.ToUpper(airport.IATA),
		Name:    airport.Name,
		City:    airport.City,
		Country: airport.Country,
		Lat:     airport.Lat,
		Lon:     airport.Lon,
	}
	return r.db.WithContext(ctx).Create(&row).Error
}
