package repository

import (
	"context"

	"travelmap-service/internal/domain/entity"
)

// AirportRepository defines access to the airport reference table.
// Insert exists for the seeding utility only; the dashboard itself reads.
type AirportRepository interface {
	FindAll(ctx context.Context) ([]entity.Airport, error)
	GetByIATA(ctx context.Context, code string) (*entity.Airport, error)
	Insert(ctx context.Context, airport *entity.Airport) error
}
