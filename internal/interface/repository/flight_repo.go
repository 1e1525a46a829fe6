package repository

import (
	"context"

	"travelmap-service/internal/domain/entity"
	"travelmap-service/internal/domain/repository"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// MongoFlightRepository implements FlightRepository
type MongoFlightRepository struct {
	collection *mongo.Collection
}

// NewMongoFlightRepository creates a new flight record repository
func NewMongoFlightRepository(db *mongo.Database) repository.FlightRepository {
	collection := db.Collection("vidmaflights")

	// Create index on departureDate for ordered retrieval
	ctx := context.Background()
	indexModel := mongo.IndexModel{
		Keys: bson.M{"departureDate": 1},
	}
	collection.Indexes().CreateOne(ctx, indexModel)

	return &MongoFlightRepository{
		collection: collection,
	}
}

// FindAllByDepartureDate returns every flight ordered by the raw departure
// date string, the same ordering the backend applies.
func (r *MongoFlightRepository) FindAllByDepartureDate(ctx context.Context, ascending bool) ([]entity.FlightRecord, error) {
	direction := 1
	if !ascending {
		direction = -1
	}

	opts := options.Find().SetSort(bson.D{{Key: "departureDate", Value: direction}})
	cursor, err := r.collection.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}

	var flights []entity.FlightRecord
	if err := cursor.All(ctx, &flights); err != nil {
		return nil, err
	}
	return flights, nil
}
