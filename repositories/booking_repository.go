package repositories

import (
	"context"
	"fmt"

	"github.com/RedEye75/SmartZone-Server/models"
	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

const bookingCollectionName = "bookings"

type IBookingRepository interface {
	FindByEmail(ctx context.Context, email string) ([]models.Booking, error)
	Insert(ctx context.Context, booking models.Booking) (*mongo.InsertOneResult, error)
}

type BookingRepository struct {
	collection *mongo.Collection
	logger     zerolog.Logger
}

func NewBookingRepository(db *mongo.Database, logger zerolog.Logger) IBookingRepository {
	return &BookingRepository{
		collection: db.Collection(bookingCollectionName),
		logger:     logger.With().Str("repository", "booking").Logger(),
	}
}

func (r *BookingRepository) FindByEmail(ctx context.Context, email string) ([]models.Booking, error) {
	cursor, err := r.collection.Find(ctx, bson.M{"email": email})
	if err != nil {
		return nil, fmt.Errorf("failed to list bookings: %w", err)
	}
	defer cursor.Close(ctx)

	var bookings []models.Booking
	if err := cursor.All(ctx, &bookings); err != nil {
		return nil, fmt.Errorf("failed to decode bookings: %w", err)
	}
	if bookings == nil {
		bookings = []models.Booking{}
	}
	return bookings, nil
}

func (r *BookingRepository) Insert(ctx context.Context, booking models.Booking) (*mongo.InsertOneResult, error) {
	result, err := r.collection.InsertOne(ctx, booking)
	if err != nil {
		return nil, fmt.Errorf("failed to insert booking: %w", err)
	}
	r.logger.Debug().Interface("inserted_id", result.InsertedID).Msg("booking inserted")
	return result, nil
}
