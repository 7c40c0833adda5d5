package services

import (
	"context"

	"github.com/RedEye75/SmartZone-Server/models"
	"github.com/RedEye75/SmartZone-Server/repositories"
	"go.mongodb.org/mongo-driver/mongo"
)

type IBookingService interface {
	FindByEmail(ctx context.Context, email string) ([]models.Booking, error)
	Create(ctx context.Context, booking models.Booking) (*mongo.InsertOneResult, error)
}

type BookingService struct {
	repository repositories.IBookingRepository
}

func NewBookingService(repository repositories.IBookingRepository) IBookingService {
	return &BookingService{repository: repository}
}

func (s *BookingService) FindByEmail(ctx context.Context, email string) ([]models.Booking, error) {
	return s.repository.FindByEmail(ctx, email)
}

func (s *BookingService) Create(ctx context.Context, booking models.Booking) (*mongo.InsertOneResult, error) {
	return s.repository.Insert(ctx, booking)
}
