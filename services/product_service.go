package services

import (
	"context"

	"github.com/RedEye75/SmartZone-Server/models"
	"github.com/RedEye75/SmartZone-Server/repositories"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

type IProductService interface {
	FindAll(ctx context.Context) ([]models.Product, error)
	FindByCategory(ctx context.Context, categoryID string) ([]models.Product, error)
	Create(ctx context.Context, product models.Product) (*mongo.InsertOneResult, error)
	Delete(ctx context.Context, id primitive.ObjectID) (*mongo.DeleteResult, error)
}

type ProductService struct {
	repository repositories.IProductRepository
}

func NewProductService(repository repositories.IProductRepository) IProductService {
	return &ProductService{repository: repository}
}

func (s *ProductService) FindAll(ctx context.Context) ([]models.Product, error) {
	return s.repository.FindAll(ctx)
}

func (s *ProductService) FindByCategory(ctx context.Context, categoryID string) ([]models.Product, error) {
	return s.repository.FindByCategory(ctx, categoryID)
}

func (s *ProductService) Create(ctx context.Context, product models.Product) (*mongo.InsertOneResult, error) {
	return s.repository.Insert(ctx, product)
}

func (s *ProductService) Delete(ctx context.Context, id primitive.ObjectID) (*mongo.DeleteResult, error) {
	return s.repository.DeleteByID(ctx, id)
}
