package services

import (
	"context"

	"github.com/RedEye75/SmartZone-Server/models"
	"github.com/RedEye75/SmartZone-Server/repositories"
)

type ICategoryService interface {
	FindAll(ctx context.Context) ([]models.Category, error)
	FindNames(ctx context.Context) ([]models.CategoryName, error)
}

type CategoryService struct {
	repository repositories.ICategoryRepository
}

func NewCategoryService(repository repositories.ICategoryRepository) ICategoryService {
	return &CategoryService{repository: repository}
}

func (s *CategoryService) FindAll(ctx context.Context) ([]models.Category, error) {
	return s.repository.FindAll(ctx)
}

func (s *CategoryService) FindNames(ctx context.Context) ([]models.CategoryName, error) {
	return s.repository.FindNames(ctx)
}
