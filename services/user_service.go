package services

import (
	"context"
	"errors"

	"github.com/RedEye75/SmartZone-Server/constants"
	"github.com/RedEye75/SmartZone-Server/models"
	"github.com/RedEye75/SmartZone-Server/repositories"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

type IUserService interface {
	FindAll(ctx context.Context) ([]models.User, error)
	FindByRole(ctx context.Context, role string) ([]models.User, error)
	FindByEmail(ctx context.Context, email string) (*models.User, error)
	Create(ctx context.Context, user models.User) (*mongo.InsertOneResult, error)
	IsAdmin(ctx context.Context, email string) (bool, error)
	IsSeller(ctx context.Context, email string) (bool, error)
	Verify(ctx context.Context, id primitive.ObjectID) (*mongo.UpdateResult, error)
	Delete(ctx context.Context, id primitive.ObjectID) (*mongo.DeleteResult, error)
}

type UserService struct {
	repository repositories.IUserRepository
}

func NewUserService(repository repositories.IUserRepository) IUserService {
	return &UserService{repository: repository}
}

func (s *UserService) FindAll(ctx context.Context) ([]models.User, error) {
	return s.repository.FindAll(ctx)
}

func (s *UserService) FindByRole(ctx context.Context, role string) ([]models.User, error) {
	return s.repository.FindByRole(ctx, role)
}

func (s *UserService) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	return s.repository.FindByEmail(ctx, email)
}

func (s *UserService) Create(ctx context.Context, user models.User) (*mongo.InsertOneResult, error) {
	return s.repository.Insert(ctx, user)
}

// IsAdmin reports whether a user with this email exists and carries the
// admin role. An unknown email is not an error, just false.
func (s *UserService) IsAdmin(ctx context.Context, email string) (bool, error) {
	return s.hasRole(ctx, email, constants.RoleAdmin)
}

func (s *UserService) IsSeller(ctx context.Context, email string) (bool, error) {
	return s.hasRole(ctx, email, constants.RoleSeller)
}

func (s *UserService) hasRole(ctx context.Context, email string, role string) (bool, error) {
	user, err := s.repository.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, repositories.ErrUserNotFound) {
			return false, nil
		}
		return false, err
	}
	return user.Role == role, nil
}

func (s *UserService) Verify(ctx context.Context, id primitive.ObjectID) (*mongo.UpdateResult, error) {
	return s.repository.SetVerified(ctx, id)
}

func (s *UserService) Delete(ctx context.Context, id primitive.ObjectID) (*mongo.DeleteResult, error) {
	return s.repository.DeleteByID(ctx, id)
}
