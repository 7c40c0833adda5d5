package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/RedEye75/SmartZone-Server/constants"
	"github.com/RedEye75/SmartZone-Server/models"
	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const userCollectionName = "users"

// ErrUserNotFound is returned when no user document matches the lookup.
var ErrUserNotFound = errors.New("user not found")

type IUserRepository interface {
	FindAll(ctx context.Context) ([]models.User, error)
	FindByEmail(ctx context.Context, email string) (*models.User, error)
	FindByRole(ctx context.Context, role string) ([]models.User, error)
	Insert(ctx context.Context, user models.User) (*mongo.InsertOneResult, error)
	SetVerified(ctx context.Context, id primitive.ObjectID) (*mongo.UpdateResult, error)
	DeleteByID(ctx context.Context, id primitive.ObjectID) (*mongo.DeleteResult, error)
}

type UserRepository struct {
	collection *mongo.Collection
	logger     zerolog.Logger
}

func NewUserRepository(db *mongo.Database, logger zerolog.Logger) IUserRepository {
	return &UserRepository{
		collection: db.Collection(userCollectionName),
		logger:     logger.With().Str("repository", "user").Logger(),
	}
}

func (r *UserRepository) FindAll(ctx context.Context) ([]models.User, error) {
	return r.find(ctx, bson.M{})
}

func (r *UserRepository) FindByRole(ctx context.Context, role string) ([]models.User, error) {
	return r.find(ctx, bson.M{"role": role})
}

func (r *UserRepository) find(ctx context.Context, filter bson.M) ([]models.User, error) {
	cursor, err := r.collection.Find(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to list users: %w", err)
	}
	defer cursor.Close(ctx)

	var users []models.User
	if err := cursor.All(ctx, &users); err != nil {
		return nil, fmt.Errorf("failed to decode users: %w", err)
	}
	if users == nil {
		users = []models.User{}
	}
	return users, nil
}

func (r *UserRepository) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	var user models.User
	err := r.collection.FindOne(ctx, bson.M{"email": email}).Decode(&user)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to find user: %w", err)
	}
	return &user, nil
}

func (r *UserRepository) Insert(ctx context.Context, user models.User) (*mongo.InsertOneResult, error) {
	result, err := r.collection.InsertOne(ctx, user)
	if err != nil {
		return nil, fmt.Errorf("failed to insert user: %w", err)
	}
	r.logger.Debug().Interface("inserted_id", result.InsertedID).Msg("user inserted")
	return result, nil
}

func (r *UserRepository) SetVerified(ctx context.Context, id primitive.ObjectID) (*mongo.UpdateResult, error) {
	filter := bson.M{"_id": id}
	update := bson.M{"$set": bson.M{"status": constants.StatusVerified}}

	result, err := r.collection.UpdateOne(ctx, filter, update, options.Update().SetUpsert(true))
	if err != nil {
		return nil, fmt.Errorf("failed to update user: %w", err)
	}
	r.logger.Debug().
		Str("user_id", id.Hex()).
		Int64("matched", result.MatchedCount).
		Int64("modified", result.ModifiedCount).
		Msg("user marked verified")
	return result, nil
}

func (r *UserRepository) DeleteByID(ctx context.Context, id primitive.ObjectID) (*mongo.DeleteResult, error) {
	result, err := r.collection.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return nil, fmt.Errorf("failed to delete user: %w", err)
	}
	r.logger.Debug().Str("user_id", id.Hex()).Int64("deleted", result.DeletedCount).Msg("user delete")
	return result, nil
}
