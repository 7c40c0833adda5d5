package repositories

import (
	"context"
	"fmt"

	"github.com/RedEye75/SmartZone-Server/models"
	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const categoryCollectionName = "productCategory"

// ICategoryRepository reads the seed category collection. Insert exists
// for the seed command only; no API route writes categories.
type ICategoryRepository interface {
	FindAll(ctx context.Context) ([]models.Category, error)
	FindNames(ctx context.Context) ([]models.CategoryName, error)
	Insert(ctx context.Context, category models.Category) (*mongo.InsertOneResult, error)
}

type CategoryRepository struct {
	collection *mongo.Collection
	logger     zerolog.Logger
}

func NewCategoryRepository(db *mongo.Database, logger zerolog.Logger) ICategoryRepository {
	return &CategoryRepository{
		collection: db.Collection(categoryCollectionName),
		logger:     logger.With().Str("repository", "category").Logger(),
	}
}

func (r *CategoryRepository) FindAll(ctx context.Context) ([]models.Category, error) {
	cursor, err := r.collection.Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("failed to list categories: %w", err)
	}
	defer cursor.Close(ctx)

	var categories []models.Category
	if err := cursor.All(ctx, &categories); err != nil {
		return nil, fmt.Errorf("failed to decode categories: %w", err)
	}
	if categories == nil {
		categories = []models.Category{}
	}
	return categories, nil
}

// FindNames projects the listing down to the category name field.
func (r *CategoryRepository) FindNames(ctx context.Context) ([]models.CategoryName, error) {
	findOptions := options.Find().SetProjection(bson.M{"category": 1})

	cursor, err := r.collection.Find(ctx, bson.M{}, findOptions)
	if err != nil {
		return nil, fmt.Errorf("failed to list category names: %w", err)
	}
	defer cursor.Close(ctx)

	var names []models.CategoryName
	if err := cursor.All(ctx, &names); err != nil {
		return nil, fmt.Errorf("failed to decode category names: %w", err)
	}
	if names == nil {
		names = []models.CategoryName{}
	}
	return names, nil
}

func (r *CategoryRepository) Insert(ctx context.Context, category models.Category) (*mongo.InsertOneResult, error) {
	result, err := r.collection.InsertOne(ctx, category)
	if err != nil {
		return nil, fmt.Errorf("failed to insert category: %w", err)
	}
	r.logger.Debug().Interface("inserted_id", result.InsertedID).Msg("category inserted")
	return result, nil
}
