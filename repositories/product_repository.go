package repositories

import (
	"context"
	"fmt"

	"github.com/RedEye75/SmartZone-Server/models"
	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

const productCollectionName = "products"

type IProductRepository interface {
	FindAll(ctx context.Context) ([]models.Product, error)
	FindByCategory(ctx context.Context, categoryID string) ([]models.Product, error)
	Insert(ctx context.Context, product models.Product) (*mongo.InsertOneResult, error)
	DeleteByID(ctx context.Context, id primitive.ObjectID) (*mongo.DeleteResult, error)
}

type ProductRepository struct {
	collection *mongo.Collection
	logger     zerolog.Logger
}

func NewProductRepository(db *mongo.Database, logger zerolog.Logger) IProductRepository {
	return &ProductRepository{
		collection: db.Collection(productCollectionName),
		logger:     logger.With().Str("repository", "product").Logger(),
	}
}

func (r *ProductRepository) FindAll(ctx context.Context) ([]models.Product, error) {
	return r.find(ctx, bson.M{})
}

// FindByCategory matches on the category reference the product carries,
// not the product id.
func (r *ProductRepository) FindByCategory(ctx context.Context, categoryID string) ([]models.Product, error) {
	return r.find(ctx, bson.M{"category": categoryID})
}

func (r *ProductRepository) find(ctx context.Context, filter bson.M) ([]models.Product, error) {
	cursor, err := r.collection.Find(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to list products: %w", err)
	}
	defer cursor.Close(ctx)

	var products []models.Product
	if err := cursor.All(ctx, &products); err != nil {
		return nil, fmt.Errorf("failed to decode products: %w", err)
	}
	if products == nil {
		products = []models.Product{}
	}
	return products, nil
}

func (r *ProductRepository) Insert(ctx context.Context, product models.Product) (*mongo.InsertOneResult, error) {
	result, err := r.collection.InsertOne(ctx, product)
	if err != nil {
		return nil, fmt.Errorf("failed to insert product: %w", err)
	}
	r.logger.Debug().Interface("inserted_id", result.InsertedID).Msg("product inserted")
	return result, nil
}

// DeleteByID relays the raw acknowledgment; deleting an id that does not
// exist yields a zero DeletedCount, not an error.
func (r *ProductRepository) DeleteByID(ctx context.Context, id primitive.ObjectID) (*mongo.DeleteResult, error) {
	result, err := r.collection.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return nil, fmt.Errorf("failed to delete product: %w", err)
	}
	r.logger.Debug().Str("product_id", id.Hex()).Int64("deleted", result.DeletedCount).Msg("product delete")
	return result, nil
}
