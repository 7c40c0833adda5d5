package main

import (
	"context"

	"github.com/RedEye75/SmartZone-Server/infra"
	"github.com/RedEye75/SmartZone-Server/models"
	"github.com/RedEye75/SmartZone-Server/repositories"
	"github.com/rs/zerolog/log"
)

// Seeds the productCategory collection. The API never writes categories,
// so this is the only way they get created.
func main() {
	infra.Initialize()

	cfg, err := infra.LoadConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load configuration")
	}

	logger := infra.NewLogger(cfg)

	ctx := context.Background()
	client, db, err := infra.SetupDB(ctx, cfg)
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to set up database")
	}
	defer func() {
		if err := client.Disconnect(ctx); err != nil {
			logger.Error().Err(err).Msg("failed to disconnect from database")
		}
	}()

	categoryRepository := repositories.NewCategoryRepository(db, logger)

	categories := []models.Category{
		{Category: "Samsung"},
		{Category: "Apple"},
		{Category: "Xiaomi"},
	}

	for _, category := range categories {
		result, err := categoryRepository.Insert(ctx, category)
		if err != nil {
			logger.Fatal().Err(err).Str("category", category.Category).Msg("failed to seed category")
		}
		logger.Info().Str("category", category.Category).Interface("inserted_id", result.InsertedID).Msg("category seeded")
	}
}
