package cmd

import (
	"context"

	"foodie-finder-backend/internal/config"
	"foodie-finder-backend/internal/repository"
	"foodie-finder-backend/internal/seed"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog/log"
)

// Seed replaces the restaurant catalog with the sample data set.
func Seed() {
	cfg, err := config.Load("config.yaml")
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to load configuration")
	}

	setupLogger(cfg.Log.Level)

	db, err := pgxpool.New(context.Background(), cfg.Database.DSN())
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to database")
	}
	defer db.Close()

	ctx := context.Background()
	if _, err := db.Exec(ctx, `DELETE FROM restaurants`); err != nil {
		log.Fatal().Err(err).Msg("Failed to clear restaurants")
	}
	log.Info().Msg("Existing restaurants cleared")

	restaurantRepo := repository.NewRestaurantRepository(db)
	restaurants := seed.SampleRestaurants()
	for _, r := range restaurants {
		if err := restaurantRepo.Create(ctx, r); err != nil {
			log.Fatal().Err(err).Str("name", r.Name).Msg("Failed to seed restaurant")
		}
	}

	log.Info().Int("count", len(restaurants)).Msg("Restaurants seeded")
}
