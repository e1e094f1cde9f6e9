package services

import (
	"context"
	"fmt"

	"foodie-finder-backend/internal/models"

	"golang.org/x/sync/errgroup"
)

// FilterOptionStore provides the distinct value queries behind filter options.
type FilterOptionStore interface {
	DistinctCuisines(ctx context.Context) ([]string, error)
	DistinctCities(ctx context.Context) ([]string, error)
	DistinctFeatures(ctx context.Context) ([]string, error)
}

// FilterOptionsService exposes the values available for search filtering
type FilterOptionsService struct {
	restaurants FilterOptionStore
}

// NewFilterOptionsService creates a new filter options service
func NewFilterOptionsService(restaurants FilterOptionStore) *FilterOptionsService {
	return &FilterOptionsService{restaurants: restaurants}
}

// Get returns the distinct cuisines, cities and features present in the
// catalog plus the fixed price range list. The three distinct queries run
// concurrently.
func (s *FilterOptionsService) Get(ctx context.Context) (*models.FilterOptions, error) {
	opts := &models.FilterOptions{
		PriceRanges: models.PriceRanges,
	}

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		opts.Cuisines, err = s.restaurants.DistinctCuisines(ctx)
		return err
	})
	g.Go(func() error {
		var err error
		opts.Cities, err = s.restaurants.DistinctCities(ctx)
		return err
	})
	g.Go(func() error {
		var err error
		opts.Features, err = s.restaurants.DistinctFeatures(ctx)
		return err
	})

	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("failed to get filter options: %w", err)
	}
	return opts, nil
}
