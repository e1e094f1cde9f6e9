package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"foodie-finder-backend/internal/models"
	"foodie-finder-backend/internal/repository"

	"github.com/google/uuid"
)

const (
	defaultPage    = 1
	defaultLimit   = 12
	maxLimit       = 100
	defaultRadius  = 10.0 // kilometers
	metersPerKM    = 1000.0
)

// RestaurantStore is the persistence surface RestaurantService depends on.
type RestaurantStore interface {
	Create(ctx context.Context, rest *models.Restaurant) error
	GetByID(ctx context.Context, id string) (*models.Restaurant, error)
	Search(ctx context.Context, p models.SearchParams) ([]*models.Restaurant, int, error)
	Nearby(ctx context.Context, lat, lon, radiusMeters float64) ([]*models.Restaurant, error)
}

// RestaurantService handles catalog search and creation
type RestaurantService struct {
	restaurants RestaurantStore
}

// NewRestaurantService creates a new restaurant service
func NewRestaurantService(restaurants RestaurantStore) *RestaurantService {
	return &RestaurantService{restaurants: restaurants}
}

// Search runs a filtered, paginated catalog query. Page and limit are clamped
// before the query is composed so pathological values never reach the store.
func (s *RestaurantService) Search(ctx context.Context, p models.SearchParams) ([]*models.Restaurant, models.Pagination, error) {
	if p.Page < 1 {
		p.Page = defaultPage
	}
	if p.Limit < 1 {
		p.Limit = defaultLimit
	}
	if p.Limit > maxLimit {
		p.Limit = maxLimit
	}

	restaurants, total, err := s.restaurants.Search(ctx, p)
	if err != nil {
		return nil, models.Pagination{}, fmt.Errorf("failed to search restaurants: %w", err)
	}

	pagination := models.Pagination{
		Page:  p.Page,
		Limit: p.Limit,
		Total: total,
		Pages: (total + p.Limit - 1) / p.Limit,
	}
	return restaurants, pagination, nil
}

// GetByID retrieves a single restaurant
func (s *RestaurantService) GetByID(ctx context.Context, id string) (*models.Restaurant, error) {
	rest, err := s.restaurants.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get restaurant: %w", err)
	}
	return rest, nil
}

// Nearby returns restaurants within radiusKM of the given point, nearest
// first. Both coordinates are required; radius defaults to 10 km.
func (s *RestaurantService) Nearby(ctx context.Context, lat, lon *float64, radiusKM float64) ([]*models.Restaurant, error) {
	if lat == nil || lon == nil {
		return nil, ErrMissingCoordinates
	}
	if radiusKM <= 0 {
		radiusKM = defaultRadius
	}

	restaurants, err := s.restaurants.Nearby(ctx, *lat, *lon, radiusKM*metersPerKM)
	if err != nil {
		return nil, fmt.Errorf("failed to search nearby restaurants: %w", err)
	}
	return restaurants, nil
}

// Create validates and persists a new restaurant
func (s *RestaurantService) Create(ctx context.Context, rest *models.Restaurant) error {
	if err := validateRestaurant(rest); err != nil {
		return err
	}

	rest.ID = uuid.New().String()
	now := time.Now()
	rest.CreatedAt = now
	rest.UpdatedAt = now
	if rest.Images == nil {
		rest.Images = []string{}
	}
	if rest.Features == nil {
		rest.Features = []string{}
	}

	if err := s.restaurants.Create(ctx, rest); err != nil {
		return fmt.Errorf("failed to create restaurant: %w", err)
	}
	return nil
}

func validateRestaurant(rest *models.Restaurant) error {
	if !models.ValidCuisine(rest.Cuisine) {
		return fmt.Errorf("%w: unknown cuisine %q", ErrInvalidArgument, rest.Cuisine)
	}
	if !models.ValidPriceRange(rest.PriceRange) {
		return fmt.Errorf("%w: unknown price range %q", ErrInvalidArgument, rest.PriceRange)
	}
	for _, f := range rest.Features {
		if !models.ValidFeature(f) {
			return fmt.Errorf("%w: unknown feature %q", ErrInvalidArgument, f)
		}
	}
	if rest.Rating < 0 || rest.Rating > 5 {
		return fmt.Errorf("%w: rating must be between 0 and 5", ErrInvalidArgument)
	}
	if rest.ReviewCount < 0 {
		return fmt.Errorf("%w: review count cannot be negative", ErrInvalidArgument)
	}
	if rest.Location.Latitude < -90 || rest.Location.Latitude > 90 {
		return fmt.Errorf("%w: latitude must be between -90 and 90", ErrInvalidArgument)
	}
	if rest.Location.Longitude < -180 || rest.Location.Longitude > 180 {
		return fmt.Errorf("%w: longitude must be between -180 and 180", ErrInvalidArgument)
	}
	return nil
}
