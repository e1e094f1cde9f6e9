package services

import (
	"context"
	"errors"
	"fmt"

	"foodie-finder-backend/internal/models"
	"foodie-finder-backend/internal/repository"
)

// FavoriteStore is the persistence surface FavoritesService depends on.
type FavoriteStore interface {
	AddFavorite(ctx context.Context, userID, restaurantID string) error
	RemoveFavorite(ctx context.Context, userID, restaurantID string) error
	GetFavoriteIDs(ctx context.Context, userID string) ([]string, error)
	GetFavoriteRestaurants(ctx context.Context, userID string) ([]*models.Restaurant, error)
}

// RestaurantGetter resolves restaurant ids before they are favorited.
type RestaurantGetter interface {
	GetByID(ctx context.Context, id string) (*models.Restaurant, error)
}

// FavoritesService maintains per-user favorite restaurant sets
type FavoritesService struct {
	favorites   FavoriteStore
	restaurants RestaurantGetter
}

// NewFavoritesService creates a new favorites service
func NewFavoritesService(favorites FavoriteStore, restaurants RestaurantGetter) *FavoritesService {
	return &FavoritesService{
		favorites:   favorites,
		restaurants: restaurants,
	}
}

// Add favorites a restaurant for a user and returns the updated id list.
// Adding an already-favorited restaurant fails with ErrAlreadyFavorite and
// leaves the set unchanged.
func (s *FavoritesService) Add(ctx context.Context, userID, restaurantID string) ([]string, error) {
	if _, err := s.restaurants.GetByID(ctx, restaurantID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to resolve restaurant: %w", err)
	}

	if err := s.favorites.AddFavorite(ctx, userID, restaurantID); err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			return nil, ErrAlreadyFavorite
		}
		return nil, fmt.Errorf("failed to add favorite: %w", err)
	}

	return s.favorites.GetFavoriteIDs(ctx, userID)
}

// Remove unfavorites a restaurant and returns the updated id list. Removing
// an absent favorite is a no-op, not an error.
func (s *FavoritesService) Remove(ctx context.Context, userID, restaurantID string) ([]string, error) {
	if err := s.favorites.RemoveFavorite(ctx, userID, restaurantID); err != nil {
		return nil, fmt.Errorf("failed to remove favorite: %w", err)
	}
	return s.favorites.GetFavoriteIDs(ctx, userID)
}

// List returns the user's favorites resolved to full restaurant records
func (s *FavoritesService) List(ctx context.Context, userID string) ([]*models.Restaurant, error) {
	restaurants, err := s.favorites.GetFavoriteRestaurants(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list favorites: %w", err)
	}
	return restaurants, nil
}
