package handlers

import (
	"net/http"

	"foodie-finder-backend/internal/middleware"
	"foodie-finder-backend/internal/services"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

// UserHandler handles favorites HTTP requests
type UserHandler struct {
	favoritesService *services.FavoritesService
}

// NewUserHandler creates a new user handler
func NewUserHandler(favoritesService *services.FavoritesService) *UserHandler {
	return &UserHandler{favoritesService: favoritesService}
}

// GetFavorites handles GET /api/users/favorites
func (h *UserHandler) GetFavorites(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	userID := middleware.GetUserID(ctx)

	favorites, err := h.favoritesService.List(ctx, userID)
	if err != nil {
		log.Error().Err(err).Str("user_id", userID).Msg("Failed to list favorites")
		respondServiceError(w, err, "Server error fetching favorites")
		return
	}

	respondData(w, http.StatusOK, "", map[string]any{"favorites": favorites})
}

// AddFavorite handles POST /api/users/favorites/{restaurantId}
func (h *UserHandler) AddFavorite(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	userID := middleware.GetUserID(ctx)
	restaurantID := chi.URLParam(r, "restaurantId")

	favorites, err := h.favoritesService.Add(ctx, userID, restaurantID)
	if err != nil {
		respondServiceError(w, err, "Server error adding to favorites")
		return
	}

	log.Info().Str("user_id", userID).Str("restaurant_id", restaurantID).Msg("Favorite added")
	respondData(w, http.StatusOK, "Restaurant added to favorites", map[string]any{"favorites": favorites})
}

// RemoveFavorite handles DELETE /api/users/favorites/{restaurantId}
func (h *UserHandler) RemoveFavorite(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	userID := middleware.GetUserID(ctx)
	restaurantID := chi.URLParam(r, "restaurantId")

	favorites, err := h.favoritesService.Remove(ctx, userID, restaurantID)
	if err != nil {
		log.Error().Err(err).Str("user_id", userID).Str("restaurant_id", restaurantID).Msg("Failed to remove favorite")
		respondServiceError(w, err, "Server error removing from favorites")
		return
	}

	respondData(w, http.StatusOK, "Restaurant removed from favorites", map[string]any{"favorites": favorites})
}
