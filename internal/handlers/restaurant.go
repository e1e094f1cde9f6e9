package handlers

import (
	"encoding/json"
	"net/http"
	"strconv"
	"strings"

	"foodie-finder-backend/internal/models"
	"foodie-finder-backend/internal/services"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog/log"
)

// RestaurantHandler handles restaurant catalog HTTP requests
type RestaurantHandler struct {
	restaurantService *services.RestaurantService
	filterOptions     *services.FilterOptionsService
	imageService      *services.ImageService
	validate          *validator.Validate
}

// NewRestaurantHandler creates a new restaurant handler
func NewRestaurantHandler(
	restaurantService *services.RestaurantService,
	filterOptions *services.FilterOptionsService,
	imageService *services.ImageService,
	validate *validator.Validate,
) *RestaurantHandler {
	return &RestaurantHandler{
		restaurantService: restaurantService,
		filterOptions:     filterOptions,
		imageService:      imageService,
		validate:          validate,
	}
}

// List handles GET /api/restaurants
func (h *RestaurantHandler) List(w http.ResponseWriter, r *http.Request) {
	params := parseSearchParams(r)

	restaurants, pagination, err := h.restaurantService.Search(r.Context(), params)
	if err != nil {
		log.Error().Err(err).Msg("Failed to search restaurants")
		respondServiceError(w, err, "Server error fetching restaurants")
		return
	}

	respondData(w, http.StatusOK, "", map[string]any{
		"restaurants": restaurants,
		"pagination":  pagination,
	})
}

// parseSearchParams reads the optional filters and the page window from the
// query string. Absent filters stay zero-valued and are skipped downstream.
func parseSearchParams(r *http.Request) models.SearchParams {
	q := r.URL.Query()

	params := models.SearchParams{
		Cuisine:    q.Get("cuisine"),
		PriceRange: q.Get("priceRange"),
		City:       q.Get("city"),
		Search:     q.Get("search"),
	}

	if raw := q.Get("features"); raw != "" {
		for _, f := range strings.Split(raw, ",") {
			if f = strings.TrimSpace(f); f != "" {
				params.Features = append(params.Features, f)
			}
		}
	}
	if raw := q.Get("rating"); raw != "" {
		if rating, err := strconv.ParseFloat(raw, 64); err == nil {
			params.Rating = &rating
		}
	}
	params.Page, _ = strconv.Atoi(q.Get("page"))
	params.Limit, _ = strconv.Atoi(q.Get("limit"))

	return params
}

// GetByID handles GET /api/restaurants/{id}
func (h *RestaurantHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	restaurant, err := h.restaurantService.GetByID(r.Context(), id)
	if err != nil {
		respondServiceError(w, err, "Server error fetching restaurant")
		return
	}

	respondData(w, http.StatusOK, "", map[string]any{"restaurant": restaurant})
}

// Nearby handles GET /api/restaurants/nearby
func (h *RestaurantHandler) Nearby(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	var lat, lon *float64
	if raw := q.Get("latitude"); raw != "" {
		if v, err := strconv.ParseFloat(raw, 64); err == nil {
			lat = &v
		}
	}
	if raw := q.Get("longitude"); raw != "" {
		if v, err := strconv.ParseFloat(raw, 64); err == nil {
			lon = &v
		}
	}
	radius, _ := strconv.ParseFloat(q.Get("radius"), 64)

	restaurants, err := h.restaurantService.Nearby(r.Context(), lat, lon, radius)
	if err != nil {
		respondServiceError(w, err, "Server error searching nearby restaurants")
		return
	}

	respondData(w, http.StatusOK, "", map[string]any{"restaurants": restaurants})
}

// FilterOptions handles GET /api/restaurants/filter-options
func (h *RestaurantHandler) FilterOptions(w http.ResponseWriter, r *http.Request) {
	opts, err := h.filterOptions.Get(r.Context())
	if err != nil {
		log.Error().Err(err).Msg("Failed to get filter options")
		respondServiceError(w, err, "Server error fetching filter options")
		return
	}

	respondData(w, http.StatusOK, "", opts)
}

// CreateRestaurantRequest is the request body for restaurant creation
type CreateRestaurantRequest struct {
	Name        string `json:"name" validate:"required,min=2,max=100"`
	Description string `json:"description" validate:"required,min=10,max=1000"`
	Cuisine     string `json:"cuisine" validate:"required"`
	PriceRange  string `json:"priceRange" validate:"required"`
	Location    struct {
		Address   string   `json:"address" validate:"required"`
		City      string   `json:"city" validate:"required"`
		Latitude  *float64 `json:"latitude" validate:"required"`
		Longitude *float64 `json:"longitude" validate:"required"`
	} `json:"location"`
	Images       []string            `json:"images" validate:"omitempty,dive,url"`
	Rating       float64             `json:"rating"`
	ReviewCount  int                 `json:"reviewCount"`
	Features     []string            `json:"features"`
	OpeningHours models.OpeningHours `json:"openingHours"`
	Contact      models.Contact      `json:"contact"`
}

// Create handles POST /api/restaurants
func (h *RestaurantHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req CreateRestaurantRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, "Invalid request body", http.StatusBadRequest)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		respondValidationError(w, err)
		return
	}

	restaurant := &models.Restaurant{
		Name:        req.Name,
		Description: req.Description,
		Cuisine:     req.Cuisine,
		PriceRange:  req.PriceRange,
		Location: models.Location{
			Address:   req.Location.Address,
			City:      req.Location.City,
			Latitude:  *req.Location.Latitude,
			Longitude: *req.Location.Longitude,
		},
		Images:       req.Images,
		Rating:       req.Rating,
		ReviewCount:  req.ReviewCount,
		Features:     req.Features,
		OpeningHours: req.OpeningHours,
		Contact:      req.Contact,
	}

	if err := h.restaurantService.Create(r.Context(), restaurant); err != nil {
		log.Error().Err(err).Str("name", req.Name).Msg("Failed to create restaurant")
		respondServiceError(w, err, "Server error creating restaurant")
		return
	}

	log.Info().Str("restaurant_id", restaurant.ID).Str("name", restaurant.Name).Msg("Restaurant created")
	respondData(w, http.StatusCreated, "Restaurant created successfully", map[string]any{"restaurant": restaurant})
}

// PresignImageRequest is the request body for image upload presigning
type PresignImageRequest struct {
	ContentType string `json:"contentType" validate:"required"`
}

// PresignImage handles POST /api/restaurants/{id}/images
func (h *RestaurantHandler) PresignImage(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	var req PresignImageRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, "Invalid request body", http.StatusBadRequest)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		respondValidationError(w, err)
		return
	}

	upload, err := h.imageService.PresignUpload(r.Context(), id, req.ContentType)
	if err != nil {
		log.Error().Err(err).Str("restaurant_id", id).Msg("Failed to presign image upload")
		respondServiceError(w, err, "Server error preparing image upload")
		return
	}

	respondData(w, http.StatusOK, "", upload)
}

// ConfirmImageRequest is the request body for image upload confirmation
type ConfirmImageRequest struct {
	Key string `json:"key" validate:"required"`
}

// ConfirmImage handles PUT /api/restaurants/{id}/images/confirm
func (h *RestaurantHandler) ConfirmImage(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	var req ConfirmImageRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, "Invalid request body", http.StatusBadRequest)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		respondValidationError(w, err)
		return
	}

	url, err := h.imageService.ConfirmUpload(r.Context(), id, req.Key)
	if err != nil {
		log.Error().Err(err).Str("restaurant_id", id).Msg("Failed to confirm image upload")
		respondServiceError(w, err, "Server error recording image")
		return
	}

	respondData(w, http.StatusOK, "Image recorded", map[string]any{"url": url})
}
