package handlers

import (
	"encoding/json"
	"net/http"

	"foodie-finder-backend/internal/middleware"
	"foodie-finder-backend/internal/models"
	"foodie-finder-backend/internal/services"

	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog/log"
)

// AuthHandler handles authentication and profile HTTP requests
type AuthHandler struct {
	authService      *services.AuthService
	favoritesService *services.FavoritesService
	validate         *validator.Validate
}

// NewAuthHandler creates a new auth handler
func NewAuthHandler(authService *services.AuthService, favoritesService *services.FavoritesService, validate *validator.Validate) *AuthHandler {
	return &AuthHandler{
		authService:      authService,
		favoritesService: favoritesService,
		validate:         validate,
	}
}

// RegisterRequest is the request body for registration
type RegisterRequest struct {
	Name     string `json:"name" validate:"required,min=2,max=50"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
}

// LoginRequest is the request body for login
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// UpdateProfileRequest is the request body for profile updates
type UpdateProfileRequest struct {
	Name   string  `json:"name" validate:"required,min=2,max=50"`
	Avatar *string `json:"avatar" validate:"omitempty,url"`
}

type sessionData struct {
	User  *models.User `json:"user"`
	Token string       `json:"token"`
}

type meUser struct {
	*models.User
	Favorites []*models.Restaurant `json:"favorites"`
}

// Register handles POST /api/auth/register
func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req RegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, "Invalid request body", http.StatusBadRequest)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		respondValidationError(w, err)
		return
	}

	user, token, err := h.authService.Register(r.Context(), req.Name, req.Email, req.Password)
	if err != nil {
		log.Error().Err(err).Str("email", req.Email).Msg("Failed to register user")
		respondServiceError(w, err, "Server error during registration")
		return
	}

	log.Info().Str("user_id", user.ID).Msg("User registered")
	respondData(w, http.StatusCreated, "User registered successfully", sessionData{User: user, Token: token})
}

// Login handles POST /api/auth/login
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, "Invalid request body", http.StatusBadRequest)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		respondValidationError(w, err)
		return
	}

	user, token, err := h.authService.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		respondServiceError(w, err, "Server error during login")
		return
	}

	log.Info().Str("user_id", user.ID).Msg("User logged in")
	respondData(w, http.StatusOK, "Login successful", sessionData{User: user, Token: token})
}

// Me handles GET /api/auth/me
func (h *AuthHandler) Me(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	userID := middleware.GetUserID(ctx)

	user, err := h.authService.GetUser(ctx, userID)
	if err != nil {
		log.Error().Err(err).Str("user_id", userID).Msg("Failed to get user")
		respondServiceError(w, err, "Server error fetching profile")
		return
	}

	favorites, err := h.favoritesService.List(ctx, userID)
	if err != nil {
		log.Error().Err(err).Str("user_id", userID).Msg("Failed to resolve favorites")
		respondServiceError(w, err, "Server error fetching profile")
		return
	}

	respondData(w, http.StatusOK, "", map[string]any{
		"user": meUser{User: user, Favorites: favorites},
	})
}

// UpdateProfile handles PUT /api/auth/profile
func (h *AuthHandler) UpdateProfile(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	userID := middleware.GetUserID(ctx)

	var req UpdateProfileRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, "Invalid request body", http.StatusBadRequest)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		respondValidationError(w, err)
		return
	}

	user, err := h.authService.UpdateProfile(ctx, userID, req.Name, req.Avatar)
	if err != nil {
		log.Error().Err(err).Str("user_id", userID).Msg("Failed to update profile")
		respondServiceError(w, err, "Server error updating profile")
		return
	}

	respondData(w, http.StatusOK, "Profile updated successfully", map[string]any{"user": user})
}
