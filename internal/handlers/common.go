package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"foodie-finder-backend/internal/services"

	"github.com/go-playground/validator/v10"
)

// Response is the envelope every endpoint responds with
type Response struct {
	Success bool         `json:"success"`
	Message string       `json:"message,omitempty"`
	Data    any          `json:"data,omitempty"`
	Errors  []FieldError `json:"errors,omitempty"`
}

// FieldError carries a per-field validation message
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// respondData sends a success envelope
func respondData(w http.ResponseWriter, statusCode int, message string, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	json.NewEncoder(w).Encode(Response{Success: true, Message: message, Data: data})
}

// respondError sends an error envelope
func respondError(w http.ResponseWriter, message string, statusCode int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	json.NewEncoder(w).Encode(Response{Success: false, Message: message})
}

// respondValidationError sends field-level validation messages
func respondValidationError(w http.ResponseWriter, err error) {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		respondError(w, "Validation errors", http.StatusBadRequest)
		return
	}

	fields := make([]FieldError, 0, len(verrs))
	for _, fe := range verrs {
		fields = append(fields, FieldError{Field: fe.Field(), Message: fieldMessage(fe)})
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusBadRequest)
	json.NewEncoder(w).Encode(Response{Success: false, Message: "Validation errors", Errors: fields})
}

func fieldMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", fe.Field())
	case "email":
		return "Please enter a valid email"
	case "min":
		return fmt.Sprintf("%s must be at least %s characters", fe.Field(), fe.Param())
	case "max":
		return fmt.Sprintf("%s cannot be more than %s characters", fe.Field(), fe.Param())
	case "url":
		return fmt.Sprintf("%s must be a valid URL", fe.Field())
	default:
		return fmt.Sprintf("%s is invalid", fe.Field())
	}
}

// respondServiceError maps service sentinel errors onto the HTTP taxonomy.
// Unrecognized errors become a 500 with the given fallback message.
func respondServiceError(w http.ResponseWriter, err error, fallback string) {
	switch {
	case errors.Is(err, services.ErrNotFound):
		respondError(w, "Not found", http.StatusNotFound)
	case errors.Is(err, services.ErrInvalidArgument):
		respondError(w, err.Error(), http.StatusBadRequest)
	case errors.Is(err, services.ErrMissingCoordinates):
		respondError(w, "Latitude and longitude are required", http.StatusBadRequest)
	case errors.Is(err, services.ErrEmailTaken):
		respondError(w, "User already exists with this email", http.StatusBadRequest)
	case errors.Is(err, services.ErrInvalidCredentials):
		respondError(w, "Invalid credentials", http.StatusUnauthorized)
	case errors.Is(err, services.ErrAlreadyFavorite):
		respondError(w, "Restaurant already in favorites", http.StatusConflict)
	default:
		respondError(w, fallback, http.StatusInternalServerError)
	}
}
