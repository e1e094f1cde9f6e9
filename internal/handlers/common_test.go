package handlers

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"foodie-finder-backend/internal/services"

	"github.com/go-playground/validator/v10"
)

func TestRespondServiceErrorMapping(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
	}{
		{"not found", services.ErrNotFound, http.StatusNotFound},
		{"invalid argument", fmt.Errorf("%w: bad cuisine", services.ErrInvalidArgument), http.StatusBadRequest},
		{"missing coordinates", services.ErrMissingCoordinates, http.StatusBadRequest},
		{"email taken", services.ErrEmailTaken, http.StatusBadRequest},
		{"invalid credentials", services.ErrInvalidCredentials, http.StatusUnauthorized},
		{"already favorite", services.ErrAlreadyFavorite, http.StatusConflict},
		{"unexpected", fmt.Errorf("connection refused"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			respondServiceError(w, tt.err, "Server error")

			if w.Code != tt.wantStatus {
				t.Errorf("status = %d, want %d", w.Code, tt.wantStatus)
			}

			var resp Response
			if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
				t.Fatalf("response is not valid JSON: %v", err)
			}
			if resp.Success {
				t.Error("error responses must have success=false")
			}
			if resp.Message == "" {
				t.Error("error responses must carry a message")
			}
		})
	}
}

func TestRespondServiceErrorHidesInternalDetails(t *testing.T) {
	w := httptest.NewRecorder()
	respondServiceError(w, fmt.Errorf("pq: connection reset by peer"), "Server error fetching restaurants")

	var resp Response
	json.NewDecoder(w.Body).Decode(&resp)
	if resp.Message != "Server error fetching restaurants" {
		t.Errorf("internal error leaked to client: %q", resp.Message)
	}
}

func TestRespondValidationErrorFieldMessages(t *testing.T) {
	validate := validator.New()
	req := RegisterRequest{Name: "A", Email: "not-an-email"}
	err := validate.Struct(req)
	if err == nil {
		t.Fatal("expected validation to fail")
	}

	w := httptest.NewRecorder()
	respondValidationError(w, err)

	if w.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", w.Code)
	}

	var resp Response
	if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
		t.Fatalf("response is not valid JSON: %v", err)
	}
	if resp.Success {
		t.Error("validation failures must have success=false")
	}
	if len(resp.Errors) != 3 {
		t.Errorf("expected messages for Name, Email and Password, got %v", resp.Errors)
	}
	for _, fe := range resp.Errors {
		if fe.Field == "" || fe.Message == "" {
			t.Errorf("incomplete field error: %+v", fe)
		}
	}
}
