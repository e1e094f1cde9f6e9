package client

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"foodie-finder-backend/internal/models"
)

// writeEnvelope writes an API response envelope
func writeEnvelope(w http.ResponseWriter, status int, message string, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(map[string]any{
		"success": status < 400,
		"message": message,
		"data":    data,
	})
}

func TestClientSendsBearerToken(t *testing.T) {
	var gotAuth string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		writeEnvelope(w, http.StatusOK, "", map[string]any{"favorites": []models.Restaurant{}})
	}))
	defer srv.Close()

	c := New(srv.URL)
	c.SetToken("tok123")

	if _, err := c.Favorites(context.Background()); err != nil {
		t.Fatalf("Favorites failed: %v", err)
	}
	if gotAuth != "Bearer tok123" {
		t.Errorf("Authorization header = %q, want %q", gotAuth, "Bearer tok123")
	}
}

func TestClientUnwrapsAPIError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeEnvelope(w, http.StatusConflict, "Restaurant already in favorites", nil)
	}))
	defer srv.Close()

	c := New(srv.URL)
	_, err := c.AddFavorite(context.Background(), "r1")
	if err == nil {
		t.Fatal("expected error")
	}

	apiErr, ok := err.(*APIError)
	if !ok {
		t.Fatalf("expected *APIError, got %T", err)
	}
	if apiErr.StatusCode != http.StatusConflict || apiErr.Message != "Restaurant already in favorites" {
		t.Errorf("unexpected error: %+v", apiErr)
	}
}

func TestClientSearchQueryEncoding(t *testing.T) {
	var gotQuery string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.RawQuery
		writeEnvelope(w, http.StatusOK, "", SearchResult{Restaurants: []models.Restaurant{}})
	}))
	defer srv.Close()

	c := New(srv.URL)
	rating := 4.5
	_, err := c.SearchRestaurants(context.Background(), SearchOptions{
		Cuisine:  "Italian",
		Features: []string{"WiFi", "Delivery"},
		Rating:   &rating,
		Page:     2,
		Limit:    6,
	})
	if err != nil {
		t.Fatalf("SearchRestaurants failed: %v", err)
	}

	q, err := url.ParseQuery(gotQuery)
	if err != nil {
		t.Fatalf("bad query %q: %v", gotQuery, err)
	}
	if q.Get("cuisine") != "Italian" || q.Get("features") != "WiFi,Delivery" ||
		q.Get("rating") != "4.5" || q.Get("page") != "2" || q.Get("limit") != "6" {
		t.Errorf("unexpected query: %q", gotQuery)
	}
	if q.Has("city") || q.Has("search") || q.Has("priceRange") {
		t.Errorf("absent filters must be omitted from the query: %q", gotQuery)
	}
}
