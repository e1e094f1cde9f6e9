package services

import (
	"context"
	"errors"
	"testing"

	"foodie-finder-backend/internal/models"
)

type mockRestaurantStore struct {
	createFunc  func(ctx context.Context, rest *models.Restaurant) error
	getByIDFunc func(ctx context.Context, id string) (*models.Restaurant, error)
	searchFunc  func(ctx context.Context, p models.SearchParams) ([]*models.Restaurant, int, error)
	nearbyFunc  func(ctx context.Context, lat, lon, radiusMeters float64) ([]*models.Restaurant, error)
}

func (m *mockRestaurantStore) Create(ctx context.Context, rest *models.Restaurant) error {
	if m.createFunc != nil {
		return m.createFunc(ctx, rest)
	}
	return nil
}

func (m *mockRestaurantStore) GetByID(ctx context.Context, id string) (*models.Restaurant, error) {
	if m.getByIDFunc != nil {
		return m.getByIDFunc(ctx, id)
	}
	return nil, errors.New("not implemented")
}

func (m *mockRestaurantStore) Search(ctx context.Context, p models.SearchParams) ([]*models.Restaurant, int, error) {
	if m.searchFunc != nil {
		return m.searchFunc(ctx, p)
	}
	return []*models.Restaurant{}, 0, nil
}

func (m *mockRestaurantStore) Nearby(ctx context.Context, lat, lon, radiusMeters float64) ([]*models.Restaurant, error) {
	if m.nearbyFunc != nil {
		return m.nearbyFunc(ctx, lat, lon, radiusMeters)
	}
	return []*models.Restaurant{}, nil
}

func validTestRestaurant() *models.Restaurant {
	return &models.Restaurant{
		Name:        "Test Kitchen",
		Description: "A perfectly ordinary test kitchen.",
		Cuisine:     "Italian",
		PriceRange:  "budget",
		Location: models.Location{
			Address:   "1 Test Street",
			City:      "Testville",
			Latitude:  40.0,
			Longitude: -74.0,
		},
		Rating:      4.2,
		ReviewCount: 10,
		Features:    []string{"WiFi"},
	}
}

func TestSearchClampsPageAndLimit(t *testing.T) {
	tests := []struct {
		name      string
		page      int
		limit     int
		wantPage  int
		wantLimit int
	}{
		{"defaults", 0, 0, 1, 12},
		{"negative page", -3, 5, 1, 5},
		{"negative limit", 2, -1, 2, 12},
		{"limit capped", 1, 1000, 1, 100},
		{"passthrough", 3, 24, 3, 24},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var got models.SearchParams
			store := &mockRestaurantStore{
				searchFunc: func(ctx context.Context, p models.SearchParams) ([]*models.Restaurant, int, error) {
					got = p
					return []*models.Restaurant{}, 0, nil
				},
			}
			svc := NewRestaurantService(store)

			_, _, err := svc.Search(context.Background(), models.SearchParams{Page: tt.page, Limit: tt.limit})
			if err != nil {
				t.Fatalf("Search failed: %v", err)
			}
			if got.Page != tt.wantPage || got.Limit != tt.wantLimit {
				t.Errorf("store received page=%d limit=%d, want page=%d limit=%d",
					got.Page, got.Limit, tt.wantPage, tt.wantLimit)
			}
		})
	}
}

func TestSearchPaginationMetadata(t *testing.T) {
	store := &mockRestaurantStore{
		searchFunc: func(ctx context.Context, p models.SearchParams) ([]*models.Restaurant, int, error) {
			return []*models.Restaurant{}, 25, nil
		},
	}
	svc := NewRestaurantService(store)

	_, pagination, err := svc.Search(context.Background(), models.SearchParams{Page: 2, Limit: 12})
	if err != nil {
		t.Fatalf("Search failed: %v", err)
	}
	if pagination.Page != 2 || pagination.Limit != 12 || pagination.Total != 25 {
		t.Errorf("unexpected pagination: %+v", pagination)
	}
	if pagination.Pages != 3 {
		t.Errorf("pages = %d, want ceil(25/12) = 3", pagination.Pages)
	}
}

func TestNearbyRequiresBothCoordinates(t *testing.T) {
	svc := NewRestaurantService(&mockRestaurantStore{})
	lat := 48.85

	if _, err := svc.Nearby(context.Background(), nil, nil, 0); !errors.Is(err, ErrMissingCoordinates) {
		t.Errorf("expected ErrMissingCoordinates, got %v", err)
	}
	if _, err := svc.Nearby(context.Background(), &lat, nil, 0); !errors.Is(err, ErrMissingCoordinates) {
		t.Errorf("expected ErrMissingCoordinates with only latitude, got %v", err)
	}
}

func TestNearbyRadiusConversion(t *testing.T) {
	var gotRadius float64
	store := &mockRestaurantStore{
		nearbyFunc: func(ctx context.Context, lat, lon, radiusMeters float64) ([]*models.Restaurant, error) {
			gotRadius = radiusMeters
			return []*models.Restaurant{}, nil
		},
	}
	svc := NewRestaurantService(store)
	lat, lon := 48.8566, 2.3522

	if _, err := svc.Nearby(context.Background(), &lat, &lon, 2); err != nil {
		t.Fatalf("Nearby failed: %v", err)
	}
	if gotRadius != 2000 {
		t.Errorf("radius = %v meters, want 2000", gotRadius)
	}

	// default radius is 10 km
	if _, err := svc.Nearby(context.Background(), &lat, &lon, 0); err != nil {
		t.Fatalf("Nearby failed: %v", err)
	}
	if gotRadius != 10000 {
		t.Errorf("default radius = %v meters, want 10000", gotRadius)
	}
}

func TestCreateAssignsIdentityAndTimestamps(t *testing.T) {
	store := &mockRestaurantStore{}
	svc := NewRestaurantService(store)
	rest := validTestRestaurant()

	if err := svc.Create(context.Background(), rest); err != nil {
		t.Fatalf("Create failed: %v", err)
	}
	if rest.ID == "" {
		t.Error("expected ID to be assigned")
	}
	if rest.CreatedAt.IsZero() || rest.UpdatedAt.IsZero() {
		t.Error("expected timestamps to be assigned")
	}
	if rest.Images == nil {
		t.Error("expected images to default to an empty list")
	}
}

func TestCreateValidation(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(r *models.Restaurant)
	}{
		{"unknown cuisine", func(r *models.Restaurant) { r.Cuisine = "Klingon" }},
		{"unknown price range", func(r *models.Restaurant) { r.PriceRange = "free" }},
		{"unknown feature", func(r *models.Restaurant) { r.Features = []string{"Time Travel"} }},
		{"rating too high", func(r *models.Restaurant) { r.Rating = 5.1 }},
		{"negative rating", func(r *models.Restaurant) { r.Rating = -0.1 }},
		{"negative review count", func(r *models.Restaurant) { r.ReviewCount = -1 }},
		{"latitude out of range", func(r *models.Restaurant) { r.Location.Latitude = 91 }},
		{"longitude out of range", func(r *models.Restaurant) { r.Location.Longitude = -181 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := NewRestaurantService(&mockRestaurantStore{})
			rest := validTestRestaurant()
			tt.mutate(rest)

			err := svc.Create(context.Background(), rest)
			if !errors.Is(err, ErrInvalidArgument) {
				t.Errorf("expected ErrInvalidArgument, got %v", err)
			}
		})
	}
}
