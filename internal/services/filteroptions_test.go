package services

import (
	"context"
	"errors"
	"testing"
)

type mockFilterOptionStore struct {
	cuisinesFunc func(ctx context.Context) ([]string, error)
	citiesFunc   func(ctx context.Context) ([]string, error)
	featuresFunc func(ctx context.Context) ([]string, error)
}

func (m *mockFilterOptionStore) DistinctCuisines(ctx context.Context) ([]string, error) {
	if m.cuisinesFunc != nil {
		return m.cuisinesFunc(ctx)
	}
	return []string{}, nil
}

func (m *mockFilterOptionStore) DistinctCities(ctx context.Context) ([]string, error) {
	if m.citiesFunc != nil {
		return m.citiesFunc(ctx)
	}
	return []string{}, nil
}

func (m *mockFilterOptionStore) DistinctFeatures(ctx context.Context) ([]string, error) {
	if m.featuresFunc != nil {
		return m.featuresFunc(ctx)
	}
	return []string{}, nil
}

func TestFilterOptions(t *testing.T) {
	store := &mockFilterOptionStore{
		cuisinesFunc: func(ctx context.Context) ([]string, error) {
			return []string{"French", "Italian"}, nil
		},
		citiesFunc: func(ctx context.Context) ([]string, error) {
			return []string{"New York", "Paris"}, nil
		},
		featuresFunc: func(ctx context.Context) ([]string, error) {
			return []string{"Delivery", "WiFi"}, nil
		},
	}
	svc := NewFilterOptionsService(store)

	opts, err := svc.Get(context.Background())
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if len(opts.Cuisines) != 2 || opts.Cuisines[0] != "French" {
		t.Errorf("unexpected cuisines: %v", opts.Cuisines)
	}
	if len(opts.Cities) != 2 || len(opts.Features) != 2 {
		t.Errorf("unexpected options: %+v", opts)
	}
	if len(opts.PriceRanges) != 3 || opts.PriceRanges[0] != "budget" {
		t.Errorf("expected the fixed price range list, got %v", opts.PriceRanges)
	}
}

func TestFilterOptionsPropagatesErrors(t *testing.T) {
	storeErr := errors.New("db down")
	store := &mockFilterOptionStore{
		citiesFunc: func(ctx context.Context) ([]string, error) {
			return nil, storeErr
		},
	}
	svc := NewFilterOptionsService(store)

	if _, err := svc.Get(context.Background()); !errors.Is(err, storeErr) {
		t.Errorf("expected store error to propagate, got %v", err)
	}
}
