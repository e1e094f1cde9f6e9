package client

import (
	"context"
	"errors"
	"sync"

	"foodie-finder-backend/internal/models"
)

// ErrToggleInFlight is returned when a toggle is requested for a restaurant
// whose previous toggle has not resolved yet.
var ErrToggleInFlight = errors.New("favorite toggle already in flight for this restaurant")

// Favorites is a local mirror of the server-side favorites list plus an id
// set for O(1) membership checks. Local state is updated only after the
// backend confirms a mutation, and at most one toggle per restaurant may be
// outstanding at a time.
type Favorites struct {
	api *Client

	mu       sync.Mutex
	items    []models.Restaurant
	ids      map[string]struct{}
	inflight map[string]struct{}
}

// NewFavorites creates an empty favorites cache bound to the API client
func NewFavorites(api *Client) *Favorites {
	return &Favorites{
		api:      api,
		ids:      make(map[string]struct{}),
		inflight: make(map[string]struct{}),
	}
}

// Load replaces the cache with the server-side list
func (f *Favorites) Load(ctx context.Context) error {
	items, err := f.api.Favorites(ctx)
	if err != nil {
		return err
	}

	f.mu.Lock()
	f.items = items
	f.ids = make(map[string]struct{}, len(items))
	for _, r := range items {
		f.ids[r.ID] = struct{}{}
	}
	f.mu.Unlock()
	return nil
}

// IsFavorite reports whether the restaurant is in the local set
func (f *Favorites) IsFavorite(restaurantID string) bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	_, ok := f.ids[restaurantID]
	return ok
}

// List returns a copy of the cached favorites in order
func (f *Favorites) List() []models.Restaurant {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]models.Restaurant, len(f.items))
	copy(out, f.items)
	return out
}

// Toggle adds or removes the restaurant based on local membership. While a
// toggle for the same restaurant is outstanding, further toggles fail with
// ErrToggleInFlight instead of racing it.
func (f *Favorites) Toggle(ctx context.Context, restaurant models.Restaurant) error {
	f.mu.Lock()
	if _, busy := f.inflight[restaurant.ID]; busy {
		f.mu.Unlock()
		return ErrToggleInFlight
	}
	f.inflight[restaurant.ID] = struct{}{}
	_, isFavorite := f.ids[restaurant.ID]
	f.mu.Unlock()

	var err error
	if isFavorite {
		_, err = f.api.RemoveFavorite(ctx, restaurant.ID)
	} else {
		_, err = f.api.AddFavorite(ctx, restaurant.ID)
	}

	f.mu.Lock()
	delete(f.inflight, restaurant.ID)
	if err == nil {
		if isFavorite {
			f.removeLocked(restaurant.ID)
		} else {
			f.addLocked(restaurant)
		}
	}
	f.mu.Unlock()
	return err
}

// Clear empties the cache, e.g. on logout
func (f *Favorites) Clear() {
	f.mu.Lock()
	f.items = nil
	f.ids = make(map[string]struct{})
	f.mu.Unlock()
}

func (f *Favorites) addLocked(restaurant models.Restaurant) {
	if _, ok := f.ids[restaurant.ID]; ok {
		return
	}
	f.items = append(f.items, restaurant)
	f.ids[restaurant.ID] = struct{}{}
}

func (f *Favorites) removeLocked(restaurantID string) {
	delete(f.ids, restaurantID)
	for i, r := range f.items {
		if r.ID == restaurantID {
			f.items = append(f.items[:i], f.items[i+1:]...)
			break
		}
	}
}
