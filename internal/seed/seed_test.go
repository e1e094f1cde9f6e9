package seed

import (
	"sort"
	"testing"

	"foodie-finder-backend/internal/models"
)

func TestSampleRestaurantsAreValid(t *testing.T) {
	restaurants := SampleRestaurants()
	if len(restaurants) != 6 {
		t.Fatalf("expected 6 sample restaurants, got %d", len(restaurants))
	}

	seen := map[string]bool{}
	for _, r := range restaurants {
		if r.ID == "" {
			t.Errorf("%s: missing id", r.Name)
		}
		if seen[r.ID] {
			t.Errorf("%s: duplicate id %s", r.Name, r.ID)
		}
		seen[r.ID] = true

		if !models.ValidCuisine(r.Cuisine) {
			t.Errorf("%s: invalid cuisine %q", r.Name, r.Cuisine)
		}
		if !models.ValidPriceRange(r.PriceRange) {
			t.Errorf("%s: invalid price range %q", r.Name, r.PriceRange)
		}
		for _, f := range r.Features {
			if !models.ValidFeature(f) {
				t.Errorf("%s: invalid feature %q", r.Name, f)
			}
		}
		if r.Rating < 0 || r.Rating > 5 {
			t.Errorf("%s: rating %v out of range", r.Name, r.Rating)
		}
		if r.ReviewCount < 0 {
			t.Errorf("%s: negative review count", r.Name)
		}
		if lat := r.Location.Latitude; lat < -90 || lat > 90 {
			t.Errorf("%s: latitude %v out of range", r.Name, lat)
		}
		if lon := r.Location.Longitude; lon < -180 || lon > 180 {
			t.Errorf("%s: longitude %v out of range", r.Name, lon)
		}
		if len(r.OpeningHours) != 7 {
			t.Errorf("%s: expected hours for all 7 days, got %d", r.Name, len(r.OpeningHours))
		}
	}
}

func TestSampleRestaurantsCoverExpectedCuisines(t *testing.T) {
	want := map[string]string{
		"French":     "Chez Laurent",
		"Japanese":   "Sakura Sushi",
		"Italian":    "Mama Mia Pizzeria",
		"Indian":     "Spice Garden",
		"Mexican":    "El Mariachi",
		"Vegetarian": "Green Bowl",
	}

	for _, r := range SampleRestaurants() {
		name, ok := want[r.Cuisine]
		if !ok {
			t.Errorf("unexpected cuisine %q on %s", r.Cuisine, r.Name)
			continue
		}
		if r.Name != name {
			t.Errorf("cuisine %q: got %q, want %q", r.Cuisine, r.Name, name)
		}
		delete(want, r.Cuisine)
	}
	if len(want) != 0 {
		t.Errorf("missing cuisines: %v", want)
	}
}

func TestSampleRestaurantsItalianFilter(t *testing.T) {
	var matches []*models.Restaurant
	for _, r := range SampleRestaurants() {
		if r.Cuisine == "Italian" {
			matches = append(matches, r)
		}
	}

	if len(matches) != 1 || matches[0].Name != "Mama Mia Pizzeria" {
		t.Errorf("cuisine=Italian should match exactly Mama Mia Pizzeria, got %d matches", len(matches))
	}
}

func TestSampleRestaurantsRatingFilterOrdering(t *testing.T) {
	var matches []*models.Restaurant
	for _, r := range SampleRestaurants() {
		if r.Rating >= 4.6 {
			matches = append(matches, r)
		}
	}
	sort.Slice(matches, func(i, j int) bool {
		if matches[i].Rating != matches[j].Rating {
			return matches[i].Rating > matches[j].Rating
		}
		return matches[i].ReviewCount > matches[j].ReviewCount
	})

	wantOrder := []string{"Chez Laurent", "Green Bowl", "Sakura Sushi"}
	if len(matches) != len(wantOrder) {
		t.Fatalf("rating>=4.6 matched %d restaurants, want %d", len(matches), len(wantOrder))
	}
	for i, name := range wantOrder {
		if matches[i].Name != name {
			t.Errorf("position %d: got %q, want %q", i, matches[i].Name, name)
		}
	}
}
