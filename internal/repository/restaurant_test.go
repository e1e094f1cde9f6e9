package repository

import (
	"strings"
	"testing"

	"foodie-finder-backend/internal/models"
)

func TestBuildSearchFilterEmpty(t *testing.T) {
	where, args := buildSearchFilter(models.SearchParams{})
	if where != "" {
		t.Errorf("expected empty where clause, got %q", where)
	}
	if len(args) != 0 {
		t.Errorf("expected no args, got %d", len(args))
	}
}

func TestBuildSearchFilterSingleFilter(t *testing.T) {
	where, args := buildSearchFilter(models.SearchParams{Cuisine: "Italian"})
	if where != "WHERE cuisine = $1" {
		t.Errorf("unexpected where clause: %q", where)
	}
	if len(args) != 1 || args[0] != "Italian" {
		t.Errorf("unexpected args: %v", args)
	}
}

func TestBuildSearchFilterCombinesWithAND(t *testing.T) {
	rating := 4.0
	where, args := buildSearchFilter(models.SearchParams{
		Cuisine:    "Japanese",
		PriceRange: "mid-range",
		City:       "tok",
		Features:   []string{"Delivery", "Takeout"},
		Search:     "sushi",
		Rating:     &rating,
	})

	if got := strings.Count(where, " AND "); got != 5 {
		t.Errorf("expected 5 AND separators, got %d in %q", got, where)
	}
	if !strings.HasPrefix(where, "WHERE ") {
		t.Errorf("where clause missing WHERE prefix: %q", where)
	}
	// one arg per filter; search reuses a single placeholder
	if len(args) != 6 {
		t.Fatalf("expected 6 args, got %d: %v", len(args), args)
	}
	if args[5] != 4.0 {
		t.Errorf("expected rating arg 4.0, got %v", args[5])
	}
}

func TestBuildSearchFilterCitySubstringCaseInsensitive(t *testing.T) {
	where, _ := buildSearchFilter(models.SearchParams{City: "York"})
	if !strings.Contains(where, "city ILIKE '%' || $1 || '%'") {
		t.Errorf("expected case-insensitive substring match on city, got %q", where)
	}
}

func TestBuildSearchFilterFeaturesOverlap(t *testing.T) {
	where, args := buildSearchFilter(models.SearchParams{Features: []string{"WiFi"}})
	if !strings.Contains(where, "features && $1") {
		t.Errorf("expected array overlap on features, got %q", where)
	}
	features, ok := args[0].([]string)
	if !ok || len(features) != 1 || features[0] != "WiFi" {
		t.Errorf("unexpected features arg: %v", args[0])
	}
}

func TestBuildSearchFilterSearchSpansThreeFields(t *testing.T) {
	where, args := buildSearchFilter(models.SearchParams{Search: "pizza"})
	for _, col := range []string{"name ILIKE", "description ILIKE", "cuisine ILIKE"} {
		if !strings.Contains(where, col) {
			t.Errorf("search filter missing %q in %q", col, where)
		}
	}
	if !strings.Contains(where, " OR ") {
		t.Errorf("search fields should be OR-combined: %q", where)
	}
	if len(args) != 1 {
		t.Errorf("search should bind a single arg, got %v", args)
	}
}

func TestBuildSearchFilterZeroRatingStillFilters(t *testing.T) {
	rating := 0.0
	where, args := buildSearchFilter(models.SearchParams{Rating: &rating})
	if !strings.Contains(where, "rating >= $1") {
		t.Errorf("expected rating filter, got %q", where)
	}
	if len(args) != 1 || args[0] != 0.0 {
		t.Errorf("unexpected args: %v", args)
	}
}

func TestBuildSearchFilterArgNumbering(t *testing.T) {
	where, _ := buildSearchFilter(models.SearchParams{
		Cuisine:    "Thai",
		PriceRange: "budget",
		City:       "Bangkok",
	})
	for _, placeholder := range []string{"$1", "$2", "$3"} {
		if !strings.Contains(where, placeholder) {
			t.Errorf("where clause missing placeholder %s: %q", placeholder, where)
		}
	}
}
