package models

import "time"

// PriceRanges is the fixed set of cost tiers.
var PriceRanges = []string{"budget", "mid-range", "fine-dining"}

// Cuisines is the fixed cuisine vocabulary.
var Cuisines = []string{
	"Italian", "French", "Japanese", "Chinese", "Indian", "Mexican",
	"Thai", "Mediterranean", "American", "Korean", "Vietnamese", "Greek",
	"Spanish", "Turkish", "Lebanese", "Moroccan", "Brazilian", "Fusion",
	"Fast Food", "Seafood", "Steakhouse", "Vegetarian", "Vegan", "Other",
}

// Features is the fixed amenity vocabulary.
var Features = []string{
	"Outdoor Seating", "WiFi", "Parking", "Delivery", "Takeout",
	"Reservations", "Kids Friendly", "Pet Friendly", "Bar", "Wine Bar",
	"Live Music", "Credit Cards", "Wheelchair Accessible",
	"Private Dining", "Catering", "Brunch", "Late Night", "Counter Seating",
	"Sake Bar", "Vegetarian", "Vegan",
}

// ValidCuisine reports whether c belongs to the cuisine vocabulary.
func ValidCuisine(c string) bool { return contains(Cuisines, c) }

// ValidPriceRange reports whether p is one of the three cost tiers.
func ValidPriceRange(p string) bool { return contains(PriceRanges, p) }

// ValidFeature reports whether f belongs to the amenity vocabulary.
func ValidFeature(f string) bool { return contains(Features, f) }

func contains(set []string, v string) bool {
	for _, s := range set {
		if s == v {
			return true
		}
	}
	return false
}

// Location is a street address plus a geographic point.
type Location struct {
	Address   string  `json:"address"`
	City      string  `json:"city"`
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// DayHours describes opening hours for a single day of week.
type DayHours struct {
	Open   string `json:"open"`
	Close  string `json:"close"`
	Closed bool   `json:"closed"`
}

// OpeningHours maps lowercase day names (monday..sunday) to hours.
type OpeningHours map[string]DayHours

// Contact holds optional ways to reach a restaurant.
type Contact struct {
	Phone   *string `json:"phone,omitempty"`
	Website *string `json:"website,omitempty"`
	Email   *string `json:"email,omitempty"`
}

// Restaurant represents a restaurant in the catalog
type Restaurant struct {
	ID           string       `json:"id"`
	Name         string       `json:"name"`
	Description  string       `json:"description"`
	Cuisine      string       `json:"cuisine"`
	PriceRange   string       `json:"priceRange"`
	Location     Location     `json:"location"`
	Images       []string     `json:"images"`
	Rating       float64      `json:"rating"`
	ReviewCount  int          `json:"reviewCount"`
	Features     []string     `json:"features"`
	OpeningHours OpeningHours `json:"openingHours"`
	Contact      Contact      `json:"contact"`
	CreatedAt    time.Time    `json:"createdAt"`
	UpdatedAt    time.Time    `json:"updatedAt"`
}

// User represents a registered user. The password hash is never serialized.
type User struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	Avatar       *string   `json:"avatar,omitempty"`
	CreatedAt    time.Time `json:"createdAt"`
}

// SearchParams are the optional restaurant search filters plus the page window.
// Absent string filters are empty; an absent rating is a nil pointer so that
// a literal 0 still filters.
type SearchParams struct {
	Cuisine    string
	PriceRange string
	City       string
	Features   []string
	Search     string
	Rating     *float64
	Page       int
	Limit      int
}

// Pagination describes the page window of a search response.
type Pagination struct {
	Page  int `json:"page"`
	Limit int `json:"limit"`
	Total int `json:"total"`
	Pages int `json:"pages"`
}

// FilterOptions are the distinct values available for search filtering.
type FilterOptions struct {
	Cuisines    []string `json:"cuisines"`
	Cities      []string `json:"cities"`
	Features    []string `json:"features"`
	PriceRanges []string `json:"priceRanges"`
}
