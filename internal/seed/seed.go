package seed

import (
	"time"

	"foodie-finder-backend/internal/models"

	"github.com/google/uuid"
)

// SampleRestaurants returns the six-restaurant sample data set used for
// development seeding. IDs are generated fresh on every call.
func SampleRestaurants() []*models.Restaurant {
	now := time.Now()
	restaurants := []*models.Restaurant{
		{
			Name:        "Chez Laurent",
			Description: "An authentic French bistro offering classic dishes with a modern twist. Our chef brings 20 years of experience from Lyon to create unforgettable dining experiences.",
			Cuisine:     "French",
			PriceRange:  "fine-dining",
			Location: models.Location{
				Address:   "123 Rue de la Paix",
				City:      "Paris",
				Latitude:  48.8566,
				Longitude: 2.3522,
			},
			Images: []string{
				"https://images.unsplash.com/photo-1414235077428-338989a2e8c0?w=800",
				"https://images.unsplash.com/photo-1550966871-3ed3cdb5b958?w=800",
			},
			Rating:      4.8,
			ReviewCount: 247,
			Features:    []string{"Reservations", "Wine Bar", "Outdoor Seating", "Private Dining"},
			OpeningHours: models.OpeningHours{
				"monday":    {Open: "18:00", Close: "23:00"},
				"tuesday":   {Open: "18:00", Close: "23:00"},
				"wednesday": {Open: "18:00", Close: "23:00"},
				"thursday":  {Open: "18:00", Close: "23:00"},
				"friday":    {Open: "18:00", Close: "24:00"},
				"saturday":  {Open: "18:00", Close: "24:00"},
				"sunday":    {Closed: true},
			},
			Contact: models.Contact{
				Phone:   ptr("+33 1 42 86 87 88"),
				Website: ptr("https://chezlaurent.fr"),
				Email:   ptr("info@chezlaurent.fr"),
			},
		},
		{
			Name:        "Sakura Sushi",
			Description: "Fresh sushi and authentic Japanese cuisine in a modern setting. Our master sushi chef creates artful presentations using the finest ingredients.",
			Cuisine:     "Japanese",
			PriceRange:  "mid-range",
			Location: models.Location{
				Address:   "456 Cherry Blossom Ave",
				City:      "Tokyo",
				Latitude:  35.6762,
				Longitude: 139.6503,
			},
			Images: []string{
				"https://images.unsplash.com/photo-1579952363873-27d3bfad9c0d?w=800",
				"https://images.unsplash.com/photo-1553621042-f6e147245754?w=800",
			},
			Rating:      4.6,
			ReviewCount: 189,
			Features:    []string{"Takeout", "Delivery", "Sake Bar", "Counter Seating"},
			OpeningHours: models.OpeningHours{
				"monday":    {Open: "17:00", Close: "22:00"},
				"tuesday":   {Open: "17:00", Close: "22:00"},
				"wednesday": {Open: "17:00", Close: "22:00"},
				"thursday":  {Open: "17:00", Close: "22:00"},
				"friday":    {Open: "17:00", Close: "23:00"},
				"saturday":  {Open: "12:00", Close: "23:00"},
				"sunday":    {Open: "12:00", Close: "21:00"},
			},
			Contact: models.Contact{
				Phone:   ptr("+81 3 1234 5678"),
				Website: ptr("https://sakurasushi.jp"),
			},
		},
		{
			Name:        "Mama Mia Pizzeria",
			Description: "Traditional wood-fired pizzas made with love and family recipes passed down for generations. Authentic Italian flavors in every bite.",
			Cuisine:     "Italian",
			PriceRange:  "budget",
			Location: models.Location{
				Address:   "789 Little Italy Street",
				City:      "New York",
				Latitude:  40.7128,
				Longitude: -74.0060,
			},
			Images: []string{
				"https://images.unsplash.com/photo-1565299624946-b28f40a0ca4b?w=800",
				"https://images.unsplash.com/photo-1574071318508-1cdbab80d002?w=800",
			},
			Rating:      4.4,
			ReviewCount: 312,
			Features:    []string{"Delivery", "Takeout", "Kids Friendly", "Outdoor Seating"},
			OpeningHours: models.OpeningHours{
				"monday":    {Open: "11:00", Close: "23:00"},
				"tuesday":   {Open: "11:00", Close: "23:00"},
				"wednesday": {Open: "11:00", Close: "23:00"},
				"thursday":  {Open: "11:00", Close: "23:00"},
				"friday":    {Open: "11:00", Close: "24:00"},
				"saturday":  {Open: "11:00", Close: "24:00"},
				"sunday":    {Open: "12:00", Close: "22:00"},
			},
			Contact: models.Contact{
				Phone:   ptr("+1 212 555 0123"),
				Website: ptr("https://mamamiapizza.com"),
			},
		},
		{
			Name:        "Spice Garden",
			Description: "Aromatic Indian cuisine featuring traditional spices and modern techniques. From mild kormas to fiery vindaloos, we cater to all palates.",
			Cuisine:     "Indian",
			PriceRange:  "mid-range",
			Location: models.Location{
				Address:   "321 Curry Lane",
				City:      "Mumbai",
				Latitude:  19.0760,
				Longitude: 72.8777,
			},
			Images: []string{
				"https://images.unsplash.com/photo-1585937421612-70a008356fbe?w=800",
				"https://images.unsplash.com/photo-1565557623262-b51c2513a641?w=800",
			},
			Rating:      4.5,
			ReviewCount: 156,
			Features:    []string{"Vegetarian", "Vegan", "Delivery", "Catering", "WiFi"},
			OpeningHours: models.OpeningHours{
				"monday":    {Open: "12:00", Close: "22:00"},
				"tuesday":   {Open: "12:00", Close: "22:00"},
				"wednesday": {Open: "12:00", Close: "22:00"},
				"thursday":  {Open: "12:00", Close: "22:00"},
				"friday":    {Open: "12:00", Close: "23:00"},
				"saturday":  {Open: "12:00", Close: "23:00"},
				"sunday":    {Open: "12:00", Close: "22:00"},
			},
			Contact: models.Contact{
				Phone: ptr("+91 22 1234 5678"),
				Email: ptr("hello@spicegarden.in"),
			},
		},
		{
			Name:        "El Mariachi",
			Description: "Vibrant Mexican cantina serving authentic street food and creative cocktails. Live mariachi music on weekends adds to the festive atmosphere.",
			Cuisine:     "Mexican",
			PriceRange:  "budget",
			Location: models.Location{
				Address:   "555 Fiesta Boulevard",
				City:      "Mexico City",
				Latitude:  19.4326,
				Longitude: -99.1332,
			},
			Images: []string{
				"https://images.unsplash.com/photo-1565299585323-38174c14bd37?w=800",
				"https://images.unsplash.com/photo-1551504734-5ee1c4a1479b?w=800",
			},
			Rating:      4.3,
			ReviewCount: 203,
			Features:    []string{"Bar", "Live Music", "Outdoor Seating", "Late Night", "Kids Friendly"},
			OpeningHours: models.OpeningHours{
				"monday":    {Open: "11:00", Close: "23:00"},
				"tuesday":   {Open: "11:00", Close: "23:00"},
				"wednesday": {Open: "11:00", Close: "23:00"},
				"thursday":  {Open: "11:00", Close: "24:00"},
				"friday":    {Open: "11:00", Close: "02:00"},
				"saturday":  {Open: "11:00", Close: "02:00"},
				"sunday":    {Open: "12:00", Close: "22:00"},
			},
			Contact: models.Contact{
				Phone:   ptr("+52 55 1234 5678"),
				Website: ptr("https://elmariachi.mx"),
			},
		},
		{
			Name:        "Green Bowl",
			Description: "Fresh, healthy, and delicious vegetarian and vegan options. Locally sourced ingredients and sustainable practices make dining guilt-free.",
			Cuisine:     "Vegetarian",
			PriceRange:  "mid-range",
			Location: models.Location{
				Address:   "777 Health Street",
				City:      "San Francisco",
				Latitude:  37.7749,
				Longitude: -122.4194,
			},
			Images: []string{
				"https://images.unsplash.com/photo-1512621776951-a57141f2eefd?w=800",
				"https://images.unsplash.com/photo-1540420773420-3366772f4999?w=800",
			},
			Rating:      4.7,
			ReviewCount: 128,
			Features:    []string{"Vegan", "Vegetarian", "WiFi", "Outdoor Seating", "Takeout"},
			OpeningHours: models.OpeningHours{
				"monday":    {Open: "08:00", Close: "21:00"},
				"tuesday":   {Open: "08:00", Close: "21:00"},
				"wednesday": {Open: "08:00", Close: "21:00"},
				"thursday":  {Open: "08:00", Close: "21:00"},
				"friday":    {Open: "08:00", Close: "22:00"},
				"saturday":  {Open: "09:00", Close: "22:00"},
				"sunday":    {Open: "09:00", Close: "20:00"},
			},
			Contact: models.Contact{
				Phone:   ptr("+1 415 555 0789"),
				Website: ptr("https://greenbowl.com"),
				Email:   ptr("info@greenbowl.com"),
			},
		},
	}

	for _, r := range restaurants {
		r.ID = uuid.New().String()
		r.CreatedAt = now
		r.UpdatedAt = now
	}
	return restaurants
}

func ptr(s string) *string { return &s }
