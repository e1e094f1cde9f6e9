package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"foodie-finder-backend/internal/models"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// ErrNotFound is returned when a row does not exist.
var ErrNotFound = errors.New("not found")

// ErrDuplicate is returned when an insert violates a uniqueness constraint.
var ErrDuplicate = errors.New("duplicate")

const restaurantColumns = `id, name, description, cuisine, price_range, address, city,
	latitude, longitude, images, rating, review_count, features, opening_hours,
	phone, website, email, created_at, updated_at`

// nearbyLimit caps geospatial search results.
const nearbyLimit = 20

// RestaurantRepository handles database operations for restaurants
type RestaurantRepository struct {
	db *pgxpool.Pool
}

// NewRestaurantRepository creates a new restaurant repository
func NewRestaurantRepository(db *pgxpool.Pool) *RestaurantRepository {
	return &RestaurantRepository{db: db}
}

// Create inserts a new restaurant
func (r *RestaurantRepository) Create(ctx context.Context, rest *models.Restaurant) error {
	hours, err := json.Marshal(rest.OpeningHours)
	if err != nil {
		return fmt.Errorf("failed to encode opening hours: %w", err)
	}

	query := `
		INSERT INTO restaurants (id, name, description, cuisine, price_range, address, city,
			latitude, longitude, images, rating, review_count, features, opening_hours,
			phone, website, email, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19)
	`
	_, err = r.db.Exec(ctx, query,
		rest.ID, rest.Name, rest.Description, rest.Cuisine, rest.PriceRange,
		rest.Location.Address, rest.Location.City, rest.Location.Latitude, rest.Location.Longitude,
		rest.Images, rest.Rating, rest.ReviewCount, rest.Features, hours,
		rest.Contact.Phone, rest.Contact.Website, rest.Contact.Email,
		rest.CreatedAt, rest.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to create restaurant: %w", err)
	}
	return nil
}

// GetByID retrieves a restaurant by ID
func (r *RestaurantRepository) GetByID(ctx context.Context, id string) (*models.Restaurant, error) {
	query := `SELECT ` + restaurantColumns + ` FROM restaurants WHERE id = $1`

	rest, err := scanRestaurant(r.db.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("restaurant %s: %w", id, ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get restaurant: %w", err)
	}
	return rest, nil
}

// buildSearchFilter composes the WHERE clause for the given search filters.
// Absent filters contribute nothing; present filters are combined with AND.
func buildSearchFilter(p models.SearchParams) (string, []any) {
	var conds []string
	var args []any

	arg := func(v any) int {
		args = append(args, v)
		return len(args)
	}

	if p.Cuisine != "" {
		conds = append(conds, fmt.Sprintf("cuisine = $%d", arg(p.Cuisine)))
	}
	if p.PriceRange != "" {
		conds = append(conds, fmt.Sprintf("price_range = $%d", arg(p.PriceRange)))
	}
	if p.City != "" {
		conds = append(conds, fmt.Sprintf("city ILIKE '%%' || $%d || '%%'", arg(p.City)))
	}
	if len(p.Features) > 0 {
		// overlap: at least one requested feature present
		conds = append(conds, fmt.Sprintf("features && $%d", arg(p.Features)))
	}
	if p.Search != "" {
		n := arg(p.Search)
		conds = append(conds, fmt.Sprintf(
			"(name ILIKE '%%' || $%d || '%%' OR description ILIKE '%%' || $%d || '%%' OR cuisine ILIKE '%%' || $%d || '%%')",
			n, n, n))
	}
	if p.Rating != nil {
		conds = append(conds, fmt.Sprintf("rating >= $%d", arg(*p.Rating)))
	}

	if len(conds) == 0 {
		return "", args
	}
	return "WHERE " + strings.Join(conds, " AND "), args
}

// Search returns one page of restaurants matching the filters, sorted by
// rating descending with review count as the tiebreak, plus the total
// matching count computed independently of the page window.
func (r *RestaurantRepository) Search(ctx context.Context, p models.SearchParams) ([]*models.Restaurant, int, error) {
	where, args := buildSearchFilter(p)

	countQuery := "SELECT COUNT(*) FROM restaurants " + where
	var total int
	if err := r.db.QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count restaurants: %w", err)
	}

	offset := (p.Page - 1) * p.Limit
	query := fmt.Sprintf(
		"SELECT "+restaurantColumns+" FROM restaurants %s ORDER BY rating DESC, review_count DESC LIMIT $%d OFFSET $%d",
		where, len(args)+1, len(args)+2)
	args = append(args, p.Limit, offset)

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to search restaurants: %w", err)
	}
	defer rows.Close()

	restaurants, err := collectRestaurants(rows)
	if err != nil {
		return nil, 0, err
	}
	return restaurants, total, nil
}

// Nearby returns restaurants within radiusMeters of the given point, nearest
// first, capped at 20 results. Distance is great-circle via the haversine
// formula evaluated in SQL.
func (r *RestaurantRepository) Nearby(ctx context.Context, lat, lon, radiusMeters float64) ([]*models.Restaurant, error) {
	query := `
		SELECT ` + restaurantColumns + ` FROM (
			SELECT *, 2 * 6371000 * asin(sqrt(
				power(sin(radians(latitude - $1) / 2), 2) +
				cos(radians($1)) * cos(radians(latitude)) *
				power(sin(radians(longitude - $2) / 2), 2)
			)) AS distance
			FROM restaurants
		) AS with_distance
		WHERE distance <= $3
		ORDER BY distance ASC
		LIMIT $4
	`
	rows, err := r.db.Query(ctx, query, lat, lon, radiusMeters, nearbyLimit)
	if err != nil {
		return nil, fmt.Errorf("failed to search nearby restaurants: %w", err)
	}
	defer rows.Close()

	return collectRestaurants(rows)
}

// AppendImage appends an image URL to a restaurant's image list
func (r *RestaurantRepository) AppendImage(ctx context.Context, id, url string) error {
	query := `UPDATE restaurants SET images = array_append(images, $1), updated_at = now() WHERE id = $2`
	result, err := r.db.Exec(ctx, query, url, id)
	if err != nil {
		return fmt.Errorf("failed to append image: %w", err)
	}
	if result.RowsAffected() == 0 {
		return fmt.Errorf("restaurant %s: %w", id, ErrNotFound)
	}
	return nil
}

// DistinctCuisines returns the sorted distinct cuisines present in the catalog
func (r *RestaurantRepository) DistinctCuisines(ctx context.Context) ([]string, error) {
	return r.distinct(ctx, `SELECT DISTINCT cuisine FROM restaurants ORDER BY cuisine`)
}

// DistinctCities returns the sorted distinct cities present in the catalog
func (r *RestaurantRepository) DistinctCities(ctx context.Context) ([]string, error) {
	return r.distinct(ctx, `SELECT DISTINCT city FROM restaurants ORDER BY city`)
}

// DistinctFeatures returns the sorted distinct features present in the catalog
func (r *RestaurantRepository) DistinctFeatures(ctx context.Context) ([]string, error) {
	return r.distinct(ctx, `SELECT DISTINCT unnest(features) AS feature FROM restaurants ORDER BY feature`)
}

func (r *RestaurantRepository) distinct(ctx context.Context, query string) ([]string, error) {
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query distinct values: %w", err)
	}
	defer rows.Close()

	values := []string{}
	for rows.Next() {
		var v string
		if err := rows.Scan(&v); err != nil {
			return nil, fmt.Errorf("failed to scan distinct value: %w", err)
		}
		values = append(values, v)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read distinct values: %w", err)
	}
	return values, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanRestaurant(row rowScanner) (*models.Restaurant, error) {
	var rest models.Restaurant
	var hours []byte
	err := row.Scan(
		&rest.ID, &rest.Name, &rest.Description, &rest.Cuisine, &rest.PriceRange,
		&rest.Location.Address, &rest.Location.City, &rest.Location.Latitude, &rest.Location.Longitude,
		&rest.Images, &rest.Rating, &rest.ReviewCount, &rest.Features, &hours,
		&rest.Contact.Phone, &rest.Contact.Website, &rest.Contact.Email,
		&rest.CreatedAt, &rest.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	if len(hours) > 0 {
		if err := json.Unmarshal(hours, &rest.OpeningHours); err != nil {
			return nil, fmt.Errorf("failed to decode opening hours: %w", err)
		}
	}
	return &rest, nil
}

func collectRestaurants(rows pgx.Rows) ([]*models.Restaurant, error) {
	restaurants := []*models.Restaurant{}
	for rows.Next() {
		rest, err := scanRestaurant(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan restaurant: %w", err)
		}
		restaurants = append(restaurants, rest)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read restaurants: %w", err)
	}
	return restaurants, nil
}
