package repository

import (
	"context"
	"errors"
	"fmt"

	"foodie-finder-backend/internal/models"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

// UserRepository handles database operations for users and their favorites
type UserRepository struct {
	db *pgxpool.Pool
}

// NewUserRepository creates a new user repository
func NewUserRepository(db *pgxpool.Pool) *UserRepository {
	return &UserRepository{db: db}
}

// Create creates a new user
func (r *UserRepository) Create(ctx context.Context, user *models.User) error {
	query := `
		INSERT INTO users (id, name, email, password_hash, avatar, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)
	`
	_, err := r.db.Exec(ctx, query, user.ID, user.Name, user.Email, user.PasswordHash, user.Avatar, user.CreatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("email %s: %w", user.Email, ErrDuplicate)
		}
		return fmt.Errorf("failed to create user: %w", err)
	}
	return nil
}

// GetByID retrieves a user by ID
func (r *UserRepository) GetByID(ctx context.Context, id string) (*models.User, error) {
	return r.getBy(ctx, "id", id)
}

// GetByEmail retrieves a user by email
func (r *UserRepository) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	return r.getBy(ctx, "email", email)
}

func (r *UserRepository) getBy(ctx context.Context, column, value string) (*models.User, error) {
	query := fmt.Sprintf(`
		SELECT id, name, email, password_hash, avatar, created_at
		FROM users
		WHERE %s = $1
	`, column)
	var user models.User
	err := r.db.QueryRow(ctx, query, value).Scan(
		&user.ID, &user.Name, &user.Email, &user.PasswordHash, &user.Avatar, &user.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("user: %w", ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get user: %w", err)
	}
	return &user, nil
}

// EmailExists checks if a user with the given email already exists
func (r *UserRepository) EmailExists(ctx context.Context, email string) (bool, error) {
	query := `SELECT EXISTS(SELECT 1 FROM users WHERE email = $1)`
	var exists bool
	err := r.db.QueryRow(ctx, query, email).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("failed to check email existence: %w", err)
	}
	return exists, nil
}

// UpdateProfile updates the mutable profile fields of a user
func (r *UserRepository) UpdateProfile(ctx context.Context, id, name string, avatar *string) error {
	query := `UPDATE users SET name = $1, avatar = $2 WHERE id = $3`
	result, err := r.db.Exec(ctx, query, name, avatar, id)
	if err != nil {
		return fmt.Errorf("failed to update profile: %w", err)
	}
	if result.RowsAffected() == 0 {
		return fmt.Errorf("user %s: %w", id, ErrNotFound)
	}
	return nil
}

// AddFavorite records a favorite. The composite primary key keeps the set
// duplicate-free; inserting an existing pair returns ErrDuplicate.
func (r *UserRepository) AddFavorite(ctx context.Context, userID, restaurantID string) error {
	query := `
		INSERT INTO user_favorites (user_id, restaurant_id, created_at)
		VALUES ($1, $2, now())
		ON CONFLICT (user_id, restaurant_id) DO NOTHING
	`
	result, err := r.db.Exec(ctx, query, userID, restaurantID)
	if err != nil {
		return fmt.Errorf("failed to add favorite: %w", err)
	}
	if result.RowsAffected() == 0 {
		return fmt.Errorf("favorite %s: %w", restaurantID, ErrDuplicate)
	}
	return nil
}

// RemoveFavorite deletes a favorite. Removing an absent favorite is a no-op.
func (r *UserRepository) RemoveFavorite(ctx context.Context, userID, restaurantID string) error {
	query := `DELETE FROM user_favorites WHERE user_id = $1 AND restaurant_id = $2`
	_, err := r.db.Exec(ctx, query, userID, restaurantID)
	if err != nil {
		return fmt.Errorf("failed to remove favorite: %w", err)
	}
	return nil
}

// GetFavoriteIDs returns the user's favorite restaurant ids in insertion order
func (r *UserRepository) GetFavoriteIDs(ctx context.Context, userID string) ([]string, error) {
	query := `
		SELECT restaurant_id
		FROM user_favorites
		WHERE user_id = $1
		ORDER BY created_at ASC
	`
	rows, err := r.db.Query(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to get favorite ids: %w", err)
	}
	defer rows.Close()

	ids := []string{}
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("failed to scan favorite id: %w", err)
		}
		ids = append(ids, id)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read favorite ids: %w", err)
	}
	return ids, nil
}

// GetFavoriteRestaurants returns the user's favorites resolved to full
// restaurant records, in insertion order.
func (r *UserRepository) GetFavoriteRestaurants(ctx context.Context, userID string) ([]*models.Restaurant, error) {
	query := `
		SELECT r.id, r.name, r.description, r.cuisine, r.price_range, r.address, r.city,
			r.latitude, r.longitude, r.images, r.rating, r.review_count, r.features, r.opening_hours,
			r.phone, r.website, r.email, r.created_at, r.updated_at
		FROM restaurants r
		JOIN user_favorites uf ON uf.restaurant_id = r.id
		WHERE uf.user_id = $1
		ORDER BY uf.created_at ASC
	`
	rows, err := r.db.Query(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to get favorite restaurants: %w", err)
	}
	defer rows.Close()

	return collectRestaurants(rows)
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505"
}
