package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"sync"

	"foodie-finder-backend/internal/models"
)

// Client is an HTTP client for the Foodie Finder API. It injects the bearer
// token on authenticated requests and unwraps the response envelope.
type Client struct {
	baseURL string
	http    *http.Client

	mu    sync.RWMutex
	token string

	// OnUnauthorized, if set, is invoked whenever an authenticated request
	// is rejected with a 401. The session uses it to revert to anonymous.
	OnUnauthorized func()
}

// New creates a client for the API rooted at baseURL (e.g. "http://host/api")
func New(baseURL string) *Client {
	return &Client{
		baseURL: strings.TrimSuffix(baseURL, "/"),
		http:    &http.Client{},
	}
}

// SetToken sets the bearer token used for authenticated requests
func (c *Client) SetToken(token string) {
	c.mu.Lock()
	c.token = token
	c.mu.Unlock()
}

// Token returns the current bearer token
func (c *Client) Token() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.token
}

// APIError is a non-success response from the API
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("api error %d: %s", e.StatusCode, e.Message)
}

// IsUnauthorized reports whether err is a 401 APIError
func IsUnauthorized(err error) bool {
	apiErr, ok := err.(*APIError)
	return ok && apiErr.StatusCode == http.StatusUnauthorized
}

type envelope struct {
	Success bool            `json:"success"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

func (c *Client) do(ctx context.Context, method, path string, body, out any) error {
	var reader *bytes.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to encode request body: %w", err)
		}
		reader = bytes.NewReader(encoded)
	} else {
		reader = bytes.NewReader(nil)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if token := c.Token(); token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	var env envelope
	if err := json.NewDecoder(resp.Body).Decode(&env); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}

	if resp.StatusCode == http.StatusUnauthorized && c.OnUnauthorized != nil {
		c.OnUnauthorized()
	}
	if resp.StatusCode >= 400 || !env.Success {
		return &APIError{StatusCode: resp.StatusCode, Message: env.Message}
	}

	if out != nil && env.Data != nil {
		if err := json.Unmarshal(env.Data, out); err != nil {
			return fmt.Errorf("failed to decode response data: %w", err)
		}
	}
	return nil
}

// AuthPayload is the user plus token returned by register and login
type AuthPayload struct {
	User  models.User `json:"user"`
	Token string      `json:"token"`
}

// MeUser is the current user with favorites resolved
type MeUser struct {
	models.User
	Favorites []models.Restaurant `json:"favorites"`
}

// Register creates an account
func (c *Client) Register(ctx context.Context, name, email, password string) (*AuthPayload, error) {
	var payload AuthPayload
	body := map[string]string{"name": name, "email": email, "password": password}
	if err := c.do(ctx, http.MethodPost, "/auth/register", body, &payload); err != nil {
		return nil, err
	}
	return &payload, nil
}

// Login exchanges credentials for a session token
func (c *Client) Login(ctx context.Context, email, password string) (*AuthPayload, error) {
	var payload AuthPayload
	body := map[string]string{"email": email, "password": password}
	if err := c.do(ctx, http.MethodPost, "/auth/login", body, &payload); err != nil {
		return nil, err
	}
	return &payload, nil
}

// Me fetches the current user with favorites resolved
func (c *Client) Me(ctx context.Context) (*MeUser, error) {
	var data struct {
		User MeUser `json:"user"`
	}
	if err := c.do(ctx, http.MethodGet, "/auth/me", nil, &data); err != nil {
		return nil, err
	}
	return &data.User, nil
}

// UpdateProfile updates the current user's name and avatar
func (c *Client) UpdateProfile(ctx context.Context, name string, avatar *string) (*models.User, error) {
	var data struct {
		User models.User `json:"user"`
	}
	body := map[string]any{"name": name}
	if avatar != nil {
		body["avatar"] = *avatar
	}
	if err := c.do(ctx, http.MethodPut, "/auth/profile", body, &data); err != nil {
		return nil, err
	}
	return &data.User, nil
}

// SearchOptions are the optional catalog filters plus the page window
type SearchOptions struct {
	Cuisine    string
	PriceRange string
	City       string
	Features   []string
	Search     string
	Rating     *float64
	Page       int
	Limit      int
}

func (o SearchOptions) query() string {
	q := url.Values{}
	if o.Cuisine != "" {
		q.Set("cuisine", o.Cuisine)
	}
	if o.PriceRange != "" {
		q.Set("priceRange", o.PriceRange)
	}
	if o.City != "" {
		q.Set("city", o.City)
	}
	if len(o.Features) > 0 {
		q.Set("features", strings.Join(o.Features, ","))
	}
	if o.Search != "" {
		q.Set("search", o.Search)
	}
	if o.Rating != nil {
		q.Set("rating", strconv.FormatFloat(*o.Rating, 'f', -1, 64))
	}
	if o.Page > 0 {
		q.Set("page", strconv.Itoa(o.Page))
	}
	if o.Limit > 0 {
		q.Set("limit", strconv.Itoa(o.Limit))
	}
	if len(q) == 0 {
		return ""
	}
	return "?" + q.Encode()
}

// SearchResult is one page of matching restaurants
type SearchResult struct {
	Restaurants []models.Restaurant `json:"restaurants"`
	Pagination  models.Pagination   `json:"pagination"`
}

// SearchRestaurants runs a filtered, paginated catalog query
func (c *Client) SearchRestaurants(ctx context.Context, opts SearchOptions) (*SearchResult, error) {
	var result SearchResult
	if err := c.do(ctx, http.MethodGet, "/restaurants"+opts.query(), nil, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// GetRestaurant fetches a single restaurant
func (c *Client) GetRestaurant(ctx context.Context, id string) (*models.Restaurant, error) {
	var data struct {
		Restaurant models.Restaurant `json:"restaurant"`
	}
	if err := c.do(ctx, http.MethodGet, "/restaurants/"+id, nil, &data); err != nil {
		return nil, err
	}
	return &data.Restaurant, nil
}

// Nearby fetches restaurants around a point, nearest first
func (c *Client) Nearby(ctx context.Context, lat, lon, radiusKM float64) ([]models.Restaurant, error) {
	q := url.Values{}
	q.Set("latitude", strconv.FormatFloat(lat, 'f', -1, 64))
	q.Set("longitude", strconv.FormatFloat(lon, 'f', -1, 64))
	if radiusKM > 0 {
		q.Set("radius", strconv.FormatFloat(radiusKM, 'f', -1, 64))
	}
	var data struct {
		Restaurants []models.Restaurant `json:"restaurants"`
	}
	if err := c.do(ctx, http.MethodGet, "/restaurants/nearby?"+q.Encode(), nil, &data); err != nil {
		return nil, err
	}
	return data.Restaurants, nil
}

// FilterOptions fetches the available filter values
func (c *Client) FilterOptions(ctx context.Context) (*models.FilterOptions, error) {
	var opts models.FilterOptions
	if err := c.do(ctx, http.MethodGet, "/restaurants/filter-options", nil, &opts); err != nil {
		return nil, err
	}
	return &opts, nil
}

// Favorites fetches the current user's favorites, resolved
func (c *Client) Favorites(ctx context.Context) ([]models.Restaurant, error) {
	var data struct {
		Favorites []models.Restaurant `json:"favorites"`
	}
	if err := c.do(ctx, http.MethodGet, "/users/favorites", nil, &data); err != nil {
		return nil, err
	}
	return data.Favorites, nil
}

// AddFavorite favorites a restaurant and returns the updated id list
func (c *Client) AddFavorite(ctx context.Context, restaurantID string) ([]string, error) {
	var data struct {
		Favorites []string `json:"favorites"`
	}
	if err := c.do(ctx, http.MethodPost, "/users/favorites/"+restaurantID, nil, &data); err != nil {
		return nil, err
	}
	return data.Favorites, nil
}

// RemoveFavorite unfavorites a restaurant and returns the updated id list
func (c *Client) RemoveFavorite(ctx context.Context, restaurantID string) ([]string, error) {
	var data struct {
		Favorites []string `json:"favorites"`
	}
	if err := c.do(ctx, http.MethodDelete, "/users/favorites/"+restaurantID, nil, &data); err != nil {
		return nil, err
	}
	return data.Favorites, nil
}
