// Package client is the Go client for the fairway-finder REST API.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	sonic "github.com/bytedance/sonic"
	"github.com/valyala/bytebufferpool"
)

const defaultTimeout = 10 * time.Second

type Config struct {
	// BaseURL is the API root, e.g. "https://api.fairwayfinder.example".
	BaseURL string

	// Token is the bearer token attached to every request. Empty is fine for
	// the public endpoints.
	Token string

	HTTPClient *http.Client
}

type Client struct {
	baseURL string
	token   string
	http    *http.Client
}

func New(cfg Config) (*Client, error) {
	base := strings.TrimRight(strings.TrimSpace(cfg.BaseURL), "/")
	if base == "" {
		return nil, fmt.Errorf("base URL is required")
	}
	parsed, err := url.Parse(base)
	if err != nil {
		return nil, fmt.Errorf("parse base URL: %w", err)
	}
	if parsed.Scheme != "http" && parsed.Scheme != "https" {
		return nil, fmt.Errorf("base URL scheme must be http or https: %q", cfg.BaseURL)
	}

	httpClient := cfg.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{Timeout: defaultTimeout}
	}

	return &Client{
		baseURL: base,
		token:   cfg.Token,
		http:    httpClient,
	}, nil
}

// APIError is a non-2xx response decoded from the API's error envelope.
type APIError struct {
	HTTPStatus int
	Status     string
	Reason     string
	Message    string
}

func (e *APIError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("api error %d %s", e.HTTPStatus, e.Status)
	}
	return fmt.Sprintf("api error %d %s: %s", e.HTTPStatus, e.Status, e.Message)
}

// IsNotFound reports whether err is an API 404.
func IsNotFound(err error) bool {
	var apiErr *APIError
	return errors.As(err, &apiErr) && apiErr.HTTPStatus == http.StatusNotFound
}

type responseEnvelope struct {
	APIVersion string             `json:"apiVersion"`
	Data       json.RawMessage    `json:"data"`
	Error      *responseErrorBody `json:"error"`
}

type responseErrorBody struct {
	Code    int                 `json:"code"`
	Message string              `json:"message"`
	Status  string              `json:"status"`
	Errors  []responseErrorItem `json:"errors"`
}

type responseErrorItem struct {
	Domain  string `json:"domain"`
	Reason  string `json:"reason"`
	Message string `json:"message"`
}

func (c *Client) do(ctx context.Context, method, path string, query url.Values, body, out any) error {
	endpoint := c.baseURL + path
	if len(query) > 0 {
		endpoint += "?" + query.Encode()
	}

	var reader io.Reader
	if body != nil {
		buf := bytebufferpool.Get()
		defer bytebufferpool.Put(buf)
		if err := sonic.ConfigDefault.NewEncoder(buf).Encode(body); err != nil {
			return fmt.Errorf("encode request body: %w", err)
		}
		reader = bytes.NewReader(buf.B)
	}

	req, err := http.NewRequestWithContext(ctx, method, endpoint, reader)
	if err != nil {
		return fmt.Errorf("build %s %s request: %w", method, path, err)
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("call %s %s: %w", method, path, err)
	}
	defer func() {
		_, _ = io.Copy(io.Discard, resp.Body)
		_ = resp.Body.Close()
	}()

	var env responseEnvelope
	decodeErr := sonic.ConfigDefault.NewDecoder(resp.Body).Decode(&env)

	if resp.StatusCode >= http.StatusBadRequest {
		apiErr := &APIError{
			HTTPStatus: resp.StatusCode,
			Message:    http.StatusText(resp.StatusCode),
		}
		if decodeErr == nil && env.Error != nil {
			apiErr.Status = env.Error.Status
			apiErr.Message = env.Error.Message
			if len(env.Error.Errors) > 0 {
				apiErr.Reason = env.Error.Errors[0].Reason
			}
		}
		return apiErr
	}
	if decodeErr != nil {
		return fmt.Errorf("decode %s %s response: %w", method, path, decodeErr)
	}
	if out != nil {
		if err := sonic.Unmarshal(env.Data, out); err != nil {
			return fmt.Errorf("decode %s %s response data: %w", method, path, err)
		}
	}

	return nil
}

// FindClubs searches for clubs around a ZIP code. Public; no token required.
func (c *Client) FindClubs(ctx context.Context, criteria SearchCriteria, page Page) (SearchPage, error) {
	q := criteria.values()
	page.apply(q)

	var out SearchPage
	if err := c.do(ctx, http.MethodGet, "/find_clubs", q, nil, &out); err != nil {
		return SearchPage{}, err
	}

	return out, nil
}

// GetRecommendations scores clubs around a ZIP against the caller's profile.
func (c *Client) GetRecommendations(ctx context.Context, criteria RecommendationCriteria, page Page) (RecommendationPage, error) {
	q := criteria.values()
	page.apply(q)

	var out RecommendationPage
	if err := c.do(ctx, http.MethodGet, "/get_recommendations", q, nil, &out); err != nil {
		return RecommendationPage{}, err
	}

	return out, nil
}

func (c *Client) CurrentProfile(ctx context.Context) (Profile, error) {
	var out Profile
	if err := c.do(ctx, http.MethodGet, "/api/profiles/current", nil, nil, &out); err != nil {
		return Profile{}, err
	}

	return out, nil
}

// UpdateProfile replaces the caller's profile and returns the stored result.
func (c *Client) UpdateProfile(ctx context.Context, update ProfileUpdate) (Profile, error) {
	var out Profile
	if err := c.do(ctx, http.MethodPut, "/api/profiles/current", nil, update, &out); err != nil {
		return Profile{}, err
	}

	return out, nil
}

// ToggleFavorite flips the favorite state of a club and reports the new state.
func (c *Client) ToggleFavorite(ctx context.Context, clubID string) (FavoriteToggle, error) {
	var out FavoriteToggle
	path := "/api/favorites/" + url.PathEscape(clubID) + "/toggle"
	if err := c.do(ctx, http.MethodPost, path, nil, nil, &out); err != nil {
		return FavoriteToggle{}, err
	}

	return out, nil
}

// ListFavorites returns the caller's favorited clubs, oldest first.
func (c *Client) ListFavorites(ctx context.Context) ([]Club, error) {
	var out []Club
	if err := c.do(ctx, http.MethodGet, "/api/favorites", nil, nil, &out); err != nil {
		return nil, err
	}

	return out, nil
}

func (c *Client) GetClub(ctx context.Context, clubID string) (Club, error) {
	var out Club
	if err := c.do(ctx, http.MethodGet, "/api/clubs/"+url.PathEscape(clubID), nil, nil, &out); err != nil {
		return Club{}, err
	}

	return out, nil
}

func (c *Client) CreateClub(ctx context.Context, payload ClubPayload) (Club, error) {
	var out Club
	if err := c.do(ctx, http.MethodPost, "/api/clubs", nil, payload, &out); err != nil {
		return Club{}, err
	}

	return out, nil
}

func (c *Client) UpdateClub(ctx context.Context, clubID string, payload ClubPayload) (Club, error) {
	var out Club
	if err := c.do(ctx, http.MethodPut, "/api/clubs/"+url.PathEscape(clubID), nil, payload, &out); err != nil {
		return Club{}, err
	}

	return out, nil
}

func (c *Client) DeleteClub(ctx context.Context, clubID string) error {
	return c.do(ctx, http.MethodDelete, "/api/clubs/"+url.PathEscape(clubID), nil, nil, nil)
}

// ListClubCourses returns a club's courses with their tee boxes.
func (c *Client) ListClubCourses(ctx context.Context, clubID string) ([]Course, error) {
	var out []Course
	path := "/api/clubs/" + url.PathEscape(clubID) + "/courses"
	if err := c.do(ctx, http.MethodGet, path, nil, nil, &out); err != nil {
		return nil, err
	}

	return out, nil
}
