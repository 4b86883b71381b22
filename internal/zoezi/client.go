// internal/zoezi/client.go
package zoezi

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"
)

// Client is a thin typed wrapper over the Zoezi public API. One instance is
// shared by everything that reads from Zoezi; it holds no state beyond the
// base URL and the HTTP client.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// New creates a client for the given base URL, e.g.
// https://coregymclub.zoezi.se. Every request is bounded by timeout.
func New(baseURL string, timeout time.Duration) *Client {
	return &Client{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: timeout,
		},
	}
}

// Get issues a GET against path with the given query parameters and decodes
// the JSON response into dst. Non-2xx statuses are errors.
func (c *Client) Get(ctx context.Context, path string, query url.Values, dst any) error {
	target := c.baseURL + path
	if len(query) > 0 {
		target += "?" + query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, target, nil)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}

	res, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("request %s: %w", path, err)
	}
	defer res.Body.Close()

	body, err := io.ReadAll(res.Body)
	if err != nil {
		return fmt.Errorf("read response: %w", err)
	}

	if res.StatusCode < 200 || res.StatusCode >= 300 {
		return fmt.Errorf("unexpected status code: %s", res.Status)
	}

	if dst != nil {
		if err := json.Unmarshal(body, dst); err != nil {
			return fmt.Errorf("decode response: %w", err)
		}
	}
	return nil
}

// WorkoutType describes the class template a workout was scheduled from.
type WorkoutType struct {
	ID          int    `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Color       string `json:"color"`
	CategoryID  int    `json:"category_id"`
}

// Resource is a bookable resource attached to a workout, usually the room.
type Resource struct {
	ID           int    `json:"id"`
	Firstname    string `json:"firstname"`
	Lastname     string `json:"lastname"`
	ResourceType string `json:"resourceType"`
}

// Staff is an instructor assigned to a workout.
type Staff struct {
	ID        int    `json:"id"`
	Firstname string `json:"firstname"`
	Lastname  string `json:"lastname"`
	ImageKey  string `json:"imagekey"`
}

// Workout is one scheduled class instance as Zoezi reports it.
type Workout struct {
	ID                  int         `json:"id"`
	WorkoutType         WorkoutType `json:"workoutType"`
	StartTime           string      `json:"startTime"`
	EndTime             string      `json:"endTime"`
	Space               int         `json:"space"`
	NumBooked           int         `json:"numBooked"`
	SiteID              int         `json:"site_id"`
	ExtraTitle          string      `json:"extra_title"`
	Description         string      `json:"description"`
	Resources           []Resource  `json:"resources"`
	Staffs              []Staff     `json:"staffs"`
	BookableForCustomer bool        `json:"bookableForCustomer"`
}

type workoutsResponse struct {
	Workouts []Workout `json:"workouts"`
}

// GetWorkouts fetches all public workouts between fromDate and toDate,
// both in YYYY-MM-DD form.
func (c *Client) GetWorkouts(ctx context.Context, fromDate, toDate string) ([]Workout, error) {
	query := url.Values{}
	query.Set("fromDate", fromDate)
	query.Set("toDate", toDate)

	var response workoutsResponse
	if err := c.Get(ctx, "/api/public/workout/get/all", query, &response); err != nil {
		return nil, err
	}
	return response.Workouts, nil
}

// FileDownloadURL builds the public download URL for an uploaded file key,
// used for instructor portraits on the schedule.
func (c *Client) FileDownloadURL(key string) string {
	if key == "" {
		return ""
	}
	return c.baseURL + "/api/utils/file/download?key=" + url.QueryEscape(key)
}

// ImageURL builds the resized image URL used for trainer profiles.
func (c *Client) ImageURL(key string, width, height int) string {
	if key == "" {
		return ""
	}
	return fmt.Sprintf("%s/image/get?id=%s&width=%d&height=%d", c.baseURL, url.QueryEscape(key), width, height)
}
