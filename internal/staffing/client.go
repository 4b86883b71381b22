// internal/staffing/client.go
package staffing

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

// Slot is one staffed open/close range on a single day, both ends in
// zero-padded HH:MM wall-clock form.
type Slot struct {
	Open  string `json:"open"`
	Close string `json:"close"`
}

// ClubStaffing is the per-club row of the staffed-hours tables.
type ClubStaffing struct {
	ID                 int    `json:"id"`
	Name               string `json:"name"`
	ShortName          string `json:"shortName"`
	SiteID             int    `json:"siteId"`
	ComingSoon         bool   `json:"comingSoon"`
	Closed             bool   `json:"closed"`
	Staffed            bool   `json:"staffed"`
	Slots              []Slot `json:"slots"`
	DisplayText        string `json:"displayText"`
	IsCurrentlyStaffed bool   `json:"isCurrentlyStaffed"`
}

// TodayResponse is the staffed-hours table for the current day, keyed by
// club id (as a string, the way the worker API serializes it).
type TodayResponse struct {
	Date    string                  `json:"date"`
	DayID   string                  `json:"dayId"`
	DayName string                  `json:"dayName"`
	Clubs   map[string]ClubStaffing `json:"clubs"`
}

// WeekDay is one day of the week table.
type WeekDay struct {
	Date    string                  `json:"date"`
	DayID   string                  `json:"dayId"`
	DayName string                  `json:"dayName"`
	Clubs   map[string]ClubStaffing `json:"clubs"`
}

// WeekResponse is the rolling week table, today first.
type WeekResponse struct {
	Days []WeekDay `json:"days"`
}

// Client reads the staffed-hours worker API.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

func NewClient(baseURL string, timeout time.Duration) *Client {
	return &Client{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: timeout,
		},
	}
}

func (c *Client) get(ctx context.Context, path string, dst any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
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
	if err := json.Unmarshal(body, dst); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}

// FetchToday returns today's staffed-hours table.
func (c *Client) FetchToday(ctx context.Context) (*TodayResponse, error) {
	var response TodayResponse
	if err := c.get(ctx, "/today", &response); err != nil {
		return nil, err
	}
	return &response, nil
}

// FetchWeek returns the rolling week table.
func (c *Client) FetchWeek(ctx context.Context) (*WeekResponse, error) {
	var response WeekResponse
	if err := c.get(ctx, "/week", &response); err != nil {
		return nil, err
	}
	return &response, nil
}
