// internal/updates/client.go
package updates

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"
)

// Update is a short-lived announcement, global or targeted at clubs.
type Update struct {
	ID             string  `json:"id"`
	Message        string  `json:"message"`
	Emoji          *string `json:"emoji"`
	ClubIDs        []int   `json:"clubIds"`
	Global         bool    `json:"global"`
	AuthorName     string  `json:"authorName"`
	AuthorID       *int    `json:"authorId"`
	AuthorImageURL *string `json:"authorImageUrl"`
	CreatedAt      string  `json:"createdAt"`
	ExpiresAt      string  `json:"expiresAt"`
	DaysActive     int     `json:"daysActive"`
	Pinned         bool    `json:"pinned"`
	Hidden         bool    `json:"hidden"`
	Views          int     `json:"views"`
}

// ListResponse is the active-updates collection, pinned first.
type ListResponse struct {
	Updates []Update `json:"updates"`
	Total   int      `json:"total"`
}

// ListOptions filters an update listing.
type ListOptions struct {
	ClubID int
	Limit  int
}

// Client reads the updates worker API.
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

// List fetches active updates, optionally scoped to one club (global
// updates are always included by the upstream).
func (c *Client) List(ctx context.Context, opts ListOptions) (*ListResponse, error) {
	params := url.Values{}
	if opts.ClubID > 0 {
		params.Set("clubId", strconv.Itoa(opts.ClubID))
	}
	if opts.Limit > 0 {
		params.Set("limit", strconv.Itoa(opts.Limit))
	}

	endpoint := "/updates"
	if len(params) > 0 {
		endpoint += "?" + params.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	res, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("request updates: %w", err)
	}
	defer res.Body.Close()

	body, err := io.ReadAll(res.Body)
	if err != nil {
		return nil, fmt.Errorf("read response: %w", err)
	}
	if res.StatusCode < 200 || res.StatusCode >= 300 {
		return nil, fmt.Errorf("unexpected status code: %s", res.Status)
	}

	var response ListResponse
	if err := json.Unmarshal(body, &response); err != nil {
		return nil, fmt.Errorf("decode response: %w", err)
	}
	return &response, nil
}

// DaysLeft returns whole days until the update expires, floored at zero.
func DaysLeft(update Update, now time.Time) int {
	if update.ExpiresAt == "" {
		return 0
	}
	expires, err := time.Parse(time.RFC3339, update.ExpiresAt)
	if err != nil {
		return 0
	}
	diff := expires.Sub(now)
	if diff <= 0 {
		return 0
	}
	return int((diff + 24*time.Hour - time.Nanosecond) / (24 * time.Hour))
}

// ExpiringSoon reports whether the update expires within two days.
func ExpiringSoon(update Update, now time.Time) bool {
	return DaysLeft(update, now) <= 2
}
