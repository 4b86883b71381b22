// internal/occupancy/client.go
package occupancy

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"time"
)

// Entry is one raw check-in event from the kiosk API. Time is in
// "YYYY-MM-DD HH:MM:SS" local wall-clock form.
type Entry struct {
	MemberID int    `json:"memberId"`
	Time     string `json:"time"`
}

// EntriesResponse is the kiosk API payload for one site's day.
type EntriesResponse struct {
	Entries  []Entry `json:"entries"`
	SiteName string  `json:"siteName"`
}

// Client reads the kiosk check-in API.
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

// EntriesToday returns today's raw check-in events for one site.
func (c *Client) EntriesToday(ctx context.Context, siteID int) (*EntriesResponse, error) {
	url := c.baseURL + "/entries/today?site=" + strconv.Itoa(siteID)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}

	res, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("request entries: %w", err)
	}
	defer res.Body.Close()

	body, err := io.ReadAll(res.Body)
	if err != nil {
		return nil, fmt.Errorf("read response: %w", err)
	}
	if res.StatusCode < 200 || res.StatusCode >= 300 {
		return nil, fmt.Errorf("unexpected status code: %s", res.Status)
	}

	var response EntriesResponse
	if err := json.Unmarshal(body, &response); err != nil {
		return nil, fmt.Errorf("decode response: %w", err)
	}
	return &response, nil
}
