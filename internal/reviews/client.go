// internal/reviews/client.go
package reviews

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"math"
	"net/http"
	"net/url"
	"strconv"
	"time"
)

// Review is one member review from the reviews worker API.
type Review struct {
	ID          string  `json:"id"`
	Type        string  `json:"type"`
	AuthorName  string  `json:"authorName"`
	Rating      float64 `json:"rating"`
	Text        string  `json:"text"`
	PublishTime string  `json:"publishTime"`
	ClubID      int     `json:"clubId,omitempty"`
	ClubName    string  `json:"clubName,omitempty"`
	TargetID    int     `json:"targetId,omitempty"`
	TargetName  string  `json:"targetName,omitempty"`
	Featured    bool    `json:"featured,omitempty"`
	Hidden      bool    `json:"hidden,omitempty"`
}

// ListResponse is the reviews collection payload.
type ListResponse struct {
	Reviews       []Review `json:"reviews"`
	Total         int      `json:"total"`
	AverageRating float64  `json:"averageRating,omitempty"`
}

// ListOptions filters a review listing. Featured switches to the curated
// five-star endpoint.
type ListOptions struct {
	ClubID   int
	Limit    int
	Featured bool
}

// Client reads the reviews worker API.
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

// List fetches reviews matching the options.
func (c *Client) List(ctx context.Context, opts ListOptions) (*ListResponse, error) {
	params := url.Values{}
	if opts.ClubID > 0 {
		params.Set("clubId", strconv.Itoa(opts.ClubID))
	}
	if opts.Limit > 0 {
		params.Set("limit", strconv.Itoa(opts.Limit))
	}

	endpoint := "/reviews"
	if opts.Featured {
		endpoint = "/reviews/featured"
	}
	if len(params) > 0 {
		endpoint += "?" + params.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	res, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("request reviews: %w", err)
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

// AverageRating computes the mean rating rounded to one decimal, zero for
// an empty list.
func AverageRating(list []Review) float64 {
	if len(list) == 0 {
		return 0
	}
	var sum float64
	for _, review := range list {
		sum += review.Rating
	}
	return math.Round(sum/float64(len(list))*10) / 10
}
