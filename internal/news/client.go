// internal/news/client.go
package news

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"
)

// Item is one news post from the news worker API.
type Item struct {
	ID          string   `json:"id"`
	Title       string   `json:"title"`
	Content     string   `json:"content"`
	Summary     string   `json:"summary"`
	Categories  []string `json:"categories"`
	ImageURL    *string  `json:"imageUrl"`
	Author      string   `json:"author"`
	Status      string   `json:"status"`
	CreatedAt   string   `json:"created_at"`
	PublishedAt *string  `json:"published_at"`
	Source      string   `json:"source"`
}

// ListResponse is the paginated news collection.
type ListResponse struct {
	News    []Item `json:"news"`
	Total   int    `json:"total"`
	Limit   int    `json:"limit"`
	Offset  int    `json:"offset"`
	HasMore bool   `json:"hasMore"`
}

// ListOptions filters a news listing. Zero values are omitted from the
// query string.
type ListOptions struct {
	Site       string
	Categories []string
	Limit      int
	Offset     int
}

// Client reads the news worker API.
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

func (c *Client) get(ctx context.Context, path string, dst any) (int, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return 0, fmt.Errorf("build request: %w", err)
	}
	res, err := c.httpClient.Do(req)
	if err != nil {
		return 0, fmt.Errorf("request %s: %w", path, err)
	}
	defer res.Body.Close()

	body, err := io.ReadAll(res.Body)
	if err != nil {
		return res.StatusCode, fmt.Errorf("read response: %w", err)
	}
	if res.StatusCode < 200 || res.StatusCode >= 300 {
		return res.StatusCode, fmt.Errorf("unexpected status code: %s", res.Status)
	}
	if err := json.Unmarshal(body, dst); err != nil {
		return res.StatusCode, fmt.Errorf("decode response: %w", err)
	}
	return res.StatusCode, nil
}

// List fetches published news matching the options.
func (c *Client) List(ctx context.Context, opts ListOptions) (*ListResponse, error) {
	params := url.Values{}
	if opts.Site != "" {
		params.Set("site", opts.Site)
	}
	if len(opts.Categories) > 0 {
		params.Set("categories", strings.Join(opts.Categories, ","))
	}
	if opts.Limit > 0 {
		params.Set("limit", strconv.Itoa(opts.Limit))
	}
	if opts.Offset > 0 {
		params.Set("offset", strconv.Itoa(opts.Offset))
	}

	path := "/news"
	if len(params) > 0 {
		path += "?" + params.Encode()
	}

	var response ListResponse
	if _, err := c.get(ctx, path, &response); err != nil {
		return nil, err
	}
	return &response, nil
}

// Get fetches a single news item. A missing item returns nil, nil.
func (c *Client) Get(ctx context.Context, id string) (*Item, error) {
	var item Item
	status, err := c.get(ctx, "/news/"+url.PathEscape(id), &item)
	if err != nil {
		if status == http.StatusNotFound {
			return nil, nil
		}
		return nil, err
	}
	return &item, nil
}
