// Package lifull integrates the LIFULL HOME'S rental search API as a
// second listing source. Monthly rents on this feed arrive as 万円
// text, so the mapper runs them through reinfolib.UnitManYen; the
// absolute-yen field is the fallback.
package lifull

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/hashicorp/go-retryablehttp"

	"github.com/yourorg/sumika-api/reinfolib"
)

type Client struct {
	token   string
	baseURL string
	http    *retryablehttp.Client
	log     *slog.Logger
}

func NewClient(token string, log *slog.Logger) *Client {
	rc := retryablehttp.NewClient()
	rc.RetryWaitMin = 100 * time.Millisecond
	rc.RetryWaitMax = 900 * time.Millisecond
	rc.RetryMax = 3
	rc.HTTPClient.Timeout = 6 * time.Second
	rc.Logger = nil

	if log == nil {
		log = slog.Default()
	}
	return &Client{
		token:   token,
		baseURL: "https://openai-api.homes.co.jp/v1",
		http:    rc,
		log:     log,
	}
}

// SetBaseURL overrides the upstream endpoint, for tests.
func (c *Client) SetBaseURL(u string) { c.baseURL = u }

// SearchParams narrows a room search. FullAddr is a free-text address
// fragment; Page defaults to 1.
type SearchParams struct {
	FullAddr string
	Page     int
}

// Search queries rental rooms sorted newest-first and maps them into
// canonical properties. A missing token logs a warning and returns an
// empty list without touching the network.
func (c *Client) Search(ctx context.Context, params SearchParams) ([]reinfolib.Property, error) {
	if c.token == "" {
		c.log.Warn("lifull token not set; skipping upstream call")
		return []reinfolib.Property{}, nil
	}

	page := params.Page
	if page <= 0 {
		page = 1
	}
	q := url.Values{}
	q.Set("page", strconv.Itoa(page))
	q.Set("sort_by", "-newdate")
	if params.FullAddr != "" {
		q.Set("fulladdr", params.FullAddr)
	}
	u := fmt.Sprintf("%s/realestate_article/search/room?%s", c.baseURL, q.Encode())

	req, err := retryablehttp.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Authorization", "Bearer "+c.token)

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return []reinfolib.Property{}, nil
	}
	if resp.StatusCode >= 400 {
		return nil, fmt.Errorf("lifull error %d", resp.StatusCode)
	}

	var root roomPayload
	if err := json.NewDecoder(resp.Body).Decode(&root); err != nil {
		return nil, fmt.Errorf("lifull payload decode: %w", err)
	}
	return mapRooms(root.RowSet), nil
}
