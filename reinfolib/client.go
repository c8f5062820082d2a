package reinfolib

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/hashicorp/go-retryablehttp"
)

// Client talks to the MLIT real-estate information library
// (reinfolib). Prices on this feed are raw yen (UnitYen).
type Client struct {
	key     string
	baseURL string
	http    *retryablehttp.Client
	log     *slog.Logger
}

func NewClient(apiKey string, log *slog.Logger) *Client {
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
		key:     apiKey,
		baseURL: "https://www.reinfolib.mlit.go.jp/ex-api/external",
		http:    rc,
		log:     log,
	}
}

// SetBaseURL overrides the upstream endpoint, for tests.
func (c *Client) SetBaseURL(u string) { c.baseURL = u }

// Search runs one XIT001 trade-price query and returns normalized
// properties. Failure semantics follow the pipeline contract: a
// missing key short-circuits before any network call, a 404 is a
// legitimate empty result, and upstream or decode errors surface to
// the caller who absorbs them into an empty feed.
func (c *Client) Search(ctx context.Context, req SearchRequest) ([]Property, error) {
	if c.key == "" {
		c.log.Warn("reinfolib subscription key not set; skipping upstream call")
		return []Property{}, nil
	}

	q := BuildQuery(req)
	u := fmt.Sprintf("%s/XIT001?%s", c.baseURL, q.Encode())

	hreq, err := retryablehttp.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, err
	}
	hreq.Header.Set("Ocp-Apim-Subscription-Key", c.key)
	hreq.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(hreq)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		// No data for this area/quarter, not an error.
		c.log.Info("reinfolib returned no data", "area", q.Get("area"), "year", q.Get("year"), "quarter", q.Get("quarter"))
		return []Property{}, nil
	}
	if resp.StatusCode >= 400 {
		var body map[string]any
		_ = json.NewDecoder(resp.Body).Decode(&body)
		return nil, fmt.Errorf("reinfolib error %d: %v", resp.StatusCode, body)
	}

	raw, err := ioReadAllLimit(resp.Body, 4<<20) // 4MB guard
	if err != nil {
		return nil, err
	}

	var payload any
	if err := json.Unmarshal(raw, &payload); err != nil {
		return nil, fmt.Errorf("reinfolib payload decode: %w", err)
	}

	items := Unwrap(payload)
	props := MapPayload(items)
	c.log.Debug("reinfolib search mapped", "raw", len(items), "kept", len(props))
	return props, nil
}

func ioReadAllLimit(r io.Reader, limit int64) ([]byte, error) {
	lr := io.LimitReader(r, limit+1)
	b, err := io.ReadAll(lr)
	if err != nil {
		return nil, err
	}
	if int64(len(b)) > limit {
		return nil, errors.New("payload too large")
	}
	return b, nil
}
