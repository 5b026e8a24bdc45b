package holidays

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/goccy/go-json"

	"github.com/warp/leave-planner/calendar"
)

const (
	// DefaultURL lists Japanese public holidays from last year through next year.
	DefaultURL = "https://holidays-jp.github.io/api/v1/date.json"

	// DefaultTimeout bounds a single fetch.
	DefaultTimeout = 10 * time.Second

	maxBodyBytes = 4 << 20
)

// Client fetches a date -> label JSON object over HTTP.
type Client struct {
	URL  string
	HTTP *http.Client
}

// NewClient creates a client. Empty url and zero timeout select the defaults.
func NewClient(url string, timeout time.Duration) *Client {
	if url == "" {
		url = DefaultURL
	}
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &Client{
		URL:  url,
		HTTP: &http.Client{Timeout: timeout},
	}
}

// Fetch downloads and validates the calendar.
func (c *Client) Fetch(ctx context.Context) (calendar.Holidays, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.URL, nil)
	if err != nil {
		return nil, &FetchError{URL: c.URL, Err: err}
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.HTTP.Do(req)
	if err != nil {
		return nil, &FetchError{URL: c.URL, Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, &FetchError{URL: c.URL, StatusCode: resp.StatusCode}
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
	if err != nil {
		return nil, &FetchError{URL: c.URL, Err: fmt.Errorf("read response: %w", err)}
	}

	// Unmarshal rejects trailing data after the object.
	var raw map[string]string
	if err := json.Unmarshal(body, &raw); err != nil {
		return nil, &FetchError{URL: c.URL, Err: fmt.Errorf("decode response: %w", err)}
	}
	// A JSON null decodes without error into a nil map.
	if raw == nil {
		return nil, &FetchError{URL: c.URL, Err: errors.New("decode response: not a JSON object")}
	}
	for key := range raw {
		if _, err := calendar.ParseDate(key); err != nil {
			return nil, &FetchError{URL: c.URL, Err: fmt.Errorf("decode response: %w", err)}
		}
	}

	return calendar.Holidays(raw), nil
}
