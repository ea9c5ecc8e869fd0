// Package apod is a thin client for the public Astronomy Picture of the Day
// API.
package apod

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"skylight/models"

	"github.com/labstack/gommon/log"
)

// DefaultEndpoint is the public APOD API with the shared demo key. The
// thumbs parameter makes the API include thumbnail URLs for video items.
const DefaultEndpoint = "https://api.nasa.gov/planetary/apod?api_key=DEMO_KEY&count=24&thumbs=true"

// Responses larger than this are truncated; a healthy feed page is a few
// hundred kilobytes at most.
const maxResponseBytes = 8 << 20

// StatusError is returned when the API answers with a non-success status.
type StatusError struct {
	Code int
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("apod: unexpected status %d", e.Code)
}

// IsClientError reports whether err is a 4xx response, which retrying will
// not fix.
func IsClientError(err error) bool {
	statusErr, ok := err.(*StatusError)
	return ok && statusErr.Code >= 400 && statusErr.Code < 500
}

type Client struct {
	endpoint string
	http     *http.Client
}

func NewClient(endpoint string, timeout time.Duration) *Client {
	if endpoint == "" {
		endpoint = DefaultEndpoint
	}
	return &Client{
		endpoint: endpoint,
		http:     &http.Client{Timeout: timeout},
	}
}

// FetchItems performs one GET against the endpoint and decodes the body as
// a feed item collection. The caller decides whether an empty result counts
// as a failure.
func (c *Client) FetchItems(ctx context.Context) ([]models.Item, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("apod: build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("apod: fetch: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		log.Errorf("apod request failed with status %d", resp.StatusCode)
		return nil, &StatusError{Code: resp.StatusCode}
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	if err != nil {
		return nil, fmt.Errorf("apod: read body: %w", err)
	}

	items, err := models.DecodeItems(body)
	if err != nil {
		return nil, fmt.Errorf("apod: decode body: %w", err)
	}

	return items, nil
}
