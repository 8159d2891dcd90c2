// Package geoip resolves a client IP to a coarse location via the free
// ip-api.com service. Lookups are best-effort context for admin review;
// callers must tolerate empty results.
package geoip

import (
	"context"
	"encoding/json"
	"net/http"
	"net/url"
	"time"
)

// Location is a best-effort geolocation result. All fields may be empty.
type Location struct {
	Country string
	Region  string
	City    string
}

// Locator resolves an IP address to a Location.
type Locator interface {
	Lookup(ctx context.Context, ip string) (Location, error)
}

// Client queries ip-api.com.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// NewClient creates a Client with a short timeout; lookups sit on the intake
// path and must not stall it.
func NewClient() *Client {
	return &Client{
		baseURL:    "http://ip-api.com",
		httpClient: &http.Client{Timeout: 5 * time.Second},
	}
}

var _ Locator = (*Client)(nil)

// Lookup resolves ip. A failed or unsuccessful lookup returns a zero Location
// and the underlying error, which callers are expected to log and ignore.
func (c *Client) Lookup(ctx context.Context, ip string) (Location, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/json/"+url.PathEscape(ip), nil)
	if err != nil {
		return Location{}, err
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return Location{}, err
	}
	defer resp.Body.Close()

	var result struct {
		Status     string `json:"status"`
		Country    string `json:"country"`
		RegionName string `json:"regionName"`
		City       string `json:"city"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return Location{}, err
	}
	if result.Status != "success" {
		return Location{}, nil
	}
	return Location{
		Country: result.Country,
		Region:  result.RegionName,
		City:    result.City,
	}, nil
}
