// Package geoip looks up where the player is, so the map can be lit by the
// local sun.
package geoip

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"sync"
	"time"
)

// LocationInfo stores geographic data and timezone.
type LocationInfo struct {
	Continent string    `json:"continent"`
	Country   string    `json:"country"`
	City      string    `json:"city"`
	Lat       float64   `json:"lat"`
	Lon       float64   `json:"lon"`
	Timezone  string    `json:"timezone"`
	IP        string    `json:"query"`
	TimeStamp time.Time `json:"-"`
}

var (
	ErrStatus     = errors.New("geoip: non-200 response from API")
	ErrNoTimezone = errors.New("geoip: timezone not provided")
)

// Client queries an ip-api compatible endpoint and caches the answer.
type Client struct {
	url         string
	httpTimeout time.Duration
	cacheTTL    time.Duration

	mu        sync.Mutex
	cache     *LocationInfo
	cacheTime time.Time
}

const defaultURL = "http://ip-api.com/json/"

// NewClient returns a client for url with default timeout and cache lifetime.
func NewClient(url string) *Client {
	return &Client{
		url:         url,
		httpTimeout: 5 * time.Second,
		cacheTTL:    time.Hour,
	}
}

// Default client with default settings.
var Default = NewClient(defaultURL)

// SetCacheTTL allows setting the cache lifetime.
func (c *Client) SetCacheTTL(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.cacheTTL = d
}

// SetHTTPTimeout sets the timeout for HTTP requests.
func (c *Client) SetHTTPTimeout(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.httpTimeout = d
}

// GetLocationInfo asks the Default client with a background context.
func GetLocationInfo() (*LocationInfo, error) {
	return Default.Lookup(context.Background())
}

// Lookup returns the cached location while it is fresh and queries the API otherwise.
func (c *Client) Lookup(ctx context.Context) (*LocationInfo, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.cache != nil && time.Since(c.cacheTime) <= c.cacheTTL {
		return c.cache, nil
	}

	ctx, cancel := context.WithTimeout(ctx, c.httpTimeout)
	defer cancel()
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.url, nil)
	if err != nil {
		return nil, err
	}
	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, ErrStatus
	}

	info := &LocationInfo{}
	if err := json.NewDecoder(resp.Body).Decode(info); err != nil {
		return nil, err
	}
	if info.Timezone == "" {
		return nil, ErrNoTimezone
	}
	if _, err := time.LoadLocation(info.Timezone); err != nil {
		return nil, err
	}
	info.TimeStamp = time.Now()

	c.cache = info
	c.cacheTime = info.TimeStamp
	return info, nil
}
