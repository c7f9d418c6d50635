// Package client provides HTTP clients for the external APIs the backend
// consumes: the elprisetjustnu.se spot-price feed and Nominatim geocoding.
package client

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"
)

const (
	requestTimeout = 10 * time.Second
	maxBodySize    = 1 << 20 // 1 MB
)

var (
	// ErrZoneNotFound indicates no price data exists for the zone and date.
	ErrZoneNotFound = errors.New("elpris: no prices for zone and date")
	// ErrUpstream indicates the upstream API returned an unexpected status.
	ErrUpstream = errors.New("elpris: upstream error")
)

// validZones lists the four Swedish electricity bidding zones.
var validZones = map[string]bool{
	"SE1": true,
	"SE2": true,
	"SE3": true,
	"SE4": true,
}

// ValidZone reports whether zone is one of SE1-SE4.
func ValidZone(zone string) bool {
	return validZones[zone]
}

// HourlyPrice is a single hour of spot prices from elprisetjustnu.se.
type HourlyPrice struct {
	SEKPerKWh float64   `json:"SEK_per_kWh"`
	EURPerKWh float64   `json:"EUR_per_kWh"`
	EXR       float64   `json:"EXR"`
	TimeStart time.Time `json:"time_start"`
	TimeEnd   time.Time `json:"time_end"`
}

// ElprisClient fetches electricity spot prices from elprisetjustnu.se.
type ElprisClient struct {
	baseURL string
	http    *http.Client
}

// NewElprisClient creates a client against the given base URL.
func NewElprisClient(baseURL string) *ElprisClient {
	return &ElprisClient{
		baseURL: baseURL,
		http:    &http.Client{},
	}
}

// FetchPrices returns the hourly spot prices for a zone on a given date.
// The upstream publishes one JSON file per zone and day.
func (c *ElprisClient) FetchPrices(ctx context.Context, zone string, date time.Time) ([]HourlyPrice, error) {
	if !ValidZone(zone) {
		return nil, fmt.Errorf("elpris: invalid zone %q", zone)
	}

	path := fmt.Sprintf("/api/v1/prices/%d/%02d-%02d_%s.json",
		date.Year(), int(date.Month()), date.Day(), zone)

	ctx, cancel := context.WithTimeout(ctx, requestTimeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return nil, fmt.Errorf("elpris: creating request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("elpris: request failed: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode == http.StatusNotFound {
		return nil, ErrZoneNotFound
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("%w: status %d", ErrUpstream, resp.StatusCode)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodySize))
	if err != nil {
		return nil, fmt.Errorf("elpris: reading response: %w", err)
	}

	var prices []HourlyPrice
	if err := json.Unmarshal(body, &prices); err != nil {
		return nil, fmt.Errorf("elpris: parsing prices: %w", err)
	}
	return prices, nil
}
