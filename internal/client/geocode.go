package client

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
)

// ErrNoResults indicates the geocoder found no match for the query.
var ErrNoResults = errors.New("geocode: no results")

// GeocodeResult is a single hit from the Nominatim search API.
type GeocodeResult struct {
	DisplayName string  `json:"display_name"`
	Latitude    float64 `json:"latitude"`
	Longitude   float64 `json:"longitude"`
	Class       string  `json:"class"`
	Type        string  `json:"type"`
}

// nominatimHit mirrors Nominatim's wire format, which encodes
// coordinates as strings.
type nominatimHit struct {
	DisplayName string `json:"display_name"`
	Lat         string `json:"lat"`
	Lon         string `json:"lon"`
	Class       string `json:"class"`
	Type        string `json:"type"`
}

// GeocodeClient resolves free-text addresses via a Nominatim-compatible API.
type GeocodeClient struct {
	baseURL string
	apiKey  string
	http    *http.Client
}

// NewGeocodeClient creates a client against the given base URL.
// apiKey may be empty for public Nominatim instances.
func NewGeocodeClient(baseURL, apiKey string) *GeocodeClient {
	return &GeocodeClient{
		baseURL: baseURL,
		apiKey:  apiKey,
		http:    &http.Client{},
	}
}

// Search geocodes a free-text query and returns up to limit results.
func (c *GeocodeClient) Search(ctx context.Context, query string, limit int) ([]GeocodeResult, error) {
	if limit <= 0 {
		limit = 5
	}

	params := url.Values{}
	params.Set("q", query)
	params.Set("format", "jsonv2")
	params.Set("limit", strconv.Itoa(limit))
	params.Set("countrycodes", "se")
	if c.apiKey != "" {
		params.Set("key", c.apiKey)
	}

	ctx, cancel := context.WithTimeout(ctx, requestTimeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/search?"+params.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("geocode: creating request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	// Nominatim's usage policy requires an identifying User-Agent
	req.Header.Set("User-Agent", "boplan-backend/1.0")

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("geocode: request failed: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("geocode: unexpected status %d", resp.StatusCode)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodySize))
	if err != nil {
		return nil, fmt.Errorf("geocode: reading response: %w", err)
	}

	var hits []nominatimHit
	if err := json.Unmarshal(body, &hits); err != nil {
		return nil, fmt.Errorf("geocode: parsing results: %w", err)
	}
	if len(hits) == 0 {
		return nil, ErrNoResults
	}

	results := make([]GeocodeResult, 0, len(hits))
	for _, h := range hits {
		lat, latErr := strconv.ParseFloat(h.Lat, 64)
		lon, lonErr := strconv.ParseFloat(h.Lon, 64)
		if latErr != nil || lonErr != nil {
			continue
		}
		results = append(results, GeocodeResult{
			DisplayName: h.DisplayName,
			Latitude:    lat,
			Longitude:   lon,
			Class:       h.Class,
			Type:        h.Type,
		})
	}
	if len(results) == 0 {
		return nil, ErrNoResults
	}
	return results, nil
}
