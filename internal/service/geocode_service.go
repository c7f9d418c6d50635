package service

import (
	"context"
	"strings"

	"github.com/boplan/boplan-backend/internal/client"
	"github.com/boplan/boplan-backend/internal/domain"
)

// MaxGeocodeResults caps how many hits a single lookup returns
const MaxGeocodeResults = 5

// Geocoder resolves free-text addresses to coordinates
type Geocoder interface {
	Search(ctx context.Context, query string, limit int) ([]client.GeocodeResult, error)
}

// GeocodeService wraps address lookups used by the property-value form
type GeocodeService struct {
	geocoder Geocoder
}

// NewGeocodeService creates a new GeocodeService
func NewGeocodeService(geocoder Geocoder) *GeocodeService {
	return &GeocodeService{geocoder: geocoder}
}

// Search geocodes a free-text address query
func (s *GeocodeService) Search(ctx context.Context, query string) ([]client.GeocodeResult, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return nil, domain.ErrInvalidInput
	}
	return s.geocoder.Search(ctx, query, MaxGeocodeResults)
}
