package service

import (
	"context"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/boplan/boplan-backend/internal/client"
)

// PriceFetcher fetches spot prices from the upstream API
type PriceFetcher interface {
	FetchPrices(ctx context.Context, zone string, date time.Time) ([]client.HourlyPrice, error)
}

// PriceCache caches spot prices per zone and date
type PriceCache interface {
	Get(ctx context.Context, zone string, date time.Time) ([]client.HourlyPrice, bool)
	Set(ctx context.Context, zone string, date time.Time, prices []client.HourlyPrice) error
}

// SpotPriceService serves electricity spot prices with a cache in front of
// the upstream API
type SpotPriceService struct {
	fetcher PriceFetcher
	cache   PriceCache
	// now is overridable in tests
	now func() time.Time
}

// NewSpotPriceService creates a new SpotPriceService. cache may be nil,
// in which case every request hits the upstream.
func NewSpotPriceService(fetcher PriceFetcher, cache PriceCache) *SpotPriceService {
	return &SpotPriceService{
		fetcher: fetcher,
		cache:   cache,
		now:     time.Now,
	}
}

// GetTodayPrices returns today's hourly spot prices for a zone
func (s *SpotPriceService) GetTodayPrices(ctx context.Context, zone string) ([]client.HourlyPrice, error) {
	date := s.now()

	if s.cache != nil {
		if prices, ok := s.cache.Get(ctx, zone, date); ok {
			return prices, nil
		}
	}

	prices, err := s.fetcher.FetchPrices(ctx, zone, date)
	if err != nil {
		return nil, err
	}

	if s.cache != nil {
		if err := s.cache.Set(ctx, zone, date, prices); err != nil {
			// Cache failures must not fail the request
			log.Warn().Err(err).Str("zone", zone).Msg("Failed to cache spot prices")
		}
	}

	return prices, nil
}
