// Package cache provides Redis-backed caching for slow upstream data.
package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/boplan/boplan-backend/internal/client"
)

// PriceCacheTTL bounds how stale cached spot prices may get. The upstream
// publishes day-ahead prices once per day, so an hour is plenty fresh.
const PriceCacheTTL = time.Hour

// PriceCache caches daily spot prices per bidding zone in Redis.
type PriceCache struct {
	client *redis.Client
}

// NewPriceCache creates a PriceCache against the Redis instance at addr.
func NewPriceCache(addr string) *PriceCache {
	rdb := redis.NewClient(&redis.Options{
		Addr: addr,
	})
	return &PriceCache{client: rdb}
}

// Ping verifies the Redis connection.
func (c *PriceCache) Ping(ctx context.Context) error {
	return c.client.Ping(ctx).Err()
}

// Close releases the underlying Redis connection.
func (c *PriceCache) Close() error {
	return c.client.Close()
}

func priceKey(zone string, date time.Time) string {
	return fmt.Sprintf("spotprice:%s:%s", zone, date.Format("2006-01-02"))
}

// Get returns the cached prices for a zone and date, or false on a miss.
// Redis errors are treated as misses; the caller falls through to the API.
func (c *PriceCache) Get(ctx context.Context, zone string, date time.Time) ([]client.HourlyPrice, bool) {
	val, err := c.client.Get(ctx, priceKey(zone, date)).Bytes()
	if err != nil {
		return nil, false
	}

	var prices []client.HourlyPrice
	if err := json.Unmarshal(val, &prices); err != nil {
		return nil, false
	}
	return prices, true
}

// Set stores the prices for a zone and date with the cache TTL.
func (c *PriceCache) Set(ctx context.Context, zone string, date time.Time, prices []client.HourlyPrice) error {
	data, err := json.Marshal(prices)
	if err != nil {
		return err
	}
	return c.client.Set(ctx, priceKey(zone, date), data, PriceCacheTTL).Err()
}
