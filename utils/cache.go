package utils

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"time"

	"go-booking/models"

	"github.com/redis/go-redis/v9"
)

const shopListingKey = "shops:listing"

// ConnectRedis parses a redis:// URL and checks the connection
func ConnectRedis(ctx context.Context, url string) (*redis.Client, error) {
	opts, err := redis.ParseURL(url)
	if err != nil {
		return nil, err
	}
	client := redis.NewClient(opts)
	if err := client.Ping(ctx).Err(); err != nil {
		client.Close()
		return nil, err
	}
	log.Println("Connected to Redis")
	return client, nil
}

// ShopListingCache keeps the ranked shop listing in Redis. Redis failures
// are logged and treated as a miss; the listing is always recomputable.
type ShopListingCache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewShopListingCache returns a cache whose entries expire after ttl
func NewShopListingCache(client *redis.Client, ttl time.Duration) *ShopListingCache {
	return &ShopListingCache{client: client, ttl: ttl}
}

func (c *ShopListingCache) Load(ctx context.Context) ([]models.ShopListing, bool) {
	data, err := c.client.Get(ctx, shopListingKey).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, false
	}
	if err != nil {
		log.Printf("shop cache read: %v", err)
		return nil, false
	}
	var listings []models.ShopListing
	if err := json.Unmarshal(data, &listings); err != nil {
		log.Printf("shop cache decode: %v", err)
		return nil, false
	}
	return listings, true
}

func (c *ShopListingCache) Store(ctx context.Context, listings []models.ShopListing) {
	data, err := json.Marshal(listings)
	if err != nil {
		log.Printf("shop cache encode: %v", err)
		return
	}
	if err := c.client.Set(ctx, shopListingKey, data, c.ttl).Err(); err != nil {
		log.Printf("shop cache write: %v", err)
	}
}

func (c *ShopListingCache) Invalidate(ctx context.Context) {
	if err := c.client.Del(ctx, shopListingKey).Err(); err != nil {
		log.Printf("shop cache invalidate: %v", err)
	}
}
