package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"smart-summary-be/pkg/store"

	"github.com/redis/go-redis/v9"
)

// SuggestionCache keeps competitor suggestions from the analysis
// backend in Redis. The backend cold-starts slowly, so a warm cache
// saves the user a long wait on repeat lookups.
type SuggestionCache struct {
	client *redis.Client
	ttl    time.Duration
}

func NewSuggestionCache(client *redis.Client, ttl time.Duration) *SuggestionCache {
	if ttl <= 0 {
		ttl = 24 * time.Hour
	}
	return &SuggestionCache{client: client, ttl: ttl}
}

func key(naicsCode, state, keywords string) string {
	return fmt.Sprintf("suggestions:%s:%s:%s", naicsCode, state, keywords)
}

func (c *SuggestionCache) Get(ctx context.Context, naicsCode, state, keywords string) ([]store.Suggestion, bool) {
	if c == nil || c.client == nil {
		return nil, false
	}
	raw, err := c.client.Get(ctx, key(naicsCode, state, keywords)).Bytes()
	if err != nil {
		return nil, false
	}
	var suggestions []store.Suggestion
	if err := json.Unmarshal(raw, &suggestions); err != nil {
		return nil, false
	}
	return suggestions, true
}

func (c *SuggestionCache) Set(ctx context.Context, naicsCode, state, keywords string, suggestions []store.Suggestion) {
	if c == nil || c.client == nil {
		return
	}
	raw, err := json.Marshal(suggestions)
	if err != nil {
		return
	}
	c.client.Set(ctx, key(naicsCode, state, keywords), raw, c.ttl)
}
