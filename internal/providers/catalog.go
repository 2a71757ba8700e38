package providers

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/jakejarvis/domainstack.io-sub006/internal/domain"
)

// CatalogEntry is one curated provider with its detection rule.
type CatalogEntry struct {
	Name   string   `json:"name"`
	Domain string   `json:"domain,omitempty"`
	Rule   RuleSpec `json:"rule"`
}

// Catalog supplies curated provider entries per category.
type Catalog interface {
	Entries(ctx context.Context, category domain.ProviderCategory) ([]CatalogEntry, error)
}

const catalogKeyPrefix = "provider-catalog:"

type cachedEntries struct {
	entries   []CatalogEntry
	fetchedAt time.Time
}

// RedisCatalog reads catalog documents from a key-value config store with a
// process-wide read-through cache. Absence of the document, or the store
// being unreachable, degrades to an empty catalog (all detections unknown)
// instead of failing lookups.
type RedisCatalog struct {
	client redis.Cmdable
	ttl    time.Duration
	logger *slog.Logger

	mu    sync.Mutex
	cache map[domain.ProviderCategory]cachedEntries
}

func NewRedisCatalog(client redis.Cmdable, ttl time.Duration, logger *slog.Logger) *RedisCatalog {
	if ttl == 0 {
		ttl = 5 * time.Minute
	}
	return &RedisCatalog{
		client: client,
		ttl:    ttl,
		logger: logger.With("component", "catalog"),
		cache:  make(map[domain.ProviderCategory]cachedEntries),
	}
}

func (c *RedisCatalog) Entries(ctx context.Context, category domain.ProviderCategory) ([]CatalogEntry, error) {
	c.mu.Lock()
	if cached, ok := c.cache[category]; ok && time.Since(cached.fetchedAt) < c.ttl {
		c.mu.Unlock()
		return cached.entries, nil
	}
	c.mu.Unlock()

	entries, err := c.load(ctx, category)
	if err != nil {
		c.logger.Warn("catalog unavailable, detections degrade to unknown",
			"category", category,
			"error", err,
		)
		return nil, nil
	}

	c.mu.Lock()
	c.cache[category] = cachedEntries{entries: entries, fetchedAt: time.Now()}
	c.mu.Unlock()

	return entries, nil
}

func (c *RedisCatalog) load(ctx context.Context, category domain.ProviderCategory) ([]CatalogEntry, error) {
	raw, err := c.client.Get(ctx, catalogKeyPrefix+string(category)).Result()
	if errors.Is(err, redis.Nil) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get catalog document: %w", err)
	}

	var entries []CatalogEntry
	if err := json.Unmarshal([]byte(raw), &entries); err != nil {
		return nil, fmt.Errorf("parse catalog document: %w", err)
	}
	return entries, nil
}

// Invalidate drops the cached document for a category, forcing a re-read on
// the next access.
func (c *RedisCatalog) Invalidate(category domain.ProviderCategory) {
	c.mu.Lock()
	delete(c.cache, category)
	c.mu.Unlock()
}
