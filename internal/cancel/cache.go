package cancel

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/allegro/bigcache"
	"go.uber.org/zap"
)

// CachedOrderFetcher wraps an EncodedOrderFetcher with an in-memory cache.
// Encoded orders are immutable once created, so a hit never goes stale;
// entries expire on the cache's life window to bound memory.
type CachedOrderFetcher struct {
	logs    *zap.SugaredLogger
	fetcher EncodedOrderFetcher
	cache   *bigcache.BigCache
}

func NewCachedOrderFetcher(logger *zap.SugaredLogger, fetcher EncodedOrderFetcher) (*CachedOrderFetcher, error) {
	cache, err := bigcache.NewBigCache(bigcache.Config{
		Shards:             256,
		LifeWindow:         30 * time.Minute,
		CleanWindow:        5 * time.Minute,
		MaxEntriesInWindow: 10_000,
		MaxEntrySize:       8192,
		HardMaxCacheSize:   64,
	})
	if err != nil {
		return nil, fmt.Errorf("create order cache: %w", err)
	}

	return &CachedOrderFetcher{
		logs:    logger,
		fetcher: fetcher,
		cache:   cache,
	}, nil
}

// FetchEncodedOrders serves cached encodings and fetches only the hashes the
// cache does not hold. The underlying fetcher's transport error propagates
// unchanged when an actual fetch was needed.
func (c *CachedOrderFetcher) FetchEncodedOrders(ctx context.Context, orderHashes []string) ([]OrderEncoding, error) {
	if len(orderHashes) == 0 {
		return nil, nil
	}

	result := make([]OrderEncoding, 0, len(orderHashes))
	missing := make([]string, 0, len(orderHashes))

	for _, hash := range orderHashes {
		data, err := c.cache.Get(hash)
		if err != nil {
			missing = append(missing, hash)
			continue
		}
		var enc OrderEncoding
		if err := json.Unmarshal(data, &enc); err != nil {
			c.logs.Errorw("decoding cached order", "error", err, "orderHash", hash)
			missing = append(missing, hash)
			continue
		}
		result = append(result, enc)
	}

	if len(missing) == 0 {
		return result, nil
	}

	fetched, err := c.fetcher.FetchEncodedOrders(ctx, missing)
	if err != nil {
		return nil, fmt.Errorf("fetch encoded orders: %w", err)
	}

	for _, enc := range fetched {
		data, err := json.Marshal(enc)
		if err != nil {
			c.logs.Errorw("encoding order for cache", "error", err, "orderHash", enc.OrderHash)
			continue
		}
		if err := c.cache.Set(enc.OrderHash, data); err != nil {
			c.logs.Errorw("caching encoded order", "error", err, "orderHash", enc.OrderHash)
		}
	}

	return append(result, fetched...), nil
}
