package markets

import (
	"context"
	"fmt"
	"time"

	"github.com/polymaker/lp-bot/pkg/cache"
	"go.uber.org/zap"
)

const midpointTTL = 5 * time.Minute

// CachedMidpointSource wraps a MidpointSource with a cache so the
// monitor can keep working on the last known price when the CLOB API
// is briefly unreachable.
type CachedMidpointSource struct {
	source MidpointSource
	cache  cache.Cache
	logger *zap.Logger
}

// NewCachedMidpointSource creates a caching wrapper around src.
func NewCachedMidpointSource(src MidpointSource, c cache.Cache, logger *zap.Logger) *CachedMidpointSource {
	return &CachedMidpointSource{
		source: src,
		cache:  c,
		logger: logger,
	}
}

// GetMidpoint fetches a fresh midpoint and caches it. On fetch failure
// it falls back to the cached value when one exists.
func (s *CachedMidpointSource) GetMidpoint(ctx context.Context, tokenID string) (float64, error) {
	key := "midpoint:" + tokenID

	mid, err := s.source.GetMidpoint(ctx, tokenID)
	if err == nil {
		s.cache.Set(key, mid, midpointTTL)
		return mid, nil
	}

	if v, ok := s.cache.Get(key); ok {
		if cached, ok := v.(float64); ok {
			MidpointCacheFallbacksTotal.Inc()
			s.logger.Warn("midpoint-fetch-failed-using-cached",
				zap.String("token_id", tokenID),
				zap.Float64("cached_mid", cached),
				zap.Error(err))
			return cached, nil
		}
	}

	return 0, fmt.Errorf("get midpoint for token %s: %w", tokenID, err)
}
