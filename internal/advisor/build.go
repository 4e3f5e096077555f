package advisor

import (
	"context"
	"time"

	"github.com/hannguyen0712/credit-scorecerer/internal/config"
	"github.com/hannguyen0712/credit-scorecerer/internal/logging"
)

// FromConfig assembles a ready-to-use Advisor from application configuration:
// Gemini as primary when an API key is present, the deterministic heuristic
// otherwise, and a Redis or in-memory response cache. The returned cleanup
// releases any backend and cache connections and is safe to defer.
func FromConfig(ctx context.Context, cfg *config.Config, logger logging.Logger) (*Advisor, func(), error) {
	if logger == nil {
		logger = &logging.MockLogger{}
	}

	ttl := time.Duration(cfg.Cache.ExpiryMinutes) * time.Minute

	var cache ResponseCache
	var redisCache *RedisCache
	if cfg.Cache.RedisAddr != "" {
		redisCache = NewRedisCache(cfg.Cache.RedisAddr, ttl)
		cache = redisCache
	} else {
		cache = NewMemoryCache(ttl, cfg.Cache.MaxEntries)
	}

	fallback := NewHeuristicBackend(logger)

	var primary RecommendationBackend
	var gemini *GeminiBackend
	if cfg.AIEnabled() {
		var err error
		gemini, err = NewGeminiBackend(ctx, GeminiOptions{
			APIKey:          cfg.AI.APIKey,
			Model:           cfg.AI.Model,
			Timeout:         time.Duration(cfg.AI.TimeoutSeconds) * time.Second,
			MaxOutputTokens: cfg.AI.MaxOutputTokens,
			Temperature:     cfg.AI.Temperature,
		}, logger)
		if err != nil {
			// A misconfigured AI backend must not take the feature down;
			// run fallback-only and say so once.
			logger.WithError(err).Warn("AI backend unavailable, running with deterministic recommendations only")
		} else {
			primary = gemini
		}
	} else {
		logger.Debug("No Gemini API key configured, running with deterministic recommendations only")
	}

	cleanup := func() {
		if gemini != nil {
			if err := gemini.Close(); err != nil {
				logger.WithError(err).Warn("Failed to close Gemini client")
			}
		}
		if redisCache != nil {
			if err := redisCache.Close(); err != nil {
				logger.WithError(err).Warn("Failed to close Redis cache")
			}
		}
	}

	return New(primary, fallback, cache, logger), cleanup, nil
}
