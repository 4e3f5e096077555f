// Package advisor implements the purchase recommendation engine: a cached,
// AI-backed consultation pipeline that always degrades to a deterministic
// heuristic instead of surfacing backend failures. The caller supplies the
// current card snapshot on every call; the engine never fetches or mutates
// card data itself.
package advisor

import (
	"context"
	"encoding/json"
	"errors"

	"github.com/hannguyen0712/credit-scorecerer/internal/logging"
	"github.com/hannguyen0712/credit-scorecerer/internal/models"
)

// Advisor orchestrates one consultation: cache lookup, primary backend call,
// fallback on failure, cache store. Construct it once at startup and pass it
// to whatever issues consultations; there is no package-level instance.
type Advisor struct {
	primary  RecommendationBackend
	fallback RecommendationBackend
	cache    ResponseCache
	log      logging.Logger
}

// New creates an advisor. primary may be nil, in which case the advisor runs
// permanently in fallback-only mode (the output shape is identical either
// way, so callers never special-case it). fallback must be the deterministic
// backend and is assumed never to fail for non-empty card lists.
func New(primary RecommendationBackend, fallback RecommendationBackend, cache ResponseCache, logger logging.Logger) *Advisor {
	if logger == nil {
		logger = &logging.MockLogger{}
	}
	return &Advisor{
		primary:  primary,
		fallback: fallback,
		cache:    cache,
		log:      logger,
	}
}

// Consult is the engine's entry point. It always produces a
// ConsultationResponse except for an empty card list, which returns
// ErrNoCardsAvailable. AI failures are logged and absorbed by the heuristic;
// the caller never sees them.
func (a *Advisor) Consult(ctx context.Context, req models.ConsultationRequest, cards []models.CreditCard) (models.ConsultationResponse, error) {
	if len(cards) == 0 {
		return models.ConsultationResponse{}, ErrNoCardsAvailable
	}

	key := consultationKey(req, cards)
	if cached, ok := a.cache.Get(key); ok {
		var resp models.ConsultationResponse
		if err := json.Unmarshal([]byte(cached), &resp); err == nil {
			a.log.WithField(logging.FieldCacheKey, key).Debug("Returning cached consultation")
			return resp, nil
		}
		// Corrupt entry: recompute and overwrite below.
		a.log.WithField(logging.FieldCacheKey, key).Warn("Discarding undecodable cache entry")
	}

	resp, err := a.consult(ctx, req, cards)
	if err != nil {
		return models.ConsultationResponse{}, err
	}

	a.storeConsultation(ctx, key, resp)
	return resp, nil
}

// Advise answers a free-form credit question with the same cache-then-
// degrade discipline as Consult.
func (a *Advisor) Advise(ctx context.Context, question string, cards []models.CreditCard) (string, error) {
	if len(cards) == 0 {
		return "", ErrNoCardsAvailable
	}

	key := adviceKey(question)
	if cached, ok := a.cache.Get(key); ok {
		a.log.WithField(logging.FieldCacheKey, key).Debug("Returning cached advice")
		return cached, nil
	}

	backend := a.activeBackend()
	answer, err := backend.Advise(ctx, question, cards)
	if err != nil && backend != a.fallback {
		a.log.WithError(err).WithField(logging.FieldBackend, backend.Name()).Warn("AI advice failed, using deterministic fallback")
		answer, err = a.fallback.Advise(ctx, question, cards)
	}
	if err != nil {
		return "", err
	}

	if ctx.Err() == nil {
		if cacheErr := a.cache.Set(key, answer); cacheErr != nil {
			a.log.WithError(cacheErr).Warn("Failed to cache advice")
		}
	}
	return answer, nil
}

// consult runs the primary backend and degrades to the heuristic on any
// failure except ErrNoCardsAvailable, which is a caller error rather than a
// backend one.
func (a *Advisor) consult(ctx context.Context, req models.ConsultationRequest, cards []models.CreditCard) (models.ConsultationResponse, error) {
	backend := a.activeBackend()
	resp, err := backend.Consult(ctx, req, cards)
	if err == nil {
		return resp, nil
	}
	if errors.Is(err, ErrNoCardsAvailable) || backend == a.fallback {
		return models.ConsultationResponse{}, err
	}

	a.log.WithError(err).WithField(logging.FieldBackend, backend.Name()).Warn("AI consultation failed, using deterministic fallback")
	return a.fallback.Consult(ctx, req, cards)
}

// storeConsultation caches a fresh result. A consultation whose context is
// already done was abandoned by the caller; its result is discarded rather
// than cached, so a stale answer can never serve a later request.
func (a *Advisor) storeConsultation(ctx context.Context, key string, resp models.ConsultationResponse) {
	if ctx.Err() != nil {
		a.log.WithField(logging.FieldCacheKey, key).Debug("Consultation abandoned, skipping cache store")
		return
	}
	encoded, err := json.Marshal(resp)
	if err != nil {
		a.log.WithError(err).Warn("Failed to encode consultation for cache")
		return
	}
	if err := a.cache.Set(key, string(encoded)); err != nil {
		a.log.WithError(err).Warn("Failed to cache consultation")
	}
}

func (a *Advisor) activeBackend() RecommendationBackend {
	if a.primary != nil {
		return a.primary
	}
	return a.fallback
}
