package advisor

import "errors"

var (
	// ErrNoCardsAvailable is returned when a consultation is requested with
	// an empty card list. It is the only business error surfaced to callers:
	// without at least one card there is no "best card" to recommend.
	ErrNoCardsAvailable = errors.New("no credit cards available")

	// ErrMalformedResponse indicates the AI completion contained no
	// parseable JSON object. It never reaches the caller; the advisor
	// absorbs it by falling back to the deterministic heuristic.
	ErrMalformedResponse = errors.New("malformed AI response")

	// ErrBackendUnavailable indicates the AI call itself failed (network,
	// timeout, empty completion). Absorbed the same way as
	// ErrMalformedResponse.
	ErrBackendUnavailable = errors.New("AI backend unavailable")
)
