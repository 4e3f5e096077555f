package advisor

import (
	"context"

	"github.com/hannguyen0712/credit-scorecerer/internal/models"
)

// RecommendationBackend produces purchase recommendations and free-form
// credit advice. There are two implementations: the Gemini-backed one and the
// deterministic heuristic. The advisor selects them once at construction;
// call sites never branch on which backend is active.
type RecommendationBackend interface {
	// Consult answers one "which card should I use for this purchase"
	// question against the given card snapshot.
	Consult(ctx context.Context, req models.ConsultationRequest, cards []models.CreditCard) (models.ConsultationResponse, error)

	// Advise answers a free-form credit question in one or two sentences.
	Advise(ctx context.Context, question string, cards []models.CreditCard) (string, error)

	// Name returns the backend name for logging and debugging purposes.
	Name() string
}
