package advisor

import (
	"fmt"
	"strings"

	"github.com/hannguyen0712/credit-scorecerer/internal/models"
)

// consultationKey fingerprints the financially material inputs of a
// consultation: purchase amount, category, and per-card id/balance/limit.
// The key changes whenever any of those change, so a payment or a different
// amount always misses the cache.
//
// Description and preferred card are deliberately excluded: two differently
// worded requests for the same amount, category, and card state hit the same
// entry. Including a description hash here is a one-line change if that ever
// proves too stale.
func consultationKey(req models.ConsultationRequest, cards []models.CreditCard) string {
	parts := make([]string, 0, len(cards))
	for _, c := range cards {
		parts = append(parts, fmt.Sprintf("%s_%s_%s", c.ID, c.CurrentBalance.String(), c.CreditLimit.String()))
	}
	return fmt.Sprintf("purchase_%s_%s_%s",
		req.PurchaseAmount.String(), req.PurchaseCategory, strings.Join(parts, "|"))
}

// adviceKey normalizes a free-form question to lowercase alphanumerics so
// trivially rephrased questions share an entry.
func adviceKey(question string) string {
	var b strings.Builder
	for _, r := range strings.ToLower(question) {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') {
			b.WriteRune(r)
		}
	}
	return "advice_" + b.String()
}
