package advisor

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/hannguyen0712/credit-scorecerer/internal/models"
)

// SummarizeCards reduces a card portfolio to a compact, deterministic text
// summary suitable for prompting: one line per card with balance/limit,
// utilization to one decimal place, reward rate and type, and APR.
// Pure function of its input.
func SummarizeCards(cards []models.CreditCard) string {
	lines := make([]string, 0, len(cards))
	for _, c := range cards {
		lines = append(lines, fmt.Sprintf("%s: $%s/$%s (%s%%), %s%% %s, %s%% APR",
			c.Name,
			c.CurrentBalance.StringFixed(2),
			c.CreditLimit.StringFixed(2),
			models.FormatPercent(c.Utilization()),
			formatRate(c.Rewards.Rate),
			c.Rewards.Type,
			formatRate(c.InterestRate)))
	}
	return strings.Join(lines, "\n")
}

// summarizeUtilization is the terser per-card view used by the advice prompt.
func summarizeUtilization(cards []models.CreditCard) string {
	parts := make([]string, 0, len(cards))
	for _, c := range cards {
		parts = append(parts, fmt.Sprintf("%s: %s%% util", c.Name, models.FormatPercent(c.Utilization())))
	}
	return strings.Join(parts, ", ")
}

// formatRate renders a percentage rate without trailing zeros, matching how
// issuers publish them (1.5, 19.99).
func formatRate(rate float64) string {
	return strconv.FormatFloat(rate, 'f', -1, 64)
}
