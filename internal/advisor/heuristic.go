package advisor

import (
	"context"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/hannguyen0712/credit-scorecerer/internal/logging"
	"github.com/hannguyen0712/credit-scorecerer/internal/models"
)

// HeuristicBackend is the deterministic RecommendationBackend. It guarantees
// a recommendation is always producible: no I/O, no randomness, pure
// arithmetic over the card snapshot. It serves both as the fallback when the
// AI backend fails and as the sole backend when no API key is configured.
type HeuristicBackend struct {
	log logging.Logger
}

// NewHeuristicBackend creates the deterministic backend.
func NewHeuristicBackend(logger logging.Logger) *HeuristicBackend {
	if logger == nil {
		logger = &logging.MockLogger{}
	}
	return &HeuristicBackend{log: logger}
}

// Name returns the backend name for logging.
func (h *HeuristicBackend) Name() string {
	return "heuristic"
}

// Consult picks the card with the lowest current utilization (ties broken by
// higher reward rate), classifies the post-purchase credit impact with the
// product-wide 10%/30% thresholds, and annotates every other card as an
// alternative.
func (h *HeuristicBackend) Consult(ctx context.Context, req models.ConsultationRequest, cards []models.CreditCard) (models.ConsultationResponse, error) {
	if len(cards) == 0 {
		return models.ConsultationResponse{}, ErrNoCardsAvailable
	}

	best := bestCandidate(cards)
	after := best.UtilizationAfter(req.PurchaseAmount)
	impact := models.ClassifyUtilization(after)

	// Estimated interest if the purchase is carried for a month:
	// amount * APR / 100 / 12.
	monthlyInterest := req.PurchaseAmount.
		Mul(decimal.NewFromFloat(best.InterestRate)).
		Div(decimal.NewFromInt(1200))

	reasoning := fmt.Sprintf(
		"Based on your current credit utilization and rewards structure, use your %s for this $%s %s purchase. "+
			"It earns %s%% %s rewards, and your utilization will be %s%% after this purchase. "+
			"Pay off the balance within the grace period to avoid interest charges of about $%s per month.",
		best.Name,
		req.PurchaseAmount.StringFixed(2),
		req.PurchaseCategory,
		formatRate(best.Rewards.Rate),
		best.Rewards.Type,
		models.FormatPercent(after),
		monthlyInterest.StringFixed(2))

	resp := models.ConsultationResponse{
		Recommendation: models.Recommendation{
			RecommendedCard:   best.Name,
			Reasoning:         reasoning,
			CreditImpact:      impact,
			ImpactExplanation: impactExplanation(impact),
		},
		Alternatives: buildAlternatives(cards, best),
		Tips: []string{
			fmt.Sprintf("Pay off this purchase by %s to avoid interest charges", best.DueDate),
			"Consider setting up automatic payments to avoid late fees",
			"Monitor your credit utilization to keep it below 30% for optimal credit score impact",
		},
	}

	h.log.WithFields(
		logging.Field{Key: logging.FieldBackend, Value: h.Name()},
		logging.Field{Key: logging.FieldCard, Value: best.Name},
		logging.Field{Key: "impact", Value: impact},
	).Debug("Deterministic recommendation computed")

	return resp, nil
}

// Advise answers free-form questions with keyword-routed canned guidance
// embedding the portfolio's average utilization.
func (h *HeuristicBackend) Advise(ctx context.Context, question string, cards []models.CreditCard) (string, error) {
	if len(cards) == 0 {
		return "", ErrNoCardsAvailable
	}

	total := decimal.Zero
	for _, c := range cards {
		total = total.Add(c.Utilization())
	}
	avg := total.Div(decimal.NewFromInt(int64(len(cards))))
	avgPercent := models.FormatPercent(avg)

	q := strings.ToLower(question)
	switch {
	case strings.Contains(q, "utilization") || strings.Contains(q, "credit score"):
		return fmt.Sprintf("Your current average credit utilization is %s%%. To improve your credit score, aim to keep utilization below 30%%. "+
			"Pay down your highest-balance cards first and avoid large purchases that would push you above that threshold.", avgPercent), nil
	case strings.Contains(q, "payment") || strings.Contains(q, "pay off"):
		return "Focus on paying off your highest interest rate cards first to minimize interest charges. " +
			"Set up automatic payments for at least the minimum amount to avoid late fees, which can hurt your credit score.", nil
	case strings.Contains(q, "reward") || strings.Contains(q, "cashback"):
		return "Use your highest reward rate card for purchases in categories where it offers the most value. " +
			"Rewards only pay off when you clear the balance in full each month; interest charges quickly exceed the reward value.", nil
	default:
		assessment := "is in a good range"
		if models.ClassifyUtilization(avg) == models.ImpactNegative {
			assessment = "could be improved"
		}
		return fmt.Sprintf("Keep your credit utilization below 30%%, pay off high-interest balances first, and make payments on time. "+
			"Your average utilization of %s%% %s.", avgPercent, assessment), nil
	}
}

// bestCandidate iterates the list keeping the card with the lowest current
// utilization; on a tie, the higher reward rate wins.
func bestCandidate(cards []models.CreditCard) models.CreditCard {
	best := cards[0]
	for _, c := range cards[1:] {
		cu, bu := c.Utilization(), best.Utilization()
		if cu.LessThan(bu) || (cu.Equal(bu) && c.Rewards.Rate > best.Rewards.Rate) {
			best = c
		}
	}
	return best
}

// buildAlternatives annotates every non-candidate card with pros and cons
// relative to the candidate. Con clauses are omitted when they do not apply.
func buildAlternatives(cards []models.CreditCard, best models.CreditCard) []models.Alternative {
	alts := []models.Alternative{}
	for _, c := range cards {
		if c.ID == best.ID {
			continue
		}
		alt := models.Alternative{
			CardID:   c.ID,
			CardName: c.Name,
			Pros: []string{
				fmt.Sprintf("%s%% %s rewards", formatRate(c.Rewards.Rate), c.Rewards.Type),
				fmt.Sprintf("Current utilization: %s%%", models.FormatPercent(c.Utilization())),
			},
			Cons: []string{},
		}
		if c.InterestRate > best.InterestRate {
			alt.Cons = append(alt.Cons, fmt.Sprintf("Higher interest rate (%s%%)", formatRate(c.InterestRate)))
		}
		if c.CurrentBalance.GreaterThan(best.CurrentBalance) {
			alt.Cons = append(alt.Cons, "Higher current balance")
		}
		alts = append(alts, alt)
	}
	return alts
}

func impactExplanation(impact models.CreditImpact) string {
	switch impact {
	case models.ImpactPositive:
		return "This purchase will help maintain low utilization, potentially improving your credit score"
	case models.ImpactNegative:
		return "This purchase will increase your utilization above 30%, which may negatively impact your credit score"
	default:
		return "This purchase will have minimal impact on your credit score"
	}
}
