// Package insights computes the presentational analytics the product shows
// around the advisor: per-card utilization with recommended actions, overall
// utilization, and spending totals per category. All of it is plain
// arithmetic over the card snapshot and payment history, classified with the
// same 10%/30% thresholds the advisor uses.
package insights

import (
	"sort"

	"github.com/shopspring/decimal"

	"github.com/hannguyen0712/credit-scorecerer/internal/models"
)

// AnalyzeUtilization builds the per-card utilization view.
func AnalyzeUtilization(cards []models.CreditCard) []models.CardUtilization {
	out := make([]models.CardUtilization, 0, len(cards))
	for _, c := range cards {
		util := c.Utilization()
		impact := models.ClassifyUtilization(util)
		out = append(out, models.CardUtilization{
			CardID:            c.ID,
			CardName:          c.Name,
			Utilization:       util,
			RecommendedAction: utilizationAction(impact),
			ImpactOnScore:     impact,
		})
	}
	return out
}

// OverallUtilization is total balance over total limit across the portfolio.
func OverallUtilization(cards []models.CreditCard) decimal.Decimal {
	totalBalance := decimal.Zero
	totalLimit := decimal.Zero
	for _, c := range cards {
		totalBalance = totalBalance.Add(c.CurrentBalance)
		totalLimit = totalLimit.Add(c.CreditLimit)
	}
	if totalLimit.IsZero() {
		return decimal.Zero
	}
	return totalBalance.Div(totalLimit)
}

// CategorySpend is one category's purchase total.
type CategorySpend struct {
	Category string
	Spent    decimal.Decimal
}

// SpendingByCategory totals purchase records per category, largest first.
// Payments, interest, and fees are not spending and are skipped.
func SpendingByCategory(history []models.PaymentRecord) []CategorySpend {
	totals := map[string]decimal.Decimal{}
	for _, rec := range history {
		if rec.Type != models.PaymentTypePurchase {
			continue
		}
		category := rec.Category
		if category == "" {
			category = "Other"
		}
		totals[category] = totals[category].Add(rec.Amount)
	}

	out := make([]CategorySpend, 0, len(totals))
	for category, spent := range totals {
		out = append(out, CategorySpend{Category: category, Spent: spent})
	}
	sort.Slice(out, func(i, j int) bool {
		if !out[i].Spent.Equal(out[j].Spent) {
			return out[i].Spent.GreaterThan(out[j].Spent)
		}
		return out[i].Category < out[j].Category
	})
	return out
}

// TotalSpent sums all purchase records.
func TotalSpent(history []models.PaymentRecord) decimal.Decimal {
	total := decimal.Zero
	for _, rec := range history {
		if rec.Type == models.PaymentTypePurchase {
			total = total.Add(rec.Amount)
		}
	}
	return total
}

func utilizationAction(impact models.CreditImpact) string {
	switch impact {
	case models.ImpactNegative:
		return "Consider paying down balance to improve credit score"
	case models.ImpactNeutral:
		return "Good utilization rate, maintain current level"
	default:
		return "Excellent utilization rate"
	}
}
