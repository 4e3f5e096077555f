package advisor

import (
	"fmt"
	"strings"

	"github.com/hannguyen0712/credit-scorecerer/internal/models"
)

// consultationSchema is the response shape the prompt mandates. The field
// names here must match what the interpreter reads back; any drift between
// the two is a defect the interpreter's defaults paper over, not accept.
const consultationSchema = `{
  "recommendation": {
    "recommendedCard": "card name",
    "reasoning": "brief reasoning with concrete numbers",
    "creditImpact": "positive|neutral|negative",
    "impactExplanation": "brief impact"
  },
  "alternatives": [{"cardId": "id", "cardName": "name", "pros": ["pro"], "cons": ["con"]}],
  "tips": ["tip1", "tip2"]
}`

// buildConsultationPrompt combines the card summary, the purchase request and
// the fixed instruction template into a single prompt. Reasoning is capped at
// a single paragraph to bound response latency and cost.
func buildConsultationPrompt(req models.ConsultationRequest, cardSummary string) string {
	var b strings.Builder

	b.WriteString("You are a direct, practical credit card advisor.\n\n")
	b.WriteString("User's credit cards:\n")
	b.WriteString(cardSummary)
	fmt.Fprintf(&b, "\n\nPurchase: $%s %s - %s\n",
		req.PurchaseAmount.StringFixed(2), req.PurchaseCategory, req.Description)
	if req.PreferredCard != "" {
		fmt.Fprintf(&b, "Preferred card: %s\n", req.PreferredCard)
	}
	b.WriteString("\nRespond with JSON only. Keep reasoning to a single short paragraph with specific numbers (utilization after purchase, reward value, monthly interest if carried).\n")
	b.WriteString(consultationSchema)

	return b.String()
}

// buildAdvicePrompt builds the compact prompt for free-form credit questions.
func buildAdvicePrompt(question string, cards []models.CreditCard) string {
	return fmt.Sprintf(
		"You are a financial advisor. User's cards: %s. Question: %s. Give concise, actionable advice in 1-2 sentences.",
		summarizeUtilization(cards), question)
}
