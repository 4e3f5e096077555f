package advisor

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSummarizeCards(t *testing.T) {
	summary := SummarizeCards(testPortfolio())
	lines := strings.Split(summary, "\n")

	require.Len(t, lines, 3)
	assert.Equal(t, "Chase Freedom Unlimited: $1200.00/$5000.00 (24.0%), 1.5% cashback, 18.99% APR", lines[0])
	assert.Equal(t, "Capital One Venture: $2400.00/$8000.00 (30.0%), 2% miles, 19.99% APR", lines[1])
	assert.Equal(t, "American Express Gold: $3200.00/$10000.00 (32.0%), 4% points, 20.99% APR", lines[2])
}

func TestSummarizeCardsEmpty(t *testing.T) {
	assert.Equal(t, "", SummarizeCards(nil))
}

func TestSummarizeCardsStable(t *testing.T) {
	// Prompt text must be byte-stable for identical input, otherwise
	// identical consultations could produce different prompts.
	assert.Equal(t, SummarizeCards(testPortfolio()), SummarizeCards(testPortfolio()))
}

func TestBuildConsultationPrompt(t *testing.T) {
	req := consultationRequest("450")
	prompt := buildConsultationPrompt(req, SummarizeCards(testPortfolio()))

	assert.Contains(t, prompt, "Chase Freedom Unlimited")
	assert.Contains(t, prompt, "$450.00 Electronics")
	assert.Contains(t, prompt, `"recommendedCard"`)
	assert.Contains(t, prompt, `"creditImpact"`)
	assert.NotContains(t, prompt, "Preferred card:")

	req.PreferredCard = "Amex Gold"
	assert.Contains(t, buildConsultationPrompt(req, ""), "Preferred card: Amex Gold")
}

func TestBuildAdvicePrompt(t *testing.T) {
	prompt := buildAdvicePrompt("should I open a new card?", testPortfolio())

	assert.Contains(t, prompt, "should I open a new card?")
	assert.Contains(t, prompt, "Chase Freedom Unlimited: 24.0% util")
}
