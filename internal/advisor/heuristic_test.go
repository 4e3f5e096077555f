package advisor

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hannguyen0712/credit-scorecerer/internal/models"
)

func testPortfolio() []models.CreditCard {
	return []models.CreditCard{
		{
			ID:             "1",
			Name:           "Chase Freedom Unlimited",
			CreditLimit:    decimal.NewFromInt(5000),
			CurrentBalance: decimal.NewFromInt(1200),
			InterestRate:   18.99,
			DueDate:        "2024-01-15",
			Rewards:        models.Rewards{Type: models.RewardCashback, Rate: 1.5},
		},
		{
			ID:             "2",
			Name:           "Capital One Venture",
			CreditLimit:    decimal.NewFromInt(8000),
			CurrentBalance: decimal.NewFromInt(2400),
			InterestRate:   19.99,
			DueDate:        "2024-01-20",
			Rewards:        models.Rewards{Type: models.RewardMiles, Rate: 2},
		},
		{
			ID:             "3",
			Name:           "American Express Gold",
			CreditLimit:    decimal.NewFromInt(10000),
			CurrentBalance: decimal.NewFromInt(3200),
			InterestRate:   20.99,
			DueDate:        "2024-01-25",
			Rewards:        models.Rewards{Type: models.RewardPoints, Rate: 4},
		},
	}
}

func consultationRequest(amount string) models.ConsultationRequest {
	return models.ConsultationRequest{
		PurchaseAmount:   decimal.RequireFromString(amount),
		PurchaseCategory: "Electronics",
		Description:      "New laptop",
	}
}

func TestHeuristicConsultPicksLowestUtilization(t *testing.T) {
	backend := NewHeuristicBackend(nil)

	// Utilizations: 24%, 30%, 32%. The 24% card wins, and a $200 purchase
	// takes it to 28%, which is still neutral.
	resp, err := backend.Consult(context.Background(), consultationRequest("200"), testPortfolio())
	require.NoError(t, err)

	assert.Equal(t, "Chase Freedom Unlimited", resp.Recommendation.RecommendedCard)
	assert.Equal(t, models.ImpactNeutral, resp.Recommendation.CreditImpact)
	assert.Contains(t, resp.Recommendation.Reasoning, "28.0%")
	assert.NotEmpty(t, resp.Recommendation.ImpactExplanation)
}

func TestHeuristicConsultTieBreaksOnRewardRate(t *testing.T) {
	backend := NewHeuristicBackend(nil)
	cards := []models.CreditCard{
		{
			ID:             "1",
			Name:           "Low Reward",
			CreditLimit:    decimal.NewFromInt(5000),
			CurrentBalance: decimal.NewFromInt(1000),
			Rewards:        models.Rewards{Type: models.RewardCashback, Rate: 1},
		},
		{
			ID:             "2",
			Name:           "High Reward",
			CreditLimit:    decimal.NewFromInt(10000),
			CurrentBalance: decimal.NewFromInt(2000),
			Rewards:        models.Rewards{Type: models.RewardCashback, Rate: 2},
		},
	}

	resp, err := backend.Consult(context.Background(), consultationRequest("50"), cards)
	require.NoError(t, err)
	assert.Equal(t, "High Reward", resp.Recommendation.RecommendedCard)
}

func TestHeuristicConsultDeterministic(t *testing.T) {
	backend := NewHeuristicBackend(nil)
	req := consultationRequest("450")

	first, err := backend.Consult(context.Background(), req, testPortfolio())
	require.NoError(t, err)
	second, err := backend.Consult(context.Background(), req, testPortfolio())
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestHeuristicConsultImpactBoundaries(t *testing.T) {
	backend := NewHeuristicBackend(nil)
	card := models.CreditCard{
		ID:             "1",
		Name:           "Only Card",
		CreditLimit:    decimal.NewFromInt(10000),
		CurrentBalance: decimal.NewFromInt(500),
		Rewards:        models.Rewards{Type: models.RewardCashback, Rate: 1.5},
	}

	testCases := []struct {
		name     string
		amount   string // balance after purchase: 500 + amount, limit 10000
		expected models.CreditImpact
	}{
		{name: "Stays below ten percent", amount: "400", expected: models.ImpactPositive},
		{name: "Lands exactly on ten percent", amount: "500", expected: models.ImpactPositive},
		{name: "Crosses ten percent", amount: "600", expected: models.ImpactNeutral},
		{name: "Lands exactly on thirty percent", amount: "2500", expected: models.ImpactNeutral},
		{name: "Crosses thirty percent", amount: "2501", expected: models.ImpactNegative},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			resp, err := backend.Consult(context.Background(),
				consultationRequest(tc.amount), []models.CreditCard{card})
			require.NoError(t, err)
			assert.Equal(t, tc.expected, resp.Recommendation.CreditImpact)
		})
	}
}

func TestHeuristicConsultAlternatives(t *testing.T) {
	backend := NewHeuristicBackend(nil)

	resp, err := backend.Consult(context.Background(), consultationRequest("100"), testPortfolio())
	require.NoError(t, err)

	// Every card except the recommended one appears as an alternative.
	require.Len(t, resp.Alternatives, 2)
	for _, alt := range resp.Alternatives {
		assert.NotEqual(t, resp.Recommendation.RecommendedCard, alt.CardName)
		assert.NotEmpty(t, alt.Pros)
	}

	// Both alternatives carry higher APR and higher balance than the
	// recommended Chase card, so each gets both cons.
	for _, alt := range resp.Alternatives {
		assert.Len(t, alt.Cons, 2, "alternative %s", alt.CardName)
	}
}

func TestHeuristicConsultTips(t *testing.T) {
	backend := NewHeuristicBackend(nil)

	resp, err := backend.Consult(context.Background(), consultationRequest("100"), testPortfolio())
	require.NoError(t, err)

	require.Len(t, resp.Tips, 3)
	assert.Contains(t, resp.Tips[0], "2024-01-15") // recommended card's due date
}

func TestHeuristicConsultNoCards(t *testing.T) {
	backend := NewHeuristicBackend(nil)

	_, err := backend.Consult(context.Background(), consultationRequest("100"), nil)
	assert.ErrorIs(t, err, ErrNoCardsAvailable)
}

func TestHeuristicAdvise(t *testing.T) {
	backend := NewHeuristicBackend(nil)
	cards := testPortfolio()

	testCases := []struct {
		name     string
		question string
		contains string
	}{
		{name: "Utilization question", question: "How is my credit utilization?", contains: "below 30%"},
		{name: "Credit score question", question: "What about my credit score?", contains: "utilization"},
		{name: "Payment question", question: "Which card should I pay off first?", contains: "highest interest rate"},
		{name: "Rewards question", question: "How do I maximize cashback?", contains: "reward"},
		{name: "Anything else", question: "Tell me something useful", contains: "average utilization"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			answer, err := backend.Advise(context.Background(), tc.question, cards)
			require.NoError(t, err)
			assert.Contains(t, answer, tc.contains)
		})
	}
}

func TestHeuristicAdviseNoCards(t *testing.T) {
	backend := NewHeuristicBackend(nil)

	_, err := backend.Advise(context.Background(), "anything", nil)
	assert.ErrorIs(t, err, ErrNoCardsAvailable)
}
