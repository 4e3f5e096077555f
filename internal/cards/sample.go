package cards

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/hannguyen0712/credit-scorecerer/internal/models"
)

// SamplePortfolio returns the demo card portfolio used until the user
// provides a cards.yaml of their own.
func SamplePortfolio() []models.CreditCard {
	return []models.CreditCard{
		{
			ID:                "1",
			Name:              "Chase Freedom Unlimited",
			Issuer:            "Chase",
			CardNumber:        "**** 1234",
			CreditLimit:       decimal.NewFromInt(5000),
			CurrentBalance:    decimal.NewFromInt(1200),
			InterestRate:      18.99,
			MinimumPayment:    decimal.NewFromInt(25),
			DueDate:           "2024-01-15",
			LastPaymentDate:   "2023-12-15",
			LastPaymentAmount: decimal.NewFromInt(500),
			IsActive:          true,
			Rewards: models.Rewards{
				Type: models.RewardCashback,
				Rate: 1.5,
			},
		},
		{
			ID:                "2",
			Name:              "Capital One Venture",
			Issuer:            "Capital One",
			CardNumber:        "**** 5678",
			CreditLimit:       decimal.NewFromInt(8000),
			CurrentBalance:    decimal.NewFromInt(2400),
			InterestRate:      19.99,
			MinimumPayment:    decimal.NewFromInt(50),
			DueDate:           "2024-01-20",
			LastPaymentDate:   "2023-12-20",
			LastPaymentAmount: decimal.NewFromInt(300),
			IsActive:          true,
			Rewards: models.Rewards{
				Type: models.RewardMiles,
				Rate: 2,
			},
		},
		{
			ID:                "3",
			Name:              "American Express Gold",
			Issuer:            "American Express",
			CardNumber:        "**** 9012",
			CreditLimit:       decimal.NewFromInt(10000),
			CurrentBalance:    decimal.NewFromInt(3200),
			InterestRate:      20.99,
			MinimumPayment:    decimal.NewFromInt(80),
			DueDate:           "2024-01-25",
			LastPaymentDate:   "2023-12-25",
			LastPaymentAmount: decimal.NewFromInt(400),
			IsActive:          true,
			Rewards: models.Rewards{
				Type:       models.RewardPoints,
				Rate:       4,
				Categories: []string{"dining", "groceries"},
			},
		},
	}
}

// SampleHistory returns the demo payment history matching SamplePortfolio.
func SampleHistory() []models.PaymentRecord {
	return []models.PaymentRecord{
		{
			ID:          "1",
			CardID:      "1",
			Amount:      decimal.NewFromInt(500),
			Date:        "2023-12-15",
			Type:        models.PaymentTypePayment,
			Description: "Payment received",
		},
		{
			ID:          "2",
			CardID:      "1",
			Amount:      decimal.NewFromInt(150),
			Date:        "2023-12-10",
			Type:        models.PaymentTypePurchase,
			Description: "Grocery store purchase",
			Category:    "Food",
		},
		{
			ID:          "3",
			CardID:      "2",
			Amount:      decimal.NewFromInt(300),
			Date:        "2023-12-20",
			Type:        models.PaymentTypePayment,
			Description: "Payment received",
		},
		{
			ID:          "4",
			CardID:      "2",
			Amount:      decimal.NewFromInt(200),
			Date:        "2023-12-18",
			Type:        models.PaymentTypePurchase,
			Description: "Gas station",
			Category:    "Transportation",
		},
	}
}

// SampleScore returns the demo bureau score snapshot shown by the score
// command. There is no live bureau integration; this mirrors what the
// product ships.
func SampleScore() models.CreditScore {
	return models.CreditScore{
		Score:       720,
		Range:       models.ScoreRange{Min: 300, Max: 850},
		Category:    models.ScoreCategory(720),
		LastUpdated: time.Now().Format("2006-01-02"),
		Provider:    "Experian",
	}
}
