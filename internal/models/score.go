package models

import (
	"github.com/shopspring/decimal"
)

// ScoreRange is the scale a credit score is reported on.
type ScoreRange struct {
	Min int `yaml:"min" json:"min"`
	Max int `yaml:"max" json:"max"`
}

// CreditScore is a point-in-time score snapshot from a bureau.
type CreditScore struct {
	Score       int        `yaml:"score" json:"score"`
	Range       ScoreRange `yaml:"range" json:"range"`
	Category    string     `yaml:"category" json:"category"` // Excellent, Good, Fair, Poor, Very Poor
	LastUpdated string     `yaml:"last_updated" json:"lastUpdated"`
	Provider    string     `yaml:"provider" json:"provider"`
}

// ScoreCategory buckets a numeric score into the bureau's descriptive bands.
func ScoreCategory(score int) string {
	switch {
	case score >= 800:
		return "Excellent"
	case score >= 670:
		return "Good"
	case score >= 580:
		return "Fair"
	case score >= 500:
		return "Poor"
	default:
		return "Very Poor"
	}
}

// PaymentType enumerates ledger entry kinds in the payment history.
type PaymentType string

const (
	PaymentTypePayment  PaymentType = "payment"
	PaymentTypePurchase PaymentType = "purchase"
	PaymentTypeInterest PaymentType = "interest"
	PaymentTypeFee      PaymentType = "fee"
)

// PaymentRecord is one entry in a card's payment history.
type PaymentRecord struct {
	ID          string          `yaml:"id" json:"id"`
	CardID      string          `yaml:"card_id" json:"cardId"`
	Amount      decimal.Decimal `yaml:"amount" json:"amount"`
	Date        string          `yaml:"date" json:"date"`
	Type        PaymentType     `yaml:"type" json:"type"`
	Description string          `yaml:"description" json:"description"`
	Category    string          `yaml:"category,omitempty" json:"category,omitempty"`
}

// CardUtilization is the per-card utilization view shown by the insights
// layer, classified with the same thresholds the advisor uses.
type CardUtilization struct {
	CardID            string          `json:"cardId"`
	CardName          string          `json:"cardName"`
	Utilization       decimal.Decimal `json:"utilization"` // ratio, not percent
	RecommendedAction string          `json:"recommendedAction"`
	ImpactOnScore     CreditImpact    `json:"impactOnScore"`
}
