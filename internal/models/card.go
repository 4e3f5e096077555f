// Package models defines the domain types shared by the advisor engine, the
// card store, and the CLI: credit cards, consultation requests and responses,
// utilization classification, and the credit score snapshot.
package models

import (
	"github.com/shopspring/decimal"
)

// RewardType enumerates the reward programs a card can carry.
type RewardType string

const (
	RewardCashback RewardType = "cashback"
	RewardPoints   RewardType = "points"
	RewardMiles    RewardType = "miles"
)

// Rewards describes a card's reward program.
type Rewards struct {
	Type RewardType `yaml:"type" json:"type"`
	// Rate is a percentage (1.5 means 1.5% back) or point multiplier.
	Rate float64 `yaml:"rate" json:"rate"`
	// Categories optionally restricts the boosted rate to specific
	// purchase categories.
	Categories []string `yaml:"categories,omitempty" json:"categories,omitempty"`
}

// CreditCard is one card in the user's portfolio. Monetary fields use
// decimals so utilization thresholds compare exactly; rates stay plain
// percentages as issuers publish them.
type CreditCard struct {
	ID                string          `yaml:"id" json:"id"`
	Name              string          `yaml:"name" json:"name"`
	Issuer            string          `yaml:"issuer" json:"issuer"`
	CardNumber        string          `yaml:"card_number" json:"cardNumber"` // masked, e.g. "**** 1234"
	CreditLimit       decimal.Decimal `yaml:"credit_limit" json:"creditLimit"`
	CurrentBalance    decimal.Decimal `yaml:"current_balance" json:"currentBalance"`
	InterestRate      float64         `yaml:"interest_rate" json:"interestRate"` // APR, percent
	MinimumPayment    decimal.Decimal `yaml:"minimum_payment" json:"minimumPayment"`
	DueDate           string          `yaml:"due_date" json:"dueDate"`
	LastPaymentDate   string          `yaml:"last_payment_date,omitempty" json:"lastPaymentDate,omitempty"`
	LastPaymentAmount decimal.Decimal `yaml:"last_payment_amount,omitempty" json:"lastPaymentAmount,omitempty"`
	IsActive          bool            `yaml:"is_active" json:"isActive"`
	Rewards           Rewards         `yaml:"rewards" json:"rewards"`
}

// AvailableCredit derives the spendable headroom: limit minus balance.
// Well-formed data never goes negative, but the floor keeps a corrupt
// store entry from producing a negative number in the UI.
func (c CreditCard) AvailableCredit() decimal.Decimal {
	avail := c.CreditLimit.Sub(c.CurrentBalance)
	if avail.IsNegative() {
		return decimal.Zero
	}
	return avail
}

// Utilization returns currentBalance / creditLimit as a ratio.
// A zero limit yields zero rather than dividing by zero.
func (c CreditCard) Utilization() decimal.Decimal {
	if c.CreditLimit.IsZero() {
		return decimal.Zero
	}
	return c.CurrentBalance.Div(c.CreditLimit)
}

// UtilizationAfter returns the utilization ratio if the given amount were
// charged to this card.
func (c CreditCard) UtilizationAfter(amount decimal.Decimal) decimal.Decimal {
	if c.CreditLimit.IsZero() {
		return decimal.Zero
	}
	return c.CurrentBalance.Add(amount).Div(c.CreditLimit)
}
