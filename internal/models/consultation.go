package models

import (
	"github.com/shopspring/decimal"
)

// CreditImpact is the three-way qualitative classification of a purchase's
// expected effect on utilization-driven credit scoring.
type CreditImpact string

const (
	ImpactPositive CreditImpact = "positive"
	ImpactNeutral  CreditImpact = "neutral"
	ImpactNegative CreditImpact = "negative"
)

// Utilization thresholds used consistently across the whole product: the
// advisor's impact classification, the insights coloring, and the prompt all
// share these. Comparisons are strict, so exactly 30% is still neutral.
var (
	utilizationWarn = decimal.NewFromFloat(0.10)
	utilizationHigh = decimal.NewFromFloat(0.30)
)

// ClassifyUtilization maps a utilization ratio to its credit impact:
// negative above 30%, neutral above 10%, positive otherwise.
func ClassifyUtilization(ratio decimal.Decimal) CreditImpact {
	switch {
	case ratio.GreaterThan(utilizationHigh):
		return ImpactNegative
	case ratio.GreaterThan(utilizationWarn):
		return ImpactNeutral
	default:
		return ImpactPositive
	}
}

// ValidImpact reports whether s is one of the three recognized impact values.
func ValidImpact(s string) bool {
	switch CreditImpact(s) {
	case ImpactPositive, ImpactNeutral, ImpactNegative:
		return true
	}
	return false
}

// PurchaseCategories is the suggested category set offered by the CLI.
// Free-text categories are accepted too; the list is advisory, not enforced.
var PurchaseCategories = []string{
	"Groceries",
	"Dining",
	"Gas",
	"Travel",
	"Shopping",
	"Entertainment",
	"Bills & Utilities",
	"Electronics",
	"Other",
}

// ConsultationRequest is one "which card should I use" question.
// Constructed fresh per consultation and never persisted.
type ConsultationRequest struct {
	PurchaseAmount   decimal.Decimal `json:"purchaseAmount"`
	PurchaseCategory string          `json:"purchaseCategory"`
	Description      string          `json:"description"`
	PreferredCard    string          `json:"preferredCard,omitempty"`
}

// Recommendation is the headline answer of a consultation.
type Recommendation struct {
	RecommendedCard   string       `json:"recommendedCard"`
	Reasoning         string       `json:"reasoning"`
	CreditImpact      CreditImpact `json:"creditImpact"`
	ImpactExplanation string       `json:"impactExplanation"`
}

// Alternative annotates a non-recommended card with its trade-offs.
type Alternative struct {
	CardID   string   `json:"cardId"`
	CardName string   `json:"cardName"`
	Pros     []string `json:"pros"`
	Cons     []string `json:"cons"`
}

// ConsultationResponse is the complete, immutable result of a consultation.
// The JSON field names are part of the AI contract: the prompt mandates this
// exact shape and the interpreter reads it back.
type ConsultationResponse struct {
	Recommendation Recommendation `json:"recommendation"`
	Alternatives   []Alternative  `json:"alternatives"`
	Tips           []string       `json:"tips"`
}
