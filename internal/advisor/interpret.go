package advisor

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/hannguyen0712/credit-scorecerer/internal/models"
)

// Named defaults substituted for missing or mistyped fields in the AI output.
const (
	defaultCardName          = "Unknown"
	defaultAltCardName       = "Unknown Card"
	defaultReasoning         = "No reasoning provided"
	defaultImpactExplanation = "No impact explanation"
)

// interpretConsultation extracts the JSON object from a raw model completion
// and maps it into the fixed output schema. Interpretation is best-effort:
// partial or mistyped fields degrade to named defaults. Only the complete
// absence of parseable JSON is an error (ErrMalformedResponse), which the
// advisor absorbs by falling back to the heuristic.
func interpretConsultation(raw string) (models.ConsultationResponse, error) {
	blob, err := extractJSONObject(raw)
	if err != nil {
		return models.ConsultationResponse{}, err
	}

	var parsed map[string]interface{}
	if err := json.Unmarshal([]byte(blob), &parsed); err != nil {
		return models.ConsultationResponse{}, fmt.Errorf("%w: %v", ErrMalformedResponse, err)
	}

	resp := models.ConsultationResponse{
		Alternatives: []models.Alternative{},
		Tips:         stringsField(parsed, "tips"),
	}

	rec, _ := parsed["recommendation"].(map[string]interface{})
	resp.Recommendation = models.Recommendation{
		RecommendedCard:   stringField(rec, "recommendedCard", defaultCardName),
		Reasoning:         stringField(rec, "reasoning", defaultReasoning),
		CreditImpact:      impactField(rec, "creditImpact"),
		ImpactExplanation: stringField(rec, "impactExplanation", defaultImpactExplanation),
	}

	if alts, ok := parsed["alternatives"].([]interface{}); ok {
		for _, raw := range alts {
			alt, ok := raw.(map[string]interface{})
			if !ok {
				continue
			}
			resp.Alternatives = append(resp.Alternatives, models.Alternative{
				CardID:   stringField(alt, "cardId", ""),
				CardName: stringField(alt, "cardName", defaultAltCardName),
				Pros:     stringsField(alt, "pros"),
				Cons:     stringsField(alt, "cons"),
			})
		}
	}

	return resp, nil
}

// extractJSONObject locates the first top-level {...} span in the raw text.
// Models routinely wrap JSON in prose or markdown fences, so everything
// before the first brace and after the last one is discarded.
func extractJSONObject(raw string) (string, error) {
	start := strings.Index(raw, "{")
	end := strings.LastIndex(raw, "}")
	if start == -1 || end <= start {
		return "", fmt.Errorf("%w: no JSON object found", ErrMalformedResponse)
	}
	return raw[start : end+1], nil
}

// stringField reads a string value from a decoded JSON map, substituting the
// default when the key is missing, mistyped, or blank.
func stringField(m map[string]interface{}, key, def string) string {
	if m == nil {
		return def
	}
	if s, ok := m[key].(string); ok && strings.TrimSpace(s) != "" {
		return s
	}
	return def
}

// stringsField reads a string array, dropping non-string elements.
// Always returns a non-nil slice.
func stringsField(m map[string]interface{}, key string) []string {
	out := []string{}
	if m == nil {
		return out
	}
	items, ok := m[key].([]interface{})
	if !ok {
		return out
	}
	for _, item := range items {
		if s, ok := item.(string); ok {
			out = append(out, s)
		}
	}
	return out
}

// impactField reads the credit impact, normalizing anything outside the
// recognized set to neutral.
func impactField(m map[string]interface{}, key string) models.CreditImpact {
	s := stringField(m, key, string(models.ImpactNeutral))
	if !models.ValidImpact(s) {
		return models.ImpactNeutral
	}
	return models.CreditImpact(s)
}
