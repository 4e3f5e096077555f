package advisor

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hannguyen0712/credit-scorecerer/internal/models"
)

const wellFormedResponse = `{
  "recommendation": {
    "recommendedCard": "Chase Freedom Unlimited",
    "reasoning": "Lowest utilization and solid flat-rate rewards.",
    "creditImpact": "neutral",
    "impactExplanation": "Utilization stays under 30%."
  },
  "alternatives": [
    {"cardId": "2", "cardName": "Capital One Venture", "pros": ["2% miles"], "cons": ["Higher APR"]}
  ],
  "tips": ["Pay before the due date", "Keep utilization under 30%"]
}`

func TestInterpretConsultationWellFormed(t *testing.T) {
	resp, err := interpretConsultation(wellFormedResponse)
	require.NoError(t, err)

	assert.Equal(t, "Chase Freedom Unlimited", resp.Recommendation.RecommendedCard)
	assert.Equal(t, models.ImpactNeutral, resp.Recommendation.CreditImpact)
	require.Len(t, resp.Alternatives, 1)
	assert.Equal(t, "2", resp.Alternatives[0].CardID)
	assert.Equal(t, []string{"2% miles"}, resp.Alternatives[0].Pros)
	assert.Len(t, resp.Tips, 2)
}

func TestInterpretConsultationProseWrapped(t *testing.T) {
	// Models routinely wrap JSON in prose and markdown fences.
	wrapped := "Sure! Here is my recommendation:\n```json\n" + wellFormedResponse + "\n```\nHope that helps."

	resp, err := interpretConsultation(wrapped)
	require.NoError(t, err)
	assert.Equal(t, "Chase Freedom Unlimited", resp.Recommendation.RecommendedCard)
}

func TestInterpretConsultationRoundTrip(t *testing.T) {
	// Interpreting the engine's own serialized output is the identity.
	resp, err := interpretConsultation(wellFormedResponse)
	require.NoError(t, err)

	encoded, err := json.Marshal(resp)
	require.NoError(t, err)

	again, err := interpretConsultation(string(encoded))
	require.NoError(t, err)
	assert.Equal(t, resp, again)
}

func TestInterpretConsultationDefaults(t *testing.T) {
	testCases := []struct {
		name string
		raw  string
	}{
		{name: "Empty object", raw: `{}`},
		{name: "Missing recommendation", raw: `{"tips": []}`},
		{name: "Mistyped recommendation", raw: `{"recommendation": "not an object"}`},
		{name: "Mistyped fields", raw: `{"recommendation": {"recommendedCard": 42, "reasoning": null}}`},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			resp, err := interpretConsultation(tc.raw)
			require.NoError(t, err)

			assert.Equal(t, "Unknown", resp.Recommendation.RecommendedCard)
			assert.Equal(t, "No reasoning provided", resp.Recommendation.Reasoning)
			assert.Equal(t, models.ImpactNeutral, resp.Recommendation.CreditImpact)
			assert.Equal(t, "No impact explanation", resp.Recommendation.ImpactExplanation)
			assert.NotNil(t, resp.Alternatives)
			assert.NotNil(t, resp.Tips)
		})
	}
}

func TestInterpretConsultationPartialFields(t *testing.T) {
	raw := `{"recommendation": {"recommendedCard": "Amex Gold", "creditImpact": "wildly positive"}}`

	resp, err := interpretConsultation(raw)
	require.NoError(t, err)

	// Present fields survive, missing ones default, unrecognized impact
	// normalizes to neutral.
	assert.Equal(t, "Amex Gold", resp.Recommendation.RecommendedCard)
	assert.Equal(t, "No reasoning provided", resp.Recommendation.Reasoning)
	assert.Equal(t, models.ImpactNeutral, resp.Recommendation.CreditImpact)
}

func TestInterpretConsultationAlternatives(t *testing.T) {
	raw := `{
	  "recommendation": {"recommendedCard": "A", "reasoning": "r", "creditImpact": "positive", "impactExplanation": "e"},
	  "alternatives": [
	    {"cardName": "Complete", "pros": ["p1", 7, "p2"], "cons": "not a list"},
	    "not an object",
	    {}
	  ]
	}`

	resp, err := interpretConsultation(raw)
	require.NoError(t, err)

	// Non-object elements are dropped, non-string array members skipped,
	// missing names default.
	require.Len(t, resp.Alternatives, 2)
	assert.Equal(t, "Complete", resp.Alternatives[0].CardName)
	assert.Equal(t, []string{"p1", "p2"}, resp.Alternatives[0].Pros)
	assert.Empty(t, resp.Alternatives[0].Cons)
	assert.Equal(t, "Unknown Card", resp.Alternatives[1].CardName)
}

func TestInterpretConsultationMalformed(t *testing.T) {
	testCases := []struct {
		name string
		raw  string
	}{
		{name: "Empty string", raw: ""},
		{name: "No JSON at all", raw: "I cannot answer that."},
		{name: "Only a closing brace", raw: "}"},
		{name: "Unbalanced braces", raw: "{\"recommendation\": "},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := interpretConsultation(tc.raw)
			assert.ErrorIs(t, err, ErrMalformedResponse)
		})
	}
}
