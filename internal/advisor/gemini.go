package advisor

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"

	"github.com/hannguyen0712/credit-scorecerer/internal/logging"
	"github.com/hannguyen0712/credit-scorecerer/internal/models"
)

// GeminiBackend implements RecommendationBackend against the Google Gemini
// API. Every call runs under a timeout; any failure is reported as
// ErrBackendUnavailable (or ErrMalformedResponse after a completion arrives)
// so the advisor can degrade to the heuristic.
type GeminiBackend struct {
	client  *genai.Client
	model   *genai.GenerativeModel
	timeout time.Duration
	log     logging.Logger
}

// GeminiOptions carries the tunables for the Gemini backend.
type GeminiOptions struct {
	APIKey          string
	Model           string
	Timeout         time.Duration
	MaxOutputTokens int
	Temperature     float64
}

// NewGeminiBackend creates a Gemini-backed recommendation backend.
// The generation config bounds output length and keeps the temperature low
// for consistent, fast answers.
func NewGeminiBackend(ctx context.Context, opts GeminiOptions, logger logging.Logger) (*GeminiBackend, error) {
	if strings.TrimSpace(opts.APIKey) == "" {
		return nil, fmt.Errorf("gemini backend requires an API key")
	}
	if logger == nil {
		logger = &logging.MockLogger{}
	}

	client, err := genai.NewClient(ctx, option.WithAPIKey(opts.APIKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}

	model := client.GenerativeModel(opts.Model)
	model.SetMaxOutputTokens(int32(opts.MaxOutputTokens))
	model.SetTemperature(float32(opts.Temperature))
	model.SetTopP(0.8)
	model.SetTopK(40)

	return &GeminiBackend{
		client:  client,
		model:   model,
		timeout: opts.Timeout,
		log:     logger,
	}, nil
}

// Name returns the backend name for logging.
func (g *GeminiBackend) Name() string {
	return "gemini"
}

// Consult sends the consultation prompt and interprets the completion.
func (g *GeminiBackend) Consult(ctx context.Context, req models.ConsultationRequest, cards []models.CreditCard) (models.ConsultationResponse, error) {
	if len(cards) == 0 {
		return models.ConsultationResponse{}, ErrNoCardsAvailable
	}

	prompt := buildConsultationPrompt(req, SummarizeCards(cards))
	text, err := g.generate(ctx, prompt)
	if err != nil {
		return models.ConsultationResponse{}, err
	}
	return interpretConsultation(text)
}

// Advise sends the compact advice prompt and returns the completion verbatim.
func (g *GeminiBackend) Advise(ctx context.Context, question string, cards []models.CreditCard) (string, error) {
	text, err := g.generate(ctx, buildAdvicePrompt(question, cards))
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(text), nil
}

// generate performs one completion call under the configured timeout and
// harvests the text parts of the first candidate.
func (g *GeminiBackend) generate(ctx context.Context, prompt string) (string, error) {
	callCtx, cancel := context.WithTimeout(ctx, g.timeout)
	defer cancel()

	start := time.Now()
	resp, err := g.model.GenerateContent(callCtx, genai.Text(prompt))
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrBackendUnavailable, err)
	}

	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil || len(resp.Candidates[0].Content.Parts) == 0 {
		return "", fmt.Errorf("%w: empty completion", ErrBackendUnavailable)
	}

	var b strings.Builder
	for _, part := range resp.Candidates[0].Content.Parts {
		if t, ok := part.(genai.Text); ok {
			b.WriteString(string(t))
		}
	}

	g.log.WithFields(
		logging.Field{Key: logging.FieldBackend, Value: g.Name()},
		logging.Field{Key: logging.FieldDuration, Value: time.Since(start).Milliseconds()},
	).Debug("Gemini completion received")

	return b.String(), nil
}

// Close releases the underlying API client.
func (g *GeminiBackend) Close() error {
	return g.client.Close()
}
