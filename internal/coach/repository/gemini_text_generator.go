package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"frugal-friend/internal/coach/config"
	"frugal-friend/pkg/logger"
	"frugal-friend/pkg/ratelimit"

	"golang.org/x/time/rate"
	"google.golang.org/genai"
)

// ErrGenerationDisabled is returned by the generator used when no AI provider is configured.
var ErrGenerationDisabled = errors.New("text generation is disabled")

// geminiTextGenerator is an implementation of TextGenerator that uses the Google Gemini API.
type geminiTextGenerator struct {
	cfg            *config.Config
	logger         *logger.Logger
	tokenLimiter   *ratelimit.TokenLimiter
	requestLimiter *rate.Limiter
	genAiClient    *genai.Client
}

// NewGeminiTextGenerator creates a new instance of geminiTextGenerator.
func NewGeminiTextGenerator(cfg *config.Config, log *logger.Logger, genAiClient *genai.Client) (TextGenerator, error) {
	if cfg.Gemini.MaxRequestPerMinute <= 0 {
		return nil, fmt.Errorf("gemini max_request_per_minute must be positive")
	}
	secondsPerRequest := time.Minute / time.Duration(cfg.Gemini.MaxRequestPerMinute)

	return &geminiTextGenerator{
		cfg:            cfg,
		logger:         log,
		requestLimiter: rate.NewLimiter(rate.Every(secondsPerRequest), 1),
		tokenLimiter:   ratelimit.NewTokenLimiter(cfg.Gemini.MaxTokenPerMinute),
		genAiClient:    genAiClient,
	}, nil
}

// GenerateText sends prompt to Gemini and returns the text of the first candidate.
func (r *geminiTextGenerator) GenerateText(ctx context.Context, prompt string) (string, error) {
	contents := []*genai.Content{
		genai.NewContentFromText(prompt, "user"),
	}

	if r.cfg.Gemini.MaxTokenPerMinute > 0 {
		tokenResp, err := r.genAiClient.Models.CountTokens(ctx, r.cfg.Gemini.Model, contents, nil)
		if err != nil {
			return "", fmt.Errorf("failed to count tokens: %w", err)
		}
		r.logger.DebugContext(ctx, "Gemini token count",
			logger.IntField("total_tokens", int(tokenResp.TotalTokens)),
			logger.IntField("remaining", r.tokenLimiter.GetRemaining()),
		)
		if err := r.tokenLimiter.Wait(ctx, int(tokenResp.TotalTokens)); err != nil {
			return "", fmt.Errorf("failed to wait for token limit: %w", err)
		}
	}

	if err := r.requestLimiter.Wait(ctx); err != nil {
		return "", fmt.Errorf("failed to wait for request limit: %w", err)
	}

	var genCfg *genai.GenerateContentConfig
	if r.cfg.Gemini.Temperature > 0 {
		genCfg = &genai.GenerateContentConfig{Temperature: genai.Ptr(r.cfg.Gemini.Temperature)}
	}

	resp, err := r.genAiClient.Models.GenerateContent(ctx, r.cfg.Gemini.Model, contents, genCfg)
	if err != nil {
		r.logger.ErrorContext(ctx, "Failed to generate content", logger.ErrorField(err))
		return "", fmt.Errorf("failed to generate content: %w", err)
	}

	text := extractText(resp)
	if text == "" {
		return "", fmt.Errorf("invalid response from Gemini API: no content found")
	}
	return text, nil
}

func extractText(resp *genai.GenerateContentResponse) string {
	if resp == nil || len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return ""
	}
	var b strings.Builder
	for _, part := range resp.Candidates[0].Content.Parts {
		if part != nil && part.Text != "" {
			b.WriteString(part.Text)
		}
	}
	return strings.TrimSpace(b.String())
}

// disabledTextGenerator always fails, so every caller uses its fallback text.
type disabledTextGenerator struct{}

// NewDisabledTextGenerator returns a TextGenerator that never produces text.
func NewDisabledTextGenerator() TextGenerator {
	return disabledTextGenerator{}
}

func (disabledTextGenerator) GenerateText(context.Context, string) (string, error) {
	return "", ErrGenerationDisabled
}
