package repository

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"frugal-friend/internal/coach/config"
	"frugal-friend/pkg/logger"
	"frugal-friend/pkg/ratelimit"

	"golang.org/x/time/rate"
)

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatRequest struct {
	Model       string        `json:"model"`
	Messages    []chatMessage `json:"messages"`
	Temperature float32       `json:"temperature,omitempty"`
}

type chatResponse struct {
	Choices []struct {
		Message chatMessage `json:"message"`
	} `json:"choices"`
	Usage struct {
		TotalTokens int `json:"total_tokens"`
	} `json:"usage"`
}

// openAITextGenerator calls an OpenAI compatible chat completions endpoint.
type openAITextGenerator struct {
	client         *http.Client
	cfg            config.OpenAI
	temperature    float32
	logger         *logger.Logger
	tokenLimiter   *ratelimit.TokenLimiter
	requestLimiter *rate.Limiter
}

// NewOpenAITextGenerator creates a TextGenerator for cfg.OpenAI. Requests are
// bounded by the caller's context; client only caps a stuck connection.
func NewOpenAITextGenerator(cfg *config.Config, log *logger.Logger, client *http.Client) (TextGenerator, error) {
	if cfg.OpenAI.MaxRequestPerMinute <= 0 {
		return nil, fmt.Errorf("openai max_request_per_minute must be positive")
	}
	if cfg.OpenAI.Model == "" {
		return nil, fmt.Errorf("openai model is required")
	}
	if client == nil {
		client = &http.Client{Timeout: 90 * time.Second}
	}
	secondsPerRequest := time.Minute / time.Duration(cfg.OpenAI.MaxRequestPerMinute)

	return &openAITextGenerator{
		client:         client,
		cfg:            cfg.OpenAI,
		temperature:    cfg.Gemini.Temperature,
		logger:         log,
		requestLimiter: rate.NewLimiter(rate.Every(secondsPerRequest), 1),
		tokenLimiter:   ratelimit.NewTokenLimiter(cfg.OpenAI.MaxTokenPerMinute),
	}, nil
}

// GenerateText sends prompt as a single user message and returns the first choice.
func (r *openAITextGenerator) GenerateText(ctx context.Context, prompt string) (string, error) {
	if err := r.requestLimiter.Wait(ctx); err != nil {
		return "", fmt.Errorf("failed to wait for request limit: %w", err)
	}

	payload, err := json.Marshal(chatRequest{
		Model:       r.cfg.Model,
		Messages:    []chatMessage{{Role: "user", Content: prompt}},
		Temperature: r.temperature,
	})
	if err != nil {
		return "", fmt.Errorf("failed to marshal payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, r.cfg.BaseURL, bytes.NewReader(payload))
	if err != nil {
		return "", fmt.Errorf("failed to create new http request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if r.cfg.APIKey != "" {
		req.Header.Set("Authorization", "Bearer "+r.cfg.APIKey)
	}

	r.logger.DebugContext(ctx, "Sending request to chat completions API", logger.StringField("url", r.cfg.BaseURL), logger.StringField("model", r.cfg.Model))

	resp, err := r.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("failed to send request to chat completions API: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 1024))
		r.logger.ErrorContext(ctx, "Received non-OK response from chat completions API", logger.IntField("status_code", resp.StatusCode))
		return "", fmt.Errorf("received non-OK response from chat completions API: %d - %s", resp.StatusCode, strings.TrimSpace(string(body)))
	}

	var out chatResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return "", fmt.Errorf("failed to decode response body: %w", err)
	}

	// Usage is only known after the call, so it is charged against the next request.
	if err := r.tokenLimiter.Wait(ctx, out.Usage.TotalTokens); err != nil {
		return "", fmt.Errorf("failed to wait for token limit: %w", err)
	}

	if len(out.Choices) == 0 {
		return "", fmt.Errorf("invalid response from chat completions API: no choices")
	}
	text := strings.TrimSpace(out.Choices[0].Message.Content)
	if text == "" {
		return "", fmt.Errorf("invalid response from chat completions API: no content found")
	}
	return text, nil
}
