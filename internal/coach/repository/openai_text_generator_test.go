package repository

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"frugal-friend/internal/coach/config"
	"frugal-friend/pkg/logger"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newOpenAIConfig(url string) *config.Config {
	return &config.Config{OpenAI: config.OpenAI{
		APIKey:              "secret",
		BaseURL:             url,
		Model:               "test-model",
		MaxRequestPerMinute: 600,
	}}
}

func TestOpenAITextGenerator_GenerateText(t *testing.T) {
	var got chatRequest
	var auth string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		auth = r.Header.Get("Authorization")
		_ = json.NewDecoder(r.Body).Decode(&got)
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"choices":[{"message":{"role":"assistant","content":"  Nice buy!  "}}],"usage":{"total_tokens":12}}`))
	}))
	defer srv.Close()

	gen, err := NewOpenAITextGenerator(newOpenAIConfig(srv.URL), logger.NewNop(), srv.Client())
	require.NoError(t, err)

	text, err := gen.GenerateText(context.Background(), "hello")
	require.NoError(t, err)
	assert.Equal(t, "Nice buy!", text)
	assert.Equal(t, "Bearer secret", auth)
	assert.Equal(t, "test-model", got.Model)
	require.Len(t, got.Messages, 1)
	assert.Equal(t, "user", got.Messages[0].Role)
	assert.Equal(t, "hello", got.Messages[0].Content)
}

func TestOpenAITextGenerator_Errors(t *testing.T) {
	tests := []struct {
		name   string
		status int
		body   string
	}{
		{name: "non ok status", status: http.StatusTooManyRequests, body: `{"error":"slow down"}`},
		{name: "no choices", status: http.StatusOK, body: `{"choices":[]}`},
		{name: "empty content", status: http.StatusOK, body: `{"choices":[{"message":{"content":"   "}}]}`},
		{name: "bad json", status: http.StatusOK, body: `{`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
				_, _ = w.Write([]byte(tt.body))
			}))
			defer srv.Close()

			gen, err := NewOpenAITextGenerator(newOpenAIConfig(srv.URL), logger.NewNop(), srv.Client())
			require.NoError(t, err)

			_, err = gen.GenerateText(context.Background(), "hello")
			assert.Error(t, err)
		})
	}
}

func TestNewOpenAITextGenerator_Validation(t *testing.T) {
	cfg := newOpenAIConfig("http://localhost")
	cfg.OpenAI.Model = ""
	_, err := NewOpenAITextGenerator(cfg, logger.NewNop(), nil)
	assert.Error(t, err)

	cfg = newOpenAIConfig("http://localhost")
	cfg.OpenAI.MaxRequestPerMinute = 0
	_, err = NewOpenAITextGenerator(cfg, logger.NewNop(), nil)
	assert.Error(t, err)
}
