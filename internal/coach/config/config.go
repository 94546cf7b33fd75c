package config

import (
	"time"

	"frugal-friend/pkg/config"
)

// Gemini holds the configuration for the Gemini API.
type Gemini struct {
	APIKey              string  `mapstructure:"api_key"`
	Model               string  `mapstructure:"model"`
	Temperature         float32 `mapstructure:"temperature"`
	MaxRequestPerMinute int     `mapstructure:"max_request_per_minute"`
	MaxTokenPerMinute   int     `mapstructure:"max_token_per_minute"`
}

// OpenAI holds the configuration for an OpenAI compatible chat completions API
// (OpenAI, OpenRouter, Groq).
type OpenAI struct {
	APIKey              string `mapstructure:"api_key"`
	BaseURL             string `mapstructure:"base_url"`
	Model               string `mapstructure:"model"`
	MaxRequestPerMinute int    `mapstructure:"max_request_per_minute"`
	MaxTokenPerMinute   int    `mapstructure:"max_token_per_minute"`
}

// AI holds configuration for the text generation provider.
type AI struct {
	// Provider is "gemini", "openai" or "none". Without a provider every generated text uses its fallback.
	Provider string        `mapstructure:"provider"`
	Timeout  time.Duration `mapstructure:"timeout"`
}

// Telegram holds configuration for the Telegram notifier.
type Telegram struct {
	BotToken string `mapstructure:"bot_token"`
	ChatID   int64  `mapstructure:"chat_id"`
}

// Lock selects how trades on one position are serialized.
type Lock struct {
	Driver        string        `mapstructure:"driver"` // "memory" or "redis"
	TTL           time.Duration `mapstructure:"ttl"`
	RetryInterval time.Duration `mapstructure:"retry_interval"`
}

// Coach holds coaching feature settings.
type Coach struct {
	SummaryCacheTTL time.Duration `mapstructure:"summary_cache_ttl"`
}

// Storage selects the persistence backend.
type Storage struct {
	InMemory bool `mapstructure:"in_memory"`
}

// Config holds the full configuration for the coach service.
type Config struct {
	App      config.App      `mapstructure:"app"`
	Logger   config.Logger   `mapstructure:"logger"`
	Database config.Database `mapstructure:"database"`
	Redis    config.Redis    `mapstructure:"redis"`
	API      config.API      `mapstructure:"api"`
	Gemini   Gemini          `mapstructure:"gemini"`
	OpenAI   OpenAI          `mapstructure:"openai"`
	AI       AI              `mapstructure:"ai"`
	Telegram Telegram        `mapstructure:"telegram"`
	Lock     Lock            `mapstructure:"lock"`
	Coach    Coach           `mapstructure:"coach"`
	Storage  Storage         `mapstructure:"storage"`
}

// Load loads the coach configuration from the given path and fills in defaults.
func Load(path string) (*Config, error) {
	var cfg Config
	if err := config.Load(path, &cfg); err != nil {
		return nil, err
	}
	cfg.applyDefaults()
	return &cfg, nil
}

func (c *Config) applyDefaults() {
	if c.App.TimeZone == "" {
		c.App.TimeZone = "UTC"
	}
	if c.API.Port == 0 {
		c.API.Port = 8080
	}
	if c.AI.Timeout <= 0 {
		c.AI.Timeout = 10 * time.Second
	}
	if c.Lock.Driver == "" {
		c.Lock.Driver = "memory"
	}
	if c.Lock.TTL <= 0 {
		c.Lock.TTL = 5 * time.Second
	}
	if c.Lock.RetryInterval <= 0 {
		c.Lock.RetryInterval = 25 * time.Millisecond
	}
	if c.Coach.SummaryCacheTTL <= 0 {
		c.Coach.SummaryCacheTTL = 10 * time.Minute
	}
	if c.Gemini.Model == "" {
		c.Gemini.Model = "gemini-2.5-flash"
	}
	if c.Gemini.MaxRequestPerMinute <= 0 {
		c.Gemini.MaxRequestPerMinute = 10
	}
	if c.OpenAI.BaseURL == "" {
		c.OpenAI.BaseURL = "https://api.openai.com/v1/chat/completions"
	}
	if c.OpenAI.MaxRequestPerMinute <= 0 {
		c.OpenAI.MaxRequestPerMinute = 10
	}
}
