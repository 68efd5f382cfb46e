package config

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

const (
	ProviderGemini     = "gemini"
	ProviderOpenRouter = "openrouter"
)

type Config struct {
	// Core
	DatabaseURL string `env:"DATABASE_URL,required,notEmpty"`
	Port        int    `env:"PORT" envDefault:"8000"`
	LogLevel    string `env:"LOG_LEVEL" envDefault:"info"`

	// Supabase: identity provider and object storage
	SupabaseURL        string `env:"SUPABASE_URL,required,notEmpty"`
	SupabaseAnonKey    string `env:"SUPABASE_ANON_KEY,required,notEmpty"`
	SupabaseServiceKey string `env:"SUPABASE_SERVICE_ROLE_KEY"`
	SupabaseJWTSecret  string `env:"SUPABASE_JWT_SECRET"`
	StorageBucket      string `env:"STORAGE_BUCKET" envDefault:"documents"`

	// CORS
	AllowedOrigins []string `env:"ALLOWED_ORIGINS" envSeparator:"," envDefault:"http://localhost:3000"`

	// Generative model
	LLMProvider     string `env:"LLM_PROVIDER" envDefault:"gemini"`
	GeminiAPIKey    string `env:"GEMINI_API_KEY"`
	GeminiModel     string `env:"GEMINI_MODEL" envDefault:"gemini-2.0-flash"`
	OpenRouterKey   string `env:"OPENROUTER_API_KEY"`
	OpenRouterModel string `env:"OPENROUTER_MODEL" envDefault:"google/gemini-2.0-flash-001"`

	// Limits
	RateLimitPerMinute int `env:"RATE_LIMIT_PER_MINUTE" envDefault:"60"`
	MaxUploadMB        int `env:"MAX_UPLOAD_MB" envDefault:"10"`

	// Orphaned object sweep, 0 disables
	OrphanSweepInterval time.Duration `env:"ORPHAN_SWEEP_INTERVAL" envDefault:"0s"`

	// Telegram error alerts
	BotToken          string `env:"BOT_TOKEN"`
	LogTelegramChatID int64  `env:"LOG_TELEGRAM_CHAT_ID"`
	LogTopicError     int    `env:"LOG_TOPIC_ERROR"`
}

// Load reads an optional .env file and then parses the environment.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			slog.Warn("failed to load .env file", "error", err)
		}
	}

	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) Validate() error {
	switch c.LLMProvider {
	case ProviderGemini:
		if c.GeminiAPIKey == "" {
			return fmt.Errorf("GEMINI_API_KEY is required for provider %q", c.LLMProvider)
		}
	case ProviderOpenRouter:
		if c.OpenRouterKey == "" {
			return fmt.Errorf("OPENROUTER_API_KEY is required for provider %q", c.LLMProvider)
		}
	default:
		return fmt.Errorf("unknown LLM_PROVIDER %q", c.LLMProvider)
	}
	if c.MaxUploadMB <= 0 {
		return fmt.Errorf("MAX_UPLOAD_MB must be positive, got %d", c.MaxUploadMB)
	}
	if c.OrphanSweepInterval < 0 {
		return fmt.Errorf("ORPHAN_SWEEP_INTERVAL must not be negative, got %s", c.OrphanSweepInterval)
	}
	return nil
}

// StorageKey returns the key used for object storage writes.
func (c *Config) StorageKey() string {
	if c.SupabaseServiceKey != "" {
		return c.SupabaseServiceKey
	}
	return c.SupabaseAnonKey
}

func (c *Config) AlertsEnabled() bool {
	return c.BotToken != "" && c.LogTelegramChatID != 0
}

func (c *Config) MaxUploadBytes() int64 {
	return int64(c.MaxUploadMB) << 20
}

func (c *Config) SlogLevel() slog.Level {
	switch strings.ToLower(c.LogLevel) {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
