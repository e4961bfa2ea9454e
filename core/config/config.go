package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/kelseyhightower/envconfig"
	"gopkg.in/yaml.v3"

	coredatabase "github.com/m3rciful/cockfight/core/database"
)

// TelegramConfig holds Telegram bot related settings.
type TelegramConfig struct {
	Token   string `yaml:"token" envconfig:"BOT_TOKEN"`
	AdminID int64  `yaml:"admin_id" envconfig:"TELEGRAM_ADMIN_ID"`
	RunMode string `yaml:"run_mode" envconfig:"TELEGRAM_RUN_MODE"`
	// LongPollTimeoutSeconds defines long polling timeout; 0 -> default
	LongPollTimeoutSeconds int `yaml:"longpoll_timeout_seconds" envconfig:"TELEGRAM_LONGPOLL_TIMEOUT_SECONDS"`
}

// WebhookConfig specifies webhook settings.
type WebhookConfig struct {
	URL    string `yaml:"url" envconfig:"WEBHOOK_URL"`
	Listen string `yaml:"listen" envconfig:"WEBHOOK_LISTEN"`
	Port   int    `yaml:"port" envconfig:"WEBHOOK_PORT"`
}

// LoggingConfig defines logging related configuration.
type LoggingConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
	Dir    string `yaml:"dir"`
	File   string `yaml:"file"`
	// Profile indicates environment profile such as "debug" or "prod".
	Profile string `yaml:"profile"`
}

// GeminiConfig configures the generative text/image backend.
type GeminiConfig struct {
	APIKey     string `yaml:"api_key" envconfig:"GEMINI_API_KEY"`
	TextModel  string `yaml:"text_model" envconfig:"GEMINI_TEXT_MODEL"`
	ImageModel string `yaml:"image_model" envconfig:"GEMINI_IMAGE_MODEL"`
	// TimeoutSeconds bounds a single generation call.
	TimeoutSeconds int `yaml:"timeout_seconds" envconfig:"GEMINI_TIMEOUT_SECONDS"`
	// ImageMaxRetries and ImageRetryDelaySeconds drive the bounded retry
	// policy for VS image generation.
	ImageMaxRetries        int `yaml:"image_max_retries" envconfig:"GEMINI_IMAGE_MAX_RETRIES"`
	ImageRetryDelaySeconds int `yaml:"image_retry_delay_seconds" envconfig:"GEMINI_IMAGE_RETRY_DELAY_SECONDS"`
}

// DataConfig points at the on-disk fighter and fight content layouts.
type DataConfig struct {
	ImagesDir string `yaml:"images_dir" envconfig:"DATA_IMAGES_DIR"`
	DrawDir   string `yaml:"draw_dir" envconfig:"DATA_DRAW_DIR"`
}

const (
	// RunModeWebhook selects webhook mode for Telegram updates.
	RunModeWebhook = "webhook"
	// RunModeLongpoll selects long-polling mode for Telegram updates.
	RunModeLongpoll = "longpoll"
)

// RateLimitConfig holds settings for rate limiting.
// ExcludeUpdates accepts update types to bypass limiting:
// "callback", "message", "inline_query".
type RateLimitConfig struct {
	IntervalMS     int      `yaml:"interval_ms" envconfig:"RATE_LIMIT_INTERVAL_MS"`
	ExcludeUpdates []string `yaml:"exclude_updates" envconfig:"RATE_LIMIT_EXCLUDE_UPDATES"`
}

// Config aggregates the bot configuration.
type Config struct {
	Telegram  TelegramConfig      `yaml:"telegram"`
	Webhook   WebhookConfig       `yaml:"webhook"`
	Logging   LoggingConfig       `yaml:"logging"`
	RateLimit RateLimitConfig     `yaml:"rate_limit"`
	Gemini    GeminiConfig        `yaml:"gemini"`
	Data      DataConfig          `yaml:"data"`
	Database  coredatabase.Config `yaml:"database"`
}

// Load reads configuration from a YAML file and environment variables.
func Load(path string) (*Config, error) {
	var cfg Config

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse YAML config: %w", err)
	}
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("failed to process env: %w", err)
	}

	if err := Normalize(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Normalize performs basic validation of required configuration fields and adjusts defaults.
func Normalize(cfg *Config) error {
	if cfg == nil {
		return fmt.Errorf("nil config")
	}

	if cfg.Telegram.Token == "" {
		return fmt.Errorf("telegram token is required")
	}
	if cfg.Gemini.APIKey == "" {
		return fmt.Errorf("gemini api key is required")
	}

	rm := strings.ToLower(strings.TrimSpace(cfg.Telegram.RunMode))
	if rm == "" {
		rm = RunModeLongpoll
	}
	if rm == "polling" { // accept alias
		rm = RunModeLongpoll
	}
	switch rm {
	case RunModeWebhook:
		if strings.TrimSpace(cfg.Webhook.URL) == "" {
			return fmt.Errorf("webhook.url is required when telegram.run_mode is 'webhook'")
		}
		if strings.TrimSpace(cfg.Webhook.Listen) == "" {
			return fmt.Errorf("webhook.listen is required when telegram.run_mode is 'webhook'")
		}
		if cfg.Webhook.Port <= 0 {
			return fmt.Errorf("webhook.port must be > 0 when telegram.run_mode is 'webhook'")
		}
	case RunModeLongpoll:
		if cfg.Telegram.LongPollTimeoutSeconds < 0 {
			return fmt.Errorf("telegram.longpoll_timeout_seconds must be >= 0")
		}
	default:
		return fmt.Errorf("invalid telegram.run_mode %q; allowed: webhook, longpoll", cfg.Telegram.RunMode)
	}
	cfg.Telegram.RunMode = rm

	if cfg.Gemini.TextModel == "" {
		cfg.Gemini.TextModel = "gemini-2.0-flash"
	}
	if cfg.Gemini.ImageModel == "" {
		cfg.Gemini.ImageModel = "gemini-3-pro-image-preview"
	}
	if cfg.Gemini.TimeoutSeconds <= 0 {
		cfg.Gemini.TimeoutSeconds = 60
	}
	if cfg.Gemini.ImageMaxRetries <= 0 {
		cfg.Gemini.ImageMaxRetries = 3
	}
	if cfg.Gemini.ImageRetryDelaySeconds <= 0 {
		cfg.Gemini.ImageRetryDelaySeconds = 2
	}

	if cfg.Data.ImagesDir == "" {
		cfg.Data.ImagesDir = "data/images"
	}
	if cfg.Data.DrawDir == "" {
		cfg.Data.DrawDir = "data/draw"
	}

	if cfg.Database.Path == "" {
		cfg.Database.Path = "data/cockfight.db"
	}

	return nil
}
