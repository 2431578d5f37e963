package config

import (
	"fmt"
	"time"
)

type Config struct {
	Telegram    TelegramConfig    `yaml:"telegram"`
	AI          AIConfig          `yaml:"ai"`
	Media       MediaConfig       `yaml:"media"`
	Logging     LoggingConfig     `yaml:"logging"`
	Batch       BatchConfig       `yaml:"batch"`
	Performance PerformanceConfig `yaml:"performance"`
}

type TelegramConfig struct {
	Token            string `yaml:"token" env:"BOT_TOKEN"`
	MaxMessageLength int    `yaml:"max_message_length" env:"MAX_MESSAGE_LENGTH"`
}

type AIConfig struct {
	GeminiAPIKey  string `yaml:"gemini_api_key" env:"GEMINI_API_KEY"`
	GroqAPIKey    string `yaml:"groq_api_key" env:"GROQ_API_KEY"`
	DefaultEngine string `yaml:"default_engine" env:"DEFAULT_ENGINE"`

	GeminiPrimaryModel  string `yaml:"gemini_primary_model" env:"GEMINI_PRIMARY_MODEL"`
	GeminiFallbackModel string `yaml:"gemini_fallback_model" env:"GEMINI_FALLBACK_MODEL"`

	PrimaryAttempts  int `yaml:"primary_attempts" env:"PRIMARY_ATTEMPTS"`
	FallbackAttempts int `yaml:"fallback_attempts" env:"FALLBACK_ATTEMPTS"`
	BackoffSeconds   int `yaml:"backoff_seconds" env:"BACKOFF_SECONDS"`
}

type MediaConfig struct {
	MaxFileSize int64  `yaml:"max_file_size" env:"MAX_FILE_SIZE"`
	FFmpegPath  string `yaml:"ffmpeg_path" env:"FFMPEG_PATH"`
}

type LoggingConfig struct {
	Level  string `yaml:"level" env:"LOG_LEVEL"`
	Format string `yaml:"format" env:"LOG_FORMAT"`
}

type BatchConfig struct {
	Input  string `yaml:"input" env:"BATCH_INPUT"`
	Output string `yaml:"output" env:"BATCH_OUTPUT"`
}

type PerformanceConfig struct {
	MaxConcurrent int `yaml:"max_concurrent" env:"MAX_CONCURRENT"`
}

// Backoff returns the retry backoff as a duration.
func (c *AIConfig) Backoff() time.Duration {
	return time.Duration(c.BackoffSeconds) * time.Second
}

func (c *Config) Validate() error {
	if c.Telegram.MaxMessageLength == 0 {
		c.Telegram.MaxMessageLength = 4096
	}
	if c.Media.MaxFileSize == 0 {
		c.Media.MaxFileSize = 20 * 1024 * 1024
	}
	if c.Media.FFmpegPath == "" {
		c.Media.FFmpegPath = "ffmpeg"
	}
	if c.AI.DefaultEngine == "" {
		c.AI.DefaultEngine = "gemini"
	}
	if c.AI.GeminiPrimaryModel == "" {
		c.AI.GeminiPrimaryModel = "gemini-2.5-flash"
	}
	if c.AI.GeminiFallbackModel == "" {
		c.AI.GeminiFallbackModel = "gemini-2.0-flash"
	}
	if c.AI.PrimaryAttempts == 0 {
		c.AI.PrimaryAttempts = 3
	}
	if c.AI.FallbackAttempts == 0 {
		c.AI.FallbackAttempts = 5
	}
	if c.AI.BackoffSeconds == 0 {
		c.AI.BackoffSeconds = 3
	}
	if c.Logging.Level == "" {
		c.Logging.Level = "info"
	}
	if c.Logging.Format == "" {
		c.Logging.Format = "console"
	}
	if c.Batch.Input == "" {
		c.Batch.Input = "data/input"
	}
	if c.Batch.Output == "" {
		c.Batch.Output = "data/output"
	}
	if c.Performance.MaxConcurrent <= 0 {
		c.Performance.MaxConcurrent = 2
	}

	if c.AI.PrimaryAttempts < 0 || c.AI.FallbackAttempts < 0 {
		return fmt.Errorf("ai retry attempts must not be negative")
	}
	if c.Media.MaxFileSize < 0 {
		return fmt.Errorf("media.max_file_size must not be negative")
	}

	return nil
}
