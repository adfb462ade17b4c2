// Package llm provides the text-generation client used to answer chat
// requests, backed by Google Gemini.
package llm

import (
	"os"
	"strconv"
	"time"
)

// Defaults for the generation configuration
const (
	DefaultModel           = "gemini-2.5-flash"
	DefaultTemperature     = 0.7
	DefaultMaxOutputTokens = 2048
	DefaultTimeout         = 30 * time.Second
)

// Config holds the model and generation parameters.
type Config struct {
	Model           string
	Temperature     float32
	MaxOutputTokens int32
	// Timeout bounds a single generation call. A timed-out call surfaces as
	// an ExternalServiceError like any other failure.
	Timeout time.Duration
}

// DefaultConfig returns the default generation configuration.
func DefaultConfig() *Config {
	return &Config{
		Model:           DefaultModel,
		Temperature:     DefaultTemperature,
		MaxOutputTokens: DefaultMaxOutputTokens,
		Timeout:         DefaultTimeout,
	}
}

// ConfigFromEnv builds a configuration from environment variables, falling
// back to defaults for unset or unparseable values.
//
//	GEMINI_MODEL_NAME   model identifier
//	GEMINI_TEMPERATURE  float, e.g. "0.7"
//	GEMINI_MAX_TOKENS   integer output token cap
//	GEMINI_TIMEOUT      Go duration, e.g. "45s"
func ConfigFromEnv() *Config {
	cfg := DefaultConfig()

	if model := os.Getenv("GEMINI_MODEL_NAME"); model != "" {
		cfg.Model = model
	}
	if raw := os.Getenv("GEMINI_TEMPERATURE"); raw != "" {
		if temp, err := strconv.ParseFloat(raw, 32); err == nil {
			cfg.Temperature = float32(temp)
		}
	}
	if raw := os.Getenv("GEMINI_MAX_TOKENS"); raw != "" {
		if tokens, err := strconv.Atoi(raw); err == nil && tokens > 0 {
			cfg.MaxOutputTokens = int32(tokens)
		}
	}
	if raw := os.Getenv("GEMINI_TIMEOUT"); raw != "" {
		if timeout, err := time.ParseDuration(raw); err == nil && timeout > 0 {
			cfg.Timeout = timeout
		}
	}

	return cfg
}
