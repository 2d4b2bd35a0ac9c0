package config

// Config holds all application configuration.
// It organizes settings into logical groups for better maintainability.
type Config struct {
	Server    ServerConfig    `mapstructure:"server"     validate:"required"`
	Database  DatabaseConfig  `mapstructure:"database"   validate:"required"`
	LLM       LLMConfig       `mapstructure:"llm"        validate:"required"`
	RateLimit RateLimitConfig `mapstructure:"rate_limit" validate:"required"`
	Pipeline  PipelineConfig  `mapstructure:"pipeline"`
}

// ServerConfig contains all server-related configuration settings.
type ServerConfig struct {
	Port     int    `mapstructure:"port"      validate:"required,gt=0,lt=65536"`
	LogLevel string `mapstructure:"log_level" validate:"required,oneof=debug info warn error"`
}

// DatabaseConfig contains all database-related configuration settings.
type DatabaseConfig struct {
	URL string `mapstructure:"url" validate:"required,url"`
}

// LLMConfig contains all LLM integration related settings.
type LLMConfig struct {
	GeminiAPIKey string `mapstructure:"gemini_api_key" validate:"required"`

	// Models is the ordered fallback list: the first entry is the primary
	// backend, later entries are tried in order when earlier ones fail.
	Models []string `mapstructure:"models" validate:"required,min=1,dive,required"`

	// Temperature is the fixed sampling temperature for every backend call.
	Temperature float32 `mapstructure:"temperature" validate:"gte=0,lte=2"`
}

// RateLimitConfig controls the per-client sliding window admission check.
type RateLimitConfig struct {
	WindowSeconds int `mapstructure:"window_seconds" validate:"required,gt=0"`
	MaxRequests   int `mapstructure:"max_requests"   validate:"required,gt=0"`
}

// PipelineConfig toggles optional stages of the generation pipeline.
// Sanitization is on by default; the profanity filter is off by default
// (it was deliberately removed from the standard flow but remains
// available for deployments that want it back).
type PipelineConfig struct {
	Sanitize          bool     `mapstructure:"sanitize"`
	ProfanityFilter   bool     `mapstructure:"profanity_filter"`
	ProfanityDenylist []string `mapstructure:"profanity_denylist"`
}
