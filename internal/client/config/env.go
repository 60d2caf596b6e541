package config

import "github.com/dmitrijs2005/findash/internal/flagx"

// Environment variables read by parseEnv. The API key also accepts the
// generic GEMINI_API_KEY.
const (
	EnvAPIURL   = "FINDASH_API_URL"
	EnvAPIKey   = "FINDASH_GEMINI_API_KEY"
	EnvModel    = "FINDASH_MODEL"
	EnvDataDir  = "FINDASH_DATA_DIR"
	EnvLogLevel = "FINDASH_LOG_LEVEL"
)

func parseEnv(cfg *Config) {
	if v, ok := flagx.LookupEnv(EnvAPIURL); ok {
		cfg.APIBaseURL = v
	}
	if v, ok := flagx.LookupEnv(EnvAPIKey, "GEMINI_API_KEY"); ok {
		cfg.GenAIAPIKey = v
	}
	if v, ok := flagx.LookupEnv(EnvModel); ok {
		cfg.Model = v
	}
	if v, ok := flagx.LookupEnv(EnvDataDir); ok {
		cfg.DataDir = v
	}
	if v, ok := flagx.LookupEnv(EnvLogLevel); ok {
		cfg.LogLevel = v
	}
}
