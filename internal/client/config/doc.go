// Package config loads runtime configuration for the findash client.
//
// Sources & precedence
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. Optional JSON file (see parseJson) selected via flags: -c or -config.
//  3. Environment variables (see parseEnv).
//  4. Command-line flags (see parseFlags), which override earlier values.
//
// Supported flags
//
//	-a string   backend API base URL
//	-m string   assistant model id
//	-d string   data directory
//	-l string   log level
//	-o string   location or deep link to open at startup
//
// Environment
//
//	FINDASH_API_URL, FINDASH_GEMINI_API_KEY (or GEMINI_API_KEY),
//	FINDASH_MODEL, FINDASH_DATA_DIR, FINDASH_LOG_LEVEL
//
// # JSON schema
//
// Durations are timex.Duration, so "100ms" and integer nanoseconds both work:
//
//	{
//	  "api_base_url": "http://localhost:5000/api",
//	  "model": "gemini-2.5-flash",
//	  "data_dir": ".findash",
//	  "context_delay": "100ms",
//	  "log_level": "info",
//	  "log_file": "findash.log"
//	}
//
// Primary API
//
//   - type Config                     holds every setting
//   - func LoadConfig() (*Config, error)  defaults, JSON, environment, then flags
//   - func (*Config) LoadDefaults()   sets sensible defaults
//   - func (*Config) DBPath() string  SQLite file inside the data directory
package config
