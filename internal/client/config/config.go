package config

import (
	"fmt"
	"path/filepath"
	"time"
)

// DefaultSystemInstruction introduces the assistant to the model.
const DefaultSystemInstruction = "You are a friendly and helpful financial assistant for a personal finance app. " +
	"Your name is 'Fin'. Your goal is to help users understand their finances based on the data visible on their current page. " +
	"Be concise and clear in your answers. Respond in Spanish. Use Markdown for formatting when appropriate (e.g., lists, bold text)."

// Config holds runtime settings for the findash client.
//
// Fields:
//   - APIBaseURL: backend REST root, e.g. http://localhost:5000/api.
//   - GenAIAPIKey, Model, SystemInstruction: the assistant's model session.
//   - DataDir, DBFile: where the local SQLite database lives.
//   - ContextDelay: pause before the assistant reads the screen.
//   - LogLevel, LogFile: logging; an empty LogFile means stderr.
//   - StartFragment: location or deep link to open at startup.
//   - RequestTimeout: per-request limit, zero for none.
type Config struct {
	APIBaseURL        string
	GenAIAPIKey       string
	Model             string
	SystemInstruction string
	DataDir           string
	DBFile            string
	ContextDelay      time.Duration
	LogLevel          string
	LogFile           string
	StartFragment     string
	RequestTimeout    time.Duration
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.APIBaseURL = "http://localhost:5000/api"
	c.Model = "gemini-2.5-flash"
	c.SystemInstruction = DefaultSystemInstruction
	c.DataDir = ".findash"
	c.DBFile = "finance.db"
	c.ContextDelay = 100 * time.Millisecond
	c.LogLevel = "warn"
}

// DBPath is the SQLite file inside the data directory.
func (c *Config) DBPath() string {
	if filepath.IsAbs(c.DBFile) {
		return c.DBFile
	}
	return filepath.Join(c.DataDir, c.DBFile)
}

// LoadConfig constructs a Config, applies defaults, then overlays values from
// JSON (if present), the environment, and command-line flags. Later sources
// take precedence over earlier ones. An unreadable JSON file or bad flags
// are returned as errors.
func LoadConfig() (*Config, error) {
	cfg := &Config{}
	cfg.LoadDefaults()
	if err := parseJson(cfg); err != nil {
		return nil, fmt.Errorf("config file: %w", err)
	}
	parseEnv(cfg)
	if err := parseFlags(cfg); err != nil {
		return nil, fmt.Errorf("flags: %w", err)
	}
	return cfg, nil
}
