package config

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/dmitrijs2005/findash/internal/flagx"
	"github.com/dmitrijs2005/findash/internal/timex"
)

// JsonConfig is a DTO used exclusively for JSON unmarshalling.
// Durations use timex.Duration so they may be "100ms" or integer nanoseconds.
type JsonConfig struct {
	APIBaseURL        string         `json:"api_base_url"`
	GenAIAPIKey       string         `json:"genai_api_key"`
	Model             string         `json:"model"`
	SystemInstruction string         `json:"system_instruction"`
	DataDir           string         `json:"data_dir"`
	DBFile            string         `json:"db_file"`
	ContextDelay      timex.Duration `json:"context_delay"`
	LogLevel          string         `json:"log_level"`
	LogFile           string         `json:"log_file"`
	StartFragment     string         `json:"start_fragment"`
	RequestTimeout    timex.Duration `json:"request_timeout"`
}

// parseJson overlays Config with values loaded from a JSON file selected by
// -c or -config. Keys absent from the file leave the current value alone.
func parseJson(cfg *Config) error {
	jsonConfigFile := flagx.JsonConfigFlags()
	if jsonConfigFile == "" {
		return nil
	}

	data, err := os.ReadFile(jsonConfigFile)
	if err != nil {
		return err
	}

	var jc JsonConfig
	if err := json.Unmarshal(data, &jc); err != nil {
		return fmt.Errorf("%s: %w", jsonConfigFile, err)
	}

	setString(&cfg.APIBaseURL, jc.APIBaseURL)
	setString(&cfg.GenAIAPIKey, jc.GenAIAPIKey)
	setString(&cfg.Model, jc.Model)
	setString(&cfg.SystemInstruction, jc.SystemInstruction)
	setString(&cfg.DataDir, jc.DataDir)
	setString(&cfg.DBFile, jc.DBFile)
	setString(&cfg.LogLevel, jc.LogLevel)
	setString(&cfg.LogFile, jc.LogFile)
	setString(&cfg.StartFragment, jc.StartFragment)
	if jc.ContextDelay.Duration != 0 {
		cfg.ContextDelay = jc.ContextDelay.Duration
	}
	if jc.RequestTimeout.Duration != 0 {
		cfg.RequestTimeout = jc.RequestTimeout.Duration
	}
	return nil
}

func setString(dst *string, v string) {
	if v != "" {
		*dst = v
	}
}
