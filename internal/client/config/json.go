package config

import (
	"encoding/json"
	"os"
	"time"

	"github.com/vitorsaucedo/vbank-cli/internal/flagx"
	"github.com/vitorsaucedo/vbank-cli/internal/timex"
)

// JsonConfig is a DTO used exclusively for JSON unmarshalling. It relies on
// timex.Duration so JSON can specify durations either as strings like "15s"
// or as integer nanoseconds. After parsing, values are copied into the
// runtime Config (which uses time.Duration).
type JsonConfig struct {
	APIBaseURL            string         `json:"api_base_url"`
	RequestTimeout        timex.Duration `json:"request_timeout"`
	DatabaseDSN           string         `json:"database_dsn"`
	NoticeDuration        timex.Duration `json:"notice_duration"`
	RegisterRedirectDelay timex.Duration `json:"register_redirect_delay"`
}

// parseJson overlays Config with values loaded from a JSON file selected via
// the -c or -config flag. With no such flag the function is a no-op. Zero
// JSON fields keep the value already in cfg. Panics on read or unmarshal
// errors (caller should recover if desired).
//
// Intended usage is: defaults -> parseJson -> parseFlags, where later stages
// override earlier ones.
func parseJson(cfg *Config) {
	jsonConfigFile := flagx.JsonConfigFlags()
	if jsonConfigFile == "" {
		return
	}

	var jc JsonConfig

	data, err := os.ReadFile(jsonConfigFile)
	if err != nil {
		panic(err)
	}
	if err := json.Unmarshal(data, &jc); err != nil {
		panic(err)
	}

	if jc.APIBaseURL != "" {
		cfg.APIBaseURL = jc.APIBaseURL
	}
	if jc.RequestTimeout.Duration != 0 {
		cfg.RequestTimeout = time.Duration(jc.RequestTimeout.Duration)
	}
	if jc.DatabaseDSN != "" {
		cfg.DatabaseDSN = jc.DatabaseDSN
	}
	if jc.NoticeDuration.Duration != 0 {
		cfg.NoticeDuration = time.Duration(jc.NoticeDuration.Duration)
	}
	if jc.RegisterRedirectDelay.Duration != 0 {
		cfg.RegisterRedirectDelay = time.Duration(jc.RegisterRedirectDelay.Duration)
	}
}
