package config

import (
	"encoding/json"
	"os"
	"time"

	"github.com/dkarpovs/libshelf/internal/flagx"
)

// JsonConfig is a DTO used exclusively for JSON unmarshalling. Timeouts are
// given as integer seconds; values are copied into the runtime Config (which
// uses time.Duration).
type JsonConfig struct {
	ServerBaseURL  string `json:"server_base_url"`
	RequestTimeout int    `json:"request_timeout"`
	DatabasePath   string `json:"database_path"`
}

// parseJson overlays Config with values loaded from a JSON file.
//
// The file path comes from the -c or -config flags (flagx.JsonConfigFlags);
// when neither is set, nothing is loaded. Read or unmarshal errors panic
// (bad configuration should stop startup). Zero-valued JSON fields leave the
// corresponding Config fields untouched.
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

	if jc.ServerBaseURL != "" {
		cfg.ServerBaseURL = jc.ServerBaseURL
	}
	if jc.RequestTimeout > 0 {
		cfg.RequestTimeout = time.Duration(jc.RequestTimeout) * time.Second
	}
	if jc.DatabasePath != "" {
		cfg.DatabasePath = jc.DatabasePath
	}
}
