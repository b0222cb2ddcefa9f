package config

import (
	"encoding/json"
	"os"

	"github.com/kolbask4/CollegeActivityApp/internal/flagx"
)

// JsonConfig is a DTO used exclusively for JSON unmarshalling. Absent fields
// leave the corresponding Config values untouched.
type JsonConfig struct {
	DataDir  string `json:"data_dir"`
	DBFile   string `json:"db_file"`
	LogLevel string `json:"log_level"`
}

// parseJson overlays Config with values loaded from a JSON file whose path is
// given via the -c or -config flags. If neither flag is present, nothing is
// loaded. Panics on read or unmarshal errors (caller should recover if
// desired).
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

	if jc.DataDir != "" {
		cfg.DataDir = jc.DataDir
	}
	if jc.DBFile != "" {
		cfg.DBFile = jc.DBFile
	}
	if jc.LogLevel != "" {
		cfg.LogLevel = jc.LogLevel
	}
}
