package config

import (
	"os"
	"path/filepath"
)

// Config holds runtime settings for the college records CLI.
//
// Fields:
//   - DataDir: directory holding the database, the session file, and
//     imported portfolio images.
//   - DBFile: database file name inside DataDir.
//   - LogLevel: minimum log level (debug|info|warn|error).
type Config struct {
	DataDir  string
	DBFile   string
	LogLevel string
}

// DBPath returns the full path of the database file.
func (c *Config) DBPath() string {
	return filepath.Join(c.DataDir, c.DBFile)
}

// LoadDefaults populates c with sensible defaults. The data directory lands
// under the user's home; when the home directory cannot be resolved, the
// current directory is used.
func (c *Config) LoadDefaults() {
	home, err := os.UserHomeDir()
	if err != nil {
		home = "."
	}
	c.DataDir = filepath.Join(home, ".collegeapp")
	c.DBFile = "college.db"
	c.LogLevel = "info"
}

// LoadConfig constructs a Config, applies defaults, then overlays values from
// JSON (if present) and command-line flags (if present). Later sources take
// precedence over earlier ones.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg)
	parseFlags(cfg)
	return cfg
}
