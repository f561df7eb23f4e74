// Package config loads beltctl's optional TOML configuration. Only keys
// present in the file override defaults; everything else keeps its
// built-in value.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/danmuck/beltctl/internal/homes"
)

// FileName is the config file looked up under the resolved config home.
const FileName = "beltctl.toml"

// Config holds CLI defaults.
type Config struct {
	// TempRoot roots acquired temp resources; empty means the OS temp dir.
	TempRoot string
	// Delimiter is the default field delimiter; empty means whitespace.
	Delimiter string
	// LogLevel overrides the runtime log level when non-empty.
	LogLevel string
}

type fileConfig struct {
	TempRoot  string `toml:"temp_root"`
	Delimiter string `toml:"delimiter"`
	LogLevel  string `toml:"log_level"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{}
}

// Load layers the file at path over the defaults.
func Load(path string) (Config, error) {
	cfg := Default()

	var raw fileConfig
	meta, err := toml.DecodeFile(path, &raw)
	if err != nil {
		return Config{}, fmt.Errorf("load beltctl config: %w", err)
	}

	if meta.IsDefined("temp_root") {
		cfg.TempRoot = strings.TrimSpace(raw.TempRoot)
	}
	if meta.IsDefined("delimiter") {
		cfg.Delimiter = raw.Delimiter
	}
	if meta.IsDefined("log_level") {
		cfg.LogLevel = strings.TrimSpace(raw.LogLevel)
	}
	return cfg, nil
}

// LoadDefault looks for FileName under <config home>/beltctl. A missing
// file is not an error; the defaults stand.
func LoadDefault(r homes.Resolver) (Config, error) {
	path := filepath.Join(r.Resolve(homes.Config), "beltctl", FileName)
	if _, err := os.Stat(path); err != nil {
		return Default(), nil
	}
	return Load(path)
}
