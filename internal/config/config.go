// Package config resolves run defaults from a TOML file, a .env file and
// BARCLASH_* environment variables. Command-line flags are applied on top by
// the callers.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"strings"

	"barclash-core/clash"

	"github.com/joho/godotenv"
	"github.com/pelletier/go-toml/v2"
)

// Environment variable names.
const (
	EnvConfig      = "BARCLASH_CONFIG"
	EnvThreshold   = "BARCLASH_THRESHOLD"
	EnvName1       = "BARCLASH_NAME1"
	EnvName2       = "BARCLASH_NAME2"
	EnvOutput      = "BARCLASH_OUTPUT"
	EnvAddr        = "BARCLASH_ADDR"
	EnvMaxBarcodes = "BARCLASH_MAX_BARCODES"
)

type ServerConfig struct {
	Addr        string `toml:"addr"`
	MaxBarcodes int    `toml:"max_barcodes"` // per set; 0 = unlimited
}

type Config struct {
	Threshold   int          `toml:"threshold"`
	Name1       string       `toml:"name1"`
	Name2       string       `toml:"name2"`
	Output      string       `toml:"output"`
	InputFormat string       `toml:"input_format"`
	Server      ServerConfig `toml:"server"`
}

// Default returns the built-in defaults.
func Default() Config {
	return Config{
		Threshold:   clash.DefaultThreshold,
		Name1:       clash.DefaultLabel1,
		Name2:       clash.DefaultLabel2,
		Output:      "text",
		InputFormat: "auto",
		Server: ServerConfig{
			Addr:        ":8080",
			MaxBarcodes: 10000,
		},
	}
}

// Load reads a TOML file over the defaults. Keys absent from the file keep
// their default values.
func Load(path string) (Config, error) {
	cfg := Default()
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("failed to read config file '%s': %w", path, err)
	}
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("failed to parse TOML '%s': %w", path, err)
	}
	return cfg, cfg.Validate()
}

// LoadDotEnv loads .env files into the process environment without
// overriding variables that are already set. Missing files are ignored.
func LoadDotEnv(paths ...string) error {
	if len(paths) == 0 {
		paths = []string{".env"}
	}
	for _, p := range paths {
		if err := godotenv.Load(p); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("load %s: %w", p, err)
		}
	}
	return nil
}

// Resolve builds the effective configuration: defaults, then the TOML file
// named by path (or $BARCLASH_CONFIG when path is empty), then environment
// overrides read through getenv.
func Resolve(path string, getenv func(string) string) (Config, error) {
	if getenv == nil {
		getenv = os.Getenv
	}
	if path == "" {
		path = getenv(EnvConfig)
	}
	cfg := Default()
	if path != "" {
		var err error
		if cfg, err = Load(path); err != nil {
			return cfg, err
		}
	}
	if err := cfg.ApplyEnv(getenv); err != nil {
		return cfg, err
	}
	return cfg, cfg.Validate()
}

// ApplyEnv overrides fields from BARCLASH_* variables.
func (c *Config) ApplyEnv(getenv func(string) string) error {
	if v := strings.TrimSpace(getenv(EnvThreshold)); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("%s: %w", EnvThreshold, err)
		}
		c.Threshold = n
	}
	if v := getenv(EnvName1); v != "" {
		c.Name1 = v
	}
	if v := getenv(EnvName2); v != "" {
		c.Name2 = v
	}
	if v := getenv(EnvOutput); v != "" {
		c.Output = v
	}
	if v := getenv(EnvAddr); v != "" {
		c.Server.Addr = v
	}
	if v := strings.TrimSpace(getenv(EnvMaxBarcodes)); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("%s: %w", EnvMaxBarcodes, err)
		}
		c.Server.MaxBarcodes = n
	}
	return nil
}

// Validate rejects values no component can run with.
func (c Config) Validate() error {
	if err := clash.CheckThreshold(c.Threshold); err != nil {
		return err
	}
	if c.Server.MaxBarcodes < 0 {
		return errors.New("server.max_barcodes must be ≥ 0")
	}
	return nil
}
