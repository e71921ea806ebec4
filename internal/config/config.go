// Package config loads the CLI's connection settings from YAML, TOML or JSONC.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	j "github.com/goccy/go-json"
	toml "github.com/pelletier/go-toml/v2"
	"github.com/tidwall/jsonc"
	"gopkg.in/yaml.v3"

	"github.com/reoring/goarr/transport"
)

const (
	defaultConfigPath = "~/.config/goarr/config.yaml"
	defaultService    = "sonarr"

	// APIKeyEnv overrides the api_key setting when set.
	APIKeyEnv = "GOARR_API_KEY"
)

// Config captures one server connection.
type Config struct {
	Service            string  `yaml:"service" toml:"service" json:"service"`
	Host               string  `yaml:"host" toml:"host" json:"host"`
	Port               int     `yaml:"port" toml:"port" json:"port"`
	BasePath           string  `yaml:"base_path" toml:"base_path" json:"base_path"`
	TLS                bool    `yaml:"tls" toml:"tls" json:"tls"`
	InsecureSkipVerify bool    `yaml:"insecure_skip_verify" toml:"insecure_skip_verify" json:"insecure_skip_verify"`
	APIKey             string  `yaml:"api_key" toml:"api_key" json:"api_key"`
	UserAgent          string  `yaml:"user_agent" toml:"user_agent" json:"user_agent"`
	Timeout            string  `yaml:"timeout" toml:"timeout" json:"timeout"`
	RateLimit          float64 `yaml:"rate_limit" toml:"rate_limit" json:"rate_limit"`
	Burst              int     `yaml:"burst" toml:"burst" json:"burst"`
	LogLevel           string  `yaml:"log_level" toml:"log_level" json:"log_level"`
}

// Load reads path (the default location when empty), choosing the format by
// extension. A missing file yields defaults.
func Load(path string) (Config, error) {
	resolved, err := resolvePath(path)
	if err != nil {
		return Config{}, err
	}
	cfg := Config{Service: defaultService, LogLevel: "info"}

	file, err := os.Open(resolved)
	switch {
	case errors.Is(err, os.ErrNotExist):
	case err != nil:
		return Config{}, fmt.Errorf("open config: %w", err)
	default:
		defer file.Close()
		data, err := io.ReadAll(file)
		if err != nil {
			return Config{}, fmt.Errorf("read config: %w", err)
		}
		if err := decode(resolved, data, &cfg); err != nil {
			return Config{}, fmt.Errorf("parse config %s: %w", resolved, err)
		}
	}

	if key := strings.TrimSpace(os.Getenv(APIKeyEnv)); key != "" {
		cfg.APIKey = key
	}
	cfg.Service = strings.ToLower(strings.TrimSpace(cfg.Service))
	if cfg.Service == "" {
		cfg.Service = defaultService
	}
	return cfg, cfg.Validate()
}

func decode(path string, data []byte, cfg *Config) error {
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".yaml", ".yml":
		dec := yaml.NewDecoder(bytes.NewReader(data))
		dec.KnownFields(true)
		if err := dec.Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
			return err
		}
		return nil
	case ".toml":
		return toml.NewDecoder(bytes.NewReader(data)).DisallowUnknownFields().Decode(cfg)
	case ".json", ".jsonc":
		dec := j.NewDecoder(bytes.NewReader(jsonc.ToJSON(data)))
		dec.DisallowUnknownFields()
		return dec.Decode(cfg)
	default:
		return fmt.Errorf("unsupported config format %q", ext)
	}
}

// Validate checks the fields Load cannot default.
func (c Config) Validate() error {
	switch c.Service {
	case "sonarr", "radarr":
	default:
		return fmt.Errorf("config: unknown service %q", c.Service)
	}
	if _, err := c.timeout(); err != nil {
		return err
	}
	if _, err := c.Level(); err != nil {
		return err
	}
	return nil
}

func (c Config) timeout() (time.Duration, error) {
	if strings.TrimSpace(c.Timeout) == "" {
		return 0, nil
	}
	d, err := time.ParseDuration(c.Timeout)
	if err != nil {
		return 0, fmt.Errorf("config: timeout: %w", err)
	}
	return d, nil
}

// Level parses log_level.
func (c Config) Level() (slog.Level, error) {
	var lvl slog.Level
	if strings.TrimSpace(c.LogLevel) == "" {
		return slog.LevelInfo, nil
	}
	if err := lvl.UnmarshalText([]byte(c.LogLevel)); err != nil {
		return 0, fmt.Errorf("config: log_level: %w", err)
	}
	return lvl, nil
}

// Transport converts c into client settings. Zero port and base path are
// left for the service client to default.
func (c Config) Transport(logger *slog.Logger) transport.Config {
	timeout, _ := c.timeout()
	return transport.Config{
		Host:               c.Host,
		Port:               c.Port,
		BasePath:           c.BasePath,
		TLS:                c.TLS,
		InsecureSkipVerify: c.InsecureSkipVerify,
		APIKey:             c.APIKey,
		UserAgent:          c.UserAgent,
		Timeout:            timeout,
		RateLimit:          c.RateLimit,
		Burst:              c.Burst,
		Logger:             logger,
	}
}

func resolvePath(path string) (string, error) {
	if strings.TrimSpace(path) == "" {
		return expandPath(defaultConfigPath)
	}
	return expandPath(path)
}

func expandPath(path string) (string, error) {
	trimmed := strings.TrimSpace(path)
	if strings.HasPrefix(trimmed, "~") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home dir: %w", err)
		}
		trimmed = filepath.Join(home, strings.TrimPrefix(trimmed, "~"))
	}
	return filepath.Abs(trimmed)
}
