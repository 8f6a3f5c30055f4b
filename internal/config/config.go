// Package config loads the optional creational.yaml (or .json) file.
//
// Files are read into a generic map and decoded with mapstructure, so YAML
// and JSON share one set of field tags and durations can be written as
// strings ("10m").
package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/aretw0/creational/internal/logging"
	"github.com/aretw0/creational/pkg/computer"
	"github.com/aretw0/creational/pkg/document"
	"github.com/joho/godotenv"
	"github.com/mitchellh/mapstructure"
	"gopkg.in/yaml.v3"
)

// DefaultPath is looked up in the working directory when no path is given.
const DefaultPath = "creational.yaml"

// Color modes.
const (
	ColorAuto   = "auto"
	ColorAlways = "always"
	ColorNever  = "never"
)

// Config is the whole configuration file.
type Config struct {
	LogLevel string       `mapstructure:"log_level"`
	Color    string       `mapstructure:"color"`
	Server   ServerConfig `mapstructure:"server"`
	Redis    RedisConfig  `mapstructure:"redis"`

	// TemplatesDir keeps templates as YAML files when no redis address is set.
	TemplatesDir string `mapstructure:"templates_dir"`

	Presets   computer.Presets              `mapstructure:"presets"`
	Templates map[string]*document.Document `mapstructure:"templates"`
}

// ServerConfig configures the HTTP adapter. A zero RateLimit disables
// rate limiting.
type ServerConfig struct {
	Port      string  `mapstructure:"port"`
	RateLimit float64 `mapstructure:"rate_limit"`
	RateBurst int     `mapstructure:"rate_burst"`
}

// RedisConfig configures the redis template store. An empty Address keeps
// templates in memory.
type RedisConfig struct {
	Address  string        `mapstructure:"address"`
	Password string        `mapstructure:"password"`
	DB       int           `mapstructure:"db"`
	Prefix   string        `mapstructure:"prefix"`
	TTL      time.Duration `mapstructure:"ttl"`
}

// Default returns the configuration used when no file is present.
func Default() *Config {
	return &Config{
		LogLevel: "warn",
		Color:    ColorAuto,
		Server:   ServerConfig{Port: "8080", RateLimit: 100, RateBurst: 200},
	}
}

// Environment variables that override the file.
const (
	EnvLogLevel     = "CREATIONAL_LOG_LEVEL"
	EnvColor        = "CREATIONAL_COLOR"
	EnvPort         = "CREATIONAL_PORT"
	EnvRedisAddress = "CREATIONAL_REDIS_ADDRESS"
	EnvRedisPass    = "CREATIONAL_REDIS_PASSWORD"
	EnvRedisDB      = "CREATIONAL_REDIS_DB"
	EnvTemplatesDir = "CREATIONAL_TEMPLATES_DIR"
)

// Load reads the configuration at path. An empty path means DefaultPath,
// and a missing default file yields Default(). A missing explicit file is
// an error.
func Load(path string) (*Config, error) {
	explicit := path != ""
	if !explicit {
		path = DefaultPath
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) && !explicit {
			return Parse(nil, ".yaml")
		}
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	return Parse(data, strings.ToLower(filepath.Ext(path)))
}

// Parse decodes raw configuration. ext selects the format: ".json" is JSON,
// anything else is YAML.
func Parse(data []byte, ext string) (*Config, error) {
	raw := map[string]any{}
	if ext == ".json" {
		if err := json.Unmarshal(data, &raw); err != nil {
			return nil, fmt.Errorf("failed to parse config json: %w", err)
		}
	} else {
		if err := yaml.Unmarshal(data, &raw); err != nil {
			return nil, fmt.Errorf("failed to parse config yaml: %w", err)
		}
	}

	cfg := Default()
	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		DecodeHook:       mapstructure.StringToTimeDurationHookFunc(),
		WeaklyTypedInput: true,
		Result:           cfg,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create config decoder: %w", err)
	}
	if err := decoder.Decode(raw); err != nil {
		return nil, fmt.Errorf("failed to decode config: %w", err)
	}
	if err := cfg.applyEnv(); err != nil {
		return nil, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks the values that have a closed set of options.
func (c *Config) Validate() error {
	switch c.Color {
	case ColorAuto, ColorAlways, ColorNever:
	default:
		return fmt.Errorf("invalid color mode %q (expected auto, always or never)", c.Color)
	}
	if _, _, err := logging.ParseLevel(c.LogLevel); err != nil {
		return err
	}
	if c.Server.RateLimit < 0 {
		return fmt.Errorf("invalid rate limit %v (must not be negative)", c.Server.RateLimit)
	}
	if c.Server.RateLimit > 0 && c.Server.RateBurst < 1 {
		return fmt.Errorf("invalid rate burst %d (must be at least 1)", c.Server.RateBurst)
	}
	for name, doc := range c.Templates {
		if doc == nil {
			return fmt.Errorf("template %q is empty", name)
		}
	}
	return nil
}

// ComputerPresets merges the configured presets over the built-in ones.
func (c *Config) ComputerPresets() computer.Presets {
	presets := computer.DefaultPresets()
	for name, spec := range c.Presets {
		presets[strings.ToLower(name)] = spec
	}
	return presets
}

// DocumentTemplates returns the configured templates plus the "sample"
// template used by the demos, unless the file overrides it.
func (c *Config) DocumentTemplates() map[string]*document.Document {
	templates := map[string]*document.Document{"sample": document.Sample()}
	for name, doc := range c.Templates {
		templates[name] = doc
	}
	return templates
}

// LoadDotEnv loads KEY=value pairs from path into the environment without
// overriding variables that are already set. A missing file is not an error.
func LoadDotEnv(path string) error {
	if err := godotenv.Load(path); err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("failed to load %s: %w", path, err)
	}
	return nil
}

func (c *Config) applyEnv() error {
	overrides := map[string]*string{
		EnvLogLevel:     &c.LogLevel,
		EnvColor:        &c.Color,
		EnvPort:         &c.Server.Port,
		EnvRedisAddress: &c.Redis.Address,
		EnvRedisPass:    &c.Redis.Password,
		EnvTemplatesDir: &c.TemplatesDir,
	}
	for env, field := range overrides {
		if v, ok := os.LookupEnv(env); ok {
			*field = v
		}
	}
	if v, ok := os.LookupEnv(EnvRedisDB); ok {
		db, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("invalid %s %q: %w", EnvRedisDB, v, err)
		}
		c.Redis.DB = db
	}
	return nil
}
