package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// DefaultConfigFile is read when PONG_CONFIG is unset and the file exists
const DefaultConfigFile = "pong.yaml"

// WindowConfig holds window settings
type WindowConfig struct {
	Title string `yaml:"title"`
}

// LogConfig holds logger settings
type LogConfig struct {
	Level  string `yaml:"level"`  // debug, info, warn, error
	Format string `yaml:"format"` // json or console
}

// MetricsConfig holds the metrics endpoint settings. An empty Addr disables it.
type MetricsConfig struct {
	Addr string `yaml:"addr"`
}

// AudioConfig holds sound settings. Volume 0 turns sound off.
type AudioConfig struct {
	Volume float64 `yaml:"volume"`
}

// DebugConfig holds developer toggles
type DebugConfig struct {
	Colliders bool `yaml:"colliders"` // Outline every physics collider
}

// AppConfig holds the complete application configuration. None of it
// changes the rules of the match.
type AppConfig struct {
	Window  WindowConfig  `yaml:"window"`
	Log     LogConfig     `yaml:"log"`
	Metrics MetricsConfig `yaml:"metrics"`
	Audio   AudioConfig   `yaml:"audio"`
	Debug   DebugConfig   `yaml:"debug"`
}

// Default returns the built-in configuration
func Default() AppConfig {
	return AppConfig{
		Window:  WindowConfig{Title: "Pong"},
		Log:     LogConfig{Level: "info", Format: "json"},
		Metrics: MetricsConfig{Addr: ""},
		Audio:   AudioConfig{Volume: 0.5},
		Debug:   DebugConfig{Colliders: false},
	}
}

// Load builds the configuration: defaults, then the YAML file, then
// environment variables. A .env file in the working directory is loaded into
// the environment first if present.
func Load() (AppConfig, error) {
	// Missing .env is fine
	_ = godotenv.Load()

	cfg := Default()

	path := os.Getenv("PONG_CONFIG")
	required := path != ""
	if path == "" {
		path = DefaultConfigFile
	}

	if err := cfg.mergeFile(path, required); err != nil {
		return cfg, err
	}

	cfg.applyEnv()
	return cfg, nil
}

// mergeFile overlays a YAML file onto cfg. A missing optional file is not an error.
func (c *AppConfig) mergeFile(path string, required bool) error {
	data, err := os.ReadFile(path)
	if err != nil {
		if !required && errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("read config %s: %w", path, err)
	}
	return c.MergeYAML(data)
}

// MergeYAML overlays YAML-encoded settings onto c. Keys absent from the
// document keep their current values.
func (c *AppConfig) MergeYAML(data []byte) error {
	if err := yaml.Unmarshal(data, c); err != nil {
		return fmt.Errorf("decode config: %w", err)
	}
	return nil
}

func (c *AppConfig) applyEnv() {
	if v := os.Getenv("PONG_WINDOW_TITLE"); v != "" {
		c.Window.Title = v
	}
	if v := os.Getenv("PONG_LOG_LEVEL"); v != "" {
		c.Log.Level = strings.ToLower(v)
	}
	if v := os.Getenv("PONG_LOG_FORMAT"); v != "" {
		c.Log.Format = strings.ToLower(v)
	}
	if v, ok := os.LookupEnv("PONG_METRICS_ADDR"); ok {
		c.Metrics.Addr = v
	}
	c.Audio.Volume = getEnvFloat("PONG_AUDIO_VOLUME", c.Audio.Volume)
	c.Debug.Colliders = getEnvBool("PONG_DEBUG_COLLIDERS", c.Debug.Colliders)
}

func getEnvBool(key string, defaultVal bool) bool {
	if v := os.Getenv(key); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			return b
		}
	}
	return defaultVal
}

func getEnvFloat(key string, defaultVal float64) float64 {
	if v := os.Getenv(key); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			return f
		}
	}
	return defaultVal
}
