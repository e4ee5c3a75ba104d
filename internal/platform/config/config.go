package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
	"gopkg.in/yaml.v3"
)

const stateDir = ".brightbuddy"

type Config struct {
	DataDir  string
	DBPath   string
	LogPath  string
	Settings Settings
}

// Settings are the user-tunable values read from config.yaml and BRIGHTBUDDY_* variables.
type Settings struct {
	Timezone     string `yaml:"timezone" env:"TIMEZONE"`
	Voice        bool   `yaml:"voice" env:"VOICE"`
	SpeechPlugin string `yaml:"speech_plugin" env:"SPEECH_PLUGIN"`
	LogLevel     string `yaml:"log_level" env:"LOG_LEVEL"`
}

func defaultSettings() Settings {
	return Settings{Voice: true, LogLevel: "info"}
}

func New(dataDir string) (Config, error) {
	if dataDir == "" {
		return Config{}, fmt.Errorf("data dir is required")
	}
	return Config{
		DataDir:  dataDir,
		DBPath:   filepath.Join(dataDir, stateDir, "brightbuddy.db"),
		LogPath:  filepath.Join(dataDir, stateDir, "brightbuddy.log"),
		Settings: defaultSettings(),
	}, nil
}

// Load builds the Config for dataDir, layering config.yaml and then the environment on top of the defaults.
func Load(dataDir string) (Config, error) {
	cfg, err := New(dataDir)
	if err != nil {
		return Config{}, err
	}
	raw, err := os.ReadFile(cfg.SettingsPath())
	switch {
	case err == nil:
		if err := yaml.Unmarshal(raw, &cfg.Settings); err != nil {
			return Config{}, fmt.Errorf("decode %s: %w", cfg.SettingsPath(), err)
		}
	case errors.Is(err, os.ErrNotExist):
	default:
		return Config{}, fmt.Errorf("read settings: %w", err)
	}
	if err := env.ParseWithOptions(&cfg.Settings, env.Options{Prefix: "BRIGHTBUDDY_"}); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	if _, err := cfg.Location(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c Config) SettingsPath() string {
	return filepath.Join(c.DataDir, stateDir, "config.yaml")
}

// Location resolves Settings.Timezone; an empty value means the machine's local zone.
func (c Config) Location() (*time.Location, error) {
	name := strings.TrimSpace(c.Settings.Timezone)
	if name == "" {
		return time.Local, nil
	}
	loc, err := time.LoadLocation(name)
	if err != nil {
		return nil, fmt.Errorf("load timezone %q: %w", name, err)
	}
	return loc, nil
}
