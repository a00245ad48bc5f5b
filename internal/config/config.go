// Package config resolves lazyroster's settings from a YAML file, a .env
// file, the environment and command-line flags, in increasing precedence.
package config

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"github.com/katyella/lazyroster/internal/constants"
	apperrors "github.com/katyella/lazyroster/internal/errors"
)

// Config holds everything needed to fetch and show one roster.
type Config struct {
	APIKey  string `yaml:"api_key"`
	Team    string `yaml:"team"`
	BaseURL string `yaml:"base_url"`
	League  string `yaml:"league"`
	Fixture string `yaml:"fixture"`
	Debug   bool   `yaml:"debug"`
}

// LoadOptions points Load at non-default files. Empty fields use defaults.
type LoadOptions struct {
	// ConfigPath must exist when set; the default path is optional.
	ConfigPath string
	DotEnvPath string
}

// Default returns the built-in settings
func Default() *Config {
	return &Config{
		Team:    constants.DefaultTeam,
		BaseURL: constants.DefaultBaseURL,
		League:  constants.DefaultLeague,
	}
}

// DefaultConfigPath returns ~/.lazyroster/config.yaml, or "" without a home directory
func DefaultConfigPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, constants.ConfigDirName, constants.ConfigFileName)
}

// Load merges defaults, the YAML file, the .env file and the environment.
// It does not validate; call Validate once flags have been applied.
func Load(opts LoadOptions) (*Config, error) {
	cfg := Default()

	path := opts.ConfigPath
	required := path != ""
	if !required {
		path = DefaultConfigPath()
	}
	if err := cfg.mergeFile(path, required); err != nil {
		return nil, err
	}

	dotenvPath := opts.DotEnvPath
	if dotenvPath == "" {
		dotenvPath = constants.DotEnvFileName
	}
	dotenv, err := readDotEnv(dotenvPath)
	if err != nil {
		return nil, err
	}

	lookup := func(key string) string {
		if v := strings.TrimSpace(os.Getenv(key)); v != "" {
			return v
		}
		return strings.TrimSpace(dotenv[key])
	}

	setIfPresent(&cfg.APIKey, lookup(constants.EnvAPIKey))
	setIfPresent(&cfg.Team, lookup(constants.EnvTeam))
	setIfPresent(&cfg.BaseURL, lookup(constants.EnvBaseURL))
	setIfPresent(&cfg.League, lookup(constants.EnvLeague))

	return cfg, nil
}

// Validate reports settings that make fetching impossible
func (c *Config) Validate() error {
	if strings.TrimSpace(c.Team) == "" {
		return apperrors.New(apperrors.ErrorConfiguration, constants.ErrMissingTeam)
	}
	if c.Fixture == "" && strings.TrimSpace(c.APIKey) == "" {
		return apperrors.New(apperrors.ErrorConfiguration, constants.ErrMissingAPIKey)
	}
	return nil
}

func (c *Config) mergeFile(path string, required bool) error {
	if path == "" {
		return nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if !required && errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return apperrors.NewConfigError("read config file", err).WithContext("path", path)
	}

	if err := yaml.Unmarshal(data, c); err != nil {
		return apperrors.NewConfigError("parse config file", err).WithContext("path", path)
	}
	return nil
}

func readDotEnv(path string) (map[string]string, error) {
	values, err := godotenv.Read(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return map[string]string{}, nil
		}
		return nil, apperrors.NewConfigError("read .env file", err).WithContext("path", path)
	}
	return values, nil
}

func setIfPresent(dst *string, value string) {
	if value != "" {
		*dst = value
	}
}
