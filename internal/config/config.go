package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Metadata describes the recording session. It is written verbatim into the
// LaTeX preamble as macro definitions.
type Metadata struct {
	Informant      string   `yaml:"informant"`
	Expeditioner   string   `yaml:"expeditioner"`
	ExpeditionDate string   `yaml:"expedition_date"`
	WhoElse        string   `yaml:"who_else"`
	Theme          string   `yaml:"theme"`
	Languages      []string `yaml:"languages"`
}

// Config holds the full application configuration.
type Config struct {
	Metadata `yaml:"metadata"`

	Author        string  `yaml:"author"`
	Media         string  `yaml:"media"`
	TemplatesDir  string  `yaml:"templates_dir"`
	MaxConcurrent int     `yaml:"max_concurrent"`
	WatchRate     float64 `yaml:"watch_rate"`
}

// Default returns a Config with hardcoded defaults.
func Default() *Config {
	return &Config{
		Metadata: Metadata{
			Languages: DefaultLanguages(),
		},
		MaxConcurrent: 4,
		WatchRate:     2,
	}
}

// Load returns the defaults overlaid with the YAML file at path (if path is
// not empty) and then with GLOSSCONV_* environment variables.
func Load(path string) (*Config, error) {
	cfg := Default()
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read config: %w", err)
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse config %s: %w", path, err)
		}
	}
	if err := cfg.applyEnv(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// LoadDotEnv loads KEY=VALUE pairs from path into the environment. A missing
// file is not an error. Variables already set are left alone.
func LoadDotEnv(path string) error {
	if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) {
		return nil
	}
	if err := godotenv.Load(path); err != nil {
		return fmt.Errorf("load %s: %w", path, err)
	}
	return nil
}

func (c *Config) applyEnv() error {
	c.Informant = envOrDefault("GLOSSCONV_INFORMANT", c.Informant)
	c.Expeditioner = envOrDefault("GLOSSCONV_EXPEDITIONER", c.Expeditioner)
	c.ExpeditionDate = envOrDefault("GLOSSCONV_EXPEDITION_DATE", c.ExpeditionDate)
	c.WhoElse = envOrDefault("GLOSSCONV_WHO_ELSE", c.WhoElse)
	c.Theme = envOrDefault("GLOSSCONV_THEME", c.Theme)
	c.Author = envOrDefault("GLOSSCONV_AUTHOR", c.Author)
	c.Media = envOrDefault("GLOSSCONV_MEDIA", c.Media)
	c.TemplatesDir = envOrDefault("GLOSSCONV_TEMPLATES", c.TemplatesDir)
	if v := os.Getenv("GLOSSCONV_LANGUAGES"); v != "" {
		c.Languages = ParseLanguages(v)
	}
	if v := os.Getenv("GLOSSCONV_MAX_CONCURRENT"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("GLOSSCONV_MAX_CONCURRENT: %w", err)
		}
		c.MaxConcurrent = n
	}
	return nil
}

func envOrDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
