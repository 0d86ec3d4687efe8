package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/caarlos0/env/v11"
	"gopkg.in/yaml.v3"
)

const (
	EngineTraversal = "traversal"
	EngineSQL       = "sql"

	DefaultHTTPAddr = ":8000"
	DefaultLogLevel = "info"
)

var ErrNoOntology = errors.New("ontology path is required")

type ProjectConfig struct {
	Project  string         `yaml:"project"`
	Version  int            `yaml:"version"`
	Ontology OntologyConfig `yaml:"ontology"`
	Engine   string         `yaml:"engine" env:"ONTOLOSAFI_ENGINE"`
	Database DatabaseConfig `yaml:"database"`
	HTTP     HTTPConfig     `yaml:"http"`
	Log      LogConfig      `yaml:"log"`
}

type OntologyConfig struct {
	Path   string `yaml:"path" env:"ONTOLOSAFI_ONTOLOGY_PATH"`
	Format string `yaml:"format,omitempty"`
}

type DatabaseConfig struct {
	DSN string `yaml:"dsn,omitempty" env:"ONTOLOSAFI_DATABASE_DSN"`
}

type HTTPConfig struct {
	Addr string `yaml:"addr" env:"ONTOLOSAFI_HTTP_ADDR"`
}

type LogConfig struct {
	Level string `yaml:"level" env:"ONTOLOSAFI_LOG_LEVEL"`
}

// SlogLevel maps the configured level onto slog, info when unparsable.
func (l LogConfig) SlogLevel() slog.Level {
	var level slog.Level
	if err := level.UnmarshalText([]byte(l.Level)); err != nil {
		return slog.LevelInfo
	}
	return level
}

// Default is the configuration written by `ontolosafi init`.
func Default(project string) *ProjectConfig {
	return &ProjectConfig{
		Project:  project,
		Version:  1,
		Ontology: OntologyConfig{Path: "ontolosafi.rdf"},
		Engine:   EngineTraversal,
		HTTP:     HTTPConfig{Addr: DefaultHTTPAddr},
		Log:      LogConfig{Level: DefaultLogLevel},
	}
}

func LoadProjectConfig(path string) (*ProjectConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("loading project config: %w", err)
	}

	var cfg ProjectConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("loading project config: %w", err)
	}

	if err := env.Parse(&cfg); err != nil {
		return nil, fmt.Errorf("loading project config: parsing environment: %w", err)
	}

	applyDefaults(&cfg)

	if err := validateProjectConfig(&cfg); err != nil {
		return nil, fmt.Errorf("loading project config: %w", err)
	}

	return &cfg, nil
}

func applyDefaults(cfg *ProjectConfig) {
	if strings.TrimSpace(cfg.Engine) == "" {
		cfg.Engine = EngineTraversal
	}
	if strings.TrimSpace(cfg.HTTP.Addr) == "" {
		cfg.HTTP.Addr = DefaultHTTPAddr
	}
	if strings.TrimSpace(cfg.Log.Level) == "" {
		cfg.Log.Level = DefaultLogLevel
	}
}

func validateProjectConfig(cfg *ProjectConfig) error {
	if strings.TrimSpace(cfg.Project) == "" {
		return fmt.Errorf("project name is required")
	}
	if cfg.Version != 1 {
		return fmt.Errorf("unsupported version: %d", cfg.Version)
	}
	if strings.TrimSpace(cfg.Ontology.Path) == "" {
		return ErrNoOntology
	}

	switch cfg.Engine {
	case EngineTraversal:
	case EngineSQL:
		if strings.TrimSpace(cfg.Database.DSN) == "" {
			return fmt.Errorf("database dsn is required for the %s engine", EngineSQL)
		}
	default:
		return fmt.Errorf("unknown engine: %s", cfg.Engine)
	}

	var level slog.Level
	if err := level.UnmarshalText([]byte(cfg.Log.Level)); err != nil {
		return fmt.Errorf("invalid log level: %s", cfg.Log.Level)
	}

	return nil
}
