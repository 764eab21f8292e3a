// Package config loads gopoly runtime settings and sample polynomials.
//
// Priority is env > file > defaults. Files may be YAML or JSON.
package config

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/njchilds90/gopoly"
)

// Term is one coefficient/exponent pair as written in a config file.
type Term struct {
	Coefficient float64 `json:"coefficient" yaml:"coefficient"`
	Exponent    int     `json:"exponent" yaml:"exponent"`
}

// Sample is a named polynomial, listed term by term.
type Sample struct {
	Name  string `json:"name" yaml:"name"`
	Terms []Term `json:"terms" yaml:"terms"`
}

// Polynomial builds the sample by inserting its terms in file order.
func (s Sample) Polynomial() (*gopoly.Polynomial, error) {
	p := gopoly.New()
	for i, t := range s.Terms {
		m, err := gopoly.NewMonomial(t.Coefficient, t.Exponent)
		if err != nil {
			return nil, fmt.Errorf("sample %s: term %d: %w", s.Name, i, err)
		}
		p.Insert(m)
	}
	return p, nil
}

type ServerConfig struct {
	Port         int    `json:"port" yaml:"port"`
	MaxBodyBytes int64  `json:"max_body_bytes" yaml:"max_body_bytes"`
	LogLevel     string `json:"log_level" yaml:"log_level"`
}

type Config struct {
	Server  ServerConfig `json:"server" yaml:"server"`
	Samples []Sample     `json:"samples" yaml:"samples"`
	Points  []float64    `json:"points" yaml:"points"`
}

// Default returns the built-in settings. The samples are
// P1 = 5x^11 + 25x^8 - 17x^5, P2 = 2x^4 - x^3 + 5x - 5, P3 = 15x^11, P4 = 1.
func Default() Config {
	return Config{
		Server: ServerConfig{
			Port:         8080,
			MaxBodyBytes: 1 << 20,
			LogLevel:     "info",
		},
		Samples: []Sample{
			{Name: "P1", Terms: []Term{{5, 11}, {25, 8}, {-17, 5}}},
			{Name: "P2", Terms: []Term{{2, 4}, {-1, 3}, {5, 1}, {-5, 0}}},
			{Name: "P3", Terms: []Term{{15, 11}}},
			{Name: "P4", Terms: []Term{{1, 0}}},
		},
		Points: []float64{-2.4, -1.7, 0, 1, 3, 7.7},
	}
}

// Load merges defaults, the optional file at path, and GOPOLY_* environment
// variables, then validates the result. A missing file is not an error.
func Load(path string) (Config, error) {
	cfg := Default()
	if path != "" {
		if err := loadFile(path, &cfg); err != nil {
			return cfg, fmt.Errorf("load config file: %w", err)
		}
	}
	loadEnv(&cfg)
	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

func loadFile(path string, cfg *Config) error {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return err
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		if jsonErr := json.Unmarshal(data, cfg); jsonErr != nil {
			return fmt.Errorf("parse config (tried YAML and JSON): YAML error: %v, JSON error: %w", err, jsonErr)
		}
	}
	return nil
}

func loadEnv(cfg *Config) {
	if v := os.Getenv("GOPOLY_PORT"); v != "" {
		if i, err := strconv.Atoi(v); err == nil {
			cfg.Server.Port = i
		}
	}
	if v := os.Getenv("GOPOLY_LOG_LEVEL"); v != "" {
		cfg.Server.LogLevel = v
	}
}

func (c Config) Validate() error {
	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		return fmt.Errorf("server.port out of range: %d", c.Server.Port)
	}
	if c.Server.MaxBodyBytes <= 0 {
		return fmt.Errorf("server.max_body_bytes must be positive")
	}
	if _, err := ParseLevel(c.Server.LogLevel); err != nil {
		return err
	}
	seen := map[string]bool{}
	for i, s := range c.Samples {
		if s.Name == "" {
			return fmt.Errorf("samples[%d]: missing name", i)
		}
		if seen[s.Name] {
			return fmt.Errorf("samples[%d]: duplicate name %q", i, s.Name)
		}
		seen[s.Name] = true
		if _, err := s.Polynomial(); err != nil {
			return err
		}
	}
	return nil
}

// Polynomials builds every sample, in config order.
func (c Config) Polynomials() ([]string, []*gopoly.Polynomial, error) {
	names := make([]string, 0, len(c.Samples))
	polys := make([]*gopoly.Polynomial, 0, len(c.Samples))
	for _, s := range c.Samples {
		p, err := s.Polynomial()
		if err != nil {
			return nil, nil, err
		}
		names = append(names, s.Name)
		polys = append(polys, p)
	}
	return names, polys, nil
}

// ParseLevel maps debug/info/warn/error onto slog levels.
func ParseLevel(s string) (slog.Level, error) {
	switch strings.ToLower(s) {
	case "debug":
		return slog.LevelDebug, nil
	case "info", "":
		return slog.LevelInfo, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	}
	return slog.LevelInfo, fmt.Errorf("unknown log level %q", s)
}

// NewLogger returns a JSON slog logger writing to stderr at the configured level.
func (c ServerConfig) NewLogger() *slog.Logger {
	level, _ := ParseLevel(c.LogLevel)
	return slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
}
