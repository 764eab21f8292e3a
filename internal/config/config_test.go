package config

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, name, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, 8080, cfg.Server.Port)
	assert.Len(t, cfg.Samples, 4)

	names, polys, err := cfg.Polynomials()
	require.NoError(t, err)
	assert.Equal(t, []string{"P1", "P2", "P3", "P4"}, names)
	assert.Equal(t, "+ 5 x^11 + 25 x^8 - 17 x^5", polys[0].String())
	assert.Equal(t, "+ 2 x^4 - x^3 + 5 x - 5", polys[1].String())
}

func TestLoad_MissingFileUsesDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.NoError(t, err)
	assert.Equal(t, Default().Points, cfg.Points)
}

func TestLoad_YAML(t *testing.T) {
	path := writeFile(t, "gopoly.yaml", `
server:
  port: 9090
  log_level: debug
samples:
  - name: Q
    terms:
      - {coefficient: 1, exponent: 1}
      - {coefficient: -1, exponent: 0}
points: [0, 2]
`)
	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 9090, cfg.Server.Port)
	assert.Equal(t, "debug", cfg.Server.LogLevel)
	assert.Equal(t, int64(1<<20), cfg.Server.MaxBodyBytes)
	require.Len(t, cfg.Samples, 1)
	p, err := cfg.Samples[0].Polynomial()
	require.NoError(t, err)
	assert.Equal(t, "+ x - 1", p.String())
	assert.Equal(t, []float64{0, 2}, cfg.Points)
}

func TestLoad_JSONFallback(t *testing.T) {
	path := writeFile(t, "gopoly.json", `{"server":{"port":7000,"max_body_bytes":10,"log_level":"warn"}}`)
	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 7000, cfg.Server.Port)
	assert.Equal(t, int64(10), cfg.Server.MaxBodyBytes)
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("GOPOLY_PORT", "6060")
	t.Setenv("GOPOLY_LOG_LEVEL", "error")
	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, 6060, cfg.Server.Port)
	assert.Equal(t, "error", cfg.Server.LogLevel)
}

func TestLoad_Invalid(t *testing.T) {
	tests := []struct {
		name string
		body string
		want string
	}{
		{"negative exponent", "samples:\n  - name: A\n    terms:\n      - {coefficient: 1, exponent: -2}\n", "nonnegative"},
		{"duplicate sample", "samples:\n  - name: A\n  - name: A\n", "duplicate name"},
		{"unnamed sample", "samples:\n  - terms: []\n", "missing name"},
		{"bad port", "server:\n  port: 70000\n", "server.port"},
		{"bad level", "server:\n  log_level: loud\n", "unknown log level"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(writeFile(t, "c.yaml", tt.body))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}

func TestParseLevel(t *testing.T) {
	lvl, err := ParseLevel("WARN")
	require.NoError(t, err)
	assert.Equal(t, slog.LevelWarn, lvl)
}
