package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	courier "github.com/reoring/courier"
)

func TestLoad_Defaults(t *testing.T) {
	for _, k := range []string{
		"COURIER_FORMAT", "COURIER_LOG_LEVEL", "COURIER_LOG_FORMAT", "COURIER_LANG",
		"COURIER_DUPLICATE_KEYS", "COURIER_MAX_DEPTH", "COURIER_MAX_BYTES", "COURIER_JSON_DRIVER",
	} {
		t.Setenv(k, "")
	}
	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "text", cfg.Format)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, "en", cfg.Lang)
	assert.Equal(t, "error", cfg.DuplicateKeys)
	assert.Equal(t, "go-json", cfg.JSONDriver)
	assert.Zero(t, cfg.MaxDepth)
}

func TestLoad_FromEnv(t *testing.T) {
	t.Setenv("COURIER_FORMAT", "json")
	t.Setenv("COURIER_LANG", "ja")
	t.Setenv("COURIER_DUPLICATE_KEYS", "warn")
	t.Setenv("COURIER_MAX_DEPTH", "64")
	t.Setenv("COURIER_MAX_BYTES", "1048576")
	t.Setenv("COURIER_JSON_DRIVER", "encoding/json")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "json", cfg.Format)
	assert.Equal(t, "ja", cfg.Lang)

	opt := cfg.DecodeOpt()
	assert.Equal(t, courier.Warn, opt.Strictness.OnDuplicateKey)
	assert.Equal(t, 64, opt.MaxDepth)
	assert.Equal(t, int64(1048576), opt.MaxBytes)
}

func TestLoad_InvalidInteger(t *testing.T) {
	t.Setenv("COURIER_MAX_DEPTH", "deep")
	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), `COURIER_MAX_DEPTH="deep" is not a valid integer`)
}

func TestValidate(t *testing.T) {
	base := Default()
	require.NoError(t, base.Validate())

	cases := map[string]func(*Config){
		"format":     func(c *Config) { c.Format = "yaml" },
		"log format": func(c *Config) { c.LogFormat = "xml" },
		"log level":  func(c *Config) { c.LogLevel = "loud" },
		"lang":       func(c *Config) { c.Lang = "fr" },
		"duplicates": func(c *Config) { c.DuplicateKeys = "sometimes" },
		"depth":      func(c *Config) { c.MaxDepth = -1 },
		"bytes":      func(c *Config) { c.MaxBytes = -1 },
		"driver":     func(c *Config) { c.JSONDriver = "sonic" },
	}
	for name, mutate := range cases {
		c := base
		mutate(&c)
		assert.Error(t, c.Validate(), name)
	}
}

func TestParseSeverity(t *testing.T) {
	sev, err := ParseSeverity("WARN")
	require.NoError(t, err)
	assert.Equal(t, courier.Warn, sev)
	_, err = ParseSeverity("")
	assert.Error(t, err)
}
