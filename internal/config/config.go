// Package config loads CLI configuration from the environment.
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"

	courier "github.com/reoring/courier"
	"github.com/reoring/courier/i18n"
)

// Config holds the CLI settings. Flags override these values.
type Config struct {
	Format        string // "text" or "json"
	LogLevel      string
	LogFormat     string // "text" or "json"
	Lang          string
	DuplicateKeys string // "ignore", "warn" or "error"
	MaxDepth      int
	MaxBytes      int64
	JSONDriver    string
}

// Default returns the settings used when nothing is configured.
func Default() Config {
	return Config{
		Format:        "text",
		LogLevel:      "info",
		LogFormat:     "text",
		Lang:          "en",
		DuplicateKeys: "error",
		JSONDriver:    "go-json",
	}
}

// Load reads a .env file when present, then the COURIER_* variables.
func Load() (Config, error) {
	_ = godotenv.Load()

	def := Default()
	depth, err := envInt("COURIER_MAX_DEPTH", def.MaxDepth)
	if err != nil {
		return Config{}, fmt.Errorf("config: %w", err)
	}
	maxBytes, err := envInt("COURIER_MAX_BYTES", int(def.MaxBytes))
	if err != nil {
		return Config{}, fmt.Errorf("config: %w", err)
	}
	cfg := Config{
		Format:        envStr("COURIER_FORMAT", def.Format),
		LogLevel:      envStr("COURIER_LOG_LEVEL", def.LogLevel),
		LogFormat:     envStr("COURIER_LOG_FORMAT", def.LogFormat),
		Lang:          envStr("COURIER_LANG", def.Lang),
		DuplicateKeys: envStr("COURIER_DUPLICATE_KEYS", def.DuplicateKeys),
		MaxDepth:      depth,
		MaxBytes:      int64(maxBytes),
		JSONDriver:    envStr("COURIER_JSON_DRIVER", def.JSONDriver),
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate rejects unknown enum values and negative limits.
func (c Config) Validate() error {
	if !oneOf(c.Format, "text", "json") {
		return fmt.Errorf("config: COURIER_FORMAT must be text or json, got %q", c.Format)
	}
	if !oneOf(c.LogFormat, "text", "json") {
		return fmt.Errorf("config: COURIER_LOG_FORMAT must be text or json, got %q", c.LogFormat)
	}
	if !oneOf(strings.ToLower(c.LogLevel), "debug", "info", "warn", "error") {
		return fmt.Errorf("config: COURIER_LOG_LEVEL %q is not a level", c.LogLevel)
	}
	if !oneOf(c.Lang, i18n.Languages()...) {
		return fmt.Errorf("config: COURIER_LANG must be one of %s, got %q", strings.Join(i18n.Languages(), ", "), c.Lang)
	}
	if _, err := ParseSeverity(c.DuplicateKeys); err != nil {
		return fmt.Errorf("config: COURIER_DUPLICATE_KEYS: %w", err)
	}
	if c.MaxDepth < 0 {
		return fmt.Errorf("config: COURIER_MAX_DEPTH must not be negative")
	}
	if c.MaxBytes < 0 {
		return fmt.Errorf("config: COURIER_MAX_BYTES must not be negative")
	}
	if _, err := courier.ParseJSONDriver(c.JSONDriver); err != nil {
		return fmt.Errorf("config: COURIER_JSON_DRIVER: %w", err)
	}
	return nil
}

// DecodeOpt projects the limits onto courier.DecodeOpt. Call Validate first.
func (c Config) DecodeOpt() courier.DecodeOpt {
	sev, _ := ParseSeverity(c.DuplicateKeys)
	return courier.DecodeOpt{
		Strictness: courier.Strictness{OnDuplicateKey: sev},
		MaxDepth:   c.MaxDepth,
		MaxBytes:   c.MaxBytes,
	}
}

// ParseSeverity maps "ignore", "warn" and "error" to a courier.Severity.
func ParseSeverity(s string) (courier.Severity, error) {
	switch strings.ToLower(s) {
	case "ignore":
		return courier.Ignore, nil
	case "warn":
		return courier.Warn, nil
	case "error":
		return courier.Error, nil
	}
	return courier.Ignore, fmt.Errorf("unknown severity %q", s)
}

func oneOf(v string, allowed ...string) bool {
	for _, a := range allowed {
		if v == a {
			return true
		}
	}
	return false
}

func envStr(key, defaultVal string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return defaultVal
}

func envInt(key string, defaultVal int) (int, error) {
	v := os.Getenv(key)
	if v == "" {
		return defaultVal, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, fmt.Errorf("%s=%q is not a valid integer", key, v)
	}
	return n, nil
}
