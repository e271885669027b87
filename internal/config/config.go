// Package config loads application configuration from the environment
// (supports a local .env file) and applies defaults. A missing .env is
// ignored, so with no file and no variables Load returns the defaults. None
// of it changes what is verified, only how the result is logged and
// presented.
//
// SPDX-License-Identifier: AGPL-3.0-or-later
package config

import (
	"log/slog"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"golang.org/x/text/language"
)

type Config struct {
	LogLevel slog.Level

	// Report presentation
	Lang   language.Tag // report language; en unless REPORT_LANG says otherwise
	Glyphs bool         // mark pass/fail lines with ✓/✗ instead of [PASS]/[FAIL]
}

func Load() *Config {
	// Load .env if present (ignored if missing)
	_ = godotenv.Load()

	return &Config{
		LogLevel: ParseLevel(getenvDefault("LOG_LEVEL", "INFO")),
		Lang:     ParseLang(getenvDefault("REPORT_LANG", "en")),
		Glyphs:   getenvBoolDefault("REPORT_GLYPHS", false),
	}
}

func getenvDefault(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}

func getenvBoolDefault(k string, def bool) bool {
	v := strings.ToLower(strings.TrimSpace(os.Getenv(k)))
	if v == "" {
		return def
	}
	switch v {
	case "1", "true", "yes", "on":
		return true
	case "0", "false", "no", "off":
		return false
	default:
		return def
	}
}

// ParseLevel maps a level name to slog. Unknown names mean INFO.
func ParseLevel(s string) slog.Level {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "DEBUG":
		return slog.LevelDebug
	case "WARN":
		return slog.LevelWarn
	case "ERROR":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// ParseLang parses a BCP 47 tag. Anything unparsable means English.
func ParseLang(s string) language.Tag {
	tag, err := language.Parse(strings.TrimSpace(s))
	if err != nil {
		return language.English
	}
	return tag
}
