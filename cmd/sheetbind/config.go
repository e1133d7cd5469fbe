package main

import (
	"fmt"
	"os"
	"strconv"
	"unicode/utf8"

	"github.com/joho/godotenv"

	"github.com/aerissecure/sheetbind"
	"github.com/aerissecure/sheetbind/xlsx"
)

// LoadConfig reads SHEETBIND_* variables, after loading envFile when it exists,
// on top of sheetbind.DefaultConfig.
func LoadConfig(envFile string) (sheetbind.Config, error) {
	if envFile != "" {
		if err := godotenv.Load(envFile); err != nil && !os.IsNotExist(err) {
			return sheetbind.Config{}, fmt.Errorf("loading %s: %w", envFile, err)
		}
	}

	cfg := sheetbind.DefaultConfig()

	if v := os.Getenv("SHEETBIND_MAX_SIZE"); v != "" {
		n, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return cfg, fmt.Errorf("SHEETBIND_MAX_SIZE: %w", err)
		}
		cfg.MaxSize = n
	}
	if v := os.Getenv("SHEETBIND_BACKEND"); v != "" {
		b, err := xlsx.ParseBackend(v)
		if err != nil {
			return cfg, fmt.Errorf("SHEETBIND_BACKEND: %w", err)
		}
		cfg.Backend = b
	}
	cfg.Encoding = os.Getenv("SHEETBIND_ENCODING")
	if v := os.Getenv("SHEETBIND_COMMA"); v != "" {
		r, err := parseComma(v)
		if err != nil {
			return cfg, fmt.Errorf("SHEETBIND_COMMA: %w", err)
		}
		cfg.Comma = r
	}
	for name, dst := range map[string]*bool{
		"SHEETBIND_STRICT": &cfg.Strict,
		"SHEETBIND_DEBUG":  &cfg.Debug,
	} {
		if v := os.Getenv(name); v != "" {
			b, err := strconv.ParseBool(v)
			if err != nil {
				return cfg, fmt.Errorf("%s: %w", name, err)
			}
			*dst = b
		}
	}
	return cfg, nil
}

// parseComma accepts a single character or the word "tab".
func parseComma(s string) (rune, error) {
	if s == "tab" || s == `\t` {
		return '\t', nil
	}
	r, size := utf8.DecodeRuneInString(s)
	if r == utf8.RuneError || size != len(s) {
		return 0, fmt.Errorf("separator must be one character, got %q", s)
	}
	return r, nil
}
