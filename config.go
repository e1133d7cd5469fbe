package sheetbind

import (
	"github.com/aerissecure/sheetbind/source"
	"github.com/aerissecure/sheetbind/xlsx"
)

// Debug turns on import logging for every call.
var Debug = false

// Config holds the settings of one import call.
type Config struct {
	// MaxSize caps the uncompressed size of a source in bytes. <= 0 disables the check.
	MaxSize int64
	// Backend decodes xlsx sources.
	Backend xlsx.Backend
	// Encoding is the character set of delimited sources. Empty means UTF-8.
	Encoding string
	// Comma is the separator of delimited sources. Zero picks one from the extension.
	Comma rune
	// Strict fails on duplicate header labels and on schemas that bind no field.
	Strict bool
	// Debug logs this call even when the package level Debug is off.
	Debug bool
}

// DefaultConfig returns the settings used when no options are given.
func DefaultConfig() Config {
	return Config{
		MaxSize: source.DefaultMaxSize,
		Backend: xlsx.BackendUnioffice,
	}
}

// Option changes a Config.
type Option func(*Config)

// WithConfig replaces the whole config.
func WithConfig(c Config) Option {
	return func(dst *Config) { *dst = c }
}

func WithMaxSize(n int64) Option {
	return func(c *Config) { c.MaxSize = n }
}

func WithBackend(b xlsx.Backend) Option {
	return func(c *Config) { c.Backend = b }
}

func WithEncoding(name string) Option {
	return func(c *Config) { c.Encoding = name }
}

func WithComma(r rune) Option {
	return func(c *Config) { c.Comma = r }
}

func WithStrict(strict bool) Option {
	return func(c *Config) { c.Strict = strict }
}

func WithDebug(debug bool) Option {
	return func(c *Config) { c.Debug = debug }
}

func newConfig(opts []Option) Config {
	c := DefaultConfig()
	for _, o := range opts {
		o(&c)
	}
	return c
}
