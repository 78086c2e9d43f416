// Package save holds the options accepted by catalog save operations.
package save

import (
	"io"
	"path/filepath"
	"strings"

	"github.com/agentstation/bookshelf/pkg/errors"
)

// Format is an on-disk catalog encoding.
type Format int

// Format constants. FormatAuto picks the format from the target path.
const (
	FormatAuto Format = iota
	FormatYAML
	FormatJSON
	FormatCSV
)

// IsValid checks if the format is valid.
func (f Format) IsValid() bool {
	switch f {
	case FormatAuto, FormatYAML, FormatJSON, FormatCSV:
		return true
	default:
		return false
	}
}

// String returns the string representation of the format.
func (f Format) String() string {
	switch f {
	case FormatAuto:
		return "auto"
	case FormatYAML:
		return "yaml"
	case FormatJSON:
		return "json"
	case FormatCSV:
		return "csv"
	}
	return "unknown"
}

// ParseFormat converts a user supplied name into a Format.
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "auto":
		return FormatAuto, nil
	case "yaml", "yml":
		return FormatYAML, nil
	case "json":
		return FormatJSON, nil
	case "csv":
		return FormatCSV, nil
	default:
		return FormatAuto, errors.NewValidationError("format", s, "must be one of: yaml, json, csv")
	}
}

// FormatFromPath infers the format from a file extension.
// Unknown extensions fall back to YAML, the canonical format.
func FormatFromPath(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return FormatJSON
	case ".csv":
		return FormatCSV
	default:
		return FormatYAML
	}
}

// Resolve returns f, or the format inferred from path when f is FormatAuto.
func (f Format) Resolve(path string) Format {
	if f == FormatAuto {
		return FormatFromPath(path)
	}
	return f
}

// Options is the configuration for save.
type Options struct {
	path   string
	writer io.Writer
	format Format
}

// Path returns the path for the save options.
func (s *Options) Path() string {
	return s.path
}

// Writer returns the writer for the save options.
func (s *Options) Writer() io.Writer {
	return s.writer
}

// Format returns the format for the save options.
func (s *Options) Format() Format {
	return s.format
}

// Defaults returns the default save options.
func Defaults() *Options {
	return &Options{
		format: FormatAuto,
	}
}

// Apply applies the given options to the save options.
func (s *Options) Apply(opts ...Option) Options {
	for _, opt := range opts {
		opt(s)
	}
	return *s
}

// Option is a function that configures save options.
type Option func(*Options)

// WithFormat for custom output format.
func WithFormat(f Format) Option {
	return func(s *Options) {
		s.format = f
	}
}

// WithPath for filesystem saves.
func WithPath(path string) Option {
	return func(s *Options) {
		s.path = path
	}
}

// WithWriter for custom outputs. A writer takes precedence over a path.
func WithWriter(w io.Writer) Option {
	return func(s *Options) {
		s.writer = w
	}
}
