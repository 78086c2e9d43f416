package app

import (
	"testing"

	"github.com/rs/zerolog"
)

// TestDetermineLogLevel tests the log level precedence logic.
func TestDetermineLogLevel(t *testing.T) {
	tests := []struct {
		name     string
		config   *Config
		expected string
	}{
		{
			name:     "default level when no flags set",
			config:   &Config{},
			expected: "info",
		},
		{
			name:     "verbose flag sets debug",
			config:   &Config{Verbose: true},
			expected: "debug",
		},
		{
			name:     "quiet flag sets warn",
			config:   &Config{Quiet: true},
			expected: "warn",
		},
		{
			name:     "explicit log-level overrides verbose",
			config:   &Config{LogLevel: "error", Verbose: true},
			expected: "error",
		},
		{
			name:     "explicit log-level overrides quiet",
			config:   &Config{LogLevel: "trace", Quiet: true},
			expected: "trace",
		},
		{
			name:     "both verbose and quiet prefers quiet",
			config:   &Config{Verbose: true, Quiet: true},
			expected: "warn",
		},
		{
			name:     "invalid log level falls back to info",
			config:   &Config{LogLevel: "invalid"},
			expected: "info",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := determineLogLevel(tt.config)
			if result != tt.expected {
				t.Errorf("determineLogLevel() = %q, expected %q", result, tt.expected)
			}
		})
	}
}

// TestValidateLogLevel tests log level validation.
func TestValidateLogLevel(t *testing.T) {
	for _, level := range []string{"trace", "debug", "info", "warn", "error"} {
		if got := validateLogLevel(level); got != level {
			t.Errorf("validateLogLevel(%q) = %q", level, got)
		}
	}
	for _, level := range []string{"", "DEBUG", "verbose", "fatal"} {
		if got := validateLogLevel(level); got != "info" {
			t.Errorf("validateLogLevel(%q) = %q, want info", level, got)
		}
	}
}

// TestNewLogger verifies the logger honours the resolved level.
func TestNewLogger(t *testing.T) {
	oldLevel := zerolog.GlobalLevel()
	t.Cleanup(func() { zerolog.SetGlobalLevel(oldLevel) })

	logger := NewLogger(&Config{Verbose: true, LogFormat: "json", LogOutput: "discard"})
	if logger.GetLevel() != zerolog.DebugLevel {
		t.Errorf("level = %s, want debug", logger.GetLevel())
	}

	logger = NewLogger(&Config{Quiet: true, LogFormat: "json", LogOutput: "discard"})
	if logger.GetLevel() != zerolog.WarnLevel {
		t.Errorf("level = %s, want warn", logger.GetLevel())
	}
}
