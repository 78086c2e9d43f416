package app

import (
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"

	"github.com/agentstation/bookshelf/pkg/constants"
	"github.com/agentstation/bookshelf/pkg/errors"
)

// Config holds the application configuration loaded from config files,
// environment variables and .env files.
type Config struct {
	// Global flags
	Verbose bool
	Quiet   bool
	NoColor bool
	Format  string

	// Config file actually read, if any
	ConfigFile string

	// Catalog configuration
	CatalogPath string
	AutoSave    bool

	// Logging configuration
	LogLevel  string
	LogFormat string
	LogOutput string
}

// LoadConfig loads configuration from all sources in order of precedence:
//  1. Command-line flags (applied later by UpdateFromFlags)
//  2. BOOKSHELF_* environment variables
//  3. .env files
//  4. Config file (configFile, or ~/.bookshelf.yaml / ./.bookshelf.yaml)
//  5. Defaults
func LoadConfig(configFile string) (*Config, error) {
	loadEnvFiles()

	v := viper.New()
	v.SetEnvPrefix(constants.EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()

	v.SetDefault("catalog", constants.DefaultCatalogFile)
	v.SetDefault("auto_save", true)
	v.SetDefault("format", "")

	if configFile != "" {
		v.SetConfigFile(configFile)
		if err := v.ReadInConfig(); err != nil {
			return nil, errors.NewConfigError("config", "reading "+configFile, err)
		}
	} else {
		if home, err := os.UserHomeDir(); err == nil {
			v.AddConfigPath(home)
		}
		v.AddConfigPath(".")
		v.SetConfigType("yaml")
		v.SetConfigName(constants.ConfigName)

		// A missing default config file is fine
		_ = v.ReadInConfig()
	}

	return &Config{
		Format:      v.GetString("format"),
		ConfigFile:  v.ConfigFileUsed(),
		CatalogPath: v.GetString("catalog"),
		AutoSave:    v.GetBool("auto_save"),

		LogLevel:  getEnvOrDefault("LOG_LEVEL", v.GetString("log_level")),
		LogFormat: getEnvOrDefault("LOG_FORMAT", "auto"),
		LogOutput: getEnvOrDefault("LOG_OUTPUT", "stderr"),
	}, nil
}

// UpdateFromFlags updates config values from parsed command flags so that
// explicit flags win over config files and the environment.
func (c *Config) UpdateFromFlags(f *flagValues) {
	c.Verbose = f.verbose
	c.Quiet = f.quiet
	c.NoColor = f.noColor
	if f.format != "" {
		c.Format = f.format
	}
	if f.logLevel != "" {
		c.LogLevel = f.logLevel
	}
	if f.catalog != "" {
		c.CatalogPath = f.catalog
	}
}

// loadEnvFiles loads environment variables from .env files.
// Variables already set in the environment are not overridden.
func loadEnvFiles() {
	for _, envFile := range []string{".env", ".env.local"} {
		_ = godotenv.Load(envFile)
	}
}

// getEnvOrDefault returns the environment variable value or the default if not set.
func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
