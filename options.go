package bookshelf

import (
	"github.com/rs/zerolog"

	"github.com/agentstation/bookshelf/pkg/catalogs"
	"github.com/agentstation/bookshelf/pkg/errors"
	"github.com/agentstation/bookshelf/pkg/logging"
)

// Option is a function that configures a Library instance
type Option func(*config) error

// config holds the configuration for a Library instance
type config struct {
	path           string
	autoSave       bool
	initialCatalog catalogs.Catalog
	logger         *zerolog.Logger
}

func defaultConfig() *config {
	return &config{
		logger: logging.Default(),
	}
}

// WithPath configures the working catalog file.
func WithPath(path string) Option {
	return func(c *config) error {
		if path == "" {
			return errors.NewValidationError("path", path, "cannot be empty")
		}
		c.path = path
		return nil
	}
}

// WithAutoSave configures whether every change is written to the working file.
func WithAutoSave(enabled bool) Option {
	return func(c *config) error {
		c.autoSave = enabled
		return nil
	}
}

// WithInitialCatalog configures the initial catalog to use.
// The working file is not read when an initial catalog is given.
func WithInitialCatalog(catalog catalogs.Catalog) Option {
	return func(c *config) error {
		if catalog == nil {
			return errors.NewValidationError("catalog", nil, "cannot be nil")
		}
		c.initialCatalog = catalog
		return nil
	}
}

// WithLogger configures the logger used for library events.
func WithLogger(logger *zerolog.Logger) Option {
	return func(c *config) error {
		if logger != nil {
			c.logger = logger
		}
		return nil
	}
}
