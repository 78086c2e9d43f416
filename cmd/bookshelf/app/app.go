// Package app provides the application context and dependency management
// for the bookshelf CLI. It centralizes configuration, logging and the
// library instance shared by every command.
package app

import (
	"context"
	"io"
	"sync"

	"github.com/rs/zerolog"

	"github.com/agentstation/bookshelf"
	"github.com/agentstation/bookshelf/pkg/errors"
)

// App represents the bookshelf application with all its dependencies.
type App struct {
	// Version information
	version string
	commit  string
	date    string
	builtBy string

	config *Config
	logger *zerolog.Logger
	flags  *flagValues

	// stdout and stdin overrides, mainly for tests
	out io.Writer
	in  io.Reader

	// Library instance (lazy-initialized, singleton)
	mu      sync.RWMutex
	library bookshelf.Library
}

// New creates a new App instance with the given version information.
func New(version, commit, date, builtBy string, opts ...Option) (*App, error) {
	app := &App{
		version: version,
		commit:  commit,
		date:    date,
		builtBy: builtBy,
		flags:   &flagValues{},
	}

	config, err := LoadConfig("")
	if err != nil {
		return nil, err
	}
	app.config = config

	logger := NewLogger(config)
	app.logger = &logger

	for _, opt := range opts {
		if err := opt(app); err != nil {
			return nil, err
		}
	}

	return app, nil
}

// Version returns the version information.
func (a *App) Version() string {
	return a.version
}

// Commit returns the git commit hash.
func (a *App) Commit() string {
	return a.commit
}

// Date returns the build date.
func (a *App) Date() string {
	return a.date
}

// BuiltBy returns the build system identifier.
func (a *App) BuiltBy() string {
	return a.builtBy
}

// Config returns the application configuration.
func (a *App) Config() *Config {
	return a.config
}

// Logger returns the application logger.
func (a *App) Logger() *zerolog.Logger {
	return a.logger
}

// OutputFormat returns the configured output format.
func (a *App) OutputFormat() string {
	return a.config.Format
}

// Library returns the library for the working catalog file, creating it
// lazily on first use. Safe for concurrent use.
func (a *App) Library() (bookshelf.Library, error) {
	a.mu.RLock()
	if a.library != nil {
		lib := a.library
		a.mu.RUnlock()
		return lib, nil
	}
	a.mu.RUnlock()

	a.mu.Lock()
	defer a.mu.Unlock()

	// Double-check after acquiring write lock
	if a.library != nil {
		return a.library, nil
	}

	lib, err := bookshelf.New(a.libraryOptions()...)
	if err != nil {
		return nil, err
	}

	a.library = lib
	return lib, nil
}

// Shutdown performs graceful shutdown of the application.
// Nothing is written here: mutating commands persist as they go.
func (a *App) Shutdown(ctx context.Context) error {
	a.mu.RLock()
	lib := a.library
	a.mu.RUnlock()

	if lib != nil {
		a.logger.Debug().Str("path", lib.Path()).Msg("Shutting down")
	}
	return ctx.Err()
}

// libraryOptions constructs library options from the app configuration.
func (a *App) libraryOptions() []bookshelf.Option {
	opts := []bookshelf.Option{
		bookshelf.WithLogger(a.logger),
		bookshelf.WithAutoSave(a.config.AutoSave),
	}
	if a.config.CatalogPath != "" {
		opts = append(opts, bookshelf.WithPath(a.config.CatalogPath))
	}
	return opts
}

// Option is a functional option for configuring the App.
type Option func(*App) error

// WithConfig sets a custom configuration.
func WithConfig(config *Config) Option {
	return func(a *App) error {
		if config == nil {
			return errors.NewValidationError("config", nil, "cannot be nil")
		}
		a.config = config
		return nil
	}
}

// WithLogger sets a custom logger.
func WithLogger(logger *zerolog.Logger) Option {
	return func(a *App) error {
		a.logger = logger
		return nil
	}
}

// WithLibrary sets a custom library instance (useful for testing).
func WithLibrary(lib bookshelf.Library) Option {
	return func(a *App) error {
		a.library = lib
		return nil
	}
}

// WithIO redirects command input and output.
func WithIO(in io.Reader, out io.Writer) Option {
	return func(a *App) error {
		a.in = in
		a.out = out
		return nil
	}
}
