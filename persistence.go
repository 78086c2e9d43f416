package bookshelf

import (
	"github.com/agentstation/bookshelf/pkg/catalogs"
	"github.com/agentstation/bookshelf/pkg/errors"
	"github.com/agentstation/bookshelf/pkg/save"
)

// Compile-time interface check to ensure proper implementation.
var _ Persistence = (*library)(nil)

// Persistence handles catalog persistence operations.
type Persistence interface {
	// Save writes the catalog; without options it goes to the working file
	Save(opts ...save.Option) error

	// SaveTo writes the catalog to path, format by extension
	SaveTo(path string) error

	// Load re-reads the working file
	Load() error

	// LoadFrom replaces the catalog with the contents of path
	LoadFrom(path string) error
}

// Save persists the catalog. Options override the working file.
func (l *library) Save(opts ...save.Option) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.config.path != "" {
		opts = append([]save.Option{save.WithPath(l.config.path)}, opts...)
	}
	return l.catalog.Save(opts...)
}

// SaveTo writes the catalog to path without changing the working file.
func (l *library) SaveTo(path string) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.catalog.SaveToFile(path)
}

// Load replaces the catalog with the working file's contents.
func (l *library) Load() error {
	if l.config.path == "" {
		return &errors.ConfigError{
			Component: "library",
			Message:   "no working file configured",
		}
	}
	return l.LoadFrom(l.config.path)
}

// LoadFrom replaces the catalog with the contents of path. On failure the
// current catalog is kept. With auto-save on, a catalog loaded from another
// file is written to the working file; if that write fails the previous
// catalog is restored.
func (l *library) LoadFrom(path string) error {
	loaded := catalogs.New()
	if err := loaded.LoadFromFile(path); err != nil {
		return err
	}

	l.mu.Lock()
	var before catalogs.Catalog
	if path != l.config.path {
		before = l.snapshot()
	}
	l.catalog.ReplaceWith(loaded)
	err := l.autoSave(before)
	l.mu.Unlock()

	if err != nil {
		return err
	}
	l.logger.Info().Str("path", path).Int("books", loaded.Len()).Msg("Catalog loaded")
	l.hooks.catalogLoaded(path, loaded.Len())
	return nil
}
