// Package bookshelf manages a small library catalog backed by a working file.
//
// A Library wraps a catalogs.Catalog with an optional working file. The file
// is loaded when the library is created, can be written back after every
// change, and callbacks can be registered for catalog events.
//
// With auto-save on, a change whose write fails is undone: the call returns
// the write error and the catalog is left as it was before the call.
//
//	lib, err := bookshelf.New(
//	    bookshelf.WithPath("library.yaml"),
//	    bookshelf.WithAutoSave(true),
//	)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	lib.OnBookBorrowed(func(book catalogs.Book) {
//	    fmt.Printf("%s: %d left\n", book.Title, book.Quantity)
//	})
//	ok, err := lib.Borrow("Dune")
package bookshelf

import (
	"fmt"
	"sync"

	"github.com/rs/zerolog"

	"github.com/agentstation/bookshelf/internal/persistence"
	"github.com/agentstation/bookshelf/pkg/catalogs"
)

// Library manages a catalog, its working file and event hooks.
type Library interface {
	// Catalog returns a copy of the current catalog
	Catalog() catalogs.Catalog

	// Path returns the working file, or "" when there is none
	Path() string

	// AddBook inserts or overwrites a book. A failed auto-save undoes it
	AddBook(title, author string, location catalogs.Location, quantity int) error

	// Lookups by title
	Book(title string) (catalogs.Book, error)
	Location(title string) (catalogs.Location, error)
	Quantity(title string) (int, error)

	// List returns every book ascending by title
	List() []catalogs.Book

	// Borrow takes one copy; false means none were left. A failed
	// auto-save puts the copy back and returns false with the error
	Borrow(title string) (bool, error)

	// Return puts one copy back; a failed auto-save takes it out again
	Return(title string) (bool, error)

	Persistence

	// OnBookAdded registers a callback for added or overwritten books
	OnBookAdded(BookAddedHook)

	// OnBookBorrowed registers a callback for successful borrows
	OnBookBorrowed(BookBorrowedHook)

	// OnBookReturned registers a callback for returns
	OnBookReturned(BookReturnedHook)

	// OnCatalogLoaded registers a callback for successful loads
	OnCatalogLoaded(CatalogLoadedHook)
}

// library is the internal implementation of the Library interface
type library struct {
	mu      sync.Mutex
	catalog catalogs.Catalog
	config  *config
	logger  *zerolog.Logger

	// Event hooks
	hooks *hooks
}

// New creates a Library. With WithPath the working file is loaded when it
// exists; a missing file means an empty catalog.
func New(opts ...Option) (Library, error) {
	cfg := defaultConfig()
	for _, opt := range opts {
		if err := opt(cfg); err != nil {
			return nil, fmt.Errorf("applying options: %w", err)
		}
	}

	lib := &library{
		config: cfg,
		logger: cfg.logger,
		hooks:  newHooks(),
	}

	switch {
	case cfg.initialCatalog != nil:
		lib.catalog = cfg.initialCatalog
	default:
		lib.catalog = catalogs.New(catalogs.WithPath(cfg.path))
		if cfg.path != "" && persistence.Exists(cfg.path) {
			if err := lib.catalog.LoadFromFile(cfg.path); err != nil {
				return nil, fmt.Errorf("loading working catalog: %w", err)
			}
			lib.logger.Debug().
				Str("path", cfg.path).
				Int("books", lib.catalog.Len()).
				Msg("Loaded working catalog")
		}
	}

	return lib, nil
}

// Catalog returns a copy of the current catalog
func (l *library) Catalog() catalogs.Catalog {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.catalog.Copy()
}

// Path returns the working file.
func (l *library) Path() string {
	return l.config.path
}

// AddBook inserts or overwrites a book and fires OnBookAdded.
func (l *library) AddBook(title, author string, location catalogs.Location, quantity int) error {
	l.mu.Lock()
	before := l.snapshot()
	replaced := l.catalog.Books().Exists(title)
	l.catalog.AddBook(title, author, location, quantity)
	book, _ := l.catalog.Book(title)
	err := l.autoSave(before)
	l.mu.Unlock()

	if err != nil {
		return err
	}
	l.logger.Debug().Str("title", title).Bool("replaced", replaced).Msg("Book added")
	l.hooks.bookAdded(book)
	return nil
}

// Book returns the full record for title.
func (l *library) Book(title string) (catalogs.Book, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.catalog.Book(title)
}

// Location returns where title is shelved.
func (l *library) Location(title string) (catalogs.Location, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.catalog.Location(title)
}

// Quantity returns the copies of title on hand.
func (l *library) Quantity(title string) (int, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.catalog.Quantity(title)
}

// List returns every book ascending by title.
func (l *library) List() []catalogs.Book {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.catalog.ListSortedByTitle()
}

// Borrow takes one copy of title and fires OnBookBorrowed when one was available.
func (l *library) Borrow(title string) (bool, error) {
	l.mu.Lock()
	before := l.snapshot()
	ok, err := l.catalog.BorrowBook(title)
	if err != nil || !ok {
		l.mu.Unlock()
		return ok, err
	}
	book, _ := l.catalog.Book(title)
	err = l.autoSave(before)
	l.mu.Unlock()

	if err != nil {
		return false, err
	}
	l.logger.Debug().Str("title", title).Int("quantity", book.Quantity).Msg("Book borrowed")
	l.hooks.bookBorrowed(book)
	return true, nil
}

// Return puts one copy of title back and fires OnBookReturned.
func (l *library) Return(title string) (bool, error) {
	l.mu.Lock()
	before := l.snapshot()
	ok, err := l.catalog.ReturnBook(title)
	if err != nil {
		l.mu.Unlock()
		return false, err
	}
	book, _ := l.catalog.Book(title)
	err = l.autoSave(before)
	l.mu.Unlock()

	if err != nil {
		return false, err
	}
	l.logger.Debug().Str("title", title).Int("quantity", book.Quantity).Msg("Book returned")
	l.hooks.bookReturned(book)
	return ok, nil
}

// snapshot copies the catalog ahead of a change so autoSave can undo it.
// It returns nil when auto-save is off. Callers hold l.mu.
func (l *library) snapshot() catalogs.Catalog {
	if !l.config.autoSave || l.config.path == "" {
		return nil
	}
	return l.catalog.Copy()
}

// autoSave writes the working file when before is non-nil. If the write
// fails the catalog is restored to before. Callers hold l.mu.
func (l *library) autoSave(before catalogs.Catalog) error {
	if before == nil {
		return nil
	}
	if err := l.catalog.SaveToFile(l.config.path); err != nil {
		l.catalog.ReplaceWith(before)
		l.logger.Warn().Err(err).Str("path", l.config.path).Msg("Auto-save failed, change undone")
		return err
	}
	return nil
}
