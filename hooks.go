package bookshelf

import (
	"sync"

	"github.com/agentstation/bookshelf/pkg/catalogs"
)

// Hook function types for catalog events
type (
	// BookAddedHook is called after a book is added or overwritten
	BookAddedHook func(book catalogs.Book)

	// BookBorrowedHook is called after a copy is borrowed, with the updated record
	BookBorrowedHook func(book catalogs.Book)

	// BookReturnedHook is called after a copy is returned, with the updated record
	BookReturnedHook func(book catalogs.Book)

	// CatalogLoadedHook is called after the catalog is replaced from a file
	CatalogLoadedHook func(path string, books int)
)

// hooks manages event callbacks for catalog changes
type hooks struct {
	mu              sync.RWMutex
	onBookAdded     []BookAddedHook
	onBookBorrowed  []BookBorrowedHook
	onBookReturned  []BookReturnedHook
	onCatalogLoaded []CatalogLoadedHook
}

// newHooks creates a new hooks instance
func newHooks() *hooks {
	return &hooks{}
}

// OnBookAdded registers a callback for when books are added
func (l *library) OnBookAdded(fn BookAddedHook) {
	l.hooks.mu.Lock()
	defer l.hooks.mu.Unlock()
	l.hooks.onBookAdded = append(l.hooks.onBookAdded, fn)
}

// OnBookBorrowed registers a callback for when copies are borrowed
func (l *library) OnBookBorrowed(fn BookBorrowedHook) {
	l.hooks.mu.Lock()
	defer l.hooks.mu.Unlock()
	l.hooks.onBookBorrowed = append(l.hooks.onBookBorrowed, fn)
}

// OnBookReturned registers a callback for when copies are returned
func (l *library) OnBookReturned(fn BookReturnedHook) {
	l.hooks.mu.Lock()
	defer l.hooks.mu.Unlock()
	l.hooks.onBookReturned = append(l.hooks.onBookReturned, fn)
}

// OnCatalogLoaded registers a callback for when a catalog file is loaded
func (l *library) OnCatalogLoaded(fn CatalogLoadedHook) {
	l.hooks.mu.Lock()
	defer l.hooks.mu.Unlock()
	l.hooks.onCatalogLoaded = append(l.hooks.onCatalogLoaded, fn)
}

func (h *hooks) bookAdded(book catalogs.Book) {
	h.mu.RLock()
	defer h.mu.RUnlock()
	for _, hook := range h.onBookAdded {
		hook(book)
	}
}

func (h *hooks) bookBorrowed(book catalogs.Book) {
	h.mu.RLock()
	defer h.mu.RUnlock()
	for _, hook := range h.onBookBorrowed {
		hook(book)
	}
}

func (h *hooks) bookReturned(book catalogs.Book) {
	h.mu.RLock()
	defer h.mu.RUnlock()
	for _, hook := range h.onBookReturned {
		hook(book)
	}
}

func (h *hooks) catalogLoaded(path string, books int) {
	h.mu.RLock()
	defer h.mu.RUnlock()
	for _, hook := range h.onCatalogLoaded {
		hook(path, books)
	}
}
