package catalogs

import (
	"sort"
	"sync"

	"github.com/agentstation/bookshelf/pkg/errors"
)

// Books is a concurrent safe map of books keyed by title.
type Books struct {
	mu    sync.RWMutex
	books map[string]*Book
}

// BooksOption defines a function that configures a Books instance.
type BooksOption func(*Books)

// WithBooksCapacity sets the initial capacity of the books map.
func WithBooksCapacity(capacity int) BooksOption {
	return func(b *Books) {
		b.books = make(map[string]*Book, capacity)
	}
}

// NewBooks creates a new Books map with optional configuration.
func NewBooks(opts ...BooksOption) *Books {
	b := &Books{
		books: make(map[string]*Book),
	}

	for _, opt := range opts {
		opt(b)
	}

	return b
}

// Get returns a copy of the book with the given title and whether it exists.
func (b *Books) Get(title string) (Book, bool) {
	b.mu.RLock()
	defer b.mu.RUnlock()

	book, ok := b.books[title]
	if !ok {
		return Book{}, false
	}
	return *book, true
}

// Set inserts or overwrites the book under its title.
func (b *Books) Set(book Book) {
	b.mu.Lock()
	b.books[book.Title] = &book
	b.mu.Unlock()
}

// Update applies fn to the stored book under the write lock.
// fn reports whether it changed the book; Update returns that result.
func (b *Books) Update(title string, fn func(book *Book) bool) (bool, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	book, ok := b.books[title]
	if !ok {
		return false, errors.NewNotFoundError("book", title)
	}
	return fn(book), nil
}

// Exists checks if a book exists without returning it.
func (b *Books) Exists(title string) bool {
	b.mu.RLock()
	_, exists := b.books[title]
	b.mu.RUnlock()
	return exists
}

// Len returns the number of books.
func (b *Books) Len() int {
	b.mu.RLock()
	length := len(b.books)
	b.mu.RUnlock()
	return length
}

// List returns copies of all books sorted by title.
func (b *Books) List() []Book {
	b.mu.RLock()
	books := make([]Book, 0, len(b.books))
	for _, book := range b.books {
		books = append(books, *book)
	}
	b.mu.RUnlock()

	sort.SliceStable(books, func(i, j int) bool {
		return books[i].Title < books[j].Title
	})

	return books
}

// Titles returns all titles in ascending order.
func (b *Books) Titles() []string {
	b.mu.RLock()
	titles := make([]string, 0, len(b.books))
	for title := range b.books {
		titles = append(titles, title)
	}
	b.mu.RUnlock()

	sort.Strings(titles)
	return titles
}

// Replace swaps the whole content for the given books in one step.
// Later entries win when titles repeat.
func (b *Books) Replace(books []Book) {
	next := make(map[string]*Book, len(books))
	for i := range books {
		book := books[i]
		next[book.Title] = &book
	}

	b.mu.Lock()
	b.books = next
	b.mu.Unlock()
}
