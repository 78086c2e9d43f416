package catalogs

import "github.com/agentstation/bookshelf/pkg/save"

// Reader provides read-only access to catalog data.
type Reader interface {
	// Books returns the underlying collection
	Books() *Books

	// Lookups by title; missing titles return *errors.NotFoundError
	Book(title string) (Book, error)
	Location(title string) (Location, error)
	Quantity(title string) (int, error)

	// All books ascending by title
	ListSortedByTitle() []Book
	Titles() []string
	Len() int
}

// Writer provides write operations for catalog data.
type Writer interface {
	// AddBook inserts or overwrites the book stored under title
	AddBook(title, author string, location Location, quantity int)
}

// Lender provides the borrow and return operations.
type Lender interface {
	// BorrowBook takes one copy if any is available
	BorrowBook(title string) (bool, error)
	// ReturnBook puts one copy back
	ReturnBook(title string) (bool, error)
}

// Persistence provides file save and load.
type Persistence interface {
	Save(opts ...save.Option) error
	SaveToFile(path string) error
	LoadFromFile(path string) error
}

// Copier provides catalog copying capabilities.
type Copier interface {
	Copy() Catalog
}

// Catalog is the complete interface combining all catalog capabilities.
type Catalog interface {
	Reader
	Writer
	Lender
	Persistence
	Copier

	// ReplaceWith swaps this catalog's contents for the source's
	ReplaceWith(source Reader)
}
