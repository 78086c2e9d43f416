// Package catalogs provides the in-memory library catalog.
//
// A catalog maps each title to one book record holding the author, the
// shelf location and the number of copies on hand. It supports lookups,
// a title-ordered listing, borrowing and returning copies, and saving or
// loading the whole catalog to a file.
//
// Example usage:
//
//	catalog := catalogs.New()
//	catalog.AddBook("Dune", "Herbert", catalogs.Location{Shelf: 3, Row: 2}, 2)
//
//	ok, err := catalog.BorrowBook("Dune")
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	if err := catalog.SaveToFile("library.yaml"); err != nil {
//	    log.Fatal(err)
//	}
package catalogs

import (
	"github.com/agentstation/bookshelf/pkg/errors"
)

// Compile-time interface checks to ensure proper implementation.
var (
	_ Catalog     = (*catalog)(nil)
	_ Reader      = (*catalog)(nil)
	_ Writer      = (*catalog)(nil)
	_ Lender      = (*catalog)(nil)
	_ Persistence = (*catalog)(nil)
	_ Copier      = (*catalog)(nil)
)

// catalog is the single concrete implementation of the Catalog interface.
type catalog struct {
	options *catalogOptions
	books   *Books
}

// New creates an empty catalog, seeded by any WithBooks options.
func New(opts ...Option) Catalog {
	options := catalogDefaults().apply(opts...)
	cat := &catalog{
		options: options,
		books:   NewBooks(WithBooksCapacity(len(options.books))),
	}
	for _, book := range options.books {
		cat.books.Set(book)
	}
	return cat
}

// Empty returns a catalog with no books and no default path.
func Empty() Catalog {
	return New()
}

// Books returns the underlying collection.
func (cat *catalog) Books() *Books {
	return cat.books
}

// AddBook inserts a book or overwrites the one already stored under title.
// Quantity is stored as given.
func (cat *catalog) AddBook(title, author string, location Location, quantity int) {
	cat.books.Set(Book{
		Title:    title,
		Author:   author,
		Location: location,
		Quantity: quantity,
	})
}

// Book returns the full record for title.
func (cat *catalog) Book(title string) (Book, error) {
	book, ok := cat.books.Get(title)
	if !ok {
		return Book{}, errors.NewNotFoundError("book", title)
	}
	return book, nil
}

// Location returns where title is shelved.
func (cat *catalog) Location(title string) (Location, error) {
	book, err := cat.Book(title)
	if err != nil {
		return Location{}, err
	}
	return book.Location, nil
}

// Quantity returns the number of copies of title on hand.
func (cat *catalog) Quantity(title string) (int, error) {
	book, err := cat.Book(title)
	if err != nil {
		return 0, err
	}
	return book.Quantity, nil
}

// ListSortedByTitle returns every book in ascending title order.
func (cat *catalog) ListSortedByTitle() []Book {
	return cat.books.List()
}

// Titles returns every title in ascending order.
func (cat *catalog) Titles() []string {
	return cat.books.Titles()
}

// Len returns the number of distinct titles.
func (cat *catalog) Len() int {
	return cat.books.Len()
}

// BorrowBook takes one copy of title. It returns false without error when
// no copies are left.
func (cat *catalog) BorrowBook(title string) (bool, error) {
	return cat.books.Update(title, func(book *Book) bool {
		if book.Quantity <= 0 {
			return false
		}
		book.Quantity--
		return true
	})
}

// ReturnBook puts one copy of title back. There is no upper bound.
func (cat *catalog) ReturnBook(title string) (bool, error) {
	return cat.books.Update(title, func(book *Book) bool {
		book.Quantity++
		return true
	})
}

// ReplaceWith swaps this catalog's contents for a snapshot of source.
func (cat *catalog) ReplaceWith(source Reader) {
	cat.books.Replace(source.ListSortedByTitle())
}

// Copy returns an independent catalog holding the same books and path.
func (cat *catalog) Copy() Catalog {
	return New(
		WithPath(cat.options.path),
		WithBooks(cat.books.List()...),
	)
}
