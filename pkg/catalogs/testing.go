package catalogs

import "testing"

// TestBook creates a test book with sensible defaults.
// The t.Helper() call ensures stack traces point to the test, not this function.
func TestBook(t testing.TB) Book {
	t.Helper()
	return Book{
		Title:    "Dune",
		Author:   "Herbert",
		Location: Location{Shelf: 3, Row: 2},
		Quantity: 2,
	}
}

// TestCatalog creates a catalog holding the given books, or a small
// default set when none are given.
func TestCatalog(t testing.TB, books ...Book) Catalog {
	t.Helper()
	if len(books) == 0 {
		books = []Book{
			TestBook(t),
			{Title: "Emma", Author: "Austen", Location: Location{Shelf: 1, Row: 1}, Quantity: 0},
			{Title: "Beloved", Author: "Morrison", Location: Location{Shelf: 2, Row: 5}, Quantity: 4},
		}
	}
	return New(WithBooks(books...))
}
