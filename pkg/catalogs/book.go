package catalogs

import "fmt"

// Location is where a book sits in the library: a shelf number and a row
// number on that shelf.
type Location struct {
	Shelf int `json:"shelf" yaml:"shelf"`
	Row   int `json:"row" yaml:"row"`
}

// String returns the location as "shelf 3, row 2".
func (l Location) String() string {
	return fmt.Sprintf("shelf %d, row %d", l.Shelf, l.Row)
}

// Book is a single catalog entry. The title is the unique key.
type Book struct {
	Title    string   `json:"title" yaml:"title"`
	Author   string   `json:"author" yaml:"author"`
	Location Location `json:"location" yaml:"location"`
	Quantity int      `json:"quantity" yaml:"quantity"` // copies currently on the shelf
}

// String returns a one-line summary of the book.
func (b Book) String() string {
	return fmt.Sprintf("Title: %s, Author: %s, Quantity: %d", b.Title, b.Author, b.Quantity)
}

// Available reports whether at least one copy can be borrowed.
func (b Book) Available() bool {
	return b.Quantity > 0
}
