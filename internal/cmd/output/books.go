package output

import (
	"io"

	"github.com/agentstation/bookshelf/internal/cmd/table"
	"github.com/agentstation/bookshelf/pkg/catalogs"
)

// FormatBooks writes books in the given format. Table formats render the
// books table; json and yaml emit the records themselves.
func FormatBooks(w io.Writer, format Format, books []catalogs.Book) error {
	switch format {
	case FormatTable, FormatWide:
		return NewFormatter(format).Format(w, table.BooksToTableData(books, format == FormatWide))
	case FormatYAML:
		// The commented listing reads better than a bare record dump
		_, err := io.WriteString(w, catalogs.New(catalogs.WithBooks(books...)).Books().FormatYAML())
		return err
	default:
		if books == nil {
			books = []catalogs.Book{}
		}
		return NewFormatter(FormatJSON).Format(w, books)
	}
}

// FormatBook writes a single book in the given format.
func FormatBook(w io.Writer, format Format, book catalogs.Book) error {
	switch format {
	case FormatTable, FormatWide:
		return NewFormatter(format).Format(w, table.BookToTableData(book))
	default:
		return NewFormatter(format).Format(w, book)
	}
}
