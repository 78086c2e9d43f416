package catalogs

import (
	"io"

	"github.com/agentstation/bookshelf/internal/persistence"
	"github.com/agentstation/bookshelf/pkg/errors"
	"github.com/agentstation/bookshelf/pkg/logging"
	"github.com/agentstation/bookshelf/pkg/save"
)

// LoadFromFile replaces the whole catalog with the contents of path.
// On any error the catalog is left as it was.
func (cat *catalog) LoadFromFile(path string) error {
	if path == "" {
		return errors.NewValidationError("path", path, "cannot be empty")
	}

	doc, err := persistence.ReadFile(path, save.FormatAuto)
	if err != nil {
		return err
	}

	cat.books.Replace(fromRecords(doc.Books))

	logging.Debug().
		Str("path", path).
		Int("books", len(doc.Books)).
		Msg("Loaded catalog")
	return nil
}

// Decode reads a catalog document from r and returns it as a new catalog.
// The name is used in error messages only.
func Decode(r io.Reader, format save.Format, name string) (Catalog, error) {
	doc, err := persistence.Decode(r, format, name)
	if err != nil {
		return nil, err
	}
	return New(WithBooks(fromRecords(doc.Books)...)), nil
}

func fromRecords(records []persistence.Record) []Book {
	books := make([]Book, 0, len(records))
	for _, r := range records {
		books = append(books, Book{
			Title:    r.Title,
			Author:   r.Author,
			Location: Location{Shelf: r.Location.Shelf, Row: r.Location.Row},
			Quantity: r.Quantity,
		})
	}
	return books
}
