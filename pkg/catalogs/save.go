package catalogs

import (
	"github.com/agentstation/bookshelf/internal/persistence"
	"github.com/agentstation/bookshelf/pkg/errors"
	"github.com/agentstation/bookshelf/pkg/logging"
	"github.com/agentstation/bookshelf/pkg/save"
)

// Save writes the catalog. A writer option takes precedence over a path;
// with neither, the catalog's own path is used.
func (cat *catalog) Save(opts ...save.Option) error {
	options := save.Defaults().Apply(opts...)
	doc := persistence.NewDocument(toRecords(cat.books.List()))

	if w := options.Writer(); w != nil {
		format := options.Format().Resolve(options.Path())
		if err := persistence.Encode(w, format, doc); err != nil {
			if errors.IsValidationError(err) {
				return err
			}
			return errors.WrapIO("write", "writer", err)
		}
		return nil
	}

	path := options.Path()
	if path == "" {
		path = cat.options.path
	}
	if path == "" {
		return &errors.ConfigError{
			Component: "catalog",
			Message:   "no path configured for saving",
		}
	}

	if err := persistence.WriteFile(path, options.Format(), doc); err != nil {
		return err
	}

	logging.Debug().
		Str("path", path).
		Str("format", options.Format().Resolve(path).String()).
		Int("books", len(doc.Books)).
		Msg("Saved catalog")
	return nil
}

// SaveToFile writes the whole catalog to path, replacing any existing file.
// The format follows the file extension.
func (cat *catalog) SaveToFile(path string) error {
	if path == "" {
		return errors.NewValidationError("path", path, "cannot be empty")
	}
	return cat.Save(save.WithPath(path))
}

func toRecords(books []Book) []persistence.Record {
	records := make([]persistence.Record, 0, len(books))
	for _, b := range books {
		records = append(records, persistence.Record{
			Title:    b.Title,
			Author:   b.Author,
			Location: persistence.Location{Shelf: b.Location.Shelf, Row: b.Location.Row},
			Quantity: b.Quantity,
		})
	}
	return records
}
