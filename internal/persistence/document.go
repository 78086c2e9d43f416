// Package persistence encodes and decodes catalog documents.
//
// A document is a versioned list of book records. YAML is the canonical
// encoding; JSON and CSV are accepted for import and export. Decoding is
// strict: anything that does not match the record structure is reported
// as corrupt data and no partial document is returned.
package persistence

import (
	"fmt"
	"sort"

	"github.com/agentstation/utc"

	"github.com/agentstation/bookshelf/pkg/constants"
)

// Location is the persisted (shelf, row) pair.
type Location struct {
	Shelf int `json:"shelf" yaml:"shelf"`
	Row   int `json:"row" yaml:"row"`
}

// Record is one persisted book.
type Record struct {
	Title    string   `json:"title" yaml:"title"`
	Author   string   `json:"author" yaml:"author"`
	Location Location `json:"location" yaml:"location"`
	Quantity int      `json:"quantity" yaml:"quantity"`
}

// Document is the top level of a saved catalog.
type Document struct {
	Version int      `json:"version" yaml:"version"`
	SavedAt utc.Time `json:"saved_at" yaml:"saved_at"`
	Books   []Record `json:"books" yaml:"books"`
}

// NewDocument stamps records with the current format version and time.
// Records are sorted by title so saved files diff cleanly.
func NewDocument(records []Record) Document {
	books := make([]Record, len(records))
	copy(books, records)
	sort.SliceStable(books, func(i, j int) bool {
		return books[i].Title < books[j].Title
	})
	return Document{
		Version: constants.FormatVersion,
		SavedAt: utc.Now(),
		Books:   books,
	}
}

// validate checks the invariants every decoded document must hold. An
// empty title is a valid key, as it is for the catalog.
func (d *Document) validate() error {
	if d.Version != constants.FormatVersion {
		return fmt.Errorf("unsupported format version %d (want %d)", d.Version, constants.FormatVersion)
	}
	seen := make(map[string]struct{}, len(d.Books))
	for _, b := range d.Books {
		if _, dup := seen[b.Title]; dup {
			return fmt.Errorf("duplicate title %q", b.Title)
		}
		seen[b.Title] = struct{}{}
	}
	return nil
}
