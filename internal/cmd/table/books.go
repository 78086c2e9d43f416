// Package table provides common table formatting utilities for CLI commands.
package table

import (
	"strconv"

	"github.com/agentstation/bookshelf/pkg/catalogs"
)

// Align represents column alignment in tables.
type Align int

const (
	// AlignDefault uses the default alignment (skip).
	AlignDefault Align = iota
	// AlignLeft aligns content to the left.
	AlignLeft
	// AlignCenter centers content.
	AlignCenter
	// AlignRight aligns content to the right.
	AlignRight
)

// Data represents table formatting data to avoid import cycles.
type Data struct {
	Headers         []string
	Rows            [][]string
	ColumnAlignment []Align // Optional: column alignment
}

// BooksToTableData converts books to table format. Headers are column
// keys; the formatter turns them into labels. The wide form splits
// the location into shelf and row columns and adds availability.
func BooksToTableData(books []catalogs.Book, wide bool) Data {
	headers := []string{"title", "author", "location", "on_hand"}
	align := []Align{AlignLeft, AlignLeft, AlignLeft, AlignRight}
	if wide {
		headers = []string{"title", "author", "shelf", "row", "on_hand", "available"}
		align = []Align{AlignLeft, AlignLeft, AlignRight, AlignRight, AlignRight, AlignCenter}
	}

	rows := make([][]string, 0, len(books))
	for _, b := range books {
		if wide {
			rows = append(rows, []string{
				b.Title,
				b.Author,
				strconv.Itoa(b.Location.Shelf),
				strconv.Itoa(b.Location.Row),
				strconv.Itoa(b.Quantity),
				FormatAvailable(b),
			})
			continue
		}
		rows = append(rows, []string{
			b.Title,
			b.Author,
			FormatLocation(b.Location),
			strconv.Itoa(b.Quantity),
		})
	}

	return Data{
		Headers:         headers,
		Rows:            rows,
		ColumnAlignment: align,
	}
}

// BookToTableData renders a single book as property/value rows.
func BookToTableData(b catalogs.Book) Data {
	return Data{
		Headers: []string{"property", "value"},
		Rows: [][]string{
			{"Title", b.Title},
			{"Author", b.Author},
			{"Location", b.Location.String()},
			{"Quantity", strconv.Itoa(b.Quantity)},
		},
	}
}

// FormatLocation renders a location compactly, e.g. "3/2".
func FormatLocation(l catalogs.Location) string {
	return strconv.Itoa(l.Shelf) + "/" + strconv.Itoa(l.Row)
}

// FormatAvailable renders whether a copy can be borrowed.
func FormatAvailable(b catalogs.Book) string {
	if b.Available() {
		return "yes"
	}
	return "no"
}
