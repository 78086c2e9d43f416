package persistence_test

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agentstation/bookshelf/internal/persistence"
	"github.com/agentstation/bookshelf/pkg/errors"
	"github.com/agentstation/bookshelf/pkg/save"
)

func sampleRecords() []persistence.Record {
	return []persistence.Record{
		{Title: "Emma", Author: "Austen", Location: persistence.Location{Shelf: 1, Row: 1}, Quantity: 0},
		{Title: "Dune", Author: "Herbert", Location: persistence.Location{Shelf: 3, Row: 2}, Quantity: 2},
		{Title: `War, and "Peace"`, Author: "Tolstoy, Leo", Location: persistence.Location{Shelf: 7, Row: 4}, Quantity: 1},
		{Title: "Über die Bücher: Band 2", Author: "Müller", Location: persistence.Location{Shelf: 0, Row: 9}, Quantity: 12},
		{Title: "Overdrawn", Author: "Nobody", Location: persistence.Location{Shelf: 2, Row: 2}, Quantity: -3},
	}
}

func TestNewDocumentSortsByTitle(t *testing.T) {
	records := sampleRecords()
	doc := persistence.NewDocument(records)

	assert.Equal(t, 1, doc.Version)
	assert.False(t, doc.SavedAt.IsZero())
	require.Len(t, doc.Books, len(records))
	for i := 1; i < len(doc.Books); i++ {
		assert.Less(t, doc.Books[i-1].Title, doc.Books[i].Title)
	}
	// input slice is not reordered
	assert.Equal(t, "Emma", records[0].Title)
}

// awkwardRecords hold values each format must give back unchanged.
func awkwardRecords() []persistence.Record {
	return []persistence.Record{
		{Title: "", Author: "Anonymous", Location: persistence.Location{Shelf: 1, Row: 1}, Quantity: 1},
		{Title: "\tx", Author: "tab first", Location: persistence.Location{Shelf: 1, Row: 2}, Quantity: 1},
		{Title: "a\rb", Author: "carriage\rreturn", Location: persistence.Location{Shelf: 1, Row: 3}, Quantity: 1},
		{Title: "line\nbreak", Author: "trailing space ", Location: persistence.Location{Shelf: 1, Row: 4}, Quantity: 1},
		{Title: "bell\a", Author: "nul\x00", Location: persistence.Location{Shelf: 1, Row: 5}, Quantity: 1},
	}
}

func TestRoundTrip(t *testing.T) {
	tests := []struct {
		format  save.Format
		records []persistence.Record
	}{
		{format: save.FormatYAML, records: append(append(sampleRecords(), awkwardRecords()...),
			persistence.Record{Title: "a\r\nb", Author: "crlf\r\n", Quantity: 1})},
		{format: save.FormatJSON, records: append(append(sampleRecords(), awkwardRecords()...),
			persistence.Record{Title: "a\r\nb", Author: "crlf\r\n", Quantity: 1})},
		{format: save.FormatCSV, records: append(sampleRecords(), awkwardRecords()...)},
	}
	for _, tt := range tests {
		t.Run(tt.format.String(), func(t *testing.T) {
			doc := persistence.NewDocument(tt.records)

			var buf bytes.Buffer
			require.NoError(t, persistence.Encode(&buf, tt.format, doc))

			got, err := persistence.Decode(&buf, tt.format, "mem")
			require.NoError(t, err)
			assert.Equal(t, 1, got.Version)
			if diff := cmp.Diff(doc.Books, got.Books); diff != "" {
				t.Errorf("books mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestEncodeYAMLQuotesControlCharacters(t *testing.T) {
	doc := persistence.NewDocument([]persistence.Record{{Title: "a\r\nb", Author: "\tx"}})

	var buf bytes.Buffer
	require.NoError(t, persistence.Encode(&buf, save.FormatYAML, doc))
	assert.Contains(t, buf.String(), `title: "a\r\nb"`)
	assert.Contains(t, buf.String(), `author: "\tx"`)
}

func TestEncodeCSVRejectsCRLF(t *testing.T) {
	doc := persistence.NewDocument([]persistence.Record{{Title: "Dune", Author: "Frank\r\nHerbert"}})

	err := persistence.Encode(&bytes.Buffer{}, save.FormatCSV, doc)
	var verr *errors.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "author", verr.Field)
}

func TestEncodeEmpty(t *testing.T) {
	for _, format := range []save.Format{save.FormatYAML, save.FormatJSON, save.FormatCSV} {
		t.Run(format.String(), func(t *testing.T) {
			var buf bytes.Buffer
			require.NoError(t, persistence.Encode(&buf, format, persistence.NewDocument(nil)))

			got, err := persistence.Decode(&buf, format, "mem")
			require.NoError(t, err)
			assert.Empty(t, got.Books)
		})
	}
}

func TestEncodeYAMLLayout(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, persistence.Encode(&buf, save.FormatYAML, persistence.NewDocument(sampleRecords()[:2])))

	out := buf.String()
	assert.True(t, strings.HasPrefix(out, "# bookshelf catalog\n"))
	assert.Contains(t, out, "version: 1")
	assert.Contains(t, out, "saved_at:")
	assert.Contains(t, out, "title: Dune")
	assert.Less(t, strings.Index(out, "Dune"), strings.Index(out, "Emma"))
}

func TestEncodeCSVHeader(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, persistence.Encode(&buf, save.FormatCSV, persistence.NewDocument(sampleRecords()[:2])))

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 3)
	assert.Equal(t, "title,author,shelf,row,quantity", lines[0])
	assert.Equal(t, "Dune,Herbert,3,2,2", lines[1])
	assert.Equal(t, "Emma,Austen,1,1,0", lines[2])
}

func TestEncodeUnknownFormat(t *testing.T) {
	err := persistence.Encode(&bytes.Buffer{}, save.Format(42), persistence.NewDocument(nil))
	assert.True(t, errors.IsValidationError(err))
}

func TestDecodeMissingBooksKey(t *testing.T) {
	doc, err := persistence.Decode(strings.NewReader("version: 1\n"), save.FormatYAML, "mem")
	require.NoError(t, err)
	assert.Empty(t, doc.Books)
}

func TestDecodeRejectsCorruptData(t *testing.T) {
	tests := []struct {
		name    string
		format  save.Format
		input   string
		line    int
		message string
	}{
		{name: "yaml syntax", format: save.FormatYAML, input: "version: 1\nbooks: [\n"},
		{name: "yaml empty document", format: save.FormatYAML, input: ""},
		{name: "yaml wrong version", format: save.FormatYAML, input: "version: 2\nbooks: []\n", message: "unsupported format version 2"},
		{name: "yaml wrong type", format: save.FormatYAML, input: "version: 1\nbooks:\n- title: Dune\n  quantity: many\n"},
		{name: "yaml unknown field", format: save.FormatYAML, input: "version: 1\nbooks:\n- title: Dune\n  isbn: 42\n"},
		{name: "yaml duplicate title", format: save.FormatYAML, input: "version: 1\nbooks:\n- title: Dune\n- title: Dune\n", message: `duplicate title "Dune"`},
		{name: "json syntax", format: save.FormatJSON, input: `{"version": 1, "books": [`},
		{name: "json not an object", format: save.FormatJSON, input: `[1, 2, 3]`},
		{name: "json wrong version", format: save.FormatJSON, input: `{"version": 3, "books": []}`, message: "unsupported format version 3"},
		{name: "csv empty", format: save.FormatCSV, input: "", line: 1, message: "missing header row"},
		{name: "csv wrong header", format: save.FormatCSV, input: "name,author,shelf,row,quantity\n", line: 1, message: "unexpected header"},
		{name: "csv short row", format: save.FormatCSV, input: "title,author,shelf,row,quantity\nDune,Herbert,3,2\n", line: 2},
		{name: "csv bad integer", format: save.FormatCSV, input: "title,author,shelf,row,quantity\nDune,Herbert,3,2,2\nEmma,Austen,x,1,1\n", line: 3, message: `shelf: "x" is not an integer`},
		{name: "csv duplicate title", format: save.FormatCSV, input: "title,author,shelf,row,quantity\nDune,a,1,1,1\nDune,b,2,2,2\n", message: "duplicate title"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := persistence.Decode(strings.NewReader(tt.input), tt.format, "catalog")
			require.Error(t, err)
			assert.True(t, errors.IsCorruptData(err), "got %v", err)

			var corrupt *errors.CorruptDataError
			require.ErrorAs(t, err, &corrupt)
			assert.Equal(t, "catalog", corrupt.File)
			if tt.line > 0 {
				assert.Equal(t, tt.line, corrupt.Line)
			}
			if tt.message != "" {
				assert.Contains(t, corrupt.Message, tt.message)
			}
		})
	}
}

func TestWriteAndReadFile(t *testing.T) {
	dir := t.TempDir()
	for _, name := range []string{"library.yaml", "library.json", "library.csv", "nested/dir/library"} {
		t.Run(name, func(t *testing.T) {
			path := filepath.Join(dir, name)
			doc := persistence.NewDocument(sampleRecords())

			require.NoError(t, persistence.WriteFile(path, save.FormatAuto, doc))
			assert.True(t, persistence.Exists(path))

			got, err := persistence.ReadFile(path, save.FormatAuto)
			require.NoError(t, err)
			if diff := cmp.Diff(doc.Books, got.Books); diff != "" {
				t.Errorf("books mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestWriteFileOverwritesWithoutTempFiles(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "library.yaml")

	require.NoError(t, persistence.WriteFile(path, save.FormatAuto, persistence.NewDocument(sampleRecords())))
	require.NoError(t, persistence.WriteFile(path, save.FormatAuto, persistence.NewDocument(sampleRecords()[:1])))

	got, err := persistence.ReadFile(path, save.FormatAuto)
	require.NoError(t, err)
	require.Len(t, got.Books, 1)
	assert.Equal(t, "Emma", got.Books[0].Title)

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "library.yaml", entries[0].Name())
}

func TestWriteFileExplicitFormatOverridesExtension(t *testing.T) {
	path := filepath.Join(t.TempDir(), "export.txt")
	require.NoError(t, persistence.WriteFile(path, save.FormatCSV, persistence.NewDocument(sampleRecords()[:1])))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(data), "title,author,shelf,row,quantity\n"))

	_, err = persistence.ReadFile(path, save.FormatCSV)
	require.NoError(t, err)
}

func TestWriteFileFailsUnderRegularFile(t *testing.T) {
	blocker := filepath.Join(t.TempDir(), "blocker")
	require.NoError(t, os.WriteFile(blocker, []byte("x"), 0o644))

	err := persistence.WriteFile(filepath.Join(blocker, "library.yaml"), save.FormatAuto, persistence.NewDocument(nil))
	assert.True(t, errors.IsIO(err), "got %v", err)
}

func TestReadFileMissing(t *testing.T) {
	_, err := persistence.ReadFile(filepath.Join(t.TempDir(), "missing.yaml"), save.FormatAuto)
	assert.True(t, errors.IsIO(err))
	assert.False(t, errors.IsCorruptData(err))
	assert.False(t, persistence.Exists(filepath.Join(t.TempDir(), "missing.yaml")))
}

func TestReadFileCorrupt(t *testing.T) {
	path := filepath.Join(t.TempDir(), "library.yaml")
	require.NoError(t, os.WriteFile(path, []byte("this is: [not a catalog"), 0o644))

	_, err := persistence.ReadFile(path, save.FormatAuto)
	assert.True(t, errors.IsCorruptData(err))
	assert.Contains(t, err.Error(), path)
}
