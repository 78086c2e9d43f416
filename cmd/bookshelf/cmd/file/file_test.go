package file

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agentstation/bookshelf"
	"github.com/agentstation/bookshelf/cmd/application"
	"github.com/agentstation/bookshelf/pkg/catalogs"
	"github.com/agentstation/bookshelf/pkg/errors"
)

func newMock(t *testing.T, books ...catalogs.Book) (*application.Mock, bookshelf.Library) {
	t.Helper()
	lib, err := bookshelf.New(bookshelf.WithInitialCatalog(catalogs.TestCatalog(t, books...)))
	require.NoError(t, err)
	return &application.Mock{
		LibraryFunc: func() (bookshelf.Library, error) { return lib, nil },
	}, lib
}

func TestSaveThenLoad(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "books.json")

	mock, _ := newMock(t)
	var out bytes.Buffer
	cmd := NewSaveCommand(mock)
	cmd.SetOut(&out)
	cmd.SetArgs([]string{path})
	require.NoError(t, cmd.Execute())
	assert.Equal(t, "✓ Saved 3 books to "+path+"\n", out.String())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"title": "Beloved"`)

	target, lib := newMock(t, catalogs.Book{Title: "Ulysses", Author: "Joyce", Quantity: 1})
	out.Reset()
	cmd = NewLoadCommand(target)
	cmd.SetOut(&out)
	cmd.SetArgs([]string{path})
	require.NoError(t, cmd.Execute())

	assert.Equal(t, "✓ Loaded 3 books from "+path+"\n", out.String())
	assert.Equal(t, []string{"Beloved", "Dune", "Emma"}, titles(lib.List()))
}

func TestSaveTypeOverride(t *testing.T) {
	path := filepath.Join(t.TempDir(), "export.txt")

	mock, _ := newMock(t)
	cmd := NewSaveCommand(mock)
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetArgs([]string{path, "--type", "csv"})
	require.NoError(t, cmd.Execute())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "title,author,shelf,row,quantity\n")
}

func TestLoadFailures(t *testing.T) {
	dir := t.TempDir()
	corrupt := filepath.Join(dir, "bad.yaml")
	require.NoError(t, os.WriteFile(corrupt, []byte("version: 1\nbooks: {"), 0o644))

	tests := map[string]struct {
		path  string
		check func(error) bool
	}{
		"missing": {filepath.Join(dir, "missing.yaml"), errors.IsIO},
		"corrupt": {corrupt, errors.IsCorruptData},
	}
	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			mock, lib := newMock(t)

			cmd := NewLoadCommand(mock)
			cmd.SetOut(&bytes.Buffer{})
			cmd.SetArgs([]string{tt.path})

			err := cmd.Execute()
			assert.True(t, tt.check(err), "got %v", err)
			assert.Equal(t, 3, len(lib.List()))
		})
	}
}

func titles(books []catalogs.Book) []string {
	out := make([]string, 0, len(books))
	for _, b := range books {
		out = append(out, b.Title)
	}
	return out
}
