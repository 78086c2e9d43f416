package catalogs_test

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agentstation/bookshelf/pkg/catalogs"
	"github.com/agentstation/bookshelf/pkg/errors"
	"github.com/agentstation/bookshelf/pkg/save"
)

func awkwardCatalog(t *testing.T) catalogs.Catalog {
	t.Helper()
	return catalogs.TestCatalog(t,
		catalogs.Book{Title: "Dune", Author: "Herbert", Location: catalogs.Location{Shelf: 3, Row: 2}, Quantity: 2},
		catalogs.Book{Title: `Crime, and "Punishment"`, Author: "Dostoevsky, F.", Location: catalogs.Location{Shelf: 4, Row: 1}, Quantity: 1},
		catalogs.Book{Title: "红楼梦", Author: "曹雪芹", Location: catalogs.Location{Shelf: 8, Row: 3}, Quantity: 0},
		catalogs.Book{Title: "Owed", Author: "Nobody", Location: catalogs.Location{Shelf: 0, Row: 0}, Quantity: -1},
		catalogs.Book{Title: "", Author: "Anonymous", Location: catalogs.Location{Shelf: 1, Row: 1}, Quantity: 1},
		catalogs.Book{Title: "\tTabbed", Author: "a\rb", Location: catalogs.Location{Shelf: 1, Row: 2}, Quantity: 1},
	)
}

func TestSaveLoadRoundTrip(t *testing.T) {
	for _, name := range []string{"library.yaml", "library.json", "library.csv"} {
		t.Run(name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), name)
			original := awkwardCatalog(t)
			require.NoError(t, original.SaveToFile(path))

			loaded := catalogs.New()
			loaded.AddBook("Stale", "Entry", catalogs.Location{}, 1)
			require.NoError(t, loaded.LoadFromFile(path))

			if diff := cmp.Diff(original.ListSortedByTitle(), loaded.ListSortedByTitle()); diff != "" {
				t.Errorf("catalog mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestSaveCRLFTitle(t *testing.T) {
	dir := t.TempDir()
	catalog := catalogs.TestCatalog(t, catalogs.Book{Title: "a\r\nb", Author: "Herbert", Quantity: 1})

	for _, name := range []string{"library.yaml", "library.json"} {
		path := filepath.Join(dir, name)
		require.NoError(t, catalog.SaveToFile(path))
		loaded := catalogs.New()
		require.NoError(t, loaded.LoadFromFile(path))
		assert.Equal(t, []string{"a\r\nb"}, loaded.Titles(), name)
	}

	err := catalog.SaveToFile(filepath.Join(dir, "library.csv"))
	assert.True(t, errors.IsValidationError(err), "got %v", err)
}

func TestSaveEmptyThenLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "empty.yaml")
	require.NoError(t, catalogs.Empty().SaveToFile(path))

	loaded := catalogs.TestCatalog(t)
	require.NoError(t, loaded.LoadFromFile(path))
	assert.Equal(t, 0, loaded.Len())
}

func TestSaveOverwritesExistingFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "library.yaml")
	require.NoError(t, awkwardCatalog(t).SaveToFile(path))

	small := catalogs.New()
	small.AddBook("Emma", "Austen", catalogs.Location{Shelf: 1, Row: 1}, 1)
	require.NoError(t, small.SaveToFile(path))

	loaded := catalogs.New()
	require.NoError(t, loaded.LoadFromFile(path))
	assert.Equal(t, []string{"Emma"}, loaded.Titles())
}

func TestSaveUsesCatalogPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "library.json")
	catalog := catalogs.New(catalogs.WithPath(path), catalogs.WithBooks(catalogs.TestBook(t)))
	require.NoError(t, catalog.Save())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"title": "Dune"`)

	// a copy keeps the path
	require.NoError(t, catalog.Copy().Save())
}

func TestSaveWithoutPath(t *testing.T) {
	err := catalogs.Empty().Save()
	var cfgErr *errors.ConfigError
	assert.ErrorAs(t, err, &cfgErr)

	assert.True(t, errors.IsValidationError(catalogs.Empty().SaveToFile("")))
	assert.True(t, errors.IsValidationError(catalogs.Empty().LoadFromFile("")))
}

func TestSaveToWriter(t *testing.T) {
	var buf bytes.Buffer
	catalog := catalogs.TestCatalog(t)
	require.NoError(t, catalog.Save(save.WithWriter(&buf), save.WithFormat(save.FormatCSV)))

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	assert.Equal(t, []string{
		"title,author,shelf,row,quantity",
		"Beloved,Morrison,2,5,4",
		"Dune,Herbert,3,2,2",
		"Emma,Austen,1,1,0",
	}, lines)

	decoded, err := catalogs.Decode(&buf, save.FormatCSV, "buffer")
	require.NoError(t, err)
	assert.Equal(t, catalog.ListSortedByTitle(), decoded.ListSortedByTitle())

	buf.Reset()
	require.NoError(t, catalog.Save(save.WithWriter(&buf)))
	decoded, err = catalogs.Decode(&buf, save.FormatYAML, "buffer")
	require.NoError(t, err)
	assert.Equal(t, catalog.ListSortedByTitle(), decoded.ListSortedByTitle())
}

func TestSaveToUnwritablePath(t *testing.T) {
	blocker := filepath.Join(t.TempDir(), "blocker")
	require.NoError(t, os.WriteFile(blocker, []byte("x"), 0o644))

	err := catalogs.TestCatalog(t).SaveToFile(filepath.Join(blocker, "library.yaml"))
	assert.True(t, errors.IsIO(err))
}

func TestLoadMissingFileLeavesCatalog(t *testing.T) {
	catalog := catalogs.TestCatalog(t)
	before := catalog.ListSortedByTitle()

	err := catalog.LoadFromFile(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.True(t, errors.IsIO(err))
	assert.Equal(t, before, catalog.ListSortedByTitle())
}

func TestLoadCorruptFileLeavesCatalog(t *testing.T) {
	inputs := map[string]string{
		"garbage.yaml":   "{{{{ not yaml",
		"version.yaml":   "version: 7\nbooks: []\n",
		"garbage.json":   "not json",
		"truncated.json": `{"version": 1, "books": [{"title": "Dune"`,
		"header.csv":     "Dune,Herbert,3,2,2\n",
		"columns.csv":    "title,author,shelf,row,quantity\nDune,Herbert,[3 2],2\n",
	}

	for name, content := range inputs {
		t.Run(name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), name)
			require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

			catalog := catalogs.TestCatalog(t)
			before := catalog.ListSortedByTitle()

			err := catalog.LoadFromFile(path)
			assert.True(t, errors.IsCorruptData(err), "got %v", err)
			assert.False(t, errors.IsIO(err))
			assert.Equal(t, before, catalog.ListSortedByTitle())
		})
	}
}
