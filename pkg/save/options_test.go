package save_test

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agentstation/bookshelf/pkg/errors"
	"github.com/agentstation/bookshelf/pkg/save"
)

func TestFormatFromPath(t *testing.T) {
	tests := map[string]save.Format{
		"library.yaml":     save.FormatYAML,
		"library.yml":      save.FormatYAML,
		"LIBRARY.JSON":     save.FormatJSON,
		"export/books.csv": save.FormatCSV,
		"library":          save.FormatYAML,
		"library.txt":      save.FormatYAML,
	}
	for path, want := range tests {
		assert.Equal(t, want, save.FormatFromPath(path), path)
	}
}

func TestParseFormat(t *testing.T) {
	f, err := save.ParseFormat("CSV")
	require.NoError(t, err)
	assert.Equal(t, save.FormatCSV, f)

	f, err = save.ParseFormat("")
	require.NoError(t, err)
	assert.Equal(t, save.FormatAuto, f)

	_, err = save.ParseFormat("xml")
	assert.True(t, errors.IsValidationError(err))
}

func TestResolve(t *testing.T) {
	assert.Equal(t, save.FormatJSON, save.FormatAuto.Resolve("a.json"))
	assert.Equal(t, save.FormatCSV, save.FormatCSV.Resolve("a.json"))
}

func TestApply(t *testing.T) {
	var buf bytes.Buffer
	opts := save.Defaults().Apply(
		save.WithPath("out.csv"),
		save.WithFormat(save.FormatJSON),
		save.WithWriter(&buf),
	)

	assert.Equal(t, "out.csv", opts.Path())
	assert.Equal(t, save.FormatJSON, opts.Format())
	assert.Same(t, &buf, opts.Writer())
	assert.Equal(t, "json", opts.Format().String())
	assert.True(t, opts.Format().IsValid())
	assert.False(t, save.Format(42).IsValid())
}
