package add

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agentstation/bookshelf"
	"github.com/agentstation/bookshelf/cmd/application"
	"github.com/agentstation/bookshelf/pkg/catalogs"
	"github.com/agentstation/bookshelf/pkg/errors"
)

func setup(t *testing.T) (*application.Mock, bookshelf.Library) {
	t.Helper()
	mock := &application.Mock{}
	lib, err := mock.Library()
	require.NoError(t, err)
	mock.LibraryFunc = func() (bookshelf.Library, error) { return lib, nil }
	return mock, lib
}

func TestAddCommand(t *testing.T) {
	mock, lib := setup(t)

	var out bytes.Buffer
	cmd := NewCommand(mock)
	cmd.SetOut(&out)
	cmd.SetArgs([]string{"War and Peace", "Tolstoy", "[7, 4]", "-n", "3"})
	require.NoError(t, cmd.Execute())

	assert.Contains(t, out.String(), "Book added: War and Peace (shelf 7, row 4, 3 copies)")

	book, err := lib.Book("War and Peace")
	require.NoError(t, err)
	assert.Equal(t, catalogs.Location{Shelf: 7, Row: 4}, book.Location)
	assert.Equal(t, 3, book.Quantity)
}

func TestAddCommandDefaults(t *testing.T) {
	mock, lib := setup(t)

	var out bytes.Buffer
	cmd := NewCommand(mock)
	cmd.SetOut(&out)
	cmd.SetArgs([]string{"Emma", "Austen", "1 1"})
	require.NoError(t, cmd.Execute())

	assert.Contains(t, out.String(), "1 copy)")
	qty, err := lib.Quantity("Emma")
	require.NoError(t, err)
	assert.Equal(t, 1, qty)
}

func TestAddCommandRejectsBadInput(t *testing.T) {
	tests := map[string][]string{
		"location": {"Dune", "Herbert", "3"},
		"quantity": {"Dune", "Herbert", "3 2", "--quantity", "-2"},
		"title":    {"", "Herbert", "3 2"},
	}
	for name, args := range tests {
		t.Run(name, func(t *testing.T) {
			mock, lib := setup(t)

			cmd := NewCommand(mock)
			cmd.SetOut(&bytes.Buffer{})
			cmd.SetErr(&bytes.Buffer{})
			cmd.SetArgs(args)

			err := cmd.Execute()
			assert.True(t, errors.IsValidationError(err), "got %v", err)
			assert.Empty(t, lib.List())
		})
	}
}
