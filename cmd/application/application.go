// Package application provides the application interface for bookshelf commands.
//
// Commands accept this interface rather than the concrete App type so they
// can be tested against a mock:
//
//	mock := &application.Mock{
//	    LibraryFunc: func() (bookshelf.Library, error) {
//	        return testLibrary, nil
//	    },
//	}
//	cmd := search.NewCommand(mock)
package application

import (
	"github.com/rs/zerolog"

	"github.com/agentstation/bookshelf"
)

// Application provides what commands need from the running app.
// The App struct from cmd/bookshelf/app implements it.
//
// Thread Safety: All methods must be safe for concurrent access.
type Application interface {
	// Library returns the library bound to the working catalog file.
	// The same instance is returned on every call.
	Library() (bookshelf.Library, error)

	// Logger returns the configured logger instance.
	Logger() *zerolog.Logger

	// OutputFormat returns the configured output format (table, wide, json, yaml).
	OutputFormat() string

	// Version returns the application version string.
	Version() string

	// Commit returns the git commit hash.
	Commit() string

	// Date returns the build date.
	Date() string

	// BuiltBy returns the build system identifier.
	BuiltBy() string
}
