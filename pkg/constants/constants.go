// Package constants provides shared constants used throughout the bookshelf codebase.
// This includes file permissions, defaults, and persisted format values
// that should be consistent across the application.
package constants

import "time"

// File permission constants define standard Unix file permissions
const (
	// DirPermissions is the default permission for created directories (rwxr-xr-x)
	DirPermissions = 0755

	// FilePermissions is the default permission for created files (rw-r--r--)
	FilePermissions = 0644
)

// Catalog format constants
const (
	// FormatVersion is the version written into every saved catalog document.
	// Load rejects documents carrying any other version.
	FormatVersion = 1

	// LocationComponents is the number of integers in a shelf location (shelf, row)
	LocationComponents = 2

	// CSVHeader is the exact header row of a CSV catalog file
	CSVHeader = "title,author,shelf,row,quantity"
)

// Default values
const (
	// DefaultCatalogFile is the working catalog file used by the CLI when none is configured
	DefaultCatalogFile = "library.yaml"

	// DefaultQuantity is the number of copies added when the caller does not say
	DefaultQuantity = 1

	// ShutdownTimeout bounds graceful shutdown after a command fails
	ShutdownTimeout = 5 * time.Second
)

// Environment and config constants
const (
	// EnvPrefix is the prefix for bookshelf environment variables (BOOKSHELF_CATALOG, ...)
	EnvPrefix = "BOOKSHELF"

	// ConfigName is the config file name searched in $HOME and the working directory
	ConfigName = ".bookshelf"
)

// Format constants
const (
	// TimeFormatHuman is a human-readable time format
	TimeFormatHuman = "Jan 2, 2006 at 3:04pm MST"
)

// Error messages
const (
	// ErrMsgBookNotFound is the message shown by front-ends for a missing title
	ErrMsgBookNotFound = "Book not found!"

	// ErrMsgUnavailable is the message shown when no copies are left to borrow
	ErrMsgUnavailable = "Borrow failed. Book not available."
)
