// Package emoji provides symbol constants for CLI output.
package emoji

// Symbol constants give command output a consistent look.
const (
	// Success marks a completed operation.
	Success = "✓"

	// Error marks a failed operation.
	Error = "✗"

	// Warning marks an operation that ran but did not do what was asked,
	// such as borrowing a title with no copies left.
	Warning = "!"

	// Info marks informational messages.
	Info = "i"
)
