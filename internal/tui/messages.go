package tui

// resultMsg carries the outcome of a menu action back to Update.
type resultMsg struct {
	text string
	err  error
}

// Messages shown in the result pane.
const (
	msgAdded        = "Book added successfully!"
	msgAddFailed    = "Error adding book. Please check your input."
	msgBorrowed     = "Borrow the book successfully!"
	msgReturned     = "Return the book successfully!"
	msgSaved        = "Library state saved to file successfully!"
	msgLoaded       = "Library state loaded from file successfully!"
	msgListHeader   = "Books in the library (sorted by title):"
	msgEmptyLibrary = "The library has no books yet."
	msgFoundFormat  = "Book found, Location: %s\nThe quantity of the book %s is: %d"
)
