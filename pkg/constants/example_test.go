package constants_test

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/agentstation/bookshelf/pkg/constants"
)

// Example demonstrates using constants for common operations
func Example() {
	dir, err := os.MkdirTemp("", "bookshelf-example")
	if err != nil {
		panic(err)
	}
	defer os.RemoveAll(dir)

	file := filepath.Join(dir, constants.DefaultCatalogFile)
	data := []byte(fmt.Sprintf("version: %d\nbooks: []\n", constants.FormatVersion))
	if err := os.WriteFile(file, data, constants.FilePermissions); err != nil {
		panic(err)
	}

	fmt.Printf("Wrote %s with %o permissions\n", filepath.Base(file), constants.FilePermissions)
	// Output:
	// Wrote library.yaml with 644 permissions
}

// Example_csvHeader shows the header row every CSV catalog starts with
func Example_csvHeader() {
	fmt.Println(constants.CSVHeader)
	// Output:
	// title,author,shelf,row,quantity
}
