package catalogs

import (
	"fmt"

	"github.com/goccy/go-yaml"
)

// FormatYAML returns the books as a YAML list sorted by title, with a
// comment above each entry giving its location.
func (b *Books) FormatYAML() string {
	if b == nil {
		return ""
	}

	books := b.List()
	if len(books) == 0 {
		return ""
	}

	return formatBooksYAML(books)
}

// The encoder drops head comments on the document root, so the heading is
// written ahead of the marshaled list.
const booksYAMLHeading = "# Books in the library (sorted by title)\n"

func formatBooksYAML(books []Book) string {
	commentMap := yaml.CommentMap{}
	for i, book := range books {
		path := fmt.Sprintf("$[%d]", i)
		commentMap[path] = []*yaml.Comment{
			yaml.HeadComment(" " + book.Location.String()),
		}
	}

	yamlData, err := yaml.MarshalWithOptions(books,
		yaml.Indent(2),
		yaml.IndentSequence(false),
		yaml.WithComment(commentMap),
	)
	if err != nil {
		basicYaml, _ := yaml.Marshal(books)
		return booksYAMLHeading + string(basicYaml)
	}

	return booksYAMLHeading + string(yamlData)
}
