package catalogs

// Option configures a catalog.
type Option func(*catalogOptions)

type catalogOptions struct {
	path  string
	books []Book
}

func catalogDefaults() *catalogOptions {
	return &catalogOptions{}
}

func (o *catalogOptions) apply(opts ...Option) *catalogOptions {
	for _, opt := range opts {
		opt(o)
	}
	return o
}

// WithPath sets the file used by Save when no path option is given.
// The file is not read; use LoadFromFile for that.
func WithPath(path string) Option {
	return func(o *catalogOptions) {
		o.path = path
	}
}

// WithBooks seeds the catalog. Later books overwrite earlier ones with the same title.
func WithBooks(books ...Book) Option {
	return func(o *catalogOptions) {
		o.books = append(o.books, books...)
	}
}
