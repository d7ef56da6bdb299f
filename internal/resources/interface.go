package resources

import "context"

// Provisioner makes the sentence tokenizer and stopword list available.
// Ensure is idempotent: the first successful call populates the local cache
// and loads the Set, later calls return the same Set without touching disk
// or network.
type Provisioner interface {
	Ensure(ctx context.Context) (*Set, error)
	Status() []Status
}

// Source fetches the raw bytes of a resource missing from the cache.
type Source interface {
	Name() string
	Fetch(ctx context.Context, r Resource) ([]byte, error)
}

// Status describes one resource in the local cache.
type Status struct {
	Resource Resource
	Path     string
	Cached   bool
}
