package resources

import (
	"errors"
	"fmt"
)

// Resource names a piece of linguistic data kept under the cache directory.
// Path is slash separated and relative to the cache directory; it doubles as
// the path below the remote base URL.
type Resource struct {
	Name string
	Path string
}

var (
	Punkt     = Resource{Name: "punkt", Path: "tokenizers/punkt/english.json"}
	Stopwords = Resource{Name: "stopwords", Path: "corpora/stopwords/english"}
)

// All lists every resource Ensure provisions, in provisioning order.
var All = []Resource{Punkt, Stopwords}

// ErrNotEnsured is returned when segmentation is attempted on a Set that was
// never loaded.
var ErrNotEnsured = errors.New("linguistic resources not ensured")

// ProvisionError reports a resource that could not be fetched or persisted.
type ProvisionError struct {
	Resource Resource
	Source   string
	Path     string
	Err      error
}

func (e *ProvisionError) Error() string {
	return fmt.Sprintf("failed to provision linguistic resource %q from %s source: %v; check your network connection or place the file at %s manually",
		e.Resource.Name, e.Source, e.Err, e.Path)
}

func (e *ProvisionError) Unwrap() error { return e.Err }
