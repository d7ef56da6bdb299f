package summarizer

import "context"

// Summarizer produces short representative text for documents. It never
// touches the filesystem.
type Summarizer interface {
	// Segment splits text into sentences. It never fails: when the
	// tokenizer does, text is split on periods instead.
	Segment(text string) []string
	// Extractive selects up to sentences sentences, kept in source order.
	Extractive(text string, sentences int) string
	// Abstractive returns a preview of at most maxLength characters.
	Abstractive(text string, maxLength int) string
	// Summarize dispatches on opts.Mode.
	Summarize(text string, opts Options) string
	// Batch summarizes every entry; the result has the same keys as texts.
	Batch(ctx context.Context, texts map[string]string, opts Options) map[string]string
	// BatchResults is Batch with failures kept as errors.
	BatchResults(ctx context.Context, texts map[string]string, opts Options) map[string]Summary
}

// Resources is the linguistic data the summarizer needs. *resources.Set
// implements it.
type Resources interface {
	Segment(text string) ([]string, error)
	IsStopword(word string) bool
}
