package summarizer

import (
	"context"
	"fmt"
	"sync"
)

// Summary is the outcome of summarizing one document.
type Summary struct {
	Text string
	Err  error
}

// Failed reports whether no summary was produced.
func (s Summary) Failed() bool {
	return s.Err != nil
}

// String renders the summary, or the error for a failed one.
func (s Summary) String() string {
	if s.Err != nil {
		return s.Err.Error()
	}
	return s.Text
}

// BatchError reports a document that could not be summarized.
type BatchError struct {
	Name string
	Err  error
}

func (e *BatchError) Error() string {
	return fmt.Sprintf("Error summarizing %s: %v", e.Name, e.Err)
}

func (e *BatchError) Unwrap() error { return e.Err }

// Batch summarizes every document in texts and renders each outcome.
func (s *implSummarizer) Batch(ctx context.Context, texts map[string]string, opts Options) map[string]string {
	results := s.BatchResults(ctx, texts, opts)
	out := make(map[string]string, len(results))
	for name, r := range results {
		out[name] = r.String()
	}
	return out
}

// BatchResults summarizes every document in texts on at most opts.Workers
// goroutines.
func (s *implSummarizer) BatchResults(ctx context.Context, texts map[string]string, opts Options) map[string]Summary {
	opts = opts.withDefaults()
	out := make(map[string]Summary, len(texts))
	if len(texts) == 0 {
		return out
	}

	s.logger.Info(ctx, "Summarizing %d documents (mode: %s, workers: %d)", len(texts), opts.Mode, opts.Workers)

	var (
		mu  sync.Mutex
		wg  sync.WaitGroup
		sem = newSemaphore(opts.Workers)
	)
	set := func(name string, r Summary) {
		mu.Lock()
		out[name] = r
		mu.Unlock()
	}

	for name, text := range texts {
		if err := sem.acquire(ctx); err != nil {
			set(name, Summary{Err: &BatchError{Name: name, Err: err}})
			continue
		}

		wg.Add(1)
		go func(name, text string) {
			defer wg.Done()
			defer sem.release()
			defer func() {
				if r := recover(); r != nil {
					s.logger.Error(ctx, "Summarizing %s panicked: %v", name, r)
					set(name, Summary{Err: &BatchError{Name: name, Err: fmt.Errorf("panic: %v", r)}})
				}
			}()

			set(name, Summary{Text: s.Summarize(text, opts)})
		}(name, text)
	}

	wg.Wait()
	return out
}
