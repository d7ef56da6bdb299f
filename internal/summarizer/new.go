package summarizer

import (
	"errors"

	"github.com/nguyentantai21042004/docsum/internal/logger"
)

// ErrNoResources is returned by New when no loaded resource set is given.
var ErrNoResources = errors.New("summarizer: linguistic resources not loaded")

type implSummarizer struct {
	res    Resources
	logger logger.Logger
}

// New creates a Summarizer over an ensured resource set. It refuses to run
// without a tokenizer and stopword list.
func New(res Resources, log logger.Logger) (Summarizer, error) {
	if res == nil {
		return nil, ErrNoResources
	}
	// A typed nil *resources.Set reports zero stopwords.
	if c, ok := res.(interface{ StopwordCount() int }); ok && c.StopwordCount() == 0 {
		return nil, ErrNoResources
	}

	return &implSummarizer{
		res:    res,
		logger: log,
	}, nil
}
