package summarizer

import (
	"strings"

	"github.com/nguyentantai21042004/docsum/internal/config"
)

// Mode selects the summarization strategy.
type Mode string

const (
	ModeExtractive  Mode = "extractive"
	ModeAbstractive Mode = "abstractive"
)

const (
	DefaultSentences = 5
	DefaultMaxLength = 150

	// abstractiveSentences is the size of the excerpt Abstractive truncates.
	abstractiveSentences = 3

	ellipsis = "..."
)

// NoContent is returned instead of a summary when the text has no sentences.
const NoContent = "No valid sentences found to summarize."

// ParseMode maps a config value to a Mode. Anything but "abstractive" is
// extractive.
func ParseMode(s string) Mode {
	if strings.EqualFold(strings.TrimSpace(s), string(ModeAbstractive)) {
		return ModeAbstractive
	}
	return ModeExtractive
}

// Options carries the tunables threaded through every summarization call.
type Options struct {
	Mode      Mode
	Sentences int
	MaxLength int
	Workers   int
}

// DefaultOptions returns extractive mode, 5 sentences, 150 characters and a
// single worker.
func DefaultOptions() Options {
	return Options{
		Mode:      ModeExtractive,
		Sentences: DefaultSentences,
		MaxLength: DefaultMaxLength,
		Workers:   1,
	}
}

// OptionsFromConfig builds Options from the summarizer config section.
func OptionsFromConfig(cfg config.SummarizerConfig) Options {
	return Options{
		Mode:      ParseMode(cfg.Mode),
		Sentences: cfg.Sentences,
		MaxLength: cfg.MaxLength,
		Workers:   cfg.Workers,
	}.withDefaults()
}

func (o Options) withDefaults() Options {
	if o.Mode == "" {
		o.Mode = ModeExtractive
	}
	if o.Sentences <= 0 {
		o.Sentences = DefaultSentences
	}
	if o.MaxLength <= 0 {
		o.MaxLength = DefaultMaxLength
	}
	if o.Workers <= 0 {
		o.Workers = 1
	}
	return o
}
