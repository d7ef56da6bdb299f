package resources

import (
	"bufio"
	"bytes"
	"fmt"
	"strings"

	"github.com/neurosnap/sentences"
	"github.com/neurosnap/sentences/english"
)

// Set is the loaded, read-only linguistic resource set.
type Set struct {
	tokenizer *sentences.DefaultSentenceTokenizer
	stopwords map[string]struct{}
}

// NewSet builds a Set from Punkt training data (JSON) and a newline separated
// stopword list.
func NewSet(punkt, stopwords []byte) (*Set, error) {
	training, err := sentences.LoadTraining(punkt)
	if err != nil {
		return nil, fmt.Errorf("load punkt training data: %w", err)
	}

	tokenizer, err := english.NewSentenceTokenizer(training)
	if err != nil {
		return nil, fmt.Errorf("build sentence tokenizer: %w", err)
	}

	words := parseStopwords(stopwords)
	if len(words) == 0 {
		return nil, fmt.Errorf("stopword list is empty")
	}

	return &Set{
		tokenizer: tokenizer,
		stopwords: words,
	}, nil
}

// Segment splits text into trimmed, non-empty sentences. Panics inside the
// tokenizer are reported as errors.
func (s *Set) Segment(text string) (out []string, err error) {
	if s == nil || s.tokenizer == nil {
		return nil, ErrNotEnsured
	}

	defer func() {
		if r := recover(); r != nil {
			out = nil
			err = fmt.Errorf("sentence tokenizer panic: %v", r)
		}
	}()

	for _, sent := range s.tokenizer.Tokenize(text) {
		if t := strings.TrimSpace(sent.Text); t != "" {
			out = append(out, t)
		}
	}
	return out, nil
}

// IsStopword reports whether the lowercase token is a stopword.
func (s *Set) IsStopword(word string) bool {
	if s == nil {
		return false
	}
	_, ok := s.stopwords[word]
	return ok
}

// StopwordCount returns the size of the stopword list.
func (s *Set) StopwordCount() int {
	if s == nil {
		return 0
	}
	return len(s.stopwords)
}

func parseStopwords(data []byte) map[string]struct{} {
	words := make(map[string]struct{})
	sc := bufio.NewScanner(bytes.NewReader(data))
	for sc.Scan() {
		w := strings.ToLower(strings.TrimSpace(sc.Text()))
		if w == "" || strings.HasPrefix(w, "#") {
			continue
		}
		words[w] = struct{}{}
	}
	return words
}
