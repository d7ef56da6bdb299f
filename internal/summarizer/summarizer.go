package summarizer

import (
	"context"
	"fmt"
	"regexp"
	"sort"
	"strings"
	"unicode/utf8"
)

var (
	whitespaceRe = regexp.MustCompile(`\s+`)
	nonWordRe    = regexp.MustCompile(`[^\p{L}\p{N}_]+`)
)

// Preprocess collapses every whitespace run to a single space and trims the
// ends.
func Preprocess(text string) string {
	return strings.TrimSpace(whitespaceRe.ReplaceAllString(text, " "))
}

// Tokenize splits a sentence on non-word characters and lowercases the
// tokens. Empty fragments are dropped.
func Tokenize(sentence string) []string {
	parts := nonWordRe.Split(sentence, -1)
	tokens := make([]string, 0, len(parts))
	for _, p := range parts {
		if p == "" {
			continue
		}
		tokens = append(tokens, strings.ToLower(p))
	}
	return tokens
}

// Segment splits text into sentences with the tokenizer from the resource
// set, falling back to a plain split on "." when the tokenizer fails.
func (s *implSummarizer) Segment(text string) []string {
	sentences, err := s.tokenize(text)
	if err == nil {
		return sentences
	}

	s.logger.Warn(context.Background(), "Sentence tokenizer failed, splitting on periods: %v", err)
	var out []string
	for _, frag := range strings.Split(text, ".") {
		if frag = strings.TrimSpace(frag); frag != "" {
			out = append(out, frag)
		}
	}
	return out
}

func (s *implSummarizer) tokenize(text string) (sentences []string, err error) {
	defer func() {
		if r := recover(); r != nil {
			sentences, err = nil, fmt.Errorf("tokenizer panic: %v", r)
		}
	}()

	raw, err := s.res.Segment(text)
	if err != nil {
		return nil, err
	}
	sentences = raw[:0]
	for _, sent := range raw {
		if sent = strings.TrimSpace(sent); sent != "" {
			sentences = append(sentences, sent)
		}
	}
	return sentences, nil
}

func (s *implSummarizer) isStopword(word string) bool {
	return s.res.IsStopword(word)
}

// Extractive picks the highest scoring sentences and returns them in their
// original order, joined by single spaces.
func (s *implSummarizer) Extractive(text string, n int) string {
	if n <= 0 {
		n = DefaultSentences
	}

	sentences := s.Segment(Preprocess(text))
	if len(sentences) == 0 {
		return NoContent
	}
	if len(sentences) <= n {
		return strings.Join(sentences, " ")
	}

	tokens := make([][]string, len(sentences))
	freq := make(map[string]int)
	for i, sent := range sentences {
		tokens[i] = Tokenize(sent)
		for _, tok := range tokens[i] {
			if utf8.RuneCountInString(tok) > 1 && !s.isStopword(tok) {
				freq[tok]++
			}
		}
	}

	scores := make([]float64, len(sentences))
	for i, toks := range tokens {
		if len(toks) == 0 {
			continue
		}
		sum := 0
		for _, tok := range toks {
			sum += freq[tok]
		}
		scores[i] = float64(sum) / float64(len(toks))
	}

	// Stable sort keeps the earlier sentence ahead on equal scores.
	order := make([]int, len(sentences))
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order, func(a, b int) bool {
		return scores[order[a]] > scores[order[b]]
	})

	top := order[:n]
	sort.Ints(top)

	picked := make([]string, 0, n)
	for _, i := range top {
		picked = append(picked, sentences[i])
	}
	return strings.Join(picked, " ")
}

// Abstractive returns a three sentence extractive excerpt cut down to at most
// maxLength characters.
func (s *implSummarizer) Abstractive(text string, maxLength int) string {
	if maxLength <= 0 {
		maxLength = DefaultMaxLength
	}

	if len(s.Segment(Preprocess(text))) == 0 {
		return NoContent
	}
	return truncate(s.Extractive(text, abstractiveSentences), maxLength)
}

// truncate bounds s to limit runes, marking the cut with an ellipsis when
// there is room for one.
func truncate(s string, limit int) string {
	runes := []rune(s)
	if len(runes) <= limit {
		return s
	}
	if limit <= len(ellipsis) {
		return string(runes[:limit])
	}
	return string(runes[:limit-len(ellipsis)]) + ellipsis
}

// Summarize runs the strategy named by opts.Mode.
func (s *implSummarizer) Summarize(text string, opts Options) string {
	opts = opts.withDefaults()
	if opts.Mode == ModeAbstractive {
		return s.Abstractive(text, opts.MaxLength)
	}
	return s.Extractive(text, opts.Sentences)
}
