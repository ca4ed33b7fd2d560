// Package keywords extracts content-word keywords from tagged text.
// It keeps the tokens the tagger marks as nouns or adjectives and drops
// stopwords, which is the classic downstream use of a POS tagger.
package keywords

import (
	"strings"

	"github.com/orsinium-labs/stopwords"

	"github.com/kittclouds/postag/pkg/pos"
	"github.com/kittclouds/postag/pkg/tagger"
)

// Extractor pulls keywords out of token sequences.
type Extractor struct {
	tagger          *tagger.Tagger
	stopwordChecker *stopwords.Stopwords // robust English stopwords
	custom          map[string]bool      // caller-supplied extras
}

// New creates an Extractor using the given tagger.
func New(t *tagger.Tagger) *Extractor {
	return &Extractor{
		tagger:          t,
		stopwordChecker: stopwords.MustGet("en"),
		custom:          make(map[string]bool),
	}
}

// AddStopWord adds a custom ignored word.
func (e *Extractor) AddStopWord(word string) {
	e.custom[strings.ToLower(word)] = true
}

// Extract tags the words and returns the noun and adjective keywords,
// lowercased, deduplicated, in first-seen order.
func (e *Extractor) Extract(words []string) []string {
	tagged := e.tagger.Tag(words)

	seen := make(map[string]bool, len(tagged))
	var out []string
	for _, tt := range tagged {
		if !isContentTag(tt.Tag) {
			continue
		}
		w := strings.ToLower(tt.Word)
		if len(w) < 2 || seen[w] {
			continue
		}
		if e.custom[w] || e.stopwordChecker.Contains(w) {
			continue
		}
		seen[w] = true
		out = append(out, w)
	}
	return out
}

// isContentTag keeps noun variants and adjectives; numbers, verbs,
// function words, and punctuation carry little keyword value.
func isContentTag(t pos.Tag) bool {
	return t.IsNominal() || t == pos.JJ
}
