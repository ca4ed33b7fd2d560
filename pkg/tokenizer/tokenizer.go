// Package tokenizer splits raw text into the word and punctuation tokens
// the tagger consumes. Punctuation becomes standalone tokens (so a
// sentence-final "." reaches the tagger as its own token), while decimal
// numbers like "3.14" and known abbreviations like "Dr." stay whole.
package tokenizer

import (
	"fmt"
	"sort"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/coregx/ahocorasick"
)

// Token is a token with its position in the original text.
type Token struct {
	Text  string // original text slice, casing preserved
	Start int    // byte offset in the original string
	End   int    // byte offset (exclusive)
}

// defaultAbbreviations keep their trailing period attached instead of
// having it split off as a sentence-final token.
var defaultAbbreviations = []string{
	"mr.", "mrs.", "ms.", "dr.", "prof.", "st.", "jr.", "sr.",
	"vs.", "etc.", "e.g.", "i.e.", "inc.", "co.", "no.", "dept.",
}

// Tokenizer splits text into tokens. Immutable after construction and safe
// for concurrent use.
type Tokenizer struct {
	abbrevs *ahocorasick.Automaton
}

// New creates a Tokenizer with the default abbreviation set.
func New() (*Tokenizer, error) {
	return NewWithAbbreviations(defaultAbbreviations)
}

// NewWithAbbreviations creates a Tokenizer protecting the given
// abbreviations (matched case-insensitively). An empty list disables
// protection entirely.
func NewWithAbbreviations(abbrevs []string) (*Tokenizer, error) {
	t := &Tokenizer{}
	if len(abbrevs) == 0 {
		return t, nil
	}

	patterns := make([]string, 0, len(abbrevs))
	for _, a := range abbrevs {
		a = strings.ToLower(strings.TrimSpace(a))
		if a != "" {
			patterns = append(patterns, a)
		}
	}

	automaton, err := ahocorasick.NewBuilder().
		AddStrings(patterns).
		SetMatchKind(ahocorasick.LeftmostLongest).
		SetPrefilter(true).
		Build()
	if err != nil {
		return nil, fmt.Errorf("failed to build abbreviation automaton: %w", err)
	}
	t.abbrevs = automaton
	return t, nil
}

// Tokenize splits text into word and punctuation tokens with byte offsets.
func (t *Tokenizer) Tokenize(text string) []Token {
	spans := t.protectedSpans(text)
	out := make([]Token, 0, 32)

	i := 0
	for i < len(text) {
		// Protected abbreviation: emit whole, period included.
		if end, ok := spans[i]; ok {
			out = append(out, Token{Text: text[i:end], Start: i, End: end})
			i = end
			continue
		}

		r, w := utf8.DecodeRuneInString(text[i:])
		if unicode.IsSpace(r) {
			i += w
			continue
		}

		if !isWordRune(r) {
			// Standalone punctuation token.
			out = append(out, Token{Text: text[i : i+w], Start: i, End: i + w})
			i += w
			continue
		}

		// Word token: letters, digits, internal apostrophes, and periods
		// between digits ("3.14").
		start := i
		i += w
		for i < len(text) {
			if _, ok := spans[i]; ok {
				break
			}
			r, w = utf8.DecodeRuneInString(text[i:])
			if isWordRune(r) {
				i += w
				continue
			}
			if r == '.' && isDigitBoundary(text, start, i) {
				i += w
				continue
			}
			break
		}
		out = append(out, Token{Text: text[start:i], Start: start, End: i})
	}

	return out
}

// Words returns just the token texts, in order.
func (t *Tokenizer) Words(text string) []string {
	tokens := t.Tokenize(text)
	out := make([]string, len(tokens))
	for i, tok := range tokens {
		out[i] = tok.Text
	}
	return out
}

func isWordRune(r rune) bool {
	return unicode.IsLetter(r) || unicode.IsDigit(r) || r == '\''
}

// isDigitBoundary reports whether the period at offset dot sits between two
// digits, i.e. the token so far ends with a digit and a digit follows.
func isDigitBoundary(text string, start, dot int) bool {
	prev, _ := utf8.DecodeLastRuneInString(text[start:dot])
	if !unicode.IsDigit(prev) {
		return false
	}
	next, _ := utf8.DecodeRuneInString(text[dot+1:])
	return unicode.IsDigit(next)
}

// protectedSpans scans for abbreviation occurrences and returns a map from
// start offset to end offset for every non-overlapping match that sits on
// token boundaries. Matching runs over an ASCII-lowered copy, which keeps
// byte offsets identical to the original text.
func (t *Tokenizer) protectedSpans(text string) map[int]int {
	if t.abbrevs == nil {
		return nil
	}

	matches := t.abbrevs.FindAllOverlapping(asciiLower(text))
	if len(matches) == 0 {
		return nil
	}

	// Prefer earlier, then longer matches when they overlap.
	sort.Slice(matches, func(i, j int) bool {
		if matches[i].Start != matches[j].Start {
			return matches[i].Start < matches[j].Start
		}
		return matches[i].End > matches[j].End
	})

	spans := make(map[int]int, len(matches))
	lastEnd := 0
	for _, m := range matches {
		if m.Start < lastEnd {
			continue
		}
		if !onBoundary(text, m.Start, m.End) {
			continue
		}
		spans[m.Start] = m.End
		lastEnd = m.End
	}
	return spans
}

// onBoundary rejects matches embedded in a longer word, e.g. "no." inside
// "casino.x".
func onBoundary(text string, start, end int) bool {
	if start > 0 {
		prev, _ := utf8.DecodeLastRuneInString(text[:start])
		if isWordRune(prev) {
			return false
		}
	}
	if end < len(text) {
		next, _ := utf8.DecodeRuneInString(text[end:])
		if isWordRune(next) {
			return false
		}
	}
	return true
}

// asciiLower lowers only A-Z, preserving byte length so match offsets map
// directly onto the original text.
func asciiLower(s string) []byte {
	b := []byte(s)
	for i, c := range b {
		if 'A' <= c && c <= 'Z' {
			b[i] = c + ('a' - 'A')
		}
	}
	return b
}
