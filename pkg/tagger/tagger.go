// Package tagger assigns part-of-speech tags with a lexicon lookup followed
// by a fixed, ordered chain of contextual correction rules.
//
// Two of the rules look one token back, so tagging a sentence is inherently
// sequential: the lookback Window threads state from each token to the next
// and must live for the whole sentence. Independent sentences may be tagged
// concurrently as long as each call gets its own Window; Tag arranges that.
package tagger

import (
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/kittclouds/postag/pkg/lexicon"
	"github.com/kittclouds/postag/pkg/pos"
)

// Window is the one-token lookback state threaded through a sentence.
// It carries the previous token's final tag (for the determiner rule) and
// raw text (for the "would" rule), and is updated exactly once per token.
// A fresh Window must be used for each independent sentence.
type Window struct {
	prevTag  pos.Tag
	prevWord string
	seen     bool
}

// NewWindow returns an empty lookback window for a fresh sentence.
func NewWindow() *Window {
	return &Window{}
}

// observe records the current token after its pipeline finished, so the
// next token sees it as "previous".
func (w *Window) observe(word string, tag pos.Tag) {
	w.prevTag = tag
	w.prevWord = word
	w.seen = true
}

// Tagger tags token sequences against an immutable lexicon.
// Safe for concurrent use; every Tag call gets its own Window.
type Tagger struct {
	lex *lexicon.Lexicon
}

// New creates a Tagger over the given lexicon.
func New(lex *lexicon.Lexicon) *Tagger {
	return &Tagger{lex: lex}
}

// Tag tags one sentence. The result preserves input order and length, and
// every token carries a non-empty tag.
func (t *Tagger) Tag(words []string) []pos.TaggedToken {
	tagged := make([]pos.TaggedToken, 0, len(words))
	win := NewWindow()
	for _, w := range words {
		tagged = append(tagged, t.TagWord(w, win))
	}
	return tagged
}

// TagStrings tags one sentence and returns the combined word/tag forms.
func (t *Tagger) TagStrings(words []string) []string {
	tagged := t.Tag(words)
	out := make([]string, len(tagged))
	for i, tt := range tagged {
		out[i] = tt.String()
	}
	return out
}

// TagWord runs a single token through the full rule chain, reading and then
// updating the lookback window. Callers tagging a sentence token by token
// must reuse the same Window across the whole sentence; a Window must never
// be shared between unrelated sentences.
func (t *Tagger) TagWord(word string, win *Window) pos.TaggedToken {
	tag := t.initialTag(word)
	tag = applyRules(word, tag, win)
	win.observe(word, tag)
	return pos.TaggedToken{Word: word, Tag: tag}
}

// initialTag is rule 0: the first candidate from the lexicon, or for
// unknown words "^" when the word is a single character and NN otherwise.
func (t *Tagger) initialTag(word string) pos.Tag {
	if tags, ok := t.lex.Lookup(word); ok {
		return tags[0]
	}
	if utf8.RuneCountInString(word) == 1 {
		return pos.Unknown
	}
	return pos.NN
}

// applyRules runs rules 1 through 8 in order over one token. Each rule
// consumes the previous rule's output; there is no backtracking.
func applyRules(word string, tag pos.Tag, win *Window) pos.Tag {
	// rule 1: DT, {VBD | VBP | VB} --> DT, NN
	if win.seen && win.prevTag == pos.DT && tag.IsBareVerb() {
		tag = pos.NN
	}

	// rule 2: convert a noun to a number (CD) if "." appears in the word
	// or the word parses as a float
	if tag.IsNominal() && isNumeral(word) {
		tag = pos.CD
	}

	// rule 3: convert a noun to a past participle if the word ends with "ed"
	if tag.IsNominal() && strings.HasSuffix(word, "ed") {
		tag = pos.VBN
	}

	// rule 4: convert any type to adverb if it ends in "ly"
	if strings.HasSuffix(word, "ly") {
		tag = pos.RB
	}

	// rule 5: convert a common noun to an adjective if it ends with "al"
	if tag.IsCommonNoun() && strings.HasSuffix(word, "al") {
		tag = pos.JJ
	}

	// rule 6: convert a noun to a verb if the preceding word is "would"
	if win.seen && tag.IsCommonNoun() && strings.EqualFold(win.prevWord, "would") {
		tag = pos.VB
	}

	// rule 7: a common noun ending in "s" is a plural common noun
	if tag == pos.NN && strings.HasSuffix(word, "s") {
		tag = pos.NNS
	}

	// rule 8: a common noun ending in "ing" is a gerund
	if tag == pos.NN && strings.HasSuffix(word, "ing") {
		tag = pos.VBG
	}

	return tag
}

// isNumeral reports whether the word looks numeric. A parse failure just
// means "not a number"; it is never an error.
func isNumeral(word string) bool {
	if strings.Contains(word, ".") {
		return true
	}
	_, err := strconv.ParseFloat(word, 64)
	return err == nil
}
