// Package lexicon provides the word-to-candidate-tags dictionary backing
// the tagger. A Lexicon is immutable after construction and safe for
// unrestricted concurrent lookups.
//
// The on-disk format is one entry per line, fields separated by a single
// space: "<word> <tag1> <tag2> ...". The first tag is the default for that
// word. Lines without a space are skipped.
package lexicon

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/kittclouds/postag/pkg/pos"
)

// Entry is one parsed lexicon record: a word and its candidate tags in
// priority order. Index 0 is the default tag used when no rule fires.
type Entry struct {
	Word string
	Tags []pos.Tag
}

// Lexicon maps words (case-sensitive) to their candidate tags, with a
// case-insensitive fallback on lookup.
type Lexicon struct {
	entries map[string][]pos.Tag
}

// New builds a Lexicon from parsed entries. A word appearing twice keeps
// the later entry, matching the map semantics of the source format.
func New(entries []Entry) *Lexicon {
	m := make(map[string][]pos.Tag, len(entries))
	for _, e := range entries {
		if e.Word == "" || len(e.Tags) == 0 {
			continue
		}
		m[e.Word] = e.Tags
	}
	return &Lexicon{entries: m}
}

// Lookup returns the candidate tags for a word: exact match first, then the
// lowercased form. The second return is false when neither form is present.
func (l *Lexicon) Lookup(word string) ([]pos.Tag, bool) {
	if tags, ok := l.entries[word]; ok {
		return tags, true
	}
	if tags, ok := l.entries[strings.ToLower(word)]; ok {
		return tags, true
	}
	return nil, false
}

// Contains reports whether the word (exact or lowercased) has an entry.
func (l *Lexicon) Contains(word string) bool {
	_, ok := l.Lookup(word)
	return ok
}

// Len returns the number of distinct words in the lexicon.
func (l *Lexicon) Len() int {
	return len(l.entries)
}

// Entries returns all records in unspecified order. Intended for bulk
// export (e.g. importing into a persistent store).
func (l *Lexicon) Entries() []Entry {
	out := make([]Entry, 0, len(l.entries))
	for word, tags := range l.entries {
		out = append(out, Entry{Word: word, Tags: tags})
	}
	return out
}

// ParseLine parses a single "<word> <tag1> <tag2>..." line. The second
// return is false for lines that carry no tags (no space): those are
// skipped by the loaders, never treated as errors.
func ParseLine(line string) (Entry, bool) {
	fields := strings.Split(line, " ")
	if len(fields) < 2 {
		return Entry{}, false
	}
	tags := make([]pos.Tag, 0, len(fields)-1)
	for _, f := range fields[1:] {
		if f == "" {
			continue
		}
		tags = append(tags, pos.Tag(f))
	}
	if fields[0] == "" || len(tags) == 0 {
		return Entry{}, false
	}
	return Entry{Word: fields[0], Tags: tags}, true
}

// Load reads lexicon-format lines from r and builds a Lexicon.
// Malformed lines are skipped; only I/O failures are errors.
func Load(r io.Reader) (*Lexicon, error) {
	var entries []Entry
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for scanner.Scan() {
		if e, ok := ParseLine(scanner.Text()); ok {
			entries = append(entries, e)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read lexicon: %w", err)
	}
	return New(entries), nil
}

// LoadFile reads a lexicon from a file on disk.
func LoadFile(path string) (*Lexicon, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open lexicon file: %w", err)
	}
	defer f.Close()
	lex, err := Load(f)
	if err != nil {
		return nil, fmt.Errorf("failed to load lexicon file %s: %w", path, err)
	}
	return lex, nil
}
