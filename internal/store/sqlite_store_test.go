package store

import (
	"strings"
	"testing"

	"github.com/kittclouds/postag/pkg/lexicon"
	"github.com/kittclouds/postag/pkg/pos"
)

func TestImportAndLookup(t *testing.T) {
	s, err := NewLexiconStore()
	if err != nil {
		t.Fatalf("Failed to create store: %v", err)
	}
	defer s.Close()

	src := "the DT\nball NN\nrun VB VBP NN\nskipme\n"
	n, err := s.Import(strings.NewReader(src))
	if err != nil {
		t.Fatalf("Import failed: %v", err)
	}
	if n != 3 {
		t.Errorf("Import wrote %d entries, want 3 (malformed line skipped)", n)
	}

	// Exact lookup, tags in priority order
	tags, err := s.LookupWord("run")
	if err != nil {
		t.Fatalf("LookupWord failed: %v", err)
	}
	if len(tags) != 3 || tags[0] != pos.VB {
		t.Errorf("LookupWord(run) = %v, want [VB VBP NN]", tags)
	}

	// Lowercase fallback
	tags, err = s.LookupWord("Ball")
	if err != nil {
		t.Fatalf("LookupWord failed: %v", err)
	}
	if len(tags) != 1 || tags[0] != pos.NN {
		t.Errorf("LookupWord(Ball) = %v, want [NN]", tags)
	}

	// Absence is not an error
	tags, err = s.LookupWord("nonexistent")
	if err != nil {
		t.Fatalf("LookupWord on missing word errored: %v", err)
	}
	if tags != nil {
		t.Errorf("LookupWord(nonexistent) = %v, want nil", tags)
	}
}

func TestImportReplacesExisting(t *testing.T) {
	s, err := NewLexiconStore()
	if err != nil {
		t.Fatalf("Failed to create store: %v", err)
	}
	defer s.Close()

	if err := s.ImportEntries([]lexicon.Entry{
		{Word: "run", Tags: []pos.Tag{pos.NN}},
	}); err != nil {
		t.Fatalf("first import failed: %v", err)
	}
	if err := s.ImportEntries([]lexicon.Entry{
		{Word: "run", Tags: []pos.Tag{pos.VB, pos.NN}},
	}); err != nil {
		t.Fatalf("second import failed: %v", err)
	}

	count, err := s.Count()
	if err != nil {
		t.Fatalf("Count failed: %v", err)
	}
	if count != 1 {
		t.Errorf("Count = %d, want 1 after replacement", count)
	}

	tags, err := s.LookupWord("run")
	if err != nil {
		t.Fatalf("LookupWord failed: %v", err)
	}
	if len(tags) != 2 || tags[0] != pos.VB {
		t.Errorf("LookupWord(run) = %v, want replaced entry [VB NN]", tags)
	}
}

func TestLoadLexicon(t *testing.T) {
	s, err := NewLexiconStore()
	if err != nil {
		t.Fatalf("Failed to create store: %v", err)
	}
	defer s.Close()

	if _, err := s.Import(strings.NewReader("the DT\nstreet NN\n")); err != nil {
		t.Fatalf("Import failed: %v", err)
	}

	lex, err := s.LoadLexicon()
	if err != nil {
		t.Fatalf("LoadLexicon failed: %v", err)
	}
	if lex.Len() != 2 {
		t.Errorf("loaded lexicon has %d entries, want 2", lex.Len())
	}

	tags, ok := lex.Lookup("street")
	if !ok || tags[0] != pos.NN {
		t.Errorf("Lookup(street) = %v, %v", tags, ok)
	}
}

func TestPersistence(t *testing.T) {
	dsn := t.TempDir() + "/lexicon.db"

	s, err := NewLexiconStoreWithDSN(dsn)
	if err != nil {
		t.Fatalf("Failed to create store: %v", err)
	}
	if _, err := s.Import(strings.NewReader("ball NN\n")); err != nil {
		t.Fatalf("Import failed: %v", err)
	}
	if err := s.Close(); err != nil {
		t.Fatalf("Close failed: %v", err)
	}

	// Reopen and verify the data survived
	s2, err := NewLexiconStoreWithDSN(dsn)
	if err != nil {
		t.Fatalf("Failed to reopen store: %v", err)
	}
	defer s2.Close()

	count, err := s2.Count()
	if err != nil {
		t.Fatalf("Count failed: %v", err)
	}
	if count != 1 {
		t.Errorf("Count after reopen = %d, want 1", count)
	}
}
