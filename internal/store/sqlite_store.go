// Package store provides SQLite-backed persistence for lexicon data.
// Uses ncruces/go-sqlite3/driver which provides a database/sql interface.
//
// The store lets a large lexicon text file be imported once and reloaded
// cheaply on later runs, and supports per-word queries without
// materializing the whole table.
package store

import (
	"bufio"
	"database/sql"
	"fmt"
	"io"
	"strings"
	"sync"

	_ "github.com/ncruces/go-sqlite3/driver"
	_ "github.com/ncruces/go-sqlite3/embed"

	"github.com/kittclouds/postag/pkg/lexicon"
	"github.com/kittclouds/postag/pkg/pos"
)

// LexiconStore is the SQLite-backed lexicon table.
// Thread-safe for concurrent readers.
type LexiconStore struct {
	mu sync.RWMutex
	db *sql.DB
}

// schema holds one row per word; tags are stored space-separated in
// priority order, exactly as in the source file format.
const schema = `
CREATE TABLE IF NOT EXISTS lexicon_entries (
    word TEXT PRIMARY KEY,
    tags TEXT NOT NULL
);
`

// NewLexiconStore creates a new in-memory store.
func NewLexiconStore() (*LexiconStore, error) {
	return NewLexiconStoreWithDSN(":memory:")
}

// NewLexiconStoreWithDSN creates a store with a specific data source name.
// Use ":memory:" for in-memory or a file path for persistent storage.
func NewLexiconStoreWithDSN(dsn string) (*LexiconStore, error) {
	db, err := sql.Open("sqlite3", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to create schema: %w", err)
	}

	return &LexiconStore{db: db}, nil
}

// Close closes the database connection.
func (s *LexiconStore) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// Import reads lexicon-format lines from r into the store, replacing
// existing words. Malformed lines are skipped. Returns the number of
// entries written.
func (s *LexiconStore) Import(r io.Reader) (int, error) {
	var entries []lexicon.Entry
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for scanner.Scan() {
		if e, ok := lexicon.ParseLine(scanner.Text()); ok {
			entries = append(entries, e)
		}
	}
	if err := scanner.Err(); err != nil {
		return 0, fmt.Errorf("failed to read lexicon: %w", err)
	}

	if err := s.ImportEntries(entries); err != nil {
		return 0, err
	}
	return len(entries), nil
}

// ImportEntries writes parsed entries in one transaction.
func (s *LexiconStore) ImportEntries(entries []lexicon.Entry) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}

	stmt, err := tx.Prepare(`
		INSERT INTO lexicon_entries (word, tags) VALUES (?, ?)
		ON CONFLICT(word) DO UPDATE SET tags = excluded.tags`)
	if err != nil {
		tx.Rollback()
		return fmt.Errorf("failed to prepare insert: %w", err)
	}
	defer stmt.Close()

	for _, e := range entries {
		if _, err := stmt.Exec(e.Word, joinTags(e.Tags)); err != nil {
			tx.Rollback()
			return fmt.Errorf("failed to insert %q: %w", e.Word, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit import: %w", err)
	}
	return nil
}

// LookupWord returns the candidate tags for one word: exact match first,
// then the lowercased form. Absence is not an error; it returns (nil, nil).
func (s *LexiconStore) LookupWord(word string) ([]pos.Tag, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var tags string
	err := s.db.QueryRow(
		`SELECT tags FROM lexicon_entries WHERE word = ?`, word).Scan(&tags)
	if err == sql.ErrNoRows {
		err = s.db.QueryRow(
			`SELECT tags FROM lexicon_entries WHERE word = ?`,
			strings.ToLower(word)).Scan(&tags)
	}
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to look up %q: %w", word, err)
	}
	return splitTags(tags), nil
}

// LoadLexicon materializes the whole table as an immutable Lexicon.
func (s *LexiconStore) LoadLexicon() (*lexicon.Lexicon, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	rows, err := s.db.Query(`SELECT word, tags FROM lexicon_entries`)
	if err != nil {
		return nil, fmt.Errorf("failed to query lexicon: %w", err)
	}
	defer rows.Close()

	var entries []lexicon.Entry
	for rows.Next() {
		var word, tags string
		if err := rows.Scan(&word, &tags); err != nil {
			return nil, fmt.Errorf("failed to scan lexicon row: %w", err)
		}
		entries = append(entries, lexicon.Entry{Word: word, Tags: splitTags(tags)})
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read lexicon rows: %w", err)
	}

	return lexicon.New(entries), nil
}

// Count returns the number of stored words.
func (s *LexiconStore) Count() (int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var n int
	if err := s.db.QueryRow(`SELECT COUNT(*) FROM lexicon_entries`).Scan(&n); err != nil {
		return 0, fmt.Errorf("failed to count entries: %w", err)
	}
	return n, nil
}

func joinTags(tags []pos.Tag) string {
	parts := make([]string, len(tags))
	for i, t := range tags {
		parts[i] = string(t)
	}
	return strings.Join(parts, " ")
}

func splitTags(s string) []pos.Tag {
	fields := strings.Fields(s)
	tags := make([]pos.Tag, len(fields))
	for i, f := range fields {
		tags[i] = pos.Tag(f)
	}
	return tags
}
