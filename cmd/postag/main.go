// Command postag tags text with parts of speech, one word/tag pair per line.
//
// Usage:
//
//	postag -lexicon lexicon.txt "The ball rolled down the street."
//	echo "The ball rolled down the street." | postag
//
// With -db, the lexicon is cached in a SQLite file: the first run imports
// the lexicon file, later runs load from the database directly.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/kittclouds/postag/internal/store"
	"github.com/kittclouds/postag/pkg/keywords"
	"github.com/kittclouds/postag/pkg/lexicon"
	"github.com/kittclouds/postag/pkg/tagger"
	"github.com/kittclouds/postag/pkg/tokenizer"
)

const defaultLexiconPath = "lexicon.txt"

func main() {
	lexPath := flag.String("lexicon", defaultLexiconPath, "path to the lexicon file")
	dbPath := flag.String("db", "", "optional SQLite lexicon cache")
	showKeywords := flag.Bool("keywords", false, "also print extracted keywords")
	flag.Parse()

	text, err := inputText(flag.Args())
	if err != nil {
		fatal(err)
	}
	if strings.TrimSpace(text) == "" {
		fmt.Fprintln(os.Stderr, "usage: postag [-lexicon file] [-db file] [-keywords] \"text to tag\"")
		os.Exit(2)
	}

	lex, err := loadLexicon(*lexPath, *dbPath)
	if err != nil {
		fatal(err)
	}

	tok, err := tokenizer.New()
	if err != nil {
		fatal(err)
	}

	words := tok.Words(text)
	t := tagger.New(lex)
	for _, s := range t.TagStrings(words) {
		fmt.Println(s)
	}

	if *showKeywords {
		ex := keywords.New(t)
		fmt.Println("keywords:", strings.Join(ex.Extract(words), ", "))
	}
}

// loadLexicon resolves the lexicon from the SQLite cache when -db is set,
// importing the lexicon file on first use, and from the file otherwise.
// A missing default lexicon file falls back to the built-in closed-class
// lexicon; an explicitly named file must exist.
func loadLexicon(lexPath, dbPath string) (*lexicon.Lexicon, error) {
	if dbPath != "" {
		return loadFromStore(lexPath, dbPath)
	}

	lex, err := lexicon.LoadFile(lexPath)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) && lexPath == defaultLexiconPath {
			fmt.Fprintln(os.Stderr, "postag: no lexicon file, using built-in closed-class lexicon")
			return lexicon.Builtin(), nil
		}
		return nil, err
	}
	return lex, nil
}

func loadFromStore(lexPath, dbPath string) (*lexicon.Lexicon, error) {
	s, err := store.NewLexiconStoreWithDSN(dbPath)
	if err != nil {
		return nil, err
	}
	defer s.Close()

	n, err := s.Count()
	if err != nil {
		return nil, err
	}
	if n == 0 {
		f, err := os.Open(lexPath)
		if err != nil {
			return nil, fmt.Errorf("empty lexicon cache and no lexicon file: %w", err)
		}
		defer f.Close()

		imported, err := s.Import(f)
		if err != nil {
			return nil, err
		}
		fmt.Fprintf(os.Stderr, "postag: imported %d lexicon entries into %s\n", imported, dbPath)
	}

	return s.LoadLexicon()
}

func inputText(args []string) (string, error) {
	if len(args) > 0 {
		return strings.Join(args, " "), nil
	}
	data, err := io.ReadAll(os.Stdin)
	if err != nil {
		return "", fmt.Errorf("failed to read stdin: %w", err)
	}
	return string(data), nil
}

func fatal(err error) {
	fmt.Fprintln(os.Stderr, "postag:", err)
	os.Exit(1)
}
