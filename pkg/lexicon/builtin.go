package lexicon

import "github.com/kittclouds/postag/pkg/pos"

// Builtin returns a minimal closed-class lexicon: determiners, modals,
// pronouns, prepositions and conjunctions with their Penn tags. It lets the
// tagger degrade gracefully when no lexicon file is available — open-class
// words then fall to the unknown-word rule and the suffix rules.
func Builtin() *Lexicon {
	m := make(map[string][]pos.Tag, 128)

	// Determiners
	for _, w := range []string{"the", "a", "an", "this", "that", "these", "those",
		"some", "any", "no", "every", "each", "all", "both", "another"} {
		m[w] = []pos.Tag{pos.DT}
	}

	// Modals
	for _, w := range []string{"can", "could", "will", "would", "shall", "should",
		"may", "might", "must"} {
		m[w] = []pos.Tag{pos.MD}
	}

	// Prepositions
	for _, w := range []string{"in", "on", "at", "to", "for", "with", "by", "from",
		"of", "about", "into", "through", "during", "before", "after", "above",
		"below", "between", "under", "over", "against", "among", "upon", "within",
		"without", "across", "along", "toward", "towards"} {
		m[w] = []pos.Tag{pos.IN}
	}

	// Pronouns
	for _, w := range []string{"i", "you", "he", "she", "it", "we", "they",
		"me", "him", "her", "us", "them", "myself", "yourself", "himself",
		"herself", "itself", "ourselves", "themselves"} {
		m[w] = []pos.Tag{pos.PRP}
	}

	// Conjunctions
	for _, w := range []string{"and", "or", "but", "nor", "yet", "so"} {
		m[w] = []pos.Tag{pos.CC}
	}

	// Punctuation, Penn style: sentence-final marks tag ".", mid-sentence
	// separators tag ":".
	for _, w := range []string{".", "?", "!"} {
		m[w] = []pos.Tag{pos.Tag(".")}
	}
	for _, w := range []string{";", ":", "-"} {
		m[w] = []pos.Tag{pos.Tag(":")}
	}
	m[","] = []pos.Tag{pos.Tag(",")}

	return &Lexicon{entries: m}
}
