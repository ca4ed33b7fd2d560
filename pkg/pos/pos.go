// Package pos defines part-of-speech tags and tagged tokens.
// Tag codes follow the Penn Treebank conventions used by lexicon files.
// The vocabulary is open: tags originate from user-supplied data, so Tag is
// a string type with constants for the codes the rule pipeline cares about.
package pos

import "strings"

// Tag is a part-of-speech code, e.g. "NN" or "VBD".
type Tag string

// Tags referenced by the correction rules and the built-in lexicon.
const (
	NN  Tag = "NN"  // singular common noun
	NNS Tag = "NNS" // plural common noun
	VB  Tag = "VB"  // base verb
	VBD Tag = "VBD" // past tense verb
	VBP Tag = "VBP" // non-3rd person present verb
	VBG Tag = "VBG" // gerund / present participle
	VBN Tag = "VBN" // past participle
	DT  Tag = "DT"  // determiner
	RB  Tag = "RB"  // adverb
	JJ  Tag = "JJ"  // adjective
	CD  Tag = "CD"  // cardinal number
	MD  Tag = "MD"  // modal
	IN  Tag = "IN"  // preposition
	PRP Tag = "PRP" // personal pronoun
	CC  Tag = "CC"  // coordinating conjunction

	// Unknown marks single-character tokens absent from the lexicon.
	Unknown Tag = "^"
)

func (t Tag) String() string {
	return string(t)
}

// IsNominal reports whether the tag is any noun variant (NN, NNS, NNP, ...).
func (t Tag) IsNominal() bool {
	return strings.HasPrefix(string(t), "N")
}

// IsCommonNoun reports whether the tag is a common noun (NN or NNS).
func (t Tag) IsCommonNoun() bool {
	return strings.HasPrefix(string(t), "NN")
}

// IsBareVerb reports whether the tag is one of the verb forms that cannot
// directly follow a determiner (VB, VBD, VBP).
func (t Tag) IsBareVerb() bool {
	return t == VB || t == VBD || t == VBP
}

// TaggedToken pairs a word with its final tag.
type TaggedToken struct {
	Word string
	Tag  Tag
}

// String returns the combined word/tag form, e.g. "ball/NN".
func (tt TaggedToken) String() string {
	return tt.Word + "/" + string(tt.Tag)
}
