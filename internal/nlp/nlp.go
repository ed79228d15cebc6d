// Package nlp abstracts the NLP capability provider: given text, produce
// part-of-speech tagged tokens, named entities, and noun phrases.
package nlp

import "context"

// Token is a single tagged token.
type Token struct {
	Text string
	Tag  string // Penn Treebank part-of-speech tag
	Stop bool   // common English stopword
}

// Entity is a named entity with its category label.
type Entity struct {
	Text  string
	Label string
}

// Analysis is the full provider output for one text.
type Analysis struct {
	Tokens     []Token
	Entities   []Entity
	NounChunks []string
}

// Provider produces an Analysis for a text. Implementations may be slow;
// callers bound each call with a context deadline.
type Provider interface {
	Analyze(ctx context.Context, text string) (*Analysis, error)
}
