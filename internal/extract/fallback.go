package extract

import (
	"context"
	"regexp"
	"strings"

	"github.com/rizeos/skill-match/internal/nlp"
	"github.com/rizeos/skill-match/internal/vocab"
)

// productLabels are the entity categories treated as product-like. The
// original tagger also emitted NORP for technology communities.
var productLabels = map[string]struct{}{
	"PRODUCT": {},
	"ORG":     {},
	"NORP":    {},
}

// nounTags are the part-of-speech tags accepted from the token stream.
var nounTags = map[string]struct{}{
	"NN": {}, "NNS": {}, "NNP": {}, "NNPS": {},
}

// Lexical shapes of technical terms.
var (
	reTrailingSymbol = regexp.MustCompile(`(\+\+|#)$`)
	reDottedWord     = regexp.MustCompile(`^\w+\.\w+$`)
	reWordDigits     = regexp.MustCompile(`^[a-zA-Z]+\d+$`)
	reBareLower      = regexp.MustCompile(`^[a-z]{2,}$`)
)

var techHints = []string{"api", "sdk", "framework", "library", "tool", "platform"}

// FromTagger extracts candidates with the NLP capability provider. It is
// invoked only when the vocabulary pass yields too few candidates. Entities
// with product-like labels and noun tokens are screened through the shared
// validation gate and the skill dictionary.
func FromTagger(ctx context.Context, tagger nlp.Provider, text string) (map[string]struct{}, error) {
	analysis, err := tagger.Analyze(ctx, text)
	if err != nil {
		return nil, err
	}

	found := make(map[string]struct{})

	for _, ent := range analysis.Entities {
		if _, ok := productLabels[ent.Label]; !ok {
			continue
		}
		candidate := strings.TrimSpace(ent.Text)
		if !validCandidate(candidate) {
			continue
		}
		if canonical, ok := vocab.MatchBoundary(candidate); ok {
			found[canonical] = struct{}{}
		}
	}

	for _, tok := range analysis.Tokens {
		if tok.Stop {
			continue
		}
		if _, ok := nounTags[tok.Tag]; !ok {
			continue
		}
		candidate := strings.TrimSpace(tok.Text)
		lower := strings.ToLower(candidate)

		// Core skills skip every other filter.
		if vocab.IsCore(lower) {
			if canonical, ok := vocab.Canonical(lower); ok {
				found[canonical] = struct{}{}
			} else {
				found[candidate] = struct{}{}
			}
			continue
		}

		if !validCandidate(candidate) || !looksTechnical(candidate) {
			continue
		}
		if canonical, ok := vocab.MatchBoundary(candidate); ok {
			found[canonical] = struct{}{}
		}
	}

	return found, nil
}

// looksTechnical applies the lexical heuristics for technical terms:
// trailing ++/#, dotted names, versioned names, bare lowercase words, or
// an embedded role hint.
func looksTechnical(candidate string) bool {
	if reTrailingSymbol.MatchString(candidate) ||
		reDottedWord.MatchString(candidate) ||
		reWordDigits.MatchString(candidate) ||
		reBareLower.MatchString(candidate) {
		return true
	}
	lower := strings.ToLower(candidate)
	for _, hint := range techHints {
		if strings.Contains(lower, hint) {
			return true
		}
	}
	return false
}
