package nlp

import (
	"context"
	"fmt"
	"strings"

	"github.com/jdkato/prose/v2"
)

// stopwords is a compact English stopword list. prose does not flag
// stopwords itself, so the provider marks them from this table.
var stopwords = map[string]struct{}{
	"a": {}, "an": {}, "and": {}, "are": {}, "as": {}, "at": {}, "be": {},
	"been": {}, "but": {}, "by": {}, "can": {}, "could": {}, "did": {},
	"do": {}, "does": {}, "for": {}, "from": {}, "had": {}, "has": {},
	"have": {}, "he": {}, "her": {}, "him": {}, "his": {}, "how": {},
	"i": {}, "if": {}, "in": {}, "into": {}, "is": {}, "it": {}, "its": {},
	"me": {}, "my": {}, "no": {}, "not": {}, "of": {}, "on": {}, "or": {},
	"our": {}, "she": {}, "should": {}, "so": {}, "such": {}, "than": {},
	"that": {}, "the": {}, "their": {}, "them": {}, "then": {}, "there": {},
	"these": {}, "they": {}, "this": {}, "those": {}, "to": {}, "was": {},
	"we": {}, "were": {}, "what": {}, "when": {}, "where": {}, "which": {},
	"who": {}, "will": {}, "with": {}, "would": {}, "you": {}, "your": {},
	"about": {}, "after": {}, "all": {}, "also": {}, "any": {}, "more": {},
	"most": {}, "other": {}, "some": {}, "up": {}, "out": {}, "over": {},
	"very": {}, "years": {}, "using": {},
}

// ProseProvider implements Provider with jdkato/prose: offline tokenization,
// Penn POS tagging and NER, the Go counterpart of a spaCy pipeline.
type ProseProvider struct{}

// NewProseProvider constructs the prose-backed provider.
func NewProseProvider() *ProseProvider {
	return &ProseProvider{}
}

// Analyze tags the text. Work is CPU-bound and local; the context is
// checked up front so an already-expired deadline fails fast.
func (p *ProseProvider) Analyze(ctx context.Context, text string) (*Analysis, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	doc, err := prose.NewDocument(text)
	if err != nil {
		return nil, fmt.Errorf("prose document: %w", err)
	}

	analysis := &Analysis{}
	for _, tok := range doc.Tokens() {
		_, stop := stopwords[strings.ToLower(tok.Text)]
		analysis.Tokens = append(analysis.Tokens, Token{
			Text: tok.Text,
			Tag:  tok.Tag,
			Stop: stop,
		})
	}
	for _, ent := range doc.Entities() {
		analysis.Entities = append(analysis.Entities, Entity{
			Text:  ent.Text,
			Label: ent.Label,
		})
	}
	analysis.NounChunks = nounChunks(analysis.Tokens)

	return analysis, nil
}

// nounChunks groups contiguous runs of noun-tagged tokens (with optional
// leading adjectives) into noun phrases.
func nounChunks(tokens []Token) []string {
	var chunks []string
	var run []string
	sawNoun := false

	flush := func() {
		if sawNoun && len(run) > 0 {
			chunks = append(chunks, strings.Join(run, " "))
		}
		run = nil
		sawNoun = false
	}

	for _, tok := range tokens {
		switch {
		case strings.HasPrefix(tok.Tag, "NN"):
			run = append(run, tok.Text)
			sawNoun = true
		case tok.Tag == "JJ" && !sawNoun:
			run = append(run, tok.Text)
		default:
			flush()
		}
	}
	flush()

	return chunks
}
