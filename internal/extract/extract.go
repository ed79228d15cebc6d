package extract

import (
	"context"
	"log"
	"sort"
	"strings"

	"github.com/rizeos/skill-match/internal/nlp"
	"github.com/rizeos/skill-match/internal/segment"
	"github.com/rizeos/skill-match/internal/skills"
)

// fallbackThreshold is the vocabulary-pass yield below which the NLP
// fallback is also consulted.
const fallbackThreshold = 5

// DefaultLimit caps the number of returned skills.
const DefaultLimit = 25

// Pipeline composes segmentation, the two extraction strategies, and
// normalization into the endpoint-level extraction policy.
type Pipeline struct {
	// Tagger lazily resolves the NLP provider. It is only called when the
	// vocabulary pass comes up short; a resolution or analysis failure
	// degrades to vocabulary-only results instead of failing the request.
	Tagger func(ctx context.Context) (nlp.Provider, error)

	// Limit caps the result length. Zero means DefaultLimit.
	Limit int
}

// Skills extracts the normalized skill list from a document: isolate the
// skills section (whole document minus education lines when none is
// found), run the vocabulary extractor, union in the fallback extractor
// when the yield is low, then normalize, dedupe, sort and cap.
func (p *Pipeline) Skills(ctx context.Context, document string) []string {
	text := segment.SkillsSection(document)
	if text == "" {
		text = segment.WithoutEducation(document)
	}

	candidates := FromVocabulary(text)

	if len(candidates) < fallbackThreshold && p.Tagger != nil {
		if extra := p.runFallback(ctx, text); extra != nil {
			for c := range extra {
				candidates[c] = struct{}{}
			}
		}
	}

	return p.finalize(candidates)
}

// runFallback consults the NLP provider, swallowing failures: fallback
// extraction is a secondary signal and must not take down the request.
func (p *Pipeline) runFallback(ctx context.Context, text string) map[string]struct{} {
	tagger, err := p.Tagger(ctx)
	if err != nil {
		log.Printf("fallback extraction unavailable: %v", err)
		return nil
	}
	found, err := FromTagger(ctx, tagger, text)
	if err != nil {
		log.Printf("fallback extraction failed: %v", err)
		return nil
	}
	return found
}

// finalize normalizes candidates, dedupes by normalized string, sorts
// case-insensitively and truncates to the limit.
func (p *Pipeline) finalize(candidates map[string]struct{}) []string {
	ordered := make([]string, 0, len(candidates))
	for candidate := range candidates {
		ordered = append(ordered, candidate)
	}
	sort.Strings(ordered)

	seen := make(map[string]struct{}, len(candidates))
	result := make([]string, 0, len(candidates))

	for _, candidate := range ordered {
		normalized := skills.Normalize(candidate)
		if normalized == "" {
			continue
		}
		key := strings.ToLower(normalized)
		if _, dup := seen[key]; dup {
			continue
		}
		seen[key] = struct{}{}
		result = append(result, normalized)
	}

	sort.Slice(result, func(i, j int) bool {
		return strings.ToLower(result[i]) < strings.ToLower(result[j])
	})

	limit := p.Limit
	if limit <= 0 {
		limit = DefaultLimit
	}
	if len(result) > limit {
		result = result[:limit]
	}
	return result
}
