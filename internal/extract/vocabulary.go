// Package extract pulls skill candidates out of resume text using two
// strategies: controlled-vocabulary matching (primary) and NLP-assisted
// extraction (fallback), composed by the Pipeline.
package extract

import (
	"strings"

	"github.com/rizeos/skill-match/internal/vocab"
)

// extractorSuffixes are trailing role words stripped from line-scan items
// before dictionary lookup.
var extractorSuffixes = map[string]struct{}{
	"framework":  {},
	"library":    {},
	"tool":       {},
	"technology": {},
	"platform":   {},
	"service":    {},
	"api":        {},
	"sdk":        {},
}

// itemSplitter matches the delimiters used in skill listings.
func splitItems(s string) []string {
	return strings.FieldsFunc(s, func(r rune) bool {
		return r == ',' || r == ';' || r == '|' || r == '/'
	})
}

// FromVocabulary extracts candidates from text against the controlled
// vocabulary. Two passes: a word-boundary scan with every dictionary
// entry, then a line-by-line scan of delimiter-separated listings. Each
// hit contributes the dictionary's canonical-cased form.
func FromVocabulary(text string) map[string]struct{} {
	found := make(map[string]struct{})

	for _, entry := range vocab.Entries() {
		if entry.Pattern.MatchString(text) {
			found[entry.Canonical] = struct{}{}
		}
	}

	for _, line := range strings.Split(text, "\n") {
		scanLine(line, found)
	}

	return found
}

// scanLine processes a single listing line: take the text after the first
// colon (or the whole line), split on list delimiters, and look each item
// up against the dictionary with and without its role suffix.
func scanLine(line string, found map[string]struct{}) {
	body := line
	if idx := strings.Index(line, ":"); idx >= 0 {
		body = line[idx+1:]
	}

	for _, item := range splitItems(body) {
		item = strings.TrimSpace(item)
		if item == "" {
			continue
		}
		lower := strings.ToLower(item)
		cleaned := stripExtractorSuffix(lower)

		if canonical, ok := vocab.Match(cleaned); ok {
			found[canonical] = struct{}{}
			continue
		}
		if canonical, ok := vocab.Match(lower); ok {
			found[canonical] = struct{}{}
		}
	}
}

func stripExtractorSuffix(lower string) string {
	fields := strings.Fields(lower)
	if len(fields) == 0 {
		return lower
	}
	if _, ok := extractorSuffixes[fields[len(fields)-1]]; ok {
		fields = fields[:len(fields)-1]
	}
	return strings.Join(fields, " ")
}
