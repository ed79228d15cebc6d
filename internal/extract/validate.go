package extract

import (
	"strings"
	"unicode"

	"github.com/rizeos/skill-match/internal/vocab"
)

const (
	maxCandidateLen      = 30
	maxCandidateWords    = 3
	maxUpperMultiWordLen = 15
)

// validCandidate is the shared gate for fallback candidates. It rejects
// strings that are too long, purely numeric, free of letters, tainted by a
// negative keyword, too many words, or shaped like an institution name
// (long all-caps multi-word strings).
func validCandidate(candidate string) bool {
	trimmed := strings.TrimSpace(candidate)
	if trimmed == "" || len(trimmed) > maxCandidateLen {
		return false
	}
	if !containsLetter(trimmed) {
		return false
	}
	if vocab.IsNegative(trimmed) {
		return false
	}
	words := strings.Fields(trimmed)
	if len(words) > maxCandidateWords {
		return false
	}
	if len(words) > 1 && trimmed == strings.ToUpper(trimmed) && len(trimmed) > maxUpperMultiWordLen {
		return false
	}
	return true
}

func containsLetter(s string) bool {
	for _, r := range s {
		if unicode.IsLetter(r) {
			return true
		}
	}
	return false
}
