// Package skills provides canonicalization of raw skill candidates.
package skills

import (
	"strings"

	"github.com/rizeos/skill-match/internal/vocab"
)

// roleSuffixes are trailing words that describe what kind of thing a skill
// is rather than the skill itself ("React framework", "Stripe API").
// Exactly one trailing occurrence is stripped during normalization.
var roleSuffixes = map[string]struct{}{
	"framework":   {},
	"library":     {},
	"tool":        {},
	"technology":  {},
	"platform":    {},
	"service":     {},
	"api":         {},
	"sdk":         {},
	"language":    {},
	"programming": {},
}

// Normalize canonicalizes a skill candidate: lowercase and trim, strip one
// trailing role-suffix word, resolve through the alias table, then
// title-case. It is a pure function of its input and the static alias
// table, so identical input always yields identical output.
func Normalize(candidate string) string {
	trimmed := strings.TrimSpace(candidate)
	if trimmed == "" {
		return ""
	}
	lower := strings.ToLower(trimmed)

	cleaned := stripRoleSuffix(lower)
	if cleaned == "" {
		// A bare suffix word ("framework") cleans to nothing; keep the input.
		cleaned = lower
	}

	if canonical, ok := vocab.Alias(cleaned); ok {
		return canonical
	}
	return titleCase(cleaned)
}

// stripRoleSuffix removes one trailing role-suffix word, if present.
func stripRoleSuffix(lower string) string {
	fields := strings.Fields(lower)
	if len(fields) == 0 {
		return ""
	}
	if _, ok := roleSuffixes[fields[len(fields)-1]]; ok {
		fields = fields[:len(fields)-1]
	}
	return strings.Join(fields, " ")
}

// titleCase capitalizes a single word's first letter, or every word's
// first letter for multi-word skills.
func titleCase(s string) string {
	fields := strings.Fields(s)
	switch len(fields) {
	case 0:
		return s
	case 1:
		return capitalize(fields[0])
	default:
		for i, f := range fields {
			fields[i] = capitalize(f)
		}
		return strings.Join(fields, " ")
	}
}

func capitalize(word string) string {
	if word == "" {
		return word
	}
	return strings.ToUpper(word[:1]) + word[1:]
}
