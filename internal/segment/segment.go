// Package segment isolates the skills section of a resume-like document.
// When no skills section can be found, callers fall back to scanning the
// whole document with education lines suppressed.
package segment

import (
	"strings"
)

// sectionHeaders open a capture region when a line matches one of them
// exactly (case-insensitive, trailing colon/semicolon ignored).
var sectionHeaders = map[string]struct{}{
	"skills":                 {},
	"technical skills":       {},
	"core skills":            {},
	"tools & technologies":   {},
	"tools and technologies": {},
	"programming languages":  {},
	"languages":              {},
}

// ignoreHeaders close any open capture region. The matching line itself is
// skipped.
var ignoreHeaders = map[string]struct{}{
	"education":           {},
	"academic background": {},
	"academic":            {},
	"school":              {},
	"college":             {},
	"address":             {},
	"certifications":      {},
	"certification":       {},
	"qualification":       {},
	"qualifications":      {},
}

// stopKeywords terminate capture when they appear anywhere in a captured
// line, alongside the ignore-header phrases.
var stopKeywords = []string{"experience", "projects", "work"}

// educationMarkers start a suppressed run in the whole-document fallback.
var educationMarkers = []string{
	"education", "academic", "qualification", "degree",
	"university", "college", "school",
}

// SkillsSection scans the document line by line and returns the text of the
// skills section, joined with spaces. It returns the empty string when no
// section header is found.
func SkillsSection(document string) string {
	var captured []string
	capturing := false

	for _, raw := range strings.Split(document, "\n") {
		line := strings.TrimSpace(raw)
		header := normalizeHeader(line)

		if _, ok := ignoreHeaders[header]; ok {
			capturing = false
			continue
		}
		if _, ok := sectionHeaders[header]; ok {
			capturing = true
			continue
		}
		if !capturing {
			continue
		}
		if isNextSection(line) {
			capturing = false
			continue
		}
		if line != "" {
			captured = append(captured, line)
		}
	}

	return strings.Join(captured, " ")
}

// normalizeHeader lowercases a line and drops one trailing colon or
// semicolon so "Skills:" matches the header set.
func normalizeHeader(line string) string {
	h := strings.ToLower(line)
	h = strings.TrimSuffix(h, ":")
	h = strings.TrimSuffix(h, ";")
	return strings.TrimSpace(h)
}

// isNextSection applies the heuristic for the start of another major
// section: an all-caps line longer than 3 chars containing a colon, or a
// line mentioning an ignore keyword. Unusual resume layouts can evade
// this; those documents fall through to the whole-document fallback.
func isNextSection(line string) bool {
	if len(line) > 3 && line == strings.ToUpper(line) && strings.Contains(line, ":") {
		return true
	}
	lower := strings.ToLower(line)
	for header := range ignoreHeaders {
		if strings.Contains(lower, header) {
			return true
		}
	}
	for _, kw := range stopKeywords {
		if strings.Contains(lower, kw) {
			return true
		}
	}
	return false
}

// WithoutEducation scans the full document, suppressing runs of lines that
// start at an education marker and end at the next blank line or
// non-indented line. It is the caller's fallback when SkillsSection finds
// nothing.
func WithoutEducation(document string) string {
	var kept []string
	suppressing := false

	for _, raw := range strings.Split(document, "\n") {
		trimmed := strings.TrimSpace(raw)

		if suppressing {
			if trimmed == "" || !startsIndented(raw) {
				suppressing = false
			} else {
				continue
			}
		}

		if hasEducationMarker(trimmed) {
			suppressing = true
			continue
		}
		if trimmed != "" {
			kept = append(kept, trimmed)
		}
	}

	return strings.Join(kept, " ")
}

func hasEducationMarker(line string) bool {
	lower := strings.ToLower(line)
	for _, marker := range educationMarkers {
		if strings.Contains(lower, marker) {
			return true
		}
	}
	return false
}

func startsIndented(raw string) bool {
	return strings.HasPrefix(raw, " ") || strings.HasPrefix(raw, "\t")
}
