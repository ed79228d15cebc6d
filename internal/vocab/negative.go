package vocab

import "strings"

// negativeKeywords are lowercase substrings whose presence anywhere in a
// candidate string disqualifies it. They cover education, administrative
// and generic resume noise that the fallback extractor tends to surface.
var negativeKeywords = []string{
	"university",
	"college",
	"school",
	"institute",
	"academy",
	"bachelor",
	"master of",
	"degree",
	"diploma",
	"gpa",
	"cgpa",
	"percentage",
	"curriculum",
	"resume",
	"objective",
	"summary",
	"profile",
	"reference",
	"hobbies",
	"interests",
	"address",
	"street",
	"phone",
	"email",
	"linkedin",
	"date of birth",
	"gender",
	"nationality",
	"marital",
	"declaration",
	"signature",
	"place:",
	"year of",
	"passing",
	"semester",
	"board of",
	"hsc",
	"ssc",
	"matriculation",
	"intermediate",
	"coursework",
	"gradu",
	"certif",
	"award",
	"achievement",
	"responsibilit",
	"intern at",
	"worked at",
	"pvt",
	"ltd",
	"inc.",
	"llc",
}

// IsNegative reports whether the candidate contains any negative keyword
// as a substring. The check is case-insensitive.
func IsNegative(candidate string) bool {
	lower := strings.ToLower(candidate)
	for _, kw := range negativeKeywords {
		if strings.Contains(lower, kw) {
			return true
		}
	}
	return false
}
