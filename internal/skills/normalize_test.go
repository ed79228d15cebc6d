package skills

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"lowercase single word", "python", "Python"},
		{"uppercase single word", "PYTHON", "Python"},
		{"alias nodejs", "nodejs", "Node.js"},
		{"alias k8s", "k8s", "Kubernetes"},
		{"alias golang", "golang", "Go"},
		{"alias js uppercase", "JS", "JavaScript"},
		{"suffix framework stripped", "React framework", "React"},
		{"suffix library stripped", "pandas library", "Pandas"},
		{"suffix language stripped", "java language", "Java"},
		{"suffix programming stripped", "python programming", "Python"},
		{"suffix then alias", "nodejs framework", "Node.js"},
		{"multi-word title case", "machine learning", "Machine Learning"},
		{"multi-word three words", "natural language processing", "Natural Language Processing"},
		{"acronym via alias", "aws", "AWS"},
		{"ci/cd via alias", "ci/cd", "CI/CD"},
		{"dotted name title case", "vue.js", "Vue.js"},
		{"whitespace trimmed", "  docker  ", "Docker"},
		{"bare suffix word kept", "framework", "Framework"},
		{"empty input", "", ""},
		{"whitespace only", "   ", ""},
		{"unknown skill still cased", "terraform", "Terraform"},
		{"unknown multi-word", "distributed systems", "Distributed Systems"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Normalize(tt.input))
		})
	}
}

// Normalization must be a fixed point: applying it twice never changes the
// result.
func TestNormalizeIdempotent(t *testing.T) {
	inputs := []string{
		"python", "PYTHON", "nodejs", "k8s", "React framework",
		"machine learning", "aws", "ci/cd", "vue.js", "golang",
		"framework", "java language", "c++", "objective-c", "iOS",
		"REST API", "sql server", "Power BI", "random skill name",
	}
	for _, input := range inputs {
		once := Normalize(input)
		assert.Equal(t, once, Normalize(once), "Normalize not idempotent for %q", input)
	}
}
