package segment

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSkillsSection(t *testing.T) {
	tests := []struct {
		name     string
		document string
		expected string
	}{
		{
			name:     "no section header",
			document: "John Doe\nSenior Engineer\nI build things in Go",
			expected: "",
		},
		{
			name:     "simple skills section",
			document: "Skills\nPython, React\nDocker",
			expected: "Python, React Docker",
		},
		{
			name:     "header with trailing colon",
			document: "Technical Skills:\nGo, Kubernetes",
			expected: "Go, Kubernetes",
		},
		{
			name:     "header matching is case-insensitive",
			document: "CORE SKILLS\nRust\nTerraform",
			expected: "Rust Terraform",
		},
		{
			name:     "ignore header closes capture",
			document: "Skills\nPython\nEducation\nMIT 2019\nOxford",
			expected: "Python",
		},
		{
			name:     "all-caps colon line terminates capture",
			document: "Skills\nPython, Go\nWORK HISTORY: ACME\nJava",
			expected: "Python, Go",
		},
		{
			name:     "keyword line terminates capture",
			document: "Skills\nPython\nmy recent projects include\nJava",
			expected: "Python",
		},
		{
			name:     "blank lines inside section skipped",
			document: "Skills\nPython\n\nReact",
			expected: "Python React",
		},
		{
			name:     "capture reopens after second header",
			document: "Languages\nGo\nEducation\nMIT\nTools & Technologies\nDocker",
			expected: "Go Docker",
		},
		{
			name:     "short all-caps line does not terminate",
			document: "Skills\nC++\nSQL\nGo",
			expected: "C++ SQL Go",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, SkillsSection(tt.document))
		})
	}
}

func TestWithoutEducation(t *testing.T) {
	tests := []struct {
		name     string
		document string
		expected string
	}{
		{
			name:     "plain document untouched",
			document: "Python developer\nworks with Docker",
			expected: "Python developer works with Docker",
		},
		{
			name:     "education run suppressed until blank line",
			document: "Python developer\nEducation\n  MIT\n  Class of 2019\n\nDocker expert",
			expected: "Python developer Docker expert",
		},
		{
			name:     "run ends at non-indented line",
			document: "Go engineer\nuniversity details follow\n  Some College\nBack to skills",
			expected: "Go engineer Back to skills",
		},
		{
			name:     "degree marker suppresses its line",
			document: "Bachelor degree in CS\nPython, React",
			expected: "Python, React",
		},
		{
			name:     "empty document",
			document: "",
			expected: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, WithoutEducation(tt.document))
		})
	}
}
