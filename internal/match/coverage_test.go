package match

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCoverage(t *testing.T) {
	tests := []struct {
		name     string
		required []string
		held     []string
		expected float64
	}{
		{
			name:     "no required skills",
			required: nil,
			held:     []string{"Python"},
			expected: 0,
		},
		{
			name:     "no held skills",
			required: []string{"Python"},
			held:     nil,
			expected: 0,
		},
		{
			name:     "blank entries only",
			required: []string{"  ", ""},
			held:     []string{"Python"},
			expected: 0,
		},
		{
			name:     "full coverage no extras",
			required: []string{"Python", "Go"},
			held:     []string{"python", "golang"},
			expected: 1,
		},
		{
			name:     "partial coverage",
			required: []string{"Python", "React", "Docker"},
			held:     []string{"Python"},
			expected: 1.0 / 3.0,
		},
		{
			name:     "breadth bonus on partial coverage",
			required: []string{"Python", "React"},
			held:     []string{"Python", "Docker"},
			expected: 0.52,
		},
		{
			name:     "breadth bonus capped",
			required: []string{"Python", "React"},
			held:     []string{"Python", "Rust", "Kafka", "Redis", "MySQL", "Linux", "Git"},
			expected: 0.55,
		},
		{
			name:     "no bonus without a match",
			required: []string{"Python"},
			held:     []string{"Docker", "Redis"},
			expected: 0,
		},
		{
			name:     "full coverage clamped despite bonus",
			required: []string{"Python"},
			held:     []string{"Python", "Docker", "Redis"},
			expected: 1,
		},
		{
			name:     "aliases count as the same skill",
			required: []string{"JS", "K8s"},
			held:     []string{"JavaScript", "Kubernetes"},
			expected: 1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.expected, Coverage(tt.required, tt.held), 1e-9)
		})
	}
}

func TestCoverageOrderInvariant(t *testing.T) {
	required := []string{"Python", "React", "Docker"}
	held := []string{"Docker", "Terraform", "Python"}

	a := Coverage(required, held)
	b := Coverage([]string{"Docker", "Python", "React"}, []string{"Python", "Docker", "Terraform"})

	assert.Equal(t, a, b)
}

func TestCoverageExtrasNeverDecrease(t *testing.T) {
	required := []string{"Python", "React"}
	base := Coverage(required, []string{"Python"})
	withExtras := Coverage(required, []string{"Python", "Rust", "Kafka"})

	assert.GreaterOrEqual(t, withExtras, base)
}
