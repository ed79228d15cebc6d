package vocab

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCanonical(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
		found    bool
	}{
		{"python", "python", "Python", true},
		{"golang maps to Go", "golang", "Go", true},
		{"javascript casing", "javascript", "JavaScript", true},
		{"multi-word entry", "machine learning", "Machine Learning", true},
		{"symbol entry", "c++", "C++", true},
		{"unknown token", "basketweaving", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := Canonical(tt.input)
			assert.Equal(t, tt.found, ok)
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestIsCore(t *testing.T) {
	assert.True(t, IsCore("ai"))
	assert.True(t, IsCore("ml"))
	assert.True(t, IsCore("go"))
	assert.False(t, IsCore("python"))
	assert.False(t, IsCore("kubernetes"))
}

func TestMatch(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
		found    bool
	}{
		{"exact match", "docker", "Docker", true},
		{"entry contained in candidate", "nginx server", "Nginx", true},
		{"longest entry wins", "mongodb", "MongoDB", true},
		{"candidate contained in entry", "restful", "REST", true},
		{"short candidates match exactly only", "zz", "", false},
		{"core exact still matches", "go", "Go", true},
		{"no match", "gardening", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := Match(tt.input)
			assert.Equal(t, tt.found, ok)
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestMatchBoundary(t *testing.T) {
	got, ok := MatchBoundary("shipping with Docker daily")
	require.True(t, ok)
	assert.Equal(t, "Docker", got)

	got, ok = MatchBoundary("C++ expertise")
	require.True(t, ok)
	assert.Equal(t, "C++", got)

	_, ok = MatchBoundary("gardening enthusiast")
	assert.False(t, ok)
}

func TestIsNegative(t *testing.T) {
	assert.True(t, IsNegative("Stanford University"))
	assert.True(t, IsNegative("BACHELOR OF ENGINEERING"))
	assert.True(t, IsNegative("cgpa 9.2"))
	assert.False(t, IsNegative("Kubernetes"))
	assert.False(t, IsNegative("React Native"))
}

// Every alias value must agree with the dictionary's canonical casing when
// the value is itself a dictionary skill.
func TestAliasValuesConsistentWithDictionary(t *testing.T) {
	for key, value := range aliases {
		if canonical, ok := skillDictionary[strings.ToLower(value)]; ok {
			assert.Equal(t, canonical, value, "alias %q resolves to %q which disagrees with dictionary casing %q", key, value, canonical)
		}
	}
}

// Dictionary keys must be lowercase; canonical values must be non-empty.
func TestDictionaryShape(t *testing.T) {
	for lower, canonical := range skillDictionary {
		assert.Equal(t, strings.ToLower(lower), lower, "dictionary key %q is not lowercase", lower)
		require.NotEmpty(t, canonical)
	}
	for core := range coreSkills {
		_, ok := skillDictionary[core]
		assert.True(t, ok, "core skill %q missing from dictionary", core)
	}
}
