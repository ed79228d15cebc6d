package match

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stubEmbedder returns canned vectors, recording how often it was asked.
type stubEmbedder struct {
	vectors [][]float32
	err     error
	calls   int
}

func (s *stubEmbedder) Embed(_ context.Context, texts []string) ([][]float32, error) {
	s.calls++
	if s.err != nil {
		return nil, s.err
	}
	return s.vectors, nil
}

func (s *stubEmbedder) Close() error { return nil }

func TestScore_IdenticalTextsWithFullCoverage(t *testing.T) {
	provider := &stubEmbedder{vectors: [][]float32{{1, 0}, {1, 0}}}

	score, err := Score(context.Background(), provider, "Go backend engineer", "Go backend engineer",
		[]string{"Go"}, []string{"Go"})

	require.NoError(t, err)
	assert.InDelta(t, 100, score, 1e-9)
}

func TestScore_IdenticalTextsWithoutSkills(t *testing.T) {
	provider := &stubEmbedder{vectors: [][]float32{{1, 0}, {1, 0}}}

	score, err := Score(context.Background(), provider, "job", "bio", nil, nil)

	require.NoError(t, err)
	// Cosine 1 maps to a semantic score of 1; only the 0.7 weight applies.
	assert.InDelta(t, 70, score, 1e-9)
}

func TestScore_OpposedVectorsFloored(t *testing.T) {
	provider := &stubEmbedder{vectors: [][]float32{{1, 0}, {-1, 0}}}

	score, err := Score(context.Background(), provider, "job", "bio",
		[]string{"Python"}, []string{"Python"})

	require.NoError(t, err)
	// Cosine -1 lands in the lowest band; even full skill coverage only
	// contributes its own weighted share.
	assert.InDelta(t, 30, score, 1e-9)
}

func TestScore_OrthogonalVectorsSoftBand(t *testing.T) {
	provider := &stubEmbedder{vectors: [][]float32{{1, 0}, {0, 1}}}

	score, err := Score(context.Background(), provider, "job", "bio", nil, nil)

	require.NoError(t, err)
	// Cosine 0 maps to 0.5, discounted by 0.75 without skill support.
	assert.InDelta(t, 26.25, score, 1e-9)
}

func TestScore_OrthogonalVectorsRescuedBySkills(t *testing.T) {
	provider := &stubEmbedder{vectors: [][]float32{{1, 0}, {0, 1}}}

	score, err := Score(context.Background(), provider, "job", "bio",
		[]string{"Go"}, []string{"Go"})

	require.NoError(t, err)
	// Strong coverage lifts the 0.5 semantic score out of the soft band.
	assert.InDelta(t, 65, score, 1e-9)
}

func TestScore_ZeroNormVector(t *testing.T) {
	provider := &stubEmbedder{vectors: [][]float32{{1, 0}, {0, 0}}}

	score, err := Score(context.Background(), provider, "job", "bio", nil, nil)

	require.NoError(t, err)
	// A degenerate vector yields neutral similarity, not an error.
	assert.InDelta(t, 26.25, score, 1e-9)
}

func TestScore_EmptyTextRejectedBeforeEmbedding(t *testing.T) {
	provider := &stubEmbedder{vectors: [][]float32{{1, 0}, {1, 0}}}

	tests := []struct {
		name string
		job  string
		bio  string
	}{
		{"empty job", "   ", "bio"},
		{"empty bio", "job", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Score(context.Background(), provider, tt.job, tt.bio, nil, nil)
			assert.Error(t, err)
		})
	}
	assert.Equal(t, 0, provider.calls)
}

func TestScore_ProviderErrorPropagates(t *testing.T) {
	wantErr := errors.New("quota exceeded")
	provider := &stubEmbedder{err: wantErr}

	_, err := Score(context.Background(), provider, "job", "bio", nil, nil)

	require.Error(t, err)
	assert.ErrorIs(t, err, wantErr)
}

func TestScore_UnexpectedVectorCount(t *testing.T) {
	provider := &stubEmbedder{vectors: [][]float32{{1, 0}}}

	_, err := Score(context.Background(), provider, "job", "bio", nil, nil)

	assert.Error(t, err)
}

func TestScore_SkillOrderInvariant(t *testing.T) {
	vectors := [][]float32{{0.6, 0.8}, {0.8, 0.6}}

	a, err := Score(context.Background(), &stubEmbedder{vectors: vectors}, "job", "bio",
		[]string{"Python", "React"}, []string{"React", "Docker"})
	require.NoError(t, err)

	b, err := Score(context.Background(), &stubEmbedder{vectors: vectors}, "job", "bio",
		[]string{"React", "Python"}, []string{"Docker", "React"})
	require.NoError(t, err)

	assert.Equal(t, a, b)
}

func TestCosineSimilarity(t *testing.T) {
	tests := []struct {
		name     string
		a, b     []float32
		expected float64
	}{
		{"identical", []float32{1, 2, 3}, []float32{1, 2, 3}, 1},
		{"opposed", []float32{1, 0}, []float32{-1, 0}, -1},
		{"orthogonal", []float32{1, 0}, []float32{0, 1}, 0},
		{"zero norm", []float32{0, 0}, []float32{1, 1}, 0},
		{"both empty", nil, nil, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.expected, CosineSimilarity(tt.a, tt.b), 1e-9)
		})
	}
}
