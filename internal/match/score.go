// Package match computes the hybrid job/candidate fitment score: embedding
// cosine similarity blended with required-skill coverage.
package match

import (
	"context"
	"fmt"
	"math"
	"strings"

	"github.com/rizeos/skill-match/internal/embedding"
)

// Blend weights and penalty bands. The thresholds are empirically tuned
// parameters preserved for score compatibility, not fundamental
// invariants; treat them as knobs.
const (
	embedWeight = 0.7
	skillWeight = 0.3

	lowBandCeiling  = 0.35
	midBandCeiling  = 0.45
	softBandCeiling = 0.55

	lowBandPenalty  = 0.15
	midBandPenalty  = 0.5
	softBandPenalty = 0.75

	softBandSkillFloor = 0.3
)

// Score computes the 0-100 fitment score for a job description and a
// candidate bio, optionally informed by required and held skill lists.
// Both texts must be non-empty after trimming. An embedding provider
// failure is returned to the caller.
func Score(ctx context.Context, provider embedding.Provider, jobText, bioText string, jobSkills, candidateSkills []string) (float64, error) {
	if strings.TrimSpace(jobText) == "" || strings.TrimSpace(bioText) == "" {
		return 0, fmt.Errorf("job description and candidate bio must be non-empty")
	}

	vectors, err := provider.Embed(ctx, []string{jobText, bioText})
	if err != nil {
		return 0, fmt.Errorf("embedding provider: %w", err)
	}
	if len(vectors) != 2 {
		return 0, fmt.Errorf("embedding provider: expected 2 vectors, got %d", len(vectors))
	}

	cos := CosineSimilarity(vectors[0], vectors[1])
	embedScore := (cos + 1) / 2

	skillScore := 0.0
	if len(jobSkills) > 0 && len(candidateSkills) > 0 {
		skillScore = Coverage(jobSkills, candidateSkills)
	}

	embedScore = applyPenalty(embedScore, skillScore)

	hybrid := embedWeight*embedScore + skillWeight*skillScore
	return clampScore(round2(hybrid * 100)), nil
}

// applyPenalty discounts the semantic component when the two texts look
// topically unrelated, so skill overlap cannot rescue the score.
func applyPenalty(embedScore, skillScore float64) float64 {
	switch {
	case embedScore < lowBandCeiling:
		return embedScore * lowBandPenalty
	case embedScore < midBandCeiling:
		return embedScore * midBandPenalty
	case embedScore < softBandCeiling && skillScore < softBandSkillFloor:
		return embedScore * softBandPenalty
	default:
		return embedScore
	}
}

// CosineSimilarity returns dot(a,b)/(|a||b|), defined as 0 when either
// vector has zero norm so degenerate text yields a neutral similarity
// instead of a division error.
func CosineSimilarity(a, b []float32) float64 {
	n := len(a)
	if len(b) < n {
		n = len(b)
	}
	var dot, normA, normB float64
	for i := 0; i < n; i++ {
		dot += float64(a[i]) * float64(b[i])
		normA += float64(a[i]) * float64(a[i])
		normB += float64(b[i]) * float64(b[i])
	}
	if normA == 0 || normB == 0 {
		return 0
	}
	return dot / (math.Sqrt(normA) * math.Sqrt(normB))
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

func clampScore(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 100 {
		return 100
	}
	return v
}
