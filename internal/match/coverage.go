package match

import (
	"strings"

	"github.com/rizeos/skill-match/internal/skills"
)

// Breadth bonus parameters. Tuned empirically; the cap keeps extra
// skills from carrying a score on their own.
const (
	breadthBonusPerSkill = 0.02
	breadthBonusCap      = 0.05
)

// Coverage computes the required-skill coverage in [0,1]: the fraction of
// required skills the candidate holds, plus a capped breadth bonus for
// extra skills once at least one required skill matches. Extra skills
// never reduce the result.
func Coverage(required, held []string) float64 {
	requiredSet := normalizedSet(required)
	heldSet := normalizedSet(held)
	if len(requiredSet) == 0 || len(heldSet) == 0 {
		return 0
	}

	matched := 0
	for skill := range requiredSet {
		if _, ok := heldSet[skill]; ok {
			matched++
		}
	}
	base := float64(matched) / float64(len(requiredSet))

	if base > 0 {
		extra := 0
		for skill := range heldSet {
			if _, ok := requiredSet[skill]; !ok {
				extra++
			}
		}
		bonus := float64(extra) * breadthBonusPerSkill
		if bonus > breadthBonusCap {
			bonus = breadthBonusCap
		}
		base += bonus
	}

	return clamp01(base)
}

// normalizedSet canonicalizes a skill list into a lowercase set,
// discarding blanks.
func normalizedSet(list []string) map[string]struct{} {
	set := make(map[string]struct{}, len(list))
	for _, s := range list {
		normalized := strings.ToLower(skills.Normalize(s))
		if normalized == "" {
			continue
		}
		set[normalized] = struct{}{}
	}
	return set
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
