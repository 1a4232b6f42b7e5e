// Package structure computes formatting signals from the ordered content
// elements of a resume: section coverage, bullet balance, and readability.
package structure

import (
	"strings"

	"github.com/jonathan/ats-screener/internal/normalize"
	"github.com/jonathan/ats-screener/internal/taxonomy"
	"github.com/jonathan/ats-screener/internal/types"
)

// Weights of each structural signal in the overall score.
const (
	SectionWeight     = 0.20
	BulletWeight      = 0.10
	ReadabilityWeight = 0.10
)

// requiredSections are the headings every ATS-friendly resume should carry.
var requiredSections = []string{"skills", "experience", "education"}

// bulletContainers are the headings under which bullet counts are balanced.
var bulletContainers = map[string]struct{}{
	"experience": {},
	"projects":   {},
	"project":    {},
	"education":  {},
}

const (
	minBulletsPerContainer = 2
	maxBulletsPerContainer = 4
	minVerbBullets         = 3
	minAvgSentenceTokens   = 10.0
	maxAvgSentenceTokens   = 30.0
)

func headingKey(e types.ContentElement) string {
	return strings.ToLower(strings.TrimSpace(e.Content))
}

// SectionCoverage returns the weighted fraction of the required sections
// present as headings, in [0, SectionWeight].
func SectionCoverage(elements []types.ContentElement) float64 {
	present := make(map[string]struct{})
	for _, e := range elements {
		if e.Kind != types.KindHeading {
			continue
		}
		key := headingKey(e)
		for _, want := range requiredSections {
			if key == want {
				present[want] = struct{}{}
			}
		}
	}
	return float64(len(present)) / float64(len(requiredSections)) * SectionWeight
}

// BulletBalance rewards containers holding a readable number of bullets and
// penalizes crowded ones. Each container section with at least two bullets
// earns a quarter of the weight; each with more than four loses a tenth.
// The result is clamped to [0, BulletWeight].
func BulletBalance(elements []types.ContentElement) float64 {
	var counts []int
	open := false
	for _, e := range elements {
		switch e.Kind {
		case types.KindHeading:
			if _, ok := bulletContainers[headingKey(e)]; ok {
				counts = append(counts, 0)
				open = true
			} else {
				open = false
			}
		case types.KindBullet:
			if open {
				counts[len(counts)-1]++
			}
		}
	}

	score := 0.0
	for _, cnt := range counts {
		if cnt >= minBulletsPerContainer {
			score += BulletWeight / 4
		}
		if cnt > maxBulletsPerContainer {
			score -= BulletWeight / 10
		}
	}
	if score < 0 {
		score = 0
	}
	if score > BulletWeight {
		score = BulletWeight
	}
	return score
}

// ReadabilityVerbs scores prose readability from the resume text and bullet
// phrasing from the elements. Half the weight is earned when the average
// sentence length lands between 10 and 30 tokens, the other half when at
// least three bullets open with an action verb. The result is clamped to
// [0, ReadabilityWeight].
func ReadabilityVerbs(text string, elements []types.ContentElement) float64 {
	score := 0.0

	sentences := normalize.Sentences(text)
	if len(sentences) > 0 {
		total := 0
		for _, s := range sentences {
			total += len(normalize.WordTokens(s))
		}
		avg := float64(total) / float64(len(sentences))
		if avg >= minAvgSentenceTokens && avg <= maxAvgSentenceTokens {
			score += ReadabilityWeight / 2
		}
	}

	verbBullets := 0
	for _, e := range elements {
		if e.Kind == types.KindBullet && taxonomy.StartsWithActionVerb(e.Content) {
			verbBullets++
		}
	}
	if verbBullets >= minVerbBullets {
		score += ReadabilityWeight / 2
	}

	if score < 0 {
		score = 0
	}
	if score > ReadabilityWeight {
		score = ReadabilityWeight
	}
	return score
}
