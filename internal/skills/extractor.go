// Package skills maps free text to canonical skill sets. A primary
// taxonomy-backed annotator gives high recall; a single annotator failure
// demotes the extractor to a deterministic vocabulary scan for the remainder
// of the process lifetime. A regex pattern layer always runs on top of either
// path.
package skills

import (
	"context"
	"regexp"
	"strings"
	"sync/atomic"

	"go.uber.org/zap"

	"github.com/jonathan/ats-screener/internal/normalize"
	"github.com/jonathan/ats-screener/internal/taxonomy"
	"github.com/jonathan/ats-screener/internal/types"
)

// Annotator is the capability the extractor needs from a skill-taxonomy
// service: annotate a text and return exact and scored partial matches.
// Implementations must be safe for concurrent read-only use.
type Annotator interface {
	Annotate(ctx context.Context, text string) (*taxonomy.Annotation, error)
}

// Mode identifies which extraction path is active.
type Mode string

// Extraction modes. The transition from ModePrimary to ModeFallback happens
// at most once and is never reversed.
const (
	ModePrimary  Mode = "primary"
	ModeFallback Mode = "fallback"
)

// ngramConfidence is the minimum score for a partial n-gram match to count.
const ngramConfidence = 0.7

var (
	skillPatterns = []*regexp.Regexp{
		regexp.MustCompile(`(?i)\b(?:proficient in|experience with|skilled in|expertise in|knowledge of|familiar with)[\s:]+([\w\s/&+.\-/]+)(?:\.|,|;|$)`),
		regexp.MustCompile(`(?i)\b(?:technologies?|skills?|tools?)[\s:]+([\w\s/&+.\-/]+)(?:\.|,|;|$)`),
	}
	phraseSeparatorRe = regexp.MustCompile(`[,/&+]`)
)

// Extractor turns free text into a SkillSet. Safe for concurrent use; the
// demotion flag is an idempotent one-way write.
type Extractor struct {
	annotator Annotator
	demoted   atomic.Bool
	logger    *zap.Logger
}

// NewExtractor builds an Extractor around the given annotator. A nil
// annotator starts the extractor in fallback mode.
func NewExtractor(annotator Annotator, logger *zap.Logger) *Extractor {
	if logger == nil {
		logger = zap.NewNop()
	}
	e := &Extractor{annotator: annotator, logger: logger}
	if annotator == nil {
		e.demoted.Store(true)
		logger.Info("no skill annotator configured, using fallback vocabulary")
	}
	return e
}

// Mode returns the currently active extraction path.
func (e *Extractor) Mode() Mode {
	if e.demoted.Load() {
		return ModeFallback
	}
	return ModePrimary
}

// Extract returns the canonical skills found in text. Empty input yields an
// empty set. An annotator failure is logged, permanently demotes the primary
// path, and the call continues on the fallback scan.
func (e *Extractor) Extract(ctx context.Context, text string) types.SkillSet {
	set := types.NewSkillSet()
	if strings.TrimSpace(text) == "" {
		return set
	}

	if !e.demoted.Load() {
		ann, err := e.annotator.Annotate(ctx, text)
		if err != nil {
			e.demoted.Store(true)
			e.logger.Warn("skill annotator failed, demoting to fallback vocabulary",
				zap.Error(err))
		} else {
			for _, match := range ann.FullMatches {
				set.Add(normalize.CleanPhrase(match.Skill))
			}
			for _, match := range ann.NgramScored {
				if match.Score > ngramConfidence {
					set.Add(normalize.CleanPhrase(match.Skill))
				}
			}
		}
	}

	if e.demoted.Load() {
		lower := strings.ToLower(text)
		for _, skill := range taxonomy.CommonSkills {
			if strings.Contains(lower, skill) {
				set.Add(skill)
			}
		}
	}

	e.addPatternMatches(text, set)
	return set
}

// addPatternMatches applies the always-on phrasing templates ("proficient in
// X", "skills: X") and adds each separator-split, cleaned token.
func (e *Extractor) addPatternMatches(text string, set types.SkillSet) {
	for _, pattern := range skillPatterns {
		for _, groups := range pattern.FindAllStringSubmatch(text, -1) {
			for _, piece := range phraseSeparatorRe.Split(groups[1], -1) {
				if strings.TrimSpace(piece) == "" {
					continue
				}
				set.Add(normalize.CleanPhrase(piece))
			}
		}
	}
}
