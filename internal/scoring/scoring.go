// Package scoring aggregates content and formatting signals into the final
// ATS score for a resume evaluated against a job profile.
package scoring

import (
	"context"
	"math"
	"strings"

	"go.uber.org/zap"

	"github.com/jonathan/ats-screener/internal/experience"
	"github.com/jonathan/ats-screener/internal/gate"
	"github.com/jonathan/ats-screener/internal/normalize"
	"github.com/jonathan/ats-screener/internal/similarity"
	"github.com/jonathan/ats-screener/internal/skills"
	"github.com/jonathan/ats-screener/internal/structure"
	"github.com/jonathan/ats-screener/internal/types"
)

// Weights of the content-side signals and the caps on each score half.
// Formatting weights live with the structural analyzer.
const (
	SkillCoverageWeight = 0.25
	TFIDFWeight         = 0.20
	KeywordWeight       = 0.15
	ExperienceBonus     = 0.02

	maxContentScore    = 0.60
	maxFormattingScore = 0.40
)

// importantKeywords are resume vocabulary whose presence correlates with
// ATS-parseable content. Matched as substrings of the normalized text.
var importantKeywords = []string{
	"experience", "education", "skills", "projects", "certifications",
	"leadership", "achievements", "technical", "professional", "summary",
}

// Calculator scores resumes against job profiles.
type Calculator struct {
	extractor *skills.Extractor
	logger    *zap.Logger
}

// NewCalculator creates a scorer backed by the given skill extractor.
func NewCalculator(extractor *skills.Extractor, logger *zap.Logger) *Calculator {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Calculator{extractor: extractor, logger: logger}
}

// Score returns the ATS score in [0, 100]. Inputs failing validation, empty
// structure, and disqualified resumes all score 0.
func (c *Calculator) Score(ctx context.Context, p *types.JobProfile, resumeText string, elements []types.ContentElement) int {
	return c.Evaluate(ctx, p, resumeText, elements).FinalScore
}

// Evaluate computes the score along with its per-signal breakdown. It never
// returns nil and never panics; unexpected failures are logged and reported
// as a zero score.
func (c *Calculator) Evaluate(ctx context.Context, p *types.JobProfile, resumeText string, elements []types.ContentElement) (breakdown *types.ScoreBreakdown) {
	breakdown = &types.ScoreBreakdown{}
	defer func() {
		if r := recover(); r != nil {
			c.logger.Error("score computation failed", zap.Any("panic", r))
			breakdown = &types.ScoreBreakdown{}
		}
	}()

	if p == nil || !normalize.Analyzable(resumeText) || len(elements) == 0 {
		return breakdown
	}

	if ok, reason := gate.Check(resumeText, elements); !ok {
		breakdown.Disqualified = true
		breakdown.Reason = reason
		return breakdown
	}

	resumeNorm := normalize.Text(resumeText)
	resumeSkills := c.extractor.Extract(ctx, resumeText)

	breakdown.SkillCoverage = skillCoverage(p.Skills, resumeSkills) * SkillCoverageWeight
	breakdown.TFIDFSimilarity = similarity.Similarity(p.Text, resumeNorm) * TFIDFWeight
	breakdown.KeywordMatch = keywordPresence(resumeNorm) * KeywordWeight
	if p.RequiredYears > 0 && experience.EstimateYears(resumeNorm) >= p.RequiredYears {
		breakdown.ExperienceBonus = ExperienceBonus
	}

	content := breakdown.SkillCoverage + breakdown.TFIDFSimilarity + breakdown.KeywordMatch + breakdown.ExperienceBonus
	if content < 0 {
		content = 0
	}
	if content > maxContentScore {
		content = maxContentScore
	}
	breakdown.ContentScore = content

	breakdown.Sections = structure.SectionCoverage(elements)
	breakdown.Bullets = structure.BulletBalance(elements)
	breakdown.ReadabilityVerbs = structure.ReadabilityVerbs(resumeText, elements)

	formatting := breakdown.Sections + breakdown.Bullets + breakdown.ReadabilityVerbs
	if formatting < 0 {
		formatting = 0
	}
	if formatting > maxFormattingScore {
		formatting = maxFormattingScore
	}
	breakdown.FormattingScore = formatting

	breakdown.FinalScore = int(math.Round((content + formatting) * 100))
	c.logger.Debug("resume scored",
		zap.Int("score", breakdown.FinalScore),
		zap.Float64("content", content),
		zap.Float64("formatting", formatting),
	)
	return breakdown
}

// skillCoverage is the fraction of job skills present in the resume set.
func skillCoverage(jobSkills, resumeSkills types.SkillSet) float64 {
	if len(jobSkills) == 0 {
		return 0
	}
	return float64(len(jobSkills.Intersect(resumeSkills))) / float64(len(jobSkills))
}

// keywordPresence is the fraction of importantKeywords occurring in the
// normalized resume text.
func keywordPresence(resumeNorm string) float64 {
	found := 0
	for _, kw := range importantKeywords {
		if strings.Contains(resumeNorm, kw) {
			found++
		}
	}
	return float64(found) / float64(len(importantKeywords))
}
