// Package gaps reports which job-description skills a resume fails to cover,
// ranked by how much the posting emphasizes them.
package gaps

import (
	"context"
	"sort"
	"strings"

	"github.com/jonathan/ats-screener/internal/skills"
	"github.com/jonathan/ats-screener/internal/taxonomy"
	"github.com/jonathan/ats-screener/internal/types"
)

const (
	// maxMissingSkills bounds the list surfaced to the user.
	maxMissingSkills = 20
	// minSkillLength drops one- and two-letter skills whose occurrence
	// counts in free text are mostly noise.
	minSkillLength = 3
)

// Analyzer computes skill gaps between a job description and a resume.
type Analyzer struct {
	extractor *skills.Extractor
}

// NewAnalyzer creates a gap analyzer backed by the given extractor.
func NewAnalyzer(extractor *skills.Extractor) *Analyzer {
	return &Analyzer{extractor: extractor}
}

// MissingSkills extracts skills from both texts and returns the job's skills
// absent from the resume. Either input being blank yields an empty list.
func (a *Analyzer) MissingSkills(ctx context.Context, jdText, resumeText string) []string {
	if strings.TrimSpace(jdText) == "" || strings.TrimSpace(resumeText) == "" {
		return []string{}
	}
	return a.rank(ctx, a.extractor.Extract(ctx, jdText), jdText, resumeText)
}

// MissingFromProfile is MissingSkills reusing an already-built job profile.
func (a *Analyzer) MissingFromProfile(ctx context.Context, p *types.JobProfile, resumeText string) []string {
	if p == nil || strings.TrimSpace(resumeText) == "" {
		return []string{}
	}
	return a.rank(ctx, p.Skills, p.RawText, resumeText)
}

// rank filters the set difference down to curated vocabulary entries and
// orders them by descending occurrence count in the job description, ties
// broken alphabetically, truncated to maxMissingSkills.
func (a *Analyzer) rank(ctx context.Context, jdSkills types.SkillSet, jdRaw, resumeText string) []string {
	resumeSkills := a.extractor.Extract(ctx, resumeText)
	missing := jdSkills.Difference(resumeSkills)
	jdLower := strings.ToLower(jdRaw)

	type rankedSkill struct {
		skill      string
		importance int
	}
	list := make([]rankedSkill, 0, len(missing))
	for skill := range missing {
		if len(skill) < minSkillLength || !taxonomy.IsCommonSkill(skill) {
			continue
		}
		list = append(list, rankedSkill{skill: skill, importance: strings.Count(jdLower, skill)})
	}

	sort.Slice(list, func(i, j int) bool {
		if list[i].importance != list[j].importance {
			return list[i].importance > list[j].importance
		}
		return list[i].skill < list[j].skill
	})
	if len(list) > maxMissingSkills {
		list = list[:maxMissingSkills]
	}

	out := make([]string, len(list))
	for i, r := range list {
		out[i] = r.skill
	}
	return out
}
