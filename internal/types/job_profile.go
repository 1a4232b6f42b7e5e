// Package types provides type definitions for structured data used throughout the ats-screener system.
//
//nolint:revive // types is a standard Go package name pattern
package types

// JobProfile is the per-job-description cached state: normalized text, the
// skill set detected in it, and a coarse required-years figure (0 when the
// posting states none). Built once per job description and read-only after
// construction, so it may be shared across concurrent evaluations.
type JobProfile struct {
	RawText       string   `json:"-"`
	Text          string   `json:"text"`
	Skills        SkillSet `json:"skills"`
	RequiredYears int      `json:"required_years"`
}
