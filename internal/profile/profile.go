// Package profile builds and caches per-job-description state so one posting
// can be evaluated against many resumes without repeating skill extraction.
package profile

import (
	"context"

	"github.com/jonathan/ats-screener/internal/experience"
	"github.com/jonathan/ats-screener/internal/normalize"
	"github.com/jonathan/ats-screener/internal/skills"
	"github.com/jonathan/ats-screener/internal/types"
)

// Build profiles a job description: normalized text, extracted skill set,
// and the required years of experience the posting asks for. Text failing
// minimum-length or density validation is rejected with *InvalidTextError.
func Build(ctx context.Context, raw string, extractor *skills.Extractor) (*types.JobProfile, error) {
	if !normalize.Analyzable(raw) {
		return nil, &InvalidTextError{Message: "job description text is too short or invalid"}
	}

	text := normalize.Text(raw)
	return &types.JobProfile{
		RawText:       raw,
		Text:          text,
		Skills:        extractor.Extract(ctx, raw),
		RequiredYears: experience.RequiredYears(text),
	}, nil
}
