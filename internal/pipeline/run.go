// Package pipeline provides the high-level orchestration for one resume
// analysis: job profile construction, scoring, gap analysis, and structural
// advice.
package pipeline

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/jonathan/ats-screener/internal/advice"
	"github.com/jonathan/ats-screener/internal/gaps"
	"github.com/jonathan/ats-screener/internal/profile"
	"github.com/jonathan/ats-screener/internal/scoring"
	"github.com/jonathan/ats-screener/internal/skills"
	"github.com/jonathan/ats-screener/internal/types"
)

// Step and category names reported through ProgressCallback.
const (
	CategoryProfile  = "profile"
	CategoryAnalysis = "analysis"

	StepJobProfile = "job_profile"
	StepScore      = "score"
	StepGaps       = "gaps"
	StepAdvice     = "advice"
)

// ProgressEvent represents a progress update during pipeline execution
type ProgressEvent struct {
	Step     string `json:"step"`
	Category string `json:"category"`
	Message  string `json:"message"`
	RunID    string `json:"run_id,omitempty"`
	Content  any    `json:"content,omitempty"`
}

// ProgressCallback is called when pipeline progress occurs. Analysis stages
// run concurrently, so the callback may be invoked from multiple goroutines.
type ProgressCallback func(event ProgressEvent)

// RunOptions holds the inputs for one analysis run
type RunOptions struct {
	// JobText is the cleaned job description. Empty text skips profile
	// construction, scoring, and gap analysis; structural advice still runs.
	JobText string
	// ResumeText is the extracted resume text.
	ResumeText string
	// Elements is the parsed resume structure in document order.
	Elements []types.ContentElement
	// OnProgress receives stage updates; nil disables them.
	OnProgress ProgressCallback
}

// Runner wires the analysis stages together and caches job profiles across
// runs. Safe for concurrent use once constructed.
type Runner struct {
	extractor *skills.Extractor
	profiles  *profile.Cache
	scorer    *scoring.Calculator
	gaps      *gaps.Analyzer
	advisor   *advice.Advisor
	logger    *zap.Logger
}

// NewRunner builds a Runner around the given skill annotator. A nil annotator
// starts skill extraction in fallback vocabulary mode.
func NewRunner(annotator skills.Annotator, logger *zap.Logger) *Runner {
	if logger == nil {
		logger = zap.NewNop()
	}
	extractor := skills.NewExtractor(annotator, logger)
	return &Runner{
		extractor: extractor,
		profiles:  profile.NewCache(extractor),
		scorer:    scoring.NewCalculator(extractor, logger),
		gaps:      gaps.NewAnalyzer(extractor),
		advisor:   advice.NewAdvisor(logger),
		logger:    logger,
	}
}

// emitProgress calls the progress callback if configured
func emitProgress(opts *RunOptions, step, category, message string, runID uuid.UUID, content any) {
	if opts.OnProgress != nil {
		opts.OnProgress(ProgressEvent{
			Step:     step,
			Category: category,
			Message:  message,
			RunID:    runID.String(),
			Content:  content,
		})
	}
}

// Run executes one analysis and assembles the report. Scoring, gap analysis,
// and advice run concurrently once the job profile is available.
func (r *Runner) Run(ctx context.Context, opts RunOptions) (*types.AnalysisReport, error) {
	runID := uuid.New()
	start := time.Now()

	var jobProfile *types.JobProfile
	if strings.TrimSpace(opts.JobText) != "" {
		p, err := r.profiles.GetOrBuild(ctx, opts.JobText)
		if err != nil {
			return nil, fmt.Errorf("building job profile: %w", err)
		}
		jobProfile = p
		emitProgress(&opts, StepJobProfile, CategoryProfile,
			fmt.Sprintf("Built job profile with %d skills", len(p.Skills)), runID, p)
	}

	var (
		breakdown *types.ScoreBreakdown
		missing   []string
		issues    []types.Issue
	)

	g, gCtx := errgroup.WithContext(ctx)

	if jobProfile != nil {
		g.Go(func() error {
			breakdown = r.scorer.Evaluate(gCtx, jobProfile, opts.ResumeText, opts.Elements)
			emitProgress(&opts, StepScore, CategoryAnalysis,
				fmt.Sprintf("Scored resume: %d/100", breakdown.FinalScore), runID, breakdown)
			return nil
		})
		g.Go(func() error {
			missing = r.gaps.MissingFromProfile(gCtx, jobProfile, opts.ResumeText)
			emitProgress(&opts, StepGaps, CategoryAnalysis,
				fmt.Sprintf("Found %d skill gaps", len(missing)), runID, missing)
			return nil
		})
	}

	g.Go(func() error {
		issues = r.advisor.Analyze(opts.ResumeText, opts.Elements)
		emitProgress(&opts, StepAdvice, CategoryAnalysis,
			fmt.Sprintf("Generated %d advice entries", len(issues)), runID, issues)
		return nil
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}

	report := &types.AnalysisReport{
		RunID:         runID,
		MissingSkills: []string{},
		Advice:        issues,
		GeneratedAt:   time.Now().UTC(),
	}
	if breakdown != nil {
		report.ATSScore = breakdown.FinalScore
		report.Breakdown = breakdown
	}
	if missing != nil {
		report.MissingSkills = missing
	}

	r.logger.Debug("analysis run complete",
		zap.String("run_id", runID.String()),
		zap.Int("score", report.ATSScore),
		zap.Int("gaps", len(report.MissingSkills)),
		zap.Int("advice", len(report.Advice)),
		zap.Duration("elapsed", time.Since(start)))

	return report, nil
}

// ExtractionMode reports which skill extraction path is currently active.
func (r *Runner) ExtractionMode() skills.Mode {
	return r.extractor.Mode()
}
