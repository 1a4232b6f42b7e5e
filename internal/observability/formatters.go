// Package observability provides formatted output utilities for verbose CLI mode.
package observability

import (
	"fmt"
	"io"
	"strings"

	"github.com/jonathan/ats-screener/internal/types"
)

const (
	// boxWidth is the default width for formatted output boxes
	boxWidth = 60
	// maxItemsToShow is the default number of items to display in lists
	maxItemsToShow = 5
)

// Printer handles formatted output for verbose mode
type Printer struct {
	out io.Writer
}

// NewPrinter creates a new Printer that writes to the given writer
func NewPrinter(out io.Writer) *Printer {
	return &Printer{out: out}
}

// printBox prints a formatted box with a title and content
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) printBox(title string, content string) {
	border := strings.Repeat("─", boxWidth-2)
	fmt.Fprintf(p.out, "┌%s┐\n", border)
	fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, title)
	fmt.Fprintf(p.out, "├%s┤\n", border)

	lines := strings.Split(content, "\n")
	for _, line := range lines {
		// Truncate long lines
		if len(line) > boxWidth-4 {
			line = line[:boxWidth-7] + "..."
		}
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, line)
	}

	fmt.Fprintf(p.out, "└%s┘\n", border)
}

// PrintJobProfile outputs a human-readable summary of the built job profile.
func (p *Printer) PrintJobProfile(profile *types.JobProfile) {
	if profile == nil {
		return
	}

	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("Text length:     %d chars\n", len(profile.Text)))
	if profile.RequiredYears > 0 {
		sb.WriteString(fmt.Sprintf("Required years:  %d\n", profile.RequiredYears))
	} else {
		sb.WriteString("Required years:  not stated\n")
	}
	sb.WriteString("\n")

	skills := profile.Skills.Sorted()
	if len(skills) > 0 {
		sb.WriteString(fmt.Sprintf("Skills detected (%d):\n", len(skills)))
		count := min(len(skills), maxItemsToShow)
		for i := 0; i < count; i++ {
			sb.WriteString(fmt.Sprintf("  • %s\n", skills[i]))
		}
		if len(skills) > maxItemsToShow {
			sb.WriteString(fmt.Sprintf("  ... and %d more\n", len(skills)-maxItemsToShow))
		}
	} else {
		sb.WriteString("Skills detected: none\n")
	}

	p.printBox("JOB PROFILE", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintScore outputs the final ATS score, or the disqualification reason when
// the resume failed a gating check.
func (p *Printer) PrintScore(breakdown *types.ScoreBreakdown) {
	if breakdown == nil {
		return
	}

	var sb strings.Builder

	if breakdown.Disqualified {
		sb.WriteString("Score: 0 / 100\n\n")
		sb.WriteString("⚠ Disqualified\n")
		sb.WriteString(fmt.Sprintf("  %s", breakdown.Reason))
		p.printBox("ATS SCORE", sb.String())
		return
	}

	sb.WriteString(fmt.Sprintf("Score: %d / 100", breakdown.FinalScore))
	p.printBox("ATS SCORE", sb.String())
}

// PrintBreakdown outputs each scoring signal's weighted contribution.
func (p *Printer) PrintBreakdown(breakdown *types.ScoreBreakdown) {
	if breakdown == nil {
		return
	}

	var sb strings.Builder

	sb.WriteString("Content signals:\n")
	sb.WriteString(fmt.Sprintf("  Skill coverage:    %.3f\n", breakdown.SkillCoverage))
	sb.WriteString(fmt.Sprintf("  Text similarity:   %.3f\n", breakdown.TFIDFSimilarity))
	sb.WriteString(fmt.Sprintf("  Keyword match:     %.3f\n", breakdown.KeywordMatch))
	sb.WriteString(fmt.Sprintf("  Experience bonus:  %.3f\n", breakdown.ExperienceBonus))
	sb.WriteString("\n")
	sb.WriteString("Formatting signals:\n")
	sb.WriteString(fmt.Sprintf("  Sections:          %.3f\n", breakdown.Sections))
	sb.WriteString(fmt.Sprintf("  Bullets:           %.3f\n", breakdown.Bullets))
	sb.WriteString(fmt.Sprintf("  Readability/verbs: %.3f\n", breakdown.ReadabilityVerbs))
	sb.WriteString("\n")
	sb.WriteString(fmt.Sprintf("Content total:    %.3f\n", breakdown.ContentScore))
	sb.WriteString(fmt.Sprintf("Formatting total: %.3f\n", breakdown.FormattingScore))
	sb.WriteString(fmt.Sprintf("Final score:      %d", breakdown.FinalScore))

	p.printBox("SCORE BREAKDOWN", sb.String())
}

// PrintGaps outputs the missing skills ranked by importance.
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) PrintGaps(missing []string) {
	if len(missing) == 0 {
		fmt.Fprintf(p.out, "┌%s┐\n", strings.Repeat("─", boxWidth-2))
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, "✅ NO SKILL GAPS FOUND")
		fmt.Fprintf(p.out, "└%s┘\n", strings.Repeat("─", boxWidth-2))
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Missing %d skills from the job description:\n\n", len(missing)))

	count := min(len(missing), maxItemsToShow)
	for i := 0; i < count; i++ {
		sb.WriteString(fmt.Sprintf("  %d. %s\n", i+1, missing[i]))
	}
	if len(missing) > maxItemsToShow {
		sb.WriteString(fmt.Sprintf("\n... and %d more skills", len(missing)-maxItemsToShow))
	}

	p.printBox("SKILL GAPS", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintIssues outputs structural advice entries.
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) PrintIssues(issues []types.Issue) {
	if len(issues) == 0 {
		fmt.Fprintf(p.out, "┌%s┐\n", strings.Repeat("─", boxWidth-2))
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, "✅ NO ISSUES FOUND")
		fmt.Fprintf(p.out, "└%s┘\n", strings.Repeat("─", boxWidth-2))
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Found %d findings:\n\n", len(issues)))

	for i, issue := range issues {
		advice := issue.Advice
		if len(advice) > 45 {
			advice = advice[:42] + "..."
		}
		sb.WriteString(fmt.Sprintf("⚠ %s\n", issue.Issue))
		sb.WriteString(fmt.Sprintf("  %s\n", advice))
		if i < len(issues)-1 {
			sb.WriteString("\n")
		}
	}

	p.printBox("STRUCTURE ADVICE", sb.String())
}
