package rendering

import (
	"bytes"
	"encoding/json"
	"fmt"
	"time"

	"github.com/jonathan/ats-screener/internal/observability"
	"github.com/jonathan/ats-screener/internal/types"
)

// RenderText formats an analysis report as boxed terminal output. The score,
// breakdown, and skill gap sections appear only when scoring ran (a job
// description was provided); structural advice always renders.
func RenderText(report *types.AnalysisReport) (string, error) {
	if report == nil {
		return "", &RenderError{Message: "no report to render"}
	}

	var buf bytes.Buffer
	p := observability.NewPrinter(&buf)

	fmt.Fprintf(&buf, "Run %s at %s\n\n",
		report.RunID, report.GeneratedAt.Format(time.RFC3339))

	if report.Breakdown != nil {
		p.PrintScore(report.Breakdown)
		p.PrintBreakdown(report.Breakdown)
		p.PrintGaps(report.MissingSkills)
	}
	p.PrintIssues(report.Advice)

	return buf.String(), nil
}

// RenderJSON marshals an analysis report as indented JSON with stable field
// names for downstream tooling.
func RenderJSON(report *types.AnalysisReport) ([]byte, error) {
	if report == nil {
		return nil, &RenderError{Message: "no report to render"}
	}

	data, err := json.MarshalIndent(report, "", "  ")
	if err != nil {
		return nil, &RenderError{Message: "failed to marshal report", Cause: err}
	}

	return data, nil
}
