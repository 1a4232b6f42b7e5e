package types

import (
	"time"

	"github.com/google/uuid"
)

// AnalysisReport bundles the outputs of one full resume analysis run.
// Field names mirror the interchange keys consumed by presentation layers.
type AnalysisReport struct {
	RunID         uuid.UUID       `json:"run_id"`
	ATSScore      int             `json:"ats_score"`
	Breakdown     *ScoreBreakdown `json:"breakdown,omitempty"`
	MissingSkills []string        `json:"missing_skills"`
	Advice        []Issue         `json:"restructure_advice"`
	GeneratedAt   time.Time       `json:"generated_at"`
}
