package types

// Issue is one unit of structural advice: the problem found and how to fix it.
type Issue struct {
	Issue  string `json:"issue"`
	Advice string `json:"advice"`
}

// ScoreBreakdown carries the weighted contribution of every sub-signal that
// fed a final score. It exists for diagnostics and testing; the score contract
// itself only promises the final integer.
type ScoreBreakdown struct {
	SkillCoverage    float64 `json:"skill_coverage"`
	TFIDFSimilarity  float64 `json:"tfidf_similarity"`
	KeywordMatch     float64 `json:"keyword_match"`
	ExperienceBonus  float64 `json:"experience_bonus"`
	Sections         float64 `json:"sections"`
	Bullets          float64 `json:"bullets"`
	ReadabilityVerbs float64 `json:"readability_verbs"`
	ContentScore     float64 `json:"content_score"`
	FormattingScore  float64 `json:"formatting_score"`
	FinalScore       int     `json:"final_score"`
	Disqualified     bool    `json:"disqualified,omitempty"`
	Reason           string  `json:"reason,omitempty"`
}
