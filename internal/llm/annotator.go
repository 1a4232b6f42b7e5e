package llm

import (
	"context"
	"encoding/json"
	"strings"

	"go.uber.org/zap"

	"github.com/jonathan/ats-screener/internal/logger"
	"github.com/jonathan/ats-screener/internal/taxonomy"
)

// Annotator resolves skill phrases through the Gemini backend. It satisfies
// the annotation dependency of the skill extractor; any error it returns
// makes the extractor fall back to vocabulary scanning for the rest of the
// process lifetime.
type Annotator struct {
	client Client
	tier   ModelTier
	logger *zap.Logger
}

// NewAnnotator wraps an LLM client as a skill annotator. Annotation is an
// extraction task, so it runs on the lite tier.
func NewAnnotator(client Client, log *zap.Logger) *Annotator {
	if log == nil {
		log = zap.NewNop()
	}
	return &Annotator{client: client, tier: TierLite, logger: log}
}

// annotationPayload mirrors the JSON shape requested by SkillAnnotationSchema.
type annotationPayload struct {
	Skills     []string `json:"skills"`
	Candidates []struct {
		Phrase     string  `json:"phrase"`
		Confidence float64 `json:"confidence"`
	} `json:"candidates"`
}

// Annotate asks the model for the skills present in the text. Outright
// matches carry score 1; uncertain candidates carry the model's confidence.
func (a *Annotator) Annotate(ctx context.Context, text string) (*taxonomy.Annotation, error) {
	prompt := BuildExtractionPrompt(SkillAnnotationSchema(), text)
	raw, err := a.client.GenerateJSON(ctx, prompt, a.tier)
	if err != nil {
		return nil, &AnnotationError{Message: "skill annotation request failed", Cause: err}
	}

	var payload annotationPayload
	if err := json.Unmarshal([]byte(raw), &payload); err != nil {
		a.logger.Warn("unparseable annotation response",
			zap.String("response", logger.TruncateForLog(raw, 200)))
		return nil, &AnnotationError{Message: "skill annotation response is not valid JSON", Cause: err}
	}

	ann := &taxonomy.Annotation{}
	for _, s := range payload.Skills {
		if s = strings.TrimSpace(s); s != "" {
			ann.FullMatches = append(ann.FullMatches, taxonomy.Match{Skill: s, Score: 1})
		}
	}
	for _, c := range payload.Candidates {
		phrase := strings.TrimSpace(c.Phrase)
		if phrase == "" {
			continue
		}
		ann.NgramScored = append(ann.NgramScored, taxonomy.Match{Skill: phrase, Score: c.Confidence})
	}

	a.logger.Debug("annotated text",
		zap.Int("full_matches", len(ann.FullMatches)),
		zap.Int("candidates", len(ann.NgramScored)))
	return ann, nil
}
