package taxonomy

import (
	"regexp"
	"strings"

	"github.com/jonathan/ats-screener/internal/normalize"
)

// ActionVerbs are the resume action-verb stems rewarded by readability
// scoring and checked by the structural advisor. A stem matches with any
// trailing word characters.
var ActionVerbs = []string{
	"achieved", "managed", "increased", "developed", "led", "implemented",
	"created", "improved", "reduced", "designed", "launched", "spearheaded",
	"built", "optimized", "analyzed", "collaborated", "mentored", "taught",
	"coordinated", "executed", "facilitated", "generated", "resolved",
}

var (
	actionVerbAnywhereRe = regexp.MustCompile(`(?i)\b(?:` + strings.Join(ActionVerbs, "|") + `)\w*`)
	actionVerbTokenRe    = regexp.MustCompile(`^(?:` + strings.Join(ActionVerbs, "|") + `)\w*$`)
)

// ContainsActionVerb reports whether any action-verb stem occurs in the text.
func ContainsActionVerb(text string) bool {
	return actionVerbAnywhereRe.MatchString(text)
}

// StartsWithActionVerb reports whether the first word-like token of the text
// is an action verb. Leading list markers and punctuation are ignored.
func StartsWithActionVerb(text string) bool {
	tokens := normalize.WordTokens(text)
	if len(tokens) == 0 {
		return false
	}
	return actionVerbTokenRe.MatchString(strings.ToLower(tokens[0]))
}
