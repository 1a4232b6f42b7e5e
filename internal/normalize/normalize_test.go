package normalize

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestText_LowercasesAndCollapses(t *testing.T) {
	assert.Equal(t, "senior go engineer", Text("  Senior\tGo\n\nEngineer "))
}

func TestText_Empty(t *testing.T) {
	assert.Equal(t, "", Text(""))
	assert.Equal(t, "", Text("   \n\t "))
}

func TestCleanPhrase_StripsPunctuation(t *testing.T) {
	assert.Equal(t, "node js", CleanPhrase("Node.js"))
	assert.Equal(t, "c", CleanPhrase("C++"))
	assert.Equal(t, "scikit learn", CleanPhrase("scikit-learn"))
}

func TestCleanPhrase_KeepsUnderscoreAndDigits(t *testing.T) {
	// Interior whitespace is not collapsed, only punctuation is replaced.
	assert.Equal(t, "ci_cd  2024", CleanPhrase("CI_CD: 2024!"))
}

func TestSentences_SplitsOnTerminalsAndNewlines(t *testing.T) {
	sents := Sentences("Led the team. Shipped on time!\nReduced costs?")
	assert.Equal(t, []string{"Led the team", "Shipped on time", "Reduced costs"}, sents)
}

func TestSentences_DropsEmptySegments(t *testing.T) {
	assert.Empty(t, Sentences("...\n\n"))
}

func TestWordTokens_StripsSurroundingPunctuation(t *testing.T) {
	tokens := WordTokens("- Built (and shipped) v2.0,")
	assert.Equal(t, []string{"Built", "and", "shipped", "v2.0"}, tokens)
}

func TestWordTokens_DropsPurePunctuation(t *testing.T) {
	assert.Equal(t, []string{"a", "b"}, WordTokens("a • b —"))
}

func TestAlnumSpaceRatio(t *testing.T) {
	assert.Equal(t, 1.0, AlnumSpaceRatio("plain text 123"))
	assert.Equal(t, 0.0, AlnumSpaceRatio(""))
	assert.InDelta(t, 0.5, AlnumSpaceRatio("ab!?"), 0.001)
}

func TestAnalyzable_RejectsShortText(t *testing.T) {
	assert.False(t, Analyzable("too short"))
	assert.False(t, Analyzable(""))
}

func TestAnalyzable_RejectsPaddedShortText(t *testing.T) {
	padded := "short" + strings.Repeat(" ", 100)
	assert.False(t, Analyzable(padded))
}

func TestAnalyzable_RejectsNoisyText(t *testing.T) {
	noisy := strings.Repeat("%PDF-1.4 \x00\x01>>", 10)
	assert.False(t, Analyzable(noisy))
}

func TestAnalyzable_AcceptsProse(t *testing.T) {
	prose := "Senior software engineer with eight years of experience building distributed systems."
	assert.True(t, Analyzable(prose))
}
