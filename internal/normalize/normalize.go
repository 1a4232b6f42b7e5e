// Package normalize provides the shared text canonicalization used by every
// analysis component. Both sides of any text comparison must pass through the
// same normalization or overlap counts are meaningless.
package normalize

import (
	"regexp"
	"strings"
	"unicode"
)

// MinTextLength is the minimum trimmed length, in bytes, for text to be
// worth analyzing at all.
const MinTextLength = 50

// minAlnumRatio is the minimum fraction of letter, digit, or whitespace
// runes for text to count as prose rather than binary junk.
const minAlnumRatio = 0.5

var (
	whitespaceRe = regexp.MustCompile(`\s+`)
	nonWordRe    = regexp.MustCompile(`[^\w\s]`)
	sentenceRe   = regexp.MustCompile(`[.!?\n]+`)
)

// Text lowercases the input and collapses all whitespace runs to single
// spaces, trimming the ends.
func Text(text string) string {
	if text == "" {
		return ""
	}
	t := strings.ToLower(text)
	return strings.TrimSpace(whitespaceRe.ReplaceAllString(t, " "))
}

// CleanPhrase lowercases the input and replaces every non-word character with
// a space, trimming the ends. Used to canonicalize extracted skill phrases.
func CleanPhrase(text string) string {
	return strings.TrimSpace(nonWordRe.ReplaceAllString(strings.ToLower(text), " "))
}

// Sentences splits text into sentence-like segments on terminal punctuation
// and newlines, dropping empty segments.
func Sentences(text string) []string {
	parts := sentenceRe.Split(text, -1)
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}

// WordTokens splits text on whitespace and strips surrounding punctuation from
// each token, dropping tokens left without letters or digits. This is the
// token count used for sentence-length statistics.
func WordTokens(text string) []string {
	fields := strings.Fields(text)
	out := make([]string, 0, len(fields))
	for _, f := range fields {
		f = strings.TrimFunc(f, func(r rune) bool {
			return !unicode.IsLetter(r) && !unicode.IsDigit(r)
		})
		if f != "" {
			out = append(out, f)
		}
	}
	return out
}

// Analyzable reports whether text passes minimum-length and text-density
// validation. The ratio is computed over the raw, untrimmed input.
func Analyzable(text string) bool {
	if len(strings.TrimSpace(text)) < MinTextLength {
		return false
	}
	return AlnumSpaceRatio(text) >= minAlnumRatio
}

// AlnumSpaceRatio returns the fraction of runes that are letters, digits, or
// whitespace. Low ratios indicate binary junk rather than prose.
func AlnumSpaceRatio(text string) float64 {
	runes := []rune(text)
	if len(runes) == 0 {
		return 0
	}
	count := 0
	for _, r := range runes {
		if unicode.IsLetter(r) || unicode.IsDigit(r) || unicode.IsSpace(r) {
			count++
		}
	}
	return float64(count) / float64(len(runes))
}
