// Package contact holds the canonical contact-detection rules. The
// disqualifier gate and the structural advisor both depend on these rather
// than carrying their own regex variants, so a resume cannot pass one check
// and fail the other for the same field.
package contact

import (
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"
)

var (
	emailRe    = regexp.MustCompile(`\b[A-Za-z0-9._%+-]+@[A-Za-z0-9.-]+\.[A-Za-z]{2,}\b`)
	phoneRe    = regexp.MustCompile(`(\+\d{1,3}[-.\s]?)?\(?\d{3}\)?[-.\s]?\d{3}[-.\s]?\d{4}`)
	linkedinRe = regexp.MustCompile(`(?i)linkedin\.com/in/[\w-]+`)
	githubRe   = regexp.MustCompile(`(?i)github\.com/[\w-]+`)
)

// HasEmail reports whether text contains an email address.
func HasEmail(text string) bool {
	return emailRe.MatchString(text)
}

// HasPhone reports whether text contains a phone number.
func HasPhone(text string) bool {
	return phoneRe.MatchString(text)
}

// HasProfileLink reports whether text contains a LinkedIn or GitHub profile URL.
func HasProfileLink(text string) bool {
	return linkedinRe.MatchString(text) || githubRe.MatchString(text)
}

// IsNameLike reports whether s looks like a personal name: one to five
// whitespace-separated tokens, each starting with an uppercase letter.
func IsNameLike(s string) bool {
	parts := strings.Fields(s)
	if len(parts) < 1 || len(parts) > 5 {
		return false
	}
	for _, p := range parts {
		r, _ := utf8.DecodeRuneInString(p)
		if !unicode.IsUpper(r) {
			return false
		}
	}
	return true
}
