// Package gate applies the hard disqualification rules that zero a resume's
// score before any weighted signal is computed.
package gate

import (
	"strings"

	"github.com/jonathan/ats-screener/internal/contact"
	"github.com/jonathan/ats-screener/internal/types"
)

// Disqualification reasons reported alongside a zero score.
const (
	ReasonTablesOrImages = "Resume contains tables or images (not ATS-friendly)"
	ReasonMissingContact = "Missing minimal contact information (name + email + phone or profile)"
)

// Check runs the disqualifier rules over the resume text and its content
// elements. It returns true with an empty reason when the resume passes, or
// false with the first failing rule's reason.
func Check(text string, elements []types.ContentElement) (bool, string) {
	for _, e := range elements {
		if e.Kind == types.KindTable || e.Kind == types.KindImage {
			return false, ReasonTablesOrImages
		}
	}

	hasName := false
	for _, e := range elements {
		if e.Kind == types.KindHeading && contact.IsNameLike(strings.TrimSpace(e.Content)) {
			hasName = true
			break
		}
	}
	hasChannel := contact.HasEmail(text) || contact.HasPhone(text) || contact.HasProfileLink(text)
	if !hasName || !hasChannel {
		return false, ReasonMissingContact
	}

	return true, ""
}
