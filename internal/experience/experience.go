// Package experience estimates career length signals from free text: the
// minimum years a job description asks for and the span of years a resume
// covers.
package experience

import (
	"regexp"
	"strconv"
)

// maxCareerSpanYears caps the estimated resume span so stray years such as
// birth dates cannot inflate it.
const maxCareerSpanYears = 40

var (
	requiredRe = regexp.MustCompile(`(\d+)\s*\+?\s*(?:years|yrs)\s+(?:of\s+)?experience`)
	yearRe     = regexp.MustCompile(`20\d{2}|19\d{2}`)
)

// RequiredYears scans normalized job description text for phrases such as
// "5+ years of experience" or "3 yrs experience" and returns the largest
// figure mentioned, or 0 when the posting states no requirement.
func RequiredYears(text string) int {
	required := 0
	for _, m := range requiredRe.FindAllStringSubmatch(text, -1) {
		n, err := strconv.Atoi(m[1])
		if err != nil {
			continue
		}
		if n > required {
			required = n
		}
	}
	return required
}

// EstimateYears approximates how many years of experience a resume covers
// from the calendar years it mentions. Fewer than two distinct years gives
// no evidence of a span and returns 0; otherwise the result is the spread
// between the earliest and latest year, capped at maxCareerSpanYears.
func EstimateYears(text string) int {
	distinct := make(map[int]struct{})
	for _, m := range yearRe.FindAllString(text, -1) {
		y, err := strconv.Atoi(m)
		if err != nil {
			continue
		}
		distinct[y] = struct{}{}
	}
	if len(distinct) < 2 {
		return 0
	}

	minYear, maxYear := 0, 0
	for y := range distinct {
		if minYear == 0 || y < minYear {
			minYear = y
		}
		if y > maxYear {
			maxYear = y
		}
	}

	span := maxYear - minYear
	if span > maxCareerSpanYears {
		span = maxCareerSpanYears
	}
	return span
}
