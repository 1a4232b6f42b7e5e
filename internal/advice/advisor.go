// Package advice inspects a resume's text and content elements and produces
// actionable restructuring suggestions grouped by concern: contact details,
// section structure, formatting, and content quality.
package advice

import (
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/jonathan/ats-screener/internal/contact"
	"github.com/jonathan/ats-screener/internal/taxonomy"
	"github.com/jonathan/ats-screener/internal/types"
)

const (
	// minFontSize is the smallest point size an ATS parser reads reliably.
	minFontSize = 9.0
	// maxFontSpread is the largest tolerated gap between font sizes.
	maxFontSpread = 6.0
	// maxBulletsPerSection is the readability limit per position.
	maxBulletsPerSection = 5
	// nameScanChars bounds how far into the text the name check looks.
	nameScanChars = 100
)

// sectionVariants maps each expected section to the heading spellings that
// satisfy it, searched case-insensitively in the resume text.
var sectionVariants = []struct {
	label    string
	variants []string
}{
	{"Experience", []string{"experience", "work experience", "employment history"}},
	{"Education", []string{"education", "academic background"}},
	{"Skills", []string{"skills", "technical skills", "key skills"}},
}

// contentContainers marks headings whose bullet counts are reviewed. Matched
// as substrings of the lowercased heading.
var contentContainers = []string{"experience", "work experience", "projects", "education"}

// Advisor produces restructuring advice for resumes.
type Advisor struct {
	logger *zap.Logger
}

// NewAdvisor creates an advisor. A nil logger disables logging.
func NewAdvisor(logger *zap.Logger) *Advisor {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Advisor{logger: logger}
}

// Analyze reviews the resume and returns its issues in a stable order:
// contact, sections, formatting, then content. A failure inside one group
// is reported as a generic issue for that group without affecting the
// others. A clean resume gets a single confirmation entry.
func (a *Advisor) Analyze(text string, elements []types.ContentElement) []types.Issue {
	if strings.TrimSpace(text) == "" {
		return []types.Issue{{
			Issue:  "Invalid resume text",
			Advice: "Provide valid resume text for analysis.",
		}}
	}

	var issues []types.Issue
	issues = append(issues, a.runGroup("contact information", func() []types.Issue {
		return checkContact(text)
	})...)
	issues = append(issues, a.runGroup("section structure", func() []types.Issue {
		return checkSections(text, elements)
	})...)
	issues = append(issues, a.runGroup("formatting", func() []types.Issue {
		return checkFormatting(elements)
	})...)
	issues = append(issues, a.runGroup("content quality", func() []types.Issue {
		return checkContent(text, elements)
	})...)

	if len(issues) == 0 {
		issues = append(issues, types.Issue{
			Issue:  "No major issues detected",
			Advice: "Your resume appears to be well-structured for ATS. Consider having it reviewed by a professional for further optimization.",
		})
	}
	return issues
}

// runGroup executes one check group, converting a panic into a generic
// issue so the remaining groups still run.
func (a *Advisor) runGroup(name string, fn func() []types.Issue) (out []types.Issue) {
	defer func() {
		if r := recover(); r != nil {
			a.logger.Error("advice group failed", zap.String("group", name), zap.Any("panic", r))
			out = []types.Issue{{
				Issue:  "Error analyzing " + name,
				Advice: "Could not analyze this area; the remaining checks still apply.",
			}}
		}
	}()
	return fn()
}

func checkContact(text string) []types.Issue {
	var issues []types.Issue

	head := []rune(text)
	if len(head) > nameScanChars {
		head = head[:nameScanChars]
	}
	firstLine := strings.TrimSpace(strings.SplitN(string(head), "\n", 2)[0])
	if !contact.IsNameLike(firstLine) {
		issues = append(issues, types.Issue{
			Issue:  "Missing or unclear name at the top of the resume",
			Advice: "Add your full name prominently at the top of your resume.",
		})
	}

	if !contact.HasEmail(text) && !contact.HasPhone(text) {
		issues = append(issues, types.Issue{
			Issue:  "Missing both email and phone number",
			Advice: "Include at least one reliable contact method (email or phone).",
		})
	}

	if !contact.HasProfileLink(text) {
		issues = append(issues, types.Issue{
			Issue:  "No professional profile links",
			Advice: "Consider adding your LinkedIn profile or personal website.",
		})
	}

	return issues
}

func checkSections(text string, elements []types.ContentElement) []types.Issue {
	var issues []types.Issue
	lower := strings.ToLower(text)

	for _, section := range sectionVariants {
		found := false
		for _, v := range section.variants {
			if strings.Contains(lower, v) {
				found = true
				break
			}
		}
		if !found {
			issues = append(issues, types.Issue{
				Issue:  fmt.Sprintf("Missing %q section", section.label),
				Advice: fmt.Sprintf("Add a clearly labeled %q section.", section.label),
			})
		}
	}

	var firstHeading *types.ContentElement
	for i := range elements {
		if elements[i].Kind == types.KindHeading {
			firstHeading = &elements[i]
			break
		}
	}
	if firstHeading == nil || !contact.IsNameLike(strings.TrimSpace(firstHeading.Content)) {
		issues = append(issues, types.Issue{
			Issue:  "Name/contact information not at the top",
			Advice: "Place your name and contact information at the top of the first page.",
		})
	}

	return issues
}

func checkFormatting(elements []types.ContentElement) []types.Issue {
	var issues []types.Issue

	var sizes []float64
	hasTable, hasImage := false, false
	for _, e := range elements {
		if e.FontSize != nil {
			sizes = append(sizes, *e.FontSize)
		}
		switch e.Kind {
		case types.KindTable:
			hasTable = true
		case types.KindImage:
			hasImage = true
		}
	}

	if len(sizes) > 0 {
		minSize, maxSize := sizes[0], sizes[0]
		for _, s := range sizes[1:] {
			if s < minSize {
				minSize = s
			}
			if s > maxSize {
				maxSize = s
			}
		}
		if minSize < minFontSize {
			issues = append(issues, types.Issue{
				Issue:  fmt.Sprintf("Font size too small (%.1fpt)", minSize),
				Advice: "Increase all text to at least 10pt for better readability.",
			})
		}
		if maxSize-minSize > maxFontSpread {
			issues = append(issues, types.Issue{
				Issue:  "Inconsistent font sizes",
				Advice: "Limit font size variations to 2-3 sizes for better visual hierarchy.",
			})
		}
	}

	if hasTable {
		issues = append(issues, types.Issue{
			Issue:  "Uses tables or columns",
			Advice: "Avoid tables and columns as they may cause parsing issues with ATS.",
		})
	}
	if hasImage {
		issues = append(issues, types.Issue{
			Issue:  "Contains images or graphics",
			Advice: "Remove images, icons, and graphics as they are not ATS-friendly.",
		})
	}

	return issues
}

func checkContent(text string, elements []types.ContentElement) []types.Issue {
	var issues []types.Issue

	type section struct {
		name    string
		bullets int
	}
	var sections []section
	open := false
	for _, e := range elements {
		switch e.Kind {
		case types.KindHeading:
			name := strings.TrimSpace(e.Content)
			if isContentContainer(name) {
				sections = append(sections, section{name: name})
				open = true
			} else {
				open = false
			}
		case types.KindBullet:
			if open {
				sections[len(sections)-1].bullets++
			}
		}
	}

	for _, s := range sections {
		isExperience := strings.Contains(strings.ToLower(s.name), "experience")
		if isExperience && s.bullets == 0 {
			issues = append(issues, types.Issue{
				Issue:  fmt.Sprintf("No bullet points in %q section", s.name),
				Advice: "Use 3-5 bullet points per position to highlight achievements.",
			})
		}
		if s.bullets > maxBulletsPerSection {
			issues = append(issues, types.Issue{
				Issue:  fmt.Sprintf("Too many bullet points (%d) in %q", s.bullets, s.name),
				Advice: "Limit to 5 bullet points per position for better readability.",
			})
		}
	}

	if !taxonomy.ContainsActionVerb(text) {
		issues = append(issues, types.Issue{
			Issue:  "Weak action verbs",
			Advice: `Start bullet points with strong action verbs (e.g., "Led", "Developed", "Increased").`,
		})
	}

	return issues
}

func isContentContainer(heading string) bool {
	lower := strings.ToLower(heading)
	for _, c := range contentContainers {
		if strings.Contains(lower, c) {
			return true
		}
	}
	return false
}
