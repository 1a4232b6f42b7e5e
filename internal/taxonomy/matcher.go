package taxonomy

import (
	"context"
	"strings"

	"github.com/jonathan/ats-screener/internal/normalize"
)

// Match is one skill recognized in a text, with a confidence score in (0,1].
type Match struct {
	Skill string  `json:"skill"`
	Score float64 `json:"score"`
}

// Annotation is the result of annotating a text for skills: exact dictionary
// hits plus partial n-gram hits scored by the fraction of phrase tokens found.
type Annotation struct {
	FullMatches []Match `json:"full_matches"`
	NgramScored []Match `json:"ngram_scored"`
}

// Matcher is the bundled deterministic annotator. Single-word dictionary
// entries match on token equality; multi-word phrases match contiguously on
// punctuation-softened text, with scattered token hits reported as scored
// n-gram matches. Matcher is stateless and safe for concurrent use.
type Matcher struct {
	words   []string
	phrases []phraseEntry
}

type phraseEntry struct {
	skill   string
	cleaned string
	tokens  []string
}

// NewMatcher builds a Matcher over the curated vocabulary.
func NewMatcher() *Matcher {
	return NewMatcherWithVocab(CommonSkills)
}

// NewMatcherWithVocab builds a Matcher over a custom vocabulary.
func NewMatcherWithVocab(vocab []string) *Matcher {
	m := &Matcher{}
	for _, skill := range vocab {
		if strings.Contains(skill, " ") {
			cleaned := normalize.Text(normalize.CleanPhrase(skill))
			m.phrases = append(m.phrases, phraseEntry{
				skill:   skill,
				cleaned: cleaned,
				tokens:  strings.Fields(cleaned),
			})
		} else {
			m.words = append(m.words, skill)
		}
	}
	return m
}

// Annotate scans text for vocabulary skills. The error is always nil; it is
// part of the signature because remote annotators can fail where this one
// cannot.
func (m *Matcher) Annotate(_ context.Context, text string) (*Annotation, error) {
	ann := &Annotation{}
	if strings.TrimSpace(text) == "" {
		return ann, nil
	}

	norm := normalize.Text(text)
	tokenSet := tokenSetOf(norm)

	for _, word := range m.words {
		if _, ok := tokenSet[word]; ok {
			ann.FullMatches = append(ann.FullMatches, Match{Skill: word, Score: 1.0})
		}
	}

	cleaned := normalize.Text(normalize.CleanPhrase(text))
	cleanedPadded := " " + cleaned + " "
	cleanedSet := tokenSetOf(cleaned)

	for _, entry := range m.phrases {
		if strings.Contains(cleanedPadded, " "+entry.cleaned+" ") {
			ann.FullMatches = append(ann.FullMatches, Match{Skill: entry.skill, Score: 1.0})
			continue
		}
		present := 0
		for _, tok := range entry.tokens {
			if _, ok := cleanedSet[tok]; ok {
				present++
			}
		}
		if present > 0 {
			score := float64(present) / float64(len(entry.tokens))
			ann.NgramScored = append(ann.NgramScored, Match{Skill: entry.skill, Score: score})
		}
	}

	return ann, nil
}

// tokenSetOf indexes both raw whitespace tokens and their punctuation-trimmed
// forms, so "sql," and "(node.js)" still hit their dictionary entries.
func tokenSetOf(text string) map[string]struct{} {
	set := make(map[string]struct{})
	for _, tok := range strings.Fields(text) {
		set[tok] = struct{}{}
	}
	for _, tok := range normalize.WordTokens(text) {
		set[strings.ToLower(tok)] = struct{}{}
	}
	return set
}
