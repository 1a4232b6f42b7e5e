package types

import (
	"encoding/json"
	"sort"
	"strings"
)

// maxSkillLength bounds a canonical skill string; longer entries are dropped.
const maxSkillLength = 100

// SkillSet holds canonical skill strings (lowercase, trimmed) for set
// comparison. Both sides of any comparison must be built through Add so the
// canonical form is identical.
type SkillSet map[string]struct{}

// NewSkillSet builds a SkillSet from the given skills, canonicalizing each.
func NewSkillSet(skills ...string) SkillSet {
	s := make(SkillSet, len(skills))
	for _, skill := range skills {
		s.Add(skill)
	}
	return s
}

// Add canonicalizes the skill and inserts it. Empty and over-length entries
// are dropped.
func (s SkillSet) Add(skill string) {
	skill = strings.ToLower(strings.TrimSpace(skill))
	if skill == "" || len(skill) > maxSkillLength {
		return
	}
	s[skill] = struct{}{}
}

// Contains reports whether the canonical form of skill is in the set.
func (s SkillSet) Contains(skill string) bool {
	_, ok := s[strings.ToLower(strings.TrimSpace(skill))]
	return ok
}

// Union returns a new set with members of both sets.
func (s SkillSet) Union(other SkillSet) SkillSet {
	out := make(SkillSet, len(s)+len(other))
	for skill := range s {
		out[skill] = struct{}{}
	}
	for skill := range other {
		out[skill] = struct{}{}
	}
	return out
}

// Intersect returns a new set with members present in both sets.
func (s SkillSet) Intersect(other SkillSet) SkillSet {
	out := make(SkillSet)
	for skill := range s {
		if _, ok := other[skill]; ok {
			out[skill] = struct{}{}
		}
	}
	return out
}

// Difference returns a new set with members of s not present in other.
func (s SkillSet) Difference(other SkillSet) SkillSet {
	out := make(SkillSet)
	for skill := range s {
		if _, ok := other[skill]; !ok {
			out[skill] = struct{}{}
		}
	}
	return out
}

// Sorted returns the members in ascending order.
func (s SkillSet) Sorted() []string {
	out := make([]string, 0, len(s))
	for skill := range s {
		out = append(out, skill)
	}
	sort.Strings(out)
	return out
}

// MarshalJSON encodes the set as a sorted JSON array.
func (s SkillSet) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.Sorted())
}

// UnmarshalJSON decodes a JSON array into the set, canonicalizing each entry.
func (s *SkillSet) UnmarshalJSON(data []byte) error {
	var skills []string
	if err := json.Unmarshal(data, &skills); err != nil {
		return err
	}
	*s = NewSkillSet(skills...)
	return nil
}
