// Package matcher suggests ICD-10 codes for free-text diagnoses by keyword overlap.
package matcher

import (
	"strings"

	"github.com/Veraticus/icd-suggest/internal/model"
)

// Suggester suggests a billing code for diagnosis text.
type Suggester interface {
	Match(input string) model.MatchResult
}

// Matcher scores diagnosis text against a fixed reference table.
// It is immutable after construction and safe for concurrent use.
type Matcher struct {
	refs []model.ReferenceEntry
}

// New creates a matcher over a copy of refs.
func New(refs []model.ReferenceEntry) *Matcher {
	return &Matcher{refs: append([]model.ReferenceEntry(nil), refs...)}
}

// NewDefault creates a matcher over the built-in reference table.
func NewDefault() *Matcher {
	return New(model.DefaultReferences())
}

// References returns a copy of the matcher's reference table.
func (m *Matcher) References() []model.ReferenceEntry {
	return append([]model.ReferenceEntry(nil), m.refs...)
}

// Match returns the best suggestion for input.
func (m *Matcher) Match(input string) model.MatchResult {
	return Match(input, m.refs)
}

// Match returns the reference entry whose label best overlaps input, or
// model.Fallback when none scores above it. Entries are tried in order and a
// later entry only wins with a strictly higher score.
func Match(input string, refs []model.ReferenceEntry) model.MatchResult {
	words := tokenize(input)
	best := model.Fallback

	for _, ref := range refs {
		score := Score(words, tokenize(ref.Label))
		if score > best.Confidence {
			best = model.MatchResult{
				Code:       ref.Code,
				Label:      ref.Label,
				Confidence: score,
			}
		}
	}

	return best
}

// Score rates how many label tokens are covered by input tokens, mapped onto
// [0.1, MaxConfidence].
func Score(inputTokens, labelTokens []string) float64 {
	if len(labelTokens) == 0 {
		return 0
	}

	matched := 0
	for _, lt := range labelTokens {
		if overlaps(lt, inputTokens) {
			matched++
		}
	}

	score := float64(matched)/float64(len(labelTokens))*0.9 + 0.1
	return min(model.MaxConfidence, score)
}

// overlaps reports whether any input token contains token or is contained by it.
func overlaps(token string, inputTokens []string) bool {
	for _, it := range inputTokens {
		if strings.Contains(it, token) || strings.Contains(token, it) {
			return true
		}
	}
	return false
}

// tokenize lowercases, trims and splits on single spaces.
// Empty tokens from repeated spaces are kept.
func tokenize(s string) []string {
	return strings.Split(strings.TrimSpace(strings.ToLower(s)), " ")
}
