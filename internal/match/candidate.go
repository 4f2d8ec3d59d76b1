package match

import (
	"sort"
)

// Term is an enumeration member prepared for ranking.
type Term struct {
	Name     string // Go identifier, e.g. "StatusPaid"
	NameKey  string // MemberKey of Name
	ValueKey string // ValueKey of the constant, empty for non-string members
}

// NewTerm builds a Term for a member of the named type. value is the exact
// constant value and may be empty.
func NewTerm(name, typeName, value string) Term {
	return Term{
		Name:     name,
		NameKey:  MemberKey(name, typeName),
		ValueKey: ValueKey(value),
	}
}

// Candidate represents a potential counterpart for a member.
type Candidate struct {
	Term

	NameScore  float64 // similarity of the name keys (0-1)
	ValueScore float64 // similarity of the value keys, 0 when either is missing
	Score      float64 // the better of the two; higher is better
}

// CandidateList is a list of candidates with ranking functionality.
type CandidateList []Candidate

// RankMembers scores every member of pool as a counterpart for target.
// Returns candidates sorted by score (descending), then by name.
func RankMembers(target Term, pool []Term) CandidateList {
	candidates := make(CandidateList, 0, len(pool))

	for _, t := range pool {
		c := Candidate{
			Term:      t,
			NameScore: Similarity(target.NameKey, t.NameKey),
		}

		if target.ValueKey != "" && t.ValueKey != "" {
			c.ValueScore = Similarity(target.ValueKey, t.ValueKey)
		}

		c.Score = max(c.NameScore, c.ValueScore)
		candidates = append(candidates, c)
	}

	sort.Sort(candidates)

	return candidates
}

// Suggest returns up to n names from pool that resemble name, best first.
// Names scoring under DefaultSuggestScore are left out.
func Suggest(name string, pool []string, n int) []string {
	terms := make([]Term, len(pool))
	for i, p := range pool {
		terms[i] = Term{Name: p, NameKey: NormalizeIdent(p)}
	}

	ranked := RankMembers(Term{Name: name, NameKey: NormalizeIdent(name)}, terms).
		AboveThreshold(DefaultSuggestScore).
		Top(n)

	names := make([]string, len(ranked))
	for i, c := range ranked {
		names[i] = c.Name
	}

	return names
}

// Len implements sort.Interface.
func (c CandidateList) Len() int { return len(c) }

// Swap implements sort.Interface.
func (c CandidateList) Swap(i, j int) { c[i], c[j] = c[j], c[i] }

// Less implements sort.Interface.
func (c CandidateList) Less(i, j int) bool {
	if c[i].Score != c[j].Score {
		return c[i].Score > c[j].Score
	}

	return c[i].Name < c[j].Name
}

// Top returns the top n candidates.
func (c CandidateList) Top(n int) CandidateList {
	if n >= len(c) {
		return c
	}

	return c[:n]
}

// Best returns the best candidate, or nil if no candidates.
func (c CandidateList) Best() *Candidate {
	if len(c) == 0 {
		return nil
	}

	return &c[0]
}

// IsAmbiguous returns true if the top two candidates are within the threshold.
func (c CandidateList) IsAmbiguous(threshold float64) bool {
	if len(c) < 2 {
		return false
	}

	return c[0].Score-c[1].Score < threshold
}

// AboveThreshold returns candidates with score at or above the threshold.
func (c CandidateList) AboveThreshold(threshold float64) CandidateList {
	var result CandidateList

	for _, cand := range c {
		if cand.Score >= threshold {
			result = append(result, cand)
		}
	}

	return result
}

// HighConfidence returns the best candidate if it's significantly better than alternatives.
// Returns nil if no clear winner exists.
func (c CandidateList) HighConfidence(minScore, minGap float64) *Candidate {
	if len(c) == 0 {
		return nil
	}

	best := &c[0]
	if best.Score < minScore {
		return nil
	}

	if len(c) > 1 && best.Score-c[1].Score < minGap {
		return nil
	}

	return best
}

// Confidence thresholds for auto-accepting matches.
const (
	// DefaultMinScore is the minimum score for auto-acceptance.
	DefaultMinScore = 0.8
	// DefaultMinGap is the minimum score gap between top candidates.
	DefaultMinGap = 0.15
	// DefaultAmbiguityThreshold is the score difference that marks ambiguity.
	DefaultAmbiguityThreshold = 0.1
	// DefaultSuggestScore is the lowest score offered as a "did you mean".
	DefaultSuggestScore = 0.5
)
