package bidi

import (
	"cmp"
	"fmt"
	"strings"
)

// Problem codes reported by BuildFailure.Problems.
const (
	CodeMissing     = "missing_member"
	CodeDuplicate   = "duplicate_member"
	CodeUnknown     = "unknown_member"
	CodeInvalidRule = "invalid_rule"
)

// BuildFailure lists every coverage problem found while building a
// converter. All lists are sorted.
type BuildFailure[A, B cmp.Ordered] struct {
	Converter string
	DomainA   string
	DomainB   string

	// MissingA are members of domain A that no A-covering rule addresses.
	MissingA []A
	// DuplicateA are members of domain A addressed by more than one A-covering rule.
	DuplicateA []A
	// UnknownA are rule operands that are not members of domain A.
	UnknownA []A

	MissingB   []B
	DuplicateB []B
	UnknownB   []B

	// InvalidRules are rules with an unknown kind (e.g. a zero Rule).
	InvalidRules []Rule[A, B]
}

// Problem is one entry of a BuildFailure, with values rendered as text.
type Problem struct {
	// Domain is the name of the domain the value belongs to.
	Domain string
	Code   string
	Value  string
}

func (p Problem) String() string {
	msg := strings.ReplaceAll(p.Code, "_", " ") + ": " + p.Value
	if p.Domain == "" {
		return msg
	}

	return p.Domain + " " + msg
}

func (f *BuildFailure[A, B]) Error() string {
	problems := f.Problems()

	parts := make([]string, len(problems))
	for i, p := range problems {
		parts[i] = p.String()
	}

	return fmt.Sprintf("%s: %v: %s", f.Converter, ErrIncompleteMapping, strings.Join(parts, "; "))
}

func (f *BuildFailure[A, B]) Unwrap() error {
	return ErrIncompleteMapping
}

// Problems flattens the failure, domain A first, then domain B.
func (f *BuildFailure[A, B]) Problems() []Problem {
	var problems []Problem

	problems = appendProblems(problems, f.DomainA, CodeMissing, f.MissingA)
	problems = appendProblems(problems, f.DomainA, CodeDuplicate, f.DuplicateA)
	problems = appendProblems(problems, f.DomainA, CodeUnknown, f.UnknownA)
	problems = appendProblems(problems, f.DomainB, CodeMissing, f.MissingB)
	problems = appendProblems(problems, f.DomainB, CodeDuplicate, f.DuplicateB)
	problems = appendProblems(problems, f.DomainB, CodeUnknown, f.UnknownB)

	for _, r := range f.InvalidRules {
		problems = append(problems, Problem{Code: CodeInvalidRule, Value: r.String()})
	}

	return problems
}

func (f *BuildFailure[A, B]) empty() bool {
	return len(f.MissingA)+len(f.DuplicateA)+len(f.UnknownA)+
		len(f.MissingB)+len(f.DuplicateB)+len(f.UnknownB)+len(f.InvalidRules) == 0
}

func appendProblems[T any](problems []Problem, domain, code string, values []T) []Problem {
	for _, v := range values {
		problems = append(problems, Problem{Domain: domain, Code: code, Value: fmt.Sprint(v)})
	}

	return problems
}
