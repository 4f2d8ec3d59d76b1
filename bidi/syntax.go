package bidi

import (
	"fmt"
	"strings"
)

const orphanMark = "_"

var operators = []string{"==", "=>", "<="}

// ParseRule parses the textual rule syntax over member names:
//
//	A1 == B1   equivalence
//	A3 => B1   projection A to B
//	A2 <= B4   projection B to A
//	A5 => _    A5 is an orphan
//	_  <= B6   B6 is an orphan
func ParseRule(text string) (Rule[string, string], error) {
	op, left, right, err := splitRule(text)
	if err != nil {
		return Rule[string, string]{}, err
	}

	leftOrphan, rightOrphan := left == orphanMark, right == orphanMark

	switch {
	case leftOrphan && rightOrphan:
		return Rule[string, string]{}, fmt.Errorf("%w: %q maps nothing to nothing", ErrInvalidRuleSyntax, text)
	case op == "==" && (leftOrphan || rightOrphan):
		return Rule[string, string]{}, fmt.Errorf("%w: %q: an equivalence needs two values", ErrInvalidRuleSyntax, text)
	case op == "=>" && leftOrphan, op == "<=" && rightOrphan:
		return Rule[string, string]{}, fmt.Errorf("%w: %q: the orphan mark must be on the target side", ErrInvalidRuleSyntax, text)
	}

	switch {
	case op == "==":
		return Equiv(left, right), nil
	case op == "=>" && rightOrphan:
		return OrphanA[string](left), nil
	case op == "=>":
		return ProjectAtoB(left, right), nil
	case leftOrphan:
		return OrphanB[string](right), nil
	default:
		return ProjectBtoA(left, right), nil
	}
}

// MustParseRules parses every rule and panics on the first syntax error.
func MustParseRules(texts ...string) []Rule[string, string] {
	rules := make([]Rule[string, string], 0, len(texts))

	for _, text := range texts {
		r, err := ParseRule(text)
		if err != nil {
			panic(err)
		}

		rules = append(rules, r)
	}

	return rules
}

func splitRule(text string) (op, left, right string, err error) {
	at := -1

	for _, candidate := range operators {
		idx := strings.Index(text, candidate)
		if idx < 0 {
			continue
		}

		if at >= 0 {
			return "", "", "", fmt.Errorf("%w: %q has more than one operator", ErrInvalidRuleSyntax, text)
		}

		at, op = idx, candidate
	}

	if at < 0 {
		return "", "", "", fmt.Errorf("%w: %q has no operator (==, => or <=)", ErrInvalidRuleSyntax, text)
	}

	left = strings.TrimSpace(text[:at])
	right = strings.TrimSpace(text[at+len(op):])

	if left == "" || right == "" || strings.ContainsAny(left+right, "<=>") {
		return "", "", "", fmt.Errorf("%w: %q", ErrInvalidRuleSyntax, text)
	}

	return op, left, right, nil
}
