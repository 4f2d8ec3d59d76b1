package bidi

import (
	"cmp"
	"fmt"
)

// Rule declares one correspondence between a value of domain A and a value
// of domain B. Orphan rules leave the opposite value at its zero value.
type Rule[A, B cmp.Ordered] struct {
	Kind   KindEnum
	ValueA A
	ValueB B
}

// Equiv maps a to b and b back to a.
func Equiv[A, B cmp.Ordered](a A, b B) Rule[A, B] {
	return Rule[A, B]{Kind: KindEquivalence, ValueA: a, ValueB: b}
}

// ProjectAtoB maps a to b only; b must get its reverse mapping elsewhere.
func ProjectAtoB[A, B cmp.Ordered](a A, b B) Rule[A, B] {
	return Rule[A, B]{Kind: KindProjectionAtoB, ValueA: a, ValueB: b}
}

// ProjectBtoA maps b to a only; a must get its forward mapping elsewhere.
func ProjectBtoA[A, B cmp.Ordered](a A, b B) Rule[A, B] {
	return Rule[A, B]{Kind: KindProjectionBtoA, ValueA: a, ValueB: b}
}

// OrphanA declares that a has no counterpart in B: OrphanA[B](a).
func OrphanA[B, A cmp.Ordered](a A) Rule[A, B] {
	return Rule[A, B]{Kind: KindOrphanA, ValueA: a}
}

// OrphanB declares that b has no counterpart in A: OrphanB[A](b).
func OrphanB[A, B cmp.Ordered](b B) Rule[A, B] {
	return Rule[A, B]{Kind: KindOrphanB, ValueB: b}
}

// String renders the rule in the textual syntax accepted by ParseRule.
func (r Rule[A, B]) String() string {
	switch r.Kind {
	case KindOrphanA:
		return fmt.Sprintf("%v => %s", r.ValueA, orphanMark)
	case KindOrphanB:
		return fmt.Sprintf("%s <= %v", orphanMark, r.ValueB)
	case KindEquivalence, KindProjectionAtoB, KindProjectionBtoA:
		return fmt.Sprintf("%v %s %v", r.ValueA, r.Kind.Operator(), r.ValueB)
	default:
		return r.Kind.String()
	}
}
