package bidi

import (
	"cmp"
	"slices"
)

// Converter is the validated, immutable bidirectional conversion table
// between domains A and B. It can only be obtained from the Build family,
// and is safe for concurrent use.
type Converter[T any, A, B cmp.Ordered] struct {
	name    string
	domainA Domain[A]
	domainB Domain[B]

	toB map[A]B
	toA map[B]A

	convertibleA Set[A]
	convertibleB Set[B]

	rules []Rule[A, B]
}

// Name identifies the converter by its domains and tag, e.g. "A<->B[pkg.Legacy]".
func (c *Converter[T, A, B]) Name() string {
	if c == nil {
		return "<nil>"
	}

	return c.name
}

func (c *Converter[T, A, B]) DomainA() Domain[A] { return c.domainA }
func (c *Converter[T, A, B]) DomainB() Domain[B] { return c.domainB }

// ToBOpt returns the B counterpart of a. The boolean is false when a is an
// orphan, or not a member of domain A at all.
func (c *Converter[T, A, B]) ToBOpt(a A) (B, bool) {
	return c.Forward().ConvertOpt(a)
}

// ToAOpt returns the A counterpart of b. The boolean is false when b is an
// orphan, or not a member of domain B at all.
func (c *Converter[T, A, B]) ToAOpt(b B) (A, bool) {
	return c.Reverse().ConvertOpt(b)
}

// ToBOrFail returns the B counterpart of a or an *InvalidValueError.
func (c *Converter[T, A, B]) ToBOrFail(a A) (B, error) {
	return c.Forward().ConvertOrFail(a)
}

// ToAOrFail returns the A counterpart of b or an *InvalidValueError.
func (c *Converter[T, A, B]) ToAOrFail(b B) (A, error) {
	return c.Reverse().ConvertOrFail(b)
}

// ConvertibleA returns the members of A that have a counterpart in B.
func (c *Converter[T, A, B]) ConvertibleA() Set[A] {
	if c == nil {
		return Set[A]{}
	}

	return c.convertibleA
}

// ConvertibleB returns the members of B that have a counterpart in A.
func (c *Converter[T, A, B]) ConvertibleB() Set[B] {
	if c == nil {
		return Set[B]{}
	}

	return c.convertibleB
}

// Rules returns a copy of the rule list the converter was built from.
func (c *Converter[T, A, B]) Rules() []Rule[A, B] {
	if c == nil {
		return nil
	}

	return slices.Clone(c.rules)
}

// Forward returns the A->B view of the converter.
func (c *Converter[T, A, B]) Forward() Half[A, B] {
	if c == nil {
		return Half[A, B]{}
	}

	return Half[A, B]{
		converter:   c.name,
		direction:   DirectionForward,
		input:       c.domainA,
		output:      c.domainB,
		table:       c.toB,
		convertible: c.convertibleB,
	}
}

// Reverse returns the B->A view of the converter.
func (c *Converter[T, A, B]) Reverse() Half[B, A] {
	if c == nil {
		return Half[B, A]{}
	}

	return Half[B, A]{
		converter:   c.name,
		direction:   DirectionReverse,
		input:       c.domainB,
		output:      c.domainA,
		table:       c.toA,
		convertible: c.convertibleA,
	}
}
