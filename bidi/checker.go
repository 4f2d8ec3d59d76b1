package bidi

import (
	"cmp"
	"maps"
	"slices"
)

// coverage accumulates the two lookup tables and the per-side "seen" sets
// while the rules are consumed, recording every violation on the way.
type coverage[A, B cmp.Ordered] struct {
	domainA Domain[A]
	domainB Domain[B]

	toB map[A]B
	toA map[B]A

	seenA map[A]struct{}
	seenB map[B]struct{}

	duplicateA map[A]struct{}
	duplicateB map[B]struct{}
	unknownA   map[A]struct{}
	unknownB   map[B]struct{}
	invalid    []Rule[A, B]
}

func newCoverage[A, B cmp.Ordered](da Domain[A], db Domain[B]) *coverage[A, B] {
	return &coverage[A, B]{
		domainA:    da,
		domainB:    db,
		toB:        make(map[A]B, da.Len()),
		toA:        make(map[B]A, db.Len()),
		seenA:      make(map[A]struct{}, da.Len()),
		seenB:      make(map[B]struct{}, db.Len()),
		duplicateA: make(map[A]struct{}),
		duplicateB: make(map[B]struct{}),
		unknownA:   make(map[A]struct{}),
		unknownB:   make(map[B]struct{}),
	}
}

func (c *coverage[A, B]) add(r Rule[A, B]) {
	if !r.Kind.IsValid() {
		c.invalid = append(c.invalid, r)
		return
	}

	if r.Kind.CoversA() {
		c.coverA(r)
	}

	if r.Kind.CoversB() {
		c.coverB(r)
	}
}

func (c *coverage[A, B]) coverA(r Rule[A, B]) {
	a := r.ValueA
	if !c.domainA.Contains(a) {
		c.unknownA[a] = struct{}{}
		return
	}

	if _, seen := c.seenA[a]; seen {
		c.duplicateA[a] = struct{}{}
		return
	}

	c.seenA[a] = struct{}{}

	if r.Kind.IsOrphan() {
		return
	}

	if !c.domainB.Contains(r.ValueB) {
		c.unknownB[r.ValueB] = struct{}{}
		return
	}

	c.toB[a] = r.ValueB
}

func (c *coverage[A, B]) coverB(r Rule[A, B]) {
	b := r.ValueB
	if !c.domainB.Contains(b) {
		c.unknownB[b] = struct{}{}
		return
	}

	if _, seen := c.seenB[b]; seen {
		c.duplicateB[b] = struct{}{}
		return
	}

	c.seenB[b] = struct{}{}

	if r.Kind.IsOrphan() {
		return
	}

	if !c.domainA.Contains(r.ValueA) {
		c.unknownA[r.ValueA] = struct{}{}
		return
	}

	c.toA[b] = r.ValueA
}

// failure diffs the domains against the seen sets. It returns nil when
// both domains are covered exactly once.
func (c *coverage[A, B]) failure(name string) *BuildFailure[A, B] {
	f := &BuildFailure[A, B]{
		Converter:    name,
		DomainA:      c.domainA.Name(),
		DomainB:      c.domainB.Name(),
		MissingA:     missing(c.domainA, c.seenA),
		DuplicateA:   sortedKeys(c.duplicateA),
		UnknownA:     sortedKeys(c.unknownA),
		MissingB:     missing(c.domainB, c.seenB),
		DuplicateB:   sortedKeys(c.duplicateB),
		UnknownB:     sortedKeys(c.unknownB),
		InvalidRules: c.invalid,
	}

	if f.empty() {
		return nil
	}

	return f
}

func missing[T cmp.Ordered](d Domain[T], seen map[T]struct{}) []T {
	var out []T

	for member := range d.Members().All() {
		if _, ok := seen[member]; !ok {
			out = append(out, member)
		}
	}

	return out
}

func sortedKeys[T cmp.Ordered](m map[T]struct{}) []T {
	if len(m) == 0 {
		return nil
	}

	return slices.Sorted(maps.Keys(m))
}
