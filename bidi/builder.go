package bidi

import (
	"cmp"
	"fmt"
	"maps"
	"slices"
)

// Untagged is the tag of converters built without an explicit tag.
type Untagged struct{}

// Build consumes rules in a single pass and returns a converter only when
// every member of da and db is covered exactly once on its side. Otherwise
// the error is a *BuildFailure listing every problem found.
//
// The tag T is an identity-only marker that lets several converters exist
// between the same two domains: Build[Legacy](da, db, rules).
func Build[T any, A, B cmp.Ordered](da Domain[A], db Domain[B], rules []Rule[A, B]) (*Converter[T, A, B], error) {
	if da.Len() == 0 || db.Len() == 0 {
		return nil, fmt.Errorf("%w: converter domains must be created with NewDomain", ErrEmptyDomain)
	}

	name := identity[T](da, db)

	cov := newCoverage(da, db)
	for _, r := range rules {
		cov.add(r)
	}

	if failure := cov.failure(name); failure != nil {
		return nil, failure
	}

	return &Converter[T, A, B]{
		name:         name,
		domainA:      da,
		domainB:      db,
		toB:          cov.toB,
		toA:          cov.toA,
		convertibleA: NewSet(slices.Collect(maps.Keys(cov.toB))...),
		convertibleB: NewSet(slices.Collect(maps.Keys(cov.toA))...),
		rules:        slices.Clone(rules),
	}, nil
}

// BuildUntagged is Build with the Untagged tag.
func BuildUntagged[A, B cmp.Ordered](da Domain[A], db Domain[B], rules []Rule[A, B]) (*Converter[Untagged, A, B], error) {
	return Build[Untagged](da, db, rules)
}

// MustBuild is like Build but panics on error. Declaring converters as
// package-level variables with MustBuild makes an incomplete mapping fail
// during package initialization, before main runs.
func MustBuild[T any, A, B cmp.Ordered](da Domain[A], db Domain[B], rules []Rule[A, B]) *Converter[T, A, B] {
	c, err := Build[T](da, db, rules)
	if err != nil {
		panic(err)
	}

	return c
}

func identity[T any, A, B cmp.Ordered](da Domain[A], db Domain[B]) string {
	name := da.Name() + "<->" + db.Name()
	if tag := typeName[T](); tag != typeName[Untagged]() {
		name += "[" + tag + "]"
	}

	return name
}
