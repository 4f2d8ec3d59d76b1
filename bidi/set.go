package bidi

import (
	"cmp"
	"fmt"
	"iter"
	"slices"
	"strings"
)

// Set is an immutable, sorted set of domain values.
type Set[T cmp.Ordered] struct {
	values []T
}

// NewSet builds a set from values; duplicates are collapsed.
func NewSet[T cmp.Ordered](values ...T) Set[T] {
	sorted := slices.Clone(values)
	slices.Sort(sorted)

	return Set[T]{values: slices.Compact(sorted)}
}

func (s Set[T]) Contains(value T) bool {
	_, found := slices.BinarySearch(s.values, value)
	return found
}

func (s Set[T]) Len() int {
	return len(s.values)
}

// Values returns the members in ascending order. The slice is a copy.
func (s Set[T]) Values() []T {
	return slices.Clone(s.values)
}

func (s Set[T]) All() iter.Seq[T] {
	return slices.Values(s.values)
}

func (s Set[T]) Equal(other Set[T]) bool {
	return slices.Equal(s.values, other.values)
}

func (s Set[T]) String() string {
	parts := make([]string, len(s.values))
	for i, v := range s.values {
		parts[i] = fmt.Sprint(v)
	}

	return "{" + strings.Join(parts, ", ") + "}"
}
