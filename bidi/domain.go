package bidi

import (
	"cmp"
	"fmt"
	"reflect"
	"slices"
)

// Domain is the complete member enumeration of one side of a mapping.
type Domain[T cmp.Ordered] struct {
	name    string
	members Set[T]
}

// NewDomain checks that members is a non-empty, duplicate-free enumeration.
// An empty name defaults to the Go type name of T.
func NewDomain[T cmp.Ordered](name string, members ...T) (Domain[T], error) {
	if name == "" {
		name = typeName[T]()
	}

	if len(members) == 0 {
		return Domain[T]{}, fmt.Errorf("%w: %s", ErrEmptyDomain, name)
	}

	if dups := duplicates(members); len(dups) > 0 {
		return Domain[T]{}, fmt.Errorf("%w in domain %s: %v", ErrDuplicateMember, name, dups)
	}

	return Domain[T]{name: name, members: NewSet(members...)}, nil
}

// MustDomain is like NewDomain but panics on error. It is meant for
// package-level variable declarations.
func MustDomain[T cmp.Ordered](name string, members ...T) Domain[T] {
	d, err := NewDomain(name, members...)
	if err != nil {
		panic(err)
	}

	return d
}

func (d Domain[T]) Name() string {
	return d.name
}

func (d Domain[T]) Members() Set[T] {
	return d.members
}

func (d Domain[T]) Contains(value T) bool {
	return d.members.Contains(value)
}

func (d Domain[T]) Len() int {
	return d.members.Len()
}

func (d Domain[T]) String() string {
	return d.name + d.members.String()
}

func duplicates[T cmp.Ordered](values []T) []T {
	sorted := slices.Clone(values)
	slices.Sort(sorted)

	var dups []T

	for i := 1; i < len(sorted); i++ {
		if sorted[i] == sorted[i-1] && (len(dups) == 0 || dups[len(dups)-1] != sorted[i]) {
			dups = append(dups, sorted[i])
		}
	}

	return dups
}

func typeName[T any]() string {
	return reflect.TypeFor[T]().String()
}
