package bidi

import (
	"errors"
	"fmt"
)

var (
	ErrEmptyDomain       = errors.New("domain has no members")
	ErrDuplicateMember   = errors.New("duplicate member")
	ErrIncompleteMapping = errors.New("mapping does not cover its domains exactly once")
	ErrInvalidValue      = errors.New("invalid enum value")
	ErrUnbuilt           = errors.New("converter was not built")
	ErrAlreadyRegistered = errors.New("converter already registered")
	ErrInvalidRuleSyntax = errors.New("invalid rule syntax")
)

type DirectionEnum int

const (
	DirectionForward DirectionEnum = iota // A -> B
	DirectionReverse                      // B -> A
)

func (d DirectionEnum) String() string {
	if d == DirectionReverse {
		return "B->A"
	}

	return "A->B"
}

// InvalidValueError is returned by the OrFail queries when a value has no
// counterpart in the other domain.
type InvalidValueError struct {
	// Converter is the identity of the converter that rejected the value.
	Converter string
	Direction DirectionEnum
	// Domain is the name of the domain the value was taken from.
	Domain string
	Value  any
}

func (e *InvalidValueError) Error() string {
	return fmt.Sprintf("%s: invalid %s value %v (%s has no counterpart)",
		e.Converter, e.Domain, e.Value, e.Direction)
}

func (e *InvalidValueError) Unwrap() error {
	return ErrInvalidValue
}
