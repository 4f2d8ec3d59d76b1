package bidi

import "cmp"

// Sides is the converter tag of a Tagged converter whose domain A is owned
// by tag TA and domain B by tag TB.
type Sides[TA, TB any] struct{}

// Tagged is a converter whose two sides are named by marker types. The
// direction of a query is chosen by passing a marker value, so callers name
// a side instead of remembering which one is A:
//
//	c.TowardB(TB{}).ConvertOpt(a) // A -> B
//	c.TowardA(TA{}).ConvertOpt(b) // B -> A
//
// Passing a marker of any other type does not compile.
type Tagged[TA, TB any, A, B cmp.Ordered] struct {
	conv *Converter[Sides[TA, TB], A, B]
}

// Typed is a Tagged converter whose markers are the domain types
// themselves: c.TowardB(B(0)) converts toward B.
type Typed[A, B cmp.Ordered] = Tagged[A, B, A, B]

func BuildTagged[TA, TB any, A, B cmp.Ordered](da Domain[A], db Domain[B], rules []Rule[A, B]) (*Tagged[TA, TB, A, B], error) {
	conv, err := Build[Sides[TA, TB]](da, db, rules)
	if err != nil {
		return nil, err
	}

	return &Tagged[TA, TB, A, B]{conv: conv}, nil
}

func MustBuildTagged[TA, TB any, A, B cmp.Ordered](da Domain[A], db Domain[B], rules []Rule[A, B]) *Tagged[TA, TB, A, B] {
	t, err := BuildTagged[TA, TB](da, db, rules)
	if err != nil {
		panic(err)
	}

	return t
}

func BuildTyped[A, B cmp.Ordered](da Domain[A], db Domain[B], rules []Rule[A, B]) (*Typed[A, B], error) {
	return BuildTagged[A, B](da, db, rules)
}

func MustBuildTyped[A, B cmp.Ordered](da Domain[A], db Domain[B], rules []Rule[A, B]) *Typed[A, B] {
	return MustBuildTagged[A, B](da, db, rules)
}

// Converter returns the underlying converter.
func (t *Tagged[TA, TB, A, B]) Converter() *Converter[Sides[TA, TB], A, B] {
	return t.conv
}

// TowardA returns the view producing values of the side tagged TA.
func (t *Tagged[TA, TB, A, B]) TowardA(TA) Half[B, A] {
	return t.conv.Reverse()
}

// TowardB returns the view producing values of the side tagged TB.
func (t *Tagged[TA, TB, A, B]) TowardB(TB) Half[A, B] {
	return t.conv.Forward()
}

// AwayFromA returns the view consuming values of the side tagged TA.
func (t *Tagged[TA, TB, A, B]) AwayFromA(TA) Half[A, B] {
	return t.conv.Forward()
}

// AwayFromB returns the view consuming values of the side tagged TB.
func (t *Tagged[TA, TB, A, B]) AwayFromB(TB) Half[B, A] {
	return t.conv.Reverse()
}
