package bidi

import (
	"cmp"
	"fmt"
)

// Half is a one-directional view of a Converter: In values are converted
// to Out values. ConvertibleValues reports the Out members that convert
// back, matching ConvertibleB for the forward view and ConvertibleA for
// the reverse one.
type Half[In, Out cmp.Ordered] struct {
	converter   string
	direction   DirectionEnum
	input       Domain[In]
	output      Domain[Out]
	table       map[In]Out
	convertible Set[Out]
}

func (h Half[In, Out]) ConvertOpt(in In) (Out, bool) {
	out, ok := h.table[in]
	return out, ok
}

func (h Half[In, Out]) ConvertOrFail(in In) (Out, error) {
	if h.table == nil {
		var zero Out
		return zero, ErrUnbuilt
	}

	out, ok := h.table[in]
	if !ok {
		return out, &InvalidValueError{
			Converter: h.converter,
			Direction: h.direction,
			Domain:    h.input.Name(),
			Value:     in,
		}
	}

	return out, nil
}

func (h Half[In, Out]) ConvertibleValues() Set[Out] {
	return h.convertible
}

func (h Half[In, Out]) Input() Domain[In] { return h.input }
func (h Half[In, Out]) Output() Domain[Out] { return h.output }
func (h Half[In, Out]) Direction() DirectionEnum { return h.direction }

func (h Half[In, Out]) String() string {
	return fmt.Sprintf("%s %s", h.converter, h.direction)
}
