package bidi_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"enum-bridge/bidi"
)

func TestNewDomain(t *testing.T) {
	d, err := bidi.NewDomain("", A3, A1, A2)
	require.NoError(t, err)

	assert.Equal(t, "bidi_test.A", d.Name())
	assert.Equal(t, []A{A1, A2, A3}, d.Members().Values())
	assert.True(t, d.Contains(A2))
	assert.False(t, d.Contains(A(7)))
	assert.Equal(t, 3, d.Len())
	assert.Equal(t, "bidi_test.A{1, 2, 3}", d.String())
}

func TestNewDomain_Errors(t *testing.T) {
	_, err := bidi.NewDomain[B]("B")
	assert.ErrorIs(t, err, bidi.ErrEmptyDomain)

	_, err = bidi.NewDomain("B", B1, B2, B1, B2, B1)
	require.ErrorIs(t, err, bidi.ErrDuplicateMember)
	assert.Contains(t, err.Error(), "[b1 b2]")

	assert.Panics(t, func() { bidi.MustDomain("B", B1, B1) })
}

func TestSet(t *testing.T) {
	s := bidi.NewSet(B3, B1, B1, B2)

	assert.Equal(t, 3, s.Len())
	assert.Equal(t, []B{B1, B2, B3}, s.Values())
	assert.True(t, s.Equal(bidi.NewSet(B1, B2, B3)))
	assert.False(t, s.Equal(bidi.NewSet(B1, B2)))
	assert.Equal(t, "{b1, b2, b3}", s.String())

	values := s.Values()
	values[0] = "mutated"
	assert.True(t, s.Contains(B1))

	var zero bidi.Set[B]
	assert.Zero(t, zero.Len())
	assert.False(t, zero.Contains(B1))
}
