package bidi_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"enum-bridge/bidi"
)

func TestParseRule(t *testing.T) {
	tests := []struct {
		text string
		want bidi.Rule[string, string]
	}{
		{"A1 == B1", bidi.Equiv("A1", "B1")},
		{"A1==B1", bidi.Equiv("A1", "B1")},
		{"A3 => B1", bidi.ProjectAtoB("A3", "B1")},
		{"A2 <= B4", bidi.ProjectBtoA("A2", "B4")},
		{"A5 => _", bidi.OrphanA[string]("A5")},
		{"  _ <= B6 ", bidi.OrphanB[string]("B6")},
	}

	for _, tt := range tests {
		t.Run(tt.text, func(t *testing.T) {
			got, err := bidi.ParseRule(tt.text)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseRule_Errors(t *testing.T) {
	tests := []string{
		"",
		"A1 B1",
		"A1 ==",
		"== B1",
		"_ == B1",
		"A1 == _",
		"_ => B1",
		"A1 <= _",
		"_ => _",
		"A1 ==> B1",
		"A1 == B1 == C1",
	}

	for _, text := range tests {
		t.Run(text, func(t *testing.T) {
			_, err := bidi.ParseRule(text)
			assert.ErrorIs(t, err, bidi.ErrInvalidRuleSyntax)
		})
	}
}

func TestRule_StringRoundTrip(t *testing.T) {
	rules := []bidi.Rule[string, string]{
		bidi.Equiv("A1", "B1"),
		bidi.ProjectAtoB("A3", "B1"),
		bidi.ProjectBtoA("A2", "B4"),
		bidi.OrphanA[string]("A5"),
		bidi.OrphanB[string]("B6"),
	}

	for _, r := range rules {
		parsed, err := bidi.ParseRule(r.String())
		require.NoError(t, err, r.String())
		assert.Equal(t, r, parsed)
	}
}

func TestMustParseRules(t *testing.T) {
	rules := bidi.MustParseRules("A1 == B1", "A2 => _")
	assert.Len(t, rules, 2)

	assert.Panics(t, func() { bidi.MustParseRules("A1 B1") })
}

func TestKindEnum(t *testing.T) {
	assert.Equal(t, "KindEquivalence", bidi.KindEquivalence.String())
	assert.Equal(t, "KindOrphanB", bidi.KindOrphanB.String())
	assert.Equal(t, "KindEnum(0)", bidi.KindEnum(0).String())
	assert.Equal(t, 6, bidi.KindTotal)

	assert.True(t, bidi.KindEquivalence.CoversA())
	assert.True(t, bidi.KindEquivalence.CoversB())
	assert.True(t, bidi.KindProjectionAtoB.CoversA())
	assert.False(t, bidi.KindProjectionAtoB.CoversB())
	assert.False(t, bidi.KindProjectionBtoA.CoversA())
	assert.True(t, bidi.KindOrphanA.CoversA())
	assert.False(t, bidi.KindOrphanA.CoversB())
	assert.True(t, bidi.KindOrphanB.IsOrphan())
	assert.False(t, bidi.KindEnum(0).IsValid())
	assert.True(t, bidi.KindOrphanB.IsValid())
	assert.False(t, bidi.KindEnum(bidi.KindTotal).IsValid())
	assert.False(t, bidi.KindProjectionAtoB.IsOrphan())
}
