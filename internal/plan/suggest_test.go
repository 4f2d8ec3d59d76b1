package plan

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"enum-bridge/internal/analyze"
	"enum-bridge/internal/diagnostic"
	"enum-bridge/internal/mapping"
)

func enum(pkg, name string, members ...analyze.Member) *analyze.EnumInfo {
	return &analyze.EnumInfo{
		ID:      analyze.TypeID{PkgPath: pkg, Name: name},
		Basic:   "string",
		Members: members,
	}
}

func graphOf(enums ...*analyze.EnumInfo) *analyze.EnumGraph {
	g := analyze.NewEnumGraph()
	for _, e := range enums {
		g.Enums[e.ID] = e
	}

	return g
}

func ruleTexts(def mapping.ConverterDef) []string {
	out := make([]string, len(def.Rules))
	for i, r := range def.Rules {
		out[i] = r.String()
	}

	return out
}

var (
	color = enum("example.com/paint", "Color",
		analyze.Member{Name: "ColorRed", Value: `"RED"`},
		analyze.Member{Name: "ColorGreen", Value: `"GREEN"`},
		analyze.Member{Name: "ColorBlue", Value: `"BLUE"`},
		analyze.Member{Name: "ColorPurple", Value: `"PURPLE"`},
		analyze.Member{Name: "ColorDefault", Value: `"RED"`, AliasOf: "ColorRed"},
	)
	light = enum("example.com/traffic", "Light",
		analyze.Member{Name: "LightRed", Value: `"r"`},
		analyze.Member{Name: "LightGreen", Value: `"g"`},
		analyze.Member{Name: "LightBlue", Value: `"b"`},
		analyze.Member{Name: "LightAmber", Value: `"a"`},
	)
)

func TestSuggest(t *testing.T) {
	p := Suggest(color, light, DefaultConfig())
	require.NotNil(t, p)

	assert.Equal(t, "ColorLight", p.Converter.Name)
	assert.Equal(t, "example.com/paint.Color", p.Converter.Internal.Type)
	assert.Equal(t, "example.com/traffic.Light", p.Converter.External.Type)

	assert.Equal(t, []string{
		"ColorRed == LightRed",
		"ColorGreen == LightGreen",
		"ColorBlue == LightBlue",
		"ColorPurple => _",
		"_ <= LightAmber",
	}, ruleTexts(p.Converter))

	require.Len(t, p.Pairings, 3)
	assert.InDelta(t, 1.0, p.Pairings[0].Score, 1e-9)

	require.Len(t, p.UnmatchedInternal, 1)
	assert.Equal(t, "ColorPurple", p.UnmatchedInternal[0].Name)
	assert.Contains(t, p.UnmatchedInternal[0].Reason, "below threshold")

	require.Len(t, p.UnmatchedExternal, 1)
	assert.Equal(t, "LightAmber", p.UnmatchedExternal[0].Name)

	assert.Len(t, p.Diagnostics.ByCode(diagnostic.CodeAutoMatched), 3)
	assert.Len(t, p.Diagnostics.ByCode(diagnostic.CodeUnmatchedMember), 2)
}

func TestSuggest_DraftAlwaysValidates(t *testing.T) {
	p := Suggest(color, light, DefaultConfig())

	res := mapping.Validate(p.File("bridges"), graphOf(color, light))
	assert.True(t, res.IsValid(), res.Error())
}

func TestSuggest_Ambiguous(t *testing.T) {
	status := enum("example.com/a", "Status",
		analyze.Member{Name: "StatusOpened", Value: "1"},
	)
	state := enum("example.com/b", "State",
		analyze.Member{Name: "StateOpenedA", Value: "1"},
		analyze.Member{Name: "StateOpenedB", Value: "2"},
	)

	p := Suggest(status, state, DefaultConfig())

	assert.Empty(t, p.Pairings)
	assert.Equal(t, []string{"StatusOpened => _", "_ <= StateOpenedA", "_ <= StateOpenedB"}, ruleTexts(p.Converter))

	ambiguous := p.Diagnostics.ByCode(diagnostic.CodeAmbiguousMatch)
	require.NotEmpty(t, ambiguous)
	assert.Equal(t, "StatusOpened", ambiguous[0].Member)
	assert.Equal(t, []string{"StateOpenedA", "StateOpenedB"}, ambiguous[0].Suggestions)
	assert.Contains(t, p.UnmatchedInternal[0].Reason, "ambiguous")
}

func TestSuggest_MatchByValue(t *testing.T) {
	internal := enum("example.com/a", "Phase",
		analyze.Member{Name: "PhaseShipped", Value: `"IN_TRANSIT"`},
	)
	external := enum("example.com/b", "Leg",
		analyze.Member{Name: "LegMoving", Value: `"in-transit"`},
	)

	p := Suggest(internal, external, DefaultConfig())

	require.Len(t, p.Pairings, 1)
	assert.Equal(t, Pairing{Internal: "PhaseShipped", External: "LegMoving", Score: 1.0}, p.Pairings[0])
}

func TestSuggest_ConfiguredName(t *testing.T) {
	config := DefaultConfig()
	config.Name = "Paint"

	p := Suggest(color, light, config)
	assert.Equal(t, "Paint", p.Converter.Name)

	f := p.File("bridges")
	assert.Equal(t, "bridges", f.Package)
	assert.Equal(t, "1", f.Version)
	require.Len(t, f.Converters, 1)
}
