package mapping

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"enum-bridge/bidi"
)

const orderYAML = `
version: "1"
package: bridges
converters:
  - name: OrderStatus
    tag: Legacy
    internal:
      type: store.OrderStatus
    external:
      name: WarehouseStatus
      members: [open, reserved, lost]
    rules:
      - StatusPending == open
      - equiv: [StatusPaid, reserved]
      - i2e: [StatusRefunded, open]
      - e2i: [StatusCancelled, open]
      - orphan_int: StatusDraft
      - orphan_ext: lost
      - StatusShipped => _
`

func TestParse(t *testing.T) {
	mf, err := Parse([]byte(orderYAML))
	require.NoError(t, err)
	require.NotNil(t, mf)

	assert.Equal(t, "1", mf.Version)
	assert.Equal(t, "bridges", mf.Package)
	require.Len(t, mf.Converters, 1)

	c := mf.Converters[0]
	assert.Equal(t, "OrderStatus", c.Name)
	assert.Equal(t, "Legacy", c.Tag)
	assert.Equal(t, "store.OrderStatus", c.Internal.Type)
	assert.False(t, c.Internal.IsInline())
	assert.True(t, c.External.IsInline())
	assert.Equal(t, "WarehouseStatus", c.External.Label())
	assert.Equal(t, []string{"open", "reserved", "lost"}, c.External.Members)

	want := []bidi.Rule[string, string]{
		bidi.Equiv("StatusPending", "open"),
		bidi.Equiv("StatusPaid", "reserved"),
		bidi.ProjectAtoB("StatusRefunded", "open"),
		bidi.ProjectBtoA("StatusCancelled", "open"),
		bidi.OrphanA[string]("StatusDraft"),
		bidi.OrphanB[string]("lost"),
		bidi.OrphanA[string]("StatusShipped"),
	}

	require.Len(t, c.Rules, len(want))

	for i, rd := range c.Rules {
		assert.True(t, rd.IsValid(), rd.Invalid)
		assert.Equal(t, want[i], rd.Rule)
		assert.Positive(t, rd.Line)
	}

	assert.Equal(t, "StatusPending == open", c.Rules[0].Text)
}

func TestParseMinimal(t *testing.T) {
	mf, err := Parse([]byte(`
converters:
  - name: "  Status  "
    internal: {name: A, members: [a1]}
    external: {name: B, members: [b1]}
    rules: [a1 == b1]
`))
	require.NoError(t, err)

	assert.Equal(t, "1", mf.Version) // Default version
	assert.Equal(t, "Status", mf.Converters[0].Name)
}

func TestParseInvalidRules(t *testing.T) {
	mf, err := Parse([]byte(`
converters:
  - name: Status
    rules:
      - StatusPending
      - {equiv: [a]}
      - {unknown_key: a}
      - {equiv: [a, b], i2e: [c, d]}
      - _ == b
      - a == b
`))
	require.NoError(t, err)

	rules := mf.Converters[0].Rules
	require.Len(t, rules, 6)

	assert.Contains(t, rules[0].Invalid, "no operator")
	assert.Contains(t, rules[1].Invalid, "equiv takes 2 member(s), got 1")
	assert.Contains(t, rules[2].Invalid, `unknown rule key "unknown_key"`)
	assert.Contains(t, rules[3].Invalid, "exactly one key")
	assert.Contains(t, rules[4].Invalid, "needs two values")
	assert.True(t, rules[5].IsValid())

	// Invalid rules render as written.
	assert.Equal(t, "StatusPending", rules[0].String())
}

func TestParseMalformed(t *testing.T) {
	_, err := Parse([]byte(`
converters:
  - name: Status
    rules:
      - [a, b]
`))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "expected a rule string or mapping")

	_, err = Parse([]byte("converters: [unclosed"))
	require.Error(t, err)
}

func TestParseJSON(t *testing.T) {
	mf, err := ParseJSON([]byte(`{
  "converters": [{
    "name": "Status",
    "internal": {"name": "A", "members": ["a1", "a2"]},
    "external": {"name": "B", "members": ["b1", "b9"]},
    "rules": ["a1 == b1", {"i2e": ["a2", "b1"]}, {"orphan_ext": "b9"}, {"e2i": "b1"}]
  }]
}`))
	require.NoError(t, err)

	assert.Equal(t, "1", mf.Version)
	require.Len(t, mf.Converters, 1)

	rules := mf.Converters[0].Rules
	require.Len(t, rules, 4)
	assert.Equal(t, bidi.Equiv("a1", "b1"), rules[0].Rule)
	assert.Equal(t, bidi.ProjectAtoB("a2", "b1"), rules[1].Rule)
	assert.Equal(t, bidi.OrphanB[string]("b9"), rules[2].Rule)
	assert.False(t, rules[3].IsValid())
}

func TestParseJSONInvalidRules(t *testing.T) {
	mf, err := ParseJSON([]byte(`{
  "converters": [{
    "name": "Status",
    "rules": [{"bogus": "a"}, {"bogus": ["a", "b"]}, {"orphan_int": ["a", "b"]}]
  }]
}`))
	require.NoError(t, err)

	rules := mf.Converters[0].Rules
	require.Len(t, rules, 3)
	assert.Contains(t, rules[0].Invalid, `unknown rule key "bogus"`)
	assert.Contains(t, rules[1].Invalid, `unknown rule key "bogus"`)
	assert.Contains(t, rules[2].Invalid, "orphan_int takes 1 member(s), got 2")
}

func TestParseJSONMalformed(t *testing.T) {
	_, err := ParseJSON([]byte(`{"converters": [{"rules": [42]}]}`))
	require.Error(t, err)
}

func TestMarshalRoundTrip(t *testing.T) {
	mf, err := Parse([]byte(orderYAML))
	require.NoError(t, err)

	data, err := Marshal(mf)
	require.NoError(t, err)
	assert.Contains(t, string(data), "StatusRefunded => open")
	assert.Contains(t, string(data), "_ <= lost")

	again, err := Parse(data)
	require.NoError(t, err)
	require.Len(t, again.Converters, 1)
	assert.Equal(t, rulesOf(mf), rulesOf(again))
}

func TestWriteAndLoadFile(t *testing.T) {
	mf, err := Parse([]byte(orderYAML))
	require.NoError(t, err)

	for _, name := range []string{"bridge.yaml", "bridge.json"} {
		t.Run(name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), name)
			require.NoError(t, WriteFile(mf, path))

			loaded, err := LoadFile(path)
			require.NoError(t, err)
			assert.Equal(t, mf.Package, loaded.Package)
			assert.Equal(t, rulesOf(mf), rulesOf(loaded))
		})
	}
}

func TestLoadFileErrors(t *testing.T) {
	_, err := LoadFile(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read mapping file")

	path := filepath.Join(t.TempDir(), "broken.json")
	require.NoError(t, os.WriteFile(path, []byte("{"), 0o600))

	_, err = LoadFile(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "broken.json")
}

func TestParseTrimsInlineMembers(t *testing.T) {
	mf, err := Parse([]byte(`
converters:
  - name: Method
    internal:
      name: payment
      members: [" card", "wire "]
    external:
      name: ledger
      members: ["card ", " wire"]
    rules:
      - card == card
      - wire == wire
`))
	require.NoError(t, err)

	c := mf.Converters[0]
	assert.Equal(t, []string{"card", "wire"}, c.Internal.Members)
	assert.Equal(t, []string{"card", "wire"}, c.External.Members)

	res := Validate(mf, nil)
	assert.True(t, res.IsValid(), res.Error())

	mf, err = ParseJSON([]byte(`{"converters": [{"name": "Method",
  "internal": {"name": "payment", "members": [" card"]},
  "external": {"name": "ledger", "members": ["card "]},
  "rules": ["card == card"]}]}`))
	require.NoError(t, err)
	assert.Equal(t, []string{"card"}, mf.Converters[0].Internal.Members)
	assert.Equal(t, []string{"card"}, mf.Converters[0].External.Members)
}

func TestNormalize(t *testing.T) {
	mf := &MappingFile{Converters: []ConverterDef{{
		Name:     "Status",
		Internal: DomainRef{Name: "A", Members: []string{" a2", "a1 "}},
		Rules: []RuleDef{
			NewRuleDef("_ <= b3"),
			NewRuleDef("bogus"),
			NewRuleDef("a2 == b2"),
			NewRuleDef("a1 => _"),
			NewRuleDef("a1 == b1"),
		},
	}}}

	Normalize(mf)

	assert.Equal(t, "1", mf.Version)
	assert.Equal(t, []string{"a2", "a1"}, mf.Converters[0].Internal.Members)

	var got []string
	for _, r := range mf.Converters[0].Rules {
		got = append(got, r.String())
	}

	assert.Equal(t, []string{"a1 == b1", "a2 == b2", "a1 => _", "_ <= b3", "bogus"}, got)
}

func rulesOf(mf *MappingFile) []bidi.Rule[string, string] {
	var rules []bidi.Rule[string, string]
	for _, c := range mf.Converters {
		for _, r := range c.Rules {
			rules = append(rules, r.Rule)
		}
	}

	return rules
}
