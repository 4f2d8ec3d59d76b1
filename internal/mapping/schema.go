package mapping

import (
	"fmt"
	"strings"

	"github.com/goccy/go-json"
	"gopkg.in/yaml.v3"

	"enum-bridge/bidi"
)

// MappingFile is the root of a declaration file.
type MappingFile struct {
	// Version is the schema version. Defaults to "1".
	Version string `json:"version" yaml:"version"`
	// Package is the name of the generated package.
	Package string `json:"package,omitempty" yaml:"package,omitempty"`
	// Converters are the declared converters.
	Converters []ConverterDef `json:"converters" yaml:"converters"`
}

// ConverterDef declares one converter between an internal (A) and an
// external (B) enumeration.
type ConverterDef struct {
	Name string `json:"name" yaml:"name"`
	// Tag distinguishes several converters over the same pair of domains.
	Tag      string    `json:"tag,omitempty" yaml:"tag,omitempty"`
	Internal DomainRef `json:"internal" yaml:"internal"`
	External DomainRef `json:"external" yaml:"external"`
	Rules    []RuleDef `json:"rules" yaml:"rules"`
}

// DomainRef names a domain either by Go type or by an inline member list.
type DomainRef struct {
	// Type is a Go type such as "store.OrderStatus" or "enum-bridge/store.OrderStatus".
	Type string `json:"type,omitempty" yaml:"type,omitempty"`
	// Name labels an inline domain.
	Name string `json:"name,omitempty" yaml:"name,omitempty"`
	// Members is the inline enumeration.
	Members []string `json:"members,omitempty" yaml:"members,omitempty,flow"`
}

// IsInline returns true if the domain is declared by its members.
func (d DomainRef) IsInline() bool {
	return d.Type == ""
}

// Label returns the name used for the domain in messages.
func (d DomainRef) Label() string {
	if d.Type != "" {
		return d.Type
	}

	return d.Name
}

// Rule keys of the single-key form.
const (
	keyEquiv     = "equiv"
	keyIntToExt  = "i2e"
	keyExtToInt  = "e2i"
	keyOrphanInt = "orphan_int"
	keyOrphanExt = "orphan_ext"
)

// RuleDef is one rule of a converter over member names, internal on the A
// side and external on the B side.
//
// A rule that fails to parse does not fail the whole file: Invalid carries
// the reason and validation reports it alongside every other problem.
type RuleDef struct {
	Rule bidi.Rule[string, string]
	// Text is the rule as written.
	Text string
	// Line is the line of the rule in a YAML file, 0 when unknown.
	Line int
	// Invalid is the parse error, empty for a valid rule.
	Invalid string
}

// NewRuleDef parses a rule written in the textual syntax.
func NewRuleDef(text string) RuleDef {
	text = strings.TrimSpace(text)

	rule, err := bidi.ParseRule(text)
	if err != nil {
		return RuleDef{Text: text, Invalid: err.Error()}
	}

	return RuleDef{Rule: rule, Text: text}
}

// IsValid returns true if the rule parsed.
func (r RuleDef) IsValid() bool {
	return r.Invalid == ""
}

// String renders the rule in the textual syntax, or as written if invalid.
func (r RuleDef) String() string {
	if !r.IsValid() {
		return r.Text
	}

	return r.Rule.String()
}

// keyArity is the number of members each rule key takes.
var keyArity = map[string]int{
	keyEquiv:     2,
	keyIntToExt:  2,
	keyExtToInt:  2,
	keyOrphanInt: 1,
	keyOrphanExt: 1,
}

// keyedRule builds a rule from the single-key form.
func keyedRule(key string, operands []string) RuleDef {
	text := fmt.Sprintf("%s: %v", key, operands)

	want, ok := keyArity[key]
	if !ok {
		return RuleDef{Text: text, Invalid: fmt.Sprintf("unknown rule key %q", key)}
	}

	if len(operands) != want {
		return RuleDef{Text: text, Invalid: fmt.Sprintf("%s takes %d member(s), got %d", key, want, len(operands))}
	}

	for _, op := range operands {
		if strings.TrimSpace(op) == "" {
			return RuleDef{Text: text, Invalid: key + " has an empty member"}
		}
	}

	var rule bidi.Rule[string, string]

	switch key {
	case keyEquiv:
		rule = bidi.Equiv(operands[0], operands[1])
	case keyIntToExt:
		rule = bidi.ProjectAtoB(operands[0], operands[1])
	case keyExtToInt:
		rule = bidi.ProjectBtoA(operands[0], operands[1])
	case keyOrphanInt:
		rule = bidi.OrphanA[string](operands[0])
	case keyOrphanExt:
		rule = bidi.OrphanB[string](operands[0])
	}

	return RuleDef{Rule: rule, Text: text}
}

// UnmarshalYAML accepts the textual form ("A == B") or the single-key form.
func (r *RuleDef) UnmarshalYAML(node *yaml.Node) error {
	switch node.Kind {
	case yaml.ScalarNode:
		*r = NewRuleDef(node.Value)

	case yaml.MappingNode:
		if len(node.Content) != 2 {
			*r = RuleDef{Text: "{...}", Invalid: "a rule mapping must have exactly one key"}
			break
		}

		key, value := node.Content[0].Value, node.Content[1]

		var operands []string

		switch value.Kind {
		case yaml.ScalarNode:
			operands = []string{value.Value}
		case yaml.SequenceNode:
			if err := value.Decode(&operands); err != nil {
				return fmt.Errorf("line %d: rule %s: %w", value.Line, key, err)
			}
		default:
			return fmt.Errorf("line %d: rule %s: expected a member or a list of members", value.Line, key)
		}

		*r = keyedRule(key, operands)

	default:
		return fmt.Errorf("line %d: expected a rule string or mapping", node.Line)
	}

	r.Line = node.Line

	return nil
}

// MarshalYAML writes the textual form.
func (r RuleDef) MarshalYAML() (any, error) {
	return r.String(), nil
}

// UnmarshalJSON accepts the textual form or the single-key form.
func (r *RuleDef) UnmarshalJSON(data []byte) error {
	var text string
	if err := json.Unmarshal(data, &text); err == nil {
		*r = NewRuleDef(text)
		return nil
	}

	var keyed map[string]json.RawMessage
	if err := json.Unmarshal(data, &keyed); err != nil {
		return fmt.Errorf("expected a rule string or object: %w", err)
	}

	if len(keyed) != 1 {
		*r = RuleDef{Text: string(data), Invalid: "a rule object must have exactly one key"}
		return nil
	}

	for key, raw := range keyed {
		var operands []string
		if err := json.Unmarshal(raw, &operands); err != nil {
			var single string
			if err := json.Unmarshal(raw, &single); err != nil {
				return fmt.Errorf("rule %s: expected a member or a list of members", key)
			}

			operands = []string{single}
		}

		*r = keyedRule(key, operands)
	}

	return nil
}

// MarshalJSON writes the textual form.
func (r RuleDef) MarshalJSON() ([]byte, error) {
	return json.Marshal(r.String())
}
