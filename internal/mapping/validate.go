package mapping

import (
	"errors"
	"fmt"
	"go/token"

	"enum-bridge/bidi"
	"enum-bridge/internal/analyze"
	"enum-bridge/internal/diagnostic"
	"enum-bridge/internal/match"
)

// inlineGoType is the Go type generated for inline domains.
const inlineGoType = "string"

// maxSuggestions bounds the "did you mean" list of a diagnostic.
const maxSuggestions = 3

// Side is a resolved domain of a converter.
type Side struct {
	Ref DomainRef
	// Enum is the Go enumeration, nil for inline domains.
	Enum *analyze.EnumInfo
	// Members are the distinct member names.
	Members []string
}

// GoType returns the Go type the side is generated with.
func (s Side) GoType() string {
	if s.Enum == nil {
		return inlineGoType
	}

	return s.Enum.ID.String()
}

// Compiled is a converter declaration that passed validation.
type Compiled struct {
	Def      *ConverterDef
	Internal Side
	External Side
	// Rules are the declared rules with aliases replaced by the members they repeat.
	Rules []bidi.Rule[string, string]
	// Converter is the converter built over the member names.
	Converter *bidi.Converter[bidi.Untagged, string, string]
}

// Validate checks a declaration file against the enumerations in graph.
// graph may be nil when every domain is inline.
func Validate(mf *MappingFile, graph *analyze.EnumGraph) *diagnostic.Diagnostics {
	_, res := Compile(mf, graph)
	return res
}

// Compile validates a declaration file and returns the converters that
// passed. Diagnostics list every problem of every converter.
func Compile(mf *MappingFile, graph *analyze.EnumGraph) ([]Compiled, *diagnostic.Diagnostics) {
	res := &diagnostic.Diagnostics{}
	if mf == nil {
		res.AddError(diagnostic.CodeMissingName, "mapping file is nil", "", "")
		return nil, res
	}

	var out []Compiled

	names := map[string]int{}
	keys := map[registryKey]string{}

	for i := range mf.Converters {
		def := &mf.Converters[i]
		label := converterLabel(def, i)
		errorsBefore := len(res.Errors)

		checkNames(res, def, label, i, names)

		internal, okA := resolveSide(res, def.Internal, "internal", label, graph)
		external, okB := resolveSide(res, def.External, "external", label, graph)

		if okA && okB {
			key := registryKey{internal.GoType(), external.GoType(), def.Tag}
			if prev, ok := keys[key]; ok {
				res.AddError(diagnostic.CodeRegistryConflict,
					fmt.Sprintf("converter between %s and %s with tag %q is already declared by %s",
						key.a, key.b, def.Tag, prev),
					label, "")
			} else {
				keys[key] = label
			}
		}

		rules := collectRules(res, def, label, internal, external)

		if !okA || !okB {
			continue
		}

		conv, ok := prove(res, label, internal, external, rules)
		if !ok || len(res.Errors) > errorsBefore {
			continue
		}

		out = append(out, Compiled{
			Def:       def,
			Internal:  internal,
			External:  external,
			Rules:     rules,
			Converter: conv,
		})
	}

	return out, res
}

type registryKey struct {
	a, b, tag string
}

func converterLabel(def *ConverterDef, i int) string {
	if def.Name != "" {
		return def.Name
	}

	return fmt.Sprintf("converters[%d]", i)
}

func checkNames(res *diagnostic.Diagnostics, def *ConverterDef, label string, i int, names map[string]int) {
	if def.Name == "" {
		res.AddError(diagnostic.CodeMissingName, "converter has no name", label, "")
	} else if !token.IsIdentifier(def.Name) {
		res.AddError(diagnostic.CodeInvalidName,
			fmt.Sprintf("converter name %q is not a Go identifier", def.Name), label, "")
	} else if first, ok := names[def.Name]; ok {
		res.AddError(diagnostic.CodeDuplicateConverter,
			fmt.Sprintf("converter %q is already declared at converters[%d]", def.Name, first), label, "")
	} else {
		names[def.Name] = i
	}

	if def.Tag != "" && !token.IsIdentifier(def.Tag) {
		res.AddError(diagnostic.CodeInvalidName,
			fmt.Sprintf("tag %q is not a Go identifier", def.Tag), label, "")
	}
}

func resolveSide(
	res *diagnostic.Diagnostics,
	ref DomainRef,
	side, label string,
	graph *analyze.EnumGraph,
) (Side, bool) {
	s := Side{Ref: ref}

	switch {
	case ref.Type != "" && len(ref.Members) > 0:
		res.AddError(diagnostic.CodeInvalidDomain,
			fmt.Sprintf("%s domain declares both a type and members", side), label, ref.Type)
		return s, false

	case ref.Type != "":
		s.Enum = graph.Resolve(ref.Type)
		if s.Enum == nil {
			res.AddError(diagnostic.CodeDomainNotFound,
				fmt.Sprintf("%s enumeration %q not found", side, ref.Type), label, ref.Type,
				match.Suggest(ref.Type, knownEnums(graph), maxSuggestions)...)
			return s, false
		}

		s.Members = s.Enum.MemberNames()

	case ref.Name == "":
		res.AddError(diagnostic.CodeInvalidDomain,
			fmt.Sprintf("%s domain needs a type or a name with members", side), label, "")
		return s, false

	default:
		s.Members = ref.Members
	}

	if _, err := bidi.NewDomain(ref.Label(), s.Members...); err != nil {
		res.AddError(diagnostic.CodeInvalidDomain, fmt.Sprintf("%s domain: %v", side, err), label, ref.Label())
		return s, false
	}

	return s, true
}

func knownEnums(graph *analyze.EnumGraph) []string {
	if graph == nil {
		return nil
	}

	ids := graph.SortedIDs()

	names := make([]string, len(ids))
	for i, id := range ids {
		names[i] = id.Short()
	}

	return names
}

// collectRules drops unparsable rules and canonicalises aliases.
func collectRules(
	res *diagnostic.Diagnostics,
	def *ConverterDef,
	label string,
	internal, external Side,
) []bidi.Rule[string, string] {
	if len(def.Rules) == 0 {
		res.AddWarning(diagnostic.CodeNoRules, "converter declares no rules", label, "")
	}

	rules := make([]bidi.Rule[string, string], 0, len(def.Rules))

	for _, rd := range def.Rules {
		if !rd.IsValid() {
			msg := rd.Invalid
			if rd.Line > 0 {
				msg = fmt.Sprintf("line %d: %s", rd.Line, msg)
			}

			res.AddError(diagnostic.CodeInvalidRule, msg, label, rd.Text)

			continue
		}

		r := rd.Rule
		if r.Kind != bidi.KindOrphanB {
			r.ValueA = canonical(res, label, internal, r.ValueA)
		}

		if r.Kind != bidi.KindOrphanA {
			r.ValueB = canonical(res, label, external, r.ValueB)
		}

		rules = append(rules, r)
	}

	return rules
}

func canonical(res *diagnostic.Diagnostics, label string, s Side, name string) string {
	if s.Enum == nil {
		return name
	}

	c := s.Enum.Canonical(name)
	if c != name {
		res.AddInfo(diagnostic.CodeAliasMember,
			fmt.Sprintf("%s repeats the value of %s and is treated as %s", name, c, c), label, name)
	}

	return c
}

// prove runs the coverage proof over the member names.
func prove(
	res *diagnostic.Diagnostics,
	label string,
	internal, external Side,
	rules []bidi.Rule[string, string],
) (*bidi.Converter[bidi.Untagged, string, string], bool) {
	da := bidi.MustDomain(internal.Ref.Label(), internal.Members...)
	db := bidi.MustDomain(external.Ref.Label(), external.Members...)

	conv, err := bidi.BuildUntagged(da, db, rules)
	if err == nil {
		return conv, true
	}

	var failure *bidi.BuildFailure[string, string]
	if !errors.As(err, &failure) {
		res.AddError(diagnostic.CodeInvalidDomain, err.Error(), label, "")
		return nil, false
	}

	report(res, label, "internal", internal, failure.MissingA, failure.DuplicateA, failure.UnknownA)
	report(res, label, "external", external, failure.MissingB, failure.DuplicateB, failure.UnknownB)

	return nil, false
}

func report(res *diagnostic.Diagnostics, label, side string, s Side, missing, duplicate, unknown []string) {
	for _, m := range missing {
		res.AddError(diagnostic.CodeMissingMember,
			fmt.Sprintf("%s member %s is not covered by any rule", side, m), label, m)
	}

	for _, m := range duplicate {
		res.AddError(diagnostic.CodeDuplicateMember,
			fmt.Sprintf("%s member %s is covered by more than one rule", side, m), label, m)
	}

	for _, m := range unknown {
		res.AddError(diagnostic.CodeUnknownMember,
			fmt.Sprintf("%s is not a member of %s domain %s", m, side, s.Ref.Label()), label, m,
			match.Suggest(m, s.Members, maxSuggestions)...)
	}
}
