package plan

import (
	"fmt"

	"enum-bridge/bidi"
	"enum-bridge/internal/analyze"
	"enum-bridge/internal/diagnostic"
	"enum-bridge/internal/mapping"
	"enum-bridge/internal/match"
)

// Config holds configuration for proposals.
type Config struct {
	// Name of the proposed converter; derived from the type names when empty.
	Name string
	// MinConfidence is the minimum score for auto-accepting a match.
	MinConfidence float64
	// MinGap is the minimum gap between the top two candidates.
	MinGap float64
	// AmbiguityThreshold marks candidates this close to each other as ambiguous.
	AmbiguityThreshold float64
	// MaxCandidates is the maximum number of candidates to include in suggestions.
	MaxCandidates int
}

// DefaultConfig returns the default proposal configuration.
func DefaultConfig() Config {
	return Config{
		MinConfidence:      match.DefaultMinScore,
		MinGap:             match.DefaultMinGap,
		AmbiguityThreshold: match.DefaultAmbiguityThreshold,
		MaxCandidates:      3,
	}
}

// Pairing is an accepted equivalence.
type Pairing struct {
	Internal string
	External string
	Score    float64
}

// Unmatched is a member left as an orphan.
type Unmatched struct {
	Name       string
	Candidates match.CandidateList
	Reason     string
}

// Proposal is a draft converter between two enumerations.
type Proposal struct {
	// Converter is the draft declaration. Every member is covered exactly
	// once, so it always validates.
	Converter mapping.ConverterDef
	// Pairings are the members matched by name or value.
	Pairings []Pairing
	// UnmatchedInternal and UnmatchedExternal became orphans.
	UnmatchedInternal []Unmatched
	UnmatchedExternal []Unmatched
	// Diagnostics explain every decision.
	Diagnostics diagnostic.Diagnostics
}

// Suggest proposes a converter from internal to external.
func Suggest(internal, external *analyze.EnumInfo, config Config) *Proposal {
	name := config.Name
	if name == "" {
		name = internal.ID.Name + external.ID.Name
	}

	p := &Proposal{
		Converter: mapping.ConverterDef{
			Name:     name,
			Internal: mapping.DomainRef{Type: internal.ID.String()},
			External: mapping.DomainRef{Type: external.ID.String()},
		},
	}

	intTerms := terms(internal)
	extTerms := terms(external)

	paired := map[string]bool{}

	for _, a := range intTerms {
		cands := match.RankMembers(a, extTerms)

		best := cands.HighConfidence(config.MinConfidence, config.MinGap)
		if best != nil {
			back := match.RankMembers(best.Term, intTerms).HighConfidence(config.MinConfidence, config.MinGap)
			if back != nil && back.Name == a.Name {
				p.accept(name, a.Name, best)
				paired[a.Name], paired[best.Name] = true, true

				continue
			}
		}

		p.UnmatchedInternal = append(p.UnmatchedInternal, p.unmatched(name, "internal", a.Name, cands, config))
	}

	for _, b := range extTerms {
		if paired[b.Name] {
			continue
		}

		cands := match.RankMembers(b, intTerms)
		p.UnmatchedExternal = append(p.UnmatchedExternal, p.unmatched(name, "external", b.Name, cands, config))
	}

	p.Converter.Rules = p.rules()

	return p
}

func terms(e *analyze.EnumInfo) []match.Term {
	var out []match.Term

	for _, m := range e.Members {
		if m.IsAlias() {
			continue
		}

		out = append(out, match.NewTerm(m.Name, e.ID.Name, m.Value))
	}

	return out
}

func (p *Proposal) accept(converter, internal string, best *match.Candidate) {
	p.Pairings = append(p.Pairings, Pairing{
		Internal: internal,
		External: best.Name,
		Score:    best.Score,
	})

	p.Diagnostics.AddInfo(diagnostic.CodeAutoMatched,
		fmt.Sprintf("auto-matched: %s == %s (score: %.2f)", internal, best.Name, best.Score),
		converter, internal)
}

func (p *Proposal) unmatched(converter, side, name string, cands match.CandidateList, config Config) Unmatched {
	ambiguous := cands.IsAmbiguous(config.AmbiguityThreshold) && cands[0].Score >= config.MinConfidence

	code := diagnostic.CodeUnmatchedMember
	if ambiguous {
		code = diagnostic.CodeAmbiguousMatch
	}

	var reason string

	switch {
	case len(cands) == 0:
		reason = "the other domain has no members"
	case ambiguous:
		reason = fmt.Sprintf("ambiguous: top candidates %q (%.2f) and %q (%.2f) are too close",
			cands[0].Name, cands[0].Score, cands[1].Name, cands[1].Score)
	case cands[0].Score < config.MinConfidence:
		reason = fmt.Sprintf("best match %q (%.2f) below threshold %.2f",
			cands[0].Name, cands[0].Score, config.MinConfidence)
	default:
		reason = fmt.Sprintf("best match %q prefers another member", cands[0].Name)
	}

	top := cands.Top(config.MaxCandidates)

	names := make([]string, len(top))
	for i, c := range top {
		names[i] = c.Name
	}

	p.Diagnostics.AddWarning(code,
		fmt.Sprintf("%s member %s left as orphan: %s", side, name, reason),
		converter, name, names...)

	return Unmatched{Name: name, Candidates: top, Reason: reason}
}

// rules renders pairings as equivalences and leftovers as orphans.
func (p *Proposal) rules() []mapping.RuleDef {
	var rules []mapping.RuleDef

	for _, pair := range p.Pairings {
		rules = append(rules, mapping.RuleDef{Rule: bidi.Equiv(pair.Internal, pair.External)})
	}

	for _, u := range p.UnmatchedInternal {
		rules = append(rules, mapping.RuleDef{Rule: bidi.OrphanA[string](u.Name)})
	}

	for _, u := range p.UnmatchedExternal {
		rules = append(rules, mapping.RuleDef{Rule: bidi.OrphanB[string](u.Name)})
	}

	for i := range rules {
		rules[i].Text = rules[i].Rule.String()
	}

	return rules
}

// File wraps the proposal in a declaration file.
func (p *Proposal) File(pkg string) *mapping.MappingFile {
	return &mapping.MappingFile{
		Version:    "1",
		Package:    pkg,
		Converters: []mapping.ConverterDef{p.Converter},
	}
}
