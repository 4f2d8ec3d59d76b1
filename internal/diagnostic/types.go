package diagnostic

import (
	"errors"
	"fmt"
	"io"
	"slices"
	"strings"

	"github.com/goccy/go-json"

	"enum-bridge/internal/common"
)

// Diagnostic codes.
const (
	CodeMissingMember      = "missing_member"
	CodeDuplicateMember    = "duplicate_member"
	CodeUnknownMember      = "unknown_member"
	CodeInvalidRule        = "invalid_rule"
	CodeDuplicateConverter = "duplicate_converter"
	CodeRegistryConflict   = "registry_conflict"
	CodeDomainNotFound     = "domain_not_found"
	CodeInvalidDomain      = "invalid_domain"
	CodeMissingName        = "missing_name"
	CodeInvalidName        = "invalid_name"
	CodeNoRules            = "no_rules"
	CodeAmbiguousMatch     = "ambiguous_match"
	CodeUnmatchedMember    = "unmatched_member"
	CodeAutoMatched        = "auto_matched"
	CodeAliasMember        = "alias_member"
)

// Diagnostics holds all diagnostic information from a check.
type Diagnostics struct {
	Errors   []Diagnostic `json:"errors,omitempty"`
	Warnings []Diagnostic `json:"warnings,omitempty"`
	Infos    []Diagnostic `json:"infos,omitempty"`
}

// Diagnostic represents a single diagnostic message.
type Diagnostic struct {
	// Severity of the diagnostic.
	Severity DiagnosticSeverity `json:"severity"`
	// Code is a unique identifier for this type of diagnostic.
	Code string `json:"code"`
	// Message is the human-readable description.
	Message string `json:"message"`
	// Converter identifies which converter declaration this relates to (if any).
	Converter string `json:"converter,omitempty"`
	// Member identifies which domain member or rule this relates to (if any).
	Member string `json:"member,omitempty"`
	// Suggestions are potential fixes or alternatives.
	Suggestions []string `json:"suggestions,omitempty"`
}

// DiagnosticSeverity represents the severity level of a diagnostic.
type DiagnosticSeverity int

const (
	DiagnosticInfo DiagnosticSeverity = iota
	DiagnosticWarning
	DiagnosticError
)

// String returns a human-readable severity name.
func (s DiagnosticSeverity) String() string {
	switch s {
	case DiagnosticInfo:
		return "info"
	case DiagnosticWarning:
		return "warning"
	case DiagnosticError:
		return "error"
	default:
		return common.UnknownStr
	}
}

// MarshalJSON renders the severity by name.
func (s DiagnosticSeverity) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.String())
}

// AddError adds an error diagnostic.
func (d *Diagnostics) AddError(code, message, converter, member string, suggestions ...string) {
	d.Errors = append(d.Errors, Diagnostic{
		Severity:    DiagnosticError,
		Code:        code,
		Message:     message,
		Converter:   converter,
		Member:      member,
		Suggestions: suggestions,
	})
}

// AddWarning adds a warning diagnostic.
func (d *Diagnostics) AddWarning(code, message, converter, member string, suggestions ...string) {
	d.Warnings = append(d.Warnings, Diagnostic{
		Severity:    DiagnosticWarning,
		Code:        code,
		Message:     message,
		Converter:   converter,
		Member:      member,
		Suggestions: suggestions,
	})
}

// AddInfo adds an info diagnostic.
func (d *Diagnostics) AddInfo(code, message, converter, member string) {
	d.Infos = append(d.Infos, Diagnostic{
		Severity:  DiagnosticInfo,
		Code:      code,
		Message:   message,
		Converter: converter,
		Member:    member,
	})
}

// HasErrors returns true if there are any error diagnostics.
func (d *Diagnostics) HasErrors() bool {
	return len(d.Errors) > 0
}

// Merge merges another Diagnostics instance into this one.
func (d *Diagnostics) Merge(other Diagnostics) {
	d.Errors = append(d.Errors, other.Errors...)
	d.Warnings = append(d.Warnings, other.Warnings...)
	d.Infos = append(d.Infos, other.Infos...)
}

// IsValid returns true if there are no errors.
func (d *Diagnostics) IsValid() bool {
	return len(d.Errors) == 0
}

// ByCode returns the diagnostics of every severity carrying the given code.
func (d *Diagnostics) ByCode(code string) []Diagnostic {
	var out []Diagnostic

	for _, group := range [][]Diagnostic{d.Errors, d.Warnings, d.Infos} {
		for _, diag := range group {
			if diag.Code == code {
				out = append(out, diag)
			}
		}
	}

	return out
}

// Error returns a combined error from all error diagnostics, or nil if valid.
func (d *Diagnostics) Error() error {
	if d.IsValid() {
		return nil
	}

	var parts []string
	for _, e := range d.Errors {
		parts = append(parts, e.String())
	}

	return errors.New(strings.Join(parts, "; "))
}

// WriteText writes one line per diagnostic, errors first.
func (d *Diagnostics) WriteText(w io.Writer) error {
	for _, group := range [][]Diagnostic{d.Errors, d.Warnings, d.Infos} {
		for _, diag := range group {
			if _, err := fmt.Fprintf(w, "%s: %s\n", diag.Severity, diag.String()); err != nil {
				return err
			}
		}
	}

	return nil
}

// WriteJSON writes the diagnostics as an indented JSON document.
func (d *Diagnostics) WriteJSON(w io.Writer) error {
	data, err := json.MarshalIndent(d, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal diagnostics: %w", err)
	}

	_, err = w.Write(append(data, '\n'))

	return err
}

// String returns a formatted diagnostic string.
func (d Diagnostic) String() string {
	var prefix []string
	if d.Converter != "" {
		prefix = append(prefix, "["+d.Converter+"]")
	}

	if d.Member != "" {
		prefix = append(prefix, d.Member)
	}

	msg := d.Message
	if d.Code != "" {
		msg = fmt.Sprintf("[%s] %s", d.Code, msg)
	}

	if len(d.Suggestions) > 0 {
		msg += " (did you mean " + strings.Join(quoteAll(d.Suggestions), ", ") + "?)"
	}

	if len(prefix) > 0 {
		return strings.Join(prefix, " ") + ": " + msg
	}

	return msg
}

func quoteAll(values []string) []string {
	quoted := slices.Clone(values)
	for i, v := range quoted {
		quoted[i] = fmt.Sprintf("%q", v)
	}

	return quoted
}
