package diagnostic

import (
	"bytes"
	"testing"

	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDiagnostics_Collect(t *testing.T) {
	var d Diagnostics
	assert.True(t, d.IsValid())
	assert.NoError(t, d.Error())

	d.AddError(CodeMissingMember, "no rule covers internal member", "OrderStatus", "StatusPaid")
	d.AddWarning(CodeAmbiguousMatch, "two candidates", "OrderStatus", "paid", "Paid", "Payed")
	d.AddInfo(CodeAutoMatched, "matched by name", "OrderStatus", "pending")

	assert.True(t, d.HasErrors())
	assert.False(t, d.IsValid())
	assert.Len(t, d.ByCode(CodeAmbiguousMatch), 1)
	assert.Empty(t, d.ByCode(CodeNoRules))

	require.Error(t, d.Error())
	assert.Equal(t,
		"[OrderStatus] StatusPaid: [missing_member] no rule covers internal member",
		d.Error().Error())

	var other Diagnostics
	other.AddError(CodeInvalidRule, "bad rule", "", "")
	d.Merge(other)
	assert.Len(t, d.Errors, 2)
	assert.Equal(t, "[invalid_rule] bad rule", d.Errors[1].String())
}

func TestDiagnostic_StringWithSuggestions(t *testing.T) {
	diag := Diagnostic{
		Code:        CodeUnknownMember,
		Message:     "not a member of store.OrderStatus",
		Converter:   "OrderStatus",
		Member:      "StatusPayed",
		Suggestions: []string{"StatusPaid"},
	}

	assert.Equal(t,
		`[OrderStatus] StatusPayed: [unknown_member] not a member of store.OrderStatus (did you mean "StatusPaid"?)`,
		diag.String())
}

func TestDiagnostics_WriteText(t *testing.T) {
	var d Diagnostics
	d.AddInfo(CodeAutoMatched, "matched", "", "x")
	d.AddError(CodeNoRules, "no rules", "C", "")

	var buf bytes.Buffer
	require.NoError(t, d.WriteText(&buf))
	assert.Equal(t, "error: [C]: [no_rules] no rules\ninfo: x: [auto_matched] matched\n", buf.String())
}

func TestDiagnostics_WriteJSON(t *testing.T) {
	var d Diagnostics
	d.AddError(CodeDuplicateMember, "covered twice", "C", "B1")

	var buf bytes.Buffer
	require.NoError(t, d.WriteJSON(&buf))

	var decoded map[string][]map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &decoded))
	require.Len(t, decoded["errors"], 1)
	assert.Equal(t, "error", decoded["errors"][0]["severity"])
	assert.Equal(t, "duplicate_member", decoded["errors"][0]["code"])
	assert.Equal(t, "B1", decoded["errors"][0]["member"])
	assert.NotContains(t, decoded, "warnings")
}

func TestDiagnosticSeverity_String(t *testing.T) {
	assert.Equal(t, "info", DiagnosticInfo.String())
	assert.Equal(t, "warning", DiagnosticWarning.String())
	assert.Equal(t, "error", DiagnosticError.String())
	assert.Equal(t, "unknown", DiagnosticSeverity(9).String())
}
