package match

import (
	"slices"
	"testing"
)

func TestNormalizeIdent(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"StatusPaid", "statuspaid"},
		{"status_paid", "statuspaid"},
		{"status-paid", "statuspaid"},
		{"IN_TRANSIT", "intransit"},
		{"XMLParser", "xmlparser"},
		{"store.Status", "storestatus"},
		{"", ""},
		{"A", "a"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			result := NormalizeIdent(tt.input)
			if result != tt.expected {
				t.Errorf("NormalizeIdent(%q) = %q, want %q", tt.input, result, tt.expected)
			}
		})
	}
}

func TestMemberKey(t *testing.T) {
	tests := []struct {
		member   string
		typeName string
		expected string
	}{
		{"StatusPaid", "OrderStatus", "paid"},
		{"OrderStatusPending", "OrderStatus", "pending"},
		{"StateOpen", "State", "open"},
		{"PaymentCard", "PaymentKind", "card"},
		{"Card", "PaymentKind", "card"},
		{"StatusInTransit", "Status", "intransit"},
		{"CarrierPost", "Carrier", "post"},

		// The last token is never dropped.
		{"State", "State", "state"},
		{"StatusOrder", "OrderStatus", "order"},
	}

	for _, tt := range tests {
		t.Run(tt.member, func(t *testing.T) {
			result := MemberKey(tt.member, tt.typeName)
			if result != tt.expected {
				t.Errorf("MemberKey(%q, %q) = %q, want %q", tt.member, tt.typeName, result, tt.expected)
			}
		})
	}
}

func TestValueKey(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{`"IN_TRANSIT"`, "intransit"},
		{`"PAID"`, "paid"},
		{`"in-transit"`, "intransit"},
		{`""`, ""},
		{"3", ""},
		{"", ""},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			result := ValueKey(tt.input)
			if result != tt.expected {
				t.Errorf("ValueKey(%q) = %q, want %q", tt.input, result, tt.expected)
			}
		})
	}
}

func TestTokenizeCamelCase(t *testing.T) {
	tests := []struct {
		input    string
		expected []string
	}{
		{"StatusPaid", []string{"Status", "Paid"}},
		{"customerName", []string{"customer", "Name"}},
		{"XMLParser", []string{"XML", "Parser"}},
		{"getHTTPResponse", []string{"get", "HTTP", "Response"}},
		{"IN_TRANSIT", []string{"IN", "TRANSIT"}},
		{"ALLCAPS", []string{"ALLCAPS"}},
		{"lowercase", []string{"lowercase"}},
		{"", nil},
		{"a", []string{"a"}},
		{"AbC", []string{"Ab", "C"}},
		{"ABcD", []string{"A", "Bc", "D"}},
		{"parseURL", []string{"parse", "URL"}},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			result := tokenizeCamelCase(tt.input)
			if !slices.Equal(result, tt.expected) {
				t.Errorf("tokenizeCamelCase(%q) = %v, want %v", tt.input, result, tt.expected)
			}
		})
	}
}

func TestTokenizeIdent(t *testing.T) {
	result := TokenizeIdent("StatusInTransit")
	expected := []string{"status", "in", "transit"}

	if !slices.Equal(result, expected) {
		t.Errorf("TokenizeIdent() = %v, want %v", result, expected)
	}
}
