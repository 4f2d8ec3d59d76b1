package match

import (
	"strconv"
	"strings"
	"unicode"
)

// NormalizeIdent normalizes an identifier for fuzzy matching.
// The normalization pipeline:
// 1. Tokenize CamelCase.
// 2. Case-fold to lower.
// 3. Strip separators (_, -, spaces, dots).
func NormalizeIdent(s string) string {
	return strings.Join(TokenizeIdent(s), "")
}

// MemberKey normalizes an enumeration member name, dropping the leading
// tokens it shares with its type name. At least one token is always kept.
//
//	MemberKey("StatusPaid", "OrderStatus") == "paid"
//	MemberKey("StateOpen", "State")        == "open"
//	MemberKey("Card", "PaymentKind")       == "card"
func MemberKey(member, typeName string) string {
	tokens := TokenizeIdent(member)

	typeTokens := make(map[string]bool)
	for _, t := range TokenizeIdent(typeName) {
		typeTokens[t] = true
	}

	for len(tokens) > 1 && typeTokens[tokens[0]] {
		tokens = tokens[1:]
	}

	return strings.Join(tokens, "")
}

// ValueKey normalizes the exact value of a string constant, e.g. `"IN_TRANSIT"`
// becomes "intransit". Non-string values yield "".
func ValueKey(exact string) string {
	s, err := strconv.Unquote(exact)
	if err != nil {
		return ""
	}

	return NormalizeIdent(s)
}

// tokenizeCamelCase splits a CamelCase or camelCase string into tokens.
// Examples:
//   - "StatusPaid" -> ["Status", "Paid"]
//   - "customerName" -> ["customer", "Name"]
//   - "XMLParser" -> ["XML", "Parser"]
//   - "IN_TRANSIT" -> ["IN", "TRANSIT"]
func tokenizeCamelCase(s string) []string {
	if s == "" {
		return nil
	}

	var tokens []string

	var current strings.Builder

	flush := func() {
		if current.Len() > 0 {
			tokens = append(tokens, current.String())
			current.Reset()
		}
	}

	runes := []rune(s)
	for i, r := range runes {
		if isSeparator(r) {
			flush()

			continue
		}

		if i > 0 && shouldStartNewToken(runes, i) {
			flush()
		}

		current.WriteRune(r)
	}

	flush()

	return tokens
}

func isSeparator(r rune) bool {
	return r == '_' || r == '-' || r == ' ' || r == '.'
}

// shouldStartNewToken determines if a new token should start at position i.
func shouldStartNewToken(runes []rune, i int) bool {
	r, prev := runes[i], runes[i-1]
	if isSeparator(prev) || !unicode.IsUpper(r) {
		return false
	}

	// "statusPaid": split before 'P'
	if !unicode.IsUpper(prev) {
		return true
	}

	// "HTTPStatus": split before 'S', the end of the acronym
	return i+1 < len(runes) && unicode.IsLower(runes[i+1])
}

// TokenizeIdent splits an identifier into normalized lowercase tokens.
func TokenizeIdent(s string) []string {
	tokens := tokenizeCamelCase(s)
	for i, t := range tokens {
		tokens[i] = strings.ToLower(t)
	}

	return tokens
}
