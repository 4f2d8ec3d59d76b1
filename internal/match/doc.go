// Package match provides name normalization, Levenshtein distance calculation,
// and candidate ranking for pairing enumeration members.
//
// Key functions:
//   - NormalizeIdent: normalizes identifiers for fuzzy matching
//   - MemberKey: normalizes a member name with its type prefix removed
//   - Levenshtein: computes edit distance between strings
//   - RankMembers: ranks potential counterparts for a member
//   - Suggest: picks "did you mean" names for an unknown member
package match
