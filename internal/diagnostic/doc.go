// Package diagnostic provides structured errors, warnings and notes
// produced while checking converter declarations.
//
// Key capabilities:
//   - Missing, duplicate and unknown member reports, collected all at once
//   - "Did you mean" suggestions for misspelled members
//   - Text and JSON rendering for terminals and tooling
package diagnostic
