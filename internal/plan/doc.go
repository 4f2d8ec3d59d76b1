// Package plan proposes draft rule lists between two enumerations.
//
// Proposal pipeline:
//  1. Analyze packages → enum graph
//  2. For each member of either side, rank counterparts with the fuzzy matcher
//  3. Accept a pair as an equivalence only when both members pick each other
//     with high confidence
//  4. Declare every remaining member an orphan, so the draft always builds
//  5. Emit diagnostics (accepted pairs, ambiguity lists, unmatched members)
//
// The draft is a starting point for review, never a final mapping.
package plan
