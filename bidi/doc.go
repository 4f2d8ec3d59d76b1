// Package bidi builds bidirectional conversion tables between two finite
// enumerations and proves, at construction time, that every member of both
// enumerations is accounted for exactly once.
//
// A converter is declared as a list of rules:
//
//	Equiv(a, b)        a -> b and b -> a
//	ProjectAtoB(a, b)  a -> b only
//	ProjectBtoA(a, b)  b -> a only
//	OrphanA[B](a)      a has no counterpart
//	OrphanB[A](b)      b has no counterpart
//
// Build refuses to produce a Converter unless the rules cover each member
// of domain A exactly once among the A-covering rules (Equiv, ProjectAtoB,
// OrphanA), and symmetrically for domain B. A failed build reports every
// missing, duplicated and unknown member at once.
//
// Converters are typically package-level variables declared with
// MustBuild, so an incomplete mapping stops the program during
// initialization. The enum-bridge command proves the same property earlier,
// at generation time, from the Go source of the enumerations.
package bidi
