package bidi

//go:generate go tool stringer -type=KindEnum -output=kind_string.go

type KindEnum int

const (
	_ KindEnum = iota // skip zero value, a zero Rule is never valid

	KindEquivalence
	KindProjectionAtoB
	KindProjectionBtoA
	KindOrphanA
	KindOrphanB

	// KindTotal is a constant that represents the total number of kinds defined
	KindTotal = int(iota)
)

func (k KindEnum) IsValid() bool {
	return KindEquivalence <= k && int(k) < KindTotal
}

// CoversA reports whether a rule of this kind produces an entry in the A->B table.
func (k KindEnum) CoversA() bool {
	switch k {
	default:
		return false
	case KindEquivalence, KindProjectionAtoB, KindOrphanA:
		return true
	}
}

// CoversB reports whether a rule of this kind produces an entry in the B->A table.
func (k KindEnum) CoversB() bool {
	switch k {
	default:
		return false
	case KindEquivalence, KindProjectionBtoA, KindOrphanB:
		return true
	}
}

// IsOrphan reports whether a rule of this kind leaves its member without a counterpart.
func (k KindEnum) IsOrphan() bool {
	return k == KindOrphanA || k == KindOrphanB
}

// Operator returns the textual rule operator of the kind.
func (k KindEnum) Operator() string {
	switch k {
	default:
		return "?"
	case KindEquivalence:
		return "=="
	case KindProjectionAtoB, KindOrphanA:
		return "=>"
	case KindProjectionBtoA, KindOrphanB:
		return "<="
	}
}
