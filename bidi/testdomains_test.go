package bidi_test

import "enum-bridge/bidi"

type A int

const (
	A1 A = iota + 1
	A2
	A3
)

type B string

const (
	B1 B = "b1"
	B2 B = "b2"
	B3 B = "b3"
)

var (
	domainA2 = bidi.MustDomain("A", A1, A2)
	domainA3 = bidi.MustDomain("A", A1, A2, A3)
	domainB2 = bidi.MustDomain("B", B1, B2)
	domainB3 = bidi.MustDomain("B", B1, B2, B3)
)

type (
	Tag1 struct{}
	Tag2 struct{}
)
