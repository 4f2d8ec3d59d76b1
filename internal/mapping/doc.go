// Package mapping provides the declaration file schema, parsing, and
// validation for enumeration converters.
//
// A declaration file lists converters between an internal and an external
// enumeration. Each side is either a Go type resolved from source or an
// inline member list:
//
//	version: "1"
//	package: bridges
//	converters:
//	  - name: OrderStatus
//	    internal:
//	      type: store.OrderStatus
//	    external:
//	      type: warehouse.State
//	    rules:
//	      - StatusPending == StateOpen      # equivalence
//	      - StatusRefunded => StateVoided   # internal to external only
//	      - StatusPaid <= StatePicked       # external to internal only
//	      - StatusDraft => _                # internal orphan
//	      - _ <= StateLost                  # external orphan
//	      - equiv: [StatusPaid, StateReserved]
//	      - orphan_int: StatusDraft
//
// Rules use either the textual syntax of bidi.ParseRule or a single-key
// form: equiv, i2e and e2i take an [internal, external] pair, orphan_int
// and orphan_ext take one member.
//
// Validate runs the same coverage proof as bidi.Build over the member
// names, so a file that validates generates converters that build.
// Every problem in the file is reported, not just the first.
package mapping
