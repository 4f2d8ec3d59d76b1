// Package main provides the CLI entrypoint for enum-bridge.
//
// enum-bridge checks and generates bidirectional converters between Go
// enumerations:
//   - analyze lists the enumerations found in Go packages
//   - check proves declaration files cover both domains exactly once
//   - suggest drafts a declaration by matching member names
//   - gen writes the checked converters as Go code
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := newRootCommand().Execute(); err != nil {
		_, _ = fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}
