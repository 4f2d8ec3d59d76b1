package common

import (
	"path"
	"strings"
)

// UnknownStr is the String value of out-of-range enum values.
const UnknownStr = "unknown"

// PkgAlias returns the package alias (last element of path) for a given package path.
// Returns empty string if pkgPath is empty.
func PkgAlias(pkgPath string) string {
	if pkgPath == "" {
		return ""
	}

	return path.Base(pkgPath)
}

// SplitQualified splits "pkg/path.Name" into the package path and the name.
// A string without a dot is returned as a bare name.
func SplitQualified(s string) (pkgPath, name string) {
	lastDot := strings.LastIndex(s, ".")
	if lastDot < 0 {
		return "", s
	}

	return s[:lastDot], s[lastDot+1:]
}
