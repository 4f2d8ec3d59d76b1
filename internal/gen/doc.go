// Package gen provides deterministic Go code generation for checked
// enumeration converters.
//
// Generation approach uses text/template + go/format. Each declaration file
// becomes one Go file holding:
//   - a marker type per converter tag
//   - a package-level variable per converter, built with bidi.MustBuild so an
//     incomplete mapping panics during package initialization
//   - a Register function publishing every converter in a bidi.Registry
//
// The declaration is validated before generation, so the generated
// MustBuild calls never panic unless the enumerations changed since.
package gen
