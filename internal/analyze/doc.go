// Package analyze provides package loading and enumeration extraction.
//
// It uses golang.org/x/tools/go/packages with go/types to find every
// exported named type with a basic underlying type (int, string, ...)
// and the exported constants declared of that type. The result is the
// complete, statically known member set of each enumeration.
//
// Key types:
//   - TypeID: package import path + type name
//   - EnumInfo: the enumeration's underlying kind and members in declaration order
//   - Member: constant name, exact value, and alias information
package analyze
