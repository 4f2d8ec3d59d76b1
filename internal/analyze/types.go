package analyze

import (
	"go/types"
	"sort"
	"strings"

	"enum-bridge/internal/common"
)

// TypeID uniquely identifies a type by its package path and name.
type TypeID struct {
	PkgPath string // e.g., "enum-bridge/store"
	Name    string // e.g., "OrderStatus"
}

// String returns a human-readable representation of the TypeID.
func (t TypeID) String() string {
	if t.PkgPath == "" {
		return t.Name
	}

	return t.PkgPath + "." + t.Name
}

// Short returns the type qualified by the package alias, e.g. "store.OrderStatus".
func (t TypeID) Short() string {
	if t.PkgPath == "" {
		return t.Name
	}

	return t.PkgPath[strings.LastIndex(t.PkgPath, "/")+1:] + "." + t.Name
}

// Member is one constant of an enumeration.
type Member struct {
	Name  string // Go identifier of the constant
	Value string // exact constant value, e.g. `"PAID"` or `3`
	Pos   string // file:line of the declaration
	// AliasOf names an earlier constant with the same value. Aliases are not
	// distinct domain members.
	AliasOf string
}

// IsAlias returns true if the constant repeats the value of an earlier one.
func (m Member) IsAlias() bool {
	return m.AliasOf != ""
}

// EnumInfo describes a named type and the constants declared of it.
type EnumInfo struct {
	ID      TypeID
	Basic   string     // underlying basic type name, e.g. "int" or "string"
	Members []Member   // in declaration order, aliases included
	GoType  types.Type // the original go/types.Type
}

// MemberNames returns the names of the distinct members (aliases excluded).
func (e *EnumInfo) MemberNames() []string {
	names := make([]string, 0, len(e.Members))
	for _, m := range e.Members {
		if !m.IsAlias() {
			names = append(names, m.Name)
		}
	}

	return names
}

// Member returns the member with the given constant name.
func (e *EnumInfo) Member(name string) (Member, bool) {
	for _, m := range e.Members {
		if m.Name == name {
			return m, true
		}
	}

	return Member{}, false
}

// Canonical resolves an alias to the constant it repeats. Other names are
// returned unchanged.
func (e *EnumInfo) Canonical(name string) string {
	if m, ok := e.Member(name); ok && m.IsAlias() {
		return m.AliasOf
	}

	return name
}

// EnumGraph holds all enumerations found in the loaded packages.
type EnumGraph struct {
	// Enums maps TypeID to EnumInfo for all enumerations.
	Enums map[TypeID]*EnumInfo
	// Packages maps package paths to their package info.
	Packages map[string]*PackageInfo
}

// NewEnumGraph creates a new empty EnumGraph.
func NewEnumGraph() *EnumGraph {
	return &EnumGraph{
		Enums:    make(map[TypeID]*EnumInfo),
		Packages: make(map[string]*PackageInfo),
	}
}

// GetEnum returns the EnumInfo for a given TypeID, or nil if not found.
func (g *EnumGraph) GetEnum(id TypeID) *EnumInfo {
	return g.Enums[id]
}

// SortedIDs returns the IDs of all enumerations in a stable order.
func (g *EnumGraph) SortedIDs() []TypeID {
	ids := make([]TypeID, 0, len(g.Enums))
	for id := range g.Enums {
		ids = append(ids, id)
	}

	sort.Slice(ids, func(i, j int) bool {
		return ids[i].String() < ids[j].String()
	})

	return ids
}

// Resolve resolves a type ID string like:
// - "store.OrderStatus" (short)
// - "enum-bridge/store.OrderStatus" (full)
// - "OrderStatus" (name only, must be unambiguous).
func (g *EnumGraph) Resolve(typeIDStr string) *EnumInfo {
	if g == nil || typeIDStr == "" {
		return nil
	}

	pkgStr, name := common.SplitQualified(typeIDStr)
	if pkgStr == "" && name == typeIDStr {
		var found *EnumInfo

		for id, e := range g.Enums {
			if id.Name != typeIDStr {
				continue
			}

			if found != nil {
				return nil
			}

			found = e
		}

		return found
	}

	if pkgStr == "" || name == "" {
		return nil
	}

	// 1) exact match (for fully qualified import path)
	if e := g.GetEnum(TypeID{PkgPath: pkgStr, Name: name}); e != nil {
		return e
	}

	// 2) suffix match (for short forms like "store.OrderStatus")
	for _, id := range g.SortedIDs() {
		if id.Name != name {
			continue
		}

		if id.PkgPath == pkgStr || strings.HasSuffix(id.PkgPath, "/"+pkgStr) {
			return g.Enums[id]
		}
	}

	return nil
}

// PackageInfo holds information about a loaded package.
type PackageInfo struct {
	Path  string   // Import path
	Name  string   // Package name
	Enums []TypeID // Enumerations defined in this package
}
