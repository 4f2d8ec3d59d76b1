package analyze

import (
	"fmt"
	"go/types"
	"sort"

	"golang.org/x/tools/go/packages"
)

// LoadMode specifies what information to load from packages.
const LoadMode = packages.NeedName |
	packages.NeedFiles |
	packages.NeedTypes |
	packages.NeedTypesInfo

// Analyzer loads Go packages and builds an enum graph.
type Analyzer struct {
	// Dir is the directory packages are resolved from; empty means the
	// current directory.
	Dir string

	graph *EnumGraph
}

// NewAnalyzer creates a new Analyzer.
func NewAnalyzer() *Analyzer {
	return &Analyzer{
		graph: NewEnumGraph(),
	}
}

// LoadPackages loads the specified packages and extracts their enumerations.
// Patterns are standard Go package patterns (e.g., "./store", "enum-bridge/warehouse").
func (a *Analyzer) LoadPackages(patterns ...string) (*EnumGraph, error) {
	cfg := &packages.Config{
		Mode: LoadMode,
		Dir:  a.Dir,
	}

	pkgs, err := packages.Load(cfg, patterns...)
	if err != nil {
		return nil, fmt.Errorf("failed to load packages: %w", err)
	}

	// Check for package errors
	var errs []error
	for _, pkg := range pkgs {
		for _, e := range pkg.Errors {
			errs = append(errs, e)
		}
	}
	if len(errs) > 0 {
		return nil, fmt.Errorf("package errors: %v", errs)
	}

	for _, pkg := range pkgs {
		if err := a.processPackage(pkg); err != nil {
			return nil, fmt.Errorf("failed to process package %s: %w", pkg.PkgPath, err)
		}
	}

	return a.graph, nil
}

// processPackage extracts enumerations from a loaded package.
func (a *Analyzer) processPackage(pkg *packages.Package) error {
	if pkg.Types == nil {
		return fmt.Errorf("no type information for %s", pkg.PkgPath)
	}

	pkgInfo := &PackageInfo{
		Path: pkg.PkgPath,
		Name: pkg.Name,
	}

	enums := make(map[*types.TypeName]*EnumInfo)

	var consts []*types.Const

	scope := pkg.Types.Scope()
	for _, name := range scope.Names() {
		switch obj := scope.Lookup(name).(type) {
		case *types.TypeName:
			if info := enumCandidate(pkg.PkgPath, obj); info != nil {
				enums[obj] = info
			}
		case *types.Const:
			if obj.Exported() {
				consts = append(consts, obj)
			}
		}
	}

	// Declaration order, so aliases point at the first constant of a value.
	sort.Slice(consts, func(i, j int) bool {
		return consts[i].Pos() < consts[j].Pos()
	})

	for _, c := range consts {
		named, ok := c.Type().(*types.Named)
		if !ok {
			continue
		}

		info, ok := enums[named.Obj()]
		if !ok {
			continue
		}

		member := Member{
			Name:  c.Name(),
			Value: c.Val().ExactString(),
			Pos:   pkg.Fset.Position(c.Pos()).String(),
		}

		for _, prev := range info.Members {
			if !prev.IsAlias() && prev.Value == member.Value {
				member.AliasOf = prev.Name
				break
			}
		}

		info.Members = append(info.Members, member)
	}

	for _, info := range enums {
		// A type without constants is not an enumeration.
		if len(info.Members) == 0 {
			continue
		}

		a.graph.Enums[info.ID] = info
		pkgInfo.Enums = append(pkgInfo.Enums, info.ID)
	}

	sort.Slice(pkgInfo.Enums, func(i, j int) bool {
		return pkgInfo.Enums[i].Name < pkgInfo.Enums[j].Name
	})

	a.graph.Packages[pkg.PkgPath] = pkgInfo

	return nil
}

// enumCandidate returns an empty EnumInfo when obj is an exported named
// type over a basic type, nil otherwise.
func enumCandidate(pkgPath string, obj *types.TypeName) *EnumInfo {
	if !obj.Exported() || obj.IsAlias() {
		return nil
	}

	named, ok := obj.Type().(*types.Named)
	if !ok || named.TypeParams().Len() > 0 {
		return nil
	}

	basic, ok := named.Underlying().(*types.Basic)
	if !ok || basic.Info()&types.IsOrdered == 0 {
		return nil
	}

	return &EnumInfo{
		ID:     TypeID{PkgPath: pkgPath, Name: obj.Name()},
		Basic:  basic.Name(),
		GoType: named,
	}
}
