package model

import (
	"errors"
	"fmt"
	"go/types"

	"golang.org/x/tools/go/packages"
)

// LoadMode is the go/packages load mode FromPackages needs. Syntax of
// dependencies is required to see annotations of foreign fields.
const LoadMode = packages.NeedName |
	packages.NeedFiles |
	packages.NeedImports |
	packages.NeedDeps |
	packages.NeedSyntax |
	packages.NeedTypes |
	packages.NeedTypesInfo

// FromPackages builds a unit for every root package. Annotations of fields
// declared anywhere in the loaded import graph are visible to every unit.
func FromPackages(roots []*packages.Package) ([]*Unit, error) {
	var errs []error
	for _, p := range roots {
		for _, e := range p.Errors {
			errs = append(errs, fmt.Errorf("package %s: %w", p.PkgPath, e))
		}
	}
	if len(errs) > 0 {
		return nil, errors.Join(errs...)
	}

	marked := make(map[*types.Var]*MarkedField)
	packages.Visit(roots, nil, func(p *packages.Package) {
		if p.Types == nil || p.TypesInfo == nil {
			return
		}

		t := collect(p.Types, p.TypesInfo, p.Syntax)
		for _, s := range t.order {
			if len(s.Annotations) == 0 {
				continue
			}
			marked[s.obj] = s.fact()
		}
	})

	lookup := func(v *types.Var) (*MarkedField, bool) {
		f, ok := marked[v]
		return f, ok
	}

	units := make([]*Unit, 0, len(roots))
	for _, p := range roots {
		units = append(units, NewUnit(p.Fset, p.Syntax, p.Types, p.TypesInfo, nil, lookup))
	}

	return units, nil
}
