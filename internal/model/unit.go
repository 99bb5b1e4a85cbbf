package model

import (
	"go/ast"
	"go/token"
	"go/types"

	"golang.org/x/tools/go/ast/inspector"
)

// Lookup returns annotations recorded for a variable declared in another package.
type Lookup func(v *types.Var) (*MarkedField, bool)

// Unit is the source model of a single type-checked package.
type Unit struct {
	Fset      *token.FileSet
	Files     []*ast.File
	Pkg       *types.Package
	Info      *types.Info
	Inspector *inspector.Inspector

	table   *table
	foreign Lookup
}

// NewUnit builds a unit and its symbol table. A nil inspector is created over
// files, a nil foreign lookup means symbols of other packages have no annotations.
func NewUnit(
	fset *token.FileSet,
	files []*ast.File,
	pkg *types.Package,
	info *types.Info,
	in *inspector.Inspector,
	foreign Lookup,
) *Unit {
	if in == nil {
		in = inspector.New(files)
	}

	return &Unit{
		Fset:      fset,
		Files:     files,
		Pkg:       pkg,
		Info:      info,
		Inspector: in,
		table:     collect(pkg, info, files),
		foreign:   foreign,
	}
}

// Path returns the import path of the unit package.
func (u *Unit) Path() string {
	if u.Pkg == nil {
		return ""
	}

	return u.Pkg.Path()
}

// Symbols returns symbols declared in the unit in declaration order.
func (u *Unit) Symbols() []*Symbol {
	res := make([]*Symbol, len(u.table.order))
	copy(res, u.table.order)
	return res
}

// File returns the unit file containing pos or nil if there is no such file.
func (u *Unit) File(pos token.Pos) *ast.File {
	if !pos.IsValid() {
		return nil
	}

	for _, f := range u.Files {
		if f.FileStart <= pos && pos <= f.FileEnd {
			return f
		}
	}

	return nil
}

// Lookup returns a symbol for the given variable. Symbols declared in the unit
// come from its table, others are built on demand and are never cached.
func (u *Unit) Lookup(v *types.Var) *Symbol {
	if v == nil {
		return nil
	}
	v = v.Origin()

	if s, ok := u.table.symbols[v]; ok {
		return s
	}

	s := &Symbol{
		Name: v.Name(),
		Kind: kindOf(v),
		Pos:  token.NoPos,
		obj:  v,
	}
	if pkg := v.Pkg(); pkg != nil {
		s.Package = pkg.Path()
		if pkg == u.Pkg {
			s.Pos = v.Pos()
		}
	}

	if u.foreign != nil && v.Pkg() != u.Pkg {
		if f, ok := u.foreign(v); ok {
			s.Owner = f.Owner
			s.Annotations = f.Annotations
		}
	}

	return s
}

// Resolve returns the symbol assigned by the left hand side expression of an
// assignment. It returns nil when the expression is not a variable: map and
// slice elements, pointer indirections, blank identifiers and expressions the
// type checker could not resolve.
func (u *Unit) Resolve(lhs ast.Expr) *Symbol {
	switch e := ast.Unparen(lhs).(type) {
	case *ast.Ident:
		if e.Name == "_" {
			return nil
		}

		v, ok := u.Info.Uses[e].(*types.Var)
		if !ok {
			return nil
		}
		return u.Lookup(v)

	case *ast.SelectorExpr:
		if sel, ok := u.Info.Selections[e]; ok {
			if sel.Kind() != types.FieldVal {
				return nil
			}

			v, ok := sel.Obj().(*types.Var)
			if !ok {
				return nil
			}
			return u.Lookup(v)
		}

		// Qualified identifier.
		v, ok := u.Info.Uses[e.Sel].(*types.Var)
		if !ok {
			return nil
		}
		return u.Lookup(v)

	default:
		return nil
	}
}

func kindOf(v *types.Var) SymbolKind {
	switch {
	case v.IsField():
		return SymbolField
	case v.Pkg() != nil && v.Parent() == v.Pkg().Scope():
		return SymbolVar
	default:
		return SymbolLocal
	}
}
