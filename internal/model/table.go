package model

import (
	"go/ast"
	"go/token"
	"go/types"
)

// table holds symbols declared in a single package.
type table struct {
	symbols map[*types.Var]*Symbol
	order   []*Symbol
}

func collect(pkg *types.Package, info *types.Info, files []*ast.File) *table {
	t := &table{symbols: make(map[*types.Var]*Symbol)}

	var path string
	if pkg != nil {
		path = pkg.Path()
	}

	for _, file := range files {
		for _, decl := range file.Decls {
			gd, ok := decl.(*ast.GenDecl)
			if !ok || gd.Tok != token.VAR {
				continue
			}
			t.collectVars(path, info, gd)
		}

		ast.Inspect(file, func(n ast.Node) bool {
			switch node := n.(type) {
			case *ast.TypeSpec:
				// Every struct nested in the type expression belongs to this type.
				ast.Inspect(node.Type, func(n ast.Node) bool {
					if st, ok := n.(*ast.StructType); ok {
						t.collectFields(path, node.Name.Name, info, st)
					}
					return true
				})
				return false

			case *ast.StructType:
				t.collectFields(path, "", info, node)
				return true

			default:
				return true
			}
		})
	}

	return t
}

func (t *table) collectVars(path string, info *types.Info, gd *ast.GenDecl) {
	for _, spec := range gd.Specs {
		vs, ok := spec.(*ast.ValueSpec)
		if !ok {
			continue
		}

		annotations := ParseDirectives(gd.Doc, vs.Doc, vs.Comment)
		for _, name := range vs.Names {
			t.add(info, name, &Symbol{
				Name:        name.Name,
				Kind:        SymbolVar,
				Package:     path,
				Annotations: annotations,
				Pos:         name.Pos(),
			})
		}
	}
}

func (t *table) collectFields(path, owner string, info *types.Info, st *ast.StructType) {
	if st.Fields == nil {
		return
	}

	for _, field := range st.Fields.List {
		annotations := append(ParseDirectives(field.Doc, field.Comment), ParseTag(field.Tag)...)

		names := field.Names
		if len(names) == 0 {
			if id := embeddedIdent(field.Type); id != nil {
				names = []*ast.Ident{id}
			}
		}

		for _, name := range names {
			t.add(info, name, &Symbol{
				Name:        name.Name,
				Kind:        SymbolField,
				Owner:       owner,
				Package:     path,
				Annotations: annotations,
				Pos:         name.Pos(),
			})
		}
	}
}

func (t *table) add(info *types.Info, name *ast.Ident, sym *Symbol) {
	if name.Name == "_" {
		return
	}

	v, ok := info.Defs[name].(*types.Var)
	if !ok {
		return
	}

	if _, ok := t.symbols[v]; ok {
		return
	}

	sym.obj = v
	t.symbols[v] = sym
	t.order = append(t.order, sym)
}

// embeddedIdent returns the identifier an embedded field is named after.
func embeddedIdent(expr ast.Expr) *ast.Ident {
	switch e := expr.(type) {
	case *ast.Ident:
		return e
	case *ast.StarExpr:
		return embeddedIdent(e.X)
	case *ast.SelectorExpr:
		return e.Sel
	case *ast.IndexExpr:
		return embeddedIdent(e.X)
	case *ast.IndexListExpr:
		return embeddedIdent(e.X)
	case *ast.ParenExpr:
		return embeddedIdent(e.X)
	default:
		return nil
	}
}
