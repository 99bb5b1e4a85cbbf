// Package modeltest builds source models from inline sources for tests.
package modeltest

import (
	"go/ast"
	"go/importer"
	"go/parser"
	"go/token"
	"go/types"
	"maps"
	"slices"
	"testing"

	"github.com/sirkon/fieldguard/internal/model"
)

// Load type-checks sources as a package with the given import path and builds
// a unit over it. Files are ordered by name.
func Load(t testing.TB, path string, sources map[string]string) *model.Unit {
	t.Helper()
	return LoadWith(t, path, sources, nil)
}

// LoadWith is Load with a lookup for annotations of foreign symbols.
func LoadWith(t testing.TB, path string, sources map[string]string, foreign model.Lookup) *model.Unit {
	t.Helper()

	fset := token.NewFileSet()
	var files []*ast.File
	for _, name := range slices.Sorted(maps.Keys(sources)) {
		f, err := parser.ParseFile(fset, name, sources[name], parser.ParseComments|parser.SkipObjectResolution)
		if err != nil {
			t.Fatalf("parse %s: %s", name, err)
		}
		files = append(files, f)
	}

	info := NewInfo()
	conf := types.Config{Importer: importer.ForCompiler(fset, "source", nil)}
	pkg, err := conf.Check(path, fset, files, info)
	if err != nil {
		t.Fatalf("type check %s: %s", path, err)
	}

	return model.NewUnit(fset, files, pkg, info, nil, foreign)
}

// NewInfo returns types.Info with every map the model relies on.
func NewInfo() *types.Info {
	return &types.Info{
		Types:      make(map[ast.Expr]types.TypeAndValue),
		Defs:       make(map[*ast.Ident]types.Object),
		Uses:       make(map[*ast.Ident]types.Object),
		Implicits:  make(map[ast.Node]types.Object),
		Selections: make(map[*ast.SelectorExpr]*types.Selection),
		Scopes:     make(map[ast.Node]*types.Scope),
		Instances:  make(map[*ast.Ident]types.Instance),
	}
}
