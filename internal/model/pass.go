package model

import (
	"go/types"

	"golang.org/x/tools/go/analysis"
	"golang.org/x/tools/go/analysis/passes/inspect"
	"golang.org/x/tools/go/ast/inspector"
)

// FromPass builds a unit for the package under analysis. It exports a
// [MarkedField] fact for every annotated symbol of the package and resolves
// annotations of foreign symbols through imported facts. The analyzer must list
// (*MarkedField)(nil) in its FactTypes.
func FromPass(pass *analysis.Pass) *Unit {
	in, _ := pass.ResultOf[inspect.Analyzer].(*inspector.Inspector)

	imported := make(map[*types.Var]*MarkedField)
	for _, f := range pass.AllObjectFacts() {
		v, ok := f.Object.(*types.Var)
		if !ok || v.Pkg() == pass.Pkg {
			continue
		}
		if fact, ok := f.Fact.(*MarkedField); ok {
			imported[v] = fact
		}
	}

	u := NewUnit(pass.Fset, pass.Files, pass.Pkg, pass.TypesInfo, in, func(v *types.Var) (*MarkedField, bool) {
		fact, ok := imported[v]
		return fact, ok
	})

	for _, s := range u.table.order {
		if len(s.Annotations) == 0 {
			continue
		}
		pass.ExportObjectFact(s.obj, s.fact())
	}

	return u
}
