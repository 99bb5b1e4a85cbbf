// Package locate enumerates assignment sites of a source unit.
package locate

import (
	"go/ast"
	"go/token"
	"iter"

	"golang.org/x/tools/go/ast/inspector"

	"github.com/sirkon/fieldguard/internal/model"
	"github.com/sirkon/fieldguard/internal/report"
)

// Site is a single assignment target.
type Site struct {
	Stmt ast.Stmt
	LHS  ast.Expr

	// Target is the assigned symbol, nil when the left hand side does not
	// resolve to a variable.
	Target *model.Symbol

	// Pos and End delimit the reported range: the whole statement for a
	// single target, the target expression itself in a tuple assignment.
	Pos  token.Pos
	End  token.Pos
	Span report.Span
}

// Sites returns assignment sites of the given files in source order. Nil files
// means every file of the unit. The sequence is lazy: the syntax is walked as
// sites are consumed.
func Sites(u *model.Unit, files []*ast.File, mode WriteMode) iter.Seq[Site] {
	in := u.Inspector
	if files != nil {
		in = inspector.New(files)
	}

	nodeFilter := []ast.Node{
		(*ast.AssignStmt)(nil),
	}
	if mode == WriteModeAll {
		nodeFilter = append(nodeFilter, (*ast.IncDecStmt)(nil), (*ast.RangeStmt)(nil))
	}

	return func(yield func(Site) bool) {
		for n := range in.PreorderSeq(nodeFilter...) {
			for _, s := range sitesOf(u, n.(ast.Stmt), mode) {
				if !yield(s) {
					return
				}
			}
		}
	}
}

func sitesOf(u *model.Unit, stmt ast.Stmt, mode WriteMode) []Site {
	var res []Site
	add := func(lhs ast.Expr, pos, end token.Pos) {
		if isBlank(lhs) {
			return
		}

		res = append(res, Site{
			Stmt:   stmt,
			LHS:    lhs,
			Target: u.Resolve(lhs),
			Pos:    pos,
			End:    end,
			Span:   report.SpanOf(u.Fset, pos, end),
		})
	}

	switch s := stmt.(type) {
	case *ast.AssignStmt:
		switch {
		case s.Tok == token.DEFINE:
			return nil
		case s.Tok != token.ASSIGN && mode != WriteModeAll:
			return nil
		}

		if len(s.Lhs) == 1 {
			add(s.Lhs[0], s.Pos(), s.End())
			return res
		}
		for _, lhs := range s.Lhs {
			add(lhs, lhs.Pos(), lhs.End())
		}

	case *ast.IncDecStmt:
		add(s.X, s.Pos(), s.End())

	case *ast.RangeStmt:
		if s.Tok != token.ASSIGN {
			return nil
		}
		for _, lhs := range []ast.Expr{s.Key, s.Value} {
			if lhs != nil {
				add(lhs, lhs.Pos(), lhs.End())
			}
		}
	}

	return res
}

func isBlank(expr ast.Expr) bool {
	id, ok := ast.Unparen(expr).(*ast.Ident)
	return ok && id.Name == "_"
}
