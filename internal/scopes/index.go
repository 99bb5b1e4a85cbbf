package scopes

import (
	"go/ast"
	"go/token"
	"go/types"

	"github.com/sirkon/rbtree"
)

// Index holds scopes of a single file as a containment tree.
type Index struct {
	tree *rbtree.Tree[*span]
}

// New creates an empty index.
func New() *Index {
	return &Index{tree: rbtree.New[*span]()}
}

// Build indexes every function declaration and function literal of the file.
func Build(info *types.Info, file *ast.File) (*Index, error) {
	idx := New()

	var err error
	ast.Inspect(file, func(n ast.Node) bool {
		if err != nil {
			return false
		}

		var s *Scope
		switch node := n.(type) {
		case *ast.FuncDecl:
			s = declScope(info, node)
		case *ast.FuncLit:
			s = literalScope(info, node)
		default:
			return true
		}

		err = idx.Add(s, n.Pos(), n.End()-1)
		return err == nil
	})
	if err != nil {
		return nil, err
	}

	return idx, nil
}

// Add registers a scope covering [start, end]. Spans may nest in any order
// but must not partially overlap.
func (idx *Index) Add(s *Scope, start, end token.Pos) error {
	return attachInto(idx.tree, &span{start: start, end: end, scope: s})
}

// Path returns scopes enclosing pos, outermost first.
func (idx *Index) Path(pos token.Pos) []*Scope {
	return descendPath(idx.tree, pos, nil)
}

// Innermost returns the most specific scope enclosing pos.
func (idx *Index) Innermost(pos token.Pos) *Scope {
	path := idx.Path(pos)
	if len(path) == 0 {
		return nil
	}

	return path[len(path)-1]
}
