// Package scopes indexes function scopes of a file by position.
package scopes

import (
	"fmt"
	"go/ast"
	"go/types"
)

// Kind of function scope.
type Kind int

const (
	ScopeInvalid Kind = iota
	ScopeFunc         // top level function
	ScopeMethod       // method declaration
	ScopeLiteral      // function literal
)

var kindValueMap = map[Kind]string{
	ScopeFunc:    "func",
	ScopeMethod:  "method",
	ScopeLiteral: "literal",
}

func (k Kind) String() string {
	v, ok := kindValueMap[k]
	if !ok {
		return fmt.Sprintf("invalid(%d)", k)
	}

	return v
}

// Scope is a function body enclosing some position.
type Scope struct {
	Kind Kind

	// Name is the function or method name, empty for literals.
	Name string

	// Recv is the name of the receiver type of a method.
	Recv string

	// Func is the declared function object. It is nil for literals and for
	// declarations the type checker did not define.
	Func *types.Func

	// Sig is the scope signature if it is known.
	Sig *types.Signature

	Node ast.Node
}

func (s *Scope) String() string {
	switch s.Kind {
	case ScopeMethod:
		return "(" + s.Recv + ")." + s.Name
	case ScopeLiteral:
		return "func literal"
	default:
		return s.Name
	}
}

// Returns checks if one of the scope results is the named type, by value or
// by pointer. Instantiations of generic types match their origin.
func (s *Scope) Returns(pkgPath, typeName string) bool {
	if s == nil || s.Sig == nil {
		return false
	}

	res := s.Sig.Results()
	for i := range res.Len() {
		t := types.Unalias(res.At(i).Type())
		if p, ok := t.(*types.Pointer); ok {
			t = types.Unalias(p.Elem())
		}

		named, ok := t.(*types.Named)
		if !ok {
			continue
		}

		obj := named.Origin().Obj()
		if obj.Name() == typeName && obj.Pkg() != nil && obj.Pkg().Path() == pkgPath {
			return true
		}
	}

	return false
}

func declScope(info *types.Info, decl *ast.FuncDecl) *Scope {
	s := &Scope{
		Kind: ScopeFunc,
		Name: decl.Name.Name,
		Node: decl,
	}

	if decl.Recv != nil && len(decl.Recv.List) > 0 {
		s.Kind = ScopeMethod
		s.Recv = recvTypeName(decl.Recv.List[0].Type)
	}

	if info != nil {
		if fn, ok := info.Defs[decl.Name].(*types.Func); ok {
			s.Func = fn
			s.Sig = fn.Signature()
		}
	}

	return s
}

func literalScope(info *types.Info, lit *ast.FuncLit) *Scope {
	s := &Scope{
		Kind: ScopeLiteral,
		Node: lit,
	}

	if info != nil {
		if sig, ok := info.TypeOf(lit).(*types.Signature); ok {
			s.Sig = sig
		}
	}

	return s
}

// recvTypeName unwraps receiver type expressions like *T, T[K, V] and (T).
func recvTypeName(expr ast.Expr) string {
	switch e := expr.(type) {
	case *ast.Ident:
		return e.Name
	case *ast.StarExpr:
		return recvTypeName(e.X)
	case *ast.ParenExpr:
		return recvTypeName(e.X)
	case *ast.IndexExpr:
		return recvTypeName(e.X)
	case *ast.IndexListExpr:
		return recvTypeName(e.X)
	default:
		return ""
	}
}
