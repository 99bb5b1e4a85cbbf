package model

import (
	"fmt"
	"go/token"
	"go/types"
	"strings"
)

// SymbolKind tells what kind of variable a symbol is.
type SymbolKind int

const (
	SymbolInvalid SymbolKind = iota
	SymbolField              // struct field
	SymbolVar                // package level variable
	SymbolLocal              // function local variable or parameter
)

var symbolKindValueMap = map[SymbolKind]string{
	SymbolField: "field",
	SymbolVar:   "var",
	SymbolLocal: "local",
}

func (k SymbolKind) String() string {
	v, ok := symbolKindValueMap[k]
	if !ok {
		return fmt.Sprintf("invalid(%d)", k)
	}

	return v
}

// Symbol is a resolved variable declaration together with its annotations.
type Symbol struct {
	Name string
	Kind SymbolKind

	// Owner is the name of the named type declaring the field. It is empty for
	// variables and for fields of anonymous structs.
	Owner string

	// Package is the import path of the declaring package.
	Package string

	Annotations []Annotation

	// Pos is the declaration position. It is NoPos for symbols declared in
	// other packages.
	Pos token.Pos

	obj *types.Var
}

// Object returns the declared variable, in its generic origin form.
func (s *Symbol) Object() *types.Var {
	return s.obj
}

// Qualified returns "Owner.Name" for fields of named types and Name otherwise.
func (s *Symbol) Qualified() string {
	if s.Owner == "" {
		return s.Name
	}

	return s.Owner + "." + s.Name
}

func (s *Symbol) String() string {
	var b strings.Builder
	b.WriteString(s.Kind.String())
	b.WriteByte(' ')
	if s.Package != "" {
		b.WriteString(s.Package)
		b.WriteByte('.')
	}
	b.WriteString(s.Qualified())
	for _, a := range s.Annotations {
		b.WriteString(" @")
		b.WriteString(a.String())
	}

	return b.String()
}

func (s *Symbol) fact() *MarkedField {
	return &MarkedField{
		Kind:        s.Kind,
		Owner:       s.Owner,
		Annotations: s.Annotations,
	}
}
