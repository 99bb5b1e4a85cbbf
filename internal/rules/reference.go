package rules

import (
	"bytes"
	"encoding"
	"errors"
	"fmt"
	"go/token"
	"strconv"
	"strings"

	"github.com/sirkon/fieldguard/internal/scopes"
)

// Reference names a function or a method of a package.
//
//	"pkg/path".Name
//	"pkg/path".Type.Name
type Reference struct {
	Package string
	Type    string
	Name    string
}

// Matches checks if the scope is the declaration of the referenced function.
func (r Reference) Matches(s *scopes.Scope) bool {
	if s == nil || s.Func == nil || s.Func.Pkg() == nil {
		return false
	}
	if s.Func.Pkg().Path() != r.Package || s.Name != r.Name {
		return false
	}

	switch s.Kind {
	case scopes.ScopeFunc:
		return r.Type == ""
	case scopes.ScopeMethod:
		return r.Type == s.Recv
	default:
		return false
	}
}

func (r Reference) String() string {
	v, err := r.MarshalText()
	if err != nil {
		return fmt.Sprintf("reference-invalid(%s.%s.%s)", r.Package, r.Type, r.Name)
	}

	return string(v)
}

var (
	_ encoding.TextMarshaler   = Reference{}
	_ encoding.TextUnmarshaler = (*Reference)(nil)
)

func (r *Reference) UnmarshalText(b []byte) error {
	s := string(bytes.TrimSpace(b))
	if s == "" {
		return errors.New("empty reference")
	}

	quoted, err := strconv.QuotedPrefix(s)
	if err != nil || quoted[0] != '"' {
		return fmt.Errorf("reference must start with quoted package: %q", s)
	}
	pkg, err := strconv.Unquote(quoted)
	if err != nil || pkg == "" {
		return fmt.Errorf("invalid package in reference: %q", s)
	}

	rest, ok := strings.CutPrefix(s[len(quoted):], ".")
	if !ok {
		return fmt.Errorf("reference must contain a name: %q", s)
	}

	typ, name, isMethod := strings.Cut(rest, ".")
	if !isMethod {
		typ, name = "", rest
	}
	if isMethod && !token.IsIdentifier(typ) {
		return fmt.Errorf("invalid type %q in reference %q", typ, s)
	}
	if !token.IsIdentifier(name) {
		return fmt.Errorf("invalid name %q in reference %q", name, s)
	}

	*r = Reference{Package: pkg, Type: typ, Name: name}
	return nil
}

func (r Reference) MarshalText() ([]byte, error) {
	if r.Package == "" {
		return nil, errors.New("cannot marshal Reference: empty Package")
	}
	if r.Name == "" {
		return nil, errors.New("cannot marshal Reference: empty Name")
	}

	var b strings.Builder
	b.WriteByte('"')
	b.WriteString(r.Package)
	b.WriteString(`".`)
	if r.Type != "" {
		b.WriteString(r.Type)
		b.WriteByte('.')
	}
	b.WriteString(r.Name)

	return []byte(b.String()), nil
}
