package rules

import (
	"strings"
	"testing"

	"github.com/sirkon/fieldguard/internal/locate"
	"github.com/sirkon/fieldguard/internal/model"
	"github.com/sirkon/fieldguard/internal/modeltest"
	"github.com/sirkon/fieldguard/internal/scopes"
)

const ruleSource = `package a

type Examples struct {
	//fieldguard:NoManualSet
	blabla int
}

type Other struct{}

func NewExamples() *Examples {
	e := &Examples{}
	e.blabla = 1
	func() { e.blabla = 2 }()
	return e
}

func newExamplesValue() Examples {
	var e Examples
	e.blabla = 3
	return e
}

func NewOther(e *Examples) *Other {
	e.blabla = 4
	return &Other{}
}

func BuildExamples() *Examples {
	e := &Examples{}
	e.blabla = 5
	return e
}

func (e *Examples) SetBlabla(v int) {
	e.blabla = v
}

func (o *Other) Touch(e *Examples) {
	e.blabla = 7
}

func Reset(e *Examples) {
	e.blabla = 8
}
`

func contexts(t *testing.T) []*Context {
	t.Helper()

	u := modeltest.Load(t, "example.com/a", map[string]string{"a.go": ruleSource})
	idx, err := scopes.Build(u.Info, u.Files[0])
	if err != nil {
		t.Fatal(err)
	}

	var res []*Context
	for s := range locate.Sites(u, nil, locate.WriteModeSimple) {
		res = append(res, &Context{
			Site:    s,
			Symbol:  s.Target,
			Scopes:  idx.Path(s.Pos),
			Package: u.Path(),
		})
	}
	if len(res) != 8 {
		t.Fatalf("8 assignments expected, got %d", len(res))
	}

	return res
}

func TestRule_Violates(t *testing.T) {
	ctxs := contexts(t)

	rule := func(policy Policy) Rule {
		return Rule{ID: "X", Marker: "NoManualSet", Policy: policy}
	}

	tests := []struct {
		name    string
		rule    Rule
		pkg     string
		pattern string
	}{
		{
			name:    "constructor",
			rule:    rule(PolicyConstructor),
			pattern: "...xxxxx",
		},
		{
			name:    "owner",
			rule:    rule(PolicyOwner),
			pattern: "...xx.xx",
		},
		{
			name:    "package",
			rule:    rule(PolicyPackage),
			pattern: "........",
		},
		{
			name:    "package from another package",
			rule:    rule(PolicyPackage),
			pkg:     "example.com/b",
			pattern: "xxxxxxxx",
		},
		{
			name:    "constructor from another package",
			rule:    rule(PolicyConstructor),
			pkg:     "example.com/b",
			pattern: "xxxxxxxx",
		},
		{
			name:    "never",
			rule:    rule(PolicyNever),
			pattern: "xxxxxxxx",
		},
		{
			name: "constructor with initializer",
			rule: Rule{
				ID:           "X",
				Marker:       "NoManualSet",
				Policy:       PolicyConstructor,
				Initializers: []Reference{{Package: "example.com/a", Name: "Reset"}},
			},
			pattern: "...xxxx.",
		},
		{
			name: "never with method initializer",
			rule: Rule{
				ID:     "X",
				Marker: "NoManualSet",
				Policy: PolicyNever,
				Initializers: []Reference{
					{Package: "example.com/a", Type: "Examples", Name: "SetBlabla"},
					{Package: "example.com/a", Name: "SetBlabla"},
				},
			},
			pattern: "xxxxx.xx",
		},
		{
			name: "custom prefixes",
			rule: Rule{
				ID:                  "X",
				Marker:              "NoManualSet",
				Policy:              PolicyConstructor,
				ConstructorPrefixes: []string{"Build"},
			},
			pattern: "xxxx.xxx",
		},
		{
			name: "check overrides policy",
			rule: Rule{
				ID:     "X",
				Marker: "NoManualSet",
				Policy: PolicyNever,
				Check: func(c *Context) bool {
					return c.Top().Kind == scopes.ScopeMethod
				},
			},
			pattern: ".....xx.",
		},
		{
			name:    "other marker",
			rule:    Rule{ID: "X", Marker: "OwnerSet", Policy: PolicyNever},
			pattern: "........",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var b strings.Builder
			for _, c := range ctxs {
				c := *c
				if tt.pkg != "" {
					c.Package = tt.pkg
				}

				if tt.rule.Violates(&c) {
					b.WriteByte('x')
				} else {
					b.WriteByte('.')
				}
			}

			if got := b.String(); got != tt.pattern {
				t.Errorf("violation pattern %q expected, got %q", tt.pattern, got)
			}
		})
	}
}

func TestRule_Applies(t *testing.T) {
	r := Rule{ID: "X", Marker: "NoManualSet", Policy: PolicyNever}
	ann := []model.Annotation{{Name: "NoManualSet"}}

	tests := []struct {
		name string
		sym  *model.Symbol
		want bool
	}{
		{
			name: "field",
			sym:  &model.Symbol{Name: "f", Kind: model.SymbolField, Annotations: ann},
			want: true,
		},
		{
			name: "package variable",
			sym:  &model.Symbol{Name: "V", Kind: model.SymbolVar, Annotations: ann},
			want: false,
		},
		{
			name: "unmarked field",
			sym:  &model.Symbol{Name: "f", Kind: model.SymbolField},
			want: false,
		},
		{
			name: "unresolved",
			sym:  nil,
			want: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := r.Applies(tt.sym); got != tt.want {
				t.Errorf("Applies() = %v, want %v", got, tt.want)
			}
			if got := r.Violates(&Context{Symbol: tt.sym}); got != tt.want {
				t.Errorf("Violates() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestRule_Format(t *testing.T) {
	r := Rule{ID: "RO001", Marker: "NoManualSet", Message: "{rule}: {owner}.{symbol} is {marker}, {symbol}"}

	got := r.Format(&model.Symbol{Name: "blabla", Owner: "Examples"})
	if want := "RO001: Examples.blabla is NoManualSet, blabla"; got != want {
		t.Errorf("%q expected, got %q", want, got)
	}

	got = r.Format(&model.Symbol{Name: "inner"})
	if want := "RO001: <anonymous>.inner is NoManualSet, inner"; got != want {
		t.Errorf("%q expected, got %q", want, got)
	}

	r.Message = "{symbol} is {marker}: {args}"
	got = r.Format(&model.Symbol{
		Name: "cache",
		Annotations: []model.Annotation{
			{Name: "Frozen", Args: []string{"ignored"}},
			{Name: "NoManualSet", Args: []string{"filled", "lazily"}},
		},
	})
	if want := "cache is NoManualSet: filled lazily"; got != want {
		t.Errorf("%q expected, got %q", want, got)
	}
}

const constructorNamesSource = `package a

type Box[T any] struct {
	//fieldguard:NoManualSet
	value T
}

func New() *Box[int] {
	b := &Box[int]{}
	b.value = 1
	return b
}

func NewBox() *Box[int] {
	b := &Box[int]{}
	b.value = 2
	return b
}

func newBox() Box[int] {
	var b Box[int]
	b.value = 3
	return b
}

func Newsletter() *Box[int] {
	b := &Box[int]{}
	b.value = 4
	return b
}

func newer() *Box[int] {
	b := &Box[int]{}
	b.value = 5
	return b
}

func NewÉcrin() *Box[int] {
	b := &Box[int]{}
	b.value = 6
	return b
}
`

func TestRule_ConstructorNames(t *testing.T) {
	u := modeltest.Load(t, "example.com/a", map[string]string{"a.go": constructorNamesSource})
	idx, err := scopes.Build(u.Info, u.Files[0])
	if err != nil {
		t.Fatal(err)
	}

	r := Rule{ID: "X", Marker: "NoManualSet", Policy: PolicyConstructor}

	var b strings.Builder
	for s := range locate.Sites(u, nil, locate.WriteModeSimple) {
		c := &Context{
			Site:    s,
			Symbol:  s.Target,
			Scopes:  idx.Path(s.Pos),
			Package: u.Path(),
		}
		if r.Violates(c) {
			b.WriteByte('x')
		} else {
			b.WriteByte('.')
		}
	}

	if want, got := "...xx.", b.String(); got != want {
		t.Errorf("violation pattern %q expected, got %q", want, got)
	}
}
