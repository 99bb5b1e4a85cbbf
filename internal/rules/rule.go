package rules

import (
	"slices"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/sirkon/fieldguard/internal/locate"
	"github.com/sirkon/fieldguard/internal/marker"
	"github.com/sirkon/fieldguard/internal/model"
	"github.com/sirkon/fieldguard/internal/report"
	"github.com/sirkon/fieldguard/internal/scopes"
)

// DefaultConstructorPrefixes are name prefixes of constructor functions used
// when a rule sets none.
var DefaultConstructorPrefixes = []string{"New", "new"}

// Predicate reports whether the assignment described by the context violates a rule.
type Predicate func(c *Context) bool

// Context describes an assignment to a marked symbol.
type Context struct {
	Site   locate.Site
	Symbol *model.Symbol

	// Scopes are function scopes enclosing the site, outermost first.
	Scopes []*scopes.Scope

	// Package is the import path of the package being analyzed.
	Package string
}

// Top returns the outermost enclosing scope, nil at package level.
func (c *Context) Top() *scopes.Scope {
	if len(c.Scopes) == 0 {
		return nil
	}

	return c.Scopes[0]
}

// Rule is a mutation constraint applied to symbols carrying its marker.
type Rule struct {
	ID       string
	Title    string
	Category string
	Severity report.Severity
	Enabled  bool

	// Message is a template of the diagnostic message. Placeholders {symbol},
	// {owner}, {marker} and {rule} are substituted. {args} is replaced with
	// arguments of the marker annotation joined with spaces.
	Message string

	Marker string
	Policy Policy

	// ConstructorPrefixes override DefaultConstructorPrefixes.
	ConstructorPrefixes []string

	// Initializers are functions permitted to assign regardless of the policy.
	Initializers []Reference

	// Check replaces the policy when set.
	Check Predicate
}

// Applies checks if the rule constrains the symbol. Only struct fields are
// constrained.
func (r *Rule) Applies(sym *model.Symbol) bool {
	if sym == nil || sym.Kind != model.SymbolField {
		return false
	}

	return marker.Has(sym, r.Marker)
}

// Violates checks if the assignment is not permitted by the rule.
func (r *Rule) Violates(c *Context) bool {
	if !r.Applies(c.Symbol) {
		return false
	}

	if r.Check != nil {
		return r.Check(c)
	}

	if top := c.Top(); top != nil {
		for _, ref := range r.Initializers {
			if ref.Matches(top) {
				return false
			}
		}
	}

	switch r.Policy {
	case PolicyConstructor:
		return !r.inConstructor(c)
	case PolicyOwner:
		return !r.inConstructor(c) && !inMethod(c)
	case PolicyPackage:
		return c.Package != c.Symbol.Package
	default:
		return true
	}
}

// Format renders the message template for the symbol.
func (r *Rule) Format(sym *model.Symbol) string {
	owner := sym.Owner
	if owner == "" {
		owner = "<anonymous>"
	}

	var args string
	if a, ok := marker.Find(sym, r.Marker); ok {
		args = strings.Join(a.Args, " ")
	}

	return strings.NewReplacer(
		"{symbol}", sym.Name,
		"{owner}", owner,
		"{marker}", r.Marker,
		"{rule}", r.ID,
		"{args}", args,
	).Replace(r.Message)
}

// Info describes the rule for listings.
func (r *Rule) Info() Info {
	return Info{
		ID:       r.ID,
		Title:    r.Title,
		Category: r.Category,
		Severity: r.Severity,
		Enabled:  r.Enabled,
		Marker:   r.Marker,
		Policy:   r.Policy,
	}
}

// Info is a rule description exposed to tooling.
type Info struct {
	ID       string          `json:"id"`
	Title    string          `json:"title"`
	Category string          `json:"category"`
	Severity report.Severity `json:"severity"`
	Enabled  bool            `json:"enabled"`
	Marker   string          `json:"marker"`
	Policy   Policy          `json:"policy"`
}

func (r *Rule) prefixes() []string {
	if len(r.ConstructorPrefixes) == 0 {
		return DefaultConstructorPrefixes
	}

	return r.ConstructorPrefixes
}

// inConstructor checks if the site is inside a top level function of the
// declaring package named with a constructor prefix and returning the owner.
func (r *Rule) inConstructor(c *Context) bool {
	top := c.Top()
	if top == nil || top.Kind != scopes.ScopeFunc || c.Symbol.Owner == "" {
		return false
	}
	if c.Package != c.Symbol.Package {
		return false
	}

	if !slices.ContainsFunc(r.prefixes(), func(p string) bool {
		return isConstructorName(top.Name, p)
	}) {
		return false
	}

	return top.Returns(c.Symbol.Package, c.Symbol.Owner)
}

func inMethod(c *Context) bool {
	top := c.Top()
	if top == nil || top.Kind != scopes.ScopeMethod || c.Symbol.Owner == "" {
		return false
	}

	return c.Package == c.Symbol.Package && top.Recv == c.Symbol.Owner
}

// isConstructorName checks if name is the prefix itself or the prefix followed
// by an upper case letter: New, NewBox and newBox but not Newsletter.
func isConstructorName(name, prefix string) bool {
	rest, ok := strings.CutPrefix(name, prefix)
	if !ok {
		return false
	}
	if rest == "" {
		return true
	}

	r, _ := utf8.DecodeRuneInString(rest)
	return unicode.IsUpper(r)
}
