package model

import (
	"go/ast"
	"go/token"
	"reflect"
	"strconv"
	"strings"
)

const (
	// DirectivePrefix starts a comment directive attaching an annotation.
	DirectivePrefix = "//fieldguard:"

	// TagKey is a struct tag key whose comma separated items are annotations.
	TagKey = "fieldguard"
)

// Annotation is a named marker attached to a declaration.
type Annotation struct {
	Name string
	Args []string
}

func (a Annotation) String() string {
	if len(a.Args) == 0 {
		return a.Name
	}

	return a.Name + "(" + strings.Join(a.Args, " ") + ")"
}

// ParseDirectives extracts annotations from directive comments of the given groups.
//
//	//fieldguard:NoManualSet              // Name: "NoManualSet"
//	//fieldguard:NoManualSet lazy cached  // Name: "NoManualSet", Args: ["lazy", "cached"]
//
// Comments having a space after the slashes are not directives.
func ParseDirectives(groups ...*ast.CommentGroup) []Annotation {
	var res []Annotation
	for _, group := range groups {
		if group == nil {
			continue
		}

		for _, c := range group.List {
			rest, ok := strings.CutPrefix(c.Text, DirectivePrefix)
			if !ok {
				continue
			}

			fields := strings.Fields(rest)
			if len(fields) == 0 || !token.IsIdentifier(fields[0]) {
				continue
			}

			a := Annotation{Name: fields[0]}
			if len(fields) > 1 {
				a.Args = fields[1:]
			}
			res = append(res, a)
		}
	}

	return res
}

// ParseTag extracts annotations from the fieldguard key of a struct field tag.
//
//	`fieldguard:"NoManualSet,OwnerSet"` // two annotations
//	`fieldguard:"PackageSet=internal"`  // Name: "PackageSet", Args: ["internal"]
func ParseTag(tag *ast.BasicLit) []Annotation {
	if tag == nil {
		return nil
	}

	raw, err := strconv.Unquote(tag.Value)
	if err != nil {
		return nil
	}

	value, ok := reflect.StructTag(raw).Lookup(TagKey)
	if !ok {
		return nil
	}

	var res []Annotation
	for _, item := range strings.Split(value, ",") {
		item = strings.TrimSpace(item)
		name, arg, hasArg := strings.Cut(item, "=")
		if !token.IsIdentifier(name) {
			continue
		}

		a := Annotation{Name: name}
		if hasArg {
			a.Args = []string{arg}
		}
		res = append(res, a)
	}

	return res
}
