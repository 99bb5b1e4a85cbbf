package model

import (
	"strings"
)

// MarkedField is an object fact exported for every annotated field or package
// variable, so analyzers of dependent packages see annotations of symbols they
// cannot parse themselves.
type MarkedField struct {
	Kind        SymbolKind
	Owner       string
	Annotations []Annotation
}

// AFact marks MarkedField as an analysis fact.
func (*MarkedField) AFact() {}

func (f *MarkedField) String() string {
	names := make([]string, len(f.Annotations))
	for i, a := range f.Annotations {
		names[i] = a.Name
	}

	return "marked " + strings.Join(names, ",")
}
