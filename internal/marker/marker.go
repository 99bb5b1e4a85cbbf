// Package marker answers whether a symbol carries a named annotation.
package marker

import (
	"github.com/sirkon/fieldguard/internal/model"
)

// Has checks if the symbol has an annotation with exactly the given name.
// Names are case sensitive.
func Has(sym *model.Symbol, name string) bool {
	_, ok := Find(sym, name)
	return ok
}

// Find returns the first annotation of the symbol with the given name.
func Find(sym *model.Symbol, name string) (model.Annotation, bool) {
	if sym == nil {
		return model.Annotation{}, false
	}

	for _, a := range sym.Annotations {
		if a.Name == name {
			return a, true
		}
	}

	return model.Annotation{}, false
}

// Names lists annotation names of the symbol in declaration order.
func Names(sym *model.Symbol) []string {
	if sym == nil || len(sym.Annotations) == 0 {
		return nil
	}

	res := make([]string, len(sym.Annotations))
	for i, a := range sym.Annotations {
		res[i] = a.Name
	}

	return res
}
