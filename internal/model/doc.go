// Package model provides the source model fieldguard works on.
//
// A [Unit] is one type-checked package: its file set, syntax, type
// information and a symbol table of every struct field and package level
// variable declared in it. Each [Symbol] carries the annotations parsed from
// its declaration. Go has no attributes, so annotations are written either as
// comment directives
//
//	type Examples struct {
//	    //fieldguard:NoManualSet
//	    blabla int
//	}
//
// or as struct tags
//
//	type Examples struct {
//	    blabla int `fieldguard:"NoManualSet,OwnerSet"`
//	}
//
// Units are built by [FromPass] for go/analysis drivers and by [FromPackages]
// for go/packages based tools. Both are read-only after construction and safe
// for concurrent use.
package model
