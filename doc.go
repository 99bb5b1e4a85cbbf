// Package fieldguard reports assignments to annotated struct fields made
// outside of the locations their rules permit.
//
// # Overview
//
// A field is annotated with a comment directive or with a struct tag:
//
//	type Examples struct {
//	    //fieldguard:NoManualSet
//	    blabla int
//
//	    counter int `fieldguard:"OwnerSet,PackageSet"`
//	}
//
// Every annotation name is a marker. A rule binds a marker to a policy telling
// where the field may be assigned:
//
//	func NewExamples() *Examples {
//	    e := &Examples{}
//	    e.blabla = 5 // fine: constructor of Examples
//	    return e
//	}
//
//	func (e *Examples) SetBlabla(value int) {
//	    e.blabla = value // RO001: field blabla of Examples marked with NoManualSet should not be assigned manually
//	}
//
// # Architecture
//
// The analysis runs as a pipeline over a single type-checked package:
//
//  1. Model: collect fields and package variables with their annotations,
//     export annotations of the package as facts for its dependants.
//  2. Locate: enumerate assignment sites in source order.
//  3. Evaluate: check every site targeting a marked field against every enabled
//     rule whose marker the field carries.
//  4. Report: hand diagnostics over to the analysis driver.
//
// # Rules
//
// Builtin rules are RO001 NoManualSet, RO002 OwnerSet, RO003 PackageSet and
// RO004 Frozen, the latter disabled by default. Rules are adjusted with a YAML
// file passed with the -config flag or extended programmatically with
// [NewAnalyzer].
//
// # Current Limitations
//
//   - Writes through pointers to fields (p := &e.blabla; *p = 1) are not tracked.
//   - Reflection and unsafe writes are not tracked.
package fieldguard
