// Package rules defines mutation constraint rules checked by fieldguard.
//
// A rule binds a marker annotation to a policy describing where fields carrying
// that marker may be assigned. Every assignment outside a permitted location is
// a violation reported under the rule ID.
//
// # Codes
//
// Builtin rules have stable codes of the form “RO<NNN>: <Name>”:
//
//	RO001: NoManualSet  assigned only inside constructors of the owner type
//	RO002: OwnerSet     assigned inside constructors and methods of the owner type
//	RO003: PackageSet   assigned only inside the declaring package
//	RO004: Frozen       never assigned after declaration, disabled by default
//
// Example:
//
//	rules.RO001NoManualSet.String()      → "RO001: NoManualSet"
//	rules.RO001NoManualSet.Description() → "Field is set only by constructors of its type."
//
// # Policies
//
// A policy is one of "constructor", "owner", "package" or "never". Constructors
// are top level functions with a configured name prefix ("New" and "new" by
// default) whose results include the declaring type, by value or by pointer.
// Function literals inside a permitted function share its permission.
//
// Every policy additionally permits assignments inside functions listed as
// initializers:
//
//	initializers:
//	  - '"example.com/pkg".Reset'
//	  - '"example.com/pkg".Builder.Build'
//
// # Custom rules
//
// Custom rules are merged over the builtin set by ID: a rule with a known ID
// replaces the builtin one in place, others are appended in their order. A
// custom rule may set Check to replace its policy with an arbitrary predicate.
//
// # Notes
//
//   - Rule codes are stable; never renumber existing codes.
//   - Only struct fields are checked. Annotated package variables are ignored.
package rules
