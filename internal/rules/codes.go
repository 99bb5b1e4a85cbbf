package rules

import "fmt"

// Code is a builtin rule code (RO-series).
type Code int

const (
	codeInvalid Code = iota

	RO001NoManualSet
	RO002OwnerSet
	RO003PackageSet
	RO004Frozen
)

// ID returns the bare code, like "RO001".
func (c Code) ID() string {
	switch c {
	case RO001NoManualSet:
		return "RO001"
	case RO002OwnerSet:
		return "RO002"
	case RO003PackageSet:
		return "RO003"
	case RO004Frozen:
		return "RO004"
	default:
		return fmt.Sprintf("RO-unknown(%d)", c)
	}
}

// Name returns the short name of the rule which is also its marker.
func (c Code) Name() string {
	switch c {
	case RO001NoManualSet:
		return "NoManualSet"
	case RO002OwnerSet:
		return "OwnerSet"
	case RO003PackageSet:
		return "PackageSet"
	case RO004Frozen:
		return "Frozen"
	default:
		return ""
	}
}

// String returns the canonical code and short name of the rule.
// Example: "RO001: NoManualSet"
func (c Code) String() string {
	if c.Name() == "" {
		return fmt.Sprintf("rule-unknown(%d)", c)
	}

	return c.ID() + ": " + c.Name()
}

// Description returns the human-readable explanation of the rule.
func (c Code) Description() string {
	switch c {
	case RO001NoManualSet:
		return "Field is set only by constructors of its type."
	case RO002OwnerSet:
		return "Field is set only by constructors and methods of its type."
	case RO003PackageSet:
		return "Field is set only inside its package."
	case RO004Frozen:
		return "Field is never assigned after declaration."
	default:
		return fmt.Sprintf("unknown-rule(%d)", c)
	}
}

func NoManualSet() Code { return RO001NoManualSet }
func OwnerSet() Code    { return RO002OwnerSet }
func PackageSet() Code  { return RO003PackageSet }
func Frozen() Code      { return RO004Frozen }
