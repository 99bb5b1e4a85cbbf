package rules

import (
	"github.com/sirkon/fieldguard/internal/report"
)

const categoryUsage = "Usage"

// Builtin returns a fresh copy of the builtin rule set in registration order.
func Builtin() []Rule {
	return []Rule{
		builtin(NoManualSet(), PolicyConstructor, report.SeverityError, true,
			"field {symbol} of {owner} marked with {marker} should not be assigned manually"),
		builtin(OwnerSet(), PolicyOwner, report.SeverityWarning, true,
			"field {symbol} marked with {marker} should be assigned by {owner} constructors or methods only"),
		builtin(PackageSet(), PolicyPackage, report.SeverityWarning, true,
			"field {symbol} of {owner} marked with {marker} should not be assigned outside its package"),
		builtin(Frozen(), PolicyNever, report.SeverityError, false,
			"field {symbol} marked with {marker} should never be assigned"),
	}
}

func builtin(code Code, policy Policy, sev report.Severity, enabled bool, msg string) Rule {
	return Rule{
		ID:       code.ID(),
		Title:    code.Description(),
		Category: categoryUsage,
		Severity: sev,
		Enabled:  enabled,
		Message:  msg,
		Marker:   code.Name(),
		Policy:   policy,
	}
}
