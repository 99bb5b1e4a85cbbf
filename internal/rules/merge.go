package rules

import (
	"errors"
	"fmt"
	"slices"
)

// Merge returns base with custom rules applied over it. A custom rule with an
// ID present in base replaces that rule in place, other custom rules are
// appended in their order. Neither argument is modified.
func Merge(base, custom []Rule) []Rule {
	res := slices.Clone(base)
	for _, c := range custom {
		i := slices.IndexFunc(res, func(r Rule) bool { return r.ID == c.ID })
		if i < 0 {
			res = append(res, c)
			continue
		}

		res[i] = c
	}

	return res
}

// Validate checks rules for empty or duplicate IDs, missing markers and
// unknown policies.
func Validate(rs []Rule) error {
	var errs []error
	seen := make(map[string]struct{}, len(rs))
	for i, r := range rs {
		if r.ID == "" {
			errs = append(errs, fmt.Errorf("rule #%d: empty id", i))
			continue
		}
		if _, ok := seen[r.ID]; ok {
			errs = append(errs, fmt.Errorf("rule %s: duplicate id", r.ID))
		}
		seen[r.ID] = struct{}{}

		if r.Marker == "" {
			errs = append(errs, fmt.Errorf("rule %s: empty marker", r.ID))
		}
		if r.Check == nil && !r.Policy.Valid() {
			errs = append(errs, fmt.Errorf("rule %s: invalid policy %s", r.ID, r.Policy))
		}
	}

	return errors.Join(errs...)
}

// Enabled returns enabled rules keeping their order.
func Enabled(rs []Rule) []Rule {
	var res []Rule
	for _, r := range rs {
		if r.Enabled {
			res = append(res, r)
		}
	}

	return res
}
