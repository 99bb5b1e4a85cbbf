package rules

import (
	"encoding"
	"fmt"
)

// Policy tells where a marked field may be assigned.
type Policy int

const (
	policyInvalid Policy = iota

	// PolicyConstructor permits assignments inside constructors of the owner type.
	PolicyConstructor

	// PolicyOwner permits assignments inside constructors and methods of the owner type.
	PolicyOwner

	// PolicyPackage permits assignments anywhere inside the declaring package.
	PolicyPackage

	// PolicyNever permits no assignments at all.
	PolicyNever
)

var policyValueMap = map[Policy]string{
	PolicyConstructor: "constructor",
	PolicyOwner:       "owner",
	PolicyPackage:     "package",
	PolicyNever:       "never",
}

func (p Policy) String() string {
	v, ok := policyValueMap[p]
	if !ok {
		return fmt.Sprintf("policy-invalid(%d)", p)
	}

	return v
}

// Valid checks if p is a known policy.
func (p Policy) Valid() bool {
	_, ok := policyValueMap[p]
	return ok
}

var (
	_ encoding.TextMarshaler   = PolicyNever
	_ encoding.TextUnmarshaler = (*Policy)(nil)
)

func (p Policy) MarshalText() ([]byte, error) {
	v, ok := policyValueMap[p]
	if !ok {
		return nil, fmt.Errorf("cannot marshal invalid Policy(%d)", p)
	}

	return []byte(v), nil
}

func (p *Policy) UnmarshalText(b []byte) error {
	text := string(b)
	for k, v := range policyValueMap {
		if v == text {
			*p = k
			return nil
		}
	}

	return fmt.Errorf("unknown policy %q", text)
}
