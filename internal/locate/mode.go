package locate

import (
	"encoding"
	"fmt"
)

// WriteMode selects statements treated as writes.
type WriteMode int

const (
	// WriteModeSimple yields plain "=" assignments only.
	WriteModeSimple WriteMode = iota

	// WriteModeAll adds compound assignments, inc/dec statements and range
	// clauses assigning to existing variables.
	WriteModeAll
)

var writeModeValueMap = map[WriteMode]string{
	WriteModeSimple: "simple",
	WriteModeAll:    "all",
}

func (m WriteMode) String() string {
	v, ok := writeModeValueMap[m]
	if !ok {
		return fmt.Sprintf("write-mode-invalid(%d)", m)
	}

	return v
}

var (
	_ encoding.TextMarshaler   = WriteModeSimple
	_ encoding.TextUnmarshaler = (*WriteMode)(nil)
)

func (m WriteMode) MarshalText() ([]byte, error) {
	v, ok := writeModeValueMap[m]
	if !ok {
		return nil, fmt.Errorf("cannot marshal invalid WriteMode(%d)", m)
	}

	return []byte(v), nil
}

func (m *WriteMode) UnmarshalText(b []byte) error {
	text := string(b)
	for k, v := range writeModeValueMap {
		if v == text {
			*m = k
			return nil
		}
	}

	return fmt.Errorf("unknown write mode %q", text)
}
