package osr

import "strings"

// Keys is the pressed-button bit-set carried by each replay frame.
type Keys uint32

// Button bits. The client sets K1/K2 together with M1/M2 when a keyboard
// press is translated to a click; the raw bits are preserved as recorded.
const (
	KeyM1 Keys = 1 << iota
	KeyM2
	KeyK1
	KeyK2
	KeySmoke
)

// KeyNone is the empty button set.
const KeyNone Keys = 0

var keyNames = []string{"M1", "M2", "K1", "K2", "Smoke"}

// Has reports whether every bit in flag is set.
func (k Keys) Has(flag Keys) bool {
	return k&flag == flag
}

// String returns the pressed button names joined with plus signs,
// e.g. "M1+K1". The empty set is "None".
func (k Keys) String() string {
	if k == KeyNone {
		return "None"
	}

	var parts []string
	for i, name := range keyNames {
		if k&(1<<i) != 0 {
			parts = append(parts, name)
		}
	}
	return strings.Join(parts, "+")
}
