package osr

import "fmt"

// GameMode identifies the ruleset a replay was recorded in.
type GameMode uint8

// The four rulesets, in wire byte order.
const (
	ModeStandard GameMode = iota
	ModeTaiko
	ModeCatchTheBeat
	ModeMania
)

// ParseGameMode maps a wire byte to a GameMode. Any byte outside 0x00-0x03
// fails with ErrInvalidGameMode.
func ParseGameMode(b byte) (GameMode, error) {
	m := GameMode(b)
	if m > ModeMania {
		return 0, fmt.Errorf("%w: 0x%02x", ErrInvalidGameMode, b)
	}
	return m, nil
}

// String returns the conventional mode name.
func (m GameMode) String() string {
	switch m {
	case ModeStandard:
		return "osu!"
	case ModeTaiko:
		return "taiko"
	case ModeCatchTheBeat:
		return "catch"
	case ModeMania:
		return "mania"
	default:
		return fmt.Sprintf("GameMode(%d)", uint8(m))
	}
}
