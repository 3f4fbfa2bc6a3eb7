package osr

import (
	"strconv"
	"strings"
)

// Mods is the gameplay modifier bit-set of a replay. The value is kept
// verbatim as it appeared on the wire: bits the library does not know about
// survive a decode/encode round trip untouched, so replays written by newer
// clients are never quietly rewritten.
type Mods uint32

// Named modifier bits, per the published scoring flag assignments.
const (
	ModNoFail Mods = 1 << iota
	ModEasy
	ModTouchDevice
	ModHidden
	ModHardRock
	ModSuddenDeath
	ModDoubleTime
	ModRelax
	ModHalfTime
	ModNightcore // only set together with ModDoubleTime
	ModFlashlight
	ModAutoplay
	ModSpunOut
	ModAutopilot
	ModPerfect // only set together with ModSuddenDeath
	ModKey4
	ModKey5
	ModKey6
	ModKey7
	ModKey8
	ModFadeIn
	ModRandom
	ModCinema
	ModTarget
	ModKey9
	ModKeyCoop
	ModKey1
	ModKey3
	ModKey2
	ModScoreV2
	ModMirror
)

// ModNone is the empty modifier set.
const ModNone Mods = 0

// modNames is ordered by bit position.
var modNames = []string{
	"NF", "EZ", "TD", "HD", "HR", "SD", "DT", "RX", "HT", "NC",
	"FL", "AT", "SO", "AP", "PF", "4K", "5K", "6K", "7K", "8K",
	"FI", "RD", "CN", "TP", "9K", "CO", "1K", "3K", "2K", "V2", "MR",
}

// knownMask covers every named bit.
const knownMask = Mods(1)<<31 - 1

// Has reports whether every bit in flag is set.
func (m Mods) Has(flag Mods) bool {
	return m&flag == flag
}

// Known returns the modifier set restricted to named bits.
func (m Mods) Known() Mods {
	return m & knownMask
}

// Unknown returns the bits the library has no name for.
func (m Mods) Unknown() Mods {
	return m &^ knownMask
}

// String returns the short mod acronyms joined with commas, e.g. "HD,HR".
// Unrecognized bits are rendered as a hex remainder. The empty set is "None".
func (m Mods) String() string {
	if m == ModNone {
		return "None"
	}

	var parts []string
	for i, name := range modNames {
		if m&(1<<i) != 0 {
			parts = append(parts, name)
		}
	}
	if rest := m.Unknown(); rest != 0 {
		parts = append(parts, "0x"+strconv.FormatUint(uint64(rest), 16))
	}
	return strings.Join(parts, ",")
}
