package osr

import "testing"

func TestModBitAssignments(t *testing.T) {
	tests := []struct {
		mod  Mods
		want uint32
	}{
		{ModNoFail, 1},
		{ModEasy, 2},
		{ModHidden, 8},
		{ModHardRock, 16},
		{ModDoubleTime, 64},
		{ModNightcore, 512},
		{ModPerfect, 1 << 14},
		{ModKey4, 1 << 15},
		{ModKey5, 1 << 16},
		{ModKey6, 1 << 17},
		{ModKey7, 1 << 18},
		{ModKey8, 1 << 19},
		{ModFadeIn, 1 << 20},
		{ModRandom, 1 << 21},
		{ModCinema, 1 << 22},
		{ModTarget, 1 << 23},
		{ModKey9, 1 << 24},
		{ModKeyCoop, 1 << 25},
		{ModKey1, 1 << 26},
		{ModKey3, 1 << 27},
		{ModKey2, 1 << 28},
		{ModScoreV2, 1 << 29},
		{ModMirror, 1 << 30},
	}

	for _, tt := range tests {
		if uint32(tt.mod) != tt.want {
			t.Errorf("mod bit = %d, want %d", uint32(tt.mod), tt.want)
		}
	}
}

func TestModsHas(t *testing.T) {
	m := ModHidden | ModHardRock

	if !m.Has(ModHidden) {
		t.Error("Has(ModHidden) = false, want true")
	}
	if !m.Has(ModHidden | ModHardRock) {
		t.Error("Has(ModHidden|ModHardRock) = false, want true")
	}
	if m.Has(ModFlashlight) {
		t.Error("Has(ModFlashlight) = true, want false")
	}
	if m.Has(ModHidden | ModFlashlight) {
		t.Error("Has(ModHidden|ModFlashlight) = true, want false")
	}
}

func TestModsUnknownBitsPreserved(t *testing.T) {
	m := ModHidden | Mods(1<<31)

	if got := m.Known(); got != ModHidden {
		t.Errorf("Known() = %#x, want %#x", uint32(got), uint32(ModHidden))
	}
	if got := m.Unknown(); got != Mods(1<<31) {
		t.Errorf("Unknown() = %#x, want %#x", uint32(got), uint32(1)<<31)
	}
}

func TestModsString(t *testing.T) {
	tests := []struct {
		mods Mods
		want string
	}{
		{ModNone, "None"},
		{ModHidden, "HD"},
		{ModHidden | ModHardRock, "HD,HR"},
		{ModDoubleTime | ModNightcore, "DT,NC"},
		{Mods(1 << 31), "0x80000000"},
		{ModNoFail | Mods(1<<31), "NF,0x80000000"},
	}

	for _, tt := range tests {
		if got := tt.mods.String(); got != tt.want {
			t.Errorf("Mods(%#x).String() = %q, want %q", uint32(tt.mods), got, tt.want)
		}
	}
}
