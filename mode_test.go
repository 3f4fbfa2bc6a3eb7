package osr

import (
	"errors"
	"testing"
)

func TestParseGameMode(t *testing.T) {
	tests := []struct {
		b       byte
		want    GameMode
		wantErr bool
	}{
		{0x00, ModeStandard, false},
		{0x01, ModeTaiko, false},
		{0x02, ModeCatchTheBeat, false},
		{0x03, ModeMania, false},
		{0x04, 0, true},
		{0xff, 0, true},
	}

	for _, tt := range tests {
		got, err := ParseGameMode(tt.b)
		if tt.wantErr {
			if !errors.Is(err, ErrInvalidGameMode) {
				t.Errorf("ParseGameMode(0x%02x) error = %v, want ErrInvalidGameMode", tt.b, err)
			}
			continue
		}
		if err != nil {
			t.Errorf("ParseGameMode(0x%02x) error = %v", tt.b, err)
			continue
		}
		if got != tt.want {
			t.Errorf("ParseGameMode(0x%02x) = %v, want %v", tt.b, got, tt.want)
		}
	}
}

func TestGameModeString(t *testing.T) {
	tests := []struct {
		mode GameMode
		want string
	}{
		{ModeStandard, "osu!"},
		{ModeTaiko, "taiko"},
		{ModeCatchTheBeat, "catch"},
		{ModeMania, "mania"},
		{GameMode(9), "GameMode(9)"},
	}

	for _, tt := range tests {
		if got := tt.mode.String(); got != tt.want {
			t.Errorf("GameMode(%d).String() = %q, want %q", uint8(tt.mode), got, tt.want)
		}
	}
}
