package osr

import (
	"errors"
	"testing"
)

func TestNewFrameBounds(t *testing.T) {
	tests := []struct {
		name    string
		x, y    float32
		wantErr error
	}{
		{"center", 256, 192, nil},
		{"min corner", -512, -384, nil},
		{"max corner", 512, 384, nil},
		{"x too large", 600, 0, ErrXOutOfRange},
		{"x too small", -512.5, 0, ErrXOutOfRange},
		{"y too large", 0, 384.5, ErrYOutOfRange},
		{"y too small", 0, -400, ErrYOutOfRange},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f, err := NewFrame(17, tt.x, tt.y, KeyM1)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("NewFrame() error = %v, want %v", err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("NewFrame() error = %v", err)
			}
			if f.X != tt.x || f.Y != tt.y || f.Delta != 17 || f.Keys != KeyM1 {
				t.Errorf("NewFrame() = %+v", f)
			}
		})
	}
}

func TestMirrorHardRock(t *testing.T) {
	r := &Replay{Frames: []Frame{
		{Delta: 0, X: 100, Y: 0, Keys: KeyM1},
		{Delta: 17, X: 200, Y: 192, Keys: KeyNone},
		{Delta: 16, X: 300, Y: 384, Keys: KeyK1},
	}}

	got := r.MirrorHardRock()

	want := []Frame{
		{Delta: 0, X: 100, Y: 384, Keys: KeyM1},
		{Delta: 17, X: 200, Y: 192, Keys: KeyNone},
		{Delta: 16, X: 300, Y: 0, Keys: KeyK1},
	}
	if len(got) != len(want) {
		t.Fatalf("len = %d, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("frame[%d] = %+v, want %+v", i, got[i], want[i])
		}
	}

	// The receiver must be untouched.
	if r.Frames[0].Y != 0 || r.Frames[2].Y != 384 {
		t.Errorf("receiver frames modified: %+v", r.Frames)
	}
}

func TestMirrorHardRockEmpty(t *testing.T) {
	r := &Replay{}
	if got := r.MirrorHardRock(); got != nil {
		t.Errorf("MirrorHardRock() = %v, want nil", got)
	}
}

func TestPlayer(t *testing.T) {
	r := &Replay{}
	if got := r.Player(); got != "" {
		t.Errorf("Player() = %q, want empty", got)
	}

	name := "WhiteCat"
	r.PlayerName = &name
	if got := r.Player(); got != "WhiteCat" {
		t.Errorf("Player() = %q, want %q", got, name)
	}
}
