package osr

import (
	"fmt"
	"time"
)

// Playfield coordinate bounds tolerated for a frame. The playfield proper is
// 512x384; recorded cursors may travel one playfield width off-screen.
const (
	MinFrameX = -512
	MaxFrameX = 512
	MinFrameY = -384
	MaxFrameY = 384
)

// mirrorAxisY is the horizontal axis the hard-rock modifier flips about.
const mirrorAxisY = 384

// Replay is a fully decoded .osr record. Field order mirrors the wire
// layout. Nullable strings are carried as pointers: a nil pointer is an
// absent field on the wire, a pointer to "" is a present-but-empty one, and
// the two are never collapsed.
type Replay struct {
	Mode        GameMode
	GameVersion uint32
	MapHash     *string
	PlayerName  *string
	ReplayHash  *string

	Count300  uint16
	Count100  uint16
	Count50   uint16
	CountGeki uint16
	CountKatu uint16
	CountMiss uint16

	TotalScore uint32
	MaxCombo   uint16
	FullCombo  bool
	Mods       Mods

	// LifeBar is the raw life-bar string as stored on the wire.
	// ParsedLifeBar decodes it.
	LifeBar *string

	PlayedAt time.Time

	Frames []Frame

	// Seed is present only when the frame stream carried the sentinel seed
	// record; replays from older client revisions have none.
	Seed *uint32

	OnlineScoreID uint64
}

// Player returns the player name, or "" when the field is absent.
func (r *Replay) Player() string {
	if r.PlayerName == nil {
		return ""
	}
	return *r.PlayerName
}

// ParsedLifeBar decodes the raw life-bar string. A nil or empty raw string
// yields an empty timeline.
func (r *Replay) ParsedLifeBar() (*LifeBar, error) {
	if r.LifeBar == nil {
		return &LifeBar{}, nil
	}
	return ParseLifeBar(*r.LifeBar)
}

// MirrorHardRock returns a copy of the frame stream with every cursor
// position flipped vertically, the way the hard-rock modifier transforms the
// playfield. The receiver is not modified.
func (r *Replay) MirrorHardRock() []Frame {
	if len(r.Frames) == 0 {
		return nil
	}

	mirrored := make([]Frame, len(r.Frames))
	for i, f := range r.Frames {
		f.Y = mirrorAxisY - f.Y
		mirrored[i] = f
	}
	return mirrored
}

// Frame is a single input sample: time delta since the previous frame,
// cursor position and pressed buttons.
type Frame struct {
	// Delta is the time since the previous frame, in milliseconds. The
	// first frame's delta is relative to the start of the replay.
	Delta int64

	X, Y float32

	Keys Keys
}

// NewFrame builds a frame and validates the cursor position against the
// tolerated playfield bounds (both intervals closed). Decoding does not call
// this; replays recorded in the wild carry out-of-bounds samples and those
// are preserved as found.
func NewFrame(delta int64, x, y float32, keys Keys) (Frame, error) {
	if x < MinFrameX || x > MaxFrameX {
		return Frame{}, fmt.Errorf("%w: got %g", ErrXOutOfRange, x)
	}
	if y < MinFrameY || y > MaxFrameY {
		return Frame{}, fmt.Errorf("%w: got %g", ErrYOutOfRange, y)
	}

	return Frame{Delta: delta, X: x, Y: y, Keys: keys}, nil
}
