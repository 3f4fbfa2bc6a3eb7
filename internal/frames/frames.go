// Package frames implements the decompressed frame-stream text format of a
// replay: comma-separated records of four pipe-separated fields, optionally
// terminated by a sentinel record carrying the session's RNG seed.
package frames

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// seedPrefix marks the sentinel record. Its fourth field is the RNG seed and
// no frames after it are part of the stream.
const seedPrefix = "-12345|0|0|"

// ErrParse indicates a frame token that must not be skipped failed to parse:
// the sentinel seed field, or any malformed token when strict mode is on.
var ErrParse = errors.New("frames: malformed frame token")

// Frame is one input sample.
type Frame struct {
	// Delta is the time in milliseconds since the previous frame.
	Delta int64
	// X and Y are the cursor position.
	X float32
	Y float32
	// Keys is the raw pressed-key bit-set.
	Keys uint32
}

// Stream is a parsed frame stream: ordered frames plus the optional seed.
// The seed is only present on replays from clients new enough to write the
// sentinel record.
type Stream struct {
	Frames []Frame
	Seed   *uint32
}

// Parse decodes the delimited frame text. Ordinary tokens that fail
// field-by-field parsing are skipped, not fatal; this is the format's
// best-effort policy and strict reverses it. A malformed seed field in the
// sentinel record is always fatal. The number of skipped tokens is returned
// alongside the stream.
func Parse(text string, strict bool) (Stream, int, error) {
	var s Stream
	skipped := 0

	for _, token := range strings.Split(text, ",") {
		if token == "" {
			// Delimiter artifact: every record carries a trailing comma,
			// so a well-formed stream always ends in one empty token.
			continue
		}

		if strings.HasPrefix(token, seedPrefix) {
			fields := strings.Split(token, "|")
			seed, err := strconv.ParseUint(fields[3], 10, 32)
			if err != nil {
				return Stream{}, 0, fmt.Errorf("%w: seed field %q", ErrParse, fields[3])
			}
			v := uint32(seed)
			s.Seed = &v
			break
		}

		f, err := parseFrame(token)
		if err != nil {
			if strict {
				return Stream{}, 0, err
			}
			skipped++
			continue
		}
		s.Frames = append(s.Frames, f)
	}

	return s, skipped, nil
}

func parseFrame(token string) (Frame, error) {
	fields := strings.Split(token, "|")
	if len(fields) != 4 {
		return Frame{}, fmt.Errorf("%w: %q has %d fields", ErrParse, token, len(fields))
	}

	delta, err := strconv.ParseInt(fields[0], 10, 64)
	if err != nil {
		return Frame{}, fmt.Errorf("%w: delta %q", ErrParse, fields[0])
	}
	x, err := strconv.ParseFloat(fields[1], 32)
	if err != nil {
		return Frame{}, fmt.Errorf("%w: x %q", ErrParse, fields[1])
	}
	y, err := strconv.ParseFloat(fields[2], 32)
	if err != nil {
		return Frame{}, fmt.Errorf("%w: y %q", ErrParse, fields[2])
	}
	keys, err := strconv.ParseUint(fields[3], 10, 32)
	if err != nil {
		return Frame{}, fmt.Errorf("%w: keys %q", ErrParse, fields[3])
	}

	return Frame{
		Delta: delta,
		X:     float32(x),
		Y:     float32(y),
		Keys:  uint32(keys),
	}, nil
}

// Serialize emits the stream in wire text form: every frame with a trailing
// comma, then the sentinel record if a seed is present. Without a seed the
// sentinel is omitted entirely.
func (s Stream) Serialize() string {
	var b strings.Builder
	for _, f := range s.Frames {
		b.WriteString(strconv.FormatInt(f.Delta, 10))
		b.WriteByte('|')
		b.WriteString(formatCoord(f.X))
		b.WriteByte('|')
		b.WriteString(formatCoord(f.Y))
		b.WriteByte('|')
		b.WriteString(strconv.FormatUint(uint64(f.Keys), 10))
		b.WriteByte(',')
	}
	if s.Seed != nil {
		b.WriteString(seedPrefix)
		b.WriteString(strconv.FormatUint(uint64(*s.Seed), 10))
		b.WriteByte(',')
	}
	return b.String()
}

func formatCoord(v float32) string {
	return strconv.FormatFloat(float64(v), 'g', -1, 32)
}
