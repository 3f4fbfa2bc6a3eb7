// Package lifebar implements the pipe-delimited life-bar timeline format: an
// optional leading base time, then "life,time" event pairs, closed by a bare
// "1," terminator token.
package lifebar

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// ErrEvent indicates an event token with a comma failed numeric parsing.
var ErrEvent = errors.New("lifebar: malformed life bar event")

// Event is one life sample.
type Event struct {
	// Life is the remaining life fraction, 0 (empty bar) to 1 (full).
	Life float32
	// Time is milliseconds into the song.
	Time uint32
}

// Timeline is a parsed life-bar graph. BaseTime keeps its presence bit: a
// timeline decoded without a leading integer token re-serializes without one.
type Timeline struct {
	BaseTime *uint32
	Events   []Event
}

// Parse decodes the pipe-delimited timeline text. The first token is the
// base time when it parses as a bare unsigned integer. Empty tokens and
// tokens without a comma are skipped. A token whose second field is empty is
// the stream terminator, not an event.
func Parse(s string) (Timeline, error) {
	var tl Timeline
	if s == "" {
		return tl, nil
	}

	tokens := strings.Split(s, "|")

	if len(tokens) > 0 && !strings.Contains(tokens[0], ",") {
		if base, err := strconv.ParseUint(tokens[0], 10, 32); err == nil {
			v := uint32(base)
			tl.BaseTime = &v
			tokens = tokens[1:]
		}
	}

	for _, token := range tokens {
		if token == "" || !strings.Contains(token, ",") {
			continue
		}
		if isTerminator(token) {
			continue
		}

		ev, err := parseEvent(token)
		if err != nil {
			return Timeline{}, err
		}
		tl.Events = append(tl.Events, ev)
	}

	return tl, nil
}

// isTerminator reports whether token is the closing "v," form with no second
// field. The canonical writer emits "1," but any bare trailing value is
// treated the same way rather than being rejected as a malformed event.
func isTerminator(token string) bool {
	i := strings.IndexByte(token, ',')
	return i >= 0 && token[i+1:] == ""
}

func parseEvent(token string) (Event, error) {
	parts := strings.Split(token, ",")
	if len(parts) != 2 {
		return Event{}, fmt.Errorf("%w: %q", ErrEvent, token)
	}

	life, err := strconv.ParseFloat(parts[0], 32)
	if err != nil {
		return Event{}, fmt.Errorf("%w: life %q", ErrEvent, parts[0])
	}
	ms, err := strconv.ParseUint(parts[1], 10, 32)
	if err != nil {
		return Event{}, fmt.Errorf("%w: time %q", ErrEvent, parts[1])
	}

	return Event{Life: float32(life), Time: uint32(ms)}, nil
}

// Serialize emits the timeline in wire text form. A timeline with no base
// time and no events serializes to the empty string, never to the
// terminator alone.
func (tl Timeline) Serialize() string {
	if tl.BaseTime == nil && len(tl.Events) == 0 {
		return ""
	}

	parts := make([]string, 0, len(tl.Events)+2)
	if tl.BaseTime != nil {
		parts = append(parts, strconv.FormatUint(uint64(*tl.BaseTime), 10))
	}
	for _, ev := range tl.Events {
		parts = append(parts,
			strconv.FormatFloat(float64(ev.Life), 'g', -1, 32)+","+strconv.FormatUint(uint64(ev.Time), 10))
	}
	parts = append(parts, "1,")

	return strings.Join(parts, "|")
}
