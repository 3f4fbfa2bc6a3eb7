package osr

import "github.com/rhythmkit/osr/internal/lifebar"

// LifeBar is the decoded life-bar timeline of a replay.
type LifeBar struct {
	// BaseTime is the optional leading offset some client revisions write
	// before the event list. Its presence round-trips exactly, including a
	// present zero.
	BaseTime *uint32

	Events []LifeBarEvent
}

// LifeBarEvent is a single life-bar sample: fill level in [0, 1] at a time
// offset in milliseconds.
type LifeBarEvent struct {
	Life float32
	Time uint32
}

// ParseLifeBar decodes the pipe-delimited life-bar string. Malformed event
// numerics fail with ErrLifeBar.
func ParseLifeBar(s string) (*LifeBar, error) {
	tl, err := lifebar.Parse(s)
	if err != nil {
		return nil, err
	}

	lb := &LifeBar{BaseTime: tl.BaseTime}
	if len(tl.Events) > 0 {
		lb.Events = make([]LifeBarEvent, len(tl.Events))
		for i, ev := range tl.Events {
			lb.Events[i] = LifeBarEvent{Life: ev.Life, Time: ev.Time}
		}
	}
	return lb, nil
}

// String serializes the timeline back to its wire form. An empty timeline
// is the empty string; a non-empty one ends with the "1," terminator token.
func (l *LifeBar) String() string {
	tl := lifebar.Timeline{BaseTime: l.BaseTime}
	if len(l.Events) > 0 {
		tl.Events = make([]lifebar.Event, len(l.Events))
		for i, ev := range l.Events {
			tl.Events[i] = lifebar.Event{Life: ev.Life, Time: ev.Time}
		}
	}
	return tl.Serialize()
}
