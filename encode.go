package osr

import (
	"bytes"
	"fmt"

	"github.com/rhythmkit/osr/internal/frames"
	"github.com/rhythmkit/osr/internal/osrbin"
	"github.com/rhythmkit/osr/internal/stats"
	"github.com/rhythmkit/osr/internal/ticks"
)

// Encode serializes a replay to its wire form. Encoding can fail only on a
// string longer than the wire's single length byte allows and on compressor
// failure; everything else is written as-is, unknown mod bits included.
func (c *Codec) Encode(r *Replay) ([]byte, error) {
	data, err := c.encode(r)
	if err != nil {
		c.stats.IncCounter(stats.MetricEncodeFailures, 1)
		return nil, err
	}

	c.stats.IncCounter(stats.MetricEncodes, 1)
	return data, nil
}

func (c *Codec) encode(r *Replay) ([]byte, error) {
	w := osrbin.NewWriter()

	w.Byte(byte(r.Mode))
	w.Uint32(r.GameVersion)
	if err := w.String(r.MapHash); err != nil {
		return nil, fmt.Errorf("writing map hash: %w", err)
	}
	if err := w.String(r.PlayerName); err != nil {
		return nil, fmt.Errorf("writing player name: %w", err)
	}
	if err := w.String(r.ReplayHash); err != nil {
		return nil, fmt.Errorf("writing replay hash: %w", err)
	}

	w.Uint16(r.Count300)
	w.Uint16(r.Count100)
	w.Uint16(r.Count50)
	w.Uint16(r.CountGeki)
	w.Uint16(r.CountKatu)
	w.Uint16(r.CountMiss)

	w.Uint32(r.TotalScore)
	w.Uint16(r.MaxCombo)
	if r.FullCombo {
		w.Byte(0x01)
	} else {
		w.Byte(0x00)
	}
	w.Uint32(uint32(r.Mods))

	if err := w.String(r.LifeBar); err != nil {
		return nil, fmt.Errorf("writing life bar: %w", err)
	}

	w.Uint64(ticks.FromTime(r.PlayedAt))

	block, err := c.encodeFrames(r)
	if err != nil {
		return nil, err
	}
	w.Uint32(uint32(len(block)))
	w.Raw(block)

	w.Uint64(r.OnlineScoreID)

	return w.Bytes(), nil
}

// encodeFrames serializes the frame stream and compresses it. The block is
// always written, even for a frameless seedless replay; a compressed empty
// stream is what the client itself emits in that case.
func (c *Codec) encodeFrames(r *Replay) ([]byte, error) {
	stream := frames.Stream{Seed: r.Seed}
	if len(r.Frames) > 0 {
		stream.Frames = make([]frames.Frame, len(r.Frames))
		for i, f := range r.Frames {
			stream.Frames[i] = frames.Frame{
				Delta: f.Delta,
				X:     f.X,
				Y:     f.Y,
				Keys:  uint32(f.Keys),
			}
		}
	}

	var buf bytes.Buffer
	cw, err := c.frameCodec.Writer(&buf)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrCompression, err)
	}
	if _, err := cw.Write([]byte(stream.Serialize())); err != nil {
		cw.Close()
		return nil, fmt.Errorf("%w: %v", ErrCompression, err)
	}
	if err := cw.Close(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrCompression, err)
	}

	c.stats.ObserveHistogram(stats.MetricFrameBlockSize, float64(buf.Len()))
	return buf.Bytes(), nil
}
