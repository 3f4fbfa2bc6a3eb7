package osr

import (
	"bytes"
	"fmt"
	"io"

	"go.uber.org/zap"

	"github.com/rhythmkit/osr/internal/frames"
	"github.com/rhythmkit/osr/internal/osrbin"
	"github.com/rhythmkit/osr/internal/stats"
	"github.com/rhythmkit/osr/internal/ticks"
)

// Decode parses a raw .osr buffer. The fixed field order is consumed front
// to back and the first malformed field fails the whole call; no partial
// Replay is ever returned.
func (c *Codec) Decode(data []byte) (*Replay, error) {
	r, err := c.decode(data)
	if err != nil {
		c.stats.IncCounter(stats.MetricDecodeFailures, 1)
		return nil, err
	}

	c.stats.IncCounter(stats.MetricDecodes, 1)
	return r, nil
}

func (c *Codec) decode(data []byte) (*Replay, error) {
	rd := osrbin.NewReader(data)
	replay := &Replay{}

	modeByte, err := rd.Byte()
	if err != nil {
		return nil, fmt.Errorf("reading mode: %w", err)
	}
	if replay.Mode, err = ParseGameMode(modeByte); err != nil {
		return nil, err
	}

	if replay.GameVersion, err = rd.Uint32(); err != nil {
		return nil, fmt.Errorf("reading game version: %w", err)
	}
	if replay.MapHash, err = rd.String(); err != nil {
		return nil, fmt.Errorf("reading map hash: %w", err)
	}
	if replay.PlayerName, err = rd.String(); err != nil {
		return nil, fmt.Errorf("reading player name: %w", err)
	}
	if replay.ReplayHash, err = rd.String(); err != nil {
		return nil, fmt.Errorf("reading replay hash: %w", err)
	}

	counts := []struct {
		name string
		dst  *uint16
	}{
		{"count 300", &replay.Count300},
		{"count 100", &replay.Count100},
		{"count 50", &replay.Count50},
		{"count geki", &replay.CountGeki},
		{"count katu", &replay.CountKatu},
		{"count miss", &replay.CountMiss},
	}
	for _, cnt := range counts {
		if *cnt.dst, err = rd.Uint16(); err != nil {
			return nil, fmt.Errorf("reading %s: %w", cnt.name, err)
		}
	}

	if replay.TotalScore, err = rd.Uint32(); err != nil {
		return nil, fmt.Errorf("reading total score: %w", err)
	}
	if replay.MaxCombo, err = rd.Uint16(); err != nil {
		return nil, fmt.Errorf("reading max combo: %w", err)
	}

	fcByte, err := rd.Byte()
	if err != nil {
		return nil, fmt.Errorf("reading full combo: %w", err)
	}
	switch fcByte {
	case 0x00:
		replay.FullCombo = false
	case 0x01:
		replay.FullCombo = true
	default:
		return nil, fmt.Errorf("%w: 0x%02x", ErrInvalidFullComboByte, fcByte)
	}

	modBits, err := rd.Uint32()
	if err != nil {
		return nil, fmt.Errorf("reading mods: %w", err)
	}
	replay.Mods = Mods(modBits)

	if replay.LifeBar, err = rd.String(); err != nil {
		return nil, fmt.Errorf("reading life bar: %w", err)
	}

	playedAt, err := rd.Uint64()
	if err != nil {
		return nil, fmt.Errorf("reading timestamp: %w", err)
	}
	replay.PlayedAt = ticks.ToTime(playedAt)

	blockLen, err := rd.Uint32()
	if err != nil {
		return nil, fmt.Errorf("reading frame block length: %w", err)
	}
	block, err := rd.Bytes(int(blockLen))
	if err != nil {
		return nil, fmt.Errorf("reading frame block: %w", err)
	}

	stream, err := c.decodeFrames(block)
	if err != nil {
		return nil, err
	}
	replay.Seed = stream.Seed
	if len(stream.Frames) > 0 {
		replay.Frames = make([]Frame, len(stream.Frames))
		for i, f := range stream.Frames {
			replay.Frames[i] = Frame{
				Delta: f.Delta,
				X:     f.X,
				Y:     f.Y,
				Keys:  Keys(f.Keys),
			}
		}
	}

	if replay.OnlineScoreID, err = rd.Uint64(); err != nil {
		return nil, fmt.Errorf("reading online score id: %w", err)
	}

	c.logger.Debug("decoded replay",
		zap.Stringer("mode", replay.Mode),
		zap.String("player", replay.Player()),
		zap.Int("frames", len(replay.Frames)),
		zap.Uint32("game_version", replay.GameVersion))

	return replay, nil
}

// decodeFrames inflates the compressed frame block and parses the stream.
// An empty block is a valid empty stream.
func (c *Codec) decodeFrames(block []byte) (frames.Stream, error) {
	c.stats.ObserveHistogram(stats.MetricFrameBlockSize, float64(len(block)))

	if len(block) == 0 {
		return frames.Stream{}, nil
	}

	cr, err := c.frameCodec.Reader(bytes.NewReader(block))
	if err != nil {
		return frames.Stream{}, fmt.Errorf("%w: %v", ErrDecompression, err)
	}
	text, err := io.ReadAll(cr)
	if cerr := cr.Close(); err == nil {
		err = cerr
	}
	if err != nil {
		return frames.Stream{}, fmt.Errorf("%w: %v", ErrDecompression, err)
	}

	stream, skipped, err := frames.Parse(string(text), c.strict)
	if err != nil {
		return frames.Stream{}, err
	}
	if skipped > 0 {
		c.stats.IncCounter(stats.MetricTokensSkipped, int64(skipped))
		c.logger.Debug("skipped malformed frame tokens", zap.Int("skipped", skipped))
	}
	c.stats.IncCounter(stats.MetricFramesParsed, int64(len(stream.Frames)))

	return stream, nil
}
