package osr

import (
	"errors"

	"github.com/rhythmkit/osr/internal/frames"
	"github.com/rhythmkit/osr/internal/lifebar"
	"github.com/rhythmkit/osr/internal/osrbin"
)

// Sentinel errors for well-defined decode and encode failures. Every decode
// error is fatal to the call; no partial Replay is ever returned.
var (
	// ErrTruncated indicates the buffer ended before a field was complete.
	ErrTruncated = osrbin.ErrTruncated

	// ErrStringMarker indicates a string field did not start with a known
	// marker byte.
	ErrStringMarker = osrbin.ErrStringMarker

	// ErrStringEncoding indicates a string payload was not valid UTF-8.
	ErrStringEncoding = osrbin.ErrStringEncoding

	// ErrStringTooLong indicates an encode-side string does not fit the
	// single length byte the wire format allows.
	ErrStringTooLong = osrbin.ErrStringTooLong

	// ErrInvalidGameMode indicates an unrecognized game mode byte.
	ErrInvalidGameMode = errors.New("osr: invalid game mode byte")

	// ErrInvalidFullComboByte indicates the full-combo field held something
	// other than the two canonical byte values.
	ErrInvalidFullComboByte = errors.New("osr: invalid full combo byte")

	// ErrFrameParse indicates a frame token that may not be skipped failed
	// to parse: the sentinel seed record, or any token in strict mode.
	ErrFrameParse = frames.ErrParse

	// ErrLifeBar indicates a malformed life-bar event.
	ErrLifeBar = lifebar.ErrEvent

	// ErrDecompression indicates the compressed frame block could not be
	// inflated.
	ErrDecompression = errors.New("osr: decompressing frame block")

	// ErrCompression indicates the encode-side compressor failed.
	ErrCompression = errors.New("osr: compressing frame block")

	// ErrXOutOfRange and ErrYOutOfRange indicate a frame coordinate outside
	// the tolerated playfield bounds.
	ErrXOutOfRange = errors.New("osr: frame x outside [-512, 512]")
	ErrYOutOfRange = errors.New("osr: frame y outside [-384, 384]")
)
