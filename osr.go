// Package osr encodes and decodes osu! replay (.osr) files.
//
// The codec transforms a raw byte buffer into a structured Replay value and
// back. It owns the binary header layout, the length-prefixed string
// encoding, the LZMA-compressed input-frame stream and the life-bar
// timeline; reading files from disk (and checking their extension) is the
// caller's job.
//
// Example usage:
//
//	data, err := os.ReadFile("play.osr")
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	replay, err := osr.Decode(data)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Printf("%s played %s: %d\n", replay.Player(), replay.Mode, replay.TotalScore)
package osr

import (
	"go.uber.org/zap"

	"github.com/rhythmkit/osr/internal/codec"
	"github.com/rhythmkit/osr/internal/codec/lzmacodec"
	"github.com/rhythmkit/osr/internal/stats"
)

// Codec decodes and encodes replays. A Codec is stateless apart from its
// configuration and is safe for concurrent use on independent buffers.
type Codec struct {
	frameCodec codec.Codec
	strict     bool
	stats      stats.Collector
	logger     *zap.Logger
}

// New creates a new Codec with the given options.
// If no options are provided, sensible defaults are used.
func New(opts ...Option) *Codec {
	cfg := defaultOptions()
	for _, opt := range opts {
		opt.apply(&cfg)
	}

	return &Codec{
		frameCodec: lzmacodec.New(),
		strict:     cfg.strict,
		stats:      cfg.stats,
		logger:     cfg.logger,
	}
}

// defaultCodec backs the package-level Decode and Encode helpers.
var defaultCodec = New()

// Decode parses a raw .osr buffer using the default configuration.
func Decode(data []byte) (*Replay, error) {
	return defaultCodec.Decode(data)
}

// Encode serializes a replay using the default configuration.
func Encode(r *Replay) ([]byte, error) {
	return defaultCodec.Encode(r)
}
