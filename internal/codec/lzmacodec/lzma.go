// Package lzmacodec provides the LZMA codec used by the replay frame block.
//
// The wire form is a classic LZMA-alone stream: the 13-byte
// properties/dictionary/size header followed by the range-coded payload,
// with no outer container. The reader accepts any valid stream regardless
// of the encoder settings that produced it; the writer's settings are an
// encoder detail, not part of the format.
package lzmacodec

import (
	"io"

	"github.com/ulikunitz/xz/lzma"

	"github.com/rhythmkit/osr/internal/codec"
)

// Compile-time check that Codec implements codec.Codec.
var _ codec.Codec = (*Codec)(nil)

// Codec implements LZMA-alone compression.
type Codec struct{}

// New returns a new LZMA codec.
func New() *Codec {
	return &Codec{}
}

// Reader wraps r to decompress an LZMA stream.
func (c *Codec) Reader(r io.Reader) (io.ReadCloser, error) {
	decoder, err := lzma.NewReader(r)
	if err != nil {
		return nil, err
	}
	return io.NopCloser(decoder), nil
}

// Writer wraps w to compress data as an LZMA stream.
func (c *Codec) Writer(w io.Writer) (io.WriteCloser, error) {
	return lzma.NewWriter(w)
}

// Extension returns "lzma".
func (c *Codec) Extension() string {
	return "lzma"
}
