// Package osrbin implements the primitive binary layer of the .osr replay
// format: fixed-width little-endian integers and the marker-prefixed string
// encoding, read from and written to an in-memory byte cursor.
package osrbin

import (
	"encoding/binary"
	"errors"
	"fmt"
	"unicode/utf8"
)

// String encoding markers. A string field starts with a single marker byte:
// 0x00 means the field is absent, 0x0b means a length byte and that many
// UTF-8 bytes follow.
const (
	markerAbsent  = 0x00
	markerPresent = 0x0b
)

// MaxStringLen is the longest string the single length byte can describe.
const MaxStringLen = 255

// Sentinel errors for well-defined decode failures.
var (
	// ErrTruncated indicates the buffer ended before a field was complete.
	ErrTruncated = errors.New("osrbin: buffer truncated")

	// ErrStringMarker indicates a string field did not start with a known marker byte.
	ErrStringMarker = errors.New("osrbin: malformed string marker")

	// ErrStringEncoding indicates a string payload was not valid UTF-8.
	ErrStringEncoding = errors.New("osrbin: string is not valid UTF-8")

	// ErrStringTooLong indicates an encode-side string exceeds MaxStringLen bytes.
	ErrStringTooLong = errors.New("osrbin: string exceeds 255 bytes")
)

// Reader decodes primitives from a byte buffer, advancing a cursor by the
// exact width of each field. Every read fails with ErrTruncated when fewer
// bytes remain than the field requires.
type Reader struct {
	buf []byte
	off int
}

// NewReader creates a Reader over buf. The buffer is not copied.
func NewReader(buf []byte) *Reader {
	return &Reader{buf: buf}
}

// Remaining returns the number of unread bytes.
func (r *Reader) Remaining() int {
	return len(r.buf) - r.off
}

// Offset returns the current cursor position.
func (r *Reader) Offset() int {
	return r.off
}

func (r *Reader) take(n int) ([]byte, error) {
	if r.Remaining() < n {
		return nil, fmt.Errorf("%w: need %d bytes at offset %d, have %d", ErrTruncated, n, r.off, r.Remaining())
	}
	b := r.buf[r.off : r.off+n]
	r.off += n
	return b, nil
}

// Byte reads a single byte.
func (r *Reader) Byte() (byte, error) {
	b, err := r.take(1)
	if err != nil {
		return 0, err
	}
	return b[0], nil
}

// Uint16 reads a little-endian 16-bit unsigned integer.
func (r *Reader) Uint16() (uint16, error) {
	b, err := r.take(2)
	if err != nil {
		return 0, err
	}
	return binary.LittleEndian.Uint16(b), nil
}

// Uint32 reads a little-endian 32-bit unsigned integer.
func (r *Reader) Uint32() (uint32, error) {
	b, err := r.take(4)
	if err != nil {
		return 0, err
	}
	return binary.LittleEndian.Uint32(b), nil
}

// Uint64 reads a little-endian 64-bit unsigned integer.
func (r *Reader) Uint64() (uint64, error) {
	b, err := r.take(8)
	if err != nil {
		return 0, err
	}
	return binary.LittleEndian.Uint64(b), nil
}

// Bytes reads exactly n raw bytes. The returned slice aliases the underlying
// buffer and must not be modified.
func (r *Reader) Bytes(n int) ([]byte, error) {
	return r.take(n)
}

// String reads a marker-prefixed string field. A 0x00 marker decodes to nil;
// a 0x0b marker decodes to a non-nil pointer, possibly to an empty string.
// The wire keeps "absent" and "present but empty" distinct, and so do we.
func (r *Reader) String() (*string, error) {
	marker, err := r.Byte()
	if err != nil {
		return nil, err
	}

	switch marker {
	case markerAbsent:
		return nil, nil
	case markerPresent:
		size, err := r.Byte()
		if err != nil {
			return nil, err
		}
		raw, err := r.take(int(size))
		if err != nil {
			return nil, err
		}
		if !utf8.Valid(raw) {
			return nil, fmt.Errorf("%w: at offset %d", ErrStringEncoding, r.off-int(size))
		}
		s := string(raw)
		return &s, nil
	default:
		return nil, fmt.Errorf("%w: 0x%02x at offset %d", ErrStringMarker, marker, r.off-1)
	}
}
