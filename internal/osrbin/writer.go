package osrbin

import (
	"encoding/binary"
	"fmt"
)

// Writer encodes primitives by appending fixed-order byte chunks to an
// in-memory buffer. Only String can fail; integer writes are infallible.
type Writer struct {
	buf []byte
}

// NewWriter creates an empty Writer.
func NewWriter() *Writer {
	return &Writer{}
}

// Bytes returns the accumulated buffer. The slice aliases the writer's
// internal storage; it stays valid until the next write.
func (w *Writer) Bytes() []byte {
	return w.buf
}

// Len returns the number of bytes written so far.
func (w *Writer) Len() int {
	return len(w.buf)
}

// Byte appends a single byte.
func (w *Writer) Byte(v byte) {
	w.buf = append(w.buf, v)
}

// Uint16 appends a little-endian 16-bit unsigned integer.
func (w *Writer) Uint16(v uint16) {
	w.buf = binary.LittleEndian.AppendUint16(w.buf, v)
}

// Uint32 appends a little-endian 32-bit unsigned integer.
func (w *Writer) Uint32(v uint32) {
	w.buf = binary.LittleEndian.AppendUint32(w.buf, v)
}

// Uint64 appends a little-endian 64-bit unsigned integer.
func (w *Writer) Uint64(v uint64) {
	w.buf = binary.LittleEndian.AppendUint64(w.buf, v)
}

// Raw appends p verbatim.
func (w *Writer) Raw(p []byte) {
	w.buf = append(w.buf, p...)
}

// String appends a marker-prefixed string field. nil writes the absent
// marker alone; a non-nil pointer writes the present marker, a length byte
// and the UTF-8 payload. Strings longer than MaxStringLen bytes are an
// explicit error rather than being silently truncated to a byte.
func (w *Writer) String(s *string) error {
	if s == nil {
		w.Byte(markerAbsent)
		return nil
	}
	if len(*s) > MaxStringLen {
		return fmt.Errorf("%w: %d bytes", ErrStringTooLong, len(*s))
	}
	w.Byte(markerPresent)
	w.Byte(byte(len(*s)))
	w.buf = append(w.buf, *s...)
	return nil
}
