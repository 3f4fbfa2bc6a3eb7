package osrbin

import (
	"errors"
	"testing"
)

func strptr(s string) *string { return &s }

func TestReader_Integers(t *testing.T) {
	buf := []byte{
		0x2a,
		0x34, 0x12,
		0x78, 0x56, 0x34, 0x12,
		0xef, 0xcd, 0xab, 0x89, 0x67, 0x45, 0x23, 0x01,
	}
	r := NewReader(buf)

	b, err := r.Byte()
	if err != nil || b != 0x2a {
		t.Fatalf("Byte() = %v, %v, want 0x2a", b, err)
	}
	u16, err := r.Uint16()
	if err != nil || u16 != 0x1234 {
		t.Fatalf("Uint16() = %#x, %v, want 0x1234", u16, err)
	}
	u32, err := r.Uint32()
	if err != nil || u32 != 0x12345678 {
		t.Fatalf("Uint32() = %#x, %v, want 0x12345678", u32, err)
	}
	u64, err := r.Uint64()
	if err != nil || u64 != 0x0123456789abcdef {
		t.Fatalf("Uint64() = %#x, %v, want 0x0123456789abcdef", u64, err)
	}
	if r.Remaining() != 0 {
		t.Errorf("Remaining() = %d, want 0", r.Remaining())
	}
}

func TestReader_Truncated(t *testing.T) {
	tests := []struct {
		name string
		buf  []byte
		read func(r *Reader) error
	}{
		{"byte from empty", nil, func(r *Reader) error { _, err := r.Byte(); return err }},
		{"uint16 short", []byte{0x01}, func(r *Reader) error { _, err := r.Uint16(); return err }},
		{"uint32 short", []byte{0x01, 0x02, 0x03}, func(r *Reader) error { _, err := r.Uint32(); return err }},
		{"uint64 short", []byte{0x01, 0x02, 0x03, 0x04}, func(r *Reader) error { _, err := r.Uint64(); return err }},
		{"string body short", []byte{0x0b, 0x05, 'a', 'b'}, func(r *Reader) error { _, err := r.String(); return err }},
		{"string missing length", []byte{0x0b}, func(r *Reader) error { _, err := r.String(); return err }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.read(NewReader(tt.buf))
			if !errors.Is(err, ErrTruncated) {
				t.Errorf("error = %v, want ErrTruncated", err)
			}
		})
	}
}

func TestString_RoundTrip(t *testing.T) {
	tests := []struct {
		name string
		val  *string
	}{
		{"absent", nil},
		{"present empty", strptr("")},
		{"present", strptr("abc")},
		{"unicode", strptr("Sailor SnoW ★")},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := NewWriter()
			if err := w.String(tt.val); err != nil {
				t.Fatalf("String() error = %v", err)
			}

			got, err := NewReader(w.Bytes()).String()
			if err != nil {
				t.Fatalf("read error = %v", err)
			}
			switch {
			case tt.val == nil && got != nil:
				t.Errorf("decoded %q, want absent", *got)
			case tt.val != nil && got == nil:
				t.Errorf("decoded absent, want %q", *tt.val)
			case tt.val != nil && *got != *tt.val:
				t.Errorf("decoded %q, want %q", *got, *tt.val)
			}
		})
	}
}

func TestString_AbsentIsOneByte(t *testing.T) {
	w := NewWriter()
	if err := w.String(nil); err != nil {
		t.Fatalf("String(nil) error = %v", err)
	}
	if w.Len() != 1 || w.Bytes()[0] != 0x00 {
		t.Errorf("absent string encoded as % x, want 00", w.Bytes())
	}
}

func TestString_BadMarker(t *testing.T) {
	_, err := NewReader([]byte{0x07, 0x00}).String()
	if !errors.Is(err, ErrStringMarker) {
		t.Errorf("error = %v, want ErrStringMarker", err)
	}
}

func TestString_InvalidUTF8(t *testing.T) {
	_, err := NewReader([]byte{0x0b, 0x02, 0xff, 0xfe}).String()
	if !errors.Is(err, ErrStringEncoding) {
		t.Errorf("error = %v, want ErrStringEncoding", err)
	}
}

func TestString_TooLong(t *testing.T) {
	long := make([]byte, 256)
	for i := range long {
		long[i] = 'a'
	}
	s := string(long)

	w := NewWriter()
	err := w.String(&s)
	if !errors.Is(err, ErrStringTooLong) {
		t.Errorf("String() error = %v, want ErrStringTooLong", err)
	}

	// Exactly 255 bytes must still fit.
	max := s[:255]
	if err := w.String(&max); err != nil {
		t.Errorf("String() at 255 bytes error = %v", err)
	}
}

func TestWriter_Integers(t *testing.T) {
	w := NewWriter()
	w.Byte(0x2a)
	w.Uint16(0x1234)
	w.Uint32(0x12345678)
	w.Uint64(0x0123456789abcdef)

	want := []byte{
		0x2a,
		0x34, 0x12,
		0x78, 0x56, 0x34, 0x12,
		0xef, 0xcd, 0xab, 0x89, 0x67, 0x45, 0x23, 0x01,
	}
	got := w.Bytes()
	if len(got) != len(want) {
		t.Fatalf("Len() = %d, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("byte %d = %#x, want %#x", i, got[i], want[i])
		}
	}
}
