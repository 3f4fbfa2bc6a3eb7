// Package store defines the storage backend interface for fetching raw
// replay buffers. Stores hand opaque bytes to the codec and surface its
// errors unchanged; they never interpret the replay format themselves.
package store

import (
	"context"
	"errors"
	"fmt"
	"strings"
)

// Extension is the conventional replay file extension, including the dot.
const Extension = ".osr"

// Sentinel errors for well-defined store failures.
var (
	// ErrNotFound is returned when a replay does not exist in the store.
	ErrNotFound = errors.New("store: replay not found")

	// ErrNotReplayFile is returned for keys without the .osr extension.
	ErrNotReplayFile = errors.New("store: not a .osr replay file")
)

// Store defines the interface for storage backends.
// Implementations handle path formats and storage details internally.
type Store interface {
	// ReadReplay returns the raw bytes of the replay stored under key.
	// The bytes are handed to the caller as-is, ready for decoding.
	ReadReplay(ctx context.Context, key string) ([]byte, error)

	// Close releases any resources held by the store.
	Close() error
}

// ValidateKey rejects keys that do not name a .osr file. Backends call this
// before touching storage so that a typo'd key fails the same way everywhere.
func ValidateKey(key string) error {
	if !strings.HasSuffix(strings.ToLower(key), Extension) {
		return fmt.Errorf("%w: %q", ErrNotReplayFile, key)
	}
	return nil
}
