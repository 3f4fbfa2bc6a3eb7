// Package diskstore implements a disk-based filesystem storage backend.
package diskstore

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/rhythmkit/osr/internal/store"
)

// Compile-time check that Store implements store.Store.
var _ store.Store = (*Store)(nil)

// Store is a disk-based filesystem storage backend. Keys are paths relative
// to the root directory and must carry the .osr extension.
type Store struct {
	root string
}

// New creates a new disk store rooted at the given directory.
// The directory must exist.
func New(root string) (*Store, error) {
	info, err := os.Stat(root)
	if err != nil {
		return nil, fmt.Errorf("stat root directory: %w", err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("%s is not a directory", root)
	}

	return &Store{root: root}, nil
}

// ReadReplay reads the raw bytes of the replay stored under key.
func (s *Store) ReadReplay(ctx context.Context, key string) ([]byte, error) {
	// Check for cancellation before starting I/O.
	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	default:
	}

	if err := store.ValidateKey(key); err != nil {
		return nil, err
	}

	data, err := os.ReadFile(filepath.Join(s.root, filepath.FromSlash(key)))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, store.ErrNotFound
		}
		return nil, fmt.Errorf("reading replay: %w", err)
	}

	return data, nil
}

// Close releases any resources held by the store.
func (s *Store) Close() error {
	return nil
}

// ReadFile reads a single replay file from an absolute or relative path,
// applying the same extension check the keyed store performs. This is the
// entry point the CLI uses for explicit file arguments.
func ReadFile(path string) ([]byte, error) {
	if err := store.ValidateKey(path); err != nil {
		return nil, err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, store.ErrNotFound
		}
		return nil, fmt.Errorf("reading replay: %w", err)
	}

	return data, nil
}
