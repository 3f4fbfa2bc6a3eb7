package cachedstore

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/rhythmkit/osr/internal/store"
	"github.com/rhythmkit/osr/internal/store/memstore"
)

func TestReadReplay_CachesSecondRead(t *testing.T) {
	mem := memstore.New()
	mem.SetReplay("play.osr", []byte{0x00, 0x01, 0x02})

	cached, err := New(mem, 4, nil)
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	ctx := context.Background()
	first, err := cached.ReadReplay(ctx, "play.osr")
	if err != nil {
		t.Fatalf("ReadReplay() error = %v", err)
	}
	second, err := cached.ReadReplay(ctx, "play.osr")
	if err != nil {
		t.Fatalf("ReadReplay() error = %v", err)
	}

	if !bytes.Equal(first, second) {
		t.Error("cached read returned different data")
	}

	st := cached.Stats()
	if st.Hits != 1 || st.Misses != 1 {
		t.Errorf("Stats() = %+v, want 1 hit / 1 miss", st)
	}
}

func TestReadReplay_MissPassesThroughError(t *testing.T) {
	cached, err := New(memstore.New(), 4, nil)
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	_, err = cached.ReadReplay(context.Background(), "missing.osr")
	if !errors.Is(err, store.ErrNotFound) {
		t.Errorf("ReadReplay() error = %v, want ErrNotFound", err)
	}

	// Failed reads are not cached.
	if st := cached.Stats(); st.Size != 0 {
		t.Errorf("Stats().Size = %d, want 0", st.Size)
	}
}

func TestReadReplay_EvictsBeyondCapacity(t *testing.T) {
	mem := memstore.New()
	mem.SetReplay("a.osr", []byte{1})
	mem.SetReplay("b.osr", []byte{2})
	mem.SetReplay("c.osr", []byte{3})

	cached, err := New(mem, 2, nil)
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	ctx := context.Background()
	for _, key := range []string{"a.osr", "b.osr", "c.osr"} {
		if _, err := cached.ReadReplay(ctx, key); err != nil {
			t.Fatalf("ReadReplay(%q) error = %v", key, err)
		}
	}

	if st := cached.Stats(); st.Size != 2 {
		t.Errorf("Stats().Size = %d, want 2", st.Size)
	}
}

func TestHitRate(t *testing.T) {
	s := Stats{Hits: 3, Misses: 1}
	if got := s.HitRate(); got != 75 {
		t.Errorf("HitRate() = %v, want 75", got)
	}
	if got := (Stats{}).HitRate(); got != 0 {
		t.Errorf("HitRate() on empty stats = %v, want 0", got)
	}
}
