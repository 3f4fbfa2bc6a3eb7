// Package osrfx provides an fx module for a configured replay codec and a
// disk-backed replay store.
package osrfx

import (
	"context"

	"go.uber.org/fx"
	"go.uber.org/zap"

	"github.com/rhythmkit/osr"
	"github.com/rhythmkit/osr/internal/stats"
	"github.com/rhythmkit/osr/internal/stats/logger"
	"github.com/rhythmkit/osr/internal/store"
	"github.com/rhythmkit/osr/internal/store/cachedstore"
	"github.com/rhythmkit/osr/internal/store/diskstore"
)

// Config holds configuration for the replay codec and store.
type Config struct {
	// ReplayDir is the directory containing .osr files.
	ReplayDir string

	// CacheSize is the number of replay buffers to cache in memory.
	// Default is 100.
	CacheSize int

	// StrictFrames makes malformed frame tokens fatal instead of skipped.
	StrictFrames bool
}

// Module provides a *osr.Codec and a cached disk-backed store.Store.
// Requires a Config and a *zap.Logger to be provided.
var Module = fx.Module("osr",
	fx.Provide(
		newStatsCollector,
		newCodec,
		newStore,
	),
)

func newStatsCollector(log *zap.Logger) stats.Collector {
	return logger.New(log.Named("osr.stats"))
}

// CodecParams holds dependencies for creating the codec.
type CodecParams struct {
	fx.In

	Config    Config
	Logger    *zap.Logger
	Collector stats.Collector
}

func newCodec(p CodecParams) *osr.Codec {
	return osr.New(
		osr.WithStrictFrames(p.Config.StrictFrames),
		osr.WithStats(p.Collector),
		osr.WithLogger(p.Logger.Named("osr")),
	)
}

// StoreParams holds dependencies for creating the store.
type StoreParams struct {
	fx.In

	Config    Config
	Collector stats.Collector
	Lifecycle fx.Lifecycle
}

// StoreResult holds the provided store.
type StoreResult struct {
	fx.Out

	Store store.Store
}

func newStore(p StoreParams) (StoreResult, error) {
	cacheSize := p.Config.CacheSize
	if cacheSize <= 0 {
		cacheSize = 100
	}

	baseStore, err := diskstore.New(p.Config.ReplayDir)
	if err != nil {
		return StoreResult{}, err
	}

	st, err := cachedstore.New(baseStore, cacheSize, p.Collector)
	if err != nil {
		return StoreResult{}, err
	}

	p.Lifecycle.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			return st.Close()
		},
	})

	return StoreResult{Store: st}, nil
}
