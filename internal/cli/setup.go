package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/ppiankov/fakenews/internal/cache"
	"github.com/ppiankov/fakenews/internal/model"
	"github.com/ppiankov/fakenews/internal/pipeline"
)

// buildPipeline opens the configured cache and wires the pipeline.
// The returned cleanup func releases cache connections.
func buildPipeline(cfg *model.Config) (*pipeline.Pipeline, cache.Cache, func(), error) {
	c, cleanup, err := openCache(cfg.Cache)
	if err != nil {
		return nil, nil, nil, err
	}

	if verbose && c != nil {
		fmt.Fprintf(os.Stderr, "Cache: %s (ttl %v)\n", cfg.Cache.Backend, cfg.Cache.TTL)
	}

	return pipeline.NewPipeline(cfg, c), c, cleanup, nil
}

// openCache builds the cache backend and a cleanup func for closable backends.
// The cache is nil when caching is disabled.
func openCache(cfg model.CacheConfig) (cache.Cache, func(), error) {
	c, err := cache.New(cfg)
	if err != nil {
		return nil, nil, fmt.Errorf("open cache: %w", err)
	}

	cleanup := func() {
		if closer, ok := c.(io.Closer); ok {
			_ = closer.Close()
		}
	}
	return c, cleanup, nil
}
