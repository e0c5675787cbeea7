// Package catalog - Cached catalog access
package catalog

import (
	"context"
	"sync"

	"talent-quote/internal/errors"
)

// Source loads a catalog from a backing store. The only operation in
// the engine that may involve I/O lives behind this interface.
type Source interface {
	Load(ctx context.Context) (*Catalog, error)
}

// Accessor caches a loaded catalog for the session. The catalog is
// fetched once and reused until the caller explicitly invalidates it.
type Accessor struct {
	mu     sync.Mutex
	source Source
	cached *Catalog
}

// NewAccessor creates an accessor over a source
func NewAccessor(source Source) *Accessor {
	return &Accessor{source: source}
}

// Get returns the cached catalog, loading it on first use.
// A load failure is surfaced as CATALOG_UNAVAILABLE and is retryable;
// nothing is cached on failure, so the engine fails closed.
func (a *Accessor) Get(ctx context.Context) (*Catalog, error) {
	a.mu.Lock()
	defer a.mu.Unlock()

	if a.cached != nil {
		return a.cached, nil
	}

	loaded, err := a.source.Load(ctx)
	if err != nil {
		if errors.IsType(err, errors.TypeCatalogUnavailable) {
			return nil, err
		}
		return nil, errors.CatalogUnavailable("catalog load failed", err)
	}

	a.cached = loaded
	return a.cached, nil
}

// Invalidate drops the cached catalog; the next Get reloads it
func (a *Accessor) Invalidate() {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.cached = nil
}
