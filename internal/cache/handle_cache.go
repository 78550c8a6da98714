// Package cache provides a process-wide cache of opened database handles keyed
// by connection string.
package cache

import (
	"database/sql"
	"sync"
	"sync/atomic"
)

// CreateFunc opens and configures a database handle for a connection string.
// It is supplied by the caller; the cache holds no connection-specific knowledge.
type CreateFunc func(connString string) (*sql.DB, error)

// HandleCache maps connection strings to opened database handles. Entries are
// created lazily and never evicted or invalidated: exactly one handle object is
// retained per distinct connection string for the lifetime of the process.
type HandleCache struct {
	mu      sync.RWMutex
	handles map[string]*sql.DB

	// Metrics using atomic for lock-free access.
	hits      atomic.Uint64
	misses    atomic.Uint64
	creations atomic.Uint64
}

// NewHandleCache creates an empty handle cache.
func NewHandleCache() *HandleCache {
	return &HandleCache{
		handles: make(map[string]*sql.DB),
	}
}

// GetOrCreate returns the canonical handle for connString, creating it with
// create on first access. Concurrent first accesses for the same connection
// string may each invoke create, but exactly one handle wins and is retained;
// losers are closed. After first creation, lookups take only a read lock.
func (hc *HandleCache) GetOrCreate(connString string, create CreateFunc) (*sql.DB, error) {
	hc.mu.RLock()
	handle, ok := hc.handles[connString]
	hc.mu.RUnlock()
	if ok {
		hc.hits.Add(1)
		return handle, nil
	}

	hc.misses.Add(1)

	// Create outside the lock so slow opens for one connection string do not
	// block lookups for others.
	created, err := create(connString)
	if err != nil {
		return nil, err
	}

	hc.mu.Lock()
	if existing, ok := hc.handles[connString]; ok {
		// Lost the creation race; the first writer's handle is canonical.
		hc.mu.Unlock()
		_ = created.Close() // Best effort close.
		return existing, nil
	}
	hc.handles[connString] = created
	hc.mu.Unlock()

	hc.creations.Add(1)
	return created, nil
}

// Get returns the cached handle for connString, if any.
func (hc *HandleCache) Get(connString string) (*sql.DB, bool) {
	hc.mu.RLock()
	defer hc.mu.RUnlock()
	handle, ok := hc.handles[connString]
	return handle, ok
}

// Len returns the number of cached handles.
func (hc *HandleCache) Len() int {
	hc.mu.RLock()
	defer hc.mu.RUnlock()
	return len(hc.handles)
}

// Stats holds cache performance metrics.
type Stats struct {
	Size      int    // Current number of cached handles.
	Hits      uint64 // Number of successful cache lookups.
	Misses    uint64 // Number of cache misses.
	Creations uint64 // Number of handles created and retained.
}

// Stats returns cache statistics.
func (hc *HandleCache) Stats() Stats {
	hc.mu.RLock()
	size := len(hc.handles)
	hc.mu.RUnlock()

	return Stats{
		Size:      size,
		Hits:      hc.hits.Load(),
		Misses:    hc.misses.Load(),
		Creations: hc.creations.Load(),
	}
}
