package catalog

import (
	"context"
	"errors"
	"sync"
)

type Cache interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, data []byte) error
}

var ErrCacheMiss = errors.New("cache miss")

// MemoryCache is the cache used when no Redis address is configured.
type MemoryCache struct {
	m       sync.RWMutex
	entries map[string][]byte
}

func NewMemoryCache() *MemoryCache {
	return &MemoryCache{entries: make(map[string][]byte)}
}

func (c *MemoryCache) Get(_ context.Context, key string) ([]byte, error) {
	c.m.RLock()
	defer c.m.RUnlock()
	data, ok := c.entries[key]
	if !ok {
		return nil, ErrCacheMiss
	}
	return data, nil
}

func (c *MemoryCache) Set(_ context.Context, key string, data []byte) error {
	c.m.Lock()
	defer c.m.Unlock()
	c.entries[key] = data
	return nil
}
