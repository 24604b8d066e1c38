package archive

import (
	"sync"

	"github.com/mnl-modding/mnllib-go/internal/hash"
)

// ChunkCache memoizes compressed chunk payloads by the xxHash64 of their
// raw bytes; container.Manager fills it during LoadFEvent and reads it back
// through RawChunkBytes. Entries are never evicted, only cleared by Reset.
// It is safe for concurrent use.
type ChunkCache struct {
	codec Codec

	mu      sync.RWMutex
	entries map[uint64][]byte
}

// NewChunkCache builds a cache backed by codec. A nil codec is treated as
// NoOpCodec.
func NewChunkCache(codec Codec) *ChunkCache {
	if codec == nil {
		codec = NewNoOpCodec()
	}

	return &ChunkCache{
		codec:   codec,
		entries: make(map[uint64][]byte),
	}
}

// Get returns the cached compressed form of raw, if present.
func (c *ChunkCache) Get(raw []byte) ([]byte, bool) {
	key := hash.ChunkKey(raw)

	c.mu.RLock()
	defer c.mu.RUnlock()

	entry, ok := c.entries[key]
	return entry, ok
}

// Put compresses raw via the cache's codec and stores it keyed by the hash
// of raw, returning the compressed bytes.
func (c *ChunkCache) Put(raw []byte) ([]byte, error) {
	compressed, err := c.codec.Compress(raw)
	if err != nil {
		return nil, err
	}

	key := hash.ChunkKey(raw)

	c.mu.Lock()
	c.entries[key] = compressed
	c.mu.Unlock()

	return compressed, nil
}

// Decompress restores the original bytes from a cache entry previously
// produced by Put.
func (c *ChunkCache) Decompress(compressed []byte) ([]byte, error) {
	return c.codec.Decompress(compressed)
}

// Len reports the number of distinct chunks currently cached.
func (c *ChunkCache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()

	return len(c.entries)
}

// Reset discards all cached entries.
func (c *ChunkCache) Reset() {
	c.mu.Lock()
	c.entries = make(map[uint64][]byte)
	c.mu.Unlock()
}
