// Package hash wraps xxHash64 for the container manager's chunk cache key,
// the same algorithm used elsewhere in this ecosystem for metric-ID hashing.
package hash

import "github.com/cespare/xxhash/v2"

// ChunkKey computes the xxHash64 of a raw FEvent chunk, used by
// archive.ChunkCache to key container.Manager's optional raw-chunk cache.
// Identical raw bytes always produce the same key, so a chunk re-read
// unchanged maps to the same cache entry. The cache does not replace
// parsing: LoadFEvent parses every chunk either way.
func ChunkKey(data []byte) uint64 {
	return xxhash.Sum64(data)
}
