// Package archive wires the container manager's optional chunk cache to a
// pluggable secondary-compression backend (zstd, LZ4, S2, or none). See
// ChunkCache and Manager.EnableChunkCache.
package archive
