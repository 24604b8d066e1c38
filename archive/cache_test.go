package archive

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestChunkCache_PutGetDecompress(t *testing.T) {
	cache := NewChunkCache(NewLZ4Codec())
	raw := []byte("FEvent chunk payload, reused across saves unchanged")

	compressed, err := cache.Put(raw)
	require.NoError(t, err)

	cached, ok := cache.Get(raw)
	require.True(t, ok)
	assert.Equal(t, compressed, cached)

	decoded, err := cache.Decompress(cached)
	require.NoError(t, err)
	assert.Equal(t, raw, decoded)
}

func TestChunkCache_MissOnUnseenData(t *testing.T) {
	cache := NewChunkCache(nil)
	_, ok := cache.Get([]byte("never stored"))
	assert.False(t, ok)
}

func TestChunkCache_ResetAndLen(t *testing.T) {
	cache := NewChunkCache(nil)
	_, err := cache.Put([]byte("a"))
	require.NoError(t, err)
	_, err = cache.Put([]byte("b"))
	require.NoError(t, err)
	assert.Equal(t, 2, cache.Len())

	cache.Reset()
	assert.Equal(t, 0, cache.Len())
}

func TestChunkCache_NilCodecDefaultsToNoOp(t *testing.T) {
	cache := NewChunkCache(nil)
	compressed, err := cache.Put([]byte("hello"))
	require.NoError(t, err)
	assert.Equal(t, []byte("hello"), compressed)
}
