package pool

import (
	"bytes"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewByteBuffer(t *testing.T) {
	bb := NewByteBuffer(1024)

	require.NotNil(t, bb)
	assert.Equal(t, 0, len(bb.B))
	assert.Equal(t, 1024, cap(bb.B))
}

func TestByteBuffer_WriteAndReset(t *testing.T) {
	bb := NewByteBuffer(ChunkBufferDefaultSize)

	n, err := bb.Write([]byte("hello"))
	require.NoError(t, err)
	assert.Equal(t, 5, n)
	assert.Equal(t, []byte("hello"), bb.Bytes())

	bb.Reset()
	assert.Equal(t, 0, bb.Len())
}

func TestByteBuffer_WriteByte(t *testing.T) {
	bb := NewByteBuffer(4)
	require.NoError(t, bb.WriteByte(0xAB))
	require.NoError(t, bb.WriteByte(0xCD))
	assert.Equal(t, []byte{0xAB, 0xCD}, bb.Bytes())
}

func TestByteBuffer_WriteTo(t *testing.T) {
	bb := NewByteBuffer(ChunkBufferDefaultSize)
	_, _ = bb.Write([]byte("test data"))

	var buf bytes.Buffer
	n, err := bb.WriteTo(&buf)
	require.NoError(t, err)
	assert.Equal(t, int64(9), n)
	assert.Equal(t, "test data", buf.String())
}

func TestByteBuffer_Grow_PreservesData(t *testing.T) {
	bb := NewByteBuffer(8)
	testData := []byte("important data that must be preserved")
	bb.Grow(len(testData))
	_, _ = bb.Write(testData)

	bb.Grow(ChunkBufferDefaultSize * 2)

	assert.Equal(t, testData, bb.Bytes())
}

func TestByteBufferPool_GetPutReuse(t *testing.T) {
	p := NewByteBufferPool(1024, 4096)

	bb := p.Get()
	_, _ = bb.Write([]byte("data"))
	p.Put(bb)

	bb2 := p.Get()
	assert.Equal(t, 0, bb2.Len(), "buffer from pool should be reset")
}

func TestByteBufferPool_MaxThresholdDiscard(t *testing.T) {
	p := NewByteBufferPool(1024, 4096)

	bb := p.Get()
	bb.Grow(10000)
	require.Greater(t, cap(bb.B), 4096)

	p.Put(bb)

	bb2 := p.Get()
	assert.LessOrEqual(t, cap(bb2.B), 4096*2)
}

func TestChunkBufferPool(t *testing.T) {
	bb := GetChunkBuffer()
	require.NotNil(t, bb)
	assert.Equal(t, 0, bb.Len())

	_, _ = bb.Write([]byte("chunk"))
	PutChunkBuffer(bb)

	bb2 := GetChunkBuffer()
	assert.Equal(t, 0, bb2.Len())
	PutChunkBuffer(bb2)
}

func TestPool_ConcurrentAccess(t *testing.T) {
	const numGoroutines = 20
	const numIterations = 200

	var wg sync.WaitGroup
	wg.Add(numGoroutines)

	for i := 0; i < numGoroutines; i++ {
		go func() {
			defer wg.Done()
			for j := 0; j < numIterations; j++ {
				bb := GetChunkBuffer()
				_, _ = bb.Write([]byte("data"))
				PutChunkBuffer(bb)
			}
		}()
	}

	wg.Wait()
}
