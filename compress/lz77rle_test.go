package compress

import (
	"math/rand/v2"
	"testing"

	"github.com/mnl-modding/mnllib-go/mnlerr"
	"github.com/mnl-modding/mnllib-go/warn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCompress_EmptyInputRejected(t *testing.T) {
	_, err := Compress(nil)
	require.ErrorIs(t, err, mnlerr.ErrEmptyInput)

	_, err = Compress([]byte{})
	require.ErrorIs(t, err, mnlerr.ErrEmptyInput)
}

func TestCompress_RunOfThreeIdenticalBytes(t *testing.T) {
	got, err := Compress([]byte("AAA"))
	require.NoError(t, err)
	assert.Equal(t, []byte{0x03, 0x00, 0x03, 0x00, 0x03, 0x01, 0x41}, got)
}

func TestDecompress_TwoLiteralsConcreteBytes(t *testing.T) {
	encoded := []byte{0x02, 0x00, 0x03, 0x00, 0x05, 0x42, 0x43}
	got, err := Decompress(encoded, nil)
	require.NoError(t, err)
	assert.Equal(t, []byte("BC"), got)
}

func TestCompressDecompress_RoundTrip(t *testing.T) {
	cases := [][]byte{
		[]byte("A"),
		[]byte("AAA"),
		[]byte("ABCABCABCABC"),
		[]byte("the quick brown fox jumps over the lazy dog"),
		makeRandomBytes(10),
		makeRandomBytes(600),
		makeRandomBytes(2000),
		makeRepeatingBytes(2049),
	}

	for _, data := range cases {
		compressed, err := Compress(data)
		require.NoError(t, err)

		decompressed, err := Decompress(compressed, nil)
		require.NoError(t, err)
		assert.Equal(t, data, decompressed, "round trip mismatch for %d bytes", len(data))
	}
}

func TestCompressDecompress_RoundTrip_Randomized(t *testing.T) {
	for i := 0; i < 200; i++ {
		n := rand.IntN(3000) + 1
		data := make([]byte, n)
		for j := range data {
			// biased toward a small alphabet so matches and runs actually occur
			data[j] = byte(rand.IntN(6))
		}

		compressed, err := Compress(data)
		require.NoError(t, err)

		decompressed, err := Decompress(compressed, nil)
		require.NoError(t, err)
		require.Equal(t, data, decompressed)
	}
}

func TestCompress_BlockBoundaryExactMultiple(t *testing.T) {
	data := makeRandomBytes(blockCapacity * 3)
	compressed, err := Compress(data)
	require.NoError(t, err)

	decompressed, err := Decompress(compressed, nil)
	require.NoError(t, err)
	assert.Equal(t, data, decompressed)
}

func TestDecompress_ReportsBlockSizeMismatch(t *testing.T) {
	encoded := []byte{0x02, 0x00, 0x03, 0x00, 0x05, 0x42, 0x43}
	encoded[2] = 0xFF // corrupt the declared block size

	var collector warn.Collector
	_, err := Decompress(encoded, collector.Report)
	require.NoError(t, err)
	require.NotEmpty(t, collector.Warnings)
	assert.Equal(t, warn.CodeBlockSizeMismatch, collector.Warnings[0].Code)
}

func TestDecompress_TruncatedStream(t *testing.T) {
	_, err := Decompress([]byte{0x05}, nil)
	require.ErrorIs(t, err, mnlerr.ErrTruncated)
}

func makeRandomBytes(n int) []byte {
	b := make([]byte, n)
	for i := range b {
		b[i] = byte(rand.IntN(256))
	}
	return b
}

func makeRepeatingBytes(n int) []byte {
	b := make([]byte, n)
	for i := range b {
		b[i] = byte(i % 5)
	}
	return b
}
