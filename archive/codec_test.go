package archive

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateCodec_AllBackends(t *testing.T) {
	for _, ct := range []CompressionType{CompressionNone, CompressionZstd, CompressionS2, CompressionLZ4} {
		codec, err := CreateCodec(ct)
		require.NoError(t, err, ct)
		require.NotNil(t, codec, ct)
	}
}

func TestCreateCodec_Invalid(t *testing.T) {
	_, err := CreateCodec(CompressionType(0xFF))
	assert.Error(t, err)
}

func TestGetCodec_SharedInstance(t *testing.T) {
	a, err := GetCodec(CompressionZstd)
	require.NoError(t, err)
	b, err := GetCodec(CompressionZstd)
	require.NoError(t, err)
	assert.Equal(t, a, b)
}

func TestCodecs_RoundTrip(t *testing.T) {
	data := []byte("the quick brown fox jumps over the lazy dog, repeated repeated repeated")

	for _, ct := range []CompressionType{CompressionNone, CompressionZstd, CompressionS2, CompressionLZ4} {
		t.Run(ct.String(), func(t *testing.T) {
			codec, err := CreateCodec(ct)
			require.NoError(t, err)

			compressed, err := codec.Compress(data)
			require.NoError(t, err)

			decompressed, err := codec.Decompress(compressed)
			require.NoError(t, err)
			assert.Equal(t, data, decompressed)
		})
	}
}

func TestCompressionType_String(t *testing.T) {
	assert.Equal(t, "None", CompressionNone.String())
	assert.Equal(t, "Unknown", CompressionType(0xFF).String())
}
