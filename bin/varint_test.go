package bin

import (
	"bytes"
	"math/rand/v2"
	"testing"

	"github.com/mnl-modding/mnllib-go/mnlerr"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReadVarint_ConcreteScenarios(t *testing.T) {
	tests := []struct {
		name  string
		bytes []byte
		value uint32
	}{
		{"zero", []byte{0x00}, 0},
		{"max single byte", []byte{0x3F}, 0x3F},
		{"one continuation byte", []byte{0x7F, 0xFF}, 0x3FFF},
		{"two continuation bytes", []byte{0x80, 0x00, 0x01}, 0x4000},
		{"three continuation bytes", []byte{0xFF, 0xFF, 0xFF, 0xFF}, 0x3FFFFFFF},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v, err := ReadVarint(bytes.NewReader(tt.bytes))
			require.NoError(t, err)
			assert.Equal(t, tt.value, v)
		})
	}
}

func TestReadVarint_Truncated(t *testing.T) {
	_, err := ReadVarint(bytes.NewReader(nil))
	require.ErrorIs(t, err, mnlerr.ErrTruncated)

	_, err = ReadVarint(bytes.NewReader([]byte{0x40}))
	require.ErrorIs(t, err, mnlerr.ErrTruncated)
}

func TestAppendVarint_RoundTrip(t *testing.T) {
	for i := 0; i < 5000; i++ {
		v := rand.Uint32N(1 << 30)
		buf := AppendVarint(nil, v)
		got, err := ReadVarint(bytes.NewReader(buf))
		require.NoError(t, err)
		require.Equal(t, v, got, "round trip failed for %d (encoded % x)", v, buf)
	}
}

func TestAppendVarint_Boundaries(t *testing.T) {
	boundaries := []uint32{0, 1, 0x3F, 0x40, 0x3FFF, 0x4000, 0x3FFFFF, 0x400000, 0x3FFFFFFF}
	for _, v := range boundaries {
		buf := AppendVarint(nil, v)
		got, err := ReadVarint(bytes.NewReader(buf))
		require.NoError(t, err)
		assert.Equal(t, v, got)
	}
}

func TestAppendVarint_ShortestForm(t *testing.T) {
	assert.Len(t, AppendVarint(nil, 0), 1)
	assert.Len(t, AppendVarint(nil, 0x3F), 1)
	assert.Len(t, AppendVarint(nil, 0x40), 2)
	assert.Len(t, AppendVarint(nil, 0x3FFF), 2)
	assert.Len(t, AppendVarint(nil, 0x4000), 3)
	assert.Len(t, AppendVarint(nil, 0x3FFFFF), 3)
	assert.Len(t, AppendVarint(nil, 0x400000), 4)
	assert.Len(t, AppendVarint(nil, 0x3FFFFFFF), 4)
}

func TestWriteVarint(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteVarint(&buf, 100))
	v, err := ReadVarint(bytes.NewReader(buf.Bytes()))
	require.NoError(t, err)
	assert.Equal(t, uint32(100), v)
}

func TestReadVarintFrom_NonByteReader(t *testing.T) {
	r := struct{ *bytes.Reader }{bytes.NewReader([]byte{0x7F, 0xFF})}
	v, err := ReadVarintFrom(r)
	require.NoError(t, err)
	assert.Equal(t, uint32(0x3FFF), v)
}
