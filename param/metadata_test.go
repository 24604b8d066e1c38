package param

import (
	"testing"

	"github.com/mnl-modding/mnllib-go/mnlerr"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMetadata_RoundTrip(t *testing.T) {
	cases := []Metadata{
		{HasReturnValue: false, ParameterTypes: nil},
		{HasReturnValue: true, ParameterTypes: []ParamType{TypeU8}},
		{HasReturnValue: false, ParameterTypes: []ParamType{TypeU8, TypeI8, TypeU16, TypeI16, TypeU32, TypeI32}},
		{HasReturnValue: true, ParameterTypes: make([]ParamType, maxNibbleSlots)},
	}

	for _, m := range cases {
		encoded, err := m.Bytes()
		require.NoError(t, err)
		assert.Len(t, encoded, metadataRecordSize)

		decoded, err := FromBytes(encoded)
		require.NoError(t, err)
		assert.Equal(t, m.HasReturnValue, decoded.HasReturnValue)
		assert.Equal(t, m.ParameterTypes, decoded.ParameterTypes)
	}
}

func TestMetadata_FromBytes_ConcreteScenario(t *testing.T) {
	// bitfield 0x82: has_return_value=1, number_of_parameters=2
	// types packed in byte 1: nibble0=TypeU16(2), nibble1=TypeI32(5)
	raw := make([]byte, 16)
	raw[0] = 0x82
	raw[1] = byte(TypeU16) | byte(TypeI32)<<4

	m, err := FromBytes(raw)
	require.NoError(t, err)
	assert.True(t, m.HasReturnValue)
	assert.Equal(t, []ParamType{TypeU16, TypeI32}, m.ParameterTypes)
}

func TestMetadata_FromBytes_WrongLength(t *testing.T) {
	_, err := FromBytes(make([]byte, 10))
	require.ErrorIs(t, err, mnlerr.ErrTruncated)
}

func TestMetadata_Bytes_RejectsOversizedTypeList(t *testing.T) {
	m := Metadata{ParameterTypes: make([]ParamType, maxNibbleSlots+1)}
	_, err := m.Bytes()
	require.ErrorIs(t, err, mnlerr.ErrInvalidParameterType)
}
