package param

import (
	"encoding/binary"

	"github.com/mnl-modding/mnllib-go/mnlerr"
)

// ParamType is the nibble value a metadata record uses to select how a
// non-Variable argument is packed. These six widths cover every fixed-size
// integer field the command set uses; nothing in the script format calls
// for floating-point command arguments.
type ParamType uint8

const (
	TypeU8 ParamType = iota
	TypeI8
	TypeU16
	TypeI16
	TypeU32
	TypeI32
)

// Width returns the on-disk size in bytes of t, or 0 if t is not a known
// type.
func (t ParamType) Width() int {
	switch t {
	case TypeU8, TypeI8:
		return 1
	case TypeU16, TypeI16:
		return 2
	case TypeU32, TypeI32:
		return 4
	default:
		return 0
	}
}

// ReadValue decodes one fixed-width literal argument from data, sign- or
// zero-extending it to int64 per t.
func ReadValue(t ParamType, data []byte) (int64, error) {
	width := t.Width()
	if width == 0 || len(data) < width {
		return 0, mnlerr.ErrInvalidParameterType
	}

	switch t {
	case TypeU8:
		return int64(data[0]), nil
	case TypeI8:
		return int64(int8(data[0])), nil
	case TypeU16:
		return int64(binary.LittleEndian.Uint16(data)), nil
	case TypeI16:
		return int64(int16(binary.LittleEndian.Uint16(data))), nil
	case TypeU32:
		return int64(binary.LittleEndian.Uint32(data)), nil
	case TypeI32:
		return int64(int32(binary.LittleEndian.Uint32(data))), nil
	default:
		return 0, mnlerr.ErrInvalidParameterType
	}
}

// AppendValue encodes value as type t, appending it to buf.
func AppendValue(buf []byte, t ParamType, value int64) ([]byte, error) {
	switch t {
	case TypeU8, TypeI8:
		return append(buf, byte(value)), nil
	case TypeU16, TypeI16:
		var tmp [2]byte
		binary.LittleEndian.PutUint16(tmp[:], uint16(value))
		return append(buf, tmp[:]...), nil
	case TypeU32, TypeI32:
		var tmp [4]byte
		binary.LittleEndian.PutUint32(tmp[:], uint32(value))
		return append(buf, tmp[:]...), nil
	default:
		return nil, mnlerr.ErrInvalidParameterType
	}
}
