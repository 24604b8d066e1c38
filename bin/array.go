package bin

import (
	"encoding/binary"
	"io"

	"github.com/mnl-modding/mnllib-go/mnlerr"
)

// ReadLengthPrefixedArray reads a count (lengthBytes wide, little-endian,
// lengthBytes one of 2 or 4) followed by that many elements, each decoded by
// readElem. It is the generic replacement for the original tool's
// read_length_prefixed_array, specialized per call site instead of driven by
// a runtime struct-format string.
func ReadLengthPrefixedArray[T any](r io.Reader, lengthBytes int, readElem func(io.Reader) (T, error)) ([]T, error) {
	count, err := readUintLE(r, lengthBytes)
	if err != nil {
		return nil, err
	}

	elems := make([]T, 0, count)
	for i := uint32(0); i < count; i++ {
		elem, err := readElem(r)
		if err != nil {
			return nil, err
		}
		elems = append(elems, elem)
	}

	return elems, nil
}

// ReadLengthPlusOnePrefixedU32Array reads a u32 count N+1 followed by N u32
// elements, the encoding script header section 1 uses for array1 and array2.
func ReadLengthPlusOnePrefixedU32Array(r io.Reader) ([]uint32, error) {
	countPlusOne, err := readUintLE(r, 4)
	if err != nil {
		return nil, err
	}
	if countPlusOne == 0 {
		return nil, mnlerr.ErrTruncated
	}
	count := countPlusOne - 1

	elems := make([]uint32, 0, count)
	for i := uint32(0); i < count; i++ {
		v, err := readUintLE(r, 4)
		if err != nil {
			return nil, err
		}
		elems = append(elems, v)
	}

	return elems, nil
}

// WriteLengthPlusOnePrefixedU32Array writes len(elems)+1 as a u32, followed
// by each element as a u32, mirroring ReadLengthPlusOnePrefixedU32Array.
func WriteLengthPlusOnePrefixedU32Array(w io.Writer, elems []uint32) error {
	if err := writeUintLE(w, 4, uint32(len(elems)+1)); err != nil {
		return err
	}
	for _, v := range elems {
		if err := writeUintLE(w, 4, v); err != nil {
			return err
		}
	}

	return nil
}

func readUintLE(r io.Reader, width int) (uint32, error) {
	buf := make([]byte, width)
	if _, err := io.ReadFull(r, buf); err != nil {
		return 0, mnlerr.ErrTruncated
	}

	switch width {
	case 2:
		return uint32(binary.LittleEndian.Uint16(buf)), nil
	case 4:
		return binary.LittleEndian.Uint32(buf), nil
	default:
		panic("bin: unsupported width")
	}
}

func writeUintLE(w io.Writer, width int, v uint32) error {
	buf := make([]byte, width)
	switch width {
	case 2:
		binary.LittleEndian.PutUint16(buf, uint16(v))
	case 4:
		binary.LittleEndian.PutUint32(buf, v)
	default:
		panic("bin: unsupported width")
	}

	_, err := w.Write(buf)
	return err
}
