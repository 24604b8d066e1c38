// Package bin implements the primitive codec utilities every higher-level
// codec in this module builds on: the format's self-describing varint and
// generic length-prefixed array helpers, mirroring the role the original
// tool's utils.py plays for every other module.
package bin

import (
	"bufio"
	"io"

	"github.com/mnl-modding/mnllib-go/mnlerr"
)

// ReadVarint decodes a 6-bit-chunked self-describing integer.
//
// The first byte's top 2 bits give the number of continuation bytes (0-3);
// its bottom 6 bits are the least-significant payload. Each continuation byte
// contributes a further 8 bits, shifted in at bit positions 6, 14, and 22.
func ReadVarint(r io.ByteReader) (uint32, error) {
	first, err := r.ReadByte()
	if err != nil {
		return 0, mnlerr.ErrTruncated
	}

	numContinuation := uint(first >> 6)
	value := uint32(first & 0x3F)

	for i := uint(0); i < numContinuation; i++ {
		b, err := r.ReadByte()
		if err != nil {
			return 0, mnlerr.ErrTruncated
		}
		value |= uint32(b) << (6 + 8*i)
	}

	return value, nil
}

// ReadVarintFrom adapts any io.Reader to the io.ByteReader ReadVarint needs,
// buffering only if the reader doesn't already implement ByteReader.
func ReadVarintFrom(r io.Reader) (uint32, error) {
	if br, ok := r.(io.ByteReader); ok {
		return ReadVarint(br)
	}

	return ReadVarint(bufio.NewReader(r))
}

// AppendVarint encodes v in the shortest form ReadVarint can decode back to
// v, appending it to buf. v must be in [0, 2^30) — the same domain the
// reference encoder produces, since the 2-bit continuation-count field caps
// out at 3 extra bytes of 8 bits each on top of 6 payload bits (6+24=30).
func AppendVarint(buf []byte, v uint32) []byte {
	first := byte(v & 0x3F)
	rest := v >> 6

	if rest == 0 {
		return append(buf, first)
	}

	extra := make([]byte, 0, 3)
	for rest > 0xFF {
		extra = append(extra, byte(rest))
		rest >>= 8
	}
	if rest != 0 || len(extra) == 0 {
		extra = append(extra, byte(rest))
	}

	first |= byte(len(extra)) << 6
	buf = append(buf, first)
	buf = append(buf, extra...)

	return buf
}

// WriteVarint writes the encoding of v to w.
func WriteVarint(w io.Writer, v uint32) error {
	buf := AppendVarint(make([]byte, 0, 4), v)
	_, err := w.Write(buf)
	return err
}
