package script

import (
	"encoding/binary"

	"github.com/mnl-modding/mnllib-go/mnlerr"
	"github.com/mnl-modding/mnllib-go/param"
	"github.com/mnl-modding/mnllib-go/warn"
)

// Array4Entry is one record of the header's fourth array (section 2): five loosely
// understood u32 fields whose exact meaning hasn't been reverse engineered
// beyond their shape.
type Array4Entry [5]uint32

// Header is a script's fixed preamble: three section-offset pointers and
// the variable-length arrays and tables they delimit, followed by the
// per-subroutine offset table and an optional stray subroutine living
// between that table and the first real subroutine (PostTableSubroutine).
type Header struct {
	Unk0x00      [12]byte
	OffsetsUnk1  []byte
	Array1       []uint32
	Var1         uint32
	Array2       []uint32
	Var2         uint32
	Array3       []uint16
	Section1Unk1 []byte
	Array4       []Array4Entry
	Array5       []uint16

	// SubroutineTable holds each subroutine's byte offset relative to the
	// position immediately after the whole header (including
	// PostTableSubroutine), i.e. the start of the subroutines blob.
	SubroutineTable     []int
	PostTableSubroutine Subroutine
}

const headerFixedPrefixSize = 0x18 // unk_0x00 (12) + 3 section offsets (12)

// readHeader decodes a Header starting at the beginning of data, returning
// the header and the number of bytes it consumed (the offset at which the
// subroutines blob begins).
func readHeader(data []byte, table param.Table, reporter warn.Reporter) (Header, int, error) {
	if reporter == nil {
		reporter = warn.Discard
	}

	c := newCursor(data)
	var h Header

	unk0x00, err := c.readBytes(12)
	if err != nil {
		return Header{}, 0, err
	}
	copy(h.Unk0x00[:], unk0x00)

	section1Offset, err := c.readU32()
	if err != nil {
		return Header{}, 0, err
	}
	section2Offset, err := c.readU32()
	if err != nil {
		return Header{}, 0, err
	}
	section3Offset, err := c.readU32()
	if err != nil {
		return Header{}, 0, err
	}

	offsetsUnk1, err := c.readBytes(int(section1Offset) - c.tell())
	if err != nil {
		return Header{}, 0, err
	}
	h.OffsetsUnk1 = append([]byte(nil), offsetsUnk1...)

	array1, err := readCountPlusOneU32Array(c)
	if err != nil {
		return Header{}, 0, err
	}
	h.Array1 = array1

	h.Var1, err = c.readU32()
	if err != nil {
		return Header{}, 0, err
	}

	array2, err := readCountPlusOneU32Array(c)
	if err != nil {
		return Header{}, 0, err
	}
	h.Array2 = array2

	h.Var2, err = c.readU32()
	if err != nil {
		return Header{}, 0, err
	}

	array3, err := readU16PrefixedU16Array(c)
	if err != nil {
		return Header{}, 0, err
	}
	h.Array3 = array3

	section1Unk1, err := c.readBytes(int(section2Offset) - c.tell())
	if err != nil {
		return Header{}, 0, err
	}
	h.Section1Unk1 = append([]byte(nil), section1Unk1...)

	array4Count, err := c.readU32()
	if err != nil {
		return Header{}, 0, err
	}
	h.Array4 = make([]Array4Entry, array4Count)
	for i := range h.Array4 {
		for j := 0; j < 5; j++ {
			v, err := c.readU32()
			if err != nil {
				return Header{}, 0, err
			}
			h.Array4[i][j] = v
		}
	}

	if c.tell() != int(section3Offset) {
		reporter(warn.Warning{
			Code:    warn.CodeHeaderSectionGap,
			Message: "extra or missing bytes between the 2nd and 3rd header sections",
		})
		c.seek(int(section3Offset))
	}

	array5, err := readU16PrefixedU16Array(c)
	if err != nil {
		return Header{}, 0, err
	}
	h.Array5 = array5

	subroutineTable, postTableSubroutine, headerEnd, err := readSubroutineLayout(data, c.tell(), int(section3Offset), table)
	if err != nil {
		return Header{}, 0, err
	}
	h.SubroutineTable = subroutineTable
	h.PostTableSubroutine = postTableSubroutine

	return h, headerEnd, nil
}

func readCountPlusOneU32Array(c *cursor) ([]uint32, error) {
	countPlusOne, err := c.readU32()
	if err != nil {
		return nil, err
	}
	if countPlusOne == 0 {
		return nil, mnlerr.ErrTruncated
	}
	count := int(countPlusOne - 1)
	out := make([]uint32, count)
	for i := range out {
		v, err := c.readU32()
		if err != nil {
			return nil, err
		}
		out[i] = v
	}
	return out, nil
}

func readU16PrefixedU16Array(c *cursor) ([]uint16, error) {
	count, err := c.readU16()
	if err != nil {
		return nil, err
	}
	out := make([]uint16, count)
	for i := range out {
		v, err := c.readU16()
		if err != nil {
			return nil, err
		}
		out[i] = v
	}
	return out, nil
}

// readSubroutineLayout implements the self-terminating subroutine offset
// table: entries are appended as long as the cursor hasn't yet reached the
// byte position the first entry names, unless a later entry's value drops
// below the previous one — a sign that what was just read is not another
// offset but the start of bytecode squeezed in between the table and the
// first real subroutine. startPos and section3Offset are both absolute
// offsets into data.
func readSubroutineLayout(data []byte, startPos, section3Offset int, table param.Table) ([]int, Subroutine, int, error) {
	pos := startPos
	var raw []int

	for {
		if len(raw) > 0 && pos-section3Offset >= raw[0] {
			break
		}

		if pos+2 > len(data) {
			return nil, Subroutine{}, 0, mnlerr.ErrTruncated
		}
		offset := int(binary.LittleEndian.Uint16(data[pos : pos+2]))

		if len(raw) > 0 && offset < raw[len(raw)-1] {
			remaining := raw[0] + section3Offset - pos
			if remaining < 0 || pos+remaining > len(data) {
				return nil, Subroutine{}, 0, mnlerr.ErrTruncated
			}
			postTableSubroutine, err := SubroutineFromBytes(data[pos:pos+remaining], table)
			if err != nil {
				return nil, Subroutine{}, 0, err
			}
			pos += remaining
			return normalizeSubroutineTable(raw, pos, section3Offset), postTableSubroutine, pos, nil
		}

		raw = append(raw, offset)
		pos += 2
	}

	return normalizeSubroutineTable(raw, pos, section3Offset), Subroutine{}, pos, nil
}

func normalizeSubroutineTable(raw []int, headerEnd, section3Offset int) []int {
	base := headerEnd - section3Offset
	out := make([]int, len(raw))
	for i, v := range raw {
		out[i] = v - base
	}
	return out
}

// Bytes re-encodes the header. postTableSubroutineRaw must be the already
// encoded PostTableSubroutine (callers need its length to compute offsets
// before the rest of the header can be laid out, so script.Script produces
// it once and threads it through).
func (h Header) Bytes(table param.Table, postTableSubroutineRaw []byte) ([]byte, error) {
	section1Offset := headerFixedPrefixSize + len(h.OffsetsUnk1)
	section2Offset := section1Offset +
		(2+len(h.Array1))*4 +
		(2+len(h.Array2))*4 +
		(1+len(h.Array3))*2 +
		len(h.Section1Unk1)
	section3Offset := section2Offset + 4 + len(h.Array4)*20
	headerEndOffset := section3Offset +
		2 +
		len(h.Array5)*2 +
		len(h.SubroutineTable)*2 +
		len(postTableSubroutineRaw)

	out := make([]byte, 0, headerEndOffset)
	out = append(out, h.Unk0x00[:]...)

	var offsets [12]byte
	binary.LittleEndian.PutUint32(offsets[0:4], uint32(section1Offset))
	binary.LittleEndian.PutUint32(offsets[4:8], uint32(section2Offset))
	binary.LittleEndian.PutUint32(offsets[8:12], uint32(section3Offset))
	out = append(out, offsets[:]...)

	out = append(out, h.OffsetsUnk1...)

	out = appendCountPlusOneU32Array(out, h.Array1)
	out = appendU32(out, h.Var1)
	out = appendCountPlusOneU32Array(out, h.Array2)
	out = appendU32(out, h.Var2)
	out = appendU16PrefixedU16Array(out, h.Array3)
	out = append(out, h.Section1Unk1...)

	out = appendU32(out, uint32(len(h.Array4)))
	for _, entry := range h.Array4 {
		for _, v := range entry {
			out = appendU32(out, v)
		}
	}

	out = appendU16PrefixedU16Array(out, h.Array5)

	subroutineBaseOffset := headerEndOffset - section3Offset
	for _, offset := range h.SubroutineTable {
		out = appendU16(out, uint16(offset+subroutineBaseOffset))
	}
	out = append(out, postTableSubroutineRaw...)

	return out, nil
}

func appendU32(buf []byte, v uint32) []byte {
	var tmp [4]byte
	binary.LittleEndian.PutUint32(tmp[:], v)
	return append(buf, tmp[:]...)
}

func appendU16(buf []byte, v uint16) []byte {
	var tmp [2]byte
	binary.LittleEndian.PutUint16(tmp[:], v)
	return append(buf, tmp[:]...)
}

func appendCountPlusOneU32Array(buf []byte, arr []uint32) []byte {
	buf = appendU32(buf, uint32(len(arr)+1))
	for _, v := range arr {
		buf = appendU32(buf, v)
	}
	return buf
}

func appendU16PrefixedU16Array(buf []byte, arr []uint16) []byte {
	buf = appendU16(buf, uint16(len(arr)))
	for _, v := range arr {
		buf = appendU16(buf, v)
	}
	return buf
}
