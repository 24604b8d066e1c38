// Package lang implements the string-table codec used for both the
// in-script dialog tables and the standalone menu/system text tables. A
// TextTable is a self-terminating offset table of strings, each string
// spanning from its offset to the next one (or to the end); a
// LanguageTable groups many of them (or opaque byte blobs) behind one
// offset table, one per in-game language slot.
package lang

import (
	"github.com/mnl-modding/mnllib-go/mnlerr"
)

// TextboxSize is the two-byte (width, height) pair dialog strings carry
// ahead of their text.
type TextboxSize struct {
	Width  uint8
	Height uint8
}

// TextTable is an offset-prefixed array of strings. Dialog tables carry a
// TextboxSize per string, stripped from the front of each string's bytes;
// non-dialog tables do not.
type TextTable struct {
	Strings      [][]byte
	IsDialog     bool
	TextboxSizes []TextboxSize // nil unless IsDialog
}

// TextTableFromBytes decodes a table. The offset array is self-terminating:
// offsets are read one u32 at a time until the read position reaches the
// first offset's value, which by construction is exactly the offset
// array's own byte length (the first string always follows immediately).
func TextTableFromBytes(data []byte, isDialog bool) (TextTable, error) {
	offsets, err := readSelfTerminatingOffsets(data)
	if err != nil {
		return TextTable{}, err
	}

	strings := make([][]byte, len(offsets))
	var sizes []TextboxSize
	if isDialog {
		sizes = make([]TextboxSize, len(offsets))
	}

	for i, offset := range offsets {
		end := len(data)
		if i+1 < len(offsets) {
			end = int(offsets[i+1])
		}
		if int(offset) > end || end > len(data) {
			return TextTable{}, mnlerr.ErrTruncated
		}
		stringData := data[offset:end]

		if isDialog {
			if len(stringData) < 2 {
				return TextTable{}, mnlerr.ErrTruncated
			}
			sizes[i] = TextboxSize{Width: stringData[0], Height: stringData[1]}
			stringData = stringData[2:]
		}

		strings[i] = append([]byte(nil), stringData...)
	}

	return TextTable{Strings: strings, IsDialog: isDialog, TextboxSizes: sizes}, nil
}

// Bytes re-encodes the table.
func (t TextTable) Bytes() []byte {
	baseOffset := len(t.Strings) * 4

	var offsetsRaw, stringsRaw []byte
	for i, s := range t.Strings {
		var offsetBuf [4]byte
		byteOrder.PutUint32(offsetBuf[:], uint32(baseOffset+len(stringsRaw)))
		offsetsRaw = append(offsetsRaw, offsetBuf[:]...)

		if t.IsDialog {
			stringsRaw = append(stringsRaw, t.TextboxSizes[i].Width, t.TextboxSizes[i].Height)
		}
		stringsRaw = append(stringsRaw, s...)
	}

	return append(offsetsRaw, stringsRaw...)
}

// readSelfTerminatingOffsets reads u32 offsets from the start of data until
// the read cursor reaches the value of the first offset read.
func readSelfTerminatingOffsets(data []byte) ([]uint32, error) {
	var offsets []uint32
	pos := 0

	for {
		if len(offsets) > 0 && pos >= int(offsets[0]) {
			break
		}
		if pos+4 > len(data) {
			return nil, mnlerr.ErrTruncated
		}
		offsets = append(offsets, byteOrder.Uint32(data[pos:pos+4]))
		pos += 4
	}

	return offsets, nil
}
