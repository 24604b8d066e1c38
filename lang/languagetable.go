package lang

import (
	"github.com/mnl-modding/mnllib-go/endian"
	"github.com/mnl-modding/mnllib-go/mnlerr"
)

var byteOrder = endian.LittleEndian()

// EntryKind discriminates what a LanguageTable slot holds.
type EntryKind int

const (
	// EntryEmpty is a zero-length slot: present in the offset table but
	// carrying no bytes.
	EntryEmpty EntryKind = iota
	// EntryTable is a slot decoded as a nested TextTable.
	EntryTable
	// EntryOpaque is a slot whose bytes are preserved as-is because this
	// table's classification rule doesn't recognize it as string data.
	EntryOpaque
)

// Entry is one slot of a LanguageTable.
type Entry struct {
	Kind  EntryKind
	Table TextTable
	Raw   []byte
}

// dialogStructuredRange is the slot index range (inclusive) that a dialog
// LanguageTable decodes as TextTables; every other slot is opaque except
// when empty. Non-dialog tables invert this: every slot except the last is
// a TextTable.
const (
	dialogStructuredStart = 0x44
	dialogStructuredEnd   = 0x48

	// dialogNumSlots is the slot count the game's own dialog table always
	// carries in practice. It is why the FEvent chunk discriminator's magic
	// value of 0x128 works at all — a self-terminating offset table's first
	// u32 always equals numSlots*4, and dialogNumSlots*4 == 0x128 — but a
	// dialog table is classified by its offset table, not by this count, so
	// LanguageTableFromBytes never enforces it: a differently-sized dialog
	// table still decodes when passed to it directly, although container's
	// chunk discriminator decodes a FEvent chunk whose first u32 is not
	// 0x128 as a script.
	dialogNumSlots = 0x4A
)

// LanguageTable is a per-language collection of text slots — a dialog table
// embedded in FEvent.dat, or a standalone system/menu text table. It is one
// arm of the FEvent chunk discriminated union (see package container): every
// FEvent.dat chunk whose first u32 is 0x128 decodes as a dialog
// LanguageTable.
type LanguageTable struct {
	Index    int
	IsDialog bool
	Entries  []Entry
}

// LanguageTableFromBytes decodes a whole table.
func LanguageTableFromBytes(data []byte, isDialog bool, index int) (*LanguageTable, error) {
	offsets, err := readSelfTerminatingOffsets(data)
	if err != nil {
		return nil, err
	}

	entries := make([]Entry, len(offsets))
	for i, offset := range offsets {
		end := len(data)
		if i+1 < len(offsets) {
			end = int(offsets[i+1])
		}
		if int(offset) > end || end > len(data) {
			return nil, mnlerr.ErrTruncated
		}
		slice := data[offset:end]

		switch {
		case len(slice) == 0:
			entries[i] = Entry{Kind: EntryEmpty}
		case isStructuredSlot(isDialog, i, len(offsets)):
			table, err := TextTableFromBytes(slice, isDialog)
			if err != nil {
				return nil, err
			}
			entries[i] = Entry{Kind: EntryTable, Table: table}
		default:
			entries[i] = Entry{Kind: EntryOpaque, Raw: append([]byte(nil), slice...)}
		}
	}

	return &LanguageTable{Index: index, IsDialog: isDialog, Entries: entries}, nil
}

// isStructuredSlot reports whether slot i of a table of the given length
// decodes as a TextTable rather than an opaque blob: for dialog tables,
// only the fixed index range [0x44, 0x48]; for non-dialog tables, every
// slot except the last.
func isStructuredSlot(isDialog bool, i, numSlots int) bool {
	if isDialog {
		return i >= dialogStructuredStart && i <= dialogStructuredEnd
	}
	return i != numSlots-1
}

// Bytes re-encodes the table.
func (lt *LanguageTable) Bytes() []byte {
	baseOffset := len(lt.Entries) * 4

	var offsetsRaw, entriesRaw []byte
	for _, entry := range lt.Entries {
		var offsetBuf [4]byte
		byteOrder.PutUint32(offsetBuf[:], uint32(baseOffset+len(entriesRaw)))
		offsetsRaw = append(offsetsRaw, offsetBuf[:]...)

		switch entry.Kind {
		case EntryTable:
			entriesRaw = append(entriesRaw, entry.Table.Bytes()...)
		case EntryOpaque:
			entriesRaw = append(entriesRaw, entry.Raw...)
		case EntryEmpty:
			// contributes no bytes; its offset equals the next entry's.
		}
	}

	return append(offsetsRaw, entriesRaw...)
}
