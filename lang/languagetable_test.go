package lang

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLanguageTable_RoundTrip_NonDialog(t *testing.T) {
	lt := &LanguageTable{
		Index:    3,
		IsDialog: false,
		Entries: []Entry{
			{Kind: EntryTable, Table: TextTable{Strings: [][]byte{[]byte("a"), []byte("b")}}},
			{Kind: EntryTable, Table: TextTable{Strings: [][]byte{[]byte("c")}}},
			{Kind: EntryOpaque, Raw: []byte{0xDE, 0xAD, 0xBE, 0xEF}},
		},
	}

	encoded := lt.Bytes()
	got, err := LanguageTableFromBytes(encoded, false, lt.Index)
	require.NoError(t, err)

	require.Len(t, got.Entries, len(lt.Entries))
	assert.Equal(t, lt.Entries[0].Kind, got.Entries[0].Kind)
	assert.Equal(t, lt.Entries[0].Table.Strings, got.Entries[0].Table.Strings)
	assert.Equal(t, lt.Entries[1].Table.Strings, got.Entries[1].Table.Strings)
	assert.Equal(t, EntryOpaque, got.Entries[2].Kind)
	assert.Equal(t, lt.Entries[2].Raw, got.Entries[2].Raw)

	reencoded := got.Bytes()
	assert.Equal(t, encoded, reencoded)
}

func TestLanguageTable_RoundTrip_Dialog(t *testing.T) {
	entries := make([]Entry, dialogNumSlots)
	for i := range entries {
		if i >= dialogStructuredStart && i <= dialogStructuredEnd {
			entries[i] = Entry{Kind: EntryTable, Table: TextTable{
				Strings:      [][]byte{[]byte("line")},
				IsDialog:     true,
				TextboxSizes: []TextboxSize{{Width: 5, Height: 1}},
			}}
		} else {
			entries[i] = Entry{Kind: EntryOpaque, Raw: []byte{byte(i)}}
		}
	}

	lt := &LanguageTable{Index: 0, IsDialog: true, Entries: entries}
	encoded := lt.Bytes()

	got, err := LanguageTableFromBytes(encoded, true, 0)
	require.NoError(t, err)
	require.Len(t, got.Entries, len(entries))

	for i := range entries {
		if i >= dialogStructuredStart && i <= dialogStructuredEnd {
			assert.Equal(t, EntryTable, got.Entries[i].Kind, "slot %d", i)
			assert.Equal(t, entries[i].Table.Strings, got.Entries[i].Table.Strings, "slot %d", i)
		} else {
			assert.Equal(t, EntryOpaque, got.Entries[i].Kind, "slot %d", i)
			assert.Equal(t, entries[i].Raw, got.Entries[i].Raw, "slot %d", i)
		}
	}

	reencoded := got.Bytes()
	assert.Equal(t, encoded, reencoded)
}

// TestLanguageTable_RoundTrip_ShortDialog decodes a 2-slot dialog table:
// slot 0 absent, slot 1 a textbox (3,4) "Hi" payload. Slot 1's index (1)
// falls outside the dialog structured range [0x44, 0x48], so — matching
// original_source/mnllib/text.py's from_bytes exactly — it decodes as an
// opaque blob rather than a nested TextTable. A dialog table's slot count
// is whatever its own offset table says; it must not be rejected just
// because it isn't the game's usual 74-slot table.
func TestLanguageTable_RoundTrip_ShortDialog(t *testing.T) {
	data := []byte{
		0x08, 0x00, 0x00, 0x00, // offsets[0]
		0x08, 0x00, 0x00, 0x00, // offsets[1]
		0x04, 0x00, 0x00, 0x00, // slot 1 body: nested TextTable offset
		0x03, 0x04, // textbox (3, 4)
		0x48, 0x69, // "Hi"
	}

	got, err := LanguageTableFromBytes(data, true, 0)
	require.NoError(t, err)
	require.Len(t, got.Entries, 2)

	assert.Equal(t, EntryEmpty, got.Entries[0].Kind)

	assert.Equal(t, EntryOpaque, got.Entries[1].Kind)
	assert.Equal(t, data[8:], got.Entries[1].Raw)

	assert.Equal(t, data, got.Bytes())
}

func TestLanguageTable_EmptySlotRoundTripsAsAbsent(t *testing.T) {
	lt := &LanguageTable{
		Index:    1,
		IsDialog: false,
		Entries: []Entry{
			{Kind: EntryTable, Table: TextTable{Strings: [][]byte{[]byte("x")}}},
			{Kind: EntryEmpty},
			{Kind: EntryOpaque, Raw: []byte{0x01}},
		},
	}

	encoded := lt.Bytes()
	got, err := LanguageTableFromBytes(encoded, false, lt.Index)
	require.NoError(t, err)

	require.Len(t, got.Entries, 3)
	assert.Equal(t, EntryEmpty, got.Entries[1].Kind)
	assert.Empty(t, got.Entries[1].Raw)
}
