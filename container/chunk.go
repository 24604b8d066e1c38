// Package container implements the overlay/FEvent container manager: the
// glue that binds fixed overlay addresses (package gameaddr) to the
// in-memory script, parameter-metadata, and language-table structures the
// rest of this module decodes. It is the primary entry point a caller uses
// instead of wiring the lower-level codecs by hand.
package container

import (
	"github.com/mnl-modding/mnllib-go/lang"
	"github.com/mnl-modding/mnllib-go/param"
	"github.com/mnl-modding/mnllib-go/script"
	"github.com/mnl-modding/mnllib-go/warn"
)

// languageTableMagic is the leading u32 that distinguishes a FEvent chunk
// holding a dialog LanguageTable from one holding a Script.
const languageTableMagic = 0x128

// ChunkKind discriminates a FEvent chunk's payload.
type ChunkKind int

const (
	// ChunkEmpty is a zero-length chunk slot: present in the offset table
	// but carrying no bytes.
	ChunkEmpty ChunkKind = iota
	// ChunkScript is an FEvent command script.
	ChunkScript
	// ChunkLanguageTable is the embedded dialog table.
	ChunkLanguageTable
)

// Chunk is one slot of an FEvent offset triple.
type Chunk struct {
	Kind          ChunkKind
	Script        *script.Script
	LanguageTable *lang.LanguageTable
}

// parseChunk classifies and decodes raw FEvent chunk bytes: empty data is
// absent; a leading magic u32 of 0x128 is a dialog language table; anything
// else is a command script.
func parseChunk(data []byte, index int, table param.Table, reporter warn.Reporter) (Chunk, error) {
	if len(data) == 0 {
		return Chunk{Kind: ChunkEmpty}, nil
	}

	if len(data) >= 4 && byteOrder.Uint32(data) == languageTableMagic {
		lt, err := lang.LanguageTableFromBytes(data, true, index)
		if err != nil {
			return Chunk{}, err
		}
		return Chunk{Kind: ChunkLanguageTable, LanguageTable: lt}, nil
	}

	s, err := script.FromBytes(data, index, table, reporter)
	if err != nil {
		return Chunk{}, err
	}
	return Chunk{Kind: ChunkScript, Script: s}, nil
}

// Bytes re-encodes the chunk, or returns nil for an empty slot.
func (c Chunk) Bytes(table param.Table) ([]byte, error) {
	switch c.Kind {
	case ChunkEmpty:
		return nil, nil
	case ChunkLanguageTable:
		return c.LanguageTable.Bytes(), nil
	case ChunkScript:
		return c.Script.Bytes(table)
	default:
		return nil, nil
	}
}
