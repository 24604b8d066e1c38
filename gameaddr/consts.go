// Package gameaddr holds the fixed build-time parameters this library binds
// to: the absolute overlay offsets and per-context command counts.
// These are not configuration in the usual sense — they are
// addresses baked into one specific retail build of the game, the same way
// the original Python tool hardcodes them in its consts module. A different
// game revision would need a different gameaddr package, not a config file.
package gameaddr

// FEvent offset table, inside overlay 3.
const (
	// FEventOffsetTableLengthAddress is the absolute offset of the u32
	// length field that precedes the FEvent offset triples. The field holds
	// a byte count: (triples*3 + 2) * 4.
	FEventOffsetTableLengthAddress = 0x0022EB6C
	// FEventOffsetTableAddress is the absolute offset of the first triple,
	// immediately following the length field.
	FEventOffsetTableAddress = FEventOffsetTableLengthAddress + 4
)

// Command-parameter metadata tables, one per script context, each a flat
// array of 16-byte records (param.Metadata.Bytes/FromBytes).
const (
	// FEventCommandParameterMetadataTableAddress is the overlay 6 address of
	// the FEvent (cutscene) command metadata table.
	FEventCommandParameterMetadataTableAddress = 0x020D9B80
	// FEventNumberOfCommands is the number of entries in that table.
	FEventNumberOfCommands = 0x248

	// BattleCommandParameterMetadataTableAddress is the overlay 12 address of
	// the battle-script command metadata table.
	BattleCommandParameterMetadataTableAddress = 0x0206A4A0
	// BattleNumberOfCommands is the number of entries in that table.
	BattleNumberOfCommands = 0x1A6

	// MenuCommandParameterMetadataTableAddress is the overlay 123 address of
	// the menu-script command metadata table.
	MenuCommandParameterMetadataTableAddress = 0x02054E60
	// MenuNumberOfCommands is the number of entries in that table.
	MenuNumberOfCommands = 0xD2

	// ShopCommandParameterMetadataTableAddress is the overlay 124 address of
	// the shop-script command metadata table.
	ShopCommandParameterMetadataTableAddress = 0x02050220
	// ShopNumberOfCommands is the number of entries in that table.
	ShopNumberOfCommands = 0x5E
)

// Default file paths, matching the latest convention used by the original
// tool's extraction layout (data/FEvent, not data/data/FEvent).
const (
	DefaultOverlay3Path   = "data/overlay.dec/overlay_0003.dec.bin"
	DefaultOverlay6Path   = "data/overlay.dec/overlay_0006.dec.bin"
	DefaultOverlay12Path  = "data/overlay.dec/overlay_0012.dec.bin"
	DefaultOverlay123Path = "data/overlay.dec/overlay_0123.dec.bin"
	DefaultOverlay124Path = "data/overlay.dec/overlay_0124.dec.bin"
	DefaultFEventPath     = "data/FEvent/FEvent.dat"
)
