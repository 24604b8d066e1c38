// Package endian provides the little-endian byte order engine used by every
// reader/writer in this module.
//
// The on-disk format this library speaks is unconditionally little-endian.
// Packages container and lang read and write their u32 fields through an
// EndianEngine obtained here rather than hardcoding
// encoding/binary.LittleEndian. The primitive-layer packages (bin, compress,
// param, script) call encoding/binary.LittleEndian directly.
package endian

import "encoding/binary"

// EndianEngine combines ByteOrder and AppendByteOrder from encoding/binary
// into a single interface, so callers can both decode in place and append to
// a growing buffer through the same value.
type EndianEngine interface {
	binary.ByteOrder
	binary.AppendByteOrder
}

// LittleEndian returns the engine used throughout mnllib. All overlay,
// script, and language-table fields are little-endian; this is the only
// engine this module ever constructs.
func LittleEndian() EndianEngine {
	return binary.LittleEndian
}
