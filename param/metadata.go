// Package param implements the per-command argument metadata the FEvent
// script codec (package script) needs to know how many arguments a command
// takes, whether it produces a return value, and how each argument is
// encoded on the wire. This metadata does not live inside FEvent.dat itself:
// it is a flat table of fixed-size records embedded in the executable
// overlays, one table per script context (FEvent, battle, menu, shop), and
// must be loaded before a script in that context can be parsed or
// serialized (see container.Manager).
package param

import (
	"github.com/mnl-modding/mnllib-go/mnlerr"
)

// metadataRecordSize is the fixed on-disk size of one CommandParameterMetadata
// record: one bitfield byte followed by 15 bytes of nibble-packed parameter
// types (30 nibbles).
const metadataRecordSize = 16

const maxNibbleSlots = 2 * (metadataRecordSize - 1)

// Metadata describes a single command: whether it writes a return value
// into a Variable, and the type of each positional argument it consumes.
type Metadata struct {
	HasReturnValue bool
	ParameterTypes []ParamType
}

// FromBytes decodes one 16-byte metadata record.
func FromBytes(data []byte) (Metadata, error) {
	if len(data) != metadataRecordSize {
		return Metadata{}, mnlerr.ErrTruncated
	}

	bitfield := data[0]
	hasReturnValue := bitfield&0x80 != 0
	numberOfParameters := int(bitfield & 0x7F)
	if numberOfParameters > maxNibbleSlots {
		return Metadata{}, mnlerr.ErrInvalidParameterType
	}

	rawTypes := data[1:]
	var paramTypes []ParamType
	if numberOfParameters > 0 {
		paramTypes = make([]ParamType, numberOfParameters)
	}
	for i := 0; i < numberOfParameters; i++ {
		nibble := (rawTypes[i/2] >> ((i % 2) * 4)) & 0x0F
		paramTypes[i] = ParamType(nibble)
	}

	return Metadata{HasReturnValue: hasReturnValue, ParameterTypes: paramTypes}, nil
}

// Bytes encodes m back into its 16-byte on-disk form.
func (m Metadata) Bytes() ([]byte, error) {
	if len(m.ParameterTypes) > maxNibbleSlots {
		return nil, mnlerr.ErrInvalidParameterType
	}

	out := make([]byte, metadataRecordSize)
	bitfield := byte(len(m.ParameterTypes) & 0x7F)
	if m.HasReturnValue {
		bitfield |= 0x80
	}
	out[0] = bitfield

	for i, t := range m.ParameterTypes {
		if t > 0x0F {
			return nil, mnlerr.ErrInvalidParameterType
		}
		out[1+i/2] |= byte(t) << ((i % 2) * 4)
	}

	return out, nil
}
