// Package script implements the FEvent command-script codec: a fixed
// header of cross-referenced arrays and offset tables, followed by a blob
// of subroutines, each a run of bitfield-driven variable-width commands.
// Parsing a script requires the param.Table for whichever context (FEvent,
// battle, menu, shop) it belongs to, since argument counts and widths are
// looked up by command ID in that table rather than encoded inline.
package script

import (
	"github.com/mnl-modding/mnllib-go/param"
	"github.com/mnl-modding/mnllib-go/warn"
)

// Script is a full FEvent chunk: its header and the subroutines the
// header's offset table points into.
type Script struct {
	Index       int
	Header      Header
	Subroutines []Subroutine
}

// FromBytes parses a whole script chunk. table must be the metadata table
// for the context this script's command IDs are drawn from.
func FromBytes(data []byte, index int, table param.Table, reporter warn.Reporter) (*Script, error) {
	header, subroutineBaseOffset, err := readHeader(data, table, reporter)
	if err != nil {
		return nil, err
	}

	subroutines := make([]Subroutine, len(header.SubroutineTable))
	for i := range header.SubroutineTable {
		start := subroutineBaseOffset + header.SubroutineTable[i]

		end := len(data)
		if i+1 < len(header.SubroutineTable) {
			end = subroutineBaseOffset + header.SubroutineTable[i+1]
		}

		sub, err := SubroutineFromBytes(data[start:end], table)
		if err != nil {
			return nil, err
		}
		subroutines[i] = sub
	}

	return &Script{Index: index, Header: header, Subroutines: subroutines}, nil
}

// Bytes re-encodes the script, recomputing the header's subroutine offset
// table from the current Subroutines slice so edits to subroutine contents
// stay consistent with the offsets that point into them.
func (s *Script) Bytes(table param.Table) ([]byte, error) {
	postTableSubroutineRaw, err := s.Header.PostTableSubroutine.Bytes(table)
	if err != nil {
		return nil, err
	}

	var subroutinesRaw []byte
	subroutineTable := make([]int, len(s.Subroutines))
	for i, sub := range s.Subroutines {
		subroutineTable[i] = len(subroutinesRaw)
		encoded, err := sub.Bytes(table)
		if err != nil {
			return nil, err
		}
		subroutinesRaw = append(subroutinesRaw, encoded...)
	}
	s.Header.SubroutineTable = subroutineTable

	headerRaw, err := s.Header.Bytes(table, postTableSubroutineRaw)
	if err != nil {
		return nil, err
	}

	return append(headerRaw, subroutinesRaw...), nil
}
