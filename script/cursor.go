package script

import (
	"encoding/binary"

	"github.com/mnl-modding/mnllib-go/mnlerr"
)

// cursor is a small forward-and-backtrack reader over a byte slice, playing
// the role the original tool's io.BytesIO + tell()/seek() combination plays
// when parsing the header's variable-length sections.
type cursor struct {
	data []byte
	pos  int
}

func newCursor(data []byte) *cursor {
	return &cursor{data: data}
}

func (c *cursor) tell() int { return c.pos }

func (c *cursor) seek(pos int) { c.pos = pos }

func (c *cursor) remaining() int { return len(c.data) - c.pos }

func (c *cursor) readBytes(n int) ([]byte, error) {
	if n < 0 || c.pos+n > len(c.data) {
		return nil, mnlerr.ErrTruncated
	}
	b := c.data[c.pos : c.pos+n]
	c.pos += n
	return b, nil
}

func (c *cursor) readU16() (uint16, error) {
	b, err := c.readBytes(2)
	if err != nil {
		return 0, err
	}
	return binary.LittleEndian.Uint16(b), nil
}

func (c *cursor) readU32() (uint32, error) {
	b, err := c.readBytes(4)
	if err != nil {
		return 0, err
	}
	return binary.LittleEndian.Uint32(b), nil
}
