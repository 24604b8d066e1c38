package script

import (
	"errors"

	"github.com/mnl-modding/mnllib-go/mnlerr"
	"github.com/mnl-modding/mnllib-go/param"
)

// Subroutine is a run of commands followed by a footer: whatever trailing
// bytes stopped parsing as a valid command. Scripts routinely end a
// subroutine with data that doesn't parse as a command (padding, or a
// command ID past the table the active context knows about), and the
// round-trip contract requires preserving those bytes byte-for-byte rather
// than discarding them.
type Subroutine struct {
	Commands []Command
	Footer   []byte
}

// SubroutineFromBytes parses commands from data until one fails to parse,
// then captures everything from that point on (inclusive) as the footer.
// An empty input yields a Subroutine with no commands and no footer.
func SubroutineFromBytes(data []byte, table param.Table) (Subroutine, error) {
	c := newCursor(data)
	var commands []Command

	for c.remaining() > 0 {
		start := c.tell()
		cmd, err := commandFromCursor(c, table)
		if err != nil {
			if isCommandParsingError(err) {
				c.seek(start)
				return Subroutine{Commands: commands, Footer: append([]byte(nil), data[start:]...)}, nil
			}
			return Subroutine{}, err
		}
		commands = append(commands, cmd)
	}

	return Subroutine{Commands: commands}, nil
}

// isCommandParsingError reports whether err is one of the recoverable
// per-command failures that should end a subroutine's command stream and
// fall back to treating the remainder as an opaque footer: a truncated read,
// an invalid command ID, or an invalid parameter type. Any other error is
// returned to the caller.
func isCommandParsingError(err error) bool {
	return errors.Is(err, mnlerr.ErrTruncated) ||
		errors.Is(err, mnlerr.ErrInvalidCommandID) ||
		errors.Is(err, mnlerr.ErrInvalidParameterType)
}

// Bytes re-encodes the subroutine: every command in order, then the footer
// verbatim.
func (s Subroutine) Bytes(table param.Table) ([]byte, error) {
	var out []byte
	for _, cmd := range s.Commands {
		encoded, err := cmd.Bytes(table)
		if err != nil {
			return nil, err
		}
		out = append(out, encoded...)
	}
	out = append(out, s.Footer...)
	return out, nil
}
