package script

import (
	"encoding/binary"

	"github.com/mnl-modding/mnllib-go/mnlerr"
	"github.com/mnl-modding/mnllib-go/param"
)

// Variable references one of the script engine's numbered scratch
// registers, used either as a command's result slot or in place of a
// literal argument.
type Variable struct {
	Number uint16
}

// VariableFromBytes decodes a 2-byte variable reference.
func VariableFromBytes(data []byte) (Variable, error) {
	if len(data) != 2 {
		return Variable{}, mnlerr.ErrTruncated
	}
	return Variable{Number: binary.LittleEndian.Uint16(data)}, nil
}

// Bytes encodes v.
func (v Variable) Bytes() []byte {
	var buf [2]byte
	binary.LittleEndian.PutUint16(buf[:], v.Number)
	return buf[:]
}

// Argument is a single command argument: either a literal value of the
// width param.Metadata.ParameterTypes says, or a reference to a Variable
// supplying the value at runtime. Which one it is is not known from the
// metadata alone — each argument carries its own bit in the command's
// param_variables_bitfield.
type Argument struct {
	IsVariable bool
	Variable   Variable
	Literal    int64
}

// LiteralArgument builds a non-Variable argument.
func LiteralArgument(value int64) Argument {
	return Argument{Literal: value}
}

// VariableArgument builds an argument that reads from a Variable at
// runtime.
func VariableArgument(v Variable) Argument {
	return Argument{IsVariable: true, Variable: v}
}

// Command is one parsed instruction: a command ID, its optional return
// Variable, and its positional arguments, each decoded according to the
// param.Metadata this command's ID looks up in the active param.Table.
type Command struct {
	CommandID      uint16
	ResultVariable *Variable
	Arguments      []Argument
}

// commandFromCursor decodes one command at c's current position, advancing
// c past it.
func commandFromCursor(c *cursor, table param.Table) (Command, error) {
	commandID, err := c.readU16()
	if err != nil {
		return Command{}, err
	}
	metadata, err := table.Lookup(commandID)
	if err != nil {
		return Command{}, err
	}

	bitfield, err := c.readU32()
	if err != nil {
		return Command{}, err
	}

	var resultVariable *Variable
	if metadata.HasReturnValue {
		raw, err := c.readBytes(2)
		if err != nil {
			return Command{}, err
		}
		v, err := VariableFromBytes(raw)
		if err != nil {
			return Command{}, err
		}
		resultVariable = &v
	}

	var arguments []Argument
	if len(metadata.ParameterTypes) > 0 {
		arguments = make([]Argument, len(metadata.ParameterTypes))
	}
	for i, paramType := range metadata.ParameterTypes {
		if bitfield&(1<<uint(i)) != 0 {
			raw, err := c.readBytes(2)
			if err != nil {
				return Command{}, err
			}
			v, err := VariableFromBytes(raw)
			if err != nil {
				return Command{}, err
			}
			arguments[i] = VariableArgument(v)
			continue
		}

		width := paramType.Width()
		if width == 0 {
			return Command{}, mnlerr.ErrInvalidParameterType
		}
		raw, err := c.readBytes(width)
		if err != nil {
			return Command{}, err
		}
		value, err := param.ReadValue(paramType, raw)
		if err != nil {
			return Command{}, err
		}
		arguments[i] = LiteralArgument(value)
	}

	return Command{CommandID: commandID, ResultVariable: resultVariable, Arguments: arguments}, nil
}

// Bytes re-encodes the command, looking up its metadata in table to learn
// each argument's on-disk width. Returns mnlerr.ErrArgumentCountMismatch if
// the command's argument count doesn't match what the metadata specifies.
func (cmd Command) Bytes(table param.Table) ([]byte, error) {
	metadata, err := table.Lookup(cmd.CommandID)
	if err != nil {
		return nil, err
	}
	if len(metadata.ParameterTypes) != len(cmd.Arguments) {
		return nil, mnlerr.ErrArgumentCountMismatch
	}

	var bitfield uint32
	for i, arg := range cmd.Arguments {
		if arg.IsVariable {
			bitfield |= 1 << uint(i)
		}
	}

	out := make([]byte, 0, 6+len(cmd.Arguments)*4)
	var head [6]byte
	binary.LittleEndian.PutUint16(head[0:2], cmd.CommandID)
	binary.LittleEndian.PutUint32(head[2:6], bitfield)
	out = append(out, head[:]...)

	if cmd.ResultVariable != nil {
		out = append(out, cmd.ResultVariable.Bytes()...)
	}

	for i, arg := range cmd.Arguments {
		if arg.IsVariable {
			out = append(out, arg.Variable.Bytes()...)
			continue
		}

		out, err = param.AppendValue(out, metadata.ParameterTypes[i], arg.Literal)
		if err != nil {
			return nil, err
		}
	}

	return out, nil
}
