package turbolz

import "fmt"

// Command is the 2-bit tag of a code word.
type Command uint8

// Command values. The tag domain is closed: every 2-bit value is one of these.
const (
	CmdLiteral Command = iota // 00: value is an original byte.
	CmdCopy4                  // 01: copy 4 bytes from window index value.
	CmdCopy8                  // 10: copy 8 bytes from window index value.
	CmdCopy16                 // 11: copy 16 bytes from window index value.
)

// copyCommands lists back-reference commands in match priority order.
var copyCommands = [...]Command{CmdCopy16, CmdCopy8, CmdCopy4}

// Length returns the number of original bytes the command produces.
func (c Command) Length() int {
	switch c & 3 {
	case CmdCopy4:
		return 4
	case CmdCopy8:
		return 8
	case CmdCopy16:
		return 16
	}

	return 1
}

func (c Command) String() string {
	switch c {
	case CmdLiteral:
		return "lit"
	case CmdCopy4:
		return "copy4"
	case CmdCopy8:
		return "copy8"
	case CmdCopy16:
		return "copy16"
	}

	return fmt.Sprintf("Command(%d)", uint8(c))
}

// Code is one 10-bit code word.
type Code struct {
	Cmd   Command
	Value byte // Literal byte or window start index.
}

// Bits returns the code word in the low 10 bits, command on top.
func (c Code) Bits() uint16 {
	return uint16(c.Cmd&3)<<8 | uint16(c.Value)
}

// codeFromBits splits the low 10 bits of v into command and value.
func codeFromBits(v uint16) Code {
	return Code{Cmd: Command(v>>8) & 3, Value: byte(v)}
}

func (c Code) String() string {
	if c.Cmd == CmdLiteral {
		return fmt.Sprintf("lit 0x%02x", c.Value)
	}

	return fmt.Sprintf("%s @%d", c.Cmd, c.Value)
}
