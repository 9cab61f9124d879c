package turbolz

import (
	"bytes"
	"errors"
	"fmt"
	"io"

	"github.com/icza/bitio"
)

// Disassemble splits a raw code stream into its code words.
// Trailing bits that do not complete a code word are ignored.
func Disassemble(src []byte) ([]Code, error) {
	r := bitio.NewReader(bytes.NewReader(src))
	codes := make([]Code, 0, len(src)*8/CodeBits)
	for {
		v, err := r.ReadBits(CodeBits)
		if err != nil {
			if errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
				return codes, nil
			}

			return nil, err
		}

		codes = append(codes, codeFromBits(uint16(v)))
	}
}

// Summary counts code words by command.
type Summary struct {
	Counts [4]int // Code words per Command.
	Bytes  int64  // Original bytes the code words produce.
}

// Summarize counts codes by command and totals the bytes they produce.
func Summarize(codes []Code) Summary {
	var s Summary
	for _, c := range codes {
		s.Counts[c.Cmd&3]++
		s.Bytes += int64(c.Cmd.Length())
	}

	return s
}

// Codes returns the total number of code words.
func (s Summary) Codes() int {
	return s.Counts[CmdLiteral] + s.Counts[CmdCopy4] + s.Counts[CmdCopy8] + s.Counts[CmdCopy16]
}

func (s Summary) String() string {
	return fmt.Sprintf("%d codes (lit %d, copy4 %d, copy8 %d, copy16 %d) -> %d bytes",
		s.Codes(), s.Counts[CmdLiteral], s.Counts[CmdCopy4], s.Counts[CmdCopy8], s.Counts[CmdCopy16], s.Bytes)
}
