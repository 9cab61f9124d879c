package turbolz

import (
	"bytes"
	"testing"
)

func TestDisassembleEmpty(t *testing.T) {
	codes, err := Disassemble(nil)
	if err != nil || len(codes) != 0 {
		t.Fatalf("codes=%v err=%v", codes, err)
	}
	// One byte cannot hold a code word.
	codes, err = Disassemble([]byte{0xFF})
	if err != nil || len(codes) != 0 {
		t.Fatalf("codes=%v err=%v", codes, err)
	}
}

func TestSummarize(t *testing.T) {
	input := bytes.Repeat([]byte{0xAA}, 20)
	codes, err := Disassemble(Encode(input))
	if err != nil {
		t.Fatal(err)
	}
	s := Summarize(codes)
	if s.Counts[CmdLiteral] != 16 || s.Counts[CmdCopy4] != 1 || s.Codes() != 17 {
		t.Fatalf("summary %v", s)
	}
	if s.Bytes != int64(len(input)) {
		t.Fatalf("bytes=%d want %d", s.Bytes, len(input))
	}
	want := "17 codes (lit 16, copy4 1, copy8 0, copy16 0) -> 20 bytes"
	if s.String() != want {
		t.Fatalf("got %q", s.String())
	}
}

func TestCodeString(t *testing.T) {
	tests := map[Code]string{
		{CmdLiteral, 0x41}: "lit 0x41",
		{CmdCopy4, 3}:      "copy4 @3",
		{CmdCopy8, 200}:    "copy8 @200",
		{CmdCopy16, 0}:     "copy16 @0",
	}
	for c, want := range tests {
		if got := c.String(); got != want {
			t.Fatalf("got %q want %q", got, want)
		}
	}
}
