package turbolz

import (
	"bytes"
	"errors"
	"testing"

	"github.com/icza/bitio"
)

var errSinkFull = errors.New("sink full")

// limitWriter accepts n bytes, then fails.
type limitWriter struct {
	n   int
	buf []byte
}

func (w *limitWriter) WriteByte(c byte) error {
	if len(w.buf) >= w.n {
		return errSinkFull
	}
	w.buf = append(w.buf, c)

	return nil
}

func TestBitWriterFlushPartial(t *testing.T) {
	out := &sliceByteWriter{}
	var bw bitWriter
	bw.reset(out)
	bw.writeCode(Code{Cmd: CmdCopy16, Value: 0xFF})
	if !bytes.Equal(out.data, []byte{0xFF}) {
		t.Fatalf("before flush: %x", out.data)
	}
	if err := bw.flush(); err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(out.data, []byte{0xFF, 0xC0}) {
		t.Fatalf("after flush: %x", out.data)
	}
	if bw.count != 2 {
		t.Fatalf("count=%d want 2", bw.count)
	}
}

func TestBitWriterFlushAligned(t *testing.T) {
	out := &sliceByteWriter{}
	var bw bitWriter
	bw.reset(out)
	if err := bw.flush(); err != nil || len(out.data) != 0 {
		t.Fatalf("empty flush wrote %x (err %v)", out.data, err)
	}
	// 4 codes = 40 bits = 5 bytes, nothing left to pad.
	for i := 0; i < 4; i++ {
		bw.writeCode(Code{Cmd: CmdLiteral, Value: byte(i)})
	}
	_ = bw.flush()
	if len(out.data) != 5 || bw.count != 5 {
		t.Fatalf("len=%d count=%d want 5", len(out.data), bw.count)
	}
}

func TestBitWriterMatchesBitio(t *testing.T) {
	codes := []Code{
		{CmdLiteral, 'A'},
		{CmdCopy4, 3},
		{CmdCopy8, 0x80},
		{CmdCopy16, 0xFE},
		{CmdLiteral, 0},
		{CmdLiteral, 0xFF},
		{CmdCopy4, 0x55},
	}

	out := &sliceByteWriter{}
	var bw bitWriter
	bw.reset(out)

	var ref bytes.Buffer
	w := bitio.NewWriter(&ref)
	for _, c := range codes {
		bw.writeCode(c)
		if err := w.WriteBits(uint64(c.Bits()), CodeBits); err != nil {
			t.Fatal(err)
		}
	}
	_ = bw.flush()
	if err := w.Close(); err != nil {
		t.Fatal(err)
	}

	if !bytes.Equal(out.data, ref.Bytes()) {
		t.Fatalf("got %x want %x", out.data, ref.Bytes())
	}
}

func TestBitWriterStickyError(t *testing.T) {
	sink := &limitWriter{n: 1}
	var bw bitWriter
	bw.reset(sink)
	bw.writeCode(Code{Cmd: CmdLiteral, Value: 1})
	bw.writeCode(Code{Cmd: CmdLiteral, Value: 2})
	if !errors.Is(bw.err, errSinkFull) {
		t.Fatalf("want errSinkFull, got %v", bw.err)
	}
	if err := bw.flush(); !errors.Is(err, errSinkFull) {
		t.Fatalf("flush: want errSinkFull, got %v", err)
	}
	if bw.count != 1 || len(sink.buf) != 1 {
		t.Fatalf("count=%d written=%d", bw.count, len(sink.buf))
	}
}

func TestCodeReader(t *testing.T) {
	var r codeReader
	var got []Code
	for _, b := range []byte{0xFF, 0xC0} {
		for i := 7; i >= 0; i-- {
			if c, ok := r.pushBit(b >> i); ok {
				got = append(got, c)
			}
		}
	}
	if len(got) != 1 || got[0] != (Code{Cmd: CmdCopy16, Value: 0xFF}) {
		t.Fatalf("got %v", got)
	}
	if r.nbits != 6 {
		t.Fatalf("nbits=%d want 6", r.nbits)
	}
	r.reset()
	if r.nbits != 0 {
		t.Fatalf("nbits after reset=%d", r.nbits)
	}
}

func TestCodeBits(t *testing.T) {
	tests := []struct {
		code Code
		bits uint16
	}{
		{Code{CmdLiteral, 0x41}, 0x041},
		{Code{CmdCopy4, 0x00}, 0x100},
		{Code{CmdCopy8, 0x7F}, 0x27F},
		{Code{CmdCopy16, 0xFF}, 0x3FF},
	}
	for _, tt := range tests {
		if got := tt.code.Bits(); got != tt.bits {
			t.Fatalf("%v: bits=%03x want %03x", tt.code, got, tt.bits)
		}
		if got := codeFromBits(tt.bits); got != tt.code {
			t.Fatalf("%03x: code=%v want %v", tt.bits, got, tt.code)
		}
	}
}

func TestCommandLength(t *testing.T) {
	want := map[Command]int{CmdLiteral: 1, CmdCopy4: 4, CmdCopy8: 8, CmdCopy16: 16}
	for cmd, n := range want {
		if got := cmd.Length(); got != n {
			t.Fatalf("%v: length=%d want %d", cmd, got, n)
		}
	}
}
