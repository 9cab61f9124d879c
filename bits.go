package turbolz

import "io"

// bitWriter packs bits MSB-first into bytes and hands each completed byte to w.
// The first sink error is kept; later bits are dropped and the error is reported again.
type bitWriter struct {
	w     io.ByteWriter // Sink for completed bytes.
	acc   byte          // Pending bits in the low nbits positions.
	nbits uint          // Number of pending bits, 0..7.
	count int64         // Bytes accepted by the sink.
	err   error         // First sink error.
}

// writeBit shifts the low bit of bit into the accumulator.
func (b *bitWriter) writeBit(bit byte) {
	b.acc = b.acc<<1 | bit&1
	b.nbits++
	if b.nbits == 8 {
		b.emit(b.acc)
		b.acc = 0
		b.nbits = 0
	}
}

// writeCode writes the 10 bits of c, command first.
func (b *bitWriter) writeCode(c Code) {
	v := c.Bits()
	for i := CodeBits - 1; i >= 0; i-- {
		b.writeBit(byte(v >> i))
	}
}

// flush writes a pending partial byte left-justified with zero low bits.
func (b *bitWriter) flush() error {
	if b.nbits > 0 {
		b.emit(b.acc << (8 - b.nbits))
		b.acc = 0
		b.nbits = 0
	}

	return b.err
}

func (b *bitWriter) emit(c byte) {
	if b.err != nil {
		return
	}

	b.err = b.w.WriteByte(c)
	if b.err == nil {
		b.count++
	}
}

func (b *bitWriter) reset(w io.ByteWriter) {
	*b = bitWriter{w: w}
}

// codeReader gathers bits MSB-first into 10-bit code words.
type codeReader struct {
	acc   uint16 // Pending bits in the low nbits positions.
	nbits uint   // Number of pending bits, 0..9.
}

// pushBit shifts the low bit of bit in and returns a code once 10 bits are gathered.
func (r *codeReader) pushBit(bit byte) (Code, bool) {
	r.acc = r.acc<<1 | uint16(bit&1)
	r.nbits++
	if r.nbits < CodeBits {
		return Code{}, false
	}

	c := codeFromBits(r.acc)
	r.acc = 0
	r.nbits = 0

	return c, true
}

func (r *codeReader) reset() {
	*r = codeReader{}
}
