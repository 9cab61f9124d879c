package turbolz

import "io"

// Encoder compresses original bytes pushed one at a time into a code stream
// written to a byte sink. An Encoder is not safe for concurrent use.
type Encoder struct {
	window    ring      // Finalized original bytes available as copy sources.
	lookahead ring      // Bytes received but not yet classified.
	bits      bitWriter // Packs code words into the sink.
	in        int64     // Original bytes received.
	closed    bool
}

// NewEncoder returns an Encoder writing packed bytes to w.
func NewEncoder(w io.ByteWriter) *Encoder {
	e := &Encoder{
		window:    newRing(WindowSize),
		lookahead: newRing(LookaheadSize),
	}
	e.bits.reset(w)

	return e
}

// Reset discards all state and makes e write to w, as if it were new.
func (e *Encoder) Reset(w io.ByteWriter) {
	e.window.reset()
	e.lookahead.reset()
	e.bits.reset(w)
	e.in = 0
	e.closed = false
}

// WriteByte pushes one original byte. Once the lookahead holds a full run,
// exactly one code word is emitted per call.
func (e *Encoder) WriteByte(c byte) error {
	if e.closed {
		return ErrClosed
	}
	if e.bits.err != nil {
		return e.bits.err
	}

	e.in++
	e.lookahead.push(c)
	if e.lookahead.full() {
		e.step()
	}

	return e.bits.err
}

// Write pushes every byte of p. It implements io.Writer.
func (e *Encoder) Write(p []byte) (int, error) {
	for i, c := range p {
		if err := e.WriteByte(c); err != nil {
			return i, err
		}
	}

	return len(p), nil
}

// Close emits the remaining lookahead bytes as literals and flushes the
// final partial byte. Further writes return ErrClosed; Close may be called again.
func (e *Encoder) Close() error {
	if e.closed {
		return e.bits.err
	}
	e.closed = true

	// Trailing bytes are never match-searched.
	for e.lookahead.len() > 0 {
		e.bits.writeCode(Code{Cmd: CmdLiteral, Value: e.lookahead.pop()})
	}

	return e.bits.flush()
}

// Stats returns the bytes consumed and the packed bytes written so far.
func (e *Encoder) Stats() Stats {
	return Stats{In: e.in, Out: e.bits.count}
}

// step makes one decision on a full lookahead: the longest of 16, 8, 4 found in
// the window at its earliest offset, otherwise one literal.
func (e *Encoder) step() {
	for _, cmd := range copyCommands {
		n := cmd.Length()
		if start, ok := e.findMatch(n); ok {
			e.bits.writeCode(Code{Cmd: cmd, Value: byte(start)})
			// Matched bytes already exist in the window.
			e.lookahead.discard(n)
			return
		}
	}

	b := e.lookahead.pop()
	e.bits.writeCode(Code{Cmd: CmdLiteral, Value: b})
	e.window.push(b)
}

// findMatch returns the smallest window offset whose n bytes equal the oldest n
// lookahead bytes.
func (e *Encoder) findMatch(n int) (int, bool) {
	last := e.window.len() - n
	for start := 0; start <= last; start++ {
		if e.matchAt(start, n) {
			return start, true
		}
	}

	return 0, false
}

func (e *Encoder) matchAt(start, n int) bool {
	for i := 0; i < n; i++ {
		if e.window.at(start+i) != e.lookahead.at(i) {
			return false
		}
	}

	return true
}
