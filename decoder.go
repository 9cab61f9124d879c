package turbolz

import "io"

// Decoder reconstructs original bytes from packed bytes pushed one at a time.
// A Decoder is not safe for concurrent use.
type Decoder struct {
	w      io.ByteWriter // Sink for original bytes.
	window ring          // Mirrors the encoder window.
	codes  codeReader    // Gathers 10-bit code words.
	in     int64         // Packed bytes received.
	out    int64         // Original bytes accepted by w.
	err    error         // First sink error.
	closed bool
}

// NewDecoder returns a Decoder writing original bytes to w.
func NewDecoder(w io.ByteWriter) *Decoder {
	return &Decoder{
		w:      w,
		window: newRing(WindowSize),
	}
}

// Reset discards all state and makes d write to w, as if it were new.
func (d *Decoder) Reset(w io.ByteWriter) {
	d.w = w
	d.window.reset()
	d.codes.reset()
	d.in = 0
	d.out = 0
	d.err = nil
	d.closed = false
}

// WriteByte pushes one packed byte and dispatches every code word it completes.
func (d *Decoder) WriteByte(c byte) error {
	if d.closed {
		return ErrClosed
	}
	if d.err != nil {
		return d.err
	}

	d.in++
	for i := 7; i >= 0; i-- {
		if code, ok := d.codes.pushBit(c >> i); ok {
			d.dispatch(code)
		}
	}

	return d.err
}

// Write pushes every byte of p. It implements io.Writer.
func (d *Decoder) Write(p []byte) (int, error) {
	for i, c := range p {
		if err := d.WriteByte(c); err != nil {
			return i, err
		}
	}

	return len(p), nil
}

// Close ends the stream. Fewer than 10 pending bits are padding and are discarded.
func (d *Decoder) Close() error {
	d.closed = true
	d.codes.reset()

	return d.err
}

// Stats returns the packed bytes consumed and the original bytes written so far.
func (d *Decoder) Stats() Stats {
	return Stats{In: d.in, Out: d.out}
}

func (d *Decoder) dispatch(c Code) {
	switch c.Cmd {
	case CmdLiteral:
		d.window.push(c.Value)
		d.emit(c.Value)
	case CmdCopy4, CmdCopy8, CmdCopy16:
		// Copied bytes stay out of the window, as on the encoder side.
		start := int(c.Value)
		for i := 0; i < c.Cmd.Length(); i++ {
			d.emit(d.window.at(start + i))
		}
	}
}

func (d *Decoder) emit(b byte) {
	if d.err != nil {
		return
	}

	d.err = d.w.WriteByte(b)
	if d.err == nil {
		d.out++
	}
}
