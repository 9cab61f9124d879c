package turbolz

import (
	"bufio"
	"io"
)

// byteSource reads whole buffers (the header) and single bytes (the code stream).
type byteSource interface {
	io.Reader
	io.ByteReader
}

// sliceByteReader reads from a byte slice.
type sliceByteReader struct {
	data []byte // The byte slice to read from.
	pos  int    // The current position in the byte slice.
}

// countingByteReader reads from a byte reader and counts the number of bytes read.
type countingByteReader struct {
	base  byteSource // The reader to read from.
	count int64         // The number of bytes read.
}

// sliceByteWriter appends to a byte slice.
type sliceByteWriter struct {
	data []byte // Bytes written so far.
}

// ReadByte reads a byte from the slice.
func (r *sliceByteReader) ReadByte() (byte, error) {
	if r.pos >= len(r.data) {
		return 0, io.EOF
	}

	b := r.data[r.pos]
	r.pos++

	return b, nil
}

// Read reads from the slice.
func (r *sliceByteReader) Read(p []byte) (int, error) {
	if r.pos >= len(r.data) {
		return 0, io.EOF
	}

	n := copy(p, r.data[r.pos:])
	r.pos += n

	return n, nil
}

// Read reads from the reader and adds the bytes read to the count.
func (r *countingByteReader) Read(p []byte) (int, error) {
	n, err := r.base.Read(p)
	r.count += int64(n)

	return n, err
}

// ReadByte reads a byte from the reader and increments the count.
func (r *countingByteReader) ReadByte() (byte, error) {
	b, err := r.base.ReadByte()
	if err != nil {
		return 0, err
	}

	r.count++

	return b, nil
}

// WriteByte appends a byte to the slice.
func (w *sliceByteWriter) WriteByte(c byte) error {
	w.data = append(w.data, c)

	return nil
}

// byteReader returns r as a byteSource, buffering it when needed.
func byteReader(r io.Reader) byteSource {
	if existing, ok := r.(byteSource); ok {
		return existing
	}

	return bufio.NewReader(r)
}
