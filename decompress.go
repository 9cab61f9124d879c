package turbolz

import (
	"bufio"
	"errors"
	"fmt"
	"io"
)

// Decode returns the original bytes of a raw code stream. Trailing bits that
// do not complete a code word are ignored.
func Decode(src []byte) []byte {
	out := &sliceByteWriter{}
	d := NewDecoder(out)
	_, _ = d.Write(src)
	_ = d.Close()

	return out.data
}

// Decompress decompresses src into a new buffer.
// Options nil means DefaultOptions (header and size verified).
func Decompress(src []byte, opts *Options) ([]byte, error) {
	out := &sliceByteWriter{}
	if _, _, err := decompressFromByteReader(out, &sliceByteReader{data: src}, opts); err != nil {
		return nil, err
	}

	return out.data, nil
}

// DecompressFromReader decompresses r to w until r is exhausted and returns the
// header read (zero when opts.Raw) and the stats, input including the header.
func DecompressFromReader(w io.Writer, r io.Reader, opts *Options) (Header, Stats, error) {
	if r == nil {
		return Header{}, Stats{}, ErrNilReader
	}
	if w == nil {
		return Header{}, Stats{}, ErrNilWriter
	}

	countingReader := &countingByteReader{base: byteReader(r)}
	bw := bufio.NewWriter(w)
	h, stats, err := decompressFromByteReader(bw, countingReader, opts)
	stats.In = countingReader.count
	if flushErr := bw.Flush(); err == nil {
		err = flushErr
	}

	return h, stats, err
}

// decompressFromByteReader reads an optional header and decodes the rest of r into w.
func decompressFromByteReader(w io.ByteWriter, r byteSource, opts *Options) (Header, Stats, error) {
	if opts == nil {
		opts = DefaultOptions()
	}

	var h Header
	var headerLen int64
	if !opts.Raw {
		n, err := h.ReadFrom(r)
		if err != nil {
			return h, Stats{In: n}, err
		}
		headerLen = n

		if opts.VerifyHeader {
			if err := h.Validate(); err != nil {
				return h, Stats{In: headerLen}, err
			}
		}
	}

	d := NewDecoder(w)
	stats := func() Stats {
		s := d.Stats()
		s.In += headerLen
		return s
	}

	for {
		b, err := r.ReadByte()
		if err != nil {
			if errors.Is(err, io.EOF) {
				break
			}

			return h, stats(), err
		}

		if err := d.WriteByte(b); err != nil {
			return h, stats(), err
		}
	}

	if err := d.Close(); err != nil {
		return h, stats(), err
	}

	if !opts.Raw && opts.VerifySize && d.Stats().Out != int64(h.Size) {
		return h, stats(), fmt.Errorf("%w: header=%d decoded=%d", ErrSizeMismatch, h.Size, d.Stats().Out)
	}

	return h, stats(), nil
}
