package turbolz

import (
	"bufio"
	"errors"
	"fmt"
	"io"
)

// MaxEncodedLen returns the largest code stream n original bytes can produce:
// one literal per byte, 10 bits each, rounded up to whole bytes.
func MaxEncodedLen(n int) int {
	return (n*CodeBits + 7) / 8
}

// Encode returns the raw code stream for src, without a header.
func Encode(src []byte) []byte {
	out := &sliceByteWriter{data: make([]byte, 0, MaxEncodedLen(len(src)))}
	e := NewEncoder(out)
	// sliceByteWriter never fails.
	_, _ = e.Write(src)
	_ = e.Close()

	return out.data
}

// Compress compresses src. Options nil means DefaultCompressOptions().
// Empty input is valid and yields a bare header (or nothing when Raw).
func Compress(src []byte, opts *CompressOptions) ([]byte, error) {
	if opts == nil {
		opts = DefaultCompressOptions()
	}
	if uint64(len(src)) > MaxSize {
		return nil, fmt.Errorf("%w: %d bytes", ErrInputTooLarge, len(src))
	}

	out := &sliceByteWriter{data: make([]byte, 0, HeaderSize+MaxEncodedLen(len(src)))}
	if !opts.Raw {
		out.data, _ = NewHeader(uint32(len(src))).AppendBinary(out.data) // #nosec G115 -- bounded above
	}

	e := NewEncoder(out)
	_, _ = e.Write(src)
	_ = e.Close()

	return out.data, nil
}

// CompressFromReader compresses r to w until r is exhausted. size is the
// original length recorded in the header; when r yields a different number of
// bytes, the output is complete but the error wraps ErrSizeMismatch.
// Returned stats include the header bytes.
func CompressFromReader(w io.Writer, r io.Reader, size int64, opts *CompressOptions) (Stats, error) {
	if r == nil {
		return Stats{}, ErrNilReader
	}
	if w == nil {
		return Stats{}, ErrNilWriter
	}
	if opts == nil {
		opts = DefaultCompressOptions()
	}
	if size < 0 {
		return Stats{}, ErrNegativeSize
	}
	if size > MaxSize {
		return Stats{}, fmt.Errorf("%w: %d bytes", ErrInputTooLarge, size)
	}

	bw := bufio.NewWriter(w)
	var headerLen int64
	if !opts.Raw {
		n, err := NewHeader(uint32(size)).WriteTo(bw) // #nosec G115 -- bounded above
		if err != nil {
			return Stats{Out: n}, err
		}
		headerLen = n
	}

	stats, err := compressFromByteReader(bw, byteReader(r))
	stats.Out += headerLen
	if err != nil {
		return stats, err
	}
	if err := bw.Flush(); err != nil {
		return stats, err
	}

	if !opts.Raw && stats.In != size {
		return stats, fmt.Errorf("%w: header=%d read=%d", ErrSizeMismatch, size, stats.In)
	}

	return stats, nil
}

// compressFromByteReader feeds every byte of r through an Encoder writing to w.
func compressFromByteReader(w io.ByteWriter, r io.ByteReader) (Stats, error) {
	e := NewEncoder(w)
	for {
		b, err := r.ReadByte()
		if err != nil {
			if errors.Is(err, io.EOF) {
				break
			}

			return e.Stats(), err
		}

		if err := e.WriteByte(b); err != nil {
			return e.Stats(), err
		}
	}

	err := e.Close()

	return e.Stats(), err
}
