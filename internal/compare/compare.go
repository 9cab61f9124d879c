// Package compare measures turbolz against general-purpose codecs on the same input.
package compare

import (
	"bytes"
	"fmt"
	"io"

	"github.com/andybalholm/brotli"
	"github.com/golang/snappy"
	"github.com/klauspost/compress/zstd"
	"github.com/pierrec/lz4/v4"
	"github.com/pierrec/xxHash/xxHash32"
	"github.com/ulikunitz/xz/lzma"

	"github.com/woozymasta/turbolz"
)

// A Codec compresses and decompresses whole buffers.
type Codec struct {
	Name       string
	Compress   func(src []byte) ([]byte, error)
	Decompress func(src []byte) ([]byte, error)
}

// Result is one codec's outcome on one input.
type Result struct {
	Name     string
	Stats    turbolz.Stats // In: original bytes, Out: compressed bytes.
	Verified bool          // Decompressed digest equals the original digest.
	Err      error
}

// Codecs returns every codec, turbolz first.
func Codecs() []Codec {
	return []Codec{
		{
			Name:       "turbolz",
			Compress:   func(src []byte) ([]byte, error) { return turbolz.Compress(src, nil) },
			Decompress: func(src []byte) ([]byte, error) { return turbolz.Decompress(src, nil) },
		},
		{Name: "snappy", Compress: snappyCompress, Decompress: snappyDecompress},
		{Name: "lz4", Compress: lz4Compress, Decompress: lz4Decompress},
		{Name: "zstd", Compress: zstdCompress, Decompress: zstdDecompress},
		{Name: "brotli", Compress: brotliCompress, Decompress: brotliDecompress},
		{Name: "lzma", Compress: lzmaCompress, Decompress: lzmaDecompress},
	}
}

// Run compresses data with each codec and checks the round trip.
// A failing codec is reported in its Result and does not stop the others.
func Run(data []byte, codecs []Codec) []Result {
	want := xxHash32.Checksum(data, 0)
	results := make([]Result, 0, len(codecs))
	for _, c := range codecs {
		res := Result{Name: c.Name, Stats: turbolz.Stats{In: int64(len(data))}}

		enc, err := c.Compress(data)
		if err != nil {
			res.Err = fmt.Errorf("%s compress: %w", c.Name, err)
			results = append(results, res)
			continue
		}
		res.Stats.Out = int64(len(enc))

		dec, err := c.Decompress(enc)
		if err != nil {
			res.Err = fmt.Errorf("%s decompress: %w", c.Name, err)
			results = append(results, res)
			continue
		}
		res.Verified = len(dec) == len(data) && xxHash32.Checksum(dec, 0) == want

		results = append(results, res)
	}

	return results
}

func snappyCompress(src []byte) ([]byte, error) {
	return snappy.Encode(nil, src), nil
}

func snappyDecompress(src []byte) ([]byte, error) {
	return snappy.Decode(nil, src)
}

func lz4Compress(src []byte) ([]byte, error) {
	var buf bytes.Buffer
	w := lz4.NewWriter(&buf)
	if _, err := w.Write(src); err != nil {
		return nil, err
	}
	if err := w.Close(); err != nil {
		return nil, err
	}

	return buf.Bytes(), nil
}

func lz4Decompress(src []byte) ([]byte, error) {
	return io.ReadAll(lz4.NewReader(bytes.NewReader(src)))
}

func zstdCompress(src []byte) ([]byte, error) {
	enc, err := zstd.NewWriter(nil)
	if err != nil {
		return nil, err
	}
	defer enc.Close()

	return enc.EncodeAll(src, nil), nil
}

func zstdDecompress(src []byte) ([]byte, error) {
	dec, err := zstd.NewReader(nil)
	if err != nil {
		return nil, err
	}
	defer dec.Close()

	return dec.DecodeAll(src, nil)
}

func brotliCompress(src []byte) ([]byte, error) {
	var buf bytes.Buffer
	w := brotli.NewWriterLevel(&buf, brotli.DefaultCompression)
	if _, err := w.Write(src); err != nil {
		return nil, err
	}
	if err := w.Close(); err != nil {
		return nil, err
	}

	return buf.Bytes(), nil
}

func brotliDecompress(src []byte) ([]byte, error) {
	return io.ReadAll(brotli.NewReader(bytes.NewReader(src)))
}

func lzmaCompress(src []byte) ([]byte, error) {
	var buf bytes.Buffer
	w, err := lzma.NewWriter(&buf)
	if err != nil {
		return nil, err
	}
	if _, err := w.Write(src); err != nil {
		return nil, err
	}
	if err := w.Close(); err != nil {
		return nil, err
	}

	return buf.Bytes(), nil
}

func lzmaDecompress(src []byte) ([]byte, error) {
	r, err := lzma.NewReader(bytes.NewReader(src))
	if err != nil {
		return nil, err
	}

	return io.ReadAll(r)
}
