package turbolz

import (
	"encoding/binary"
	"errors"
	"fmt"
	"io"
)

// Header is the 8-byte record that precedes a compressed file.
// The codec itself never reads it.
type Header struct {
	Magic [3]byte // Always Magic for files written by this package.
	Type  byte    // Format identifier, TypeTurbo.
	Size  uint32  // Original uncompressed size.
}

// NewHeader returns the header for an original of size bytes.
func NewHeader(size uint32) Header {
	return Header{Magic: Magic, Type: TypeTurbo, Size: size}
}

// Validate checks magic and type.
func (h Header) Validate() error {
	if h.Magic != Magic {
		return fmt.Errorf("%w: %q", ErrBadMagic, h.Magic[:])
	}
	if h.Type != TypeTurbo {
		return fmt.Errorf("%w: 0x%02x", ErrUnknownType, h.Type)
	}

	return nil
}

// AppendBinary appends the encoded header to b.
func (h Header) AppendBinary(b []byte) ([]byte, error) {
	b = append(b, h.Magic[:]...)
	b = append(b, h.Type)

	return binary.LittleEndian.AppendUint32(b, h.Size), nil
}

// MarshalBinary returns the 8-byte encoded header.
func (h Header) MarshalBinary() ([]byte, error) {
	return h.AppendBinary(make([]byte, 0, HeaderSize))
}

// UnmarshalBinary decodes the first HeaderSize bytes of b. It does not validate.
func (h *Header) UnmarshalBinary(b []byte) error {
	if len(b) < HeaderSize {
		return fmt.Errorf("%w: got %d bytes", ErrHeaderTooShort, len(b))
	}

	copy(h.Magic[:], b[:3])
	h.Type = b[3]
	h.Size = binary.LittleEndian.Uint32(b[4:HeaderSize])

	return nil
}

// WriteTo writes the encoded header to w.
func (h Header) WriteTo(w io.Writer) (int64, error) {
	var buf [HeaderSize]byte
	b, _ := h.AppendBinary(buf[:0])
	n, err := w.Write(b)

	return int64(n), err
}

// ReadFrom reads exactly HeaderSize bytes from r and decodes them.
func (h *Header) ReadFrom(r io.Reader) (int64, error) {
	var buf [HeaderSize]byte
	n, err := io.ReadFull(r, buf[:])
	if err != nil {
		if errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
			return int64(n), fmt.Errorf("%w: got %d bytes", ErrHeaderTooShort, n)
		}

		return int64(n), err
	}

	return int64(n), h.UnmarshalBinary(buf[:])
}
