package turbolz

// Stream format constants.
const (
	WindowSize    = 256 // History window capacity (power of 2).
	LookaheadSize = 16  // Lookahead capacity and longest copy (power of 2).
	CodeBits      = 10  // Bits per code word: 2-bit command + 8-bit value.
	HeaderSize    = 8   // Magic (3) + type (1) + original size (4, little-endian).
	TypeTurbo     = 'T' // Format identifier stored in the header.
	MaxSize       = 1<<32 - 1
)

// Magic is the 3-byte marker at the start of a compressed file.
var Magic = [3]byte{'C', 'm', 'p'}
