/*
Package turbolz implements a small windowed dictionary compressor and its decompressor.

Format: a sequence of 10-bit code words packed MSB-first with no padding between them;
only the last byte may carry zero padding bits. Each code word is a 2-bit command and an
8-bit value:

	00 vvvvvvvv   literal byte v
	01 iiiiiiii   copy 4 bytes starting at window index i
	10 iiiiiiii   copy 8 bytes starting at window index i
	11 iiiiiiii   copy 16 bytes starting at window index i

History window: the last 256 literal bytes, indexed from the oldest. Lookahead: 16 bytes.
When the lookahead is full the encoder tries a 16, 8, then 4 byte match, taking the
earliest window index that matches, and emits one literal otherwise. At end of input the
remaining lookahead bytes are written as literals. Worst case the output is 25% larger
than the input.

Files carry an 8-byte header: magic "Cmp", type 'T', original size as uint32 little-endian.
Window indices count from the oldest byte. Files from the original Agon compress tool,
which indexes window storage slots, are interchangeable only while they hold at most 256 literals.

Encoder and Decoder are push-style: feed one byte at a time with WriteByte and receive
output through an io.ByteWriter. Use Encode/Decode for raw streams and Compress/Decompress
for data with a header.

# Examples

Round-trip compress and decompress:

	enc, err := turbolz.Compress(data, nil)
	if err != nil {
		return err
	}
	dec, err := turbolz.Decompress(enc, nil)
	if err != nil {
		return err
	}
	// dec equals data

Stream a file through the encoder:

	stats, err := turbolz.CompressFromReader(dst, src, size, nil)
	if err != nil {
		return err
	}
	fmt.Println("Compressed", stats)

Push bytes into an encoder by hand:

	var buf bytes.Buffer
	e := turbolz.NewEncoder(&buf)
	for _, b := range data {
		_ = e.WriteByte(b)
	}
	_ = e.Close()

Decode whatever complete code words are present and ignore the header size:

	out, err := turbolz.Decompress(src, turbolz.LenientOptions())

List the code words of a raw stream:

	codes, _ := turbolz.Disassemble(turbolz.Encode(data))
	fmt.Println(turbolz.Summarize(codes))
*/
package turbolz
