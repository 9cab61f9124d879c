package turbolz

// Options configures Decompress and DecompressFromReader behavior.
type Options struct {
	// Raw: input is a bare code stream without the 8-byte header.
	Raw bool
	// VerifyHeader: if true, a bad magic or type is an error.
	VerifyHeader bool
	// VerifySize: if true, Decompress returns ErrSizeMismatch when the decoded
	// length differs from the header size. Ignored for raw input.
	VerifySize bool
}

// DefaultOptions returns options for default behavior: header present, header and size verified.
func DefaultOptions() *Options {
	return &Options{
		VerifyHeader: true,
		VerifySize:   true,
	}
}

// LenientOptions returns options that decode whatever complete code words are present
// and ignore header content.
func LenientOptions() *Options {
	return &Options{}
}

// CompressOptions configures Compress and CompressFromReader.
type CompressOptions struct {
	// Raw: write the code stream only, without the header.
	Raw bool
}

// DefaultCompressOptions returns options for default compression (header written).
func DefaultCompressOptions() *CompressOptions {
	return &CompressOptions{}
}
