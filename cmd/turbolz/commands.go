package main

import (
	"fmt"
	"io"
	"os"

	"github.com/woozymasta/turbolz"
	"github.com/woozymasta/turbolz/internal/compare"
)

// CommandCompress compresses the file at in into a new file at out.
func CommandCompress(log io.Writer, in, out string, raw bool) error {
	fmt.Fprintf(log, "Compressing %s to %s\n", in, out)

	fin, err := os.Open(in)
	if err != nil {
		return fail(exitInput, "cannot open %s: %w", in, err)
	}
	defer fin.Close()

	info, err := fin.Stat()
	if err != nil {
		return fail(exitInput, "cannot stat %s: %w", in, err)
	}

	fout, err := os.Create(out)
	if err != nil {
		return fail(exitOutput, "cannot open %s: %w", out, err)
	}

	stats, err := turbolz.CompressFromReader(fout, fin, info.Size(), &turbolz.CompressOptions{Raw: raw})
	if closeErr := fout.Close(); err == nil && closeErr != nil {
		return fail(exitOutput, "cannot write %s: %w", out, closeErr)
	}
	if err != nil {
		return fail(exitCodec, "compress %s: %w", in, err)
	}

	fmt.Fprintf(log, "  Compressed %s\n", stats)

	return nil
}

// CommandDecompress decompresses the file at in into a new file at out.
func CommandDecompress(log io.Writer, in, out string, raw, lenient bool) error {
	fmt.Fprintf(log, "Decompressing %s to %s\n", in, out)

	fin, err := os.Open(in)
	if err != nil {
		return fail(exitInput, "cannot open %s: %w", in, err)
	}
	defer fin.Close()

	fout, err := os.Create(out)
	if err != nil {
		return fail(exitOutput, "cannot open %s: %w", out, err)
	}

	opts := turbolz.DefaultOptions()
	if lenient {
		opts = turbolz.LenientOptions()
	}
	opts.Raw = raw

	_, stats, err := turbolz.DecompressFromReader(fout, fin, opts)
	if closeErr := fout.Close(); err == nil && closeErr != nil {
		return fail(exitOutput, "cannot write %s: %w", out, closeErr)
	}
	if err != nil {
		return fail(exitCodec, "decompress %s: %w", in, err)
	}

	fmt.Fprintf(log, "  Decompressed %s\n", stats)

	return nil
}

// CommandDump prints the header and code words of the file at in.
func CommandDump(w io.Writer, in string, raw, summaryOnly bool) error {
	data, err := os.ReadFile(in)
	if err != nil {
		return fail(exitInput, "cannot open %s: %w", in, err)
	}

	if !raw {
		var h turbolz.Header
		if err := h.UnmarshalBinary(data); err != nil {
			return fail(exitCodec, "%s: %w", in, err)
		}
		valid := "ok"
		if err := h.Validate(); err != nil {
			valid = err.Error()
		}
		fmt.Fprintf(w, "header: magic %q type %q size %d (%s)\n", h.Magic[:], h.Type, h.Size, valid)
		data = data[turbolz.HeaderSize:]
	}

	codes, err := turbolz.Disassemble(data)
	if err != nil {
		return fail(exitCodec, "%s: %w", in, err)
	}

	if !summaryOnly {
		var pos int64
		for i, c := range codes {
			fmt.Fprintf(w, "%6d %8d  %s\n", i, pos, c)
			pos += int64(c.Cmd.Length())
		}
	}
	fmt.Fprintln(w, turbolz.Summarize(codes))

	return nil
}

// CommandCompare prints the output size of every codec on the file at in and
// optionally writes a chart of the results.
func CommandCompare(w io.Writer, in, chartPath string) error {
	data, err := os.ReadFile(in)
	if err != nil {
		return fail(exitInput, "cannot open %s: %w", in, err)
	}

	results := compare.Run(data, compare.Codecs())
	fmt.Fprintf(w, "%-10s %10s %10s %8s  %s\n", "codec", "input", "output", "ratio", "verified")
	for _, r := range results {
		if r.Err != nil {
			fmt.Fprintf(w, "%-10s error: %v\n", r.Name, r.Err)
			continue
		}
		fmt.Fprintf(w, "%-10s %10d %10d %7.1f%%  %v\n", r.Name, r.Stats.In, r.Stats.Out, r.Stats.Percent(), r.Verified)
	}

	if chartPath == "" {
		return nil
	}

	fout, err := os.Create(chartPath)
	if err != nil {
		return fail(exitOutput, "cannot open %s: %w", chartPath, err)
	}
	err = compare.Chart(fout, in, results)
	if closeErr := fout.Close(); err == nil {
		err = closeErr
	}
	if err != nil {
		_ = os.Remove(chartPath)
		return fail(exitOutput, "chart %s: %w", chartPath, err)
	}

	return nil
}
