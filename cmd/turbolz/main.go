// Command turbolz compresses, decompresses and inspects turbolz files.
package main

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"sort"
)

// Exit codes.
const (
	exitUsage  = 1
	exitInput  = 2
	exitOutput = 3
	exitCodec  = 4
)

// CliCommand is one subcommand: its handler, flags and help text.
type CliCommand struct {
	run      func(args []string) error
	flags    *flag.FlagSet
	argsdesc string
	desc     string
}

// exitError carries the process exit code for a failed command.
type exitError struct {
	code int
	err  error
}

func (e *exitError) Error() string { return e.err.Error() }
func (e *exitError) Unwrap() error { return e.err }

func fail(code int, format string, args ...any) error {
	return &exitError{code: code, err: fmt.Errorf(format, args...)}
}

func PrintCmdUsage(name string, cmd CliCommand) {
	fmt.Printf("%s %s - %s\n", name, cmd.argsdesc, cmd.desc)
	cmd.flags.PrintDefaults()
}

func PrintUsage(commands map[string]CliCommand) {
	fmt.Println("usage: turbolz <command> [flags] <args>")
	fmt.Println("commands:")
	names := make([]string, 0, len(commands))
	for name := range commands {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		fmt.Printf("    %-10s %s\n", name, commands[name].desc)
	}
}

func main() {
	compressFlags := flag.NewFlagSet("compress", flag.ExitOnError)
	compressRaw := compressFlags.Bool("raw", false, "write the code stream without the 8-byte header")

	decompressFlags := flag.NewFlagSet("decompress", flag.ExitOnError)
	decompressRaw := decompressFlags.Bool("raw", false, "input has no header")
	decompressLenient := decompressFlags.Bool("lenient", false, "ignore header magic, type and size")

	dumpFlags := flag.NewFlagSet("dump", flag.ExitOnError)
	dumpRaw := dumpFlags.Bool("raw", false, "input has no header")
	dumpSummary := dumpFlags.Bool("summary", false, "print only the code summary")

	compareFlags := flag.NewFlagSet("compare", flag.ExitOnError)
	compareChart := compareFlags.String("chart", "", "write an SVG bar chart of the results to this path")

	helpFlags := flag.NewFlagSet("help", flag.ExitOnError)

	var commands map[string]CliCommand

	cmdCompress := func(args []string) error {
		_ = compressFlags.Parse(args)
		files := compressFlags.Args()
		if len(files) != 2 {
			return fail(exitUsage, "'compress' command: expected <input> <output> arguments")
		}
		return CommandCompress(os.Stdout, files[0], files[1], *compressRaw)
	}

	cmdDecompress := func(args []string) error {
		_ = decompressFlags.Parse(args)
		files := decompressFlags.Args()
		if len(files) != 2 {
			return fail(exitUsage, "'decompress' command: expected <input> <output> arguments")
		}
		return CommandDecompress(os.Stdout, files[0], files[1], *decompressRaw, *decompressLenient)
	}

	cmdDump := func(args []string) error {
		_ = dumpFlags.Parse(args)
		files := dumpFlags.Args()
		if len(files) != 1 {
			return fail(exitUsage, "'dump' command: expected <input> argument")
		}
		return CommandDump(os.Stdout, files[0], *dumpRaw, *dumpSummary)
	}

	cmdCompare := func(args []string) error {
		_ = compareFlags.Parse(args)
		files := compareFlags.Args()
		if len(files) != 1 {
			return fail(exitUsage, "'compare' command: expected <input> argument")
		}
		return CommandCompare(os.Stdout, files[0], *compareChart)
	}

	cmdHelp := func(args []string) error {
		_ = helpFlags.Parse(args)
		names := helpFlags.Args()
		if len(names) > 0 {
			cmd, ok := commands[names[0]]
			if !ok {
				PrintUsage(commands)
				return fail(exitUsage, "unknown command for help: %s", names[0])
			}
			PrintCmdUsage(names[0], cmd)
		} else {
			PrintUsage(commands)
		}
		return nil
	}

	commands = map[string]CliCommand{
		"compress":   {cmdCompress, compressFlags, "<input> <output>", "compress a file"},
		"decompress": {cmdDecompress, decompressFlags, "<input> <output>", "decompress a file"},
		"dump":       {cmdDump, dumpFlags, "<input>", "list the code words of a compressed file"},
		"compare":    {cmdCompare, compareFlags, "<input>", "compare output size with other codecs"},
		"help":       {cmdHelp, helpFlags, "[command]", "list commands or describe a single command"},
	}

	if len(os.Args) < 2 {
		PrintUsage(commands)
		os.Exit(exitUsage)
	}

	cmd, ok := commands[os.Args[1]]
	if !ok {
		fmt.Fprintf(os.Stderr, "error: unknown command %q\n", os.Args[1])
		PrintUsage(commands)
		os.Exit(exitUsage)
	}

	if err := cmd.run(os.Args[2:]); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		var ee *exitError
		if errors.As(err, &ee) {
			os.Exit(ee.code)
		}
		os.Exit(exitCodec)
	}
}
