// sk is a small inspection CLI over the syskit packages.
//
// Usage:
//
//	sk stat <path>              Print file metadata
//	sk copy <src> <dst>         Duplicate a file (kernel-accelerated)
//	sk write <path>             Write stdin to a file
//	sk lock <path>              Hold an advisory lock until interrupted
//	sk shell                    Interactive descriptor-table REPL
//
// Configuration is read from .sk.json in the working directory (JSON with
// comments) and from the per-user config under $XDG_CONFIG_HOME/sk/.
package main

import (
	"fmt"
	"io"
	"os"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

func run(args []string, in io.Reader, out, errOut io.Writer) int {
	if len(args) == 0 {
		printUsage(out)

		return 0
	}

	name := args[0]
	if name == "help" || name == "--help" || name == "-h" {
		printUsage(out)

		return 0
	}

	cfg, err := loadConfig(os.Getenv("XDG_CONFIG_HOME"))
	if err != nil {
		fmt.Fprintln(errOut, "error:", err)

		return 1
	}

	for _, c := range commands(cfg, in) {
		if c.name() == name {
			return c.run(out, errOut, args[1:])
		}
	}

	fmt.Fprintf(errOut, "error: unknown command %q\n\n", name)
	printUsage(errOut)

	return 1
}

func commands(cfg config, in io.Reader) []*command {
	return []*command{
		newStatCommand(),
		newCopyCommand(),
		newWriteCommand(cfg, in),
		newLockCommand(),
		newShellCommand(cfg),
	}
}

func printUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: sk <command> [flags] [args]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Commands:")

	for _, c := range commands(config{}, nil) {
		fmt.Fprintln(w, c.helpLine())
	}

	fmt.Fprintln(w)
	fmt.Fprintln(w, "Run 'sk <command> --help' for command help.")
}
