package main

import (
	"errors"
	"fmt"
	"io"
	"strings"

	flag "github.com/spf13/pflag"
)

// command pairs a pflag set with an exec function and generates uniform
// help output for the top-level listing and per-command --help.
type command struct {
	// flags holds command-specific flags. The FlagSet name is unused;
	// command identity comes from usage.
	flags *flag.FlagSet

	// usage is the freeform usage string shown after "sk" in help, e.g.
	// "copy <src> <dst>".
	usage string

	// short is the one-line description for the global listing.
	short string

	// exec runs the command after flags are parsed.
	exec func(out io.Writer, args []string) error
}

// name returns the command name (first word of usage).
func (c *command) name() string {
	n, _, _ := strings.Cut(c.usage, " ")

	return n
}

func (c *command) helpLine() string {
	return fmt.Sprintf("  %-22s %s", c.usage, c.short)
}

func (c *command) printHelp(w io.Writer) {
	fmt.Fprintln(w, "Usage: sk", c.usage)
	fmt.Fprintln(w)
	fmt.Fprintln(w, c.short)

	if c.flags.HasFlags() {
		fmt.Fprintln(w)
		fmt.Fprintln(w, "Flags:")

		var buf strings.Builder

		c.flags.SetOutput(&buf)
		c.flags.PrintDefaults()
		fmt.Fprint(w, buf.String())
	}
}

// run parses flags and executes the command, returning the exit code.
func (c *command) run(out, errOut io.Writer, args []string) int {
	c.flags.SetOutput(&strings.Builder{}) // discard pflag's own output

	if err := c.flags.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			c.printHelp(out)

			return 0
		}

		fmt.Fprintln(errOut, "error:", err)
		fmt.Fprintln(errOut)
		c.printHelp(errOut)

		return 1
	}

	if err := c.exec(out, c.flags.Args()); err != nil {
		fmt.Fprintln(errOut, "error:", err)

		return 1
	}

	return 0
}
