package main

import (
	"errors"
	"fmt"
	"io"
	"strconv"

	flag "github.com/spf13/pflag"

	"github.com/calvinalkan/syskit/pkg/sys"
)

func newCopyCommand() *command {
	flags := flag.NewFlagSet("copy", flag.ContinueOnError)
	perm := flags.StringP("perm", "p", "0644", "destination permissions (octal)")

	return &command{
		flags: flags,
		usage: "copy <src> <dst>",
		short: "Duplicate a file, kernel-accelerated where possible",
		exec: func(out io.Writer, args []string) error {
			if len(args) != 2 {
				return errors.New("copy takes a source and a destination")
			}

			p, err := parsePerm(*perm)
			if err != nil {
				return err
			}

			if err := sys.Copy(args[0], args[1], p); err != nil {
				return err
			}

			st, err := sys.StatPath(args[1])
			if err != nil {
				return err
			}

			fmt.Fprintf(out, "copied %d bytes\n", st.Size)

			return nil
		},
	}
}

func parsePerm(s string) (sys.Permissions, error) {
	v, err := strconv.ParseUint(s, 8, 32)
	if err != nil {
		return 0, fmt.Errorf("invalid permissions %q: expected octal like 0644", s)
	}

	return sys.Permissions(v), nil
}
