package main

import (
	"errors"
	"fmt"
	"io"
	"time"

	flag "github.com/spf13/pflag"

	"github.com/calvinalkan/syskit/pkg/sys"
)

func newStatCommand() *command {
	flags := flag.NewFlagSet("stat", flag.ContinueOnError)

	return &command{
		flags: flags,
		usage: "stat <path>",
		short: "Print file metadata",
		exec: func(out io.Writer, args []string) error {
			if len(args) != 1 {
				return errors.New("stat takes exactly one path")
			}

			st, err := sys.StatPath(args[0])
			if err != nil {
				return err
			}

			printStats(out, st)

			return nil
		},
	}
}

func printStats(out io.Writer, st sys.Stats) {
	fmt.Fprintf(out, "type:  %s\n", st.Type)
	fmt.Fprintf(out, "size:  %d\n", st.Size)
	fmt.Fprintf(out, "perm:  %04o\n", uint32(st.Perm))
	fmt.Fprintf(out, "mtime: %s\n", st.ModTime.Format(time.RFC3339))
	fmt.Fprintf(out, "atime: %s\n", st.AccessTime.Format(time.RFC3339))
	fmt.Fprintf(out, "ctime: %s\n", st.ChangeTime.Format(time.RFC3339))
}
