package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"

	flag "github.com/spf13/pflag"

	"github.com/calvinalkan/syskit/pkg/sys"
)

func newLockCommand() *command {
	flags := flag.NewFlagSet("lock", flag.ContinueOnError)
	shared := flags.BoolP("shared", "s", false, "take a shared lock instead of exclusive")
	try := flags.BoolP("try", "t", false, "fail immediately when contended instead of blocking")

	return &command{
		flags: flags,
		usage: "lock <path>",
		short: "Hold an advisory lock until interrupted",
		exec: func(out io.Writer, args []string) error {
			if len(args) != 1 {
				return errors.New("lock takes exactly one path")
			}

			mode := sys.LockExclusive
			if *shared {
				mode = sys.LockShared
			}

			fd, err := sys.Open(args[0], sys.ReadOnly, sys.OpenOptions{}, 0)
			if err != nil {
				return err
			}
			defer fd.Close()

			if err := sys.Flock(fd, mode, !*try); err != nil {
				return err
			}

			fmt.Fprintf(out, "holding %s lock on %s; interrupt to release\n", lockName(mode), args[0])

			waitForInterrupt()

			if err := sys.Funlock(fd); err != nil {
				return err
			}

			fmt.Fprintln(out, "released")

			return nil
		},
	}
}

func lockName(mode sys.LockMode) string {
	if mode == sys.LockShared {
		return "shared"
	}

	return "exclusive"
}

func waitForInterrupt() {
	ch := make(chan os.Signal, 1)
	signal.Notify(ch, os.Interrupt)
	defer signal.Stop(ch)

	<-ch
}
