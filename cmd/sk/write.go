package main

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/natefinch/atomic"
	flag "github.com/spf13/pflag"

	"github.com/calvinalkan/syskit/pkg/sys"
)

func newWriteCommand(cfg config, in io.Reader) *command {
	flags := flag.NewFlagSet("write", flag.ContinueOnError)
	perm := flags.StringP("perm", "p", "0644", "file permissions when created (octal)")
	appendMode := flags.BoolP("append", "a", false, "append instead of truncating")
	doSync := flags.BoolP("sync", "s", false, "fsync before closing")
	report := flags.String("report", cfg.ReportPath, "write a transfer report to this path (atomic)")

	return &command{
		flags: flags,
		usage: "write <path>",
		short: "Write stdin to a file",
		exec: func(out io.Writer, args []string) error {
			if len(args) != 1 {
				return errors.New("write takes exactly one path")
			}

			p, err := parsePerm(*perm)
			if err != nil {
				return err
			}

			data, err := io.ReadAll(in)
			if err != nil {
				return fmt.Errorf("reading stdin: %w", err)
			}

			written, err := writeFile(args[0], data, p, *appendMode, *doSync, cfg.retryPolicy())
			if err != nil {
				return err
			}

			fmt.Fprintf(out, "wrote %d bytes\n", written)

			if *report != "" {
				summary := fmt.Sprintf("path=%s bytes=%d append=%v sync=%v\n",
					args[0], written, *appendMode, *doSync)

				if err := atomic.WriteFile(*report, strings.NewReader(summary)); err != nil {
					return fmt.Errorf("writing report: %w", err)
				}
			}

			return nil
		},
	}
}

func writeFile(path string, data []byte, perm sys.Permissions, appendMode, doSync bool, retry sys.RetryPolicy) (int, error) {
	opts := sys.OpenOptions{Create: true, Truncate: !appendMode, Append: appendMode}

	fd, err := sys.Open(path, sys.WriteOnly, opts, perm)
	if err != nil {
		return 0, err
	}

	h, err := sys.NewHandle(fd, false)
	if err != nil {
		_ = fd.Close()

		return 0, err
	}

	h.Retry = retry

	written := 0

	for written < len(data) {
		n, err := h.Write(data[written:])
		if err != nil {
			_ = fd.Close()

			return written, err
		}

		written += n
	}

	if doSync {
		if err := fd.Sync(); err != nil {
			_ = fd.Close()

			return written, err
		}
	}

	return written, fd.Close()
}
