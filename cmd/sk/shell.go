package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/peterh/liner"
	flag "github.com/spf13/pflag"

	"github.com/calvinalkan/syskit/pkg/mmap"
	"github.com/calvinalkan/syskit/pkg/sys"
)

func newShellCommand(cfg config) *command {
	flags := flag.NewFlagSet("shell", flag.ContinueOnError)

	return &command{
		flags: flags,
		usage: "shell",
		short: "Interactive descriptor-table REPL",
		exec: func(out io.Writer, args []string) error {
			if len(args) != 0 {
				return errors.New("shell takes no arguments")
			}

			sh := &shell{
				out:   out,
				retry: cfg.retryPolicy(),
				fds:   make(map[int]shellEntry),
				next:  1,
			}

			return sh.run()
		},
	}
}

// shellEntry is one row of the REPL's descriptor table. I/O goes through
// a Handle so the configured retry policy applies.
type shellEntry struct {
	h    *sys.Handle
	path string
	mode sys.Mode
}

type shell struct {
	out   io.Writer
	retry sys.RetryPolicy
	ln    *liner.State
	fds   map[int]shellEntry
	next  int
}

func historyFile() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}

	return filepath.Join(home, ".sk_history")
}

func (s *shell) run() error {
	s.ln = liner.NewLiner()
	defer s.ln.Close()

	s.ln.SetCtrlCAborts(true)
	s.ln.SetCompleter(s.completer)

	if f, err := os.Open(historyFile()); err == nil {
		_, _ = s.ln.ReadHistory(f)
		f.Close()
	}

	fmt.Fprintf(s.out, "sk shell (page size %d)\n", mmap.PageSize())
	fmt.Fprintln(s.out, "Type 'help' for available commands.")
	fmt.Fprintln(s.out)

	for {
		line, err := s.ln.Prompt("sk> ")
		if err != nil {
			if errors.Is(err, liner.ErrPromptAborted) || errors.Is(err, io.EOF) {
				fmt.Fprintln(s.out)

				break
			}

			return fmt.Errorf("reading input: %w", err)
		}

		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}

		s.ln.AppendHistory(line)

		parts := strings.Fields(line)
		cmd := strings.ToLower(parts[0])
		args := parts[1:]

		if cmd == "exit" || cmd == "quit" || cmd == "q" {
			break
		}

		if err := s.dispatch(cmd, args); err != nil {
			fmt.Fprintln(s.out, "error:", err)
		}
	}

	s.closeAll()
	s.saveHistory()

	return nil
}

func (s *shell) dispatch(cmd string, args []string) error {
	switch cmd {
	case "help", "?":
		s.printHelp()

		return nil
	case "open":
		return s.cmdOpen(args)
	case "close":
		return s.cmdClose(args)
	case "ls", "list":
		s.cmdList()

		return nil
	case "read":
		return s.cmdRead(args)
	case "write":
		return s.cmdWrite(args)
	case "pread":
		return s.cmdPread(args)
	case "pwrite":
		return s.cmdPwrite(args)
	case "seek":
		return s.cmdSeek(args)
	case "stat":
		return s.cmdStat(args)
	case "sync":
		return s.cmdSync(args)
	case "lock":
		return s.cmdLock(args)
	case "unlock":
		return s.cmdUnlock(args)
	case "copy":
		return s.cmdCopy(args)
	case "unlink":
		return s.cmdUnlink(args)
	default:
		return fmt.Errorf("unknown command %q (type 'help')", cmd)
	}
}

func (s *shell) printHelp() {
	fmt.Fprint(s.out, `Commands:
  open <path> [ro|wo|rw] [create] [trunc] [append]   Open a file, prints its table id
  close <id>                                         Close a descriptor
  ls                                                 List open descriptors
  read <id> <len>                                    Sequential read
  write <id> <text>                                  Sequential write
  pread <id> <offset> <len>                          Positional read
  pwrite <id> <offset> <text>                        Positional write
  seek <id> <offset> [set|cur|end]                   Move the file offset
  stat <id>                                          Metadata snapshot
  sync <id>                                          Flush to stable storage
  lock <id> [shared] [try]                           Advisory whole-file lock
  unlock <id>                                        Release the lock
  copy <src> <dst>                                   Accelerated file copy
  unlink <path>                                      Remove a file
  exit / quit / q                                    Leave the shell
`)
}

func (s *shell) cmdOpen(args []string) error {
	if len(args) < 1 {
		return errors.New("usage: open <path> [ro|wo|rw] [create] [trunc] [append]")
	}

	path := args[0]
	mode := sys.ReadOnly

	var opts sys.OpenOptions

	for _, a := range args[1:] {
		switch strings.ToLower(a) {
		case "ro":
			mode = sys.ReadOnly
		case "wo":
			mode = sys.WriteOnly
		case "rw":
			mode = sys.ReadWrite
		case "create":
			opts.Create = true
		case "trunc":
			opts.Truncate = true
		case "append":
			opts.Append = true
		default:
			return fmt.Errorf("unknown open option %q", a)
		}
	}

	fd, err := sys.Open(path, mode, opts, 0o644)
	if err != nil {
		return err
	}

	h, err := sys.NewHandle(fd, false)
	if err != nil {
		_ = fd.Close()

		return err
	}

	h.Retry = s.retry

	id := s.next
	s.next++
	s.fds[id] = shellEntry{h: h, path: path, mode: mode}

	fmt.Fprintf(s.out, "#%d = %s (%s)\n", id, path, mode)

	return nil
}

func (s *shell) cmdClose(args []string) error {
	entry, id, err := s.lookup(args, 1)
	if err != nil {
		return err
	}

	delete(s.fds, id)

	return entry.h.FD.Close()
}

func (s *shell) cmdList() {
	if len(s.fds) == 0 {
		fmt.Fprintln(s.out, "no open descriptors")

		return
	}

	for id := 1; id < s.next; id++ {
		if entry, ok := s.fds[id]; ok {
			fmt.Fprintf(s.out, "#%d  %s (%s)\n", id, entry.path, entry.mode)
		}
	}
}

func (s *shell) cmdRead(args []string) error {
	entry, _, err := s.lookup(args, 2)
	if err != nil {
		return err
	}

	size, err := parseInt(args[1], "length")
	if err != nil {
		return err
	}

	buf := make([]byte, size)

	n, err := entry.h.Read(buf)
	if err != nil {
		return err
	}

	if n == 0 {
		fmt.Fprintln(s.out, "EOF")

		return nil
	}

	fmt.Fprintf(s.out, "%d bytes: %q\n", n, buf[:n])

	return nil
}

func (s *shell) cmdWrite(args []string) error {
	entry, _, err := s.lookup(args, 2)
	if err != nil {
		return err
	}

	data := []byte(strings.Join(args[1:], " "))

	n, err := entry.h.Write(data)
	if err != nil {
		return err
	}

	fmt.Fprintf(s.out, "wrote %d of %d bytes\n", n, len(data))

	return nil
}

func (s *shell) cmdPread(args []string) error {
	entry, _, err := s.lookup(args, 3)
	if err != nil {
		return err
	}

	offset, err := parseInt64(args[1], "offset")
	if err != nil {
		return err
	}

	size, err := parseInt(args[2], "length")
	if err != nil {
		return err
	}

	buf := make([]byte, size)

	n, err := entry.h.Pread(buf, offset)
	if err != nil {
		return err
	}

	if n == 0 {
		fmt.Fprintln(s.out, "EOF")

		return nil
	}

	fmt.Fprintf(s.out, "%d bytes @ %d: %q\n", n, offset, buf[:n])

	return nil
}

func (s *shell) cmdPwrite(args []string) error {
	entry, _, err := s.lookup(args, 3)
	if err != nil {
		return err
	}

	offset, err := parseInt64(args[1], "offset")
	if err != nil {
		return err
	}

	data := []byte(strings.Join(args[2:], " "))

	n, err := entry.h.Pwrite(data, offset)
	if err != nil {
		return err
	}

	fmt.Fprintf(s.out, "wrote %d of %d bytes @ %d\n", n, len(data), offset)

	return nil
}

func (s *shell) cmdSeek(args []string) error {
	entry, _, err := s.lookup(args, 2)
	if err != nil {
		return err
	}

	offset, err := parseInt64(args[1], "offset")
	if err != nil {
		return err
	}

	whence := io.SeekStart

	if len(args) >= 3 {
		switch strings.ToLower(args[2]) {
		case "set":
			whence = io.SeekStart
		case "cur":
			whence = io.SeekCurrent
		case "end":
			whence = io.SeekEnd
		default:
			return fmt.Errorf("unknown whence %q (set|cur|end)", args[2])
		}
	}

	pos, err := entry.h.FD.Seek(offset, whence)
	if err != nil {
		return err
	}

	fmt.Fprintf(s.out, "offset = %d\n", pos)

	return nil
}

func (s *shell) cmdStat(args []string) error {
	entry, _, err := s.lookup(args, 1)
	if err != nil {
		return err
	}

	st, err := sys.Stat(entry.h.FD)
	if err != nil {
		return err
	}

	printStats(s.out, st)

	return nil
}

func (s *shell) cmdSync(args []string) error {
	entry, _, err := s.lookup(args, 1)
	if err != nil {
		return err
	}

	return entry.h.FD.Sync()
}

func (s *shell) cmdLock(args []string) error {
	entry, _, err := s.lookup(args, 1)
	if err != nil {
		return err
	}

	mode := sys.LockExclusive
	block := true

	for _, a := range args[1:] {
		switch strings.ToLower(a) {
		case "shared":
			mode = sys.LockShared
		case "try":
			block = false
		default:
			return fmt.Errorf("unknown lock option %q", a)
		}
	}

	if err := sys.Flock(entry.h.FD, mode, block); err != nil {
		return err
	}

	fmt.Fprintf(s.out, "%s lock acquired\n", lockName(mode))

	return nil
}

func (s *shell) cmdUnlock(args []string) error {
	entry, _, err := s.lookup(args, 1)
	if err != nil {
		return err
	}

	return sys.Funlock(entry.h.FD)
}

func (s *shell) cmdCopy(args []string) error {
	if len(args) != 2 {
		return errors.New("usage: copy <src> <dst>")
	}

	return sys.Copy(args[0], args[1], 0o644)
}

func (s *shell) cmdUnlink(args []string) error {
	if len(args) != 1 {
		return errors.New("usage: unlink <path>")
	}

	return sys.Unlink(args[0])
}

func (s *shell) lookup(args []string, minArgs int) (shellEntry, int, error) {
	if len(args) < minArgs {
		return shellEntry{}, 0, errors.New("missing arguments (type 'help')")
	}

	id, err := parseInt(strings.TrimPrefix(args[0], "#"), "descriptor id")
	if err != nil {
		return shellEntry{}, 0, err
	}

	entry, ok := s.fds[id]
	if !ok {
		return shellEntry{}, 0, fmt.Errorf("no open descriptor #%d", id)
	}

	return entry, id, nil
}

func (s *shell) closeAll() {
	for id, entry := range s.fds {
		_ = entry.h.FD.Close()
		delete(s.fds, id)
	}
}

func (s *shell) saveHistory() {
	if path := historyFile(); path != "" {
		if f, err := os.Create(path); err == nil {
			_, _ = s.ln.WriteHistory(f)
			f.Close()
		}
	}
}

func (s *shell) completer(line string) []string {
	commands := []string{
		"open", "close", "ls", "read", "write", "pread", "pwrite",
		"seek", "stat", "sync", "lock", "unlock", "copy", "unlink",
		"help", "exit", "quit",
	}

	var completions []string

	lower := strings.ToLower(line)
	for _, cmd := range commands {
		if strings.HasPrefix(cmd, lower) {
			completions = append(completions, cmd)
		}
	}

	return completions
}

func parseInt(s, what string) (int, error) {
	v, err := strconv.Atoi(s)
	if err != nil || v < 0 {
		return 0, fmt.Errorf("invalid %s %q", what, s)
	}

	return v, nil
}

func parseInt64(s, what string) (int64, error) {
	v, err := strconv.ParseInt(s, 10, 64)
	if err != nil || v < 0 {
		return 0, fmt.Errorf("invalid %s %q", what, s)
	}

	return v, nil
}
