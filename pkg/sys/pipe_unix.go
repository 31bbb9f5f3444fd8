//go:build unix

package sys

import "golang.org/x/sys/unix"

// Pipe creates a unidirectional channel and returns its (read, write)
// descriptor pair with no data buffered yet. Both ends are close-on-exec.
// Closing both ends is the caller's job.
//
// Writing to the write end after every read descriptor is closed fails with
// [ErrBrokenPipe]. (The kernel also raises SIGPIPE at the process; the Go
// runtime swallows it for descriptors other than stdout/stderr.)
//
// Errors: [ErrTooManyOpenFiles], [ErrUnknown].
func Pipe() (FD, FD, error) {
	var p [2]int

	err := retryIntr(DefaultRetry, "pipe", func() error {
		return unix.Pipe(p[:])
	})
	if err != nil {
		return -1, -1, err
	}

	unix.CloseOnExec(p[0])
	unix.CloseOnExec(p[1])

	return FD(p[0]), FD(p[1]), nil
}
