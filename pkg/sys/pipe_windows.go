//go:build windows

package sys

import "golang.org/x/sys/windows"

// Pipe creates a unidirectional channel and returns its (read, write)
// descriptor pair with no data buffered yet. Closing both ends is the
// caller's job.
//
// Writing to the write end after the read handle is closed fails with
// [ErrBrokenPipe].
//
// Errors: [ErrTooManyOpenFiles], [ErrUnknown].
func Pipe() (FD, FD, error) {
	var r, w windows.Handle

	if err := windows.CreatePipe(&r, &w, nil, 0); err != nil {
		invalid := FD(windows.InvalidHandle)

		return invalid, invalid, wrapErr("pipe", err)
	}

	return FD(r), FD(w), nil
}
