//go:build windows

package sys

import (
	"errors"

	"golang.org/x/sys/windows"
)

// The four data-transfer shapes. All of them may transfer fewer bytes than
// requested (a short transfer is a success value, never an error) and report
// end-of-stream on read as (0, nil).
//
// Platform caveat: the kernel updates the handle's file pointer after
// overlapped (positional) I/O as well. Positional calls remain independently
// ordered by their explicit offsets, but mixing positional and sequential
// calls on one handle needs external coordination.
//
// Errors: [ErrWouldBlock], [ErrBrokenPipe], [ErrNoSpace],
// [ErrBadDescriptor], [ErrUnknown].

// Read transfers up to len(p) bytes from the file pointer, advancing it.
func (fd FD) Read(p []byte) (int, error) {
	return ioRetry(DefaultRetry, "read", func() (int, error) {
		return rawRead(fd, p)
	})
}

// Write transfers up to len(p) bytes at the file pointer, advancing it.
func (fd FD) Write(p []byte) (int, error) {
	return ioRetry(DefaultRetry, "write", func() (int, error) {
		return rawWrite(fd, p)
	})
}

// Pread transfers up to len(p) bytes from the explicit byte offset.
func (fd FD) Pread(p []byte, offset int64) (int, error) {
	return ioRetry(DefaultRetry, "pread", func() (int, error) {
		return rawPread(fd, p, offset)
	})
}

// Pwrite transfers up to len(p) bytes at the explicit byte offset.
func (fd FD) Pwrite(p []byte, offset int64) (int, error) {
	return ioRetry(DefaultRetry, "pwrite", func() (int, error) {
		return rawPwrite(fd, p, offset)
	})
}

// Seek repositions the file pointer and returns the new offset from the
// start of the file. Whence is interpreted as in lseek: 0 from start, 1
// from current, 2 from end.
//
// Errors: [ErrBadDescriptor], [ErrInvalid], [ErrUnknown].
func (fd FD) Seek(offset int64, whence int) (int64, error) {
	n, err := windows.Seek(windows.Handle(fd), offset, whence)
	if err != nil {
		return 0, wrapErr("seek", err)
	}

	return n, nil
}

// Sync flushes the file's data and metadata to stable storage.
//
// Errors: [ErrBadDescriptor], [ErrNoSpace], [ErrUnknown].
func (fd FD) Sync() error {
	return wrapErr("sync", windows.FlushFileBuffers(windows.Handle(fd)))
}

// Truncate changes the file size. The file pointer position after Truncate
// is unspecified; callers should Seek before the next sequential transfer.
//
// Errors: [ErrBadDescriptor], [ErrInvalid], [ErrPermission], [ErrUnknown].
func (fd FD) Truncate(size int64) error {
	return wrapErr("truncate", windows.Ftruncate(windows.Handle(fd), size))
}

// rawRead folds the Windows end-of-stream signals into the (0, nil) EOF
// convention: reading past EOF reports ERROR_HANDLE_EOF, and reading a pipe
// whose write end closed reports ERROR_BROKEN_PIPE.
func rawRead(fd FD, p []byte) (int, error) {
	var done uint32

	err := windows.ReadFile(windows.Handle(fd), p, &done, nil)
	if errors.Is(err, windows.ERROR_HANDLE_EOF) || errors.Is(err, windows.ERROR_BROKEN_PIPE) {
		return 0, nil
	}
	if err != nil {
		return 0, err
	}

	return int(done), nil
}

func rawWrite(fd FD, p []byte) (int, error) {
	var done uint32

	err := windows.WriteFile(windows.Handle(fd), p, &done, nil)
	if err != nil {
		return 0, err
	}

	return int(done), nil
}

func rawPread(fd FD, p []byte, offset int64) (int, error) {
	ol := overlappedAt(offset)

	var done uint32

	err := windows.ReadFile(windows.Handle(fd), p, &done, &ol)
	if errors.Is(err, windows.ERROR_HANDLE_EOF) || errors.Is(err, windows.ERROR_BROKEN_PIPE) {
		return 0, nil
	}
	if err != nil {
		return 0, err
	}

	return int(done), nil
}

func rawPwrite(fd FD, p []byte, offset int64) (int, error) {
	ol := overlappedAt(offset)

	var done uint32

	err := windows.WriteFile(windows.Handle(fd), p, &done, &ol)
	if err != nil {
		return 0, err
	}

	return int(done), nil
}

func overlappedAt(offset int64) windows.Overlapped {
	return windows.Overlapped{
		Offset:     uint32(offset),
		OffsetHigh: uint32(offset >> 32),
	}
}

// ioRetry classifies the outcome of a transfer. Windows has no EINTR-style
// interruption, so the policy's retry knobs are inert here.
func ioRetry(_ RetryPolicy, op string, fn func() (int, error)) (int, error) {
	n, err := fn()
	if err != nil {
		return 0, wrapErr(op, err)
	}

	return n, nil
}
