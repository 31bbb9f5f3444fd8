//go:build unix

package sys

import (
	"errors"

	"golang.org/x/sys/unix"
)

// The four data-transfer shapes. All of them:
//
//   - retry transparently on interruption (see [RetryPolicy]);
//   - may transfer fewer bytes than requested (a short transfer is a
//     success value, never an error; looping to completion is the caller's
//     job);
//   - report end-of-stream on read as (0, nil), not as an error.
//
// Errors: [ErrWouldBlock], [ErrBrokenPipe], [ErrNoSpace],
// [ErrBadDescriptor], [ErrIsDirectory], [ErrInterrupted], [ErrUnknown].

// Read transfers up to len(p) bytes from the shared file position, advancing
// it. Sharing one descriptor's position across concurrent callers has
// platform-defined interleaving; coordinate externally or use [FD.Pread].
func (fd FD) Read(p []byte) (int, error) {
	return ioRetry(DefaultRetry, "read", func() (int, error) {
		return rawRead(fd, p)
	})
}

// Write transfers up to len(p) bytes at the shared file position, advancing
// it (or at end of file for descriptors opened with Append).
func (fd FD) Write(p []byte) (int, error) {
	return ioRetry(DefaultRetry, "write", func() (int, error) {
		return rawWrite(fd, p)
	})
}

// Pread transfers up to len(p) bytes from the explicit byte offset without
// touching the shared file position. Concurrent positional calls on one
// descriptor are independently ordered by offset and do not interfere.
func (fd FD) Pread(p []byte, offset int64) (int, error) {
	return ioRetry(DefaultRetry, "pread", func() (int, error) {
		return rawPread(fd, p, offset)
	})
}

// Pwrite transfers up to len(p) bytes at the explicit byte offset without
// touching the shared file position.
func (fd FD) Pwrite(p []byte, offset int64) (int, error) {
	return ioRetry(DefaultRetry, "pwrite", func() (int, error) {
		return rawPwrite(fd, p, offset)
	})
}

// Seek repositions the shared file position and returns the new offset from
// the start of the file. Whence is interpreted as in lseek(2): 0 from start,
// 1 from current, 2 from end.
//
// Errors: [ErrBadDescriptor], [ErrInvalid], [ErrUnsupported] (pipes),
// [ErrUnknown].
func (fd FD) Seek(offset int64, whence int) (int64, error) {
	n, err := unix.Seek(int(fd), offset, whence)
	if err != nil {
		return 0, wrapErr("seek", err)
	}

	return n, nil
}

// Sync flushes the file's data and metadata to stable storage.
//
// Errors: [ErrBadDescriptor], [ErrNoSpace], [ErrUnsupported],
// [ErrInterrupted], [ErrUnknown].
func (fd FD) Sync() error {
	return retryIntr(DefaultRetry, "sync", func() error {
		return unix.Fsync(int(fd))
	})
}

// Truncate changes the file size. The shared file position is unchanged.
//
// Errors: [ErrBadDescriptor], [ErrInvalid], [ErrPermission],
// [ErrInterrupted], [ErrUnknown].
func (fd FD) Truncate(size int64) error {
	return retryIntr(DefaultRetry, "truncate", func() error {
		return unix.Ftruncate(int(fd), size)
	})
}

func rawRead(fd FD, p []byte) (int, error) {
	return unix.Read(int(fd), p)
}

func rawWrite(fd FD, p []byte) (int, error) {
	return unix.Write(int(fd), p)
}

func rawPread(fd FD, p []byte, offset int64) (int, error) {
	return unix.Pread(int(fd), p, offset)
}

func rawPwrite(fd FD, p []byte, offset int64) (int, error) {
	return unix.Pwrite(int(fd), p, offset)
}

// ioRetry runs a transfer with interruption retries per the policy, then
// classifies the outcome. Short transfers and zero-byte reads pass through
// as successes.
func ioRetry(policy RetryPolicy, op string, fn func() (int, error)) (int, error) {
	var (
		n   int
		err error
	)

	for i, attempts := 0, policy.attempts(); i < attempts; i++ {
		n, err = fn()
		if err == nil {
			return n, nil
		}

		if !errors.Is(err, unix.EINTR) {
			return 0, wrapErr(op, err)
		}
	}

	return 0, wrapErr(op, err)
}
