//go:build linux

package sys

import "golang.org/x/sys/unix"

// Datasync flushes the file's data (but not unrelated metadata) to stable
// storage.
//
// Errors: [ErrBadDescriptor], [ErrNoSpace], [ErrUnsupported],
// [ErrInterrupted], [ErrUnknown].
func (fd FD) Datasync() error {
	return retryIntr(DefaultRetry, "datasync", func() error {
		return unix.Fdatasync(int(fd))
	})
}
