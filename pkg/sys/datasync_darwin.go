//go:build darwin

package sys

import (
	"errors"

	"golang.org/x/sys/unix"
)

// Datasync flushes the file's data to stable storage.
//
// On Darwin fsync only pushes data to the drive, not through its cache;
// F_FULLFSYNC is the call that actually reaches stable storage, so it is
// used here. It can fail with ENOTSUP on filesystems that do not implement
// it, in which case a plain fsync is the best available fallback.
//
// Errors: [ErrBadDescriptor], [ErrNoSpace], [ErrInterrupted], [ErrUnknown].
func (fd FD) Datasync() error {
	err := retryIntr(DefaultRetry, "datasync", func() error {
		_, err := unix.FcntlInt(uintptr(fd), unix.F_FULLFSYNC, 0)

		return err
	})
	if err == nil {
		return nil
	}

	if errors.Is(err, ErrUnsupported) {
		return fd.Sync()
	}

	return err
}
