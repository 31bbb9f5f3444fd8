//go:build unix

package sys

import "golang.org/x/sys/unix"

// Open translates mode, options, and permissions into the platform open call
// and returns a descriptor. Interruption is retried transparently per
// [DefaultRetry]. The descriptor is not closed on the caller's behalf.
//
// Errors: [ErrNotFound], [ErrPermission], [ErrExists], [ErrIsDirectory],
// [ErrTooManyOpenFiles], [ErrInvalid], [ErrUnsupported], [ErrEmbeddedNull],
// [ErrTooLong], [ErrInterrupted], [ErrUnknown].
func Open(path string, mode Mode, opts OpenOptions, perm Permissions) (FD, error) {
	if err := validateOpen(mode, opts); err != nil {
		return -1, err
	}

	flags := nativeOpenFlags(mode, opts)

	fd := -1

	err := WithPath(path, func(p Path) error {
		return retryIntr(DefaultRetry, "open", func() error {
			f, err := unix.Open(p.String(), flags, uint32(perm))
			if err != nil {
				return err
			}

			fd = f

			return nil
		})
	})
	if err != nil {
		return -1, err
	}

	if opts.Direct {
		if err := enableDirect(FD(fd)); err != nil {
			_ = unix.Close(fd)

			return -1, err
		}
	}

	return FD(fd), nil
}

func nativeOpenFlags(mode Mode, opts OpenOptions) int {
	var flags int

	switch mode {
	case ReadOnly:
		flags = unix.O_RDONLY
	case WriteOnly:
		flags = unix.O_WRONLY
	case ReadWrite:
		flags = unix.O_RDWR
	}

	// Descriptors never leak across exec.
	flags |= unix.O_CLOEXEC

	if opts.Create {
		flags |= unix.O_CREAT
	}

	if opts.Truncate {
		flags |= unix.O_TRUNC
	}

	if opts.Exclusive {
		flags |= unix.O_EXCL
	}

	if opts.Append {
		flags |= unix.O_APPEND
	}

	if opts.NonBlocking {
		flags |= unix.O_NONBLOCK
	}

	flags |= directOpenFlag(opts.Direct)

	return flags
}

// Unlink removes the directory entry at path. Open descriptors referring to
// the file keep working until closed.
//
// Errors: [ErrNotFound], [ErrPermission], [ErrIsDirectory], [ErrEmbeddedNull],
// [ErrTooLong], [ErrUnknown].
func Unlink(path string) error {
	return WithPath(path, func(p Path) error {
		return retryIntr(DefaultRetry, "unlink", func() error {
			return unix.Unlink(p.String())
		})
	})
}
