//go:build linux

package sys

import (
	"errors"

	"golang.org/x/sys/unix"
)

// copyAccelerated tries FICLONE (a copy-on-write reflink, instant on btrfs
// and XFS) and then copy_file_range (an in-kernel byte copy). Returns
// (false, nil) when neither applies so the caller falls back to the
// explicit loop; real failures (ENOSPC, EIO) propagate.
func copyAccelerated(src, dst string, perm Permissions) (bool, error) {
	in, err := Open(src, ReadOnly, OpenOptions{}, 0)
	if err != nil {
		return false, err
	}
	defer in.Close()

	st, err := Stat(in)
	if err != nil {
		return false, err
	}

	out, err := Open(dst, WriteOnly, OpenOptions{Create: true, Truncate: true}, perm)
	if err != nil {
		return false, err
	}

	if err := unix.IoctlFileClone(int(out), int(in)); err == nil {
		return true, out.Close()
	} else if !fallbackErrno(err) {
		_ = out.Close()

		return false, wrapErr("copy.clone", err)
	}

	remaining := st.Size

	for remaining > 0 {
		var (
			n   int
			err error
		)

		for i, attempts := 0, DefaultRetry.attempts(); i < attempts; i++ {
			n, err = unix.CopyFileRange(int(in), nil, int(out), nil, int(min(remaining, copyChunk)), 0)
			if err == nil || !errors.Is(err, unix.EINTR) {
				break
			}
		}

		if err != nil {
			_ = out.Close()

			if fallbackErrno(err) {
				return false, nil
			}

			return false, wrapErr("copy.range", err)
		}

		if n == 0 {
			// Source shrank under us; the loop fallback re-reads it.
			_ = out.Close()

			return false, nil
		}

		remaining -= int64(n)
	}

	return true, out.Close()
}

// fallbackErrno reports the errnos meaning "acceleration does not apply
// here" rather than "the copy failed": old kernels, cross-device requests,
// and filesystems without reflink support.
func fallbackErrno(err error) bool {
	return errors.Is(err, unix.ENOSYS) ||
		errors.Is(err, unix.EXDEV) ||
		errors.Is(err, unix.EINVAL) ||
		errors.Is(err, unix.ENOTSUP) ||
		errors.Is(err, unix.EBADF) ||
		errors.Is(err, unix.ETXTBSY)
}
