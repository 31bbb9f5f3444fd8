//go:build darwin

package sys

import (
	"errors"

	"golang.org/x/sys/unix"
)

// copyAccelerated tries clonefile(2), the APFS copy-on-write clone. It
// requires the destination to not exist, so an existing destination is
// unlinked first - Copy truncates it anyway. Returns (false, nil) when the
// filesystem cannot clone (HFS+, cross-volume) so the caller falls back to
// the explicit loop.
func copyAccelerated(src, dst string, perm Permissions) (bool, error) {
	var cloneErr error

	err := WithPath(src, func(sp Path) error {
		return WithPath(dst, func(dp Path) error {
			cloneErr = unix.Clonefile(sp.String(), dp.String(), 0)
			if errors.Is(cloneErr, unix.EEXIST) {
				if err := unix.Unlink(dp.String()); err != nil {
					return wrapErr("copy.clone", err)
				}

				cloneErr = unix.Clonefile(sp.String(), dp.String(), 0)
			}

			return nil
		})
	})
	if err != nil {
		return false, err
	}

	if cloneErr != nil {
		if errors.Is(cloneErr, unix.ENOTSUP) || errors.Is(cloneErr, unix.EXDEV) ||
			errors.Is(cloneErr, unix.EINVAL) || errors.Is(cloneErr, unix.ENOSYS) {
			return false, nil
		}

		return false, wrapErr("copy.clone", cloneErr)
	}

	// clonefile carries over the source permissions; apply the requested
	// ones the same way open-with-create would have.
	err = WithPath(dst, func(dp Path) error {
		return retryIntr(DefaultRetry, "copy.chmod", func() error {
			return unix.Chmod(dp.String(), uint32(perm))
		})
	})
	if err != nil {
		return false, err
	}

	return true, nil
}
