//go:build darwin

package sys

import "golang.org/x/sys/unix"

// Darwin has no O_DIRECT; cache bypass is F_NOCACHE after open.
func directOpenFlag(bool) int {
	return 0
}

func enableDirect(fd FD) error {
	return retryIntr(DefaultRetry, "open.nocache", func() error {
		_, err := unix.FcntlInt(uintptr(fd), unix.F_NOCACHE, 1)

		return err
	})
}

// directAlignment reports the transfer alignment for F_NOCACHE I/O. The
// kernel does not hard-require alignment the way O_DIRECT does, but only
// page-aligned transfers actually bypass the unified buffer cache.
func directAlignment(FD) (int, error) {
	return unix.Getpagesize(), nil
}
