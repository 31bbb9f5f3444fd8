//go:build linux

package sys

import "golang.org/x/sys/unix"

// Direct I/O on Linux is O_DIRECT at open time.
func directOpenFlag(direct bool) int {
	if direct {
		return unix.O_DIRECT
	}

	return 0
}

func enableDirect(FD) error {
	return nil
}

// directAlignment reports the transfer alignment O_DIRECT requires for fd.
//
// The preferred block size from fstat is the filesystem's answer; 512 is the
// floor because no Linux block device has a smaller logical sector.
func directAlignment(fd FD) (int, error) {
	var st unix.Stat_t

	err := retryIntr(DefaultRetry, "handle.alignment", func() error {
		return unix.Fstat(int(fd), &st)
	})
	if err != nil {
		return 0, err
	}

	align := int(st.Blksize)
	if align < 512 {
		align = 512
	}

	return align, nil
}
