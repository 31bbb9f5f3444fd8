//go:build unix

package sys

import (
	"syscall"

	"golang.org/x/sys/unix"
)

// sentinelFor maps an errno onto the semantic taxonomy.
//
// The switch compares values rather than listing constant cases because
// several errnos alias each other on some platforms (EAGAIN/EWOULDBLOCK
// everywhere, ENOTSUP/EOPNOTSUPP on Linux) and duplicate constant cases do
// not compile.
func sentinelFor(e syscall.Errno) error {
	switch {
	case e == unix.ENOENT || e == unix.ENOTDIR:
		return ErrNotFound
	case e == unix.EACCES || e == unix.EPERM || e == unix.EROFS:
		return ErrPermission
	case e == unix.EEXIST:
		return ErrExists
	case e == unix.EISDIR:
		return ErrIsDirectory
	case e == unix.EMFILE || e == unix.ENFILE:
		return ErrTooManyOpenFiles
	case e == unix.EINVAL:
		return ErrInvalid
	case e == unix.ENOTSUP || e == unix.EOPNOTSUPP || e == unix.ENOSYS || e == unix.ENODEV || e == unix.ESPIPE:
		return ErrUnsupported
	case e == unix.EAGAIN || e == unix.EWOULDBLOCK:
		return ErrWouldBlock
	case e == unix.EPIPE:
		return ErrBrokenPipe
	case e == unix.EINTR:
		return ErrInterrupted
	case e == unix.ENOSPC || e == unix.EDQUOT:
		return ErrNoSpace
	case e == unix.ENOMEM:
		return ErrResourceLimit
	case e == unix.EBADF:
		return ErrBadDescriptor
	case e == unix.ENAMETOOLONG:
		return ErrTooLong
	default:
		return ErrUnknown
	}
}
