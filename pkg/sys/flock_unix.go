//go:build unix

package sys

import (
	"errors"
	"syscall"

	"golang.org/x/sys/unix"
)

// Flock acquires a whole-file advisory lock on fd via flock(2). With block
// set the call waits for the lock; otherwise a contended lock fails with
// [ErrWouldBlock]. Upgrading or downgrading an already-held lock is a new
// acquisition and may block the same way.
//
// Errors: [ErrWouldBlock], [ErrBadDescriptor], [ErrUnsupported],
// [ErrInterrupted], [ErrUnknown].
func Flock(fd FD, mode LockMode, block bool) error {
	how := unix.LOCK_SH
	if mode == LockExclusive {
		how = unix.LOCK_EX
	}

	if !block {
		how |= unix.LOCK_NB
	}

	return retryIntr(DefaultRetry, "flock", func() error {
		return unix.Flock(int(fd), how)
	})
}

// Funlock releases the whole-file lock held on fd. Closing the descriptor
// releases it as well; an explicit unlock just makes the release ordering
// deterministic.
//
// Errors: [ErrBadDescriptor], [ErrInterrupted], [ErrUnknown].
func Funlock(fd FD) error {
	return retryIntr(DefaultRetry, "funlock", func() error {
		return unix.Flock(int(fd), unix.LOCK_UN)
	})
}

// LockRange acquires an advisory byte-range lock via fcntl(2) record
// locking. Range locks are owned by the process: two descriptors in the
// same process never conflict, and POSIX drops the process's locks on a
// file when any descriptor for it is closed.
//
// Errors: [ErrWouldBlock], [ErrBadDescriptor], [ErrInvalid],
// [ErrInterrupted], [ErrUnknown].
func LockRange(fd FD, mode LockMode, r Range, block bool) error {
	typ := int16(unix.F_RDLCK)
	if mode == LockExclusive {
		typ = unix.F_WRLCK
	}

	return fcntlLock(fd, "lockrange", typ, r, block)
}

// UnlockRange releases the byte-range lock covering r.
//
// Errors: [ErrBadDescriptor], [ErrInvalid], [ErrInterrupted], [ErrUnknown].
func UnlockRange(fd FD, r Range) error {
	return fcntlLock(fd, "unlockrange", unix.F_UNLCK, r, false)
}

func fcntlLock(fd FD, op string, typ int16, r Range, block bool) error {
	cmd := unix.F_SETLK
	if block {
		cmd = unix.F_SETLKW
	}

	lk := unix.Flock_t{
		Type:   typ,
		Whence: 0, // offsets relative to file start
		Start:  r.Offset,
		Len:    r.Length,
	}

	var err error

	for i, attempts := 0, DefaultRetry.attempts(); i < attempts; i++ {
		err = unix.FcntlFlock(uintptr(fd), cmd, &lk)
		if err == nil {
			return nil
		}

		if !errors.Is(err, unix.EINTR) {
			break
		}
	}

	// POSIX allows either EACCES or EAGAIN for a contended non-blocking
	// request; both mean "would block" here, not "permission denied".
	if !block && (errors.Is(err, unix.EACCES) || errors.Is(err, unix.EAGAIN)) {
		var native syscall.Errno

		errors.As(err, &native)

		return &Error{Op: op, Err: ErrWouldBlock, Native: native}
	}

	return wrapErr(op, err)
}
