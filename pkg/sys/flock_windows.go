//go:build windows

package sys

import "golang.org/x/sys/windows"

// Flock acquires a whole-file lock on fd via LockFileEx, covering the
// maximum byte range. Windows enforces the lock against conflicting I/O
// (mandatory semantics); see the divergence note in flock.go. With block
// unset a contended lock fails with [ErrWouldBlock].
//
// Errors: [ErrWouldBlock], [ErrBadDescriptor], [ErrUnknown].
func Flock(fd FD, mode LockMode, block bool) error {
	return lockFileEx(fd, "flock", mode, wholeFileRange(), block)
}

// Funlock releases the whole-file lock held on fd.
//
// Errors: [ErrBadDescriptor], [ErrUnknown].
func Funlock(fd FD) error {
	return unlockFileEx(fd, "funlock", wholeFileRange())
}

// LockRange acquires a byte-range lock via LockFileEx.
//
// Errors: [ErrWouldBlock], [ErrBadDescriptor], [ErrInvalid], [ErrUnknown].
func LockRange(fd FD, mode LockMode, r Range, block bool) error {
	return lockFileEx(fd, "lockrange", mode, r, block)
}

// UnlockRange releases the byte-range lock covering r.
//
// Errors: [ErrBadDescriptor], [ErrInvalid], [ErrUnknown].
func UnlockRange(fd FD, r Range) error {
	return unlockFileEx(fd, "unlockrange", r)
}

// wholeFileRange is the largest lockable range; Length 0 means to-EOF in
// the portable API, which Windows has no direct encoding for.
func wholeFileRange() Range {
	return Range{Offset: 0, Length: int64(^uint64(0) >> 1)}
}

func lockFileEx(fd FD, op string, mode LockMode, r Range, block bool) error {
	if r.Length == 0 {
		r.Length = wholeFileRange().Length - r.Offset
	}

	var flags uint32
	if mode == LockExclusive {
		flags |= windows.LOCKFILE_EXCLUSIVE_LOCK
	}

	if !block {
		flags |= windows.LOCKFILE_FAIL_IMMEDIATELY
	}

	ol := overlappedAt(r.Offset)

	err := windows.LockFileEx(windows.Handle(fd), flags, 0,
		uint32(r.Length), uint32(r.Length>>32), &ol)

	return wrapErr(op, err)
}

func unlockFileEx(fd FD, op string, r Range) error {
	if r.Length == 0 {
		r.Length = wholeFileRange().Length - r.Offset
	}

	ol := overlappedAt(r.Offset)

	err := windows.UnlockFileEx(windows.Handle(fd), 0,
		uint32(r.Length), uint32(r.Length>>32), &ol)

	return wrapErr(op, err)
}
