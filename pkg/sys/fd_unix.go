//go:build unix

package sys

import "golang.org/x/sys/unix"

// FD is an opaque handle to an open OS-level resource (file, pipe end).
//
// An FD is a plain value: equality is by raw descriptor number, copying it
// does not duplicate the underlying resource, and nothing in this package
// closes or finalizes it implicitly. A value is only meaningful while the
// resource it names is still open; positional operations on a shared FD are
// safe for concurrent callers (see [FD.Pread]).
type FD int

// Raw returns the platform descriptor value.
func (fd FD) Raw() uintptr {
	return uintptr(fd)
}

// Close releases the descriptor. This is the only way a descriptor owned by
// this layer is destroyed; Close is never called on the caller's behalf.
//
// Errors: [ErrBadDescriptor], [ErrInterrupted], [ErrUnknown].
//
// Close is not retried on interruption: POSIX leaves the descriptor state
// unspecified after an interrupted close, so retrying risks closing a
// descriptor another thread has already reused.
func (fd FD) Close() error {
	return wrapErr("close", unix.Close(int(fd)))
}
