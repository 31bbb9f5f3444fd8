//go:build windows

package sys

import "golang.org/x/sys/windows"

// FD is an opaque handle to an open OS-level resource (file, pipe end).
//
// An FD is a plain value: equality is by raw handle value, copying it does
// not duplicate the underlying resource, and nothing in this package closes
// or finalizes it implicitly. A value is only meaningful while the resource
// it names is still open.
type FD windows.Handle

// Raw returns the platform handle value.
func (fd FD) Raw() uintptr {
	return uintptr(fd)
}

// Close releases the handle. This is the only way a descriptor owned by
// this layer is destroyed; Close is never called on the caller's behalf.
//
// Errors: [ErrBadDescriptor], [ErrUnknown].
func (fd FD) Close() error {
	return wrapErr("close", windows.CloseHandle(windows.Handle(fd)))
}
