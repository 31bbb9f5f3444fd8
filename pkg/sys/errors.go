package sys

import (
	"errors"
	"fmt"
	"syscall"
)

// Sentinel errors produced by sys operations.
//
// Each operation documents the subset it can return; callers should use
// [errors.Is] to check them. The sentinels group native failures by semantic
// meaning, not by native code, so the same check works on every platform.
var (
	// ErrNotFound indicates the path (or a component of it) does not exist,
	// or a descriptor no longer refers to a live resource.
	ErrNotFound = errors.New("sys: not found")

	// ErrPermission indicates insufficient permission or privilege.
	ErrPermission = errors.New("sys: permission denied")

	// ErrExists indicates the target already exists. Returned by [Open] when
	// Exclusive+Create is requested on an existing path.
	ErrExists = errors.New("sys: already exists")

	// ErrIsDirectory indicates a directory where a file was required.
	ErrIsDirectory = errors.New("sys: is a directory")

	// ErrTooManyOpenFiles indicates the process or system descriptor limit
	// has been reached.
	ErrTooManyOpenFiles = errors.New("sys: too many open files")

	// ErrInvalid indicates a structurally invalid argument or flag
	// combination. Invalid combinations are rejected before the syscall.
	ErrInvalid = errors.New("sys: invalid argument")

	// ErrUnsupported indicates the operation is not supported on this
	// platform, filesystem, or descriptor type.
	ErrUnsupported = errors.New("sys: unsupported")

	// ErrWouldBlock indicates the operation would block: a non-blocking
	// descriptor with no data, or a contended lock in non-blocking mode.
	ErrWouldBlock = errors.New("sys: would block")

	// ErrBrokenPipe indicates a write to a pipe whose read end is closed.
	ErrBrokenPipe = errors.New("sys: broken pipe")

	// ErrInterrupted indicates the call was interrupted by a signal and
	// interruption retries are disabled (see [RetryPolicy]).
	ErrInterrupted = errors.New("sys: interrupted")

	// ErrNoSpace indicates the device or quota is full.
	ErrNoSpace = errors.New("sys: no space on device")

	// ErrResourceLimit indicates a kernel resource quota was exhausted,
	// for example the pinned-memory limit during an mlock.
	ErrResourceLimit = errors.New("sys: resource limit exceeded")

	// ErrBadDescriptor indicates the descriptor is not open or not valid
	// for the attempted operation.
	ErrBadDescriptor = errors.New("sys: bad descriptor")

	// ErrMisaligned indicates a direct-I/O buffer, offset, or length that
	// violates the device alignment. Detected before the syscall.
	ErrMisaligned = errors.New("sys: misaligned direct I/O")

	// ErrEmbeddedNull indicates a path containing an interior NUL byte.
	ErrEmbeddedNull = errors.New("sys: embedded null in path")

	// ErrTooLong indicates a path exceeding the platform maximum.
	ErrTooLong = errors.New("sys: path too long")

	// ErrUnknown indicates a native failure with no narrower semantic
	// mapping. The native code is preserved on [Error] for diagnostics;
	// callers must still handle it explicitly.
	ErrUnknown = errors.New("sys: unknown failure")
)

// Error is the typed failure returned by every sys operation.
//
// Err is always one of the package sentinels, so [errors.Is] works against
// the closed per-operation sets. Native preserves the platform code (errno
// on POSIX, the status code on Windows) and is zero for structural failures
// detected before any syscall.
//
// Native is intentionally not reachable through [errors.Is]; the semantic
// sentinel is the public contract, the native code is diagnostics only.
type Error struct {
	Op     string
	Err    error
	Native syscall.Errno
}

func (e *Error) Error() string {
	if e.Native != 0 {
		return fmt.Sprintf("%s: %v (native %d)", e.Op, e.Err, uint64(e.Native))
	}

	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// NativeError translates a native failure code into the semantic taxonomy.
// The zero code returns nil. Used by sibling packages (mmap) that share the
// taxonomy; most callers never construct errors themselves.
func NativeError(op string, native syscall.Errno) error {
	if native == 0 {
		return nil
	}

	return &Error{Op: op, Err: sentinelFor(native), Native: native}
}

// structural reports a failure detected before any syscall was issued.
func structural(op string, sentinel error) error {
	return &Error{Op: op, Err: sentinel}
}

// wrapErr classifies an error returned by a raw syscall wrapper. Non-errno
// errors (which the x/sys wrappers do not produce) map to ErrUnknown.
func wrapErr(op string, err error) error {
	if err == nil {
		return nil
	}

	var native syscall.Errno
	if errors.As(err, &native) {
		return NativeError(op, native)
	}

	return &Error{Op: op, Err: ErrUnknown}
}
