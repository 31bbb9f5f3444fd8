package sys

import "strings"

// Path is a validated, NUL-terminated view over a path string.
//
// A Path is only valid inside the body passed to [WithPath]; it must not be
// stored or returned. The underlying bytes are guaranteed to contain no NUL
// before the final terminator.
type Path struct {
	cstr []byte
	s    string
}

// String returns the original path string.
func (p Path) String() string {
	return p.s
}

// NullTerminated returns the NUL-terminated byte view. The slice is borrowed
// for the duration of the [WithPath] body only.
func (p Path) NullTerminated() []byte {
	return p.cstr
}

// WithPath validates path, builds its NUL-terminated representation, and
// invokes body with a view valid only for the duration of the call. The
// scoped-borrow shape keeps any native pointer derived from the bytes from
// outliving the backing storage.
//
// Errors (all before any syscall): [ErrEmbeddedNull], [ErrTooLong].
func WithPath(path string, body func(Path) error) error {
	if strings.IndexByte(path, 0) >= 0 {
		return structural("path", ErrEmbeddedNull)
	}

	// The terminator needs one byte of room inside the platform limit.
	if len(path)+1 > maxPathLen {
		return structural("path", ErrTooLong)
	}

	buf := make([]byte, len(path)+1)
	copy(buf, path)

	return body(Path{cstr: buf, s: path})
}
