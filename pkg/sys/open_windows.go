//go:build windows

package sys

import "golang.org/x/sys/windows"

// Open translates mode, options, and permissions into CreateFile and returns
// a descriptor. The descriptor is not closed on the caller's behalf.
//
// Errors: [ErrNotFound], [ErrPermission], [ErrExists], [ErrIsDirectory],
// [ErrTooManyOpenFiles], [ErrInvalid], [ErrUnsupported], [ErrEmbeddedNull],
// [ErrTooLong], [ErrUnknown].
func Open(path string, mode Mode, opts OpenOptions, perm Permissions) (FD, error) {
	invalid := FD(windows.InvalidHandle)

	if err := validateOpen(mode, opts); err != nil {
		return invalid, err
	}

	// CreateFile has no non-blocking mode for file handles.
	if opts.NonBlocking {
		return invalid, structural("open", ErrUnsupported)
	}

	fd := invalid

	err := WithPath(path, func(p Path) error {
		name, err := windows.UTF16PtrFromString(p.String())
		if err != nil {
			return structural("open", ErrEmbeddedNull)
		}

		var access uint32

		switch mode {
		case ReadOnly:
			access = windows.GENERIC_READ
		case WriteOnly:
			access = windows.GENERIC_WRITE
		case ReadWrite:
			access = windows.GENERIC_READ | windows.GENERIC_WRITE
		}

		if opts.Append {
			// Append-only access instead of arbitrary-position writes.
			access &^= windows.GENERIC_WRITE
			access |= windows.FILE_APPEND_DATA
		}

		share := uint32(windows.FILE_SHARE_READ | windows.FILE_SHARE_WRITE | windows.FILE_SHARE_DELETE)

		var disposition uint32

		switch {
		case opts.Create && opts.Exclusive:
			disposition = windows.CREATE_NEW
		case opts.Create && opts.Truncate:
			disposition = windows.CREATE_ALWAYS
		case opts.Create:
			disposition = windows.OPEN_ALWAYS
		case opts.Truncate:
			disposition = windows.TRUNCATE_EXISTING
		default:
			disposition = windows.OPEN_EXISTING
		}

		attrs := uint32(windows.FILE_ATTRIBUTE_NORMAL)
		if opts.Create && perm&0o200 == 0 {
			attrs = windows.FILE_ATTRIBUTE_READONLY
		}

		if opts.Direct {
			attrs |= windows.FILE_FLAG_NO_BUFFERING | windows.FILE_FLAG_WRITE_THROUGH
		}

		h, err := windows.CreateFile(name, access, share, nil, disposition, attrs, 0)
		if err != nil {
			return wrapErr("open", err)
		}

		fd = FD(h)

		return nil
	})
	if err != nil {
		return invalid, err
	}

	return fd, nil
}

// Unlink removes the directory entry at path. Open handles opened with
// delete sharing keep working until closed.
//
// Errors: [ErrNotFound], [ErrPermission], [ErrEmbeddedNull], [ErrTooLong],
// [ErrUnknown].
func Unlink(path string) error {
	return WithPath(path, func(p Path) error {
		name, err := windows.UTF16PtrFromString(p.String())
		if err != nil {
			return structural("unlink", ErrEmbeddedNull)
		}

		return wrapErr("unlink", windows.DeleteFile(name))
	})
}
