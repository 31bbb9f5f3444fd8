//go:build windows

package sys

import (
	"syscall"

	"golang.org/x/sys/windows"
)

// sentinelFor maps a Windows status code onto the semantic taxonomy.
//
// Windows API errors arrive as syscall.Errno holding the GetLastError value,
// so the same carrier type works on both platform families.
func sentinelFor(e syscall.Errno) error {
	switch e {
	case windows.ERROR_FILE_NOT_FOUND, windows.ERROR_PATH_NOT_FOUND, windows.ERROR_INVALID_NAME:
		return ErrNotFound
	case windows.ERROR_ACCESS_DENIED, windows.ERROR_PRIVILEGE_NOT_HELD, windows.ERROR_WRITE_PROTECT:
		return ErrPermission
	case windows.ERROR_FILE_EXISTS, windows.ERROR_ALREADY_EXISTS:
		return ErrExists
	case windows.ERROR_DIRECTORY_NOT_SUPPORTED:
		return ErrIsDirectory
	case windows.ERROR_TOO_MANY_OPEN_FILES:
		return ErrTooManyOpenFiles
	case windows.ERROR_INVALID_PARAMETER, windows.ERROR_INVALID_FLAGS:
		return ErrInvalid
	case windows.ERROR_NOT_SUPPORTED, windows.ERROR_CALL_NOT_IMPLEMENTED, windows.ERROR_INVALID_FUNCTION:
		return ErrUnsupported
	case windows.ERROR_LOCK_VIOLATION, windows.ERROR_IO_PENDING, windows.WSAEWOULDBLOCK:
		return ErrWouldBlock
	case windows.ERROR_BROKEN_PIPE, windows.ERROR_NO_DATA:
		return ErrBrokenPipe
	case windows.ERROR_DISK_FULL, windows.ERROR_HANDLE_DISK_FULL:
		return ErrNoSpace
	case windows.ERROR_WORKING_SET_QUOTA, windows.ERROR_NOT_ENOUGH_MEMORY, windows.ERROR_COMMITMENT_LIMIT:
		return ErrResourceLimit
	case windows.ERROR_INVALID_HANDLE:
		return ErrBadDescriptor
	case windows.ERROR_FILENAME_EXCED_RANGE:
		return ErrTooLong
	default:
		return ErrUnknown
	}
}
