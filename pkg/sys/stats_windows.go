//go:build windows

package sys

import (
	"time"

	"golang.org/x/sys/windows"
)

// Stat issues the platform metadata call for fd and returns a snapshot.
// Nothing is cached; every call re-queries the kernel.
//
// Errors: [ErrBadDescriptor], [ErrUnknown].
func Stat(fd FD) (Stats, error) {
	h := windows.Handle(fd)

	var info windows.ByHandleFileInformation

	if err := windows.GetFileInformationByHandle(h, &info); err != nil {
		return Stats{}, wrapErr("stat", err)
	}

	typ := TypeRegular

	if ft, err := windows.GetFileType(h); err == nil {
		switch ft {
		case windows.FILE_TYPE_PIPE:
			typ = TypePipe
		case windows.FILE_TYPE_CHAR:
			typ = TypeDevice
		}
	}

	if info.FileAttributes&windows.FILE_ATTRIBUTE_DIRECTORY != 0 {
		typ = TypeDirectory
	}

	perm := Permissions(0o666)
	if info.FileAttributes&windows.FILE_ATTRIBUTE_READONLY != 0 {
		perm = 0o444
	}

	return Stats{
		Size:       int64(info.FileSizeHigh)<<32 | int64(info.FileSizeLow),
		Type:       typ,
		Perm:       perm,
		ModTime:    filetimeToTime(info.LastWriteTime),
		AccessTime: filetimeToTime(info.LastAccessTime),
		// NTFS has no POSIX ctime; creation time is the nearest analogue.
		ChangeTime: filetimeToTime(info.CreationTime),
	}, nil
}

// StatPath is [Stat] by pathname, without keeping a descriptor open.
//
// Errors: [ErrNotFound], [ErrPermission], [ErrEmbeddedNull], [ErrTooLong],
// [ErrUnknown].
func StatPath(path string) (Stats, error) {
	var stats Stats

	err := WithPath(path, func(p Path) error {
		name, err := windows.UTF16PtrFromString(p.String())
		if err != nil {
			return structural("stat", ErrEmbeddedNull)
		}

		// Backup semantics so directories can be opened for metadata.
		h, err := windows.CreateFile(name,
			windows.FILE_READ_ATTRIBUTES,
			windows.FILE_SHARE_READ|windows.FILE_SHARE_WRITE|windows.FILE_SHARE_DELETE,
			nil, windows.OPEN_EXISTING, windows.FILE_FLAG_BACKUP_SEMANTICS, 0)
		if err != nil {
			return wrapErr("stat", err)
		}
		defer windows.CloseHandle(h)

		stats, err = Stat(FD(h))

		return err
	})

	return stats, err
}

func filetimeToTime(ft windows.Filetime) time.Time {
	return time.Unix(0, ft.Nanoseconds())
}
