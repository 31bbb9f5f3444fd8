//go:build unix

package sys

import (
	"time"

	"golang.org/x/sys/unix"
)

// Stat issues the platform metadata call for fd and returns a snapshot.
// Nothing is cached; every call re-queries the kernel.
//
// Errors: [ErrBadDescriptor], [ErrInterrupted], [ErrUnknown].
func Stat(fd FD) (Stats, error) {
	var st unix.Stat_t

	err := retryIntr(DefaultRetry, "stat", func() error {
		return unix.Fstat(int(fd), &st)
	})
	if err != nil {
		return Stats{}, err
	}

	return statsFrom(&st), nil
}

// StatPath is [Stat] by pathname, without opening a descriptor. Symlinks are
// followed.
//
// Errors: [ErrNotFound], [ErrPermission], [ErrEmbeddedNull], [ErrTooLong],
// [ErrInterrupted], [ErrUnknown].
func StatPath(path string) (Stats, error) {
	var st unix.Stat_t

	err := WithPath(path, func(p Path) error {
		return retryIntr(DefaultRetry, "stat", func() error {
			return unix.Stat(p.String(), &st)
		})
	})
	if err != nil {
		return Stats{}, err
	}

	return statsFrom(&st), nil
}

func statsFrom(st *unix.Stat_t) Stats {
	mode, atim, mtim, ctim := statFields(st)

	var typ FileType

	switch mode & unix.S_IFMT {
	case unix.S_IFREG:
		typ = TypeRegular
	case unix.S_IFDIR:
		typ = TypeDirectory
	case unix.S_IFLNK:
		typ = TypeSymlink
	case unix.S_IFIFO:
		typ = TypePipe
	case unix.S_IFCHR, unix.S_IFBLK:
		typ = TypeDevice
	case unix.S_IFSOCK:
		typ = TypeSocket
	default:
		typ = TypeUnknown
	}

	return Stats{
		Size:       st.Size,
		Type:       typ,
		Perm:       Permissions(mode & 0o7777),
		ModTime:    time.Unix(mtim.Unix()),
		AccessTime: time.Unix(atim.Unix()),
		ChangeTime: time.Unix(ctim.Unix()),
	}
}
