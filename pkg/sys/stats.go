package sys

import "time"

// FileType tags the kind of resource a descriptor or path refers to.
type FileType uint8

const (
	// TypeUnknown is any type without its own tag.
	TypeUnknown FileType = iota
	// TypeRegular is an ordinary file.
	TypeRegular
	// TypeDirectory is a directory.
	TypeDirectory
	// TypeSymlink is a symbolic link.
	TypeSymlink
	// TypePipe is a pipe or FIFO.
	TypePipe
	// TypeDevice is a character or block device.
	TypeDevice
	// TypeSocket is a socket.
	TypeSocket
)

func (t FileType) String() string {
	switch t {
	case TypeRegular:
		return "regular"
	case TypeDirectory:
		return "directory"
	case TypeSymlink:
		return "symlink"
	case TypePipe:
		return "pipe"
	case TypeDevice:
		return "device"
	case TypeSocket:
		return "socket"
	default:
		return "unknown"
	}
}

// Stats is an immutable metadata snapshot captured at one point in time.
// It is never updated in place; call [Stat] again for fresh values.
type Stats struct {
	Size       int64
	Type       FileType
	Perm       Permissions
	ModTime    time.Time
	AccessTime time.Time
	ChangeTime time.Time
}
