package sys

// Mode selects the data-transfer direction a descriptor is opened for.
type Mode uint8

const (
	// ReadOnly opens for reading.
	ReadOnly Mode = iota
	// WriteOnly opens for writing.
	WriteOnly
	// ReadWrite opens for both.
	ReadWrite
)

func (m Mode) String() string {
	switch m {
	case ReadOnly:
		return "read-only"
	case WriteOnly:
		return "write-only"
	case ReadWrite:
		return "read-write"
	default:
		return "invalid"
	}
}

// writable reports whether the mode permits writes.
func (m Mode) writable() bool {
	return m == WriteOnly || m == ReadWrite
}

// OpenOptions modify how [Open] resolves the target.
//
// Every combination that passes validation maps deterministically to exactly
// one native flag word; combinations with no defined native meaning fail with
// [ErrInvalid] before the syscall rather than producing an undefined result.
type OpenOptions struct {
	// Create the file if it does not exist, applying the Permissions.
	Create bool

	// Truncate an existing file to zero length. Requires a writable Mode.
	Truncate bool

	// Exclusive makes Create fail with [ErrExists] if the target already
	// exists. Requires Create.
	Exclusive bool

	// Append positions every write at the current end of file.
	Append bool

	// NonBlocking opens the descriptor in non-blocking mode; operations
	// that would block fail with [ErrWouldBlock]. Not supported on Windows
	// for regular files ([ErrUnsupported]).
	NonBlocking bool

	// Direct requests unbuffered I/O that bypasses the page cache. Reads
	// and writes must then go through a [Handle], which enforces the
	// device alignment.
	Direct bool
}

// Permissions are POSIX permission bits (owner/group/other rwx), applied
// only when a file is created. On Windows the owner-write bit maps to the
// read-only file attribute; the remaining bits have no native encoding.
type Permissions uint32

// validateOpen rejects combinations with no defined native translation.
func validateOpen(mode Mode, opts OpenOptions) error {
	if mode > ReadWrite {
		return structural("open", ErrInvalid)
	}

	if opts.Exclusive && !opts.Create {
		return structural("open", ErrInvalid)
	}

	if opts.Truncate && !mode.writable() {
		return structural("open", ErrInvalid)
	}

	if opts.Append && !mode.writable() {
		return structural("open", ErrInvalid)
	}

	return nil
}
