//go:build windows

package sys

// Datasync flushes the file's data to stable storage. Windows has no
// data-only flush; this is [FD.Sync].
//
// Errors: [ErrBadDescriptor], [ErrNoSpace], [ErrUnknown].
func (fd FD) Datasync() error {
	return fd.Sync()
}
