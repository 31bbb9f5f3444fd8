//go:build windows

package mmap

import (
	"errors"
	"syscall"
	"unsafe"

	"golang.org/x/sys/windows"

	"github.com/calvinalkan/syskit/pkg/sys"
)

// Map maps length bytes of fd starting at offset through a file-mapping
// object. Offset must be a multiple of [PageSize]; length must be positive.
// The mapping object is closed on [Region.Unmap].
func Map(fd sys.FD, offset int64, length int, prot Prot, share Share) (*Region, error) {
	if err := validateMap(offset, length); err != nil {
		return nil, err
	}

	maxSize := uint64(offset) + uint64(length)

	mapping, err := windows.CreateFileMapping(windows.Handle(fd), nil,
		protectFlags(prot, share), uint32(maxSize>>32), uint32(maxSize), nil)
	if err != nil {
		return nil, mapErr("mmap", err)
	}

	addr, err := windows.MapViewOfFile(mapping, viewAccess(prot, share),
		uint32(uint64(offset)>>32), uint32(offset), uintptr(length))
	if err != nil {
		_ = windows.CloseHandle(mapping)

		return nil, mapErr("mmap", err)
	}

	return &Region{
		data:    unsafe.Slice((*byte)(unsafe.Pointer(addr)), length),
		share:   share,
		mapping: uintptr(mapping),
	}, nil
}

// MapAnonymous maps length bytes of zero-filled memory backed by the paging
// file. The mapping is private to the process.
func MapAnonymous(length int, prot Prot) (*Region, error) {
	if length <= 0 {
		return nil, &sys.Error{Op: "mmap", Err: sys.ErrInvalid}
	}

	mapping, err := windows.CreateFileMapping(windows.InvalidHandle, nil,
		protectFlags(prot, Shared), uint32(uint64(length)>>32), uint32(length), nil)
	if err != nil {
		return nil, mapErr("mmap", err)
	}

	addr, err := windows.MapViewOfFile(mapping, viewAccess(prot, Shared), 0, 0, uintptr(length))
	if err != nil {
		_ = windows.CloseHandle(mapping)

		return nil, mapErr("mmap", err)
	}

	return &Region{
		data:    unsafe.Slice((*byte)(unsafe.Pointer(addr)), length),
		share:   Private,
		mapping: uintptr(mapping),
	}, nil
}

// Sync flushes modified pages of a [Shared] mapping to the backing file.
// FlushViewOfFile only queues the writeback, so both the async and the
// synchronous form behave identically here; a Region does not retain the
// file handle, and callers needing on-disk durability follow up with
// [sys.FD.Sync] on the descriptor they mapped from. Syncing a [Private]
// mapping is a no-op.
func (r *Region) Sync(bool) error {
	if !r.mapped() {
		return errNotMapped("msync")
	}

	if r.share == Private {
		return nil
	}

	if err := windows.FlushViewOfFile(r.base(), uintptr(len(r.data))); err != nil {
		return mapErr("msync", err)
	}

	return nil
}

// Unmap releases the view and closes the mapping object. Every slice
// previously returned by [Region.Data] is invalid afterwards.
func (r *Region) Unmap() error {
	if !r.mapped() {
		return errNotMapped("munmap")
	}

	addr := r.base()
	mapping := windows.Handle(r.mapping)
	r.data = nil
	r.mapping = 0

	if err := windows.UnmapViewOfFile(addr); err != nil {
		_ = windows.CloseHandle(mapping)

		return mapErr("munmap", err)
	}

	if err := windows.CloseHandle(mapping); err != nil {
		return mapErr("munmap", err)
	}

	return nil
}

// Lock pins the region's pages in physical memory. The default working-set
// quota is small, so [sys.ErrResourceLimit] is the common failure.
func (r *Region) Lock() error {
	if !r.mapped() {
		return errNotMapped("mlock")
	}

	if err := windows.VirtualLock(r.base(), uintptr(len(r.data))); err != nil {
		return mapErr("mlock", err)
	}

	return nil
}

// Unlock releases pages pinned by [Region.Lock].
func (r *Region) Unlock() error {
	if !r.mapped() {
		return errNotMapped("munlock")
	}

	if err := windows.VirtualUnlock(r.base(), uintptr(len(r.data))); err != nil {
		return mapErr("munlock", err)
	}

	return nil
}

// Advise is accepted but ignored: Windows has no madvise equivalent with
// these semantics, and hints are advisory everywhere.
func (r *Region) Advise(Advice) error {
	if !r.mapped() {
		return errNotMapped("madvise")
	}

	return nil
}

// PageSize returns the system page size.
func PageSize() int {
	return windows.Getpagesize()
}

func (r *Region) base() uintptr {
	return uintptr(unsafe.Pointer(&r.data[0]))
}

func protectFlags(prot Prot, share Share) uint32 {
	writable := prot&ProtWrite != 0
	exec := prot&ProtExec != 0

	switch {
	case exec && writable && share == Private:
		return windows.PAGE_EXECUTE_WRITECOPY
	case exec && writable:
		return windows.PAGE_EXECUTE_READWRITE
	case exec:
		return windows.PAGE_EXECUTE_READ
	case writable && share == Private:
		return windows.PAGE_WRITECOPY
	case writable:
		return windows.PAGE_READWRITE
	default:
		return windows.PAGE_READONLY
	}
}

func viewAccess(prot Prot, share Share) uint32 {
	var access uint32 = windows.FILE_MAP_READ

	if prot&ProtWrite != 0 {
		if share == Private {
			access = windows.FILE_MAP_COPY
		} else {
			access |= windows.FILE_MAP_WRITE
		}
	}

	if prot&ProtExec != 0 {
		access |= windows.FILE_MAP_EXECUTE
	}

	return access
}

func mapErr(op string, err error) error {
	var errno syscall.Errno
	if errors.As(err, &errno) {
		return sys.NativeError(op, errno)
	}

	return &sys.Error{Op: op, Err: sys.ErrUnknown}
}
