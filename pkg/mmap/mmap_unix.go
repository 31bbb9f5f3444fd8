//go:build linux || darwin

package mmap

import (
	"errors"
	"syscall"

	"golang.org/x/sys/unix"

	"github.com/calvinalkan/syskit/pkg/sys"
)

// Map maps length bytes of fd starting at offset. Offset must be a multiple
// of [PageSize]; length must be positive. The returned region must be
// released with [Region.Unmap]; closing fd does not unmap it.
//
// Errors: [sys.ErrInvalid] on bad offset/length, [sys.ErrBadDescriptor],
// [sys.ErrResourceLimit] when the address space or mapping count is
// exhausted, [sys.ErrPermission] when prot exceeds the descriptor's open
// mode.
func Map(fd sys.FD, offset int64, length int, prot Prot, share Share) (*Region, error) {
	if err := validateMap(offset, length); err != nil {
		return nil, err
	}

	data, err := unix.Mmap(int(fd), offset, length, nativeProt(prot), nativeFlags(share))
	if err != nil {
		return nil, mapErr("mmap", err)
	}

	return &Region{data: data, share: share}, nil
}

// MapAnonymous maps length bytes of zero-filled memory backed by no file.
// The mapping is private to the process.
func MapAnonymous(length int, prot Prot) (*Region, error) {
	if length <= 0 {
		return nil, &sys.Error{Op: "mmap", Err: sys.ErrInvalid}
	}

	data, err := unix.Mmap(-1, 0, length, nativeProt(prot), unix.MAP_PRIVATE|unix.MAP_ANON)
	if err != nil {
		return nil, mapErr("mmap", err)
	}

	return &Region{data: data, share: Private}, nil
}

// Sync flushes modified pages of a [Shared] mapping to the backing file.
// With async the kernel only schedules the writeback; otherwise Sync returns
// after the pages are written. Syncing a [Private] mapping is a no-op: its
// stores never reach the file.
func (r *Region) Sync(async bool) error {
	if !r.mapped() {
		return errNotMapped("msync")
	}

	if r.share == Private {
		return nil
	}

	flags := unix.MS_SYNC
	if async {
		flags = unix.MS_ASYNC
	}

	if err := unix.Msync(r.data, flags); err != nil {
		return mapErr("msync", err)
	}

	return nil
}

// Unmap releases the mapping. Every slice previously returned by
// [Region.Data] is invalid afterwards. Unmapping twice returns
// [sys.ErrInvalid].
func (r *Region) Unmap() error {
	if !r.mapped() {
		return errNotMapped("munmap")
	}

	data := r.data
	r.data = nil

	if err := unix.Munmap(data); err != nil {
		return mapErr("munmap", err)
	}

	return nil
}

// Lock pins the region's pages in physical memory so they cannot be paged
// out.
//
// Errors: [sys.ErrResourceLimit] when the lockable-memory limit is exceeded,
// [sys.ErrPermission] when the process may not lock memory at all.
func (r *Region) Lock() error {
	if !r.mapped() {
		return errNotMapped("mlock")
	}

	if err := unix.Mlock(r.data); err != nil {
		return lockErr("mlock", err)
	}

	return nil
}

// Unlock releases pages pinned by [Region.Lock].
func (r *Region) Unlock() error {
	if !r.mapped() {
		return errNotMapped("munlock")
	}

	if err := unix.Munlock(r.data); err != nil {
		return lockErr("munlock", err)
	}

	return nil
}

// Advise hints the kernel about the region's expected access pattern. Hints
// are advisory; the kernel may ignore them.
func (r *Region) Advise(advice Advice) error {
	if !r.mapped() {
		return errNotMapped("madvise")
	}

	if err := unix.Madvise(r.data, nativeAdvice(advice)); err != nil {
		return mapErr("madvise", err)
	}

	return nil
}

// PageSize returns the system page size, the granularity of every mapping
// offset and protection boundary.
func PageSize() int {
	return unix.Getpagesize()
}

func nativeProt(prot Prot) int {
	n := unix.PROT_NONE

	if prot&ProtRead != 0 {
		n |= unix.PROT_READ
	}

	if prot&ProtWrite != 0 {
		n |= unix.PROT_WRITE
	}

	if prot&ProtExec != 0 {
		n |= unix.PROT_EXEC
	}

	return n
}

func nativeFlags(share Share) int {
	if share == Private {
		return unix.MAP_PRIVATE
	}

	return unix.MAP_SHARED
}

func nativeAdvice(advice Advice) int {
	switch advice {
	case AdviseRandom:
		return unix.MADV_RANDOM
	case AdviseSequential:
		return unix.MADV_SEQUENTIAL
	case AdviseWillNeed:
		return unix.MADV_WILLNEED
	case AdviseDontNeed:
		return unix.MADV_DONTNEED
	default:
		return unix.MADV_NORMAL
	}
}

func mapErr(op string, err error) error {
	var errno syscall.Errno
	if errors.As(err, &errno) {
		return sys.NativeError(op, errno)
	}

	return &sys.Error{Op: op, Err: sys.ErrUnknown}
}

// lockErr maps mlock/munlock failures. EAGAIN here means "could not lock",
// a quota problem rather than contention, so it surfaces as the resource
// sentinel instead of the generic would-block one.
func lockErr(op string, err error) error {
	if errors.Is(err, unix.EAGAIN) {
		return &sys.Error{Op: op, Err: sys.ErrResourceLimit, Native: unix.EAGAIN}
	}

	return mapErr(op, err)
}
