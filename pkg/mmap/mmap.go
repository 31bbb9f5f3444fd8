// Package mmap provides page-granular memory mapping, protection,
// synchronization, and pinning on top of the sys descriptor and error model.
//
// A [Region] owns its mapped address range and nothing else: the descriptor
// it was mapped from stays the caller's to close, and unmapping is always an
// explicit [Region.Unmap], never a finalizer.
package mmap

import (
	"github.com/calvinalkan/syskit/pkg/sys"
)

// Prot is the page-protection bitmask for a mapping.
type Prot uint8

const (
	// ProtRead makes pages readable.
	ProtRead Prot = 1 << iota
	// ProtWrite makes pages writable.
	ProtWrite
	// ProtExec makes pages executable.
	ProtExec
)

// Share selects whether stores are visible to other mappers of the file.
type Share uint8

const (
	// Shared propagates stores to the backing file and other mappers.
	Shared Share = iota
	// Private gives copy-on-write pages; stores stay local and are lost
	// on unmap.
	Private
)

// Advice hints the kernel about the expected access pattern.
type Advice uint8

const (
	// AdviseNormal resets to the default pattern.
	AdviseNormal Advice = iota
	// AdviseRandom expects random access; read-ahead is wasted.
	AdviseRandom
	// AdviseSequential expects one forward pass; read ahead aggressively.
	AdviseSequential
	// AdviseWillNeed expects access soon; fault pages in early.
	AdviseWillNeed
	// AdviseDontNeed expects no access soon; pages may be reclaimed.
	AdviseDontNeed
)

// Region is an owned mapped address range.
//
// Data() aliases kernel-managed memory: after Unmap every previously
// returned slice is invalid and touching it faults. The Go runtime does not
// track mappings; keeping lifetimes straight is the caller's job.
type Region struct {
	data  []byte
	share Share

	// mapping object handle, used only on Windows.
	mapping uintptr
}

// Data returns the mapped bytes. The slice is valid until [Region.Unmap].
func (r *Region) Data() []byte {
	return r.data
}

// Len returns the mapped length in bytes.
func (r *Region) Len() int {
	return len(r.data)
}

func (r *Region) mapped() bool {
	return r.data != nil
}

func errNotMapped(op string) error {
	return &sys.Error{Op: op, Err: sys.ErrInvalid}
}

func validateMap(offset int64, length int) error {
	if length <= 0 {
		return &sys.Error{Op: "mmap", Err: sys.ErrInvalid}
	}

	if offset < 0 || offset%int64(PageSize()) != 0 {
		return &sys.Error{Op: "mmap", Err: sys.ErrInvalid}
	}

	return nil
}
