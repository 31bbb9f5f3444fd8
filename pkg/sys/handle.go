package sys

import "unsafe"

// Handle wraps a descriptor together with its direct-I/O state.
//
// When direct mode is active every transfer's buffer address, length, and
// file offset must satisfy the device alignment recorded at construction;
// violations fail fast with [ErrMisaligned] instead of reaching the syscall
// and producing an ambiguous native error.
//
// A Handle owns no resources beyond the descriptor the caller gave it;
// closing remains the caller's job via [FD.Close].
type Handle struct {
	// FD is the wrapped descriptor.
	FD FD

	// Retry is the interruption policy for transfers through this Handle.
	Retry RetryPolicy

	direct    bool
	alignment int
}

// NewHandle wraps fd. With direct set, the device's required alignment is
// queried once and enforced on every subsequent transfer; the descriptor
// should have been opened with [OpenOptions].Direct for the kernel side to
// actually bypass the cache.
//
// Errors: [ErrBadDescriptor], [ErrInterrupted], [ErrUnknown].
func NewHandle(fd FD, direct bool) (*Handle, error) {
	h := &Handle{FD: fd, Retry: DefaultRetry}

	if direct {
		align, err := directAlignment(fd)
		if err != nil {
			return nil, err
		}

		h.direct = true
		h.alignment = align
	}

	return h, nil
}

// OpenHandle opens path with opts.Direct forced on and wraps the descriptor
// in an alignment-enforcing Handle. On failure nothing stays open.
func OpenHandle(path string, mode Mode, opts OpenOptions, perm Permissions) (*Handle, error) {
	opts.Direct = true

	fd, err := Open(path, mode, opts, perm)
	if err != nil {
		return nil, err
	}

	h, err := NewHandle(fd, true)
	if err != nil {
		_ = fd.Close()

		return nil, err
	}

	return h, nil
}

// Direct reports whether alignment enforcement is active.
func (h *Handle) Direct() bool {
	return h.direct
}

// Alignment returns the required alignment in bytes, or 0 when direct mode
// is off.
func (h *Handle) Alignment() int {
	return h.alignment
}

// Read is [FD.Read] with alignment enforcement and this Handle's policy.
func (h *Handle) Read(p []byte) (int, error) {
	if err := h.checkAligned("handle.read", p, 0); err != nil {
		return 0, err
	}

	return ioRetry(h.Retry, "handle.read", func() (int, error) {
		return rawRead(h.FD, p)
	})
}

// Write is [FD.Write] with alignment enforcement and this Handle's policy.
func (h *Handle) Write(p []byte) (int, error) {
	if err := h.checkAligned("handle.write", p, 0); err != nil {
		return 0, err
	}

	return ioRetry(h.Retry, "handle.write", func() (int, error) {
		return rawWrite(h.FD, p)
	})
}

// Pread is [FD.Pread] with alignment enforcement and this Handle's policy.
func (h *Handle) Pread(p []byte, offset int64) (int, error) {
	if err := h.checkAligned("handle.pread", p, offset); err != nil {
		return 0, err
	}

	return ioRetry(h.Retry, "handle.pread", func() (int, error) {
		return rawPread(h.FD, p, offset)
	})
}

// Pwrite is [FD.Pwrite] with alignment enforcement and this Handle's policy.
func (h *Handle) Pwrite(p []byte, offset int64) (int, error) {
	if err := h.checkAligned("handle.pwrite", p, offset); err != nil {
		return 0, err
	}

	return ioRetry(h.Retry, "handle.pwrite", func() (int, error) {
		return rawPwrite(h.FD, p, offset)
	})
}

func (h *Handle) checkAligned(op string, p []byte, offset int64) error {
	if !h.direct {
		return nil
	}

	align := int64(h.alignment)

	if offset%align != 0 || int64(len(p))%align != 0 {
		return structural(op, ErrMisaligned)
	}

	if len(p) > 0 && uintptr(unsafe.Pointer(&p[0]))%uintptr(align) != 0 {
		return structural(op, ErrMisaligned)
	}

	return nil
}

// AlignedBuffer returns a buffer of the given size whose base address
// satisfies the Handle's alignment. With direct mode off it is a plain
// allocation. Size must itself be a multiple of the alignment to be usable
// for direct transfers; that is the caller's choice to make.
func (h *Handle) AlignedBuffer(size int) []byte {
	if !h.direct || h.alignment <= 1 {
		return make([]byte, size)
	}

	raw := make([]byte, size+h.alignment)
	off := 0

	if rem := int(uintptr(unsafe.Pointer(&raw[0])) % uintptr(h.alignment)); rem != 0 {
		off = h.alignment - rem
	}

	return raw[off : off+size : off+size]
}
