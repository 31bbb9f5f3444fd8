// Package sys exposes low-level operating-system primitives - descriptors,
// file open/read/write, pipes, advisory file locking, and kernel-accelerated
// file copy - behind a uniform, statically-typed, per-operation error model.
//
// The package imposes no policy. There is no buffering, no read-ahead, no
// automatic retry beyond transparent interruption handling, and no implicit
// resource ownership: descriptors are created by [Open] or [Pipe] and
// destroyed only by an explicit [FD.Close].
//
// Every operation is strictly synchronous and may block the calling thread
// for an unbounded time. Positional reads and writes ([FD.Pread],
// [FD.Pwrite]) do not touch the shared file position and are safe for
// concurrent callers sharing one descriptor; sequential reads and writes
// share the kernel file position and need external coordination.
//
// # Errors
//
// Each operation family documents the closed set of sentinel errors it can
// produce. Native failure codes (POSIX errno, Windows status codes) are
// translated through a total mapping table; codes without a semantic mapping
// surface as [ErrUnknown] with the native code preserved on [Error]. Check
// errors with [errors.Is]:
//
//	fd, err := sys.Open(path, sys.ReadWrite, sys.OpenOptions{Create: true, Exclusive: true}, 0o644)
//	if errors.Is(err, sys.ErrExists) {
//	    // someone else created it first
//	}
//
// The native code is available for diagnostics via [errors.As]:
//
//	var sysErr *sys.Error
//	if errors.As(err, &sysErr) {
//	    log.Printf("op=%s native=%d", sysErr.Op, sysErr.Native)
//	}
package sys
