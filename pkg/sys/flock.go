package sys

// LockMode selects shared (reader) or exclusive (writer) locking.
type LockMode uint8

const (
	// LockShared may be held by many descriptors at once and excludes
	// exclusive holders.
	LockShared LockMode = iota
	// LockExclusive excludes every other holder.
	LockExclusive
)

// Range selects the bytes a range lock covers. A Length of 0 extends the
// lock to the end of the file, however far it grows.
type Range struct {
	Offset int64
	Length int64
}

// File locking semantics deliberately stay platform-divergent; the variance
// surfaces through the error taxonomy instead of being papered over:
//
//   - On POSIX, [Flock] is flock(2): advisory, owned by the open file
//     description, inherited across descriptor duplication, and released
//     when the last duplicate closes. [LockRange] is fcntl(2) record
//     locking: advisory, owned by the process, and - per POSIX - dropped
//     when the process closes ANY descriptor for the file. The two lock
//     families do not interact with each other on Linux.
//
//   - On Windows, both map to LockFileEx, which the kernel enforces against
//     conflicting I/O (mandatory, not advisory), owned by the handle.
//
// Cooperating processes must therefore agree on one lock family and, on
// POSIX, treat the locks as advisory.
