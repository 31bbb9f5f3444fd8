package sys_test

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/calvinalkan/syskit/pkg/sys"
)

func Test_Flock_Returns_ErrWouldBlock_When_Exclusive_Lock_Contended(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "guarded.lock")
	mustCreate(t, path, nil)

	holder, err := sys.Open(path, sys.ReadOnly, sys.OpenOptions{}, 0)
	require.NoError(t, err)
	defer holder.Close()

	require.NoError(t, sys.Flock(holder, sys.LockExclusive, true))

	// A second descriptor for the same file contends even within one
	// process.
	contender, err := sys.Open(path, sys.ReadOnly, sys.OpenOptions{}, 0)
	require.NoError(t, err)
	defer contender.Close()

	err = sys.Flock(contender, sys.LockExclusive, false)
	require.ErrorIs(t, err, sys.ErrWouldBlock)

	require.NoError(t, sys.Funlock(holder))

	// Released: the contender now succeeds without blocking.
	require.NoError(t, sys.Flock(contender, sys.LockExclusive, false))
	require.NoError(t, sys.Funlock(contender))
}

func Test_Flock_Allows_Concurrent_Shared_Locks(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "shared.lock")
	mustCreate(t, path, nil)

	first, err := sys.Open(path, sys.ReadOnly, sys.OpenOptions{}, 0)
	require.NoError(t, err)
	defer first.Close()

	second, err := sys.Open(path, sys.ReadOnly, sys.OpenOptions{}, 0)
	require.NoError(t, err)
	defer second.Close()

	require.NoError(t, sys.Flock(first, sys.LockShared, false))
	require.NoError(t, sys.Flock(second, sys.LockShared, false))

	require.NoError(t, sys.Funlock(first))
	require.NoError(t, sys.Funlock(second))
}

func Test_Flock_Shared_Blocks_Exclusive(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "mixed.lock")
	mustCreate(t, path, nil)

	reader, err := sys.Open(path, sys.ReadOnly, sys.OpenOptions{}, 0)
	require.NoError(t, err)
	defer reader.Close()

	writer, err := sys.Open(path, sys.ReadOnly, sys.OpenOptions{}, 0)
	require.NoError(t, err)
	defer writer.Close()

	require.NoError(t, sys.Flock(reader, sys.LockShared, false))

	err = sys.Flock(writer, sys.LockExclusive, false)
	require.ErrorIs(t, err, sys.ErrWouldBlock)

	require.NoError(t, sys.Funlock(reader))
}

func Test_LockRange_Acquires_And_Releases_Byte_Range(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "ranged.lock")
	mustCreate(t, path, []byte("0123456789"))

	fd, err := sys.Open(path, sys.ReadWrite, sys.OpenOptions{}, 0)
	require.NoError(t, err)
	defer fd.Close()

	require.NoError(t, sys.LockRange(fd, sys.LockExclusive, sys.Range{Offset: 0, Length: 4}, false))
	require.NoError(t, sys.LockRange(fd, sys.LockExclusive, sys.Range{Offset: 4, Length: 4}, false))

	require.NoError(t, sys.UnlockRange(fd, sys.Range{Offset: 0, Length: 4}))
	require.NoError(t, sys.UnlockRange(fd, sys.Range{Offset: 4, Length: 4}))
}

func Test_LockRange_Zero_Length_Covers_To_End_Of_File(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "tail.lock")
	mustCreate(t, path, []byte("0123456789"))

	fd, err := sys.Open(path, sys.ReadWrite, sys.OpenOptions{}, 0)
	require.NoError(t, err)
	defer fd.Close()

	require.NoError(t, sys.LockRange(fd, sys.LockExclusive, sys.Range{Offset: 5}, false))
	require.NoError(t, sys.UnlockRange(fd, sys.Range{Offset: 5}))
}
